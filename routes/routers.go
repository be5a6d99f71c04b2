package routes

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"hotel/controllers"
	middlewares "hotel/middleware"
	"hotel/response"
	"hotel/services"
	"hotel/services/logger"
	"hotel/store"
)

// SetupRoutes dựng store, service, controller và gắn toàn bộ route
// dưới prefix /api
func SetupRoutes(router *gin.Engine, db *gorm.DB, redisCli *redis.Client) {
	dataStore := store.NewGormStore(db)
	appLogger := logger.NewDefaultLogger(logger.InfoLevel)

	guestService := services.NewGuestService(services.GuestServiceOptions{
		Store:  dataStore,
		Logger: appLogger,
	})
	roomService := services.NewRoomService(services.RoomServiceOptions{
		Store:  dataStore,
		Redis:  redisCli,
		Logger: appLogger,
	})
	reservationService := services.NewReservationService(services.ReservationServiceOptions{
		Store:  dataStore,
		Logger: appLogger,
	})

	guestController := controllers.NewGuestController(guestService)
	roomController := controllers.NewRoomController(roomService)
	reservationController := controllers.NewReservationController(reservationService)

	api := router.Group("/api")
	api.Use(middlewares.RateLimitMiddleware(redisCli))

	api.GET("/health", func(c *gin.Context) {
		response.SuccessWithMessage(c, gin.H{
			"timestamp": time.Now().UTC().Format(time.RFC3339),
		}, "Hotel Booking API is running")
	})

	api.GET("/guests", guestController.GetGuests)
	api.GET("/guests/search", guestController.SearchGuests)
	api.GET("/guests/:id", guestController.GetGuestDetail)
	api.POST("/guests", guestController.CreateGuest)
	api.PUT("/guests/:id", guestController.UpdateGuest)
	api.DELETE("/guests/:id", guestController.DeleteGuest)

	api.GET("/rooms", roomController.GetRooms)
	api.GET("/rooms/available", roomController.GetAvailableRooms)
	api.GET("/rooms/:id/availability", roomController.CheckRoomAvailability)
	api.GET("/rooms/:id", roomController.GetRoomDetail)
	api.POST("/rooms", roomController.CreateRoom)
	api.PUT("/rooms/:id", roomController.UpdateRoom)
	api.DELETE("/rooms/:id", roomController.DeleteRoom)

	api.GET("/reservations", reservationController.GetReservations)
	api.GET("/reservations/check-availability", reservationController.CheckAvailability)
	api.GET("/reservations/:id", reservationController.GetReservationDetail)
	api.POST("/reservations", reservationController.CreateReservation)
	api.PUT("/reservations/:id", reservationController.UpdateReservation)
	api.DELETE("/reservations/:id", reservationController.DeleteReservation)
}
