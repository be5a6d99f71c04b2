package config

import (
	"log"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// InitApp dựng gin engine với CORS và kết nối các thành phần
func InitApp() (*gin.Engine, error) {
	router := gin.Default()

	configCors := cors.DefaultConfig()
	configCors.AddAllowHeaders("Authorization")
	configCors.AllowCredentials = true
	configCors.AllowAllOrigins = false
	configCors.AllowOriginFunc = func(origin string) bool {
		return true
	}
	router.Use(cors.New(configCors))

	router.SetTrustedProxies(nil)

	initComponents()

	return router, nil
}

func initComponents() {
	LoadEnv()

	ConnectDB()

	MigrateDB()

	// Redis không bắt buộc, thiếu thì chạy không cache
	if _, err := ConnectRedis(); err == nil {
		log.Println("Redis connected")
	}

	log.Println("All components initialized successfully")
}
