package dto

import "hotel/models"

// CreateRoomRequest là DTO cho request tạo phòng
type CreateRoomRequest struct {
	Name            string  `json:"name" binding:"required"`
	Description     string  `json:"description"`
	Price           float64 `json:"price" binding:"required,gt=0"`
	Capacity        int     `json:"capacity" binding:"required,gt=0"`
	Beds            int     `json:"beds" binding:"required,gt=0"`
	AirConditioning bool    `json:"airConditioning"`
	Status          string  `json:"status" binding:"omitempty,oneof=AVAILABLE UNAVAILABLE"`
}

// ToModel chuyển request thành model phòng
func (r *CreateRoomRequest) ToModel() *models.Room {
	return &models.Room{
		Name:            r.Name,
		Description:     r.Description,
		Price:           r.Price,
		Capacity:        r.Capacity,
		Beds:            r.Beds,
		AirConditioning: r.AirConditioning,
		Status:          r.Status,
	}
}

// UpdateRoomRequest là DTO cho request sửa phòng, field nil giữ nguyên
type UpdateRoomRequest struct {
	Name            *string  `json:"name"`
	Description     *string  `json:"description"`
	Price           *float64 `json:"price" binding:"omitempty,gt=0"`
	Capacity        *int     `json:"capacity" binding:"omitempty,gt=0"`
	Beds            *int     `json:"beds" binding:"omitempty,gt=0"`
	AirConditioning *bool    `json:"airConditioning"`
	Status          *string  `json:"status" binding:"omitempty,oneof=AVAILABLE UNAVAILABLE"`
}

// RoomDetailResponse là DTO trả phòng kèm lịch sử đặt phòng
type RoomDetailResponse struct {
	models.Room
	Reservations []models.Reservation `json:"reservations"`
}

// RoomAvailabilityResponse là DTO cho kết quả kiểm tra phòng trống
type RoomAvailabilityResponse struct {
	RoomID                  uint                 `json:"roomId"`
	StartDate               string               `json:"startDate"`
	EndDate                 string               `json:"endDate"`
	IsAvailable             bool                 `json:"isAvailable"`
	ConflictingReservations []models.Reservation `json:"conflictingReservations"`
}
