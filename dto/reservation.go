package dto

import "hotel/models"

// CreateReservationRequest là DTO cho request đặt phòng
type CreateReservationRequest struct {
	GuestID         uint   `json:"guestId" binding:"required"`
	RoomID          uint   `json:"roomId" binding:"required"`
	StartDate       string `json:"startDate" binding:"required,datetime=2006-01-02"`
	EndDate         string `json:"endDate" binding:"required,datetime=2006-01-02"`
	SpecialRequests string `json:"specialRequests"`
}

// UpdateReservationRequest là DTO cho request sửa đặt phòng,
// field nil giữ nguyên giá trị cũ
type UpdateReservationRequest struct {
	GuestID         *uint   `json:"guestId"`
	RoomID          *uint   `json:"roomId"`
	StartDate       *string `json:"startDate" binding:"omitempty,datetime=2006-01-02"`
	EndDate         *string `json:"endDate" binding:"omitempty,datetime=2006-01-02"`
	Status          *string `json:"status" binding:"omitempty,oneof=RESERVED CHECKED_IN COMPLETED CANCELLED"`
	SpecialRequests *string `json:"specialRequests"`
}

// AvailabilityQueryResponse là DTO cho endpoint tra cứu phòng trống chung
type AvailabilityQueryResponse struct {
	StartDate               string               `json:"startDate"`
	EndDate                 string               `json:"endDate"`
	RoomID                  *uint                `json:"roomId"`
	IsAvailable             bool                 `json:"isAvailable"`
	ConflictingReservations []models.Reservation `json:"conflictingReservations"`
}
