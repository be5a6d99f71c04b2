package dto

import "hotel/models"

// CreateGuestRequest là DTO cho request đăng ký khách
type CreateGuestRequest struct {
	FirstName      string  `json:"firstName" binding:"required"`
	LastName       string  `json:"lastName" binding:"required"`
	Email          *string `json:"email" binding:"omitempty,email"`
	Telephone      string  `json:"telephone" binding:"required"`
	IDDocument     string  `json:"idDocument" binding:"required"`
	IDDocumentType string  `json:"idDocumentType"`
}

// ToModel chuyển request thành model khách
func (r *CreateGuestRequest) ToModel() *models.Guest {
	return &models.Guest{
		FirstName:      r.FirstName,
		LastName:       r.LastName,
		Email:          r.Email,
		Telephone:      r.Telephone,
		IDDocument:     r.IDDocument,
		IDDocumentType: r.IDDocumentType,
	}
}

// UpdateGuestRequest là DTO cho request sửa khách, field nil giữ nguyên
type UpdateGuestRequest struct {
	FirstName      *string `json:"firstName"`
	LastName       *string `json:"lastName"`
	Email          *string `json:"email" binding:"omitempty,email"`
	Telephone      *string `json:"telephone"`
	IDDocument     *string `json:"idDocument"`
	IDDocumentType *string `json:"idDocumentType"`
}

// GuestDetailResponse là DTO trả khách kèm lịch sử đặt phòng
type GuestDetailResponse struct {
	models.Guest
	Reservations []models.Reservation `json:"reservations"`
}
