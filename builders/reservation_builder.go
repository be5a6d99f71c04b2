package builders

import (
	"time"

	"hotel/constants"
	"hotel/models"
)

// ReservationBuilder giúp tạo reservation theo từng bước
type ReservationBuilder struct {
	reservation *models.Reservation
}

// NewReservationBuilder tạo instance mới của ReservationBuilder
func NewReservationBuilder() *ReservationBuilder {
	return &ReservationBuilder{
		reservation: &models.Reservation{
			Status: constants.ReservationStatusReserved,
		},
	}
}

// WithGuest thêm thông tin khách
func (b *ReservationBuilder) WithGuest(guestID uint) *ReservationBuilder {
	b.reservation.GuestID = guestID
	return b
}

// WithRoom thêm thông tin phòng
func (b *ReservationBuilder) WithRoom(roomID uint) *ReservationBuilder {
	b.reservation.RoomID = roomID
	return b
}

// WithDates thêm thời gian lưu trú và tính lại số đêm
func (b *ReservationBuilder) WithDates(start, end time.Time) *ReservationBuilder {
	b.reservation.StartDate = start
	b.reservation.EndDate = end
	b.reservation.Nights = models.CalculateNights(start, end)
	return b
}

// WithStatus thêm trạng thái
func (b *ReservationBuilder) WithStatus(status string) *ReservationBuilder {
	b.reservation.Status = status
	return b
}

// WithTotalAmount thêm tổng tiền
func (b *ReservationBuilder) WithTotalAmount(totalAmount float64) *ReservationBuilder {
	b.reservation.TotalAmount = totalAmount
	return b
}

// WithSpecialRequests thêm yêu cầu đặc biệt
func (b *ReservationBuilder) WithSpecialRequests(requests string) *ReservationBuilder {
	b.reservation.SpecialRequests = requests
	return b
}

// Build tạo reservation hoàn chỉnh
func (b *ReservationBuilder) Build() *models.Reservation {
	return b.reservation
}
