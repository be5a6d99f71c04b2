package models

import (
	"math"
	"time"

	"hotel/constants"
)

type Reservation struct {
	ID              uint      `json:"id" gorm:"primaryKey"`
	GuestID         uint      `json:"guestId" gorm:"not null;index"`
	Guest           *Guest    `json:"guest,omitempty" gorm:"foreignKey:GuestID"`
	RoomID          uint      `json:"roomId" gorm:"not null;index"`
	Room            *Room     `json:"room,omitempty" gorm:"foreignKey:RoomID"`
	StartDate       time.Time `json:"startDate" gorm:"not null;index"`
	EndDate         time.Time `json:"endDate" gorm:"not null;index"`
	Nights          int       `json:"nights"`
	TotalAmount     float64   `json:"totalAmount"`
	SpecialRequests string    `json:"specialRequests,omitempty"`
	Status          string    `json:"status" gorm:"default:RESERVED;index"`
	CreatedAt       time.Time `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt       time.Time `gorm:"autoUpdateTime" json:"updatedAt"`
}

// IsActive đặt phòng còn đang giữ phòng hay không
func (r *Reservation) IsActive() bool {
	return r.Status == constants.ReservationStatusReserved ||
		r.Status == constants.ReservationStatusCheckedIn
}

// Overlaps hai khoảng [start, end) có chồng nhau không.
// Ngày trả phòng trùng ngày nhận phòng của đặt khác thì không tính trùng.
func (r *Reservation) Overlaps(start, end time.Time) bool {
	return r.StartDate.Before(end) && r.EndDate.After(start)
}

// CalculateNights số đêm = làm tròn lên số ngày giữa hai mốc
func CalculateNights(start, end time.Time) int {
	return int(math.Ceil(end.Sub(start).Hours() / 24))
}
