package models

import (
	"fmt"
	"time"

	"hotel/constants"
)

type Room struct {
	ID              uint      `json:"id" gorm:"primaryKey"`
	Name            string    `json:"name" gorm:"uniqueIndex;not null"`
	Description     string    `json:"description"`
	Price           float64   `json:"price" gorm:"not null"`
	Capacity        int       `json:"capacity" gorm:"not null"`
	Beds            int       `json:"beds" gorm:"not null"`
	AirConditioning bool      `json:"airConditioning" gorm:"default:false"`
	Status          string    `json:"status" gorm:"default:AVAILABLE"`
	CreatedAt       time.Time `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt       time.Time `gorm:"autoUpdateTime" json:"updatedAt"`
}

func (r *Room) ValidateStatus() error {
	if r.Status != constants.RoomStatusAvailable && r.Status != constants.RoomStatusUnavailable {
		return fmt.Errorf("invalid status: %s, must be %s or %s",
			r.Status, constants.RoomStatusAvailable, constants.RoomStatusUnavailable)
	}
	return nil
}
