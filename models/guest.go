package models

import "time"

type Guest struct {
	ID             uint      `json:"id" gorm:"primaryKey"`
	FirstName      string    `json:"firstName" gorm:"not null"`
	LastName       string    `json:"lastName" gorm:"not null"`
	Email          *string   `json:"email,omitempty" gorm:"uniqueIndex"`
	Telephone      string    `json:"telephone" gorm:"not null"`
	IDDocument     string    `json:"idDocument" gorm:"uniqueIndex;not null"`
	IDDocumentType string    `json:"idDocumentType" gorm:"default:Passport"`
	CreatedAt      time.Time `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt      time.Time `gorm:"autoUpdateTime" json:"updatedAt"`
}

// FullName ghép họ tên để phục vụ tìm kiếm theo tên khách
func (g *Guest) FullName() string {
	return g.FirstName + " " + g.LastName
}
