package config

import (
	"fmt"
	"log"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"hotel/models"
)

var DB *gorm.DB

func getDSN() string {
	host := GetEnv("DB_HOST", "localhost")
	port := GetEnv("DB_PORT", "5432")
	user := GetEnv("DB_USER", "postgres")
	password := GetEnv("DB_PASSWORD", "postgres")
	name := GetEnv("DB_NAME", "hotel")
	sslmode := GetEnv("DB_SSLMODE", "disable")

	return fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%s sslmode=%s",
		host, user, password, name, port, sslmode)
}

// ConnectDB mở kết nối postgres. Bật TranslateError để store nhận
// diện được lỗi trùng unique key qua gorm.ErrDuplicatedKey.
func ConnectDB() {
	var err error
	DB, err = gorm.Open(postgres.Open(getDSN()), &gorm.Config{
		TranslateError: true,
	})
	if err != nil {
		log.Fatalf("Fail to connect to db: %v", err)
	}

	fmt.Println("Successfully connected to db")
}

// MigrateDB tạo/cập nhật schema cho guest, room, reservation
func MigrateDB() {
	if err := DB.AutoMigrate(&models.Guest{}, &models.Room{}, &models.Reservation{}); err != nil {
		log.Fatalf("Failed to migrate tables: %v", err)
	}
}
