package store

import (
	"database/sql"
	"errors"
	"strings"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"

	"hotel/models"
)

// Số lần thử lại khi postgres từ chối transaction vì tranh chấp serializable
const txMaxRetries = 3

// GormStore hiện thực Store trên postgres qua gorm
type GormStore struct {
	db *gorm.DB
}

func NewGormStore(db *gorm.DB) *GormStore {
	return &GormStore{db: db}
}

func (s *GormStore) Guests() GuestStore {
	return &gormGuestStore{db: s.db}
}

func (s *GormStore) Rooms() RoomStore {
	return &gormRoomStore{db: s.db}
}

func (s *GormStore) Reservations() ReservationStore {
	return &gormReservationStore{db: s.db}
}

// Transaction chạy fn ở mức cô lập SERIALIZABLE để hai cặp kiểm tra
// phòng trống + ghi chạy song song không cùng thấy "không trùng" rồi
// cùng commit. Postgres từ chối một bên với 40001 thì thử lại từ đầu.
func (s *GormStore) Transaction(fn func(Store) error) error {
	var err error
	for attempt := 0; attempt < txMaxRetries; attempt++ {
		err = s.db.Transaction(func(tx *gorm.DB) error {
			return fn(NewGormStore(tx))
		}, &sql.TxOptions{Isolation: sql.LevelSerializable})
		if !isSerializationFailure(err) {
			return err
		}
	}
	return err
}

// isSerializationFailure nhận diện lỗi tranh chấp transaction của postgres:
// 40001 serialization_failure, 40P01 deadlock_detected
func isSerializationFailure(err error) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == "40001" || pgErr.Code == "40P01"
	}
	return false
}

// translateError quy lỗi gorm về lỗi của store.
// Cần bật TranslateError trong gorm.Config để nhận ErrDuplicatedKey.
func translateError(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrNotFound
	}
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return ErrDuplicate
	}
	return err
}

func likePattern(q string) string {
	return "%" + strings.ToLower(q) + "%"
}

type gormGuestStore struct {
	db *gorm.DB
}

func (s *gormGuestStore) Create(guest *models.Guest) error {
	return translateError(s.db.Create(guest).Error)
}

func (s *gormGuestStore) GetByID(id uint) (*models.Guest, error) {
	var guest models.Guest
	if err := s.db.First(&guest, id).Error; err != nil {
		return nil, translateError(err)
	}
	return &guest, nil
}

func (s *gormGuestStore) Update(guest *models.Guest) error {
	return translateError(s.db.Save(guest).Error)
}

func (s *gormGuestStore) Delete(id uint) error {
	result := s.db.Delete(&models.Guest{}, id)
	if result.Error != nil {
		return translateError(result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *gormGuestStore) List(filter GuestFilter) ([]models.Guest, error) {
	tx := s.db.Model(&models.Guest{})
	if filter.Query != "" {
		q := likePattern(filter.Query)
		tx = tx.Where(
			"LOWER(first_name) LIKE ? OR LOWER(last_name) LIKE ? OR LOWER(email) LIKE ? OR LOWER(telephone) LIKE ? OR LOWER(id_document) LIKE ?",
			q, q, q, q, q)
	}
	var guests []models.Guest
	if err := tx.Order("created_at DESC").Find(&guests).Error; err != nil {
		return nil, translateError(err)
	}
	return guests, nil
}

type gormRoomStore struct {
	db *gorm.DB
}

func (s *gormRoomStore) Create(room *models.Room) error {
	return translateError(s.db.Create(room).Error)
}

func (s *gormRoomStore) GetByID(id uint) (*models.Room, error) {
	var room models.Room
	if err := s.db.First(&room, id).Error; err != nil {
		return nil, translateError(err)
	}
	return &room, nil
}

func (s *gormRoomStore) Update(room *models.Room) error {
	return translateError(s.db.Save(room).Error)
}

func (s *gormRoomStore) Delete(id uint) error {
	result := s.db.Delete(&models.Room{}, id)
	if result.Error != nil {
		return translateError(result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *gormRoomStore) List(filter RoomFilter) ([]models.Room, error) {
	tx := s.db.Model(&models.Room{}).Scopes(roomFilterScope(filter))
	if filter.OrderByPrice {
		tx = tx.Order("price ASC")
	} else {
		tx = tx.Order("created_at DESC")
	}
	var rooms []models.Room
	if err := tx.Find(&rooms).Error; err != nil {
		return nil, translateError(err)
	}
	return rooms, nil
}

// roomFilterScope dựng điều kiện lọc phòng dạng scope để tái dùng được
func roomFilterScope(filter RoomFilter) func(*gorm.DB) *gorm.DB {
	return func(tx *gorm.DB) *gorm.DB {
		if filter.Status != "" {
			tx = tx.Where("status = ?", filter.Status)
		}
		if filter.MinCapacity != nil {
			tx = tx.Where("capacity >= ?", *filter.MinCapacity)
		}
		if filter.MinBeds != nil {
			tx = tx.Where("beds >= ?", *filter.MinBeds)
		}
		if filter.MaxPrice != nil {
			tx = tx.Where("price <= ?", *filter.MaxPrice)
		}
		if filter.AirConditioning != nil {
			tx = tx.Where("air_conditioning = ?", *filter.AirConditioning)
		}
		return tx
	}
}

type gormReservationStore struct {
	db *gorm.DB
}

func (s *gormReservationStore) Create(reservation *models.Reservation) error {
	return translateError(s.db.Create(reservation).Error)
}

func (s *gormReservationStore) GetByID(id uint) (*models.Reservation, error) {
	var reservation models.Reservation
	err := s.db.Preload("Guest").Preload("Room").First(&reservation, id).Error
	if err != nil {
		return nil, translateError(err)
	}
	return &reservation, nil
}

func (s *gormReservationStore) Update(reservation *models.Reservation) error {
	return translateError(s.db.Omit("Guest", "Room").Save(reservation).Error)
}

func (s *gormReservationStore) Delete(id uint) error {
	result := s.db.Delete(&models.Reservation{}, id)
	if result.Error != nil {
		return translateError(result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *gormReservationStore) List(filter ReservationFilter) ([]models.Reservation, error) {
	tx := s.db.Model(&models.Reservation{}).
		Preload("Guest").
		Preload("Room").
		Scopes(reservationFilterScope(filter))

	var reservations []models.Reservation
	if err := tx.Order("reservations.created_at DESC").Find(&reservations).Error; err != nil {
		return nil, translateError(err)
	}
	return reservations, nil
}

func reservationFilterScope(filter ReservationFilter) func(*gorm.DB) *gorm.DB {
	return func(tx *gorm.DB) *gorm.DB {
		if filter.RoomID != 0 {
			tx = tx.Where("reservations.room_id = ?", filter.RoomID)
		}
		if filter.GuestID != 0 {
			tx = tx.Where("reservations.guest_id = ?", filter.GuestID)
		}
		if len(filter.Statuses) > 0 {
			tx = tx.Where("reservations.status IN ?", filter.Statuses)
		}
		if filter.ExcludeID != 0 {
			tx = tx.Where("reservations.id <> ?", filter.ExcludeID)
		}
		if filter.OverlapStart != nil && filter.OverlapEnd != nil {
			tx = tx.Where("reservations.start_date < ? AND reservations.end_date > ?",
				*filter.OverlapEnd, *filter.OverlapStart)
		}
		if filter.GuestName != "" {
			q := likePattern(filter.GuestName)
			tx = tx.Joins("JOIN guests ON guests.id = reservations.guest_id").
				Where("LOWER(guests.first_name) LIKE ? OR LOWER(guests.last_name) LIKE ?", q, q)
		}
		if filter.RangeStart != nil && filter.RangeEnd != nil {
			tx = tx.Where(
				"(reservations.start_date >= ? AND reservations.end_date <= ?) OR (reservations.start_date <= ? AND reservations.end_date >= ?)",
				*filter.RangeStart, *filter.RangeEnd, *filter.RangeStart, *filter.RangeEnd)
		}
		return tx
	}
}
