// Package store định nghĩa collaborator lưu trữ cho guest, room và reservation.
// Engine chỉ làm việc qua các interface ở đây; hiện có hai hiện thực:
// GormStore (postgres) và MemoryStore (test).
package store

import (
	"errors"
	"time"

	"hotel/models"
)

var (
	// ErrNotFound bản ghi không tồn tại
	ErrNotFound = errors.New("record not found")
	// ErrDuplicate vi phạm ràng buộc unique (tên phòng, email/giấy tờ khách)
	ErrDuplicate = errors.New("duplicate record")
)

// GuestFilter bộ lọc tìm khách
type GuestFilter struct {
	// Query tìm substring không phân biệt hoa thường trên họ, tên,
	// email, số điện thoại và giấy tờ tùy thân
	Query string
}

// RoomFilter bộ lọc phòng theo ngưỡng số
type RoomFilter struct {
	Status          string
	MinCapacity     *int
	MinBeds         *int
	MaxPrice        *float64
	AirConditioning *bool
	// OrderByPrice sắp theo giá tăng dần thay vì mới nhất trước
	OrderByPrice bool
}

// ReservationFilter bộ lọc đặt phòng
type ReservationFilter struct {
	RoomID    uint
	GuestID   uint
	Statuses  []string
	ExcludeID uint

	// OverlapStart/OverlapEnd lọc các đặt phòng chồng khoảng [start, end)
	// theo nghĩa nửa mở: start < OverlapEnd && end > OverlapStart
	OverlapStart *time.Time
	OverlapEnd   *time.Time

	// GuestName substring không phân biệt hoa thường trên họ/tên khách
	GuestName string

	// RangeStart/RangeEnd bộ lọc danh sách theo kiểu bao nhau đối xứng:
	// đặt phòng nằm trọn trong khoảng lọc, hoặc khoảng lọc nằm trọn
	// trong đặt phòng. Không phải phép kiểm tra trùng lịch.
	RangeStart *time.Time
	RangeEnd   *time.Time
}

// GuestStore lưu trữ khách
type GuestStore interface {
	Create(guest *models.Guest) error
	GetByID(id uint) (*models.Guest, error)
	Update(guest *models.Guest) error
	Delete(id uint) error
	List(filter GuestFilter) ([]models.Guest, error)
}

// RoomStore lưu trữ phòng
type RoomStore interface {
	Create(room *models.Room) error
	GetByID(id uint) (*models.Room, error)
	Update(room *models.Room) error
	Delete(id uint) error
	List(filter RoomFilter) ([]models.Room, error)
}

// ReservationStore lưu trữ đặt phòng. GetByID và List luôn kèm
// snapshot Guest và Room của bản ghi.
type ReservationStore interface {
	Create(reservation *models.Reservation) error
	GetByID(id uint) (*models.Reservation, error)
	Update(reservation *models.Reservation) error
	Delete(id uint) error
	List(filter ReservationFilter) ([]models.Reservation, error)
}

// Store gom các collection và hỗ trợ transaction.
// Cặp kiểm tra phòng trống + ghi đặt phòng phải chạy trong cùng một
// Transaction để hai booking song song không cùng giữ một khoảng ngày.
type Store interface {
	Guests() GuestStore
	Rooms() RoomStore
	Reservations() ReservationStore
	Transaction(fn func(Store) error) error
}
