package services

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"

	"hotel/constants"
	"hotel/errors"
	"hotel/models"
	"hotel/services/logger"
	"hotel/store"
	"hotel/validator"
)

const (
	roomCacheKey = "rooms:all"
	roomCacheTTL = 10 * time.Minute
)

// UpdateRoomInput dữ liệu sửa phòng, field nil là giữ nguyên
type UpdateRoomInput struct {
	Name            *string
	Description     *string
	Price           *float64
	Capacity        *int
	Beds            *int
	AirConditioning *bool
	Status          *string
}

// AvailableRoomsInput bộ lọc tìm phòng trống
type AvailableRoomsInput struct {
	StartDate       *time.Time
	EndDate         *time.Time
	MinCapacity     *int
	MinBeds         *int
	MaxPrice        *float64
	AirConditioning *bool
}

// RoomService quản lý danh mục phòng. Danh sách phòng được cache
// Redis và xóa cache mỗi lần ghi; rdb nil thì bỏ qua cache.
type RoomService struct {
	store  store.Store
	rdb    *redis.Client
	logger logger.Logger
}

type RoomServiceOptions struct {
	Store  store.Store
	Redis  *redis.Client
	Logger logger.Logger
}

func NewRoomService(opts RoomServiceOptions) *RoomService {
	l := opts.Logger
	if l == nil {
		l = logger.NewDefaultLogger(logger.InfoLevel)
	}
	return &RoomService{
		store:  opts.Store,
		rdb:    opts.Redis,
		logger: l,
	}
}

func (s *RoomService) invalidateCache() {
	if s.rdb == nil {
		return
	}
	if err := DeleteFromRedis(context.Background(), s.rdb, roomCacheKey); err != nil {
		s.logger.Warn("không xóa được cache danh sách phòng: %v", err)
	}
}

// Create tạo phòng mới, tên phòng không được trùng
func (s *RoomService) Create(room *models.Room) (*models.Room, error) {
	if room.Status == "" {
		room.Status = constants.RoomStatusAvailable
	}
	if err := validator.ValidateRoom(room); err != nil {
		return nil, err
	}

	if err := s.store.Rooms().Create(room); err != nil {
		if err == store.ErrDuplicate {
			return nil, errors.NewAppError(errors.ErrCodeDuplicate,
				"Tên phòng đã tồn tại", errors.ErrRoomNameExists)
		}
		return nil, err
	}

	s.invalidateCache()
	return room, nil
}

// GetByID lấy thông tin một phòng
func (s *RoomService) GetByID(id uint) (*models.Room, error) {
	room, err := s.store.Rooms().GetByID(id)
	if err != nil {
		if err == store.ErrNotFound {
			return nil, errors.NewAppError(errors.ErrCodeNotFound, "Không tìm thấy phòng", errors.ErrRoomNotFound)
		}
		return nil, err
	}
	return room, nil
}

// GetDetail lấy phòng kèm lịch sử đặt phòng của nó
func (s *RoomService) GetDetail(id uint) (*models.Room, []models.Reservation, error) {
	room, err := s.GetByID(id)
	if err != nil {
		return nil, nil, err
	}
	reservations, err := s.store.Reservations().List(store.ReservationFilter{RoomID: id})
	if err != nil {
		return nil, nil, err
	}
	return room, reservations, nil
}

// Update sửa phòng theo kiểu merge từng field
func (s *RoomService) Update(id uint, input UpdateRoomInput) (*models.Room, error) {
	room, err := s.GetByID(id)
	if err != nil {
		return nil, err
	}

	if input.Name != nil {
		room.Name = *input.Name
	}
	if input.Description != nil {
		room.Description = *input.Description
	}
	if input.Price != nil {
		room.Price = *input.Price
	}
	if input.Capacity != nil {
		room.Capacity = *input.Capacity
	}
	if input.Beds != nil {
		room.Beds = *input.Beds
	}
	if input.AirConditioning != nil {
		room.AirConditioning = *input.AirConditioning
	}
	if input.Status != nil {
		room.Status = *input.Status
	}

	if err := validator.ValidateRoom(room); err != nil {
		return nil, err
	}

	if err := s.store.Rooms().Update(room); err != nil {
		if err == store.ErrDuplicate {
			return nil, errors.NewAppError(errors.ErrCodeDuplicate,
				"Tên phòng đã tồn tại", errors.ErrRoomNameExists)
		}
		return nil, err
	}

	s.invalidateCache()
	return room, nil
}

// Delete xóa phòng nếu không còn đặt phòng nào đang giữ phòng
func (s *RoomService) Delete(id uint) error {
	if _, err := s.GetByID(id); err != nil {
		return err
	}

	active, err := s.store.Reservations().List(store.ReservationFilter{
		RoomID:   id,
		Statuses: constants.ActiveReservationStatuses,
	})
	if err != nil {
		return err
	}
	if len(active) > 0 {
		return errors.NewAppError(errors.ErrCodeInvalidState,
			"Không thể xóa phòng đang có đặt phòng hoạt động", nil)
	}

	if err := s.store.Rooms().Delete(id); err != nil {
		return err
	}

	s.invalidateCache()
	return nil
}

// List liệt kê toàn bộ phòng, ưu tiên lấy từ cache Redis
func (s *RoomService) List() ([]models.Room, error) {
	ctx := context.Background()

	var rooms []models.Room
	if s.rdb != nil {
		if err := GetFromRedis(ctx, s.rdb, roomCacheKey, &rooms); err == nil && len(rooms) > 0 {
			return rooms, nil
		}
	}

	rooms, err := s.store.Rooms().List(store.RoomFilter{})
	if err != nil {
		return nil, err
	}

	if s.rdb != nil {
		if err := SetToRedis(ctx, s.rdb, roomCacheKey, rooms, roomCacheTTL); err != nil {
			s.logger.Warn("không lưu được cache danh sách phòng: %v", err)
		}
	}
	return rooms, nil
}

// Available tìm phòng trống: lọc phòng đang mở bán theo ngưỡng sức
// chứa, số giường, giá rồi loại những phòng có đặt phòng trùng khoảng
// ngày yêu cầu. Không truyền ngày thì chỉ lọc theo ngưỡng.
func (s *RoomService) Available(input AvailableRoomsInput) ([]models.Room, error) {
	rooms, err := s.store.Rooms().List(store.RoomFilter{
		Status:          constants.RoomStatusAvailable,
		MinCapacity:     input.MinCapacity,
		MinBeds:         input.MinBeds,
		MaxPrice:        input.MaxPrice,
		AirConditioning: input.AirConditioning,
		OrderByPrice:    true,
	})
	if err != nil {
		return nil, err
	}

	if input.StartDate == nil || input.EndDate == nil {
		return rooms, nil
	}

	availability := NewAvailabilityService(s.store.Reservations())
	available := make([]models.Room, 0, len(rooms))
	for _, room := range rooms {
		result, err := availability.Check(room.ID, *input.StartDate, *input.EndDate, 0)
		if err != nil {
			return nil, err
		}
		if result.Available {
			available = append(available, room)
		}
	}
	return available, nil
}

// CheckAvailability kiểm tra một phòng có trống trong khoảng ngày không
func (s *RoomService) CheckAvailability(roomID uint, start, end time.Time) (*AvailabilityResult, error) {
	if _, err := s.GetByID(roomID); err != nil {
		return nil, err
	}
	availability := NewAvailabilityService(s.store.Reservations())
	return availability.Check(roomID, start, end, 0)
}
