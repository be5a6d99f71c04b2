package services

import (
	"time"

	"hotel/constants"
	"hotel/models"
	"hotel/store"
)

// AvailabilityResult kết quả kiểm tra phòng trống, kèm danh sách
// đặt phòng bị trùng để caller báo lại cho người dùng
type AvailabilityResult struct {
	Available bool                 `json:"isAvailable"`
	Conflicts []models.Reservation `json:"conflictingReservations"`
}

// AvailabilityService kiểm tra một phòng có trống trong khoảng ngày
// không. Chỉ đọc, không ghi; chỉ phụ thuộc khả năng tra cứu đặt phòng.
type AvailabilityService struct {
	reservations store.ReservationStore
}

func NewAvailabilityService(reservations store.ReservationStore) *AvailabilityService {
	return &AvailabilityService{reservations: reservations}
}

// Check quét các đặt phòng đang giữ phòng (RESERVED, CHECKED_IN) của
// phòng roomID và trả về những bản ghi chồng khoảng [start, end).
// Hai khoảng chỉ chạm biên (trả phòng đúng ngày nhận của đặt khác)
// không tính trùng. excludeID > 0 bỏ qua chính đặt phòng đó, dùng khi
// sửa ngày một đặt phòng sẵn có.
func (s *AvailabilityService) Check(roomID uint, start, end time.Time, excludeID uint) (*AvailabilityResult, error) {
	conflicts, err := s.reservations.List(store.ReservationFilter{
		RoomID:       roomID,
		Statuses:     constants.ActiveReservationStatuses,
		ExcludeID:    excludeID,
		OverlapStart: &start,
		OverlapEnd:   &end,
	})
	if err != nil {
		return nil, err
	}

	return &AvailabilityResult{
		Available: len(conflicts) == 0,
		Conflicts: conflicts,
	}, nil
}

// CheckAll trả về mọi đặt phòng đang giữ phòng chồng khoảng ngày trên
// toàn bộ khách sạn, phục vụ endpoint tra cứu chung không theo phòng.
func (s *AvailabilityService) CheckAll(start, end time.Time) ([]models.Reservation, error) {
	return s.reservations.List(store.ReservationFilter{
		Statuses:     constants.ActiveReservationStatuses,
		OverlapStart: &start,
		OverlapEnd:   &end,
	})
}
