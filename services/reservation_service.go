package services

import (
	"time"

	"hotel/constants"
	"hotel/errors"
	"hotel/models"
	"hotel/services/logger"
	"hotel/store"
	"hotel/validator"
)

// CreateReservationInput dữ liệu tạo đặt phòng, đã parse sẵn ở controller
type CreateReservationInput struct {
	GuestID         uint
	RoomID          uint
	StartDate       time.Time
	EndDate         time.Time
	SpecialRequests string
}

// AmendReservationInput dữ liệu sửa đặt phòng, field nil là giữ nguyên
type AmendReservationInput struct {
	GuestID         *uint
	RoomID          *uint
	StartDate       *time.Time
	EndDate         *time.Time
	Status          *string
	SpecialRequests *string
}

// ListReservationsInput bộ lọc danh sách đặt phòng
type ListReservationsInput struct {
	Status    string
	GuestName string
	StartDate *time.Time
	EndDate   *time.Time
}

// ReservationService quản lý vòng đời đặt phòng: tạo, sửa, hủy và tra
// cứu. Mọi cặp kiểm tra phòng trống + ghi chạy trong một transaction
// của store để hai booking song song không giành được cùng khoảng ngày.
type ReservationService struct {
	store  store.Store
	logger logger.Logger
}

type ReservationServiceOptions struct {
	Store  store.Store
	Logger logger.Logger
}

func NewReservationService(opts ReservationServiceOptions) *ReservationService {
	l := opts.Logger
	if l == nil {
		l = logger.NewDefaultLogger(logger.InfoLevel)
	}
	return &ReservationService{
		store:  opts.Store,
		logger: l,
	}
}

// Create tạo đặt phòng mới ở trạng thái RESERVED sau khi kiểm tra
// ngày hợp lệ và phòng còn trống. Giá = số đêm x giá phòng hiện tại.
func (s *ReservationService) Create(input CreateReservationInput) (*models.Reservation, error) {
	if input.GuestID == 0 || input.RoomID == 0 || input.StartDate.IsZero() || input.EndDate.IsZero() {
		return nil, errors.NewAppError(errors.ErrCodeRequiredField,
			"Khách, phòng, ngày nhận và ngày trả phòng là bắt buộc", nil)
	}

	if err := validator.ValidateReservationDates(input.StartDate, input.EndDate); err != nil {
		return nil, err
	}

	var created *models.Reservation
	err := s.store.Transaction(func(tx store.Store) error {
		availability := NewAvailabilityService(tx.Reservations())
		result, err := availability.Check(input.RoomID, input.StartDate, input.EndDate, 0)
		if err != nil {
			return err
		}
		if !result.Available {
			return errors.NewConflictError(
				"Phòng không còn trống trong khoảng ngày đã chọn", result.Conflicts)
		}

		if _, err := tx.Guests().GetByID(input.GuestID); err != nil {
			if err == store.ErrNotFound {
				return errors.NewAppError(errors.ErrCodeNotFound, "Không tìm thấy khách", errors.ErrGuestNotFound)
			}
			return err
		}

		room, err := tx.Rooms().GetByID(input.RoomID)
		if err != nil {
			if err == store.ErrNotFound {
				return errors.NewAppError(errors.ErrCodeNotFound, "Không tìm thấy phòng", errors.ErrRoomNotFound)
			}
			return err
		}

		nights := models.CalculateNights(input.StartDate, input.EndDate)
		reservation := &models.Reservation{
			GuestID:         input.GuestID,
			RoomID:          input.RoomID,
			StartDate:       input.StartDate,
			EndDate:         input.EndDate,
			Nights:          nights,
			TotalAmount:     float64(nights) * room.Price,
			SpecialRequests: input.SpecialRequests,
			Status:          constants.ReservationStatusReserved,
		}
		if err := tx.Reservations().Create(reservation); err != nil {
			return err
		}

		created, err = tx.Reservations().GetByID(reservation.ID)
		return err
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("tạo đặt phòng %d: phòng %d, %s -> %s, %d đêm",
		created.ID, created.RoomID,
		created.StartDate.Format("2006-01-02"), created.EndDate.Format("2006-01-02"),
		created.Nights)
	return created, nil
}

// Amend sửa một đặt phòng sẵn có. Chỉ cần một trong hai ngày thay đổi
// là cặp ngày sau khi gộp với bản ghi cũ phải qua lại validate và
// kiểm tra phòng trống (bỏ qua chính nó). Đổi ngày hoặc đổi phòng thì
// tính lại số đêm và tổng tiền theo giá phòng hiện tại, không phải giá
// lúc đặt. Đổi trạng thái phải đi qua bảng chuyển trạng thái.
func (s *ReservationService) Amend(id uint, input AmendReservationInput) (*models.Reservation, error) {
	var updated *models.Reservation
	err := s.store.Transaction(func(tx store.Store) error {
		reservation, err := tx.Reservations().GetByID(id)
		if err != nil {
			if err == store.ErrNotFound {
				return errors.NewAppError(errors.ErrCodeNotFound, "Không tìm thấy đặt phòng", errors.ErrReservationNotFound)
			}
			return err
		}

		newStart := reservation.StartDate
		newEnd := reservation.EndDate
		if input.StartDate != nil {
			newStart = *input.StartDate
		}
		if input.EndDate != nil {
			newEnd = *input.EndDate
		}

		newRoomID := reservation.RoomID
		if input.RoomID != nil && *input.RoomID != 0 {
			newRoomID = *input.RoomID
		}

		datesChanged := input.StartDate != nil || input.EndDate != nil
		roomChanged := newRoomID != reservation.RoomID

		if datesChanged {
			if err := validator.ValidateReservationDates(newStart, newEnd); err != nil {
				return err
			}
		}

		if datesChanged || roomChanged {
			availability := NewAvailabilityService(tx.Reservations())
			result, err := availability.Check(newRoomID, newStart, newEnd, reservation.ID)
			if err != nil {
				return err
			}
			if !result.Available {
				return errors.NewConflictError(
					"Phòng không còn trống trong khoảng ngày đã chọn", result.Conflicts)
			}

			room, err := tx.Rooms().GetByID(newRoomID)
			if err != nil {
				if err == store.ErrNotFound {
					return errors.NewAppError(errors.ErrCodeNotFound, "Không tìm thấy phòng", errors.ErrRoomNotFound)
				}
				return err
			}

			// Tính lại theo giá hiện tại của phòng
			nights := models.CalculateNights(newStart, newEnd)
			reservation.Nights = nights
			reservation.TotalAmount = float64(nights) * room.Price
		}

		if input.GuestID != nil && *input.GuestID != 0 && *input.GuestID != reservation.GuestID {
			if _, err := tx.Guests().GetByID(*input.GuestID); err != nil {
				if err == store.ErrNotFound {
					return errors.NewAppError(errors.ErrCodeNotFound, "Không tìm thấy khách", errors.ErrGuestNotFound)
				}
				return err
			}
			reservation.GuestID = *input.GuestID
		}

		if input.Status != nil {
			if !models.IsValidReservationStatus(*input.Status) {
				return errors.NewAppError(errors.ErrCodeValidation, "Trạng thái đặt phòng không hợp lệ", nil)
			}
			if err := reservation.TransitionTo(*input.Status); err != nil {
				return errors.NewAppError(errors.ErrCodeInvalidState, "Chuyển trạng thái không hợp lệ", err)
			}
		}

		reservation.RoomID = newRoomID
		reservation.StartDate = newStart
		reservation.EndDate = newEnd
		if input.SpecialRequests != nil {
			reservation.SpecialRequests = *input.SpecialRequests
		}

		if err := tx.Reservations().Update(reservation); err != nil {
			return err
		}

		updated, err = tx.Reservations().GetByID(reservation.ID)
		return err
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("cập nhật đặt phòng %d", updated.ID)
	return updated, nil
}

// Cancel hủy đặt phòng bằng cách xóa bản ghi. Đặt phòng đã COMPLETED
// thì không hủy được nữa.
func (s *ReservationService) Cancel(id uint) error {
	reservation, err := s.store.Reservations().GetByID(id)
	if err != nil {
		if err == store.ErrNotFound {
			return errors.NewAppError(errors.ErrCodeNotFound, "Không tìm thấy đặt phòng", errors.ErrReservationNotFound)
		}
		return err
	}

	if reservation.Status == constants.ReservationStatusCompleted {
		return errors.NewAppError(errors.ErrCodeInvalidState,
			"Không thể hủy đặt phòng đã hoàn thành", errors.ErrReservationCompleted)
	}

	if err := s.store.Reservations().Delete(id); err != nil {
		return err
	}

	s.logger.Info("hủy đặt phòng %d", id)
	return nil
}

// GetByID lấy đặt phòng kèm snapshot khách và phòng
func (s *ReservationService) GetByID(id uint) (*models.Reservation, error) {
	reservation, err := s.store.Reservations().GetByID(id)
	if err != nil {
		if err == store.ErrNotFound {
			return nil, errors.NewAppError(errors.ErrCodeNotFound, "Không tìm thấy đặt phòng", errors.ErrReservationNotFound)
		}
		return nil, err
	}
	return reservation, nil
}

// List liệt kê đặt phòng theo bộ lọc: trạng thái khớp đúng, tên khách
// chứa chuỗi (không phân biệt hoa thường) và khoảng ngày bao nhau.
func (s *ReservationService) List(input ListReservationsInput) ([]models.Reservation, error) {
	filter := store.ReservationFilter{
		GuestName:  input.GuestName,
		RangeStart: input.StartDate,
		RangeEnd:   input.EndDate,
	}
	if input.Status != "" {
		filter.Statuses = []string{input.Status}
	}
	return s.store.Reservations().List(filter)
}

// CheckAvailability kiểm tra phòng trống cho endpoint tra cứu.
// roomID = 0 nghĩa là tra trên toàn bộ khách sạn.
func (s *ReservationService) CheckAvailability(roomID uint, start, end time.Time) (*AvailabilityResult, error) {
	availability := NewAvailabilityService(s.store.Reservations())
	if roomID != 0 {
		return availability.Check(roomID, start, end, 0)
	}

	conflicts, err := availability.CheckAll(start, end)
	if err != nil {
		return nil, err
	}
	// Không chỉ định phòng thì chỉ trả danh sách trùng để tham khảo
	return &AvailabilityResult{Available: true, Conflicts: conflicts}, nil
}
