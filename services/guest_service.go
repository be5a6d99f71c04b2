package services

import (
	"hotel/constants"
	"hotel/errors"
	"hotel/models"
	"hotel/services/logger"
	"hotel/store"
	"hotel/validator"
)

// UpdateGuestInput dữ liệu sửa khách, field nil là giữ nguyên
type UpdateGuestInput struct {
	FirstName      *string
	LastName       *string
	Email          *string
	Telephone      *string
	IDDocument     *string
	IDDocumentType *string
}

// GuestService quản lý hồ sơ khách
type GuestService struct {
	store  store.Store
	logger logger.Logger
}

type GuestServiceOptions struct {
	Store  store.Store
	Logger logger.Logger
}

func NewGuestService(opts GuestServiceOptions) *GuestService {
	l := opts.Logger
	if l == nil {
		l = logger.NewDefaultLogger(logger.InfoLevel)
	}
	return &GuestService{
		store:  opts.Store,
		logger: l,
	}
}

// Create đăng ký khách mới, email và giấy tờ tùy thân không được trùng
func (s *GuestService) Create(guest *models.Guest) (*models.Guest, error) {
	if guest.IDDocumentType == "" {
		guest.IDDocumentType = constants.DefaultIDDocumentType
	}
	// Email trống lưu thành NULL để không đụng unique index
	if guest.Email != nil && *guest.Email == "" {
		guest.Email = nil
	}
	if err := validator.ValidateGuest(guest); err != nil {
		return nil, err
	}

	if err := s.store.Guests().Create(guest); err != nil {
		if err == store.ErrDuplicate {
			return nil, errors.NewAppError(errors.ErrCodeDuplicate,
				"Đã có khách dùng email hoặc giấy tờ tùy thân này", errors.ErrGuestExists)
		}
		return nil, err
	}
	return guest, nil
}

// GetByID lấy thông tin một khách
func (s *GuestService) GetByID(id uint) (*models.Guest, error) {
	guest, err := s.store.Guests().GetByID(id)
	if err != nil {
		if err == store.ErrNotFound {
			return nil, errors.NewAppError(errors.ErrCodeNotFound, "Không tìm thấy khách", errors.ErrGuestNotFound)
		}
		return nil, err
	}
	return guest, nil
}

// GetDetail lấy khách kèm lịch sử đặt phòng của họ
func (s *GuestService) GetDetail(id uint) (*models.Guest, []models.Reservation, error) {
	guest, err := s.GetByID(id)
	if err != nil {
		return nil, nil, err
	}
	reservations, err := s.store.Reservations().List(store.ReservationFilter{GuestID: id})
	if err != nil {
		return nil, nil, err
	}
	return guest, reservations, nil
}

// Update sửa thông tin khách theo kiểu merge từng field
func (s *GuestService) Update(id uint, input UpdateGuestInput) (*models.Guest, error) {
	guest, err := s.GetByID(id)
	if err != nil {
		return nil, err
	}

	if input.FirstName != nil {
		guest.FirstName = *input.FirstName
	}
	if input.LastName != nil {
		guest.LastName = *input.LastName
	}
	if input.Email != nil {
		if *input.Email == "" {
			// Xóa email lưu thành NULL để không đụng unique index
			guest.Email = nil
		} else {
			guest.Email = input.Email
		}
	}
	if input.Telephone != nil {
		guest.Telephone = *input.Telephone
	}
	if input.IDDocument != nil {
		guest.IDDocument = *input.IDDocument
	}
	if input.IDDocumentType != nil {
		guest.IDDocumentType = *input.IDDocumentType
	}

	if err := validator.ValidateGuest(guest); err != nil {
		return nil, err
	}

	if err := s.store.Guests().Update(guest); err != nil {
		if err == store.ErrDuplicate {
			return nil, errors.NewAppError(errors.ErrCodeDuplicate,
				"Đã có khách dùng email hoặc giấy tờ tùy thân này", errors.ErrGuestExists)
		}
		return nil, err
	}
	return guest, nil
}

// Delete xóa khách nếu họ không còn đặt phòng nào đang giữ phòng
func (s *GuestService) Delete(id uint) error {
	if _, err := s.GetByID(id); err != nil {
		return err
	}

	active, err := s.store.Reservations().List(store.ReservationFilter{
		GuestID:  id,
		Statuses: constants.ActiveReservationStatuses,
	})
	if err != nil {
		return err
	}
	if len(active) > 0 {
		return errors.NewAppError(errors.ErrCodeInvalidState,
			"Không thể xóa khách đang có đặt phòng hoạt động", nil)
	}

	return s.store.Guests().Delete(id)
}

// List liệt kê khách, query rỗng trả toàn bộ
func (s *GuestService) List(query string) ([]models.Guest, error) {
	return s.store.Guests().List(store.GuestFilter{Query: query})
}
