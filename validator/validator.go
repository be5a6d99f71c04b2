package validator

import (
	"regexp"
	"time"

	"hotel/errors"
	"hotel/models"
)

// ValidateReservationDates kiểm tra khoảng ngày đặt phòng: ngày nhận
// phòng không được ở quá khứ, ngày trả phòng phải sau ngày nhận phòng.
func ValidateReservationDates(start, end time.Time) error {
	today := time.Now().UTC().Truncate(24 * time.Hour)

	if start.Before(today) {
		return errors.NewAppError(errors.ErrCodeInvalidDate, "Ngày nhận phòng không được ở quá khứ", nil)
	}

	if !end.After(start) {
		return errors.NewAppError(errors.ErrCodeInvalidDate, "Ngày trả phòng phải sau ngày nhận phòng", nil)
	}

	return nil
}

// ValidateGuest validate thông tin khách
func ValidateGuest(guest *models.Guest) error {
	if guest.FirstName == "" {
		return errors.NewAppError(errors.ErrCodeRequiredField, "Tên khách không được để trống", nil)
	}

	if guest.LastName == "" {
		return errors.NewAppError(errors.ErrCodeRequiredField, "Họ khách không được để trống", nil)
	}

	if guest.Telephone == "" {
		return errors.NewAppError(errors.ErrCodeRequiredField, "Số điện thoại không được để trống", nil)
	}

	if guest.IDDocument == "" {
		return errors.NewAppError(errors.ErrCodeRequiredField, "Giấy tờ tùy thân không được để trống", nil)
	}

	if guest.Email != nil && *guest.Email != "" && !isValidEmail(*guest.Email) {
		return errors.NewAppError(errors.ErrCodeInvalidFormat, "Email không hợp lệ", nil)
	}

	return nil
}

// ValidateRoom validate thông tin phòng
func ValidateRoom(room *models.Room) error {
	if room.Name == "" {
		return errors.NewAppError(errors.ErrCodeRequiredField, "Tên phòng không được để trống", nil)
	}

	if room.Price <= 0 {
		return errors.NewAppError(errors.ErrCodeValidation, "Giá phòng phải lớn hơn 0", nil)
	}

	if room.Capacity <= 0 {
		return errors.NewAppError(errors.ErrCodeValidation, "Sức chứa phải lớn hơn 0", nil)
	}

	if room.Beds <= 0 {
		return errors.NewAppError(errors.ErrCodeValidation, "Số giường phải lớn hơn 0", nil)
	}

	if err := room.ValidateStatus(); err != nil {
		return errors.NewAppError(errors.ErrCodeValidation, "Trạng thái phòng không hợp lệ", err)
	}

	return nil
}

// isValidEmail kiểm tra email hợp lệ
func isValidEmail(email string) bool {
	emailRegex := regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)
	return emailRegex.MatchString(email)
}
