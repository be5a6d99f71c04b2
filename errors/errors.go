package errors

import (
	"errors"
	"fmt"
)

// ErrorCode định nghĩa mã lỗi
type ErrorCode string

const (
	// Validation errors
	ErrCodeValidation    ErrorCode = "VALIDATION_ERROR"
	ErrCodeRequiredField ErrorCode = "REQUIRED_FIELD"
	ErrCodeInvalidFormat ErrorCode = "INVALID_FORMAT"
	ErrCodeInvalidDate   ErrorCode = "INVALID_DATE"

	// Business errors
	ErrCodeConflict     ErrorCode = "CONFLICT"
	ErrCodeDuplicate    ErrorCode = "DUPLICATE"
	ErrCodeNotFound     ErrorCode = "NOT_FOUND"
	ErrCodeInvalidState ErrorCode = "INVALID_STATE"

	// Database errors
	ErrCodeDBError ErrorCode = "DB_ERROR"
)

// AppError định nghĩa lỗi của ứng dụng
type AppError struct {
	Code    ErrorCode
	Message string
	Err     error
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// NewAppError tạo một AppError mới
func NewAppError(code ErrorCode, message string, err error) *AppError {
	return &AppError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}

// GetAppError lấy AppError từ error
func GetAppError(err error) *AppError {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr
	}
	return nil
}

// HasCode kiểm tra error có mang mã lỗi chỉ định không
func HasCode(err error, code ErrorCode) bool {
	if appErr := GetAppError(err); appErr != nil {
		return appErr.Code == code
	}
	return false
}

// ConflictError lỗi trùng lịch đặt phòng, mang theo danh sách đặt phòng bị trùng.
// Conflicts để kiểu interface{} nhằm tránh import vòng với package models;
// controller trả nguyên danh sách này trong response.
type ConflictError struct {
	Message   string
	Conflicts interface{}
}

func (e *ConflictError) Error() string {
	return fmt.Sprintf("[%s] %s", ErrCodeConflict, e.Message)
}

// NewConflictError tạo lỗi trùng lịch kèm danh sách đặt phòng trùng
func NewConflictError(message string, conflicts interface{}) *ConflictError {
	return &ConflictError{
		Message:   message,
		Conflicts: conflicts,
	}
}

// GetConflictError lấy ConflictError từ error
func GetConflictError(err error) *ConflictError {
	var confErr *ConflictError
	if errors.As(err, &confErr) {
		return confErr
	}
	return nil
}

var (
	// Guest errors
	ErrGuestNotFound = errors.New("guest not found")
	ErrGuestExists   = errors.New("guest already exists")

	// Room errors
	ErrRoomNotFound   = errors.New("room not found")
	ErrRoomNameExists = errors.New("room name already exists")

	// Reservation errors
	ErrReservationNotFound  = errors.New("reservation not found")
	ErrReservationCompleted = errors.New("reservation already completed")
)
