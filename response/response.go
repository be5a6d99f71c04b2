package response

import (
	"net/http"

	"github.com/gin-gonic/gin"

	apperrors "hotel/errors"
)

// Response định nghĩa cấu trúc response chung
type Response struct {
	Success bool        `json:"success"`
	Message string      `json:"message,omitempty"`
	Data    interface{} `json:"data,omitempty"`
	Error   string      `json:"error,omitempty"`
}

// ConflictResponse response khi trùng lịch đặt phòng, kèm danh sách trùng
type ConflictResponse struct {
	Success                 bool        `json:"success"`
	Message                 string      `json:"message"`
	ConflictingReservations interface{} `json:"conflictingReservations"`
}

// Success trả về response thành công
func Success(c *gin.Context, data interface{}) {
	c.JSON(http.StatusOK, Response{
		Success: true,
		Data:    data,
	})
}

// SuccessWithMessage trả về response thành công kèm thông báo
func SuccessWithMessage(c *gin.Context, data interface{}, message string) {
	c.JSON(http.StatusOK, Response{
		Success: true,
		Message: message,
		Data:    data,
	})
}

// Created trả về response tạo mới thành công (201)
func Created(c *gin.Context, data interface{}, message string) {
	c.JSON(http.StatusCreated, Response{
		Success: true,
		Message: message,
		Data:    data,
	})
}

// Message trả về response thành công chỉ có thông báo
func Message(c *gin.Context, message string) {
	c.JSON(http.StatusOK, Response{
		Success: true,
		Message: message,
	})
}

// BadRequest trả về response lỗi bad request
func BadRequest(c *gin.Context, message string) {
	c.JSON(http.StatusBadRequest, Response{
		Success: false,
		Message: message,
	})
}

// NotFound trả về response không tìm thấy
func NotFound(c *gin.Context, message string) {
	c.JSON(http.StatusNotFound, Response{
		Success: false,
		Message: message,
	})
}

// BookingConflict trả về response trùng lịch kèm danh sách đặt phòng trùng
func BookingConflict(c *gin.Context, message string, conflicts interface{}) {
	c.JSON(http.StatusBadRequest, ConflictResponse{
		Success:                 false,
		Message:                 message,
		ConflictingReservations: conflicts,
	})
}

// TooManyRequests trả về response vượt giới hạn request
func TooManyRequests(c *gin.Context) {
	c.JSON(http.StatusTooManyRequests, Response{
		Success: false,
		Message: "Quá nhiều request, thử lại sau",
	})
}

// ServerError trả về response lỗi server
func ServerError(c *gin.Context, err error) {
	resp := Response{
		Success: false,
		Message: "Lỗi server",
	}
	if err != nil {
		resp.Error = err.Error()
	}
	c.JSON(http.StatusInternalServerError, resp)
}

// Error quy lỗi của engine về response HTTP: lỗi validate, trùng
// dữ liệu, trùng lịch, sai trạng thái là 400; không tìm thấy là 404;
// còn lại là 500.
func Error(c *gin.Context, err error) {
	if confErr := apperrors.GetConflictError(err); confErr != nil {
		BookingConflict(c, confErr.Message, confErr.Conflicts)
		return
	}

	appErr := apperrors.GetAppError(err)
	if appErr == nil {
		ServerError(c, err)
		return
	}

	switch appErr.Code {
	case apperrors.ErrCodeNotFound:
		NotFound(c, appErr.Message)
	case apperrors.ErrCodeValidation,
		apperrors.ErrCodeRequiredField,
		apperrors.ErrCodeInvalidFormat,
		apperrors.ErrCodeInvalidDate,
		apperrors.ErrCodeDuplicate,
		apperrors.ErrCodeConflict,
		apperrors.ErrCodeInvalidState:
		BadRequest(c, appErr.Message)
	default:
		ServerError(c, appErr)
	}
}
