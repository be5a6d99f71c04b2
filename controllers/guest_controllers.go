package controllers

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"hotel/dto"
	"hotel/response"
	"hotel/services"
)

// parseIDParam đọc tham số :id trên path
func parseIDParam(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil || id == 0 {
		response.BadRequest(c, "ID không hợp lệ")
		return 0, false
	}
	return uint(id), true
}

type GuestController struct {
	service *services.GuestService
}

func NewGuestController(service *services.GuestService) *GuestController {
	return &GuestController{service: service}
}

// GetGuests liệt kê toàn bộ khách
func (ctrl *GuestController) GetGuests(c *gin.Context) {
	guests, err := ctrl.service.List("")
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, guests)
}

// SearchGuests tìm khách theo chuỗi trên tên, email, số điện thoại, giấy tờ
func (ctrl *GuestController) SearchGuests(c *gin.Context) {
	query := c.Query("query")
	if query == "" {
		response.BadRequest(c, "Thiếu tham số query")
		return
	}

	guests, err := ctrl.service.List(query)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, guests)
}

// GetGuestDetail lấy khách kèm lịch sử đặt phòng
func (ctrl *GuestController) GetGuestDetail(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	guest, reservations, err := ctrl.service.GetDetail(id)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, dto.GuestDetailResponse{
		Guest:        *guest,
		Reservations: reservations,
	})
}

// CreateGuest đăng ký khách mới
func (ctrl *GuestController) CreateGuest(c *gin.Context) {
	var req dto.CreateGuestRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Dữ liệu không hợp lệ: "+err.Error())
		return
	}

	guest, err := ctrl.service.Create(req.ToModel())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, guest, "Đăng ký khách thành công")
}

// UpdateGuest sửa thông tin khách
func (ctrl *GuestController) UpdateGuest(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	var req dto.UpdateGuestRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Dữ liệu không hợp lệ: "+err.Error())
		return
	}

	guest, err := ctrl.service.Update(id, services.UpdateGuestInput{
		FirstName:      req.FirstName,
		LastName:       req.LastName,
		Email:          req.Email,
		Telephone:      req.Telephone,
		IDDocument:     req.IDDocument,
		IDDocumentType: req.IDDocumentType,
	})
	if err != nil {
		response.Error(c, err)
		return
	}
	response.SuccessWithMessage(c, guest, "Cập nhật khách thành công")
}

// DeleteGuest xóa khách không còn đặt phòng hoạt động
func (ctrl *GuestController) DeleteGuest(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	if err := ctrl.service.Delete(id); err != nil {
		response.Error(c, err)
		return
	}
	response.Message(c, "Xóa khách thành công")
}
