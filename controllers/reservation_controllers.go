package controllers

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"hotel/dto"
	"hotel/response"
	"hotel/services"
	"hotel/validator"
)

type ReservationController struct {
	service *services.ReservationService
}

func NewReservationController(service *services.ReservationService) *ReservationController {
	return &ReservationController{service: service}
}

// GetReservations liệt kê đặt phòng, lọc được theo trạng thái, tên
// khách và khoảng ngày (truyền đủ cả startDate lẫn endDate)
func (ctrl *ReservationController) GetReservations(c *gin.Context) {
	input := services.ListReservationsInput{
		Status:    c.Query("status"),
		GuestName: c.Query("guestName"),
	}

	startStr := c.Query("startDate")
	endStr := c.Query("endDate")
	if startStr != "" && endStr != "" {
		start, err := dto.ParseDate(startStr)
		if err != nil {
			response.BadRequest(c, "startDate không hợp lệ, dùng định dạng YYYY-MM-DD")
			return
		}
		end, err := dto.ParseDate(endStr)
		if err != nil {
			response.BadRequest(c, "endDate không hợp lệ, dùng định dạng YYYY-MM-DD")
			return
		}
		input.StartDate = &start
		input.EndDate = &end
	}

	reservations, err := ctrl.service.List(input)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, reservations)
}

// GetReservationDetail lấy một đặt phòng kèm snapshot khách và phòng
func (ctrl *ReservationController) GetReservationDetail(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	reservation, err := ctrl.service.GetByID(id)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, reservation)
}

// CreateReservation đặt phòng mới
func (ctrl *ReservationController) CreateReservation(c *gin.Context) {
	var req dto.CreateReservationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Dữ liệu không hợp lệ: "+err.Error())
		return
	}

	// Định dạng ngày đã qua binding, parse không thể lỗi nữa
	start, _ := dto.ParseDate(req.StartDate)
	end, _ := dto.ParseDate(req.EndDate)

	reservation, err := ctrl.service.Create(services.CreateReservationInput{
		GuestID:         req.GuestID,
		RoomID:          req.RoomID,
		StartDate:       start,
		EndDate:         end,
		SpecialRequests: req.SpecialRequests,
	})
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, reservation, "Đặt phòng thành công")
}

// UpdateReservation sửa đặt phòng: đổi ngày, đổi phòng, đổi khách,
// chuyển trạng thái theo bảng chuyển trạng thái
func (ctrl *ReservationController) UpdateReservation(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	var req dto.UpdateReservationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Dữ liệu không hợp lệ: "+err.Error())
		return
	}

	input := services.AmendReservationInput{
		GuestID:         req.GuestID,
		RoomID:          req.RoomID,
		Status:          req.Status,
		SpecialRequests: req.SpecialRequests,
	}
	if req.StartDate != nil {
		start, _ := dto.ParseDate(*req.StartDate)
		input.StartDate = &start
	}
	if req.EndDate != nil {
		end, _ := dto.ParseDate(*req.EndDate)
		input.EndDate = &end
	}

	reservation, err := ctrl.service.Amend(id, input)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.SuccessWithMessage(c, reservation, "Cập nhật đặt phòng thành công")
}

// DeleteReservation hủy đặt phòng
func (ctrl *ReservationController) DeleteReservation(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	if err := ctrl.service.Cancel(id); err != nil {
		response.Error(c, err)
		return
	}
	response.Message(c, "Hủy đặt phòng thành công")
}

// CheckAvailability tra cứu phòng trống theo khoảng ngày, roomId
// tùy chọn; không truyền roomId thì trả danh sách trùng toàn khách sạn
func (ctrl *ReservationController) CheckAvailability(c *gin.Context) {
	startStr := c.Query("startDate")
	endStr := c.Query("endDate")
	if startStr == "" || endStr == "" {
		response.BadRequest(c, "startDate và endDate là bắt buộc")
		return
	}

	start, err := dto.ParseDate(startStr)
	if err != nil {
		response.BadRequest(c, "startDate không hợp lệ, dùng định dạng YYYY-MM-DD")
		return
	}
	end, err := dto.ParseDate(endStr)
	if err != nil {
		response.BadRequest(c, "endDate không hợp lệ, dùng định dạng YYYY-MM-DD")
		return
	}
	if err := validator.ValidateReservationDates(start, end); err != nil {
		response.Error(c, err)
		return
	}

	var roomID uint
	var roomIDPtr *uint
	if roomIDStr := c.Query("roomId"); roomIDStr != "" {
		parsed, err := strconv.ParseUint(roomIDStr, 10, 32)
		if err != nil {
			response.BadRequest(c, "roomId không hợp lệ")
			return
		}
		roomID = uint(parsed)
		roomIDPtr = &roomID
	}

	result, err := ctrl.service.CheckAvailability(roomID, start, end)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, dto.AvailabilityQueryResponse{
		StartDate:               start.Format(dto.DateLayout),
		EndDate:                 end.Format(dto.DateLayout),
		RoomID:                  roomIDPtr,
		IsAvailable:             result.Available,
		ConflictingReservations: result.Conflicts,
	})
}
