package controllers

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"hotel/dto"
	"hotel/response"
	"hotel/services"
)

type RoomController struct {
	service *services.RoomService
}

func NewRoomController(service *services.RoomService) *RoomController {
	return &RoomController{service: service}
}

// GetRooms liệt kê toàn bộ phòng
func (ctrl *RoomController) GetRooms(c *gin.Context) {
	rooms, err := ctrl.service.List()
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, rooms)
}

// GetAvailableRooms tìm phòng trống theo khoảng ngày và các ngưỡng lọc
func (ctrl *RoomController) GetAvailableRooms(c *gin.Context) {
	var input services.AvailableRoomsInput

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

	if capacityStr := c.Query("capacity"); capacityStr != "" {
		capacity, err := strconv.Atoi(capacityStr)
		if err != nil {
			response.BadRequest(c, "capacity không hợp lệ")
			return
		}
		input.MinCapacity = &capacity
	}
	if bedsStr := c.Query("beds"); bedsStr != "" {
		beds, err := strconv.Atoi(bedsStr)
		if err != nil {
			response.BadRequest(c, "beds không hợp lệ")
			return
		}
		input.MinBeds = &beds
	}
	if priceStr := c.Query("maxPrice"); priceStr != "" {
		price, err := strconv.ParseFloat(priceStr, 64)
		if err != nil {
			response.BadRequest(c, "maxPrice không hợp lệ")
			return
		}
		input.MaxPrice = &price
	}
	if c.Query("airConditioning") == "true" {
		ac := true
		input.AirConditioning = &ac
	}

	rooms, err := ctrl.service.Available(input)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, rooms)
}

// CheckRoomAvailability kiểm tra một phòng có trống trong khoảng ngày không
func (ctrl *RoomController) CheckRoomAvailability(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

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

	result, err := ctrl.service.CheckAvailability(id, start, end)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, dto.RoomAvailabilityResponse{
		RoomID:                  id,
		StartDate:               startStr,
		EndDate:                 endStr,
		IsAvailable:             result.Available,
		ConflictingReservations: result.Conflicts,
	})
}

// GetRoomDetail lấy phòng kèm lịch sử đặt phòng
func (ctrl *RoomController) GetRoomDetail(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	room, reservations, err := ctrl.service.GetDetail(id)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, dto.RoomDetailResponse{
		Room:         *room,
		Reservations: reservations,
	})
}

// CreateRoom tạo phòng mới
func (ctrl *RoomController) CreateRoom(c *gin.Context) {
	var req dto.CreateRoomRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Dữ liệu không hợp lệ: "+err.Error())
		return
	}

	room, err := ctrl.service.Create(req.ToModel())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, room, "Tạo phòng thành công")
}

// UpdateRoom sửa thông tin phòng
func (ctrl *RoomController) UpdateRoom(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	var req dto.UpdateRoomRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Dữ liệu không hợp lệ: "+err.Error())
		return
	}

	room, err := ctrl.service.Update(id, services.UpdateRoomInput{
		Name:            req.Name,
		Description:     req.Description,
		Price:           req.Price,
		Capacity:        req.Capacity,
		Beds:            req.Beds,
		AirConditioning: req.AirConditioning,
		Status:          req.Status,
	})
	if err != nil {
		response.Error(c, err)
		return
	}
	response.SuccessWithMessage(c, room, "Cập nhật phòng thành công")
}

// DeleteRoom xóa phòng không còn đặt phòng hoạt động
func (ctrl *RoomController) DeleteRoom(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	if err := ctrl.service.Delete(id); err != nil {
		response.Error(c, err)
		return
	}
	response.Message(c, "Xóa phòng thành công")
}
