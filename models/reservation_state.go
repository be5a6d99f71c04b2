package models

import (
	"errors"

	"hotel/constants"
)

// ReservationState định nghĩa interface cho các trạng thái đặt phòng
type ReservationState interface {
	CheckIn(r *Reservation) error
	Complete(r *Reservation) error
	Cancel(r *Reservation) error
}

// ReservedState trạng thái mới đặt, chưa nhận phòng
type ReservedState struct{}

func (s *ReservedState) CheckIn(r *Reservation) error {
	r.Status = constants.ReservationStatusCheckedIn
	return nil
}

func (s *ReservedState) Complete(r *Reservation) error {
	return errors.New("cannot complete a reservation before check-in")
}

func (s *ReservedState) Cancel(r *Reservation) error {
	r.Status = constants.ReservationStatusCancelled
	return nil
}

// CheckedInState khách đã nhận phòng
type CheckedInState struct{}

func (s *CheckedInState) CheckIn(r *Reservation) error {
	return errors.New("guest already checked in")
}

func (s *CheckedInState) Complete(r *Reservation) error {
	r.Status = constants.ReservationStatusCompleted
	return nil
}

func (s *CheckedInState) Cancel(r *Reservation) error {
	r.Status = constants.ReservationStatusCancelled
	return nil
}

// CompletedState trạng thái kết thúc, không chuyển tiếp được nữa
type CompletedState struct{}

func (s *CompletedState) CheckIn(r *Reservation) error {
	return errors.New("reservation already completed")
}

func (s *CompletedState) Complete(r *Reservation) error {
	return errors.New("reservation already completed")
}

func (s *CompletedState) Cancel(r *Reservation) error {
	return errors.New("cannot cancel a completed reservation")
}

// CancelledState trạng thái đã hủy, không chuyển tiếp được nữa
type CancelledState struct{}

func (s *CancelledState) CheckIn(r *Reservation) error {
	return errors.New("reservation already cancelled")
}

func (s *CancelledState) Complete(r *Reservation) error {
	return errors.New("reservation already cancelled")
}

func (s *CancelledState) Cancel(r *Reservation) error {
	return errors.New("reservation already cancelled")
}

// GetReservationState trả về state tương ứng với trạng thái đặt phòng
func GetReservationState(status string) ReservationState {
	switch status {
	case constants.ReservationStatusReserved:
		return &ReservedState{}
	case constants.ReservationStatusCheckedIn:
		return &CheckedInState{}
	case constants.ReservationStatusCompleted:
		return &CompletedState{}
	case constants.ReservationStatusCancelled:
		return &CancelledState{}
	default:
		return &ReservedState{}
	}
}

// IsValidReservationStatus kiểm tra giá trị trạng thái có hợp lệ không
func IsValidReservationStatus(status string) bool {
	switch status {
	case constants.ReservationStatusReserved,
		constants.ReservationStatusCheckedIn,
		constants.ReservationStatusCompleted,
		constants.ReservationStatusCancelled:
		return true
	}
	return false
}

// TransitionTo chuyển đặt phòng sang trạng thái đích theo bảng chuyển trạng thái.
// Giữ nguyên trạng thái hiện tại thì coi như không làm gì.
func (r *Reservation) TransitionTo(target string) error {
	if r.Status == target {
		return nil
	}
	state := GetReservationState(r.Status)
	switch target {
	case constants.ReservationStatusCheckedIn:
		return state.CheckIn(r)
	case constants.ReservationStatusCompleted:
		return state.Complete(r)
	case constants.ReservationStatusCancelled:
		return state.Cancel(r)
	case constants.ReservationStatusReserved:
		return errors.New("cannot move a reservation back to RESERVED")
	default:
		return errors.New("unknown reservation status: " + target)
	}
}
