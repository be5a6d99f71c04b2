package constants

// Reservation status
const (
	ReservationStatusReserved  = "RESERVED"
	ReservationStatusCheckedIn = "CHECKED_IN"
	ReservationStatusCompleted = "COMPLETED"
	ReservationStatusCancelled = "CANCELLED"
)

// Room status
const (
	RoomStatusAvailable   = "AVAILABLE"
	RoomStatusUnavailable = "UNAVAILABLE"
)

// ActiveReservationStatuses các trạng thái còn đang giữ phòng
var ActiveReservationStatuses = []string{
	ReservationStatusReserved,
	ReservationStatusCheckedIn,
}

// Loại giấy tờ mặc định khi đăng ký khách
const DefaultIDDocumentType = "Passport"
