package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"hotel/builders"
	"hotel/constants"
	"hotel/models"
	"hotel/services/logger"
	"hotel/store"
)

// day trả về mốc ngày (UTC, cắt giờ) cách hôm nay n ngày
func day(n int) time.Time {
	return time.Now().UTC().Truncate(24*time.Hour).AddDate(0, 0, n)
}

func quietLogger() logger.Logger {
	return logger.NewDefaultLogger(logger.ErrorLevel)
}

func seedGuest(t *testing.T, s store.Store, first, last, doc string) *models.Guest {
	t.Helper()
	guest := &models.Guest{
		FirstName:  first,
		LastName:   last,
		Telephone:  "0901234567",
		IDDocument: doc,
	}
	require.NoError(t, s.Guests().Create(guest))
	return guest
}

func seedRoom(t *testing.T, s store.Store, name string, price float64) *models.Room {
	t.Helper()
	room := &models.Room{
		Name:     name,
		Price:    price,
		Capacity: 2,
		Beds:     1,
		Status:   constants.RoomStatusAvailable,
	}
	require.NoError(t, s.Rooms().Create(room))
	return room
}

func seedReservation(t *testing.T, s store.Store, guestID, roomID uint, start, end time.Time, status string) *models.Reservation {
	t.Helper()
	res := builders.NewReservationBuilder().
		WithGuest(guestID).
		WithRoom(roomID).
		WithDates(start, end).
		WithStatus(status).
		Build()
	require.NoError(t, s.Reservations().Create(res))
	return res
}

func TestAvailabilityCheck(t *testing.T) {
	s := store.NewMemoryStore()
	guest := seedGuest(t, s, "An", "Nguyễn", "C1111111")
	room := seedRoom(t, s, "Phòng 101", 100)
	other := seedRoom(t, s, "Phòng 102", 100)

	existing := seedReservation(t, s, guest.ID, room.ID,
		day(10), day(15), constants.ReservationStatusReserved)

	availability := NewAvailabilityService(s.Reservations())

	t.Run("phòng trống khi không có đặt phòng nào", func(t *testing.T) {
		result, err := availability.Check(other.ID, day(10), day(15), 0)
		require.NoError(t, err)
		assert.True(t, result.Available)
		assert.Empty(t, result.Conflicts)
	})

	t.Run("báo trùng khi khoảng ngày chồng nhau", func(t *testing.T) {
		result, err := availability.Check(room.ID, day(12), day(20), 0)
		require.NoError(t, err)
		assert.False(t, result.Available)
		require.Len(t, result.Conflicts, 1)
		assert.Equal(t, existing.ID, result.Conflicts[0].ID)
	})

	t.Run("chạm biên không tính trùng", func(t *testing.T) {
		result, err := availability.Check(room.ID, day(15), day(18), 0)
		require.NoError(t, err)
		assert.True(t, result.Available)

		result, err = availability.Check(room.ID, day(8), day(10), 0)
		require.NoError(t, err)
		assert.True(t, result.Available)
	})

	t.Run("đặt phòng đã hủy không giữ phòng", func(t *testing.T) {
		seedReservation(t, s, guest.ID, other.ID,
			day(10), day(15), constants.ReservationStatusCancelled)
		result, err := availability.Check(other.ID, day(10), day(15), 0)
		require.NoError(t, err)
		assert.True(t, result.Available)
	})

	t.Run("bỏ qua chính đặt phòng đang sửa", func(t *testing.T) {
		result, err := availability.Check(room.ID, day(11), day(14), existing.ID)
		require.NoError(t, err)
		assert.True(t, result.Available)
	})
}

func TestAvailabilityCheckAll(t *testing.T) {
	s := store.NewMemoryStore()
	guest := seedGuest(t, s, "An", "Nguyễn", "C1111111")
	room1 := seedRoom(t, s, "Phòng 101", 100)
	room2 := seedRoom(t, s, "Phòng 102", 120)

	seedReservation(t, s, guest.ID, room1.ID, day(10), day(15), constants.ReservationStatusReserved)
	seedReservation(t, s, guest.ID, room2.ID, day(12), day(18), constants.ReservationStatusCheckedIn)
	seedReservation(t, s, guest.ID, room2.ID, day(20), day(25), constants.ReservationStatusReserved)

	availability := NewAvailabilityService(s.Reservations())

	conflicts, err := availability.CheckAll(day(13), day(16))
	require.NoError(t, err)
	assert.Len(t, conflicts, 2)

	conflicts, err = availability.CheckAll(day(18), day(20))
	require.NoError(t, err)
	assert.Empty(t, conflicts)
}
