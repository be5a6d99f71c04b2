package store

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"hotel/builders"
	"hotel/constants"
	"hotel/models"
)

func strPtr(s string) *string        { return &s }
func intPtr(n int) *int              { return &n }
func floatPtr(f float64) *float64    { return &f }
func timePtr(t time.Time) *time.Time { return &t }

func mkDate(s string) time.Time {
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		panic(err)
	}
	return t
}

func seedGuest(t *testing.T, s *MemoryStore, first, last, doc string, email *string) *models.Guest {
	t.Helper()
	guest := &models.Guest{
		FirstName:  first,
		LastName:   last,
		Email:      email,
		Telephone:  "0901234567",
		IDDocument: doc,
	}
	require.NoError(t, s.Guests().Create(guest))
	return guest
}

func seedRoom(t *testing.T, s *MemoryStore, name string, price float64) *models.Room {
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

func TestMemoryStoreGuestUniqueness(t *testing.T) {
	s := NewMemoryStore()
	seedGuest(t, s, "An", "Nguyễn", "C1111111", strPtr("an@example.com"))

	t.Run("trùng email", func(t *testing.T) {
		err := s.Guests().Create(&models.Guest{
			FirstName:  "Bình",
			LastName:   "Trần",
			Email:      strPtr("an@example.com"),
			Telephone:  "0907654321",
			IDDocument: "C2222222",
		})
		assert.Equal(t, ErrDuplicate, err)
	})

	t.Run("trùng giấy tờ", func(t *testing.T) {
		err := s.Guests().Create(&models.Guest{
			FirstName:  "Bình",
			LastName:   "Trần",
			Telephone:  "0907654321",
			IDDocument: "C1111111",
		})
		assert.Equal(t, ErrDuplicate, err)
	})

	t.Run("hai khách cùng không có email", func(t *testing.T) {
		assert.NoError(t, s.Guests().Create(&models.Guest{
			FirstName:  "Bình",
			LastName:   "Trần",
			Telephone:  "0907654321",
			IDDocument: "C3333333",
		}))
	})
}

func TestMemoryStoreGuestSearch(t *testing.T) {
	s := NewMemoryStore()
	seedGuest(t, s, "An", "Nguyễn", "C1111111", strPtr("an@example.com"))
	seedGuest(t, s, "Maria", "Santos", "P9988776", strPtr("maria@example.com"))

	t.Run("theo tên không phân biệt hoa thường", func(t *testing.T) {
		guests, err := s.Guests().List(GuestFilter{Query: "maria"})
		require.NoError(t, err)
		require.Len(t, guests, 1)
		assert.Equal(t, "Santos", guests[0].LastName)
	})

	t.Run("theo giấy tờ", func(t *testing.T) {
		guests, err := s.Guests().List(GuestFilter{Query: "C111"})
		require.NoError(t, err)
		require.Len(t, guests, 1)
		assert.Equal(t, "An", guests[0].FirstName)
	})

	t.Run("query rỗng trả toàn bộ", func(t *testing.T) {
		guests, err := s.Guests().List(GuestFilter{})
		require.NoError(t, err)
		assert.Len(t, guests, 2)
	})
}

func TestMemoryStoreRoomFilter(t *testing.T) {
	s := NewMemoryStore()
	seedRoom(t, s, "Phòng 101", 80)
	double := seedRoom(t, s, "Phòng 201", 150)
	double.Capacity = 4
	double.Beds = 2
	double.AirConditioning = true
	require.NoError(t, s.Rooms().Update(double))
	closed := seedRoom(t, s, "Phòng 301", 60)
	closed.Status = constants.RoomStatusUnavailable
	require.NoError(t, s.Rooms().Update(closed))

	t.Run("theo trạng thái", func(t *testing.T) {
		rooms, err := s.Rooms().List(RoomFilter{Status: constants.RoomStatusAvailable})
		require.NoError(t, err)
		assert.Len(t, rooms, 2)
	})

	t.Run("theo ngưỡng sức chứa và máy lạnh", func(t *testing.T) {
		rooms, err := s.Rooms().List(RoomFilter{
			MinCapacity:     intPtr(3),
			AirConditioning: boolPtr(true),
		})
		require.NoError(t, err)
		require.Len(t, rooms, 1)
		assert.Equal(t, "Phòng 201", rooms[0].Name)
	})

	t.Run("theo giá trần, sắp theo giá tăng dần", func(t *testing.T) {
		rooms, err := s.Rooms().List(RoomFilter{MaxPrice: floatPtr(100), OrderByPrice: true})
		require.NoError(t, err)
		require.Len(t, rooms, 2)
		assert.Equal(t, "Phòng 301", rooms[0].Name)
		assert.Equal(t, "Phòng 101", rooms[1].Name)
	})

	t.Run("trùng tên phòng", func(t *testing.T) {
		err := s.Rooms().Create(&models.Room{Name: "Phòng 101", Price: 90, Capacity: 2, Beds: 1})
		assert.Equal(t, ErrDuplicate, err)
	})
}

func boolPtr(b bool) *bool { return &b }

func TestMemoryStoreReservationFilter(t *testing.T) {
	s := NewMemoryStore()
	guest := seedGuest(t, s, "An", "Nguyễn", "C1111111", nil)
	other := seedGuest(t, s, "Maria", "Santos", "P9988776", nil)
	room := seedRoom(t, s, "Phòng 101", 100)

	res1 := builders.NewReservationBuilder().
		WithGuest(guest.ID).WithRoom(room.ID).
		WithDates(mkDate("2026-09-10"), mkDate("2026-09-15")).
		Build()
	require.NoError(t, s.Reservations().Create(res1))

	res2 := builders.NewReservationBuilder().
		WithGuest(other.ID).WithRoom(room.ID).
		WithDates(mkDate("2026-09-20"), mkDate("2026-09-25")).
		WithStatus(constants.ReservationStatusCancelled).
		Build()
	require.NoError(t, s.Reservations().Create(res2))

	t.Run("gắn snapshot khách và phòng khi đọc", func(t *testing.T) {
		got, err := s.Reservations().GetByID(res1.ID)
		require.NoError(t, err)
		require.NotNil(t, got.Guest)
		require.NotNil(t, got.Room)
		assert.Equal(t, "An", got.Guest.FirstName)
		assert.Equal(t, "Phòng 101", got.Room.Name)
	})

	t.Run("lọc theo trạng thái", func(t *testing.T) {
		list, err := s.Reservations().List(ReservationFilter{
			Statuses: constants.ActiveReservationStatuses,
		})
		require.NoError(t, err)
		require.Len(t, list, 1)
		assert.Equal(t, res1.ID, list[0].ID)
	})

	t.Run("lọc chồng khoảng ngày và loại trừ chính nó", func(t *testing.T) {
		list, err := s.Reservations().List(ReservationFilter{
			RoomID:       room.ID,
			OverlapStart: timePtr(mkDate("2026-09-12")),
			OverlapEnd:   timePtr(mkDate("2026-09-14")),
		})
		require.NoError(t, err)
		require.Len(t, list, 1)

		list, err = s.Reservations().List(ReservationFilter{
			RoomID:       room.ID,
			OverlapStart: timePtr(mkDate("2026-09-12")),
			OverlapEnd:   timePtr(mkDate("2026-09-14")),
			ExcludeID:    res1.ID,
		})
		require.NoError(t, err)
		assert.Empty(t, list)
	})

	t.Run("lọc theo tên khách", func(t *testing.T) {
		list, err := s.Reservations().List(ReservationFilter{GuestName: "santos"})
		require.NoError(t, err)
		require.Len(t, list, 1)
		assert.Equal(t, res2.ID, list[0].ID)
	})

	t.Run("lọc theo khoảng ngày bao nhau", func(t *testing.T) {
		// Khoảng lọc ôm trọn đặt phòng
		list, err := s.Reservations().List(ReservationFilter{
			RangeStart: timePtr(mkDate("2026-09-01")),
			RangeEnd:   timePtr(mkDate("2026-09-16")),
		})
		require.NoError(t, err)
		require.Len(t, list, 1)
		assert.Equal(t, res1.ID, list[0].ID)

		// Đặt phòng ôm trọn khoảng lọc
		list, err = s.Reservations().List(ReservationFilter{
			RangeStart: timePtr(mkDate("2026-09-21")),
			RangeEnd:   timePtr(mkDate("2026-09-22")),
		})
		require.NoError(t, err)
		require.Len(t, list, 1)
		assert.Equal(t, res2.ID, list[0].ID)

		// Chỉ chồng một phần thì không khớp
		list, err = s.Reservations().List(ReservationFilter{
			RangeStart: timePtr(mkDate("2026-09-14")),
			RangeEnd:   timePtr(mkDate("2026-09-21")),
		})
		require.NoError(t, err)
		assert.Empty(t, list)
	})
}

func TestMemoryStoreTransactionRollsNothingBack(t *testing.T) {
	// Transaction của MemoryStore chỉ tuần tự hóa, không rollback;
	// caller phải tự kiểm tra trước khi ghi, giống luồng của service.
	s := NewMemoryStore()
	room := seedRoom(t, s, "Phòng 101", 100)

	err := s.Transaction(func(tx Store) error {
		got, err := tx.Rooms().GetByID(room.ID)
		if err != nil {
			return err
		}
		got.Price = 130
		return tx.Rooms().Update(got)
	})
	require.NoError(t, err)

	got, err := s.Rooms().GetByID(room.ID)
	require.NoError(t, err)
	assert.Equal(t, 130.0, got.Price)
}
