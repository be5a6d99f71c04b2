package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"hotel/constants"
	"hotel/errors"
	"hotel/models"
	"hotel/store"
)

func newGuestService(s store.Store) *GuestService {
	return NewGuestService(GuestServiceOptions{
		Store:  s,
		Logger: quietLogger(),
	})
}

func TestGuestCreate(t *testing.T) {
	s := store.NewMemoryStore()
	service := newGuestService(s)

	t.Run("tạo thành công với loại giấy tờ mặc định", func(t *testing.T) {
		guest, err := service.Create(&models.Guest{
			FirstName:  "An",
			LastName:   "Nguyễn",
			Telephone:  "0901234567",
			IDDocument: "C1111111",
		})
		require.NoError(t, err)
		assert.NotZero(t, guest.ID)
		assert.Equal(t, constants.DefaultIDDocumentType, guest.IDDocumentType)
	})

	t.Run("trùng giấy tờ tùy thân", func(t *testing.T) {
		_, err := service.Create(&models.Guest{
			FirstName:  "Bình",
			LastName:   "Trần",
			Telephone:  "0907654321",
			IDDocument: "C1111111",
		})
		assert.True(t, errors.HasCode(err, errors.ErrCodeDuplicate))
	})

	t.Run("thiếu field bắt buộc", func(t *testing.T) {
		_, err := service.Create(&models.Guest{FirstName: "An"})
		assert.True(t, errors.HasCode(err, errors.ErrCodeRequiredField))
	})

	t.Run("email sai định dạng", func(t *testing.T) {
		bad := "khong-phai-email"
		_, err := service.Create(&models.Guest{
			FirstName:  "Bình",
			LastName:   "Trần",
			Email:      &bad,
			Telephone:  "0907654321",
			IDDocument: "C2222222",
		})
		assert.True(t, errors.HasCode(err, errors.ErrCodeInvalidFormat))
	})
}

func TestGuestUpdate(t *testing.T) {
	s := store.NewMemoryStore()
	service := newGuestService(s)

	guest, err := service.Create(&models.Guest{
		FirstName:  "An",
		LastName:   "Nguyễn",
		Telephone:  "0901234567",
		IDDocument: "C1111111",
	})
	require.NoError(t, err)

	t.Run("merge từng field, field nil giữ nguyên", func(t *testing.T) {
		phone := "0911222333"
		email := "an.nguyen@example.com"
		updated, err := service.Update(guest.ID, UpdateGuestInput{
			Telephone: &phone,
			Email:     &email,
		})
		require.NoError(t, err)
		assert.Equal(t, "An", updated.FirstName)
		assert.Equal(t, phone, updated.Telephone)
		require.NotNil(t, updated.Email)
		assert.Equal(t, email, *updated.Email)
	})

	t.Run("đổi sang email đã có người dùng", func(t *testing.T) {
		other, err := service.Create(&models.Guest{
			FirstName:  "Bình",
			LastName:   "Trần",
			Telephone:  "0907654321",
			IDDocument: "C2222222",
		})
		require.NoError(t, err)

		taken := "an.nguyen@example.com"
		_, err = service.Update(other.ID, UpdateGuestInput{Email: &taken})
		assert.True(t, errors.HasCode(err, errors.ErrCodeDuplicate))
	})

	t.Run("xóa email lưu thành nil, hai khách trống email không đụng nhau", func(t *testing.T) {
		empty := ""
		updated, err := service.Update(guest.ID, UpdateGuestInput{Email: &empty})
		require.NoError(t, err)
		assert.Nil(t, updated.Email)

		other, err := service.Create(&models.Guest{
			FirstName:  "Chi",
			LastName:   "Lê",
			Telephone:  "0903334444",
			IDDocument: "C3333333",
		})
		require.NoError(t, err)

		otherUpdated, err := service.Update(other.ID, UpdateGuestInput{Email: &empty})
		require.NoError(t, err)
		assert.Nil(t, otherUpdated.Email)
	})

	t.Run("khách không tồn tại", func(t *testing.T) {
		_, err := service.Update(999, UpdateGuestInput{})
		assert.True(t, errors.HasCode(err, errors.ErrCodeNotFound))
	})
}

func TestGuestDelete(t *testing.T) {
	s := store.NewMemoryStore()
	service := newGuestService(s)
	reservations := newReservationService(s)
	room := seedRoom(t, s, "Phòng 101", 100)

	guest, err := service.Create(&models.Guest{
		FirstName:  "An",
		LastName:   "Nguyễn",
		Telephone:  "0901234567",
		IDDocument: "C1111111",
	})
	require.NoError(t, err)

	created, err := reservations.Create(CreateReservationInput{
		GuestID: guest.ID, RoomID: room.ID, StartDate: day(1), EndDate: day(3),
	})
	require.NoError(t, err)

	t.Run("còn đặt phòng hoạt động thì không xóa được", func(t *testing.T) {
		err := service.Delete(guest.ID)
		assert.True(t, errors.HasCode(err, errors.ErrCodeInvalidState))
	})

	t.Run("chỉ còn lịch sử đã hủy thì xóa được", func(t *testing.T) {
		cancelled := constants.ReservationStatusCancelled
		_, err := reservations.Amend(created.ID, AmendReservationInput{Status: &cancelled})
		require.NoError(t, err)

		require.NoError(t, service.Delete(guest.ID))

		_, err = service.GetByID(guest.ID)
		assert.True(t, errors.HasCode(err, errors.ErrCodeNotFound))

		// Bản ghi CANCELLED vẫn còn, chỉ khách bị xóa
		history, err := reservations.GetByID(created.ID)
		require.NoError(t, err)
		assert.Equal(t, constants.ReservationStatusCancelled, history.Status)
	})
}

func TestGuestGetDetail(t *testing.T) {
	s := store.NewMemoryStore()
	service := newGuestService(s)
	reservations := newReservationService(s)
	room := seedRoom(t, s, "Phòng 101", 100)
	guest := seedGuest(t, s, "An", "Nguyễn", "C1111111")

	_, err := reservations.Create(CreateReservationInput{
		GuestID: guest.ID, RoomID: room.ID, StartDate: day(1), EndDate: day(3),
	})
	require.NoError(t, err)

	got, history, err := service.GetDetail(guest.ID)
	require.NoError(t, err)
	assert.Equal(t, guest.ID, got.ID)
	require.Len(t, history, 1)
	assert.Equal(t, room.ID, history[0].RoomID)
}

func TestGuestList(t *testing.T) {
	s := store.NewMemoryStore()
	service := newGuestService(s)
	seedGuest(t, s, "An", "Nguyễn", "C1111111")
	seedGuest(t, s, "Maria", "Santos", "P9988776")

	all, err := service.List("")
	require.NoError(t, err)
	assert.Len(t, all, 2)

	found, err := service.List("santos")
	require.NoError(t, err)
	require.Len(t, found, 1)
	assert.Equal(t, "Maria", found[0].FirstName)
}
