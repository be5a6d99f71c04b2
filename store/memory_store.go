package store

import (
	"sort"
	"strings"
	"sync"
	"time"

	"hotel/models"
)

// predicate điều kiện lọc trên một bản ghi
type predicate[T any] func(T) bool

// all ghép nhiều điều kiện thành một, bỏ qua điều kiện nil
func all[T any](preds ...predicate[T]) predicate[T] {
	return func(v T) bool {
		for _, p := range preds {
			if p != nil && !p(v) {
				return false
			}
		}
		return true
	}
}

func containsFold(s, sub string) bool {
	return strings.Contains(strings.ToLower(s), strings.ToLower(sub))
}

// MemoryStore hiện thực Store trong bộ nhớ, dùng cho test engine
// không cần postgres. Các cặp kiểm tra + ghi chạy qua Transaction
// được tuần tự hóa bằng txMu.
type MemoryStore struct {
	mu   sync.Mutex
	txMu sync.Mutex

	guests       map[uint]models.Guest
	rooms        map[uint]models.Room
	reservations map[uint]models.Reservation

	nextGuestID       uint
	nextRoomID        uint
	nextReservationID uint
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		guests:            make(map[uint]models.Guest),
		rooms:             make(map[uint]models.Room),
		reservations:      make(map[uint]models.Reservation),
		nextGuestID:       1,
		nextRoomID:        1,
		nextReservationID: 1,
	}
}

func (s *MemoryStore) Guests() GuestStore {
	return &memGuestStore{s: s}
}

func (s *MemoryStore) Rooms() RoomStore {
	return &memRoomStore{s: s}
}

func (s *MemoryStore) Reservations() ReservationStore {
	return &memReservationStore{s: s}
}

func (s *MemoryStore) Transaction(fn func(Store) error) error {
	s.txMu.Lock()
	defer s.txMu.Unlock()
	return fn(s)
}

type memGuestStore struct {
	s *MemoryStore
}

func (g *memGuestStore) checkUnique(guest *models.Guest) error {
	for _, existing := range g.s.guests {
		if existing.ID == guest.ID {
			continue
		}
		if guest.Email != nil && *guest.Email != "" &&
			existing.Email != nil && *existing.Email == *guest.Email {
			return ErrDuplicate
		}
		if existing.IDDocument == guest.IDDocument {
			return ErrDuplicate
		}
	}
	return nil
}

func (g *memGuestStore) Create(guest *models.Guest) error {
	g.s.mu.Lock()
	defer g.s.mu.Unlock()

	if err := g.checkUnique(guest); err != nil {
		return err
	}
	guest.ID = g.s.nextGuestID
	g.s.nextGuestID++
	guest.CreatedAt = time.Now()
	guest.UpdatedAt = guest.CreatedAt
	g.s.guests[guest.ID] = *guest
	return nil
}

func (g *memGuestStore) GetByID(id uint) (*models.Guest, error) {
	g.s.mu.Lock()
	defer g.s.mu.Unlock()

	guest, ok := g.s.guests[id]
	if !ok {
		return nil, ErrNotFound
	}
	return &guest, nil
}

func (g *memGuestStore) Update(guest *models.Guest) error {
	g.s.mu.Lock()
	defer g.s.mu.Unlock()

	if _, ok := g.s.guests[guest.ID]; !ok {
		return ErrNotFound
	}
	if err := g.checkUnique(guest); err != nil {
		return err
	}
	guest.UpdatedAt = time.Now()
	g.s.guests[guest.ID] = *guest
	return nil
}

func (g *memGuestStore) Delete(id uint) error {
	g.s.mu.Lock()
	defer g.s.mu.Unlock()

	if _, ok := g.s.guests[id]; !ok {
		return ErrNotFound
	}
	delete(g.s.guests, id)
	return nil
}

func (g *memGuestStore) List(filter GuestFilter) ([]models.Guest, error) {
	g.s.mu.Lock()
	defer g.s.mu.Unlock()

	match := all(func(guest models.Guest) bool {
		if filter.Query == "" {
			return true
		}
		email := ""
		if guest.Email != nil {
			email = *guest.Email
		}
		return containsFold(guest.FirstName, filter.Query) ||
			containsFold(guest.LastName, filter.Query) ||
			containsFold(email, filter.Query) ||
			containsFold(guest.Telephone, filter.Query) ||
			containsFold(guest.IDDocument, filter.Query)
	})

	guests := make([]models.Guest, 0)
	for _, guest := range g.s.guests {
		if match(guest) {
			guests = append(guests, guest)
		}
	}
	sort.Slice(guests, func(i, j int) bool { return guests[i].ID > guests[j].ID })
	return guests, nil
}

type memRoomStore struct {
	s *MemoryStore
}

func (r *memRoomStore) checkUnique(room *models.Room) error {
	for _, existing := range r.s.rooms {
		if existing.ID != room.ID && existing.Name == room.Name {
			return ErrDuplicate
		}
	}
	return nil
}

func (r *memRoomStore) Create(room *models.Room) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if err := r.checkUnique(room); err != nil {
		return err
	}
	room.ID = r.s.nextRoomID
	r.s.nextRoomID++
	room.CreatedAt = time.Now()
	room.UpdatedAt = room.CreatedAt
	r.s.rooms[room.ID] = *room
	return nil
}

func (r *memRoomStore) GetByID(id uint) (*models.Room, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	room, ok := r.s.rooms[id]
	if !ok {
		return nil, ErrNotFound
	}
	return &room, nil
}

func (r *memRoomStore) Update(room *models.Room) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if _, ok := r.s.rooms[room.ID]; !ok {
		return ErrNotFound
	}
	if err := r.checkUnique(room); err != nil {
		return err
	}
	room.UpdatedAt = time.Now()
	r.s.rooms[room.ID] = *room
	return nil
}

func (r *memRoomStore) Delete(id uint) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if _, ok := r.s.rooms[id]; !ok {
		return ErrNotFound
	}
	delete(r.s.rooms, id)
	return nil
}

func (r *memRoomStore) List(filter RoomFilter) ([]models.Room, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	match := all(
		func(room models.Room) bool {
			return filter.Status == "" || room.Status == filter.Status
		},
		func(room models.Room) bool {
			return filter.MinCapacity == nil || room.Capacity >= *filter.MinCapacity
		},
		func(room models.Room) bool {
			return filter.MinBeds == nil || room.Beds >= *filter.MinBeds
		},
		func(room models.Room) bool {
			return filter.MaxPrice == nil || room.Price <= *filter.MaxPrice
		},
		func(room models.Room) bool {
			return filter.AirConditioning == nil || room.AirConditioning == *filter.AirConditioning
		},
	)

	rooms := make([]models.Room, 0)
	for _, room := range r.s.rooms {
		if match(room) {
			rooms = append(rooms, room)
		}
	}
	if filter.OrderByPrice {
		sort.Slice(rooms, func(i, j int) bool { return rooms[i].Price < rooms[j].Price })
	} else {
		sort.Slice(rooms, func(i, j int) bool { return rooms[i].ID > rooms[j].ID })
	}
	return rooms, nil
}

type memReservationStore struct {
	s *MemoryStore
}

// attach gắn snapshot khách và phòng như thao tác preload của gorm
func (r *memReservationStore) attach(reservation models.Reservation) models.Reservation {
	if guest, ok := r.s.guests[reservation.GuestID]; ok {
		guestCopy := guest
		reservation.Guest = &guestCopy
	}
	if room, ok := r.s.rooms[reservation.RoomID]; ok {
		roomCopy := room
		reservation.Room = &roomCopy
	}
	return reservation
}

func (r *memReservationStore) Create(reservation *models.Reservation) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	reservation.ID = r.s.nextReservationID
	r.s.nextReservationID++
	reservation.CreatedAt = time.Now()
	reservation.UpdatedAt = reservation.CreatedAt

	stored := *reservation
	stored.Guest = nil
	stored.Room = nil
	r.s.reservations[reservation.ID] = stored
	return nil
}

func (r *memReservationStore) GetByID(id uint) (*models.Reservation, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	reservation, ok := r.s.reservations[id]
	if !ok {
		return nil, ErrNotFound
	}
	attached := r.attach(reservation)
	return &attached, nil
}

func (r *memReservationStore) Update(reservation *models.Reservation) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if _, ok := r.s.reservations[reservation.ID]; !ok {
		return ErrNotFound
	}
	reservation.UpdatedAt = time.Now()

	stored := *reservation
	stored.Guest = nil
	stored.Room = nil
	r.s.reservations[reservation.ID] = stored
	return nil
}

func (r *memReservationStore) Delete(id uint) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if _, ok := r.s.reservations[id]; !ok {
		return ErrNotFound
	}
	delete(r.s.reservations, id)
	return nil
}

func (r *memReservationStore) List(filter ReservationFilter) ([]models.Reservation, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	match := all(
		func(res models.Reservation) bool {
			return filter.RoomID == 0 || res.RoomID == filter.RoomID
		},
		func(res models.Reservation) bool {
			return filter.GuestID == 0 || res.GuestID == filter.GuestID
		},
		func(res models.Reservation) bool {
			if len(filter.Statuses) == 0 {
				return true
			}
			for _, status := range filter.Statuses {
				if res.Status == status {
					return true
				}
			}
			return false
		},
		func(res models.Reservation) bool {
			return filter.ExcludeID == 0 || res.ID != filter.ExcludeID
		},
		func(res models.Reservation) bool {
			if filter.OverlapStart == nil || filter.OverlapEnd == nil {
				return true
			}
			return res.Overlaps(*filter.OverlapStart, *filter.OverlapEnd)
		},
		func(res models.Reservation) bool {
			if filter.GuestName == "" {
				return true
			}
			guest, ok := r.s.guests[res.GuestID]
			if !ok {
				return false
			}
			return containsFold(guest.FirstName, filter.GuestName) ||
				containsFold(guest.LastName, filter.GuestName)
		},
		func(res models.Reservation) bool {
			if filter.RangeStart == nil || filter.RangeEnd == nil {
				return true
			}
			inside := !res.StartDate.Before(*filter.RangeStart) && !res.EndDate.After(*filter.RangeEnd)
			contains := !res.StartDate.After(*filter.RangeStart) && !res.EndDate.Before(*filter.RangeEnd)
			return inside || contains
		},
	)

	reservations := make([]models.Reservation, 0)
	for _, res := range r.s.reservations {
		if match(res) {
			reservations = append(reservations, r.attach(res))
		}
	}
	sort.Slice(reservations, func(i, j int) bool {
		return reservations[i].ID > reservations[j].ID
	})
	return reservations, nil
}
