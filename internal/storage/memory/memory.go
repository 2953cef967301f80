// Package memory is an in-memory domain.Store used by tests. It
// mirrors the MySQL repository's semantics: auto-increment ids,
// ErrNotFound on missing rows, and cascade deletion along the
// ownership edges.
package memory

import (
	"context"
	"sort"
	"sync"
	"time"

	"hoteldesk/internal/domain"
)

type Store struct {
	mu        sync.Mutex
	nextID    int64
	hotels    map[int64]domain.Hotel
	roomTypes map[int64]domain.RoomType
	rooms     map[int64]domain.Room
	guests    map[int64]domain.Guest
	bookings  map[int64]domain.Booking
}

func New() *Store {
	return &Store{
		hotels:    map[int64]domain.Hotel{},
		roomTypes: map[int64]domain.RoomType{},
		rooms:     map[int64]domain.Room{},
		guests:    map[int64]domain.Guest{},
		bookings:  map[int64]domain.Booking{},
	}
}

func (s *Store) id() int64 {
	s.nextID++
	return s.nextID
}

// ---- hotels ----

func (s *Store) CreateHotel(_ context.Context, h *domain.Hotel) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	h.ID = s.id()
	h.CreatedAt = time.Now().UTC()
	s.hotels[h.ID] = *h
	return nil
}

func (s *Store) GetHotel(_ context.Context, id int64) (domain.Hotel, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	h, ok := s.hotels[id]
	if !ok {
		return domain.Hotel{}, domain.ErrNotFound
	}
	return h, nil
}

func (s *Store) ListHotels(_ context.Context, f domain.HotelFilter) ([]domain.Hotel, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := []domain.Hotel{}
	for _, h := range s.hotels {
		if f.StarRating != nil && h.StarRating != *f.StarRating {
			continue
		}
		if f.Country != nil && h.Country != *f.Country {
			continue
		}
		if f.City != nil && h.City != *f.City {
			continue
		}
		out = append(out, h)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (s *Store) UpdateHotel(_ context.Context, h domain.Hotel) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.hotels[h.ID]; !ok {
		return domain.ErrNotFound
	}
	h.CreatedAt = time.Now().UTC() // auto_now
	s.hotels[h.ID] = h
	return nil
}

func (s *Store) DeleteHotel(_ context.Context, id int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.hotels[id]; !ok {
		return domain.ErrNotFound
	}
	delete(s.hotels, id)
	for tid, rt := range s.roomTypes {
		if rt.HotelID == id {
			delete(s.roomTypes, tid)
		}
	}
	for rid, rm := range s.rooms {
		if rm.HotelID == id {
			s.deleteRoomLocked(rid)
		}
	}
	return nil
}

// ---- room types ----

func (s *Store) CreateRoomType(_ context.Context, rt *domain.RoomType) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	rt.ID = s.id()
	s.roomTypes[rt.ID] = *rt
	return nil
}

func (s *Store) GetRoomType(_ context.Context, id int64) (domain.RoomType, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	rt, ok := s.roomTypes[id]
	if !ok {
		return domain.RoomType{}, domain.ErrNotFound
	}
	return rt, nil
}

func (s *Store) ListRoomTypes(_ context.Context, f domain.RoomTypeFilter) ([]domain.RoomType, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := []domain.RoomType{}
	for _, rt := range s.roomTypes {
		if f.HotelID != nil && rt.HotelID != *f.HotelID {
			continue
		}
		if f.MaxGuests != nil && rt.MaxGuests != *f.MaxGuests {
			continue
		}
		out = append(out, rt)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (s *Store) UpdateRoomType(_ context.Context, rt domain.RoomType) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.roomTypes[rt.ID]; !ok {
		return domain.ErrNotFound
	}
	s.roomTypes[rt.ID] = rt
	return nil
}

func (s *Store) DeleteRoomType(_ context.Context, id int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.roomTypes[id]; !ok {
		return domain.ErrNotFound
	}
	delete(s.roomTypes, id)
	for rid, rm := range s.rooms {
		if rm.TypeID == id {
			s.deleteRoomLocked(rid)
		}
	}
	return nil
}

// ---- rooms ----

func (s *Store) CreateRoom(_ context.Context, r *domain.Room) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	r.ID = s.id()
	s.rooms[r.ID] = *r
	return nil
}

func (s *Store) GetRoom(_ context.Context, id int64) (domain.Room, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	r, ok := s.rooms[id]
	if !ok {
		return domain.Room{}, domain.ErrNotFound
	}
	return r, nil
}

func (s *Store) ListRooms(_ context.Context, f domain.RoomFilter) ([]domain.Room, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := []domain.Room{}
	for _, r := range s.rooms {
		if f.HotelID != nil && r.HotelID != *f.HotelID {
			continue
		}
		if f.TypeID != nil && r.TypeID != *f.TypeID {
			continue
		}
		if f.IsAvailable != nil && r.IsAvailable != *f.IsAvailable {
			continue
		}
		if f.Floor != nil && r.Floor != *f.Floor {
			continue
		}
		out = append(out, r)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (s *Store) UpdateRoom(_ context.Context, r domain.Room) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.rooms[r.ID]; !ok {
		return domain.ErrNotFound
	}
	s.rooms[r.ID] = r
	return nil
}

func (s *Store) DeleteRoom(_ context.Context, id int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.rooms[id]; !ok {
		return domain.ErrNotFound
	}
	s.deleteRoomLocked(id)
	return nil
}

func (s *Store) deleteRoomLocked(id int64) {
	delete(s.rooms, id)
	for bid, b := range s.bookings {
		if b.RoomID == id {
			delete(s.bookings, bid)
		}
	}
}

// ---- guests ----

func (s *Store) CreateGuest(_ context.Context, g *domain.Guest) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	g.ID = s.id()
	g.RegistrationDate = time.Now().UTC()
	s.guests[g.ID] = *g
	return nil
}

func (s *Store) GetGuest(_ context.Context, id int64) (domain.Guest, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	g, ok := s.guests[id]
	if !ok {
		return domain.Guest{}, domain.ErrNotFound
	}
	return g, nil
}

func (s *Store) ListGuests(_ context.Context, f domain.GuestFilter) ([]domain.Guest, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := []domain.Guest{}
	for _, g := range s.guests {
		if f.FirstName != nil && g.FirstName != *f.FirstName {
			continue
		}
		if f.LastName != nil && g.LastName != *f.LastName {
			continue
		}
		if f.Email != nil && g.Email != *f.Email {
			continue
		}
		out = append(out, g)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (s *Store) UpdateGuest(_ context.Context, g domain.Guest) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.guests[g.ID]; !ok {
		return domain.ErrNotFound
	}
	g.RegistrationDate = time.Now().UTC() // auto_now
	s.guests[g.ID] = g
	return nil
}

func (s *Store) DeleteGuest(_ context.Context, id int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.guests[id]; !ok {
		return domain.ErrNotFound
	}
	delete(s.guests, id)
	for bid, b := range s.bookings {
		if b.GuestID == id {
			delete(s.bookings, bid)
		}
	}
	return nil
}

// ---- bookings ----

func (s *Store) CreateBooking(_ context.Context, b *domain.Booking) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	b.ID = s.id()
	b.CreatedAt = time.Now().UTC()
	s.bookings[b.ID] = *b
	return nil
}

func (s *Store) GetBooking(_ context.Context, id int64) (domain.Booking, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	b, ok := s.bookings[id]
	if !ok {
		return domain.Booking{}, domain.ErrNotFound
	}
	return b, nil
}

func (s *Store) ListBookings(_ context.Context, f domain.BookingFilter) ([]domain.Booking, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := []domain.Booking{}
	for _, b := range s.bookings {
		if f.GuestID != nil && b.GuestID != *f.GuestID {
			continue
		}
		if f.RoomID != nil && b.RoomID != *f.RoomID {
			continue
		}
		if f.Status != nil && b.Status != *f.Status {
			continue
		}
		out = append(out, b)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (s *Store) UpdateBooking(_ context.Context, b domain.Booking) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	old, ok := s.bookings[b.ID]
	if !ok {
		return domain.ErrNotFound
	}
	b.CreatedAt = old.CreatedAt
	s.bookings[b.ID] = b
	return nil
}

func (s *Store) DeleteBooking(_ context.Context, id int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.bookings[id]; !ok {
		return domain.ErrNotFound
	}
	delete(s.bookings, id)
	return nil
}
