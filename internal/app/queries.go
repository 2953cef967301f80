package app

import (
	"context"
	"time"

	"hoteldesk/internal/domain"
)

// QueryService owns the read paths. Detail lookups and the two
// relationship lookups are cache-aside with a TTL; filtered lists go
// straight to the store (the filter keyspace is unbounded).
type QueryService struct {
	store    domain.Store
	cache    domain.Cache
	cacheTTL time.Duration
}

func NewQueryService(s domain.Store, c domain.Cache, ttl time.Duration) *QueryService {
	return &QueryService{store: s, cache: c, cacheTTL: ttl}
}

func cached[T any](ctx context.Context, s *QueryService, key string, load func() (T, error)) (T, error) {
	var out T
	if s.cache != nil {
		if ok, _ := s.cache.Get(ctx, key, &out); ok {
			return out, nil
		}
	}
	out, err := load()
	if err != nil {
		var zero T
		return zero, err
	}
	if s.cache != nil {
		_ = s.cache.Set(ctx, key, out, int(s.cacheTTL.Seconds()))
	}
	return out, nil
}

// ---- hotels ----

func (s *QueryService) GetHotel(ctx context.Context, id int64) (domain.Hotel, error) {
	return cached(ctx, s, keyHotel(id), func() (domain.Hotel, error) {
		return s.store.GetHotel(ctx, id)
	})
}

func (s *QueryService) ListHotels(ctx context.Context, f domain.HotelFilter) ([]domain.Hotel, error) {
	return s.store.ListHotels(ctx, f)
}

// RoomTypesForHotel is the hotel -> room-types relationship lookup.
// The caller distinguishes a missing hotel (ErrNotFound) from a hotel
// with no room types (empty slice).
func (s *QueryService) RoomTypesForHotel(ctx context.Context, hotelID int64) ([]domain.RoomType, error) {
	return cached(ctx, s, keyHotelRoomTypes(hotelID), func() ([]domain.RoomType, error) {
		if _, err := s.store.GetHotel(ctx, hotelID); err != nil {
			return nil, err
		}
		return s.store.ListRoomTypes(ctx, domain.RoomTypeFilter{HotelID: &hotelID})
	})
}

// ---- room types ----

func (s *QueryService) GetRoomType(ctx context.Context, id int64) (domain.RoomType, error) {
	return cached(ctx, s, keyRoomType(id), func() (domain.RoomType, error) {
		return s.store.GetRoomType(ctx, id)
	})
}

func (s *QueryService) ListRoomTypes(ctx context.Context, f domain.RoomTypeFilter) ([]domain.RoomType, error) {
	return s.store.ListRoomTypes(ctx, f)
}

// RoomsForRoomType is the room-type -> rooms relationship lookup.
func (s *QueryService) RoomsForRoomType(ctx context.Context, typeID int64) ([]domain.Room, error) {
	return cached(ctx, s, keyRoomTypeRooms(typeID), func() ([]domain.Room, error) {
		if _, err := s.store.GetRoomType(ctx, typeID); err != nil {
			return nil, err
		}
		return s.store.ListRooms(ctx, domain.RoomFilter{TypeID: &typeID})
	})
}

// ---- rooms ----

func (s *QueryService) GetRoom(ctx context.Context, id int64) (domain.Room, error) {
	return cached(ctx, s, keyRoom(id), func() (domain.Room, error) {
		return s.store.GetRoom(ctx, id)
	})
}

func (s *QueryService) ListRooms(ctx context.Context, f domain.RoomFilter) ([]domain.Room, error) {
	return s.store.ListRooms(ctx, f)
}

// ---- guests ----

func (s *QueryService) GetGuest(ctx context.Context, id int64) (domain.Guest, error) {
	return cached(ctx, s, keyGuest(id), func() (domain.Guest, error) {
		return s.store.GetGuest(ctx, id)
	})
}

func (s *QueryService) ListGuests(ctx context.Context, f domain.GuestFilter) ([]domain.Guest, error) {
	return s.store.ListGuests(ctx, f)
}

// ---- bookings ----

func (s *QueryService) GetBooking(ctx context.Context, id int64) (domain.Booking, error) {
	return cached(ctx, s, keyBooking(id), func() (domain.Booking, error) {
		return s.store.GetBooking(ctx, id)
	})
}

func (s *QueryService) ListBookings(ctx context.Context, f domain.BookingFilter) ([]domain.Booking, error) {
	return s.store.ListBookings(ctx, f)
}
