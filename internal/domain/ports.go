package domain

import "context"

// Filters are exact-match conjunctions; nil fields are not applied.

type HotelFilter struct {
	StarRating *int
	Country    *string
	City       *string
}

type RoomTypeFilter struct {
	HotelID   *int64
	MaxGuests *int
}

type RoomFilter struct {
	HotelID     *int64
	TypeID      *int64
	IsAvailable *bool
	Floor       *int
}

type GuestFilter struct {
	FirstName *string
	LastName  *string
	Email     *string
}

type BookingFilter struct {
	GuestID *int64
	RoomID  *int64
	Status  *string
}

// Store is the persistence port. Create methods fill in the record's
// ID and store-generated fields; Update/Delete return ErrNotFound when
// the id does not resolve. Deletes cascade along the ownership edges
// (hotel -> room types -> rooms, guest/room -> bookings).
type Store interface {
	CreateHotel(ctx context.Context, h *Hotel) error
	GetHotel(ctx context.Context, id int64) (Hotel, error)
	ListHotels(ctx context.Context, f HotelFilter) ([]Hotel, error)
	UpdateHotel(ctx context.Context, h Hotel) error
	DeleteHotel(ctx context.Context, id int64) error

	CreateRoomType(ctx context.Context, rt *RoomType) error
	GetRoomType(ctx context.Context, id int64) (RoomType, error)
	ListRoomTypes(ctx context.Context, f RoomTypeFilter) ([]RoomType, error)
	UpdateRoomType(ctx context.Context, rt RoomType) error
	DeleteRoomType(ctx context.Context, id int64) error

	CreateRoom(ctx context.Context, r *Room) error
	GetRoom(ctx context.Context, id int64) (Room, error)
	ListRooms(ctx context.Context, f RoomFilter) ([]Room, error)
	UpdateRoom(ctx context.Context, r Room) error
	DeleteRoom(ctx context.Context, id int64) error

	CreateGuest(ctx context.Context, g *Guest) error
	GetGuest(ctx context.Context, id int64) (Guest, error)
	ListGuests(ctx context.Context, f GuestFilter) ([]Guest, error)
	UpdateGuest(ctx context.Context, g Guest) error
	DeleteGuest(ctx context.Context, id int64) error

	CreateBooking(ctx context.Context, b *Booking) error
	GetBooking(ctx context.Context, id int64) (Booking, error)
	ListBookings(ctx context.Context, f BookingFilter) ([]Booking, error)
	UpdateBooking(ctx context.Context, b Booking) error
	DeleteBooking(ctx context.Context, id int64) error
}

type Cache interface {
	Get(ctx context.Context, key string, dst any) (bool, error)
	Set(ctx context.Context, key string, v any, ttlSec int) error
	Del(ctx context.Context, key string) error
}
