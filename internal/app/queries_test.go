package app

import (
	"context"
	"errors"
	"testing"
	"time"

	"hoteldesk/internal/domain"
	"hoteldesk/internal/storage/memory"
)

func TestGetHotelCacheAside(t *testing.T) {
	store := memory.New()
	cache := newFakeCache()
	c := NewCommandService(store, cache)
	q := NewQueryService(store, cache, time.Minute)
	ctx := context.Background()

	h, err := c.CreateHotel(ctx, hotelPatch())
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	got, err := q.GetHotel(ctx, h.ID)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got.Name != h.Name {
		t.Fatalf("want %q, got %q", h.Name, got.Name)
	}

	// mutate behind the cache; a repeat read serves the cached copy
	renamed := got
	renamed.Name = "Renamed"
	if err := store.UpdateHotel(ctx, renamed); err != nil {
		t.Fatalf("update: %v", err)
	}
	again, err := q.GetHotel(ctx, h.ID)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if again.Name != h.Name {
		t.Fatalf("expected cached copy %q, got %q", h.Name, again.Name)
	}
}

func TestGetHotelNilCache(t *testing.T) {
	store := memory.New()
	c := NewCommandService(store, nil)
	q := NewQueryService(store, nil, time.Minute)
	ctx := context.Background()

	h, err := c.CreateHotel(ctx, hotelPatch())
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if _, err := q.GetHotel(ctx, h.ID); err != nil {
		t.Fatalf("get without cache: %v", err)
	}
}

func TestGetHotelNotFound(t *testing.T) {
	q := NewQueryService(memory.New(), newFakeCache(), time.Minute)
	_, err := q.GetHotel(context.Background(), 7)
	if !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("want ErrNotFound, got %v", err)
	}
}

func TestListHotelsFilter(t *testing.T) {
	store := memory.New()
	c := NewCommandService(store, nil)
	q := NewQueryService(store, nil, time.Minute)
	ctx := context.Background()

	five, err := c.CreateHotel(ctx, hotelPatch())
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	p := hotelPatch()
	p.Name, p.StarRating, p.City = ptr("Harbor Inn"), ptr(3), ptr("Porto")
	if _, err := c.CreateHotel(ctx, p); err != nil {
		t.Fatalf("create: %v", err)
	}

	got, err := q.ListHotels(ctx, domain.HotelFilter{StarRating: ptr(5)})
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(got) != 1 || got[0].ID != five.ID {
		t.Fatalf("star_rating filter: %+v", got)
	}

	got, err = q.ListHotels(ctx, domain.HotelFilter{StarRating: ptr(3), City: ptr("Lisbon")})
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(got) != 0 {
		t.Fatalf("conjunction should match nothing: %+v", got)
	}
}

func TestRoomTypesForHotel(t *testing.T) {
	store := memory.New()
	c := NewCommandService(store, nil)
	q := NewQueryService(store, newFakeCache(), time.Minute)
	ctx := context.Background()

	hotelID, typeID, _ := seedRoom(t, c)

	types, err := q.RoomTypesForHotel(ctx, hotelID)
	if err != nil {
		t.Fatalf("lookup: %v", err)
	}
	if len(types) != 1 || types[0].ID != typeID {
		t.Fatalf("want the seeded room type, got %+v", types)
	}
}

func TestRoomTypesForHotelMissingHotel(t *testing.T) {
	q := NewQueryService(memory.New(), newFakeCache(), time.Minute)
	_, err := q.RoomTypesForHotel(context.Background(), 404)
	if !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("want ErrNotFound, got %v", err)
	}
}

func TestRoomTypesForHotelEmpty(t *testing.T) {
	store := memory.New()
	c := NewCommandService(store, nil)
	q := NewQueryService(store, nil, time.Minute)
	ctx := context.Background()

	h, err := c.CreateHotel(ctx, hotelPatch())
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	types, err := q.RoomTypesForHotel(ctx, h.ID)
	if err != nil {
		t.Fatalf("lookup: %v", err)
	}
	if types == nil || len(types) != 0 {
		t.Fatalf("want empty non-nil slice, got %#v", types)
	}
}

func TestRoomsForRoomType(t *testing.T) {
	store := memory.New()
	c := NewCommandService(store, nil)
	q := NewQueryService(store, newFakeCache(), time.Minute)
	ctx := context.Background()

	_, typeID, roomID := seedRoom(t, c)

	rooms, err := q.RoomsForRoomType(ctx, typeID)
	if err != nil {
		t.Fatalf("lookup: %v", err)
	}
	if len(rooms) != 1 || rooms[0].ID != roomID {
		t.Fatalf("want the seeded room, got %+v", rooms)
	}

	_, err = q.RoomsForRoomType(ctx, 404)
	if !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("want ErrNotFound, got %v", err)
	}
}
