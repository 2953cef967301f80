package redisad_test

import (
	"context"
	"testing"

	"github.com/alicebob/miniredis/v2"

	redisad "hoteldesk/internal/adapters/redis"
	"hoteldesk/internal/domain"
)

func TestCache_RoundTrip(t *testing.T) {
	mr := miniredis.RunT(t)
	cache := redisad.New(mr.Addr(), "", 0)
	ctx := context.Background()

	in := domain.Hotel{ID: 7, Name: "Grand Plaza", City: "Lisbon", Country: "PT", StarRating: 5}
	if err := cache.Set(ctx, "hotel:7", in, 60); err != nil {
		t.Fatalf("set: %v", err)
	}

	var out domain.Hotel
	ok, err := cache.Get(ctx, "hotel:7", &out)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if !ok {
		t.Fatal("expected a hit")
	}
	if out.ID != in.ID || out.Name != in.Name || out.StarRating != in.StarRating {
		t.Fatalf("round trip mismatch: %+v", out)
	}
}

func TestCache_MissAndDel(t *testing.T) {
	mr := miniredis.RunT(t)
	cache := redisad.New(mr.Addr(), "", 0)
	ctx := context.Background()

	var out domain.Hotel
	ok, err := cache.Get(ctx, "hotel:404", &out)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if ok {
		t.Fatal("expected a miss")
	}

	if err := cache.Set(ctx, "hotel:1", domain.Hotel{ID: 1}, 60); err != nil {
		t.Fatalf("set: %v", err)
	}
	if err := cache.Del(ctx, "hotel:1"); err != nil {
		t.Fatalf("del: %v", err)
	}
	if ok, _ := cache.Get(ctx, "hotel:1", &out); ok {
		t.Fatal("expected key to be gone")
	}
}
