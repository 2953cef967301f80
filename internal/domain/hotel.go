package domain

import "time"

type Hotel struct {
	ID         int64     `json:"id"`
	Name       string    `json:"name" validate:"required,max=255"`
	Address    string    `json:"address" validate:"required,max=255"`
	City       string    `json:"city" validate:"required,max=255"`
	Country    string    `json:"country" validate:"required,max=255"`
	Phone      string    `json:"phone" validate:"required,e164"`
	StarRating int       `json:"star_rating" validate:"required,min=1,max=7"`
	CreatedAt  time.Time `json:"created_at"`
}

// HotelPatch is a partial write: nil fields are left untouched.
type HotelPatch struct {
	Name       *string `json:"name"`
	Address    *string `json:"address"`
	City       *string `json:"city"`
	Country    *string `json:"country"`
	Phone      *string `json:"phone"`
	StarRating *int    `json:"star_rating"`
}

func (p HotelPatch) Apply(h *Hotel) {
	if p.Name != nil {
		h.Name = *p.Name
	}
	if p.Address != nil {
		h.Address = *p.Address
	}
	if p.City != nil {
		h.City = *p.City
	}
	if p.Country != nil {
		h.Country = *p.Country
	}
	if p.Phone != nil {
		h.Phone = *p.Phone
	}
	if p.StarRating != nil {
		h.StarRating = *p.StarRating
	}
}
