package domain

import "time"

// Booking status is a free-form string; pending, confirmed and
// cancelled are the values in common use, but no transition graph is
// enforced.
type Booking struct {
	ID           int64     `json:"id"`
	GuestID      int64     `json:"guest" validate:"required"`
	RoomID       int64     `json:"room" validate:"required"`
	CheckInDate  Date      `json:"check_in_date"`
	CheckOutDate Date      `json:"check_out_date"`
	TotalPrice   string    `json:"total_price" validate:"omitempty,decimal2"`
	Status       string    `json:"status" validate:"required,max=100"`
	CreatedAt    time.Time `json:"created_at"`
}

// ValidateDates enforces the two booking rules on create and update:
// check-out strictly after check-in, check-in not before today.
func (b Booking) ValidateDates(today Date) FieldErrors {
	errs := FieldErrors{}
	if b.CheckInDate.IsZero() {
		errs["check_in_date"] = "This field is required."
	}
	if b.CheckOutDate.IsZero() {
		errs["check_out_date"] = "This field is required."
	}
	if len(errs) > 0 {
		return errs
	}
	if !b.CheckOutDate.After(b.CheckInDate) {
		errs["check_out_date"] = "Check-out date must be after the check-in date."
	}
	if b.CheckInDate.Before(today) {
		errs["check_in_date"] = "Check-in date cannot be in the past."
	}
	if len(errs) == 0 {
		return nil
	}
	return errs
}

type BookingPatch struct {
	GuestID      *int64  `json:"guest"`
	RoomID       *int64  `json:"room"`
	CheckInDate  *Date   `json:"check_in_date"`
	CheckOutDate *Date   `json:"check_out_date"`
	TotalPrice   *string `json:"total_price"`
	Status       *string `json:"status"`
}

func (p BookingPatch) Apply(b *Booking) {
	if p.GuestID != nil {
		b.GuestID = *p.GuestID
	}
	if p.RoomID != nil {
		b.RoomID = *p.RoomID
	}
	if p.CheckInDate != nil {
		b.CheckInDate = *p.CheckInDate
	}
	if p.CheckOutDate != nil {
		b.CheckOutDate = *p.CheckOutDate
	}
	if p.TotalPrice != nil {
		b.TotalPrice = *p.TotalPrice
	}
	if p.Status != nil {
		b.Status = *p.Status
	}
}
