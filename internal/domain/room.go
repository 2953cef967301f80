package domain

// RoomType belongs to a Hotel; Rooms of that type reference both.
// The FK json names (hotel, type) match the wire format of the API.
type RoomType struct {
	ID          int64  `json:"id"`
	HotelID     int64  `json:"hotel" validate:"required"`
	Name        string `json:"name" validate:"required,max=100"`
	Description string `json:"description" validate:"required,max=255"`
	BasePrice   string `json:"base_price" validate:"omitempty,decimal2"`
	MaxGuests   int    `json:"max_guests" validate:"required,min=1"`
}

type RoomTypePatch struct {
	HotelID     *int64  `json:"hotel"`
	Name        *string `json:"name"`
	Description *string `json:"description"`
	BasePrice   *string `json:"base_price"`
	MaxGuests   *int    `json:"max_guests"`
}

func (p RoomTypePatch) Apply(rt *RoomType) {
	if p.HotelID != nil {
		rt.HotelID = *p.HotelID
	}
	if p.Name != nil {
		rt.Name = *p.Name
	}
	if p.Description != nil {
		rt.Description = *p.Description
	}
	if p.BasePrice != nil {
		rt.BasePrice = *p.BasePrice
	}
	if p.MaxGuests != nil {
		rt.MaxGuests = *p.MaxGuests
	}
}

type Room struct {
	ID          int64  `json:"id"`
	HotelID     int64  `json:"hotel" validate:"required"`
	TypeID      int64  `json:"type" validate:"required"`
	RoomNumber  string `json:"room_number" validate:"required,max=50"`
	Floor       int    `json:"floor"`
	IsAvailable bool   `json:"is_available"`
}

type RoomPatch struct {
	HotelID     *int64  `json:"hotel"`
	TypeID      *int64  `json:"type"`
	RoomNumber  *string `json:"room_number"`
	Floor       *int    `json:"floor"`
	IsAvailable *bool   `json:"is_available"`
}

func (p RoomPatch) Apply(r *Room) {
	if p.HotelID != nil {
		r.HotelID = *p.HotelID
	}
	if p.TypeID != nil {
		r.TypeID = *p.TypeID
	}
	if p.RoomNumber != nil {
		r.RoomNumber = *p.RoomNumber
	}
	if p.Floor != nil {
		r.Floor = *p.Floor
	}
	if p.IsAvailable != nil {
		r.IsAvailable = *p.IsAvailable
	}
}
