package app

import (
	"context"
	"errors"

	"github.com/go-playground/validator/v10"

	"hoteldesk/internal/domain"
)

// CommandService owns the write paths: validate the candidate record,
// persist it through the store port, then evict the cache entries the
// write made stale. Validation failures surface as domain.FieldErrors
// and nothing is persisted.
type CommandService struct {
	store domain.Store
	cache domain.Cache
	v     *validator.Validate
}

func NewCommandService(s domain.Store, c domain.Cache) *CommandService {
	return &CommandService{store: s, cache: c, v: NewValidator()}
}

func (s *CommandService) invalidate(ctx context.Context, keys ...string) {
	if s.cache == nil {
		return
	}
	for _, k := range keys {
		_ = s.cache.Del(ctx, k)
	}
}

// ---- hotels ----

func (s *CommandService) CreateHotel(ctx context.Context, p domain.HotelPatch) (domain.Hotel, error) {
	var h domain.Hotel
	p.Apply(&h)
	if errs := checkStruct(s.v, h); errs != nil {
		return domain.Hotel{}, errs
	}
	if err := s.store.CreateHotel(ctx, &h); err != nil {
		return domain.Hotel{}, err
	}
	return h, nil
}

// UpdateHotel merges the patch into the stored record. replace gives
// full-replacement semantics: the record is reset to defaults first,
// so fields missing from the payload fail the required checks.
func (s *CommandService) UpdateHotel(ctx context.Context, id int64, p domain.HotelPatch, replace bool) (domain.Hotel, error) {
	h, err := s.store.GetHotel(ctx, id)
	if err != nil {
		return domain.Hotel{}, err
	}
	if replace {
		h = domain.Hotel{ID: h.ID, CreatedAt: h.CreatedAt}
	}
	p.Apply(&h)
	if errs := checkStruct(s.v, h); errs != nil {
		return domain.Hotel{}, errs
	}
	if err := s.store.UpdateHotel(ctx, h); err != nil {
		return domain.Hotel{}, err
	}
	s.invalidate(ctx, keyHotel(id))
	return s.store.GetHotel(ctx, id)
}

func (s *CommandService) DeleteHotel(ctx context.Context, id int64) error {
	keys := []string{keyHotel(id), keyHotelRoomTypes(id)}
	if s.cache != nil {
		more, err := s.hotelCascadeKeys(ctx, id)
		if err != nil {
			return err
		}
		keys = append(keys, more...)
	}
	if err := s.store.DeleteHotel(ctx, id); err != nil {
		return err
	}
	s.invalidate(ctx, keys...)
	return nil
}

// ---- room types ----

func (s *CommandService) CreateRoomType(ctx context.Context, p domain.RoomTypePatch) (domain.RoomType, error) {
	rt := domain.RoomType{BasePrice: "0.00"}
	p.Apply(&rt)
	if errs := checkStruct(s.v, rt); errs != nil {
		return domain.RoomType{}, errs
	}
	if err := s.checkHotelRef(ctx, rt.HotelID); err != nil {
		return domain.RoomType{}, err
	}
	if err := s.store.CreateRoomType(ctx, &rt); err != nil {
		return domain.RoomType{}, err
	}
	s.invalidate(ctx, keyHotelRoomTypes(rt.HotelID))
	return rt, nil
}

func (s *CommandService) UpdateRoomType(ctx context.Context, id int64, p domain.RoomTypePatch, replace bool) (domain.RoomType, error) {
	rt, err := s.store.GetRoomType(ctx, id)
	if err != nil {
		return domain.RoomType{}, err
	}
	prevHotel := rt.HotelID
	if replace {
		rt = domain.RoomType{ID: rt.ID, BasePrice: "0.00"}
	}
	p.Apply(&rt)
	if errs := checkStruct(s.v, rt); errs != nil {
		return domain.RoomType{}, errs
	}
	if err := s.checkHotelRef(ctx, rt.HotelID); err != nil {
		return domain.RoomType{}, err
	}
	if err := s.store.UpdateRoomType(ctx, rt); err != nil {
		return domain.RoomType{}, err
	}
	s.invalidate(ctx, keyRoomType(id), keyHotelRoomTypes(prevHotel), keyHotelRoomTypes(rt.HotelID))
	return rt, nil
}

func (s *CommandService) DeleteRoomType(ctx context.Context, id int64) error {
	rt, err := s.store.GetRoomType(ctx, id)
	if err != nil {
		return err
	}
	keys := []string{keyRoomType(id), keyHotelRoomTypes(rt.HotelID), keyRoomTypeRooms(id)}
	if s.cache != nil {
		more, err := s.roomTypeCascadeKeys(ctx, id)
		if err != nil {
			return err
		}
		keys = append(keys, more...)
	}
	if err := s.store.DeleteRoomType(ctx, id); err != nil {
		return err
	}
	s.invalidate(ctx, keys...)
	return nil
}

// ---- rooms ----

func (s *CommandService) CreateRoom(ctx context.Context, p domain.RoomPatch) (domain.Room, error) {
	r := domain.Room{IsAvailable: true}
	p.Apply(&r)
	errs := checkStruct(s.v, r)
	if p.Floor == nil {
		// zero is a legal floor, so presence has to be checked here
		if errs == nil {
			errs = domain.FieldErrors{}
		}
		errs["floor"] = "This field is required."
	}
	if errs != nil {
		return domain.Room{}, errs
	}
	if err := s.checkHotelRef(ctx, r.HotelID); err != nil {
		return domain.Room{}, err
	}
	if err := s.checkRoomTypeRef(ctx, r.TypeID); err != nil {
		return domain.Room{}, err
	}
	if err := s.store.CreateRoom(ctx, &r); err != nil {
		return domain.Room{}, err
	}
	s.invalidate(ctx, keyRoomTypeRooms(r.TypeID))
	return r, nil
}

func (s *CommandService) UpdateRoom(ctx context.Context, id int64, p domain.RoomPatch, replace bool) (domain.Room, error) {
	r, err := s.store.GetRoom(ctx, id)
	if err != nil {
		return domain.Room{}, err
	}
	prevType := r.TypeID
	if replace {
		r = domain.Room{ID: r.ID, IsAvailable: true}
	}
	p.Apply(&r)
	errs := checkStruct(s.v, r)
	if replace && p.Floor == nil {
		if errs == nil {
			errs = domain.FieldErrors{}
		}
		errs["floor"] = "This field is required."
	}
	if errs != nil {
		return domain.Room{}, errs
	}
	if err := s.checkHotelRef(ctx, r.HotelID); err != nil {
		return domain.Room{}, err
	}
	if err := s.checkRoomTypeRef(ctx, r.TypeID); err != nil {
		return domain.Room{}, err
	}
	if err := s.store.UpdateRoom(ctx, r); err != nil {
		return domain.Room{}, err
	}
	s.invalidate(ctx, keyRoom(id), keyRoomTypeRooms(prevType), keyRoomTypeRooms(r.TypeID))
	return r, nil
}

func (s *CommandService) DeleteRoom(ctx context.Context, id int64) error {
	r, err := s.store.GetRoom(ctx, id)
	if err != nil {
		return err
	}
	keys := []string{keyRoom(id), keyRoomTypeRooms(r.TypeID)}
	if s.cache != nil {
		more, err := s.roomBookingKeys(ctx, id)
		if err != nil {
			return err
		}
		keys = append(keys, more...)
	}
	if err := s.store.DeleteRoom(ctx, id); err != nil {
		return err
	}
	s.invalidate(ctx, keys...)
	return nil
}

// ---- guests ----

func (s *CommandService) CreateGuest(ctx context.Context, p domain.GuestPatch) (domain.Guest, error) {
	var g domain.Guest
	p.Apply(&g)
	if errs := checkStruct(s.v, g); errs != nil {
		return domain.Guest{}, errs
	}
	if err := s.store.CreateGuest(ctx, &g); err != nil {
		return domain.Guest{}, err
	}
	return g, nil
}

func (s *CommandService) UpdateGuest(ctx context.Context, id int64, p domain.GuestPatch, replace bool) (domain.Guest, error) {
	g, err := s.store.GetGuest(ctx, id)
	if err != nil {
		return domain.Guest{}, err
	}
	if replace {
		g = domain.Guest{ID: g.ID, RegistrationDate: g.RegistrationDate}
	}
	p.Apply(&g)
	if errs := checkStruct(s.v, g); errs != nil {
		return domain.Guest{}, errs
	}
	if err := s.store.UpdateGuest(ctx, g); err != nil {
		return domain.Guest{}, err
	}
	s.invalidate(ctx, keyGuest(id))
	return s.store.GetGuest(ctx, id)
}

func (s *CommandService) DeleteGuest(ctx context.Context, id int64) error {
	keys := []string{keyGuest(id)}
	if s.cache != nil {
		bs, err := s.store.ListBookings(ctx, domain.BookingFilter{GuestID: &id})
		if err != nil {
			return err
		}
		for _, b := range bs {
			keys = append(keys, keyBooking(b.ID))
		}
	}
	if err := s.store.DeleteGuest(ctx, id); err != nil {
		return err
	}
	s.invalidate(ctx, keys...)
	return nil
}

// ---- bookings ----

func (s *CommandService) CreateBooking(ctx context.Context, p domain.BookingPatch) (domain.Booking, error) {
	b := domain.Booking{TotalPrice: "0.00"}
	p.Apply(&b)
	if errs := s.validateBooking(b); errs != nil {
		return domain.Booking{}, errs
	}
	if err := s.checkGuestRef(ctx, b.GuestID); err != nil {
		return domain.Booking{}, err
	}
	if err := s.checkRoomRef(ctx, b.RoomID); err != nil {
		return domain.Booking{}, err
	}
	if err := s.store.CreateBooking(ctx, &b); err != nil {
		return domain.Booking{}, err
	}
	return b, nil
}

func (s *CommandService) UpdateBooking(ctx context.Context, id int64, p domain.BookingPatch, replace bool) (domain.Booking, error) {
	b, err := s.store.GetBooking(ctx, id)
	if err != nil {
		return domain.Booking{}, err
	}
	if replace {
		b = domain.Booking{ID: b.ID, CreatedAt: b.CreatedAt, TotalPrice: "0.00"}
	}
	p.Apply(&b)
	if errs := s.validateBooking(b); errs != nil {
		return domain.Booking{}, errs
	}
	if err := s.checkGuestRef(ctx, b.GuestID); err != nil {
		return domain.Booking{}, err
	}
	if err := s.checkRoomRef(ctx, b.RoomID); err != nil {
		return domain.Booking{}, err
	}
	if err := s.store.UpdateBooking(ctx, b); err != nil {
		return domain.Booking{}, err
	}
	s.invalidate(ctx, keyBooking(id))
	return s.store.GetBooking(ctx, id)
}

func (s *CommandService) DeleteBooking(ctx context.Context, id int64) error {
	if err := s.store.DeleteBooking(ctx, id); err != nil {
		return err
	}
	s.invalidate(ctx, keyBooking(id))
	return nil
}

// validateBooking runs declarative field checks plus the date rules,
// merged into one field-keyed result.
func (s *CommandService) validateBooking(b domain.Booking) domain.FieldErrors {
	errs := checkStruct(s.v, b)
	dateErrs := b.ValidateDates(domain.Today())
	if dateErrs == nil {
		return errs
	}
	if errs == nil {
		return dateErrs
	}
	for k, v := range dateErrs {
		errs[k] = v
	}
	return errs
}

// ---- cascade invalidation ----
//
// FK cascades remove child rows in the store, so the children's
// cached detail and relationship entries must be evicted in the same
// write rather than left to expire.

func (s *CommandService) hotelCascadeKeys(ctx context.Context, hotelID int64) ([]string, error) {
	var keys []string
	types, err := s.store.ListRoomTypes(ctx, domain.RoomTypeFilter{HotelID: &hotelID})
	if err != nil {
		return nil, err
	}
	for _, rt := range types {
		keys = append(keys, keyRoomType(rt.ID), keyRoomTypeRooms(rt.ID))
	}
	rooms, err := s.store.ListRooms(ctx, domain.RoomFilter{HotelID: &hotelID})
	if err != nil {
		return nil, err
	}
	for _, rm := range rooms {
		keys = append(keys, keyRoom(rm.ID))
		bks, err := s.roomBookingKeys(ctx, rm.ID)
		if err != nil {
			return nil, err
		}
		keys = append(keys, bks...)
	}
	return keys, nil
}

func (s *CommandService) roomTypeCascadeKeys(ctx context.Context, typeID int64) ([]string, error) {
	rooms, err := s.store.ListRooms(ctx, domain.RoomFilter{TypeID: &typeID})
	if err != nil {
		return nil, err
	}
	var keys []string
	for _, rm := range rooms {
		keys = append(keys, keyRoom(rm.ID))
		bks, err := s.roomBookingKeys(ctx, rm.ID)
		if err != nil {
			return nil, err
		}
		keys = append(keys, bks...)
	}
	return keys, nil
}

func (s *CommandService) roomBookingKeys(ctx context.Context, roomID int64) ([]string, error) {
	bs, err := s.store.ListBookings(ctx, domain.BookingFilter{RoomID: &roomID})
	if err != nil {
		return nil, err
	}
	keys := make([]string, 0, len(bs))
	for _, b := range bs {
		keys = append(keys, keyBooking(b.ID))
	}
	return keys, nil
}

// ---- referential checks ----
//
// Parent existence is verified before the write so a dangling id
// surfaces as a field-keyed 400 instead of a driver error. The FK
// constraints in the schema remain the backstop.

func (s *CommandService) checkHotelRef(ctx context.Context, id int64) error {
	if _, err := s.store.GetHotel(ctx, id); err != nil {
		return refError(err, "hotel")
	}
	return nil
}

func (s *CommandService) checkRoomTypeRef(ctx context.Context, id int64) error {
	if _, err := s.store.GetRoomType(ctx, id); err != nil {
		return refError(err, "type")
	}
	return nil
}

func (s *CommandService) checkGuestRef(ctx context.Context, id int64) error {
	if _, err := s.store.GetGuest(ctx, id); err != nil {
		return refError(err, "guest")
	}
	return nil
}

func (s *CommandService) checkRoomRef(ctx context.Context, id int64) error {
	if _, err := s.store.GetRoom(ctx, id); err != nil {
		return refError(err, "room")
	}
	return nil
}

func refError(err error, field string) error {
	if errors.Is(err, domain.ErrNotFound) {
		return domain.FieldErrors{field: "Referenced " + field + " does not exist."}
	}
	return err
}
