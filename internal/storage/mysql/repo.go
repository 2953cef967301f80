package mysql

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	sqldriver "github.com/go-sql-driver/mysql"

	"hoteldesk/internal/domain"
)

// Repo implements domain.Store over database/sql. Cascade deletion is
// enforced by the FK constraints in migrations/, not in code.
type Repo struct{ db *sql.DB }

func New(db *sql.DB) *Repo { return &Repo{db: db} }

// mapErr normalizes driver errors: a foreign-key rejection (1452)
// becomes domain.ErrInvalidReference.
func mapErr(err error) error {
	if err == nil {
		return nil
	}
	var me *sqldriver.MySQLError
	if errors.As(err, &me) && me.Number == 1452 {
		return fmt.Errorf("%w: %s", domain.ErrInvalidReference, me.Message)
	}
	return err
}

// where accumulates exact-match conjunctions for the filtered lists.
type where struct {
	conds []string
	args  []any
}

func (w *where) eq(col string, v any) {
	w.conds = append(w.conds, col+" = ?")
	w.args = append(w.args, v)
}

func (w *where) clause() string {
	if len(w.conds) == 0 {
		return ""
	}
	return " WHERE " + strings.Join(w.conds, " AND ")
}

// ---- hotels ----

func (r *Repo) CreateHotel(ctx context.Context, h *domain.Hotel) error {
	res, err := r.db.ExecContext(ctx, insertHotelSQL,
		h.Name, h.Address, h.City, h.Country, h.Phone, h.StarRating)
	if err != nil {
		return mapErr(err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return err
	}
	*h, err = r.GetHotel(ctx, id)
	return err
}

func (r *Repo) GetHotel(ctx context.Context, id int64) (domain.Hotel, error) {
	var h domain.Hotel
	err := r.db.QueryRowContext(ctx, selectHotelSQL+" WHERE id = ?", id).Scan(
		&h.ID, &h.Name, &h.Address, &h.City, &h.Country, &h.Phone, &h.StarRating, &h.CreatedAt)
	if err == sql.ErrNoRows {
		return domain.Hotel{}, domain.ErrNotFound
	}
	return h, err
}

func (r *Repo) ListHotels(ctx context.Context, f domain.HotelFilter) ([]domain.Hotel, error) {
	var w where
	if f.StarRating != nil {
		w.eq("star_rating", *f.StarRating)
	}
	if f.Country != nil {
		w.eq("country", *f.Country)
	}
	if f.City != nil {
		w.eq("city", *f.City)
	}
	rows, err := r.db.QueryContext(ctx, selectHotelSQL+w.clause()+" ORDER BY id", w.args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []domain.Hotel{}
	for rows.Next() {
		var h domain.Hotel
		if err := rows.Scan(&h.ID, &h.Name, &h.Address, &h.City, &h.Country, &h.Phone, &h.StarRating, &h.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, h)
	}
	return out, rows.Err()
}

func (r *Repo) UpdateHotel(ctx context.Context, h domain.Hotel) error {
	res, err := r.db.ExecContext(ctx, updateHotelSQL,
		h.Name, h.Address, h.City, h.Country, h.Phone, h.StarRating, h.ID)
	if err != nil {
		return mapErr(err)
	}
	return ensureUpdated(res, func() error {
		_, err := r.GetHotel(ctx, h.ID)
		return err
	})
}

func (r *Repo) DeleteHotel(ctx context.Context, id int64) error {
	return r.deleteByID(ctx, deleteHotelSQL, id)
}

// ---- room types ----

func (r *Repo) CreateRoomType(ctx context.Context, rt *domain.RoomType) error {
	res, err := r.db.ExecContext(ctx, insertRoomTypeSQL,
		rt.HotelID, rt.Name, rt.Description, rt.BasePrice, rt.MaxGuests)
	if err != nil {
		return mapErr(err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return err
	}
	*rt, err = r.GetRoomType(ctx, id)
	return err
}

func (r *Repo) GetRoomType(ctx context.Context, id int64) (domain.RoomType, error) {
	var rt domain.RoomType
	err := r.db.QueryRowContext(ctx, selectRoomTypeSQL+" WHERE id = ?", id).Scan(
		&rt.ID, &rt.HotelID, &rt.Name, &rt.Description, &rt.BasePrice, &rt.MaxGuests)
	if err == sql.ErrNoRows {
		return domain.RoomType{}, domain.ErrNotFound
	}
	return rt, err
}

func (r *Repo) ListRoomTypes(ctx context.Context, f domain.RoomTypeFilter) ([]domain.RoomType, error) {
	var w where
	if f.HotelID != nil {
		w.eq("hotel_id", *f.HotelID)
	}
	if f.MaxGuests != nil {
		w.eq("max_guests", *f.MaxGuests)
	}
	rows, err := r.db.QueryContext(ctx, selectRoomTypeSQL+w.clause()+" ORDER BY id", w.args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []domain.RoomType{}
	for rows.Next() {
		var rt domain.RoomType
		if err := rows.Scan(&rt.ID, &rt.HotelID, &rt.Name, &rt.Description, &rt.BasePrice, &rt.MaxGuests); err != nil {
			return nil, err
		}
		out = append(out, rt)
	}
	return out, rows.Err()
}

func (r *Repo) UpdateRoomType(ctx context.Context, rt domain.RoomType) error {
	res, err := r.db.ExecContext(ctx, updateRoomTypeSQL,
		rt.HotelID, rt.Name, rt.Description, rt.BasePrice, rt.MaxGuests, rt.ID)
	if err != nil {
		return mapErr(err)
	}
	return ensureUpdated(res, func() error {
		_, err := r.GetRoomType(ctx, rt.ID)
		return err
	})
}

func (r *Repo) DeleteRoomType(ctx context.Context, id int64) error {
	return r.deleteByID(ctx, deleteRoomTypeSQL, id)
}

// ---- rooms ----

func (r *Repo) CreateRoom(ctx context.Context, rm *domain.Room) error {
	res, err := r.db.ExecContext(ctx, insertRoomSQL,
		rm.HotelID, rm.TypeID, rm.RoomNumber, rm.Floor, rm.IsAvailable)
	if err != nil {
		return mapErr(err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return err
	}
	*rm, err = r.GetRoom(ctx, id)
	return err
}

func (r *Repo) GetRoom(ctx context.Context, id int64) (domain.Room, error) {
	var rm domain.Room
	err := r.db.QueryRowContext(ctx, selectRoomSQL+" WHERE id = ?", id).Scan(
		&rm.ID, &rm.HotelID, &rm.TypeID, &rm.RoomNumber, &rm.Floor, &rm.IsAvailable)
	if err == sql.ErrNoRows {
		return domain.Room{}, domain.ErrNotFound
	}
	return rm, err
}

func (r *Repo) ListRooms(ctx context.Context, f domain.RoomFilter) ([]domain.Room, error) {
	var w where
	if f.HotelID != nil {
		w.eq("hotel_id", *f.HotelID)
	}
	if f.TypeID != nil {
		w.eq("type_id", *f.TypeID)
	}
	if f.IsAvailable != nil {
		w.eq("is_available", *f.IsAvailable)
	}
	if f.Floor != nil {
		w.eq("floor", *f.Floor)
	}
	rows, err := r.db.QueryContext(ctx, selectRoomSQL+w.clause()+" ORDER BY id", w.args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []domain.Room{}
	for rows.Next() {
		var rm domain.Room
		if err := rows.Scan(&rm.ID, &rm.HotelID, &rm.TypeID, &rm.RoomNumber, &rm.Floor, &rm.IsAvailable); err != nil {
			return nil, err
		}
		out = append(out, rm)
	}
	return out, rows.Err()
}

func (r *Repo) UpdateRoom(ctx context.Context, rm domain.Room) error {
	res, err := r.db.ExecContext(ctx, updateRoomSQL,
		rm.HotelID, rm.TypeID, rm.RoomNumber, rm.Floor, rm.IsAvailable, rm.ID)
	if err != nil {
		return mapErr(err)
	}
	return ensureUpdated(res, func() error {
		_, err := r.GetRoom(ctx, rm.ID)
		return err
	})
}

func (r *Repo) DeleteRoom(ctx context.Context, id int64) error {
	return r.deleteByID(ctx, deleteRoomSQL, id)
}

// ---- guests ----

func (r *Repo) CreateGuest(ctx context.Context, g *domain.Guest) error {
	res, err := r.db.ExecContext(ctx, insertGuestSQL,
		g.FirstName, g.LastName, g.Email, g.Phone, g.Passport)
	if err != nil {
		return mapErr(err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return err
	}
	*g, err = r.GetGuest(ctx, id)
	return err
}

func (r *Repo) GetGuest(ctx context.Context, id int64) (domain.Guest, error) {
	var g domain.Guest
	err := r.db.QueryRowContext(ctx, selectGuestSQL+" WHERE id = ?", id).Scan(
		&g.ID, &g.FirstName, &g.LastName, &g.Email, &g.Phone, &g.Passport, &g.RegistrationDate)
	if err == sql.ErrNoRows {
		return domain.Guest{}, domain.ErrNotFound
	}
	return g, err
}

func (r *Repo) ListGuests(ctx context.Context, f domain.GuestFilter) ([]domain.Guest, error) {
	var w where
	if f.FirstName != nil {
		w.eq("first_name", *f.FirstName)
	}
	if f.LastName != nil {
		w.eq("last_name", *f.LastName)
	}
	if f.Email != nil {
		w.eq("email", *f.Email)
	}
	rows, err := r.db.QueryContext(ctx, selectGuestSQL+w.clause()+" ORDER BY id", w.args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []domain.Guest{}
	for rows.Next() {
		var g domain.Guest
		if err := rows.Scan(&g.ID, &g.FirstName, &g.LastName, &g.Email, &g.Phone, &g.Passport, &g.RegistrationDate); err != nil {
			return nil, err
		}
		out = append(out, g)
	}
	return out, rows.Err()
}

func (r *Repo) UpdateGuest(ctx context.Context, g domain.Guest) error {
	res, err := r.db.ExecContext(ctx, updateGuestSQL,
		g.FirstName, g.LastName, g.Email, g.Phone, g.Passport, g.ID)
	if err != nil {
		return mapErr(err)
	}
	return ensureUpdated(res, func() error {
		_, err := r.GetGuest(ctx, g.ID)
		return err
	})
}

func (r *Repo) DeleteGuest(ctx context.Context, id int64) error {
	return r.deleteByID(ctx, deleteGuestSQL, id)
}

// ---- bookings ----

func (r *Repo) CreateBooking(ctx context.Context, b *domain.Booking) error {
	res, err := r.db.ExecContext(ctx, insertBookingSQL,
		b.GuestID, b.RoomID, b.CheckInDate, b.CheckOutDate, b.TotalPrice, b.Status)
	if err != nil {
		return mapErr(err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return err
	}
	*b, err = r.GetBooking(ctx, id)
	return err
}

func (r *Repo) GetBooking(ctx context.Context, id int64) (domain.Booking, error) {
	var b domain.Booking
	err := r.db.QueryRowContext(ctx, selectBookingSQL+" WHERE id = ?", id).Scan(
		&b.ID, &b.GuestID, &b.RoomID, &b.CheckInDate, &b.CheckOutDate, &b.TotalPrice, &b.Status, &b.CreatedAt)
	if err == sql.ErrNoRows {
		return domain.Booking{}, domain.ErrNotFound
	}
	return b, err
}

func (r *Repo) ListBookings(ctx context.Context, f domain.BookingFilter) ([]domain.Booking, error) {
	var w where
	if f.GuestID != nil {
		w.eq("guest_id", *f.GuestID)
	}
	if f.RoomID != nil {
		w.eq("room_id", *f.RoomID)
	}
	if f.Status != nil {
		w.eq("status", *f.Status)
	}
	rows, err := r.db.QueryContext(ctx, selectBookingSQL+w.clause()+" ORDER BY id", w.args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []domain.Booking{}
	for rows.Next() {
		var b domain.Booking
		if err := rows.Scan(&b.ID, &b.GuestID, &b.RoomID, &b.CheckInDate, &b.CheckOutDate, &b.TotalPrice, &b.Status, &b.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, b)
	}
	return out, rows.Err()
}

func (r *Repo) UpdateBooking(ctx context.Context, b domain.Booking) error {
	res, err := r.db.ExecContext(ctx, updateBookingSQL,
		b.GuestID, b.RoomID, b.CheckInDate, b.CheckOutDate, b.TotalPrice, b.Status, b.ID)
	if err != nil {
		return mapErr(err)
	}
	return ensureUpdated(res, func() error {
		_, err := r.GetBooking(ctx, b.ID)
		return err
	})
}

func (r *Repo) DeleteBooking(ctx context.Context, id int64) error {
	return r.deleteByID(ctx, deleteBookingSQL, id)
}

// ---- shared ----

// ensureUpdated distinguishes a missing row from a no-op update:
// MySQL reports zero affected rows in both cases, so a zero count
// falls back to an existence check.
func ensureUpdated(res sql.Result, exists func() error) error {
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n > 0 {
		return nil
	}
	return exists()
}

func (r *Repo) deleteByID(ctx context.Context, q string, id int64) error {
	res, err := r.db.ExecContext(ctx, q, id)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return domain.ErrNotFound
	}
	return nil
}
