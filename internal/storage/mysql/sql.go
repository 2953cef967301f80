package mysql

const (
	insertHotelSQL = `
INSERT INTO hotels (name, address, city, country, phone, star_rating)
VALUES (?, ?, ?, ?, ?, ?)`

	updateHotelSQL = `
UPDATE hotels
SET name = ?, address = ?, city = ?, country = ?, phone = ?, star_rating = ?
WHERE id = ?`

	selectHotelSQL = `
SELECT id, name, address, city, country, phone, star_rating, created_at
FROM hotels`

	deleteHotelSQL = `DELETE FROM hotels WHERE id = ?`
)

const (
	insertRoomTypeSQL = `
INSERT INTO room_types (hotel_id, name, description, base_price, max_guests)
VALUES (?, ?, ?, ?, ?)`

	updateRoomTypeSQL = `
UPDATE room_types
SET hotel_id = ?, name = ?, description = ?, base_price = ?, max_guests = ?
WHERE id = ?`

	selectRoomTypeSQL = `
SELECT id, hotel_id, name, description, base_price, max_guests
FROM room_types`

	deleteRoomTypeSQL = `DELETE FROM room_types WHERE id = ?`
)

const (
	insertRoomSQL = `
INSERT INTO rooms (hotel_id, type_id, room_number, floor, is_available)
VALUES (?, ?, ?, ?, ?)`

	updateRoomSQL = `
UPDATE rooms
SET hotel_id = ?, type_id = ?, room_number = ?, floor = ?, is_available = ?
WHERE id = ?`

	selectRoomSQL = `
SELECT id, hotel_id, type_id, room_number, floor, is_available
FROM rooms`

	deleteRoomSQL = `DELETE FROM rooms WHERE id = ?`
)

const (
	insertGuestSQL = `
INSERT INTO guests (first_name, last_name, email, phone, passport)
VALUES (?, ?, ?, ?, ?)`

	updateGuestSQL = `
UPDATE guests
SET first_name = ?, last_name = ?, email = ?, phone = ?, passport = ?
WHERE id = ?`

	selectGuestSQL = `
SELECT id, first_name, last_name, email, phone, passport, registration_date
FROM guests`

	deleteGuestSQL = `DELETE FROM guests WHERE id = ?`
)

const (
	insertBookingSQL = `
INSERT INTO bookings (guest_id, room_id, check_in_date, check_out_date, total_price, status)
VALUES (?, ?, ?, ?, ?, ?)`

	updateBookingSQL = `
UPDATE bookings
SET guest_id = ?, room_id = ?, check_in_date = ?, check_out_date = ?, total_price = ?, status = ?
WHERE id = ?`

	selectBookingSQL = `
SELECT id, guest_id, room_id, check_in_date, check_out_date, total_price, status, created_at
FROM bookings`

	deleteBookingSQL = `DELETE FROM bookings WHERE id = ?`
)
