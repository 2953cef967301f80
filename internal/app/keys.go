package app

import "fmt"

// Cache keys shared by the query (fill) and command (invalidate) sides.

func keyHotel(id int64) string    { return fmt.Sprintf("hotel:%d", id) }
func keyRoomType(id int64) string { return fmt.Sprintf("room_type:%d", id) }
func keyRoom(id int64) string     { return fmt.Sprintf("room:%d", id) }
func keyGuest(id int64) string    { return fmt.Sprintf("guest:%d", id) }
func keyBooking(id int64) string  { return fmt.Sprintf("booking:%d", id) }

func keyHotelRoomTypes(hotelID int64) string { return fmt.Sprintf("hotel:%d:room_types", hotelID) }
func keyRoomTypeRooms(typeID int64) string   { return fmt.Sprintf("room_type:%d:rooms", typeID) }
