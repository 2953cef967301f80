package httpserver

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"hoteldesk/internal/app"
	"hoteldesk/internal/domain"
	"hoteldesk/internal/storage/memory"
)

func newTestServer(t *testing.T) *httptest.Server {
	t.Helper()
	store := memory.New()
	srv := New(0)
	srv.MountHandlers(&Handlers{
		Q: app.NewQueryService(store, nil, time.Minute),
		C: app.NewCommandService(store, nil),
	})
	ts := httptest.NewServer(srv.Mux())
	t.Cleanup(ts.Close)
	return ts
}

func do(t *testing.T, method, url string, body any) *http.Response {
	t.Helper()
	var rd *bytes.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("marshal body: %v", err)
		}
		rd = bytes.NewReader(b)
	} else {
		rd = bytes.NewReader(nil)
	}
	req, err := http.NewRequest(method, url, rd)
	if err != nil {
		t.Fatalf("build request: %v", err)
	}
	req.Header.Set("Content-Type", "application/json")
	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		t.Fatalf("%s %s: %v", method, url, err)
	}
	return resp
}

func decode(t *testing.T, resp *http.Response, dst any) {
	t.Helper()
	defer resp.Body.Close()
	if err := json.NewDecoder(resp.Body).Decode(dst); err != nil {
		t.Fatalf("decode response: %v", err)
	}
}

func wantStatus(t *testing.T, resp *http.Response, want int) {
	t.Helper()
	if resp.StatusCode != want {
		t.Fatalf("status = %d, want %d", resp.StatusCode, want)
	}
}

func postHotel(t *testing.T, base string, body map[string]any) map[string]any {
	t.Helper()
	resp := do(t, http.MethodPost, base+"/api/v1/hotels/", body)
	wantStatus(t, resp, http.StatusCreated)
	var out map[string]any
	decode(t, resp, &out)
	return out
}

func sampleHotel() map[string]any {
	return map[string]any{
		"name":        "Grand Plaza",
		"address":     "1 Plaza Ave",
		"city":        "Lisbon",
		"country":     "Portugal",
		"phone":       "+351211234567",
		"star_rating": 5,
	}
}

func TestHotelCRUD(t *testing.T) {
	ts := newTestServer(t)

	created := postHotel(t, ts.URL, sampleHotel())
	id := int64(created["id"].(float64))
	if id == 0 {
		t.Fatal("want assigned id")
	}
	if created["created_at"] == nil {
		t.Fatal("want created_at in response")
	}

	detail := fmt.Sprintf("%s/api/v1/hotels/%d/", ts.URL, id)

	resp := do(t, http.MethodGet, detail, nil)
	wantStatus(t, resp, http.StatusOK)
	var got map[string]any
	decode(t, resp, &got)
	if got["name"] != "Grand Plaza" {
		t.Fatalf("get: %+v", got)
	}

	resp = do(t, http.MethodPatch, detail, map[string]any{"city": "Porto"})
	wantStatus(t, resp, http.StatusOK)
	decode(t, resp, &got)
	if got["city"] != "Porto" || got["name"] != "Grand Plaza" {
		t.Fatalf("patch merge: %+v", got)
	}

	resp = do(t, http.MethodDelete, detail, nil)
	wantStatus(t, resp, http.StatusNoContent)
	resp.Body.Close()

	resp = do(t, http.MethodGet, detail, nil)
	wantStatus(t, resp, http.StatusNotFound)
	resp.Body.Close()
}

func TestPutIsFullReplacement(t *testing.T) {
	ts := newTestServer(t)

	created := postHotel(t, ts.URL, sampleHotel())
	detail := fmt.Sprintf("%s/api/v1/hotels/%v/", ts.URL, created["id"])

	// a partial PUT must 400 on the missing required fields
	resp := do(t, http.MethodPut, detail, map[string]any{"city": "Porto"})
	wantStatus(t, resp, http.StatusBadRequest)
	var errs map[string]string
	decode(t, resp, &errs)
	if errs["name"] != "This field is required." {
		t.Fatalf("want required-name message, got %+v", errs)
	}

	full := sampleHotel()
	full["city"] = "Porto"
	resp = do(t, http.MethodPut, detail, full)
	wantStatus(t, resp, http.StatusOK)
	var got map[string]any
	decode(t, resp, &got)
	if got["city"] != "Porto" {
		t.Fatalf("replacement not applied: %+v", got)
	}

	// PATCH keeps its merge semantics
	resp = do(t, http.MethodPatch, detail, map[string]any{"city": "Faro"})
	wantStatus(t, resp, http.StatusOK)
	decode(t, resp, &got)
	if got["city"] != "Faro" || got["name"] != "Grand Plaza" {
		t.Fatalf("patch merge: %+v", got)
	}
}

func TestHotelValidationErrors(t *testing.T) {
	ts := newTestServer(t)

	resp := do(t, http.MethodPost, ts.URL+"/api/v1/hotels/", map[string]any{"name": "Nameless"})
	wantStatus(t, resp, http.StatusBadRequest)
	var errs map[string]string
	decode(t, resp, &errs)
	if errs["phone"] != "This field is required." {
		t.Fatalf("want required-phone message, got %+v", errs)
	}

	bad := sampleHotel()
	bad["star_rating"] = 9
	resp = do(t, http.MethodPost, ts.URL+"/api/v1/hotels/", bad)
	wantStatus(t, resp, http.StatusBadRequest)
	decode(t, resp, &errs)
	if _, ok := errs["star_rating"]; !ok {
		t.Fatalf("want star_rating error, got %+v", errs)
	}
}

func TestHotelListFilter(t *testing.T) {
	ts := newTestServer(t)

	postHotel(t, ts.URL, sampleHotel())
	three := sampleHotel()
	three["name"], three["star_rating"], three["city"] = "Harbor Inn", 3, "Porto"
	postHotel(t, ts.URL, three)

	resp := do(t, http.MethodGet, ts.URL+"/api/v1/hotels/?star_rating=5", nil)
	wantStatus(t, resp, http.StatusOK)
	var hotels []map[string]any
	decode(t, resp, &hotels)
	if len(hotels) != 1 || hotels[0]["name"] != "Grand Plaza" {
		t.Fatalf("star_rating filter: %+v", hotels)
	}

	resp = do(t, http.MethodGet, ts.URL+"/api/v1/hotels/?city=Porto&star_rating=5", nil)
	wantStatus(t, resp, http.StatusOK)
	decode(t, resp, &hotels)
	if len(hotels) != 0 {
		t.Fatalf("conjunction should be empty: %+v", hotels)
	}
}

// TestReservationFlow walks the whole resource chain the way a booking
// client does: hotel, room type, room, guest, then the booking itself.
func TestReservationFlow(t *testing.T) {
	ts := newTestServer(t)

	hotel := postHotel(t, ts.URL, sampleHotel())
	hotelID := hotel["id"]

	resp := do(t, http.MethodPost, ts.URL+"/api/v1/room_types/", map[string]any{
		"hotel":       hotelID,
		"name":        "Deluxe",
		"description": "Sea view",
		"base_price":  "250.00",
		"max_guests":  2,
	})
	wantStatus(t, resp, http.StatusCreated)
	var roomType map[string]any
	decode(t, resp, &roomType)
	if roomType["base_price"] != "250.00" {
		t.Fatalf("base_price round trip: %+v", roomType)
	}

	resp = do(t, http.MethodPost, ts.URL+"/api/v1/rooms/", map[string]any{
		"hotel":       hotelID,
		"type":        roomType["id"],
		"room_number": "101",
		"floor":       1,
	})
	wantStatus(t, resp, http.StatusCreated)
	var room map[string]any
	decode(t, resp, &room)
	if room["is_available"] != true {
		t.Fatalf("is_available default: %+v", room)
	}

	resp = do(t, http.MethodPost, ts.URL+"/api/v1/guests/", map[string]any{
		"first_name": "Ana",
		"last_name":  "Silva",
		"email":      "ana.silva@example.com",
		"phone":      "+351911234567",
		"passport":   "P1234567",
	})
	wantStatus(t, resp, http.StatusCreated)
	var guest map[string]any
	decode(t, resp, &guest)

	in := domain.Today().AddDays(1).String()
	out := domain.Today().AddDays(4).String()
	resp = do(t, http.MethodPost, ts.URL+"/api/v1/bookings/", map[string]any{
		"guest":          guest["id"],
		"room":           room["id"],
		"check_in_date":  in,
		"check_out_date": out,
		"total_price":    "750.00",
		"status":         "confirmed",
	})
	wantStatus(t, resp, http.StatusCreated)
	var booking map[string]any
	decode(t, resp, &booking)
	if booking["check_in_date"] != in || booking["check_out_date"] != out {
		t.Fatalf("date round trip: %+v", booking)
	}
	if booking["total_price"] != "750.00" {
		t.Fatalf("total_price round trip: %+v", booking)
	}

	id := int64(booking["id"].(float64))
	resp = do(t, http.MethodGet, fmt.Sprintf("%s/api/v1/bookings/%d/", ts.URL, id), nil)
	wantStatus(t, resp, http.StatusOK)
	decode(t, resp, &booking)
	if booking["status"] != "confirmed" {
		t.Fatalf("get booking: %+v", booking)
	}
}

func TestBookingDateErrors(t *testing.T) {
	ts := newTestServer(t)

	hotel := postHotel(t, ts.URL, sampleHotel())
	resp := do(t, http.MethodPost, ts.URL+"/api/v1/room_types/", map[string]any{
		"hotel": hotel["id"], "name": "Deluxe", "description": "Sea view", "max_guests": 2,
	})
	wantStatus(t, resp, http.StatusCreated)
	var roomType map[string]any
	decode(t, resp, &roomType)

	resp = do(t, http.MethodPost, ts.URL+"/api/v1/rooms/", map[string]any{
		"hotel": hotel["id"], "type": roomType["id"], "room_number": "101", "floor": 1,
	})
	wantStatus(t, resp, http.StatusCreated)
	var room map[string]any
	decode(t, resp, &room)

	resp = do(t, http.MethodPost, ts.URL+"/api/v1/guests/", map[string]any{
		"first_name": "Ana", "last_name": "Silva", "email": "ana@example.com",
		"phone": "+351911234567", "passport": "P1234567",
	})
	wantStatus(t, resp, http.StatusCreated)
	var guest map[string]any
	decode(t, resp, &guest)

	day := domain.Today().AddDays(2).String()
	resp = do(t, http.MethodPost, ts.URL+"/api/v1/bookings/", map[string]any{
		"guest": guest["id"], "room": room["id"],
		"check_in_date": day, "check_out_date": day,
		"status": "pending",
	})
	wantStatus(t, resp, http.StatusBadRequest)
	var errs map[string]string
	decode(t, resp, &errs)
	if errs["check_out_date"] != "Check-out date must be after the check-in date." {
		t.Fatalf("want check-out message, got %+v", errs)
	}

	past := domain.Today().AddDays(-1).String()
	resp = do(t, http.MethodPost, ts.URL+"/api/v1/bookings/", map[string]any{
		"guest": guest["id"], "room": room["id"],
		"check_in_date": past, "check_out_date": day,
		"status": "pending",
	})
	wantStatus(t, resp, http.StatusBadRequest)
	decode(t, resp, &errs)
	if errs["check_in_date"] != "Check-in date cannot be in the past." {
		t.Fatalf("want past-check-in message, got %+v", errs)
	}
}

func TestRelationshipLookups(t *testing.T) {
	ts := newTestServer(t)

	hotel := postHotel(t, ts.URL, sampleHotel())
	hotelID := int64(hotel["id"].(float64))

	resp := do(t, http.MethodPost, ts.URL+"/api/v1/room_types/", map[string]any{
		"hotel": hotel["id"], "name": "Deluxe", "description": "Sea view", "max_guests": 2,
	})
	wantStatus(t, resp, http.StatusCreated)
	var roomType map[string]any
	decode(t, resp, &roomType)
	typeID := int64(roomType["id"].(float64))

	resp = do(t, http.MethodGet, fmt.Sprintf("%s/api/v1/hotels/%d/room_types/", ts.URL, hotelID), nil)
	wantStatus(t, resp, http.StatusOK)
	var typesBody map[string][]map[string]any
	decode(t, resp, &typesBody)
	if len(typesBody["types"]) != 1 || typesBody["types"][0]["name"] != "Deluxe" {
		t.Fatalf("room types lookup: %+v", typesBody)
	}

	resp = do(t, http.MethodGet, fmt.Sprintf("%s/api/v1/room_types/%d/rooms/", ts.URL, typeID), nil)
	wantStatus(t, resp, http.StatusOK)
	var roomsBody map[string][]map[string]any
	decode(t, resp, &roomsBody)
	if got := roomsBody["rooms"]; got == nil || len(got) != 0 {
		t.Fatalf("want empty rooms list, got %+v", roomsBody)
	}

	// missing parents answer 200 with an error marker, not 404
	resp = do(t, http.MethodGet, ts.URL+"/api/v1/hotels/999/room_types/", nil)
	wantStatus(t, resp, http.StatusOK)
	var marker map[string]string
	decode(t, resp, &marker)
	if marker["error"] != "Hotel does not exist." {
		t.Fatalf("missing hotel marker: %+v", marker)
	}

	resp = do(t, http.MethodGet, ts.URL+"/api/v1/room_types/999/rooms/", nil)
	wantStatus(t, resp, http.StatusOK)
	decode(t, resp, &marker)
	if marker["error"] != "Room type does not exist." {
		t.Fatalf("missing room type marker: %+v", marker)
	}
}

func TestDeleteHotelCascadesOverHTTP(t *testing.T) {
	ts := newTestServer(t)

	hotel := postHotel(t, ts.URL, sampleHotel())
	resp := do(t, http.MethodPost, ts.URL+"/api/v1/room_types/", map[string]any{
		"hotel": hotel["id"], "name": "Deluxe", "description": "Sea view", "max_guests": 2,
	})
	wantStatus(t, resp, http.StatusCreated)
	var roomType map[string]any
	decode(t, resp, &roomType)

	resp = do(t, http.MethodDelete, fmt.Sprintf("%s/api/v1/hotels/%v/", ts.URL, hotel["id"]), nil)
	wantStatus(t, resp, http.StatusNoContent)
	resp.Body.Close()

	resp = do(t, http.MethodGet, fmt.Sprintf("%s/api/v1/room_types/%v/", ts.URL, roomType["id"]), nil)
	wantStatus(t, resp, http.StatusNotFound)
	resp.Body.Close()
}

func TestDetailETag(t *testing.T) {
	ts := newTestServer(t)

	hotel := postHotel(t, ts.URL, sampleHotel())
	detail := fmt.Sprintf("%s/api/v1/hotels/%v/", ts.URL, hotel["id"])

	resp := do(t, http.MethodGet, detail, nil)
	wantStatus(t, resp, http.StatusOK)
	etag := resp.Header.Get("ETag")
	resp.Body.Close()
	if etag == "" {
		t.Fatal("want ETag on detail GET")
	}

	req, _ := http.NewRequest(http.MethodGet, detail, nil)
	req.Header.Set("If-None-Match", etag)
	resp2, err := http.DefaultClient.Do(req)
	if err != nil {
		t.Fatalf("conditional get: %v", err)
	}
	defer resp2.Body.Close()
	if resp2.StatusCode != http.StatusNotModified {
		t.Fatalf("status = %d, want 304", resp2.StatusCode)
	}
}

func TestMalformedRequests(t *testing.T) {
	ts := newTestServer(t)

	req, _ := http.NewRequest(http.MethodPost, ts.URL+"/api/v1/hotels/", bytes.NewReader([]byte("{not json")))
	req.Header.Set("Content-Type", "application/json")
	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		t.Fatalf("post: %v", err)
	}
	wantStatus(t, resp, http.StatusBadRequest)
	resp.Body.Close()

	resp = do(t, http.MethodGet, ts.URL+"/api/v1/hotels/abc/", nil)
	wantStatus(t, resp, http.StatusBadRequest)
	resp.Body.Close()
}

func TestListsAreBareArrays(t *testing.T) {
	ts := newTestServer(t)

	resp := do(t, http.MethodGet, ts.URL+"/api/v1/bookings/", nil)
	wantStatus(t, resp, http.StatusOK)
	var bookings []map[string]any
	decode(t, resp, &bookings)
	if bookings == nil || len(bookings) != 0 {
		t.Fatalf("want empty array body, got %+v", bookings)
	}
}
