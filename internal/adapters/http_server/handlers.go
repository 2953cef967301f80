package httpserver

import (
	"crypto/sha1"
	"encoding/hex"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"

	"hoteldesk/internal/app"
	"hoteldesk/internal/domain"
)

type Handlers struct {
	Q *app.QueryService
	C *app.CommandService
}

type problem struct {
	Type   string `json:"type"`
	Title  string `json:"title"`
	Status int    `json:"status"`
	Detail string `json:"detail,omitempty"`
}

// MountHandlers registers the /api/v1 resource surface. Paths keep
// their trailing slashes to stay wire-compatible with existing
// clients of this API.
func (s *Server) MountHandlers(h *Handlers) {
	s.mux.Get("/healthz", func(w http.ResponseWriter, r *http.Request) { w.WriteHeader(200); _, _ = w.Write([]byte("ok")) })

	s.mux.Route("/api/v1", func(r chi.Router) {
		r.Get("/hotels/", h.listHotels)
		r.Post("/hotels/", h.createHotel)
		r.Get("/hotels/{id}/", h.getHotel)
		r.Put("/hotels/{id}/", h.updateHotel)
		r.Patch("/hotels/{id}/", h.updateHotel)
		r.Delete("/hotels/{id}/", h.deleteHotel)
		r.Get("/hotels/{id}/room_types/", h.hotelRoomTypes)

		r.Get("/room_types/", h.listRoomTypes)
		r.Post("/room_types/", h.createRoomType)
		r.Get("/room_types/{id}/", h.getRoomType)
		r.Put("/room_types/{id}/", h.updateRoomType)
		r.Patch("/room_types/{id}/", h.updateRoomType)
		r.Delete("/room_types/{id}/", h.deleteRoomType)
		r.Get("/room_types/{id}/rooms/", h.roomTypeRooms)

		r.Get("/rooms/", h.listRooms)
		r.Post("/rooms/", h.createRoom)
		r.Get("/rooms/{id}/", h.getRoom)
		r.Put("/rooms/{id}/", h.updateRoom)
		r.Patch("/rooms/{id}/", h.updateRoom)
		r.Delete("/rooms/{id}/", h.deleteRoom)

		r.Get("/guests/", h.listGuests)
		r.Post("/guests/", h.createGuest)
		r.Get("/guests/{id}/", h.getGuest)
		r.Put("/guests/{id}/", h.updateGuest)
		r.Patch("/guests/{id}/", h.updateGuest)
		r.Delete("/guests/{id}/", h.deleteGuest)

		r.Get("/bookings/", h.listBookings)
		r.Post("/bookings/", h.createBooking)
		r.Get("/bookings/{id}/", h.getBooking)
		r.Put("/bookings/{id}/", h.updateBooking)
		r.Patch("/bookings/{id}/", h.updateBooking)
		r.Delete("/bookings/{id}/", h.deleteBooking)
	})
}

// ---- shared response helpers ----

func writeProblem(w http.ResponseWriter, status int, title, detail string) {
	w.Header().Set("Content-Type", "application/problem+json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(problem{Type: "about:blank", Title: title, Status: status, Detail: detail}); err != nil {
		log.Error().Err(err).Msg("write JSON problem response failed")
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Error().Err(err).Msg("write JSON response failed")
	}
}

// respondError maps service errors: field-keyed validation failures
// are a 400 body of their own, missing records are 404, the rest 500.
func respondError(w http.ResponseWriter, err error) {
	var fe domain.FieldErrors
	if errors.As(err, &fe) {
		writeJSON(w, http.StatusBadRequest, fe)
		return
	}
	if errors.Is(err, domain.ErrNotFound) {
		writeProblem(w, http.StatusNotFound, "Not Found", "record not found")
		return
	}
	log.Error().Err(err).Msg("request failed")
	writeProblem(w, http.StatusInternalServerError, "Internal Server Error", "")
}

func urlID(r *http.Request) (int64, bool) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	return id, err == nil
}

func decodeBody(w http.ResponseWriter, r *http.Request, dst any) bool {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		writeProblem(w, http.StatusBadRequest, "Malformed Body", err.Error())
		return false
	}
	return true
}

// calcETagAndBody marshals once and hashes once, returning both ETag and body.
func calcETagAndBody(v any) (string, []byte) {
	body, err := json.Marshal(v)
	if err != nil {
		log.Error().Err(err).Msg("failed to marshal object for ETag/body")
		return "", nil
	}
	sum := sha1.Sum(body)
	etag := `W/"` + hex.EncodeToString(sum[:]) + `"`
	return etag, body
}

// writeWithETag serves a detail GET with weak ETag / If-None-Match
// handling.
func writeWithETag(w http.ResponseWriter, r *http.Request, v any) {
	etag, body := calcETagAndBody(v)
	if inm := r.Header.Get("If-None-Match"); inm != "" && inm == etag {
		w.Header().Set("ETag", etag)
		w.WriteHeader(http.StatusNotModified)
		return
	}
	w.Header().Set("ETag", etag)
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(body); err != nil {
		log.Error().Err(err).Msg("failed to write response body")
	}
}

// ---- query param helpers (unrecognized or unparseable values are
// ignored, leaving the filter field unset) ----

func qStr(r *http.Request, key string) *string {
	if v := r.URL.Query().Get(key); v != "" {
		return &v
	}
	return nil
}

func qInt(r *http.Request, key string) *int {
	if v := r.URL.Query().Get(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return &n
		}
	}
	return nil
}

func qInt64(r *http.Request, key string) *int64 {
	if v := r.URL.Query().Get(key); v != "" {
		if n, err := strconv.ParseInt(v, 10, 64); err == nil {
			return &n
		}
	}
	return nil
}

func qBool(r *http.Request, key string) *bool {
	if v := r.URL.Query().Get(key); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			return &b
		}
	}
	return nil
}
