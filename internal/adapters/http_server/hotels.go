package httpserver

import (
	"errors"
	"net/http"

	"hoteldesk/internal/domain"
)

func (h *Handlers) listHotels(w http.ResponseWriter, r *http.Request) {
	f := domain.HotelFilter{
		StarRating: qInt(r, "star_rating"),
		Country:    qStr(r, "country"),
		City:       qStr(r, "city"),
	}
	out, err := h.Q.ListHotels(r.Context(), f)
	if err != nil {
		respondError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, out)
}

func (h *Handlers) getHotel(w http.ResponseWriter, r *http.Request) {
	id, ok := urlID(r)
	if !ok {
		writeProblem(w, http.StatusBadRequest, "Invalid ID", "id must be a number")
		return
	}
	hotel, err := h.Q.GetHotel(r.Context(), id)
	if err != nil {
		respondError(w, err)
		return
	}
	writeWithETag(w, r, hotel)
}

func (h *Handlers) createHotel(w http.ResponseWriter, r *http.Request) {
	var p domain.HotelPatch
	if !decodeBody(w, r, &p) {
		return
	}
	hotel, err := h.C.CreateHotel(r.Context(), p)
	if err != nil {
		respondError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, hotel)
}

// updateHotel serves both PUT (full replacement) and PATCH (merge).
func (h *Handlers) updateHotel(w http.ResponseWriter, r *http.Request) {
	id, ok := urlID(r)
	if !ok {
		writeProblem(w, http.StatusBadRequest, "Invalid ID", "id must be a number")
		return
	}
	var p domain.HotelPatch
	if !decodeBody(w, r, &p) {
		return
	}
	hotel, err := h.C.UpdateHotel(r.Context(), id, p, r.Method == http.MethodPut)
	if err != nil {
		respondError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, hotel)
}

func (h *Handlers) deleteHotel(w http.ResponseWriter, r *http.Request) {
	id, ok := urlID(r)
	if !ok {
		writeProblem(w, http.StatusBadRequest, "Invalid ID", "id must be a number")
		return
	}
	if err := h.C.DeleteHotel(r.Context(), id); err != nil {
		respondError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// hotelRoomTypes lists the room types owned by a hotel. A missing
// hotel id deliberately answers 200 with an error-marker payload
// instead of 404; existing clients depend on that shape.
func (h *Handlers) hotelRoomTypes(w http.ResponseWriter, r *http.Request) {
	id, ok := urlID(r)
	if !ok {
		writeProblem(w, http.StatusBadRequest, "Invalid ID", "id must be a number")
		return
	}
	types, err := h.Q.RoomTypesForHotel(r.Context(), id)
	if errors.Is(err, domain.ErrNotFound) {
		writeJSON(w, http.StatusOK, map[string]string{"error": "Hotel does not exist."})
		return
	}
	if err != nil {
		respondError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"types": types})
}
