package httpserver

import (
	"net/http"

	"hoteldesk/internal/domain"
)

func (h *Handlers) listBookings(w http.ResponseWriter, r *http.Request) {
	f := domain.BookingFilter{
		GuestID: qInt64(r, "guest"),
		RoomID:  qInt64(r, "room"),
		Status:  qStr(r, "status"),
	}
	out, err := h.Q.ListBookings(r.Context(), f)
	if err != nil {
		respondError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, out)
}

func (h *Handlers) getBooking(w http.ResponseWriter, r *http.Request) {
	id, ok := urlID(r)
	if !ok {
		writeProblem(w, http.StatusBadRequest, "Invalid ID", "id must be a number")
		return
	}
	b, err := h.Q.GetBooking(r.Context(), id)
	if err != nil {
		respondError(w, err)
		return
	}
	writeWithETag(w, r, b)
}

func (h *Handlers) createBooking(w http.ResponseWriter, r *http.Request) {
	var p domain.BookingPatch
	if !decodeBody(w, r, &p) {
		return
	}
	b, err := h.C.CreateBooking(r.Context(), p)
	if err != nil {
		respondError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, b)
}

func (h *Handlers) updateBooking(w http.ResponseWriter, r *http.Request) {
	id, ok := urlID(r)
	if !ok {
		writeProblem(w, http.StatusBadRequest, "Invalid ID", "id must be a number")
		return
	}
	var p domain.BookingPatch
	if !decodeBody(w, r, &p) {
		return
	}
	b, err := h.C.UpdateBooking(r.Context(), id, p, r.Method == http.MethodPut)
	if err != nil {
		respondError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, b)
}

func (h *Handlers) deleteBooking(w http.ResponseWriter, r *http.Request) {
	id, ok := urlID(r)
	if !ok {
		writeProblem(w, http.StatusBadRequest, "Invalid ID", "id must be a number")
		return
	}
	if err := h.C.DeleteBooking(r.Context(), id); err != nil {
		respondError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
