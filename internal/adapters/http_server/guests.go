package httpserver

import (
	"net/http"

	"hoteldesk/internal/domain"
)

func (h *Handlers) listGuests(w http.ResponseWriter, r *http.Request) {
	f := domain.GuestFilter{
		FirstName: qStr(r, "first_name"),
		LastName:  qStr(r, "last_name"),
		Email:     qStr(r, "email"),
	}
	out, err := h.Q.ListGuests(r.Context(), f)
	if err != nil {
		respondError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, out)
}

func (h *Handlers) getGuest(w http.ResponseWriter, r *http.Request) {
	id, ok := urlID(r)
	if !ok {
		writeProblem(w, http.StatusBadRequest, "Invalid ID", "id must be a number")
		return
	}
	g, err := h.Q.GetGuest(r.Context(), id)
	if err != nil {
		respondError(w, err)
		return
	}
	writeWithETag(w, r, g)
}

func (h *Handlers) createGuest(w http.ResponseWriter, r *http.Request) {
	var p domain.GuestPatch
	if !decodeBody(w, r, &p) {
		return
	}
	g, err := h.C.CreateGuest(r.Context(), p)
	if err != nil {
		respondError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, g)
}

func (h *Handlers) updateGuest(w http.ResponseWriter, r *http.Request) {
	id, ok := urlID(r)
	if !ok {
		writeProblem(w, http.StatusBadRequest, "Invalid ID", "id must be a number")
		return
	}
	var p domain.GuestPatch
	if !decodeBody(w, r, &p) {
		return
	}
	g, err := h.C.UpdateGuest(r.Context(), id, p, r.Method == http.MethodPut)
	if err != nil {
		respondError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, g)
}

func (h *Handlers) deleteGuest(w http.ResponseWriter, r *http.Request) {
	id, ok := urlID(r)
	if !ok {
		writeProblem(w, http.StatusBadRequest, "Invalid ID", "id must be a number")
		return
	}
	if err := h.C.DeleteGuest(r.Context(), id); err != nil {
		respondError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
