package httpserver

import (
	"net/http"

	"hoteldesk/internal/domain"
)

func (h *Handlers) listRooms(w http.ResponseWriter, r *http.Request) {
	f := domain.RoomFilter{
		HotelID:     qInt64(r, "hotel"),
		TypeID:      qInt64(r, "type"),
		IsAvailable: qBool(r, "is_available"),
		Floor:       qInt(r, "floor"),
	}
	out, err := h.Q.ListRooms(r.Context(), f)
	if err != nil {
		respondError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, out)
}

func (h *Handlers) getRoom(w http.ResponseWriter, r *http.Request) {
	id, ok := urlID(r)
	if !ok {
		writeProblem(w, http.StatusBadRequest, "Invalid ID", "id must be a number")
		return
	}
	room, err := h.Q.GetRoom(r.Context(), id)
	if err != nil {
		respondError(w, err)
		return
	}
	writeWithETag(w, r, room)
}

func (h *Handlers) createRoom(w http.ResponseWriter, r *http.Request) {
	var p domain.RoomPatch
	if !decodeBody(w, r, &p) {
		return
	}
	room, err := h.C.CreateRoom(r.Context(), p)
	if err != nil {
		respondError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, room)
}

func (h *Handlers) updateRoom(w http.ResponseWriter, r *http.Request) {
	id, ok := urlID(r)
	if !ok {
		writeProblem(w, http.StatusBadRequest, "Invalid ID", "id must be a number")
		return
	}
	var p domain.RoomPatch
	if !decodeBody(w, r, &p) {
		return
	}
	room, err := h.C.UpdateRoom(r.Context(), id, p, r.Method == http.MethodPut)
	if err != nil {
		respondError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, room)
}

func (h *Handlers) deleteRoom(w http.ResponseWriter, r *http.Request) {
	id, ok := urlID(r)
	if !ok {
		writeProblem(w, http.StatusBadRequest, "Invalid ID", "id must be a number")
		return
	}
	if err := h.C.DeleteRoom(r.Context(), id); err != nil {
		respondError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
