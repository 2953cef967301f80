package httpserver

import (
	"errors"
	"net/http"

	"hoteldesk/internal/domain"
)

func (h *Handlers) listRoomTypes(w http.ResponseWriter, r *http.Request) {
	f := domain.RoomTypeFilter{
		HotelID:   qInt64(r, "hotel"),
		MaxGuests: qInt(r, "max_guests"),
	}
	out, err := h.Q.ListRoomTypes(r.Context(), f)
	if err != nil {
		respondError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, out)
}

func (h *Handlers) getRoomType(w http.ResponseWriter, r *http.Request) {
	id, ok := urlID(r)
	if !ok {
		writeProblem(w, http.StatusBadRequest, "Invalid ID", "id must be a number")
		return
	}
	rt, err := h.Q.GetRoomType(r.Context(), id)
	if err != nil {
		respondError(w, err)
		return
	}
	writeWithETag(w, r, rt)
}

func (h *Handlers) createRoomType(w http.ResponseWriter, r *http.Request) {
	var p domain.RoomTypePatch
	if !decodeBody(w, r, &p) {
		return
	}
	rt, err := h.C.CreateRoomType(r.Context(), p)
	if err != nil {
		respondError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, rt)
}

func (h *Handlers) updateRoomType(w http.ResponseWriter, r *http.Request) {
	id, ok := urlID(r)
	if !ok {
		writeProblem(w, http.StatusBadRequest, "Invalid ID", "id must be a number")
		return
	}
	var p domain.RoomTypePatch
	if !decodeBody(w, r, &p) {
		return
	}
	rt, err := h.C.UpdateRoomType(r.Context(), id, p, r.Method == http.MethodPut)
	if err != nil {
		respondError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, rt)
}

func (h *Handlers) deleteRoomType(w http.ResponseWriter, r *http.Request) {
	id, ok := urlID(r)
	if !ok {
		writeProblem(w, http.StatusBadRequest, "Invalid ID", "id must be a number")
		return
	}
	if err := h.C.DeleteRoomType(r.Context(), id); err != nil {
		respondError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// roomTypeRooms mirrors hotelRoomTypes: 200 with an error marker on a
// missing parent.
func (h *Handlers) roomTypeRooms(w http.ResponseWriter, r *http.Request) {
	id, ok := urlID(r)
	if !ok {
		writeProblem(w, http.StatusBadRequest, "Invalid ID", "id must be a number")
		return
	}
	rooms, err := h.Q.RoomsForRoomType(r.Context(), id)
	if errors.Is(err, domain.ErrNotFound) {
		writeJSON(w, http.StatusOK, map[string]string{"error": "Room type does not exist."})
		return
	}
	if err != nil {
		respondError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"rooms": rooms})
}
