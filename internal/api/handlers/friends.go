package handlers

import (
	"barycentre-service/internal/api/dto"
	"barycentre-service/internal/codec"
	"barycentre-service/internal/domain"
	"barycentre-service/internal/platform/obs"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"strconv"
	"strings"
)

// FriendsHandler applies registry mutations to the state carried in the friends
// query parameter and returns the new state. Nothing is stored server-side.
type FriendsHandler struct{}

func (h *FriendsHandler) Friends(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodPost:
		h.add(w, r)
	case http.MethodDelete:
		h.remove(w, r)
	default:
		w.Header().Set("Allow", http.MethodPost+", "+http.MethodDelete)
		writeError(w, r, http.StatusMethodNotAllowed, "method not allowed")
	}
}

func (h *FriendsHandler) add(w http.ResponseWriter, r *http.Request) {
	var req dto.FriendRequest

	dec := json.NewDecoder(r.Body)
	defer r.Body.Close()
	dec.DisallowUnknownFields()

	if err := dec.Decode(&req); err != nil {
		writeError(w, r, http.StatusBadRequest, "invalid json body")
		return
	}
	if err := dec.Decode(&struct{}{}); err != io.EOF {
		writeError(w, r, http.StatusBadRequest, "body must contain only one JSON object")
		return
	}

	reg := domain.NewRegistry(codec.FromQuery(r.URL.Query()))
	if !reg.Add(req.Name, req.Address) {
		writeError(w, r, http.StatusBadRequest, "address is required")
		return
	}

	slog.InfoContext(r.Context(), "friend added",
		"req_id", obs.RequestID(r.Context()), "friends", reg.Len())

	writeJSON(w, r, http.StatusOK, stateResponse(reg.All()))
}

// remove deletes the entry at ?index=N, or clears the registry when index is absent.
// An out-of-range index leaves the registry unchanged.
func (h *FriendsHandler) remove(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	reg := domain.NewRegistry(codec.FromQuery(q))

	raw := strings.TrimSpace(q.Get("index"))
	if raw == "" {
		reg.Clear()
		writeJSON(w, r, http.StatusOK, stateResponse(reg.All()))
		return
	}

	idx, err := strconv.Atoi(raw)
	if err != nil {
		writeError(w, r, http.StatusBadRequest, "index must be an integer")
		return
	}

	if !reg.RemoveAt(idx) {
		slog.InfoContext(r.Context(), "remove ignored",
			"req_id", obs.RequestID(r.Context()), "index", idx, "friends", reg.Len())
	}

	writeJSON(w, r, http.StatusOK, stateResponse(reg.All()))
}
