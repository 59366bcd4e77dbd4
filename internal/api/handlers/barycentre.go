package handlers

import (
	"barycentre-service/internal/api/dto"
	"barycentre-service/internal/codec"
	"barycentre-service/internal/domain"
	"context"
	"net/http"
)

// Refresher runs one recomputation pass over a friend list.
type Refresher interface {
	Refresh(ctx context.Context, entries []domain.FriendEntry) domain.Refresh
}

type BarycentreHandler struct {
	Refresher Refresher
	Map       dto.MapDefaults
}

// Barycentre seeds a registry from the friends token, geocodes every entry, and
// returns the meeting point with per-friend route metrics. A malformed token
// behaves like an empty list.
func (h *BarycentreHandler) Barycentre(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		w.Header().Set("Allow", http.MethodGet)
		writeError(w, r, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	entries := domain.NewRegistry(codec.FromQuery(r.URL.Query())).All()
	result := h.Refresher.Refresh(r.Context(), entries)

	res := dto.NewRefreshResponse(entries, result, h.Map)
	res.Token = codec.Encode(entries)
	res.Share = codec.ShareQuery(entries)

	writeJSON(w, r, http.StatusOK, res)
}
