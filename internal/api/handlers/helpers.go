package handlers

import (
	"barycentre-service/internal/api/dto"
	"barycentre-service/internal/codec"
	"barycentre-service/internal/domain"
	"barycentre-service/internal/platform/obs"
	"encoding/json"
	"log/slog"
	"net/http"
)

func writeJSON(w http.ResponseWriter, r *http.Request, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.ErrorContext(r.Context(), "encode failed",
			"req_id", obs.RequestID(r.Context()), "method", r.Method, "path", r.URL.Path, "err", err)
	}
}

func writeError(w http.ResponseWriter, r *http.Request, status int, msg string) {
	writeJSON(w, r, status, map[string]string{"error": msg})
}

func stateResponse(entries []domain.FriendEntry) dto.StateResponse {
	return dto.StateResponse{
		Friends: dto.NewFriendsResponse(entries),
		Token:   codec.Encode(entries),
		Share:   codec.ShareQuery(entries),
	}
}
