package dto

import "barycentre-service/internal/domain"

type FriendRequest struct {
	Name    string `json:"name"`
	Address string `json:"address"`
}

type FriendResponse struct {
	Name    string `json:"name"`
	Address string `json:"address"`
}

// StateResponse is the registry after a mutation. Share is the query string to
// put in the page URL; empty means the friends parameter should be removed.
type StateResponse struct {
	Friends []FriendResponse `json:"friends"`
	Token   string           `json:"token"`
	Share   string           `json:"share"`
}

func NewFriendsResponse(entries []domain.FriendEntry) []FriendResponse {
	out := make([]FriendResponse, 0, len(entries))
	for _, e := range entries {
		out = append(out, FriendResponse{Name: e.Name, Address: e.Address})
	}
	return out
}
