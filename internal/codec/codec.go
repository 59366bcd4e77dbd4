// Package codec serializes the friend registry to and from the compact token
// carried in the shareable "friends" URL query parameter.
//
// A token is a JSON array of {"name","address"} objects. Encoding preserves order and
// exact string values (non-ASCII included). Decoding is defensive and element-wise:
// a partially corrupt token yields its valid subset rather than an error.
package codec

import (
	"barycentre-service/internal/domain"
	"bytes"
	"encoding/json"
	"net/url"
	"strings"
)

// Param is the URL query parameter that carries the state token.
const Param = "friends"

type wireEntry struct {
	Name    string `json:"name"`
	Address string `json:"address"`
}

// Encode returns the state token for entries. An empty registry encodes to "[]".
// Strings must be valid UTF-8 (Registry.Add enforces it); JSON encoding replaces
// invalid bytes with U+FFFD, so such strings would not survive a round trip.
func Encode(entries []domain.FriendEntry) string {
	wire := make([]wireEntry, 0, len(entries))
	for _, e := range entries {
		wire = append(wire, wireEntry{Name: e.Name, Address: e.Address})
	}

	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	// Encoding a slice of string-only structs cannot fail.
	_ = enc.Encode(wire)

	return strings.TrimRight(buf.String(), "\n")
}

// Decode parses a state token. ok is false when the token is empty, is not valid JSON,
// or is not a JSON array. Elements that are not objects or lack a non-empty string
// "address" are dropped; a missing or non-string "name" decodes as "".
//
// A token that is still percent-escaped (e.g. copied from a share link) is unescaped first.
func Decode(token string) (entries []domain.FriendEntry, ok bool) {
	raw, ok := parseList(token)
	if !ok {
		if unescaped, err := url.QueryUnescape(token); err == nil && unescaped != token {
			raw, ok = parseList(unescaped)
		}
	}
	if !ok {
		return nil, false
	}

	entries = make([]domain.FriendEntry, 0, len(raw))
	for _, elem := range raw {
		e, valid := decodeEntry(elem)
		if !valid {
			continue
		}
		entries = append(entries, e)
	}

	return entries, true
}

func parseList(token string) ([]json.RawMessage, bool) {
	b := bytes.TrimSpace([]byte(token))
	if len(b) == 0 || b[0] != '[' {
		return nil, false
	}

	var raw []json.RawMessage
	if err := json.Unmarshal(b, &raw); err != nil {
		return nil, false
	}
	return raw, true
}

func decodeEntry(elem json.RawMessage) (domain.FriendEntry, bool) {
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(elem, &fields); err != nil || fields == nil {
		return domain.FriendEntry{}, false
	}

	var address string
	if err := json.Unmarshal(fields["address"], &address); err != nil || address == "" {
		return domain.FriendEntry{}, false
	}

	var name string
	if rawName, present := fields["name"]; present {
		if err := json.Unmarshal(rawName, &name); err != nil {
			name = ""
		}
	}

	return domain.FriendEntry{Name: name, Address: address}, true
}

// ShareQuery returns "?friends=<escaped token>" for a non-empty registry and "" otherwise.
func ShareQuery(entries []domain.FriendEntry) string {
	q := url.Values{}
	SyncQuery(q, entries)
	if len(q) == 0 {
		return ""
	}
	return "?" + q.Encode()
}

// SyncQuery keeps the friends parameter in q in step with entries: set when the
// registry is non-empty, removed when it is empty. Other parameters are untouched.
func SyncQuery(q url.Values, entries []domain.FriendEntry) {
	if len(entries) == 0 {
		q.Del(Param)
		return
	}
	q.Set(Param, Encode(entries))
}

// FromQuery decodes the friends parameter of q. A missing or undecodable
// parameter yields an empty registry seed.
func FromQuery(q url.Values) []domain.FriendEntry {
	entries, ok := Decode(q.Get(Param))
	if !ok {
		return nil
	}
	return entries
}
