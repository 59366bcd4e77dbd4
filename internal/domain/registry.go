package domain

import (
	"strings"
	"unicode/utf8"
)

// Registry is the ordered collection of friends for a session.
// Insertion order is the iteration order and drives marker colouring and the traveler table.
// It is the only writable state; everything else is derived from it on refresh.
type Registry struct {
	entries []FriendEntry
}

// NewRegistry seeds a registry with entries, typically decoded from a state token.
// Entries are copied as-is: decoded names keep their empty value.
func NewRegistry(entries []FriendEntry) *Registry {
	r := &Registry{}
	if len(entries) > 0 {
		r.entries = append(make([]FriendEntry, 0, len(entries)), entries...)
	}
	return r
}

// Add appends a friend. Both fields are trimmed; an empty address makes Add a no-op and
// a blank name becomes DefaultFriendName. Fields that are not valid UTF-8 are rejected,
// since the state token could not carry them unchanged. Reports whether an entry was appended.
func (r *Registry) Add(name, address string) bool {
	if !utf8.ValidString(name) || !utf8.ValidString(address) {
		return false
	}

	address = strings.TrimSpace(address)
	if address == "" {
		return false
	}

	name = strings.TrimSpace(name)
	if name == "" {
		name = DefaultFriendName
	}

	r.entries = append(r.entries, FriendEntry{Name: name, Address: address})
	return true
}

// RemoveAt deletes the entry at index i. Out-of-range indices are ignored.
// Later entries shift down by one, so callers must not reuse indices across a removal.
func (r *Registry) RemoveAt(i int) bool {
	if i < 0 || i >= len(r.entries) {
		return false
	}

	r.entries = append(r.entries[:i], r.entries[i+1:]...)
	return true
}

// Remove every entry.
func (r *Registry) Clear() {
	r.entries = nil
}

// All returns a copy of the entries in insertion order.
func (r *Registry) All() []FriendEntry {
	out := make([]FriendEntry, len(r.entries))
	copy(out, r.entries)
	return out
}

func (r *Registry) Len() int { return len(r.entries) }
