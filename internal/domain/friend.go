package domain

// DefaultFriendName replaces a blank name when a friend is added through the registry.
const DefaultFriendName = "Friend"

// A named free-text address entered by a user.
// Identity is positional: an entry is addressed by its index in the Registry.
type FriendEntry struct {
	Name    string
	Address string
}

// A FriendEntry whose address resolved to coordinates during the current refresh.
// Index is the entry's position in the registry at the time of the refresh.
type GeocodedEntry struct {
	FriendEntry
	Index  int
	Coords Coordinates
}
