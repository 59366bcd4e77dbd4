package codec

import (
	"barycentre-service/internal/domain"
	"net/url"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
)

func TestRoundTrip(t *testing.T) {
	tests := []struct {
		name    string
		entries []domain.FriendEntry
	}{
		{"empty", []domain.FriendEntry{}},
		{"single", []domain.FriendEntry{{Name: "Alice", Address: "Paris"}}},
		{"order and blanks", []domain.FriendEntry{
			{Name: "Bob", Address: "Lyon"},
			{Name: "", Address: "Marseille"},
			{Name: "Alice", Address: "Paris"},
		}},
		{"non-ascii and symbols", []domain.FriendEntry{
			{Name: "Zoë", Address: "12 Rue de l'Église, Besançon"},
			{Name: "李雷", Address: "北京市 & <Haidian>"},
			{Name: "\"quoted\"", Address: "a+b=c?d#e%20"},
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			token := Encode(tt.entries)

			got, ok := Decode(token)
			if !ok {
				t.Fatalf("Decode(%q) reported failure", token)
			}
			if diff := cmp.Diff(tt.entries, got, cmpopts.EquateEmpty()); diff != "" {
				t.Fatalf("round trip mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestRoundTripThroughShareQuery(t *testing.T) {
	entries := []domain.FriendEntry{
		{Name: "Zoë", Address: "Place de la Bastille, Paris"},
		{Name: "Friend", Address: "Gare Part-Dieu, Lyon"},
	}

	share := ShareQuery(entries)
	if !strings.HasPrefix(share, "?friends=") {
		t.Fatalf("share query = %q", share)
	}
	for _, r := range share {
		if r > 127 || r == ' ' {
			t.Fatalf("share query is not URL safe: %q", share)
		}
	}

	q, err := url.ParseQuery(strings.TrimPrefix(share, "?"))
	if err != nil {
		t.Fatalf("parse query: %v", err)
	}
	if diff := cmp.Diff(entries, FromQuery(q)); diff != "" {
		t.Fatalf("share round trip mismatch (-want +got):\n%s", diff)
	}
}

func TestDecodeDropsInvalidElements(t *testing.T) {
	got, ok := Decode(`[{"name":"A","address":"X"},{"name":"B"}]`)
	if !ok {
		t.Fatalf("expected ok")
	}

	want := []domain.FriendEntry{{Name: "A", Address: "X"}}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("mismatch (-want +got):\n%s", diff)
	}
}

func TestDecodeElementPolicy(t *testing.T) {
	token := `[
		{"address":"no name"},
		{"name":null,"address":"null name"},
		{"name":42,"address":"numeric name"},
		{"name":"empty address","address":""},
		{"name":"null address","address":null},
		{"name":"numeric address","address":7},
		"just a string",
		null,
		[1,2],
		{"name":"kept","address":"  spaced  ","extra":true}
	]`

	got, ok := Decode(token)
	if !ok {
		t.Fatalf("expected ok")
	}

	want := []domain.FriendEntry{
		{Name: "", Address: "no name"},
		{Name: "", Address: "null name"},
		{Name: "", Address: "numeric name"},
		{Name: "kept", Address: "  spaced  "},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("mismatch (-want +got):\n%s", diff)
	}
}

func TestDecodeAbsent(t *testing.T) {
	for _, token := range []string{"", "   ", "not json", `{"name":"A","address":"X"}`, "null", `"[]"`, `[{"address":"X"}`} {
		if got, ok := Decode(token); ok {
			t.Errorf("Decode(%q) = %v, want absent", token, got)
		}
	}
}

func TestDecodeAcceptsEscapedToken(t *testing.T) {
	escaped := url.QueryEscape(`[{"name":"A","address":"Rue du Faubourg, Paris"}]`)

	got, ok := Decode(escaped)
	if !ok {
		t.Fatalf("expected escaped token to decode")
	}
	want := []domain.FriendEntry{{Name: "A", Address: "Rue du Faubourg, Paris"}}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("mismatch (-want +got):\n%s", diff)
	}
}

func TestDecodeAcceptsASCIIEscapedJSON(t *testing.T) {
	// Tokens produced with \u escapes for non-ASCII characters.
	got, ok := Decode(`[{"name": "Zo\u00eb", "address": "Besan\u00e7on"}]`)
	if !ok || len(got) != 1 || got[0].Name != "Zoë" || got[0].Address != "Besançon" {
		t.Fatalf("unexpected decode: %v %v", got, ok)
	}
}

func TestSyncQuery(t *testing.T) {
	q := url.Values{"lang": {"fr"}}

	SyncQuery(q, []domain.FriendEntry{{Name: "A", Address: "X"}})
	if q.Get(Param) != `[{"name":"A","address":"X"}]` {
		t.Fatalf("friends param = %q", q.Get(Param))
	}

	SyncQuery(q, nil)
	if _, present := q[Param]; present {
		t.Fatalf("expected friends param to be removed")
	}
	if q.Get("lang") != "fr" {
		t.Fatalf("unrelated parameter was modified")
	}
}

func TestShareQueryFollowsSyncQuery(t *testing.T) {
	entries := []domain.FriendEntry{{Name: "Alice", Address: "Paris"}}

	want := url.Values{}
	SyncQuery(want, entries)

	got, err := url.ParseQuery(strings.TrimPrefix(ShareQuery(entries), "?"))
	if err != nil {
		t.Fatalf("share query does not parse: %v", err)
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("share query mismatch (-want +got):\n%s", diff)
	}
}

func TestShareQueryEmpty(t *testing.T) {
	if got := ShareQuery(nil); got != "" {
		t.Fatalf("ShareQuery(nil) = %q, want empty", got)
	}
	if got := FromQuery(url.Values{}); len(got) != 0 {
		t.Fatalf("FromQuery(empty) = %v", got)
	}
}
