package main

import (
	"barycentre-service/internal/api/dto"
	"barycentre-service/internal/codec"
	"barycentre-service/internal/domain"
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()

	var out bytes.Buffer
	cmd := newRootCmd("test")
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)

	err := cmd.Execute()
	return strings.TrimSpace(out.String()), err
}

func TestAddCommand(t *testing.T) {
	out, err := run(t, "add", "--address", "Paris", "--name", "Alice")
	if err != nil {
		t.Fatalf("add: %v", err)
	}
	if out != `[{"name":"Alice","address":"Paris"}]` {
		t.Fatalf("token = %s", out)
	}

	out, err = run(t, "add", "--friends", out, "--address", "Lyon")
	if err != nil {
		t.Fatalf("add: %v", err)
	}

	got, ok := codec.Decode(out)
	if !ok {
		t.Fatalf("undecodable token %s", out)
	}
	want := []domain.FriendEntry{
		{Name: "Alice", Address: "Paris"},
		{Name: "Friend", Address: "Lyon"},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("entries mismatch (-want +got):\n%s", diff)
	}
}

func TestAddCommandRequiresAddress(t *testing.T) {
	if _, err := run(t, "add", "--name", "Alice"); err == nil {
		t.Fatalf("expected error without --address")
	}
	if _, err := run(t, "add", "--address", "Caf\xe9"); err == nil {
		t.Fatalf("expected error for an address that is not valid UTF-8")
	}
}

func TestRemoveCommand(t *testing.T) {
	token := codec.Encode([]domain.FriendEntry{
		{Name: "Alice", Address: "Paris"},
		{Name: "Bob", Address: "Lyon"},
	})

	out, err := run(t, "remove", "--friends", token, "--index", "0")
	if err != nil {
		t.Fatalf("remove: %v", err)
	}
	if out != `[{"name":"Bob","address":"Lyon"}]` {
		t.Fatalf("token = %s", out)
	}

	out, err = run(t, "remove", "--friends", token, "--index", "5")
	if err != nil {
		t.Fatalf("remove: %v", err)
	}
	if out != token {
		t.Fatalf("out-of-range remove changed the list: %s", out)
	}

	out, err = run(t, "remove", "--friends", token, "--all")
	if err != nil || out != "[]" {
		t.Fatalf("remove --all = %q, %v", out, err)
	}

	if _, err := run(t, "remove", "--friends", token); err == nil {
		t.Fatalf("expected error without --index or --all")
	}
}

func TestShareCommand(t *testing.T) {
	token := codec.Encode([]domain.FriendEntry{{Name: "Alice", Address: "Paris"}})

	out, err := run(t, "share", "--friends", token, "--base-url", "https://meet.example")
	if err != nil {
		t.Fatalf("share: %v", err)
	}
	if !strings.HasPrefix(out, "https://meet.example?friends=") {
		t.Fatalf("share = %s", out)
	}

	out, err = run(t, "share", "--friends", "not-a-token")
	if err != nil || out != "" {
		t.Fatalf("share of empty list = %q, %v", out, err)
	}
}

func TestRefreshCommand(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch {
		case r.URL.Path == "/search" && r.URL.Query().Get("q") == "Paris":
			_, _ = w.Write([]byte(`[{"lat":"48.0","lon":"2.0"}]`))
		case r.URL.Path == "/search" && r.URL.Query().Get("q") == "Reims":
			_, _ = w.Write([]byte(`[{"lat":"49.0","lon":"3.0"}]`))
		case r.URL.Path == "/search":
			_, _ = w.Write([]byte(`[]`))
		case r.URL.Path == "/reverse":
			_, _ = w.Write([]byte(`{"display_name":"Somewhere, France"}`))
		default:
			_, _ = w.Write([]byte(`{"code":"Ok","routes":[{"distance":5000,"duration":600}]}`))
		}
	}))
	defer srv.Close()

	testChdir(t, t.TempDir())
	t.Setenv("BARYCENTRE_GEOCODER_BASE_URL", srv.URL)
	t.Setenv("BARYCENTRE_ROUTING_BASE_URL", srv.URL)

	token := codec.Encode([]domain.FriendEntry{
		{Name: "Alice", Address: "Paris"},
		{Name: "Bob", Address: "Reims"},
		{Name: "Carol", Address: "Nowhere"},
	})

	out, err := run(t, "refresh", "--friends", token)
	if err != nil {
		t.Fatalf("refresh: %v", err)
	}

	var res dto.RefreshResponse
	if err := json.Unmarshal([]byte(out), &res); err != nil {
		t.Fatalf("output is not JSON: %v\n%s", err, out)
	}
	if res.Barycentre == nil || res.Barycentre.Lat != 48.5 || res.Barycentre.Lon != 2.5 {
		t.Fatalf("barycentre = %+v", res.Barycentre)
	}
	if len(res.Failed) != 1 || res.Failed[0].Name != "Carol" {
		t.Fatalf("failed = %+v", res.Failed)
	}
	if len(res.Metrics) != 2 || res.Metrics[0].DurationMin == nil || *res.Metrics[0].DurationMin != 10 {
		t.Fatalf("metrics = %+v", res.Metrics)
	}
}
