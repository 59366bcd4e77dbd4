package obs

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"strings"
	"testing"
)

func captureLogs(t *testing.T) *bytes.Buffer {
	t.Helper()
	var buf bytes.Buffer
	prev := slog.Default()
	slog.SetDefault(slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug})))
	t.Cleanup(func() { slog.SetDefault(prev) })
	return &buf
}

func TestTimeLogsRequestIDAndError(t *testing.T) {
	buf := captureLogs(t)
	ctx := context.WithValue(context.Background(), RequestIDKey, "abc")

	func() (err error) {
		defer Time(ctx, "geocode.search")(&err)
		return errors.New("boom")
	}()

	out := buf.String()
	for _, want := range []string{"level=WARN", "req_id=abc", "op=geocode.search", "err=boom"} {
		if !strings.Contains(out, want) {
			t.Errorf("log output missing %q: %s", want, out)
		}
	}
}

func TestTimeSuccessIsDebug(t *testing.T) {
	buf := captureLogs(t)

	func() (err error) {
		defer Time(context.Background(), "route.fetch")(&err)
		return nil
	}()

	if !strings.Contains(buf.String(), "level=DEBUG") {
		t.Fatalf("expected debug log, got %s", buf.String())
	}
	if RequestID(context.Background()) != "" {
		t.Fatalf("expected empty request id")
	}
}
