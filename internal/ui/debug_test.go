package ui

import (
	"strings"
	"testing"
	"time"

	"github.com/abelbrown/realtube/internal/otel"
)

func TestDebugOverlayNilRing(t *testing.T) {
	result := debugOverlay(nil, 80, 24)
	if result != "" {
		t.Errorf("debugOverlay(nil) should return empty string, got %q", result)
	}
}

func TestDebugOverlayRendersStats(t *testing.T) {
	ring := otel.NewRingBuffer(64)
	ring.Push(otel.Event{Kind: otel.KindAdvance, Time: time.Now()})
	ring.Push(otel.Event{Kind: otel.KindAdvance, Time: time.Now()})
	ring.Push(otel.Event{Kind: otel.KindBoundary, Time: time.Now()})
	ring.Push(otel.Event{Kind: otel.KindSubscribe, Time: time.Now()})
	ring.Push(otel.Event{Kind: otel.KindCorrupt, Time: time.Now()})

	result := debugOverlay(ring, 80, 40)

	if !strings.Contains(result, "Session") {
		t.Error("overlay should contain 'Session' header")
	}
	if !strings.Contains(result, "2 advance, 0 retreat, 1 at boundary") {
		t.Errorf("overlay should show navigation stats, got:\n%s", result)
	}
	if !strings.Contains(result, "1 subscribe, 0 unsubscribe, 1 errors") {
		t.Errorf("overlay should show channel stats, got:\n%s", result)
	}
	if !strings.Contains(result, "5 / 64 events") {
		t.Errorf("overlay should show buffer stats, got:\n%s", result)
	}
}

func TestDebugOverlayRecentEvents(t *testing.T) {
	ring := otel.NewRingBuffer(64)
	ring.Push(otel.Event{Kind: otel.KindBind, Time: time.Now(), Item: "s3", Msg: "hello world"})
	ring.Push(otel.Event{Kind: otel.KindStoreError, Time: time.Now(), Err: "disk full"})
	ring.Push(otel.Event{Kind: otel.KindAdvance, Time: time.Now(), Item: "s4"}.At(0))

	result := debugOverlay(ring, 100, 40)

	if !strings.Contains(result, "Recent Events") {
		t.Error("overlay should contain 'Recent Events' header")
	}
	for _, want := range []string{"hello world", "ERR:disk full", "s3", "@0"} {
		if !strings.Contains(result, want) {
			t.Errorf("overlay should contain %q, got:\n%s", want, result)
		}
	}
}

func TestDebugOverlayTruncation(t *testing.T) {
	ring := otel.NewRingBuffer(64)
	for i := 0; i < 30; i++ {
		ring.Push(otel.Event{Kind: otel.KindToggle, Time: time.Now()})
	}

	result := debugOverlay(ring, 80, 10)
	if result == "" {
		t.Error("overlay should still render with small height")
	}

	lines := strings.Count(result, "\n")
	if lines > 20 {
		t.Errorf("overlay should be truncated, got %d lines", lines)
	}
}

func TestFormatAge(t *testing.T) {
	tests := []struct {
		d    time.Duration
		want string
	}{
		{-time.Second, "0ms"},
		{250 * time.Millisecond, "250ms"},
		{1500 * time.Millisecond, "1.5s"},
		{3 * time.Minute, "3m"},
	}
	for _, tt := range tests {
		if got := formatAge(tt.d); got != tt.want {
			t.Errorf("formatAge(%v) = %q, want %q", tt.d, got, tt.want)
		}
	}
}
