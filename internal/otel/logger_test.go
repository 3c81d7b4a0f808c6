package otel

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
)

func TestEmitWritesValidJSONL(t *testing.T) {
	var buf bytes.Buffer
	l := NewLogger(&buf)

	l.Emit(Event{Kind: KindAdvance, Level: LevelInfo, Comp: "feed", Item: "s2"}.At(1))
	l.Close()

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 1 {
		t.Fatalf("expected 1 line, got %d", len(lines))
	}

	var decoded map[string]any
	if err := json.Unmarshal([]byte(lines[0]), &decoded); err != nil {
		t.Fatalf("invalid JSON: %v", err)
	}
	if decoded["kind"] != "nav.advance" {
		t.Errorf("expected kind=nav.advance, got %v", decoded["kind"])
	}
	if decoded["comp"] != "feed" {
		t.Errorf("expected comp=feed, got %v", decoded["comp"])
	}
	if decoded["pos"] != float64(1) {
		t.Errorf("expected pos=1, got %v", decoded["pos"])
	}
}

func TestPositionZeroIsSerialized(t *testing.T) {
	var buf bytes.Buffer
	l := NewLogger(&buf)
	l.Emit(Event{Kind: KindBoundary}.At(0))
	l.Close()

	if !strings.Contains(buf.String(), `"pos":0`) {
		t.Errorf("pos 0 should not be omitted: %s", buf.String())
	}
}

func TestEmitSetsTimeAndSessionID(t *testing.T) {
	var buf bytes.Buffer
	l := NewLogger(&buf)

	before := time.Now()
	l.Emit(Event{Kind: KindStartup})
	l.Close()
	after := time.Now()

	var ev Event
	if err := json.Unmarshal(bytes.TrimSpace(buf.Bytes()), &ev); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}

	if ev.Time.Before(before) || ev.Time.After(after) {
		t.Errorf("time %v not in [%v, %v]", ev.Time, before, after)
	}
	if _, err := uuid.Parse(ev.SessionID); err != nil {
		t.Errorf("session_id should be a UUID, got %q", ev.SessionID)
	}
	if ev.SessionID != l.SessionID() {
		t.Errorf("session_id %q != logger session %q", ev.SessionID, l.SessionID())
	}
}

func TestDurToMs(t *testing.T) {
	var buf bytes.Buffer
	l := NewLogger(&buf)

	l.Emit(Event{Kind: KindBind, Dur: 1500 * time.Millisecond})
	l.Close()

	var decoded map[string]any
	if err := json.Unmarshal(bytes.TrimSpace(buf.Bytes()), &decoded); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if decoded["dur_ms"] != float64(1500) {
		t.Errorf("expected dur_ms=1500, got %v", decoded["dur_ms"])
	}
}

func TestOmitempty(t *testing.T) {
	var buf bytes.Buffer
	l := NewLogger(&buf)

	l.Emit(Event{Kind: KindStartup})
	l.Close()

	line := strings.TrimSpace(buf.String())
	for _, field := range []string{"dur_ms", "item", "channel", "pos", "err", "msg", "extra"} {
		if strings.Contains(line, `"`+field+`"`) {
			t.Errorf("expected field %q to be omitted, but found in: %s", field, line)
		}
	}
}

func TestConcurrentEmit(t *testing.T) {
	var buf bytes.Buffer
	l := NewLogger(&buf)

	var wg sync.WaitGroup
	for i := 0; i < 100; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			l.Emit(Event{Kind: KindKeyPress, Comp: "test"})
		}()
	}
	wg.Wait()
	l.Close()

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 100 {
		t.Errorf("expected 100 lines, got %d", len(lines))
	}
}

func TestCloseIsIdempotentAndDropsLateEvents(t *testing.T) {
	var buf bytes.Buffer
	l := NewLogger(&buf)

	l.Emit(Event{Kind: KindStartup, Msg: "start"})
	l.Close()
	l.Close()

	l.Emit(Event{Kind: KindShutdown})
	if l.Dropped() != 1 {
		t.Errorf("expected 1 dropped event after close, got %d", l.Dropped())
	}
}

func TestNilLoggerIsSafe(t *testing.T) {
	var l *Logger
	l.Info(KindStartup, "main", "noop")
	l.Close()
}

func TestConvenienceHelpers(t *testing.T) {
	var buf bytes.Buffer
	l := NewLogger(&buf)

	l.Info(KindStartup, "main", "starting")
	l.Warn(KindCorrupt, "subs", "bad json")
	l.Error(KindStoreError, "subs", errForTest("disk full"))
	l.Close()

	events, err := ReadEvents(&buf)
	if err != nil {
		t.Fatalf("ReadEvents: %v", err)
	}
	if len(events) != 3 {
		t.Fatalf("expected 3 events, got %d", len(events))
	}

	tests := []struct {
		level Level
		kind  EventKind
		comp  string
	}{
		{LevelInfo, KindStartup, "main"},
		{LevelWarn, KindCorrupt, "subs"},
		{LevelError, KindStoreError, "subs"},
	}
	for i, tt := range tests {
		if events[i].Level != tt.level || events[i].Kind != tt.kind || events[i].Comp != tt.comp {
			t.Errorf("event %d = %+v, want %+v", i, events[i], tt)
		}
	}
	if events[2].Err != "disk full" {
		t.Errorf("err = %q, want disk full", events[2].Err)
	}
}

type errForTest string

func (e errForTest) Error() string { return string(e) }

func TestReadEventsSkipsGarbage(t *testing.T) {
	in := strings.NewReader("{\"kind\":\"nav.advance\"}\nnot json\n{\"kind\":\"nav.retreat\"}\n")
	events, err := ReadEvents(in)
	if err != nil {
		t.Fatalf("ReadEvents: %v", err)
	}
	if len(events) != 2 || events[1].Kind != KindRetreat {
		t.Errorf("unexpected events %+v", events)
	}
}

func TestOpenFileAppends(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "events.jsonl")
	for i := 0; i < 2; i++ {
		l, err := OpenFile(path)
		if err != nil {
			t.Fatalf("OpenFile: %v", err)
		}
		l.Info(KindStartup, "main", "run")
		l.Close()
	}

	f, err := os.Open(path)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	events, err := ReadEvents(f)
	if err != nil {
		t.Fatal(err)
	}
	if len(events) != 2 {
		t.Errorf("expected 2 events across runs, got %d", len(events))
	}
	if events[0].SessionID == events[1].SessionID {
		t.Error("separate runs should carry separate session IDs")
	}
}

func TestRingBufferWithLogger(t *testing.T) {
	rb := NewRingBuffer(4)
	l := NewNullLogger()
	l.SetRingBuffer(rb)

	for i := 0; i < 6; i++ {
		l.Emit(Event{Kind: KindAdvance}.At(i))
	}
	l.Emit(Event{Kind: KindBoundary})
	l.Close()

	if rb.Len() != 4 || rb.Cap() != 4 {
		t.Fatalf("Len/Cap = %d/%d, want 4/4", rb.Len(), rb.Cap())
	}
	last := rb.Last(10)
	if len(last) != 4 {
		t.Fatalf("Last(10) returned %d events", len(last))
	}
	if *last[0].Pos != 3 || last[3].Kind != KindBoundary {
		t.Errorf("unexpected order: first pos %d, last kind %s", *last[0].Pos, last[3].Kind)
	}
	stats := rb.Stats()
	if stats[KindAdvance] != 3 || stats[KindBoundary] != 1 {
		t.Errorf("stats = %v", stats)
	}
	if rb.Last(0) != nil || rb.Last(-1) != nil {
		t.Error("non-positive Last should return nil")
	}
}

func TestRingBufferCopiesExtra(t *testing.T) {
	rb := NewRingBuffer(0)
	if rb.Cap() != DefaultRingSize {
		t.Errorf("Cap = %d, want %d", rb.Cap(), DefaultRingSize)
	}
	extra := map[string]any{"volume": 50}
	rb.Push(Event{Kind: KindVolume, Extra: extra})
	extra["volume"] = 0

	if got := rb.Last(1)[0].Extra["volume"]; got != 50 {
		t.Errorf("ring copy aliased caller map: %v", got)
	}
}
