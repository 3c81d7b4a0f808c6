// Package otel provides structured observability for realtube.
//
// Events are typed structs serialized as JSONL lines. The Logger writes
// events asynchronously via a buffered channel and background drain goroutine.
// An optional RingBuffer keeps recent events for the debug overlay.
package otel

import (
	"encoding/json"
	"time"
)

// Level defines event severity for filtering.
type Level string

const (
	LevelDebug Level = "debug"
	LevelInfo  Level = "info"
	LevelWarn  Level = "warn"
	LevelError Level = "error"
)

// EventKind identifies the category of an observability event.
// Dot-delimited: "<subsystem>.<action>".
type EventKind string

const (
	// Feed navigation
	KindAdvance  EventKind = "nav.advance"
	KindRetreat  EventKind = "nav.retreat"
	KindBoundary EventKind = "nav.boundary"

	// Playback
	KindBind   EventKind = "play.bind"
	KindToggle EventKind = "play.toggle"
	KindMute   EventKind = "play.mute"
	KindVolume EventKind = "play.volume"

	// Subscriptions
	KindSubscribe   EventKind = "subs.subscribe"
	KindUnsubscribe EventKind = "subs.unsubscribe"
	KindCorrupt     EventKind = "subs.corrupt"

	// Store events
	KindStoreError EventKind = "store.error"

	// UI events
	KindPulse    EventKind = "pulse.trigger"
	KindKeyPress EventKind = "ui.key"

	// System events
	KindStartup  EventKind = "sys.startup"
	KindShutdown EventKind = "sys.shutdown"
	KindError    EventKind = "sys.error"
)

// Event is the universal observability record. Every field except Kind and
// Time is optional. Serialized as a single JSONL line.
type Event struct {
	Time      time.Time      `json:"t"`
	Level     Level          `json:"level,omitempty"`
	Kind      EventKind      `json:"kind"`
	Comp      string         `json:"comp,omitempty"`       // component: "feed", "play", "subs", "ui", "main"
	SessionID string         `json:"session_id,omitempty"` // same for entire app run
	Dur       time.Duration  `json:"-"`                    // not serialized directly
	DurMs     float64        `json:"dur_ms,omitempty"`     // computed from Dur at marshal time
	Item      string         `json:"item,omitempty"`       // video ID
	Channel   string         `json:"channel,omitempty"`    // channel ID
	Pos       *int           `json:"pos,omitempty"`        // feed position, pointer so 0 survives omitempty
	Err       string         `json:"err,omitempty"`
	Msg       string         `json:"msg,omitempty"`
	Extra     map[string]any `json:"extra,omitempty"`
}

// At returns a copy of e with Pos set.
func (e Event) At(pos int) Event {
	e.Pos = &pos
	return e
}

// MarshalJSON implements json.Marshaler, converting Dur to DurMs.
func (e Event) MarshalJSON() ([]byte, error) {
	type Alias Event
	a := struct {
		Alias
	}{Alias: Alias(e)}
	if e.Dur > 0 {
		a.DurMs = float64(e.Dur) / float64(time.Millisecond)
	}
	return json.Marshal(a)
}
