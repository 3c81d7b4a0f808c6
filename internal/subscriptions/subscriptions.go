// Package subscriptions keeps the durable, deduplicated set of channels the
// user follows.
//
// The whole collection lives in one namespaced record as a JSON array and
// is rewritten after every mutation. Writers in separate processes are not
// coordinated: two sessions mutating at once can lose each other's updates.
package subscriptions

import (
	"encoding/json"
	"fmt"
	"slices"

	"github.com/abelbrown/realtube/internal/channel"
	"github.com/abelbrown/realtube/internal/logging"
	"github.com/abelbrown/realtube/internal/otel"
)

// Key is the application-scoped record name holding the collection.
const Key = "realtube_subscriptions"

// Records is the backing medium. *store.Store satisfies it.
type Records interface {
	Get(key string) (string, bool, error)
	Put(key, value string) error
}

// Store is the subscription set. It is not safe for concurrent use; the
// UI drives it from a single event loop.
type Store struct {
	records Records
	events  *otel.Logger
	subs    []channel.Channel
}

// New wraps records. Call Load before use. events may be nil.
func New(records Records, events *otel.Logger) *Store {
	return &Store{records: records, events: events}
}

// Open is New followed by Load.
func Open(records Records, events *otel.Logger) *Store {
	s := New(records, events)
	s.Load()
	return s
}

// Load reads the persisted collection. Missing, unreadable or corrupt data
// yields an empty set; the problem is logged, never returned.
func (s *Store) Load() {
	subs, err := s.read()
	if err != nil {
		logging.Warn("subscriptions: read failed, treating as empty", "err", err)
	}
	s.subs = subs
}

// refresh re-reads the record ahead of a mutation. Unlike Load it fails
// on a read error, so a transient fault never becomes an empty write.
func (s *Store) refresh() error {
	subs, err := s.read()
	if err != nil {
		return err
	}
	s.subs = subs
	return nil
}

// read decodes the record, deduplicating by ID in case the stored array
// was written by something other than this package. Missing or corrupt
// data is an empty set; only a failed Get is an error.
func (s *Store) read() ([]channel.Channel, error) {
	raw, ok, err := s.records.Get(Key)
	if err != nil {
		s.events.Error(otel.KindStoreError, "subs", err)
		return nil, fmt.Errorf("read %s: %w", Key, err)
	}
	if !ok {
		return nil, nil
	}

	var stored []channel.Channel
	if err := json.Unmarshal([]byte(raw), &stored); err != nil {
		logging.Warn("subscriptions: corrupt record, treating as empty", "err", err)
		s.events.Warn(otel.KindCorrupt, "subs", err.Error())
		return nil, nil
	}

	out := stored[:0]
	seen := make(map[string]bool, len(stored))
	for _, c := range stored {
		if c.ID == "" || seen[c.ID] {
			continue
		}
		seen[c.ID] = true
		out = append(out, c)
	}
	return out, nil
}

// GetAll returns a copy of every stored channel. Never nil.
func (s *Store) GetAll() []channel.Channel {
	out := make([]channel.Channel, len(s.subs))
	copy(out, s.subs)
	return out
}

// Len returns the number of subscriptions.
func (s *Store) Len() int {
	return len(s.subs)
}

// IsSubscribed reports whether id is in the set.
func (s *Store) IsSubscribed(id string) bool {
	return s.index(id) >= 0
}

func (s *Store) index(id string) int {
	return slices.IndexFunc(s.subs, func(c channel.Channel) bool { return c.ID == id })
}

// Subscribe adds a snapshot of c. Subscribing an existing ID is a no-op
// and writes nothing. Like every mutation it starts from a fresh read of
// the record; on write failure the set reflects that read. A failed read
// aborts the mutation without writing.
func (s *Store) Subscribe(c channel.Channel) error {
	if c.ID == "" {
		return fmt.Errorf("subscribe: channel %q has no id", c.Name)
	}
	if err := s.refresh(); err != nil {
		return fmt.Errorf("subscribe %s: %w", c.ID, err)
	}
	return s.add(c)
}

func (s *Store) add(c channel.Channel) error {
	if s.IsSubscribed(c.ID) {
		return nil
	}

	next := append(slices.Clip(s.subs), c)
	if err := s.persist(next); err != nil {
		return fmt.Errorf("subscribe %s: %w", c.ID, err)
	}
	s.subs = next
	s.events.Emit(otel.Event{Level: otel.LevelInfo, Kind: otel.KindSubscribe, Comp: "subs", Channel: c.ID})
	return nil
}

// Unsubscribe removes id. The full collection is written even when id was
// absent, so the stored record always matches memory after the call.
func (s *Store) Unsubscribe(id string) error {
	if err := s.refresh(); err != nil {
		return fmt.Errorf("unsubscribe %s: %w", id, err)
	}
	return s.remove(id)
}

func (s *Store) remove(id string) error {
	next := slices.DeleteFunc(slices.Clone(s.subs), func(c channel.Channel) bool { return c.ID == id })
	if err := s.persist(next); err != nil {
		return fmt.Errorf("unsubscribe %s: %w", id, err)
	}
	s.subs = next
	s.events.Emit(otel.Event{Level: otel.LevelInfo, Kind: otel.KindUnsubscribe, Comp: "subs", Channel: id})
	return nil
}

// Toggle subscribes c when absent and unsubscribes it otherwise.
// It returns the membership after the call.
func (s *Store) Toggle(c channel.Channel) (bool, error) {
	if c.ID == "" {
		return false, fmt.Errorf("toggle: channel %q has no id", c.Name)
	}
	if err := s.refresh(); err != nil {
		return s.IsSubscribed(c.ID), fmt.Errorf("toggle %s: %w", c.ID, err)
	}
	if s.IsSubscribed(c.ID) {
		if err := s.remove(c.ID); err != nil {
			return true, err
		}
		return false, nil
	}
	if err := s.add(c); err != nil {
		return false, err
	}
	return true, nil
}

func (s *Store) persist(subs []channel.Channel) error {
	if subs == nil {
		subs = []channel.Channel{}
	}
	data, err := json.Marshal(subs)
	if err != nil {
		return err
	}
	if err := s.records.Put(Key, string(data)); err != nil {
		s.events.Error(otel.KindStoreError, "subs", err)
		return err
	}
	return nil
}
