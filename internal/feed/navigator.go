// Package feed implements sequential navigation through an ordered list of
// short videos.
package feed

import (
	"errors"
	"fmt"

	"github.com/abelbrown/realtube/internal/catalog"
)

var (
	// ErrEmptyFeed is returned when a navigator is built without items.
	ErrEmptyFeed = errors.New("feed: at least one item is required")

	// ErrPosition is returned when the initial index is outside the feed.
	ErrPosition = errors.New("feed: initial position out of range")
)

// Navigator holds a fixed, non-empty sequence of items and the current
// position. The position always satisfies 0 <= pos < Len().
type Navigator struct {
	items []catalog.VideoItem
	pos   int
}

// New builds a navigator positioned at initial. The items are copied so the
// caller may not mutate the feed afterwards.
func New(items []catalog.VideoItem, initial int) (*Navigator, error) {
	if len(items) == 0 {
		return nil, ErrEmptyFeed
	}
	if initial < 0 || initial >= len(items) {
		return nil, fmt.Errorf("%w: %d not in [0, %d)", ErrPosition, initial, len(items))
	}
	cp := make([]catalog.VideoItem, len(items))
	copy(cp, items)
	return &Navigator{items: cp, pos: initial}, nil
}

// Advance moves to the next item. At the last item it does nothing and
// returns the current item with moved == false.
func (n *Navigator) Advance() (item catalog.VideoItem, moved bool) {
	if n.pos < len(n.items)-1 {
		n.pos++
		return n.items[n.pos], true
	}
	return n.items[n.pos], false
}

// Retreat moves to the previous item. At the first item it does nothing and
// returns the current item with moved == false.
func (n *Navigator) Retreat() (item catalog.VideoItem, moved bool) {
	if n.pos > 0 {
		n.pos--
		return n.items[n.pos], true
	}
	return n.items[n.pos], false
}

// Step applies a quantized gesture: positive advances, negative retreats,
// zero does nothing.
func (n *Navigator) Step(dir Direction) (catalog.VideoItem, bool) {
	switch {
	case dir > 0:
		return n.Advance()
	case dir < 0:
		return n.Retreat()
	}
	return n.items[n.pos], false
}

// Current returns the item at the current position.
func (n *Navigator) Current() catalog.VideoItem {
	return n.items[n.pos]
}

// Position returns the current index.
func (n *Navigator) Position() int { return n.pos }

// Len returns the number of items.
func (n *Navigator) Len() int { return len(n.items) }

// AtStart reports whether Retreat would be a no-op.
func (n *Navigator) AtStart() bool { return n.pos == 0 }

// AtEnd reports whether Advance would be a no-op.
func (n *Navigator) AtEnd() bool { return n.pos == len(n.items)-1 }
