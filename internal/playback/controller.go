// Package playback holds per-item transport state (play/pause, mute, volume)
// and drives a media Resource.
package playback

import (
	"github.com/abelbrown/realtube/internal/otel"
)

// DefaultFallbackURL is bound when an item carries no media reference and
// Options.FallbackURL is empty.
const DefaultFallbackURL = "https://commondatastorage.googleapis.com/gtv-videos-bucket/sample/BigBuckBunny.mp4"

// MaxVolume is the top of the volume scale.
const MaxVolume = 100

// State is the transport state.
type State int

const (
	Paused State = iota
	Playing
)

func (s State) String() string {
	if s == Playing {
		return "playing"
	}
	return "paused"
}

// Resource is the media sink a controller drives.
type Resource interface {
	Load(url string)
	Play()
	Pause()
	SetMuted(muted bool)
	SetVolume(level int)
}

// Options configures one call site. The compact feed autoplays, the
// long-form page starts paused; each passes its own flag.
type Options struct {
	Autoplay       bool
	VolumeControls bool
	FallbackURL    string
	Events         *otel.Logger
	Comp           string
}

// Controller is the play/pause state machine bound to one media item at a time.
type Controller struct {
	res   Resource
	opts  Options
	state State
	url   string
	item  string

	muted  bool
	volume int
}

// New creates a controller driving res. Nothing is bound until Bind.
func New(res Resource, opts Options) *Controller {
	if opts.FallbackURL == "" {
		opts.FallbackURL = DefaultFallbackURL
	}
	if opts.Comp == "" {
		opts.Comp = "play"
	}
	return &Controller{
		res:    res,
		opts:   opts,
		state:  initial(opts),
		volume: MaxVolume,
	}
}

func initial(opts Options) State {
	if opts.Autoplay {
		return Playing
	}
	return Paused
}

// Bind switches to a new item. The resource is loaded with mediaURL (or the
// fallback when empty) and the transport resets to the initial state,
// whatever it was before. Mute and volume carry over.
func (c *Controller) Bind(itemID, mediaURL string) {
	url := mediaURL
	if url == "" {
		url = c.opts.FallbackURL
	}
	c.item = itemID
	c.url = url
	c.state = initial(c.opts)

	c.res.Load(url)
	c.res.SetMuted(c.muted)
	if c.opts.VolumeControls {
		c.res.SetVolume(c.volume)
	}
	if c.state == Playing {
		c.res.Play()
	} else {
		c.res.Pause()
	}

	c.emit(otel.KindBind, map[string]any{"url": url, "fallback": mediaURL == "", "state": c.state.String()})
}

// TogglePlay flips between Playing and Paused and drives the resource.
func (c *Controller) TogglePlay() State {
	if c.state == Playing {
		c.state = Paused
		c.res.Pause()
	} else {
		c.state = Playing
		c.res.Play()
	}
	c.emit(otel.KindToggle, map[string]any{"state": c.state.String()})
	return c.state
}

// ToggleMute flips the mute flag. Volume is untouched, so unmuting after
// the slider reached zero leaves the volume at zero.
func (c *Controller) ToggleMute() bool {
	c.SetMuted(!c.muted)
	return c.muted
}

// SetMuted sets the mute flag.
func (c *Controller) SetMuted(muted bool) {
	c.muted = muted
	c.res.SetMuted(muted)
	c.emit(otel.KindMute, map[string]any{"muted": muted})
}

// SetVolume sets the level, clamped to [0, MaxVolume]. Zero forces muted and
// any positive level clears it. No-op when the call site has no volume control.
func (c *Controller) SetVolume(level int) {
	if !c.opts.VolumeControls {
		return
	}
	level = max(0, min(level, MaxVolume))
	c.volume = level
	c.res.SetVolume(level)
	c.muted = level == 0
	c.res.SetMuted(c.muted)
	c.emit(otel.KindVolume, map[string]any{"volume": level, "muted": c.muted})
}

// AdjustVolume moves the level by delta.
func (c *Controller) AdjustVolume(delta int) {
	c.SetVolume(c.volume + delta)
}

// State returns the transport state.
func (c *Controller) State() State { return c.state }

// Playing reports whether the transport is playing.
func (c *Controller) Playing() bool { return c.state == Playing }

// Muted reports the mute flag.
func (c *Controller) Muted() bool { return c.muted }

// Volume returns the last level set.
func (c *Controller) Volume() int { return c.volume }

// Silent reports whether nothing is audible: muted or at zero volume.
func (c *Controller) Silent() bool { return c.muted || c.volume == 0 }

// URL returns the media reference currently bound.
func (c *Controller) URL() string { return c.url }

// ItemID returns the bound item.
func (c *Controller) ItemID() string { return c.item }

func (c *Controller) emit(kind otel.EventKind, extra map[string]any) {
	c.opts.Events.Emit(otel.Event{Level: otel.LevelDebug, Kind: kind, Comp: c.opts.Comp, Item: c.item, Extra: extra})
}
