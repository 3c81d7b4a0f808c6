package ui

import (
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/abelbrown/realtube/internal/catalog"
	"github.com/abelbrown/realtube/internal/channel"
	"github.com/abelbrown/realtube/internal/feed"
	"github.com/abelbrown/realtube/internal/otel"
	"github.com/abelbrown/realtube/internal/playback"
	"github.com/abelbrown/realtube/internal/pulse"
)

// ShortsConfig wires a shorts feed.
type ShortsConfig struct {
	Items    []catalog.VideoItem
	Start    int
	Resource playback.Resource
	Player   playback.Options

	Following Following
	Events    *otel.Logger
	Ring      *otel.RingBuffer

	PulseDuration time.Duration
	GestureQuiet  time.Duration
}

// Shorts is the vertical feed: one item on stage at a time, wheel or keys
// to move, autoplay on every item.
type Shorts struct {
	nav      *feed.Navigator
	player   *playback.Controller
	gestures *feed.Quantizer
	follow   Following
	events   *otel.Logger
	ring     *otel.RingBuffer

	like      pulse.Pulse
	pulseSeq  int
	pulseDur  time.Duration
	keys      shortsKeys
	help      help.Model
	now       func() time.Time
	err       error
	width     int
	height    int
	showDebug bool
	quitting  bool
}

// NewShorts builds the feed and binds the starting item.
func NewShorts(cfg ShortsConfig) (Shorts, error) {
	nav, err := feed.New(cfg.Items, cfg.Start)
	if err != nil {
		return Shorts{}, err
	}
	opts := cfg.Player
	if opts.Events == nil {
		opts.Events = cfg.Events
	}
	if opts.Comp == "" {
		opts.Comp = "shorts"
	}
	s := Shorts{
		nav:      nav,
		player:   playback.New(cfg.Resource, opts),
		gestures: feed.NewQuantizer(cfg.GestureQuiet),
		follow:   cfg.Following,
		events:   cfg.Events,
		ring:     cfg.Ring,
		pulseDur: cfg.PulseDuration,
		keys:     newShortsKeys(),
		help:     help.New(),
		now:      time.Now,
	}
	s.bindCurrent()
	return s, nil
}

// bindCurrent loads the item on stage and gives it a fresh like pulse.
// The previous pulse is stopped so its pending expiry is discarded.
func (s *Shorts) bindCurrent() {
	s.like.Stop()
	s.pulseSeq++
	s.like = pulse.New(s.pulseSeq, s.pulseDur)
	item := s.nav.Current()
	s.player.Bind(item.ID, item.MediaURL)
}

// Init sets the terminal title.
func (s Shorts) Init() tea.Cmd {
	return tea.SetWindowTitle("realtube · shorts")
}

// Update handles messages and returns the updated model and any commands.
func (s Shorts) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return s.handleKeyMsg(msg)

	case tea.MouseMsg:
		return s.handleMouseMsg(msg)

	case tea.WindowSizeMsg:
		s.width = msg.Width
		s.height = msg.Height
		s.help.Width = msg.Width
		return s, nil

	case pulse.ExpiredMsg:
		s.like.Update(msg)
		return s, nil
	}
	return s, nil
}

func (s Shorts) handleKeyMsg(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	s.err = nil
	s.events.Emit(otel.Event{Level: otel.LevelDebug, Kind: otel.KindKeyPress, Comp: "shorts", Item: s.nav.Current().ID, Msg: msg.String()})
	switch {
	case key.Matches(msg, s.keys.Quit):
		s.like.Stop()
		s.quitting = true
		return s, tea.Quit

	case key.Matches(msg, s.keys.Next):
		s.step(feed.Forward)

	case key.Matches(msg, s.keys.Prev):
		s.step(feed.Back)

	case key.Matches(msg, s.keys.Play):
		s.player.TogglePlay()

	case key.Matches(msg, s.keys.Mute):
		s.player.ToggleMute()

	case key.Matches(msg, s.keys.Like):
		return s, s.triggerLike()

	case key.Matches(msg, s.keys.Subscribe):
		s.toggleSubscribe()

	case key.Matches(msg, s.keys.Debug):
		s.showDebug = !s.showDebug

	case key.Matches(msg, s.keys.Help):
		s.help.ShowAll = !s.help.ShowAll
	}
	return s, nil
}

// handleMouseMsg turns wheel bursts into at most one step per gesture.
func (s Shorts) handleMouseMsg(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	if msg.Action != tea.MouseActionPress {
		return s, nil
	}
	var dir feed.Direction
	switch msg.Button {
	case tea.MouseButtonWheelDown:
		dir = feed.Forward
	case tea.MouseButtonWheelUp:
		dir = feed.Back
	default:
		return s, nil
	}
	if d := s.gestures.Observe(dir, s.now()); d != feed.None {
		s.step(d)
	}
	return s, nil
}

// step moves the feed and rebinds playback when the position changed.
// A request past either end is recorded and otherwise ignored.
func (s *Shorts) step(dir feed.Direction) {
	item, moved := s.nav.Step(dir)
	if !moved {
		s.events.Emit(otel.Event{Level: otel.LevelDebug, Kind: otel.KindBoundary, Comp: "feed", Item: item.ID}.At(s.nav.Position()))
		return
	}
	kind := otel.KindAdvance
	if dir == feed.Back {
		kind = otel.KindRetreat
	}
	s.events.Emit(otel.Event{Level: otel.LevelInfo, Kind: kind, Comp: "feed", Item: item.ID}.At(s.nav.Position()))
	s.bindCurrent()
}

func (s *Shorts) triggerLike() tea.Cmd {
	cmd := s.like.Trigger()
	s.events.Emit(otel.Event{Level: otel.LevelDebug, Kind: otel.KindPulse, Comp: "shorts", Item: s.nav.Current().ID})
	return cmd
}

func (s *Shorts) toggleSubscribe() {
	item := s.nav.Current()
	s.err = toggleSubscription(s.follow, channel.FromName(item.Channel, item.Views))
}

// View renders the UI.
func (s Shorts) View() string {
	if s.quitting {
		return ""
	}
	if s.showDebug {
		return debugOverlay(s.ring, s.width, s.height)
	}

	width := s.width
	if width <= 0 {
		width = 60
	}
	inner := max(width-8, 20)
	item := s.nav.Current()
	ch := channel.FromName(item.Channel, item.Views)

	card := lipgloss.JoinVertical(lipgloss.Left,
		renderTransport(s.player),
		"",
		TitleStyle.Render(truncate(item.Title, inner)),
		MetaStyle.Render(item.Views),
		"",
		renderChannelRow(ch, isFollowing(s.follow, ch.ID), inner),
		renderLike(s.like.Active()),
	)

	prev, next := "", ""
	if !s.nav.AtStart() {
		prev = ArrowStyle.Render("▲ previous")
	}
	if !s.nav.AtEnd() {
		next = ArrowStyle.Render("▼ next")
	}

	errorBar := ""
	if s.err != nil {
		errorBar = ErrorStyle.Width(width).Render("Error: " + s.err.Error())
	}

	body := stack(
		prev,
		Stage.Width(inner+4).Render(card),
		next,
		renderDots(s.nav.Position(), s.nav.Len()),
	)
	return stack(
		body,
		errorBar,
		StatusBar.Width(width).Render(s.help.View(s.keys)),
	)
}

// Position returns the feed position (for testing).
func (s Shorts) Position() int { return s.nav.Position() }

// Current returns the item on stage (for testing).
func (s Shorts) Current() catalog.VideoItem { return s.nav.Current() }

// Player returns the playback controller (for testing).
func (s Shorts) Player() *playback.Controller { return s.player }

// Liked reports whether the like pulse is up (for testing).
func (s Shorts) Liked() bool { return s.like.Active() }

// Err returns the last error shown to the user (for testing).
func (s Shorts) Err() error { return s.err }
