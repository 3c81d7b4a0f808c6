package ui

import (
	"errors"
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/progress"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/abelbrown/realtube/internal/catalog"
	"github.com/abelbrown/realtube/internal/channel"
	"github.com/abelbrown/realtube/internal/otel"
	"github.com/abelbrown/realtube/internal/playback"
	"github.com/abelbrown/realtube/internal/pulse"
)

// volumeStep is how far one keypress moves the volume.
const volumeStep = 10

// WatchConfig wires a watch page.
type WatchConfig struct {
	Catalog  *catalog.Catalog
	VideoID  string
	Resource playback.Resource
	Player   playback.Options

	Following Following
	Events    *otel.Logger
	Ring      *otel.RingBuffer

	PulseDuration time.Duration
}

// Watch is the long-form page: one video with transport and volume
// controls, and a list of related videos that can be opened in place.
type Watch struct {
	cat     *catalog.Catalog
	video   catalog.Video
	related []catalog.Video
	cursor  int

	player *playback.Controller
	follow Following
	events *otel.Logger
	ring   *otel.RingBuffer

	like      pulse.Pulse
	pulseSeq  int
	pulseDur  time.Duration
	volume    progress.Model
	keys      watchKeys
	help      help.Model
	err       error
	width     int
	height    int
	showDebug bool
	quitting  bool
}

// ErrUnknownVideo is returned when the requested video is not in the catalog.
var ErrUnknownVideo = errors.New("ui: unknown video")

// NewWatch opens the page on the video with id.
func NewWatch(cfg WatchConfig) (Watch, error) {
	if cfg.Catalog == nil {
		return Watch{}, fmt.Errorf("%w %q: no catalog", ErrUnknownVideo, cfg.VideoID)
	}
	if _, ok := cfg.Catalog.Video(cfg.VideoID); !ok {
		return Watch{}, fmt.Errorf("%w %q", ErrUnknownVideo, cfg.VideoID)
	}
	opts := cfg.Player
	opts.VolumeControls = true
	if opts.Events == nil {
		opts.Events = cfg.Events
	}
	if opts.Comp == "" {
		opts.Comp = "watch"
	}
	w := Watch{
		cat:      cfg.Catalog,
		player:   playback.New(cfg.Resource, opts),
		follow:   cfg.Following,
		events:   cfg.Events,
		ring:     cfg.Ring,
		pulseDur: cfg.PulseDuration,
		volume: progress.New(
			progress.WithGradient("#FF5F87", "#FF0000"),
			progress.WithoutPercentage(),
		),
		keys: newWatchKeys(),
		help: help.New(),
	}
	w.open(cfg.VideoID)
	return w, nil
}

// open puts the video with id on the page. Unknown ids are ignored.
func (w *Watch) open(id string) {
	v, ok := w.cat.Video(id)
	if !ok {
		return
	}
	w.video = v
	w.related = w.cat.Related(id)
	w.cursor = 0
	w.like.Stop()
	w.pulseSeq++
	w.like = pulse.New(w.pulseSeq, w.pulseDur)
	w.player.Bind(v.ID, v.MediaURL)
}

// Init sets the terminal title.
func (w Watch) Init() tea.Cmd {
	return tea.SetWindowTitle("realtube · " + w.video.Title)
}

// Update handles messages and returns the updated model and any commands.
func (w Watch) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return w.handleKeyMsg(msg)

	case tea.WindowSizeMsg:
		w.width = msg.Width
		w.height = msg.Height
		w.help.Width = msg.Width
		w.volume.Width = max(min(msg.Width-24, 40), 10)
		return w, nil

	case pulse.ExpiredMsg:
		w.like.Update(msg)
		return w, nil
	}
	return w, nil
}

func (w Watch) handleKeyMsg(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	w.err = nil
	w.events.Emit(otel.Event{Level: otel.LevelDebug, Kind: otel.KindKeyPress, Comp: "watch", Item: w.video.ID, Msg: msg.String()})
	switch {
	case key.Matches(msg, w.keys.Quit):
		w.like.Stop()
		w.quitting = true
		return w, tea.Quit

	case key.Matches(msg, w.keys.Play):
		w.player.TogglePlay()

	case key.Matches(msg, w.keys.Mute):
		w.player.ToggleMute()

	case key.Matches(msg, w.keys.VolumeUp):
		w.player.AdjustVolume(volumeStep)

	case key.Matches(msg, w.keys.VolumeDown):
		w.player.AdjustVolume(-volumeStep)

	case key.Matches(msg, w.keys.Silence):
		w.player.SetVolume(0)

	case key.Matches(msg, w.keys.Like):
		cmd := w.like.Trigger()
		w.events.Emit(otel.Event{Level: otel.LevelDebug, Kind: otel.KindPulse, Comp: "watch", Item: w.video.ID})
		return w, cmd

	case key.Matches(msg, w.keys.Subscribe):
		w.err = toggleSubscription(w.follow, w.channel())

	case key.Matches(msg, w.keys.Down):
		if w.cursor < len(w.related)-1 {
			w.cursor++
		}

	case key.Matches(msg, w.keys.Up):
		if w.cursor > 0 {
			w.cursor--
		}

	case key.Matches(msg, w.keys.Open):
		if w.cursor < len(w.related) {
			w.open(w.related[w.cursor].ID)
		}

	case key.Matches(msg, w.keys.Debug):
		w.showDebug = !w.showDebug

	case key.Matches(msg, w.keys.Help):
		w.help.ShowAll = !w.help.ShowAll
	}
	return w, nil
}

func (w Watch) channel() channel.Channel {
	return channel.FromName(w.video.Channel, w.video.Views)
}

// View renders the UI.
func (w Watch) View() string {
	if w.quitting {
		return ""
	}
	if w.showDebug {
		return debugOverlay(w.ring, w.width, w.height)
	}

	width := w.width
	if width <= 0 {
		width = 80
	}
	inner := max(width-8, 20)
	ch := w.channel()

	level := float64(w.player.Volume()) / playback.MaxVolume
	if w.player.Silent() {
		level = 0
	}
	volume := MetaStyle.Render("vol ") + w.volume.ViewAs(level) +
		MetaStyle.Render(fmt.Sprintf(" %3d", w.player.Volume()))

	player := lipgloss.JoinVertical(lipgloss.Left,
		renderTransport(w.player),
		volume,
		"",
		TitleStyle.Render(truncate(w.video.Title, inner)),
		MetaStyle.Render(w.video.Views+" · "+w.video.Published+" · "+w.video.Duration),
		"",
		renderChannelRow(ch, isFollowing(w.follow, ch.ID), inner),
		renderLike(w.like.Active()),
	)

	errorBar := ""
	if w.err != nil {
		errorBar = ErrorStyle.Width(width).Render("Error: " + w.err.Error())
	}

	stage := Stage.Width(inner+4).Render(player)
	listHeight := len(w.related)
	if w.height > 0 {
		listHeight = max(w.height-lipgloss.Height(stage)-3, 3)
	}

	return stack(
		stage,
		DebugHeaderStyle.Render("Related"),
		renderRelated(w.related, w.cursor, inner, listHeight),
		errorBar,
		StatusBar.Width(width).Render(w.help.View(w.keys)),
	)
}

// Video returns the video on the page (for testing).
func (w Watch) Video() catalog.Video { return w.video }

// Related returns the related list (for testing).
func (w Watch) Related() []catalog.Video { return w.related }

// Cursor returns the related-list cursor (for testing).
func (w Watch) Cursor() int { return w.cursor }

// Player returns the playback controller (for testing).
func (w Watch) Player() *playback.Controller { return w.player }

// Liked reports whether the like pulse is up (for testing).
func (w Watch) Liked() bool { return w.like.Active() }
