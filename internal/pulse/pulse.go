// Package pulse implements the transient "liked" acknowledgment.
//
// Trigger raises the flag and schedules an ExpiredMsg through the Bubble Tea
// runtime. Every trigger bumps a generation counter, so only the newest
// expiry clears the flag: re-triggering restarts the delay. After Stop the
// pulse ignores every pending expiry, which keeps a torn-down view from
// being mutated by a timer it scheduled earlier.
package pulse

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// DefaultDuration is how long the flag stays up.
const DefaultDuration = time.Second

// ExpiredMsg is delivered when a scheduled expiry fires.
type ExpiredMsg struct {
	ID  int
	Gen int
}

// Pulse is the like-acknowledgment flag. The zero value is not usable; use New.
type Pulse struct {
	id       int
	duration time.Duration
	active   bool
	gen      int
	stopped  bool
}

// New creates a pulse. id distinguishes pulses that share one program.
func New(id int, d time.Duration) Pulse {
	if d <= 0 {
		d = DefaultDuration
	}
	return Pulse{id: id, duration: d}
}

// Trigger raises the flag and returns the command that will expire it.
// Returns nil once stopped.
func (p *Pulse) Trigger() tea.Cmd {
	if p.stopped {
		return nil
	}
	p.gen++
	p.active = true
	msg := ExpiredMsg{ID: p.id, Gen: p.gen}
	return tea.Tick(p.duration, func(time.Time) tea.Msg { return msg })
}

// Update clears the flag when msg is the latest expiry for this pulse.
// It reports whether msg belonged to this pulse.
func (p *Pulse) Update(msg ExpiredMsg) bool {
	if msg.ID != p.id {
		return false
	}
	if !p.stopped && msg.Gen == p.gen {
		p.active = false
	}
	return true
}

// Stop cancels every pending expiry and lowers the flag.
func (p *Pulse) Stop() {
	p.stopped = true
	p.active = false
}

// Active reports whether the flag is up.
func (p Pulse) Active() bool { return p.active }

// Gen returns the current generation, for tests and tracing.
func (p Pulse) Gen() int { return p.gen }
