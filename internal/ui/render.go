package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"

	"github.com/abelbrown/realtube/internal/channel"
	"github.com/abelbrown/realtube/internal/playback"
)

// toggleSubscription flips c in f synchronously. The returned error is
// shown in the error bar; the button reads membership back from f.
func toggleSubscription(f Following, c channel.Channel) error {
	if f == nil {
		return nil
	}
	_, err := f.Toggle(c)
	return err
}

func isFollowing(f Following, id string) bool {
	return f != nil && f.IsSubscribed(id)
}

// truncate shortens s to width terminal cells.
func truncate(s string, width int) string {
	if width <= 0 {
		return ""
	}
	return runewidth.Truncate(s, width, "…")
}

// renderTransport shows play state and the mute marker.
func renderTransport(p *playback.Controller) string {
	state := "▶ Playing"
	if !p.Playing() {
		state = "❚❚ Paused"
	}
	out := PlayState.Render(state)
	if p.Silent() {
		out += "  " + MetaStyle.Render("🔇 muted")
	}
	return out
}

// renderChannelRow shows the channel, its label and the subscribe button.
func renderChannelRow(c channel.Channel, subscribed bool, width int) string {
	button := SubscribeButton.Render("Subscribe")
	if subscribed {
		button = SubscribedButton.Render("Subscribed")
	}
	name := ChannelStyle.Render(truncate(c.Name, max(width/2, 8)))
	handle := MetaStyle.Render(c.Handle)
	row := name + " " + handle
	if c.Subscribers != "" {
		row += MetaStyle.Render(" · " + c.Subscribers)
	}
	return row + "  " + button
}

func renderLike(active bool) string {
	if active {
		return LikeStyle.Render("♥ Liked")
	}
	return MetaStyle.Render("♡")
}

// renderDots draws one dot per feed position with the current one lit.
func renderDots(pos, n int) string {
	dots := make([]string, n)
	for i := 0; i < n; i++ {
		if i == pos {
			dots[i] = DotActive.Render("●")
		} else {
			dots[i] = DotIdle.Render("○")
		}
	}
	return strings.Join(dots, " ")
}

// stack joins non-empty blocks vertically.
func stack(blocks ...string) string {
	var keep []string
	for _, b := range blocks {
		if b != "" {
			keep = append(keep, b)
		}
	}
	return lipgloss.JoinVertical(lipgloss.Left, keep...)
}
