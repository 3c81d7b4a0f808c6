package ui

import (
	"fmt"
	"strings"
	"time"

	"github.com/mattn/go-runewidth"

	"github.com/abelbrown/realtube/internal/otel"
)

// debugPanelChrome is the number of terminal lines consumed by DebugPanel's
// border (top + bottom = 2) and vertical padding (top + bottom = 2).
const debugPanelChrome = 4

// debugOverlay renders session counters and recent events.
// Pure function. Returns empty string if ring is nil.
func debugOverlay(ring *otel.RingBuffer, width, height int) string {
	if ring == nil {
		return ""
	}

	stats := ring.Stats()

	var lines []string
	lines = append(lines, DebugHeaderStyle.Render("Session"))
	lines = append(lines, fmt.Sprintf("  Navigation: %d advance, %d retreat, %d at boundary",
		stats[otel.KindAdvance], stats[otel.KindRetreat], stats[otel.KindBoundary]))
	lines = append(lines, fmt.Sprintf("  Playback:   %d bind, %d toggle, %d mute, %d volume",
		stats[otel.KindBind], stats[otel.KindToggle], stats[otel.KindMute], stats[otel.KindVolume]))
	lines = append(lines, fmt.Sprintf("  Channels:   %d subscribe, %d unsubscribe, %d errors",
		stats[otel.KindSubscribe], stats[otel.KindUnsubscribe], stats[otel.KindStoreError]+stats[otel.KindCorrupt]))
	lines = append(lines, fmt.Sprintf("  Input:      %d keys", stats[otel.KindKeyPress]))
	lines = append(lines, fmt.Sprintf("  Buffer:     %d / %d events", ring.Len(), ring.Cap()))
	lines = append(lines, "")

	lines = append(lines, DebugHeaderStyle.Render("Recent Events"))
	for _, e := range ring.Last(20) {
		line := fmt.Sprintf("  %6s  %-16s", formatAge(time.Since(e.Time)), string(e.Kind))
		if e.Item != "" {
			line += "  " + e.Item
		}
		if e.Channel != "" {
			line += "  " + e.Channel
		}
		if e.Pos != nil {
			line += fmt.Sprintf("  @%d", *e.Pos)
		}
		if e.Msg != "" {
			line += "  " + runewidth.Truncate(e.Msg, 40, "…")
		}
		if e.Err != "" {
			line += "  ERR:" + runewidth.Truncate(e.Err, 30, "…")
		}
		lines = append(lines, line)
	}

	maxHeight := max(height-debugPanelChrome, 1)
	if len(lines) > maxHeight {
		lines = lines[:maxHeight]
	}

	panelWidth := min(76, width-4)
	panelWidth = max(panelWidth, 20)

	return DebugPanel.Width(panelWidth).Render(strings.Join(lines, "\n"))
}

// formatAge formats a duration as a compact human string.
// Negative durations from clock skew clamp to "0ms".
func formatAge(d time.Duration) string {
	if d < 0 {
		return "0ms"
	}
	switch {
	case d < time.Second:
		return fmt.Sprintf("%dms", d.Milliseconds())
	case d < time.Minute:
		return fmt.Sprintf("%.1fs", d.Seconds())
	default:
		return fmt.Sprintf("%.0fm", d.Minutes())
	}
}
