package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"

	"github.com/abelbrown/realtube/internal/catalog"
	"github.com/abelbrown/realtube/internal/channel"
)

// channelColWidth is the fixed width of the channel column.
const channelColWidth = 16

// renderRelated renders the related-video list, scrolled so the cursor row
// is visible within height lines. Each row is "title .... channel  duration".
func renderRelated(videos []catalog.Video, cursor, width, height int) string {
	if len(videos) == 0 {
		return MetaStyle.Render("Nothing else to watch.")
	}
	height = max(height, 1)

	offset := calcScrollOffset(len(videos), cursor, height)
	end := min(offset+height, len(videos))

	var b strings.Builder
	for i := offset; i < end; i++ {
		b.WriteString(renderRelatedLine(videos[i], i == cursor, width))
		if i < end-1 {
			b.WriteString("\n")
		}
	}
	return b.String()
}

// calcScrollOffset returns the first visible row so that cursor fits in a
// viewport of height rows.
func calcScrollOffset(n, cursor, height int) int {
	if n == 0 || cursor < 0 {
		return 0
	}
	cursor = min(cursor, n-1)
	if cursor >= height {
		return cursor - height + 1
	}
	return 0
}

func renderRelatedLine(v catalog.Video, selected bool, width int) string {
	name := runewidth.Truncate(channel.DisplayName(v.Channel), channelColWidth, "…")
	name = runewidth.FillRight(name, channelColWidth)
	right := " " + name + " " + runewidth.FillLeft(v.Duration, 6)

	titleWidth := max(width-lipgloss.Width(right)-4, 10)
	title := runewidth.Truncate(v.Title, titleWidth, "…")

	leader := fadeDots(titleWidth - runewidth.StringWidth(title))
	if selected {
		return SelectedItem.Render(title + leader + right)
	}
	return NormalItem.Render(title) + MetaStyle.Render(leader+right)
}

// fadeDots returns a dot leader of count cells ending in one space.
func fadeDots(count int) string {
	if count <= 0 {
		return ""
	}
	return strings.Repeat(".", count-1) + " "
}
