package ui

import "github.com/charmbracelet/lipgloss"

// Colors used in the application.
var (
	colorPrimary   = lipgloss.Color("196") // Red
	colorSecondary = lipgloss.Color("241") // Gray
	colorMuted     = lipgloss.Color("240") // Darker gray
	colorHighlight = lipgloss.Color("212") // Pink
	colorWhite     = lipgloss.Color("255")
)

// Stage frames the video area.
var Stage = lipgloss.NewStyle().
	Border(lipgloss.RoundedBorder()).
	BorderForeground(colorMuted).
	Padding(1, 2)

// TitleStyle for the video title.
var TitleStyle = lipgloss.NewStyle().
	Bold(true).
	Foreground(colorWhite)

// ChannelStyle for the channel name.
var ChannelStyle = lipgloss.NewStyle().
	Bold(true).
	Foreground(colorWhite)

// MetaStyle for view counts and other secondary labels.
var MetaStyle = lipgloss.NewStyle().
	Foreground(colorSecondary)

// SubscribeButton is shown when the channel is not followed.
var SubscribeButton = lipgloss.NewStyle().
	Bold(true).
	Foreground(colorWhite).
	Background(colorPrimary).
	Padding(0, 1)

// SubscribedButton is shown when the channel is followed.
var SubscribedButton = lipgloss.NewStyle().
	Foreground(colorWhite).
	Background(lipgloss.Color("238")).
	Padding(0, 1)

// PlayState renders the transport indicator.
var PlayState = lipgloss.NewStyle().
	Bold(true).
	Foreground(colorHighlight)

// LikeStyle renders the pulse heart.
var LikeStyle = lipgloss.NewStyle().
	Bold(true).
	Foreground(colorPrimary)

// DotActive marks the current position in the feed.
var DotActive = lipgloss.NewStyle().Foreground(colorPrimary)

// DotIdle marks other positions.
var DotIdle = lipgloss.NewStyle().Foreground(colorMuted)

// ArrowStyle for the prev/next affordances.
var ArrowStyle = lipgloss.NewStyle().Foreground(colorSecondary)

// SelectedItem style for the highlighted related video.
var SelectedItem = lipgloss.NewStyle().
	Bold(true).
	Foreground(colorWhite).
	Background(lipgloss.Color("62")).
	Padding(0, 1)

// NormalItem style for other related videos.
var NormalItem = lipgloss.NewStyle().
	Foreground(colorWhite).
	Padding(0, 1)

// StatusBar style for the bottom status bar.
var StatusBar = lipgloss.NewStyle().
	Foreground(colorWhite).
	Background(lipgloss.Color("236")).
	Padding(0, 1)

// StatusBarKey style for key hints in status bar.
var StatusBarKey = lipgloss.NewStyle().
	Foreground(colorHighlight).
	Bold(true)

// StatusBarText style for descriptive text in status bar.
var StatusBarText = lipgloss.NewStyle().
	Foreground(colorSecondary)

// ErrorStyle for displaying errors.
var ErrorStyle = lipgloss.NewStyle().
	Foreground(lipgloss.Color("196")).
	Bold(true).
	Padding(0, 1)

// DebugPanel frames the debug overlay.
var DebugPanel = lipgloss.NewStyle().
	Border(lipgloss.RoundedBorder()).
	BorderForeground(colorHighlight).
	Padding(1, 2)

// DebugHeaderStyle for section headers in the debug overlay.
var DebugHeaderStyle = lipgloss.NewStyle().
	Bold(true).
	Foreground(colorHighlight)
