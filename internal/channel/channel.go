// Package channel defines the publisher snapshot stored by subscriptions
// and the single place channel identifiers are derived.
package channel

import (
	"net/url"
	"strings"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

const (
	// idPrefix namespaces derived identifiers.
	idPrefix = "channel_"

	// DefaultName is shown when a video carries no channel name.
	DefaultName = "User"

	// defaultSlug stands in for an empty or all-whitespace name.
	defaultSlug = "user"

	avatarBase = "https://api.dicebear.com/7.x/initials/svg?seed="
)

// Channel is a value snapshot of a publisher. It is copied into the
// subscription store at subscribe time and never refreshed.
type Channel struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Handle      string `json:"handle"`
	Avatar      string `json:"avatar"`
	Subscribers string `json:"subscribers"`
	Description string `json:"description,omitempty"`
}

// lower folds case for any script. Casers hold state, so each call gets its own.
func lower(s string) string {
	return cases.Lower(language.Und).String(s)
}

// ID derives the channel identifier from a display name.
//
// Rules: surrounding whitespace is trimmed, every inner whitespace run
// becomes one underscore, the result is lower-cased (Unicode aware) and
// prefixed with "channel_". An empty name maps to "channel_user".
// So ID("Tech Talk") == ID("  tech   talk ").
func ID(name string) string {
	return idPrefix + slug(name, "_")
}

// Handle derives the "@handle" form: whitespace removed, lower-cased.
func Handle(name string) string {
	return "@" + slug(name, "")
}

// Avatar returns the initials avatar reference for name.
func Avatar(name string) string {
	if strings.TrimSpace(name) == "" {
		name = DefaultName
	}
	return avatarBase + url.QueryEscape(name)
}

// DisplayName returns name, or DefaultName when it is blank.
func DisplayName(name string) string {
	if strings.TrimSpace(name) == "" {
		return DefaultName
	}
	return name
}

// FromName builds the snapshot for a channel known only by its display
// name, as the feed does. subscribers is the label shown on the card.
func FromName(name, subscribers string) Channel {
	return Channel{
		ID:          ID(name),
		Name:        DisplayName(name),
		Handle:      Handle(name),
		Avatar:      Avatar(name),
		Subscribers: subscribers,
	}
}

// Resolve maps user input that may be either a display name or an
// identifier onto an identifier. The name-derived ID wins when known
// reports it; the input taken literally as an identifier is tried next.
// With neither known, an identifier-shaped input is returned as is and
// anything else as its derived ID.
func Resolve(nameOrID string, known func(id string) bool) string {
	derived := ID(nameOrID)
	if known(derived) {
		return derived
	}
	literal := lower(strings.TrimSpace(nameOrID))
	if !strings.HasPrefix(literal, idPrefix) || strings.ContainsFunc(literal, unicode.IsSpace) {
		return derived
	}
	return literal
}

func slug(name, sep string) string {
	s := strings.Join(strings.FieldsFunc(name, unicode.IsSpace), sep)
	if s == "" {
		return defaultSlug
	}
	return lower(s)
}
