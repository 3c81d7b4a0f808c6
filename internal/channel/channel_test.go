package channel

import (
	"strings"
	"testing"
)

func TestID(t *testing.T) {
	tests := []struct {
		name string
		want string
	}{
		{"Tech", "channel_tech"},
		{"Code Masters", "channel_code_masters"},
		{"  Code \t  Masters  ", "channel_code_masters"},
		{"", "channel_user"},
		{"   ", "channel_user"},
		{"Бизнес Академия", "channel_бизнес_академия"},
		{"ÉCOLE", "channel_école"},
	}
	for _, tt := range tests {
		if got := ID(tt.name); got != tt.want {
			t.Errorf("ID(%q) = %q, want %q", tt.name, got, tt.want)
		}
	}
}

func TestIDConsistentAcrossSpellings(t *testing.T) {
	if ID("Tech Talk") != ID("  tech   talk ") {
		t.Error("case and whitespace variants must map to the same identifier")
	}
}

func TestHandle(t *testing.T) {
	if got := Handle("Code Masters"); got != "@codemasters" {
		t.Errorf("Handle = %q", got)
	}
	if got := Handle(""); got != "@user" {
		t.Errorf("Handle(empty) = %q", got)
	}
}

func TestFromName(t *testing.T) {
	c := FromName("Code Masters", "2.5M")
	if c.ID != "channel_code_masters" || c.Name != "Code Masters" || c.Subscribers != "2.5M" {
		t.Errorf("unexpected snapshot %+v", c)
	}
	if !strings.HasSuffix(c.Avatar, "seed=Code+Masters") {
		t.Errorf("Avatar = %q", c.Avatar)
	}

	anon := FromName("", "12M")
	if anon.Name != DefaultName || anon.ID != "channel_user" || anon.Handle != "@user" {
		t.Errorf("anonymous snapshot %+v", anon)
	}
	if !strings.HasSuffix(anon.Avatar, "seed=User") {
		t.Errorf("anonymous Avatar = %q", anon.Avatar)
	}
}

func TestResolve(t *testing.T) {
	known := map[string]bool{
		"channel_code_masters":  true,
		"channel_channel_news":  true,
		"channel_legacy_import": true,
	}
	isKnown := func(id string) bool { return known[id] }

	tests := []struct {
		in   string
		want string
	}{
		{"Code Masters", "channel_code_masters"},
		{"channel_code_masters", "channel_code_masters"},
		{"CHANNEL_Code_Masters", "channel_code_masters"},
		{"channel_news", "channel_channel_news"},
		{"channel_legacy_import", "channel_legacy_import"},
		{"channel_gone", "channel_gone"},
		{"Nobody Here", "channel_nobody_here"},
		{"channel_ x", "channel_channel__x"},
	}
	for _, tt := range tests {
		if got := Resolve(tt.in, isKnown); got != tt.want {
			t.Errorf("Resolve(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
