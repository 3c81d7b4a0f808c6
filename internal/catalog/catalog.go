// Package catalog loads the video descriptors the players browse.
//
// A catalog is a TOML or YAML file with a list of shorts and a list of
// long-form videos. A built-in catalog is embedded for first runs.
package catalog

import (
	_ "embed"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

//go:embed default_catalog.toml
var defaultCatalog string

// ErrUnknownFormat is returned for catalog files that are neither TOML nor YAML.
var ErrUnknownFormat = errors.New("unknown catalog format")

// VideoItem is one clip in the short-form feed. Immutable once placed in a feed.
type VideoItem struct {
	ID        string `toml:"id" yaml:"id"`
	Title     string `toml:"title" yaml:"title"`
	Views     string `toml:"views" yaml:"views"`
	Thumbnail string `toml:"thumbnail" yaml:"thumbnail"`
	Channel   string `toml:"channel,omitempty" yaml:"channel,omitempty"`
	MediaURL  string `toml:"media_url,omitempty" yaml:"media_url,omitempty"`
}

// Video is a long-form video shown on the watch page.
type Video struct {
	ID        string `toml:"id" yaml:"id"`
	Title     string `toml:"title" yaml:"title"`
	Channel   string `toml:"channel" yaml:"channel"`
	Views     string `toml:"views" yaml:"views"`
	Published string `toml:"published" yaml:"published"`
	Duration  string `toml:"duration" yaml:"duration"`
	Thumbnail string `toml:"thumbnail" yaml:"thumbnail"`
	MediaURL  string `toml:"media_url,omitempty" yaml:"media_url,omitempty"`
}

// Item returns the feed descriptor view of v.
func (v Video) Item() VideoItem {
	return VideoItem{
		ID:        v.ID,
		Title:     v.Title,
		Views:     v.Views,
		Thumbnail: v.Thumbnail,
		Channel:   v.Channel,
		MediaURL:  v.MediaURL,
	}
}

// Catalog is the full set of browsable content.
type Catalog struct {
	Shorts []VideoItem `toml:"shorts" yaml:"shorts"`
	Videos []Video     `toml:"videos" yaml:"videos"`
}

// Default returns the embedded catalog.
func Default() (*Catalog, error) {
	return Decode(strings.NewReader(defaultCatalog), "toml")
}

// Load reads the catalog at path. An empty path yields Default.
// The format is chosen by extension: .toml, .yaml or .yml.
func Load(path string) (*Catalog, error) {
	if path == "" {
		return Default()
	}

	var format string
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		format = "toml"
	case ".yaml", ".yml":
		format = "yaml"
	default:
		return nil, fmt.Errorf("%s: %w", path, ErrUnknownFormat)
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open catalog: %w", err)
	}
	defer f.Close()

	c, err := Decode(f, format)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return c, nil
}

// Decode parses a catalog in the given format ("toml" or "yaml") and validates it.
func Decode(r io.Reader, format string) (*Catalog, error) {
	var c Catalog
	switch format {
	case "toml":
		if err := toml.NewDecoder(r).Decode(&c); err != nil {
			return nil, fmt.Errorf("parse catalog: %w", err)
		}
	case "yaml":
		if err := yaml.NewDecoder(r).Decode(&c); err != nil && !errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("parse catalog: %w", err)
		}
	default:
		return nil, ErrUnknownFormat
	}

	if err := c.Validate(); err != nil {
		return nil, err
	}
	return &c, nil
}

// Validate checks that every descriptor has an ID and a title and that
// IDs are unique within their list.
func (c *Catalog) Validate() error {
	seen := make(map[string]bool, len(c.Shorts))
	for i, s := range c.Shorts {
		if err := checkEntry("short", i, s.ID, s.Title, seen); err != nil {
			return err
		}
	}
	seen = make(map[string]bool, len(c.Videos))
	for i, v := range c.Videos {
		if err := checkEntry("video", i, v.ID, v.Title, seen); err != nil {
			return err
		}
	}
	return nil
}

func checkEntry(kind string, i int, id, title string, seen map[string]bool) error {
	if id == "" {
		return fmt.Errorf("%s #%d: missing id", kind, i+1)
	}
	if title == "" {
		return fmt.Errorf("%s %q: missing title", kind, id)
	}
	if seen[id] {
		return fmt.Errorf("%s %q: duplicate id", kind, id)
	}
	seen[id] = true
	return nil
}

// ShortIndex returns the position of the short with id, or -1.
func (c *Catalog) ShortIndex(id string) int {
	for i, s := range c.Shorts {
		if s.ID == id {
			return i
		}
	}
	return -1
}

// Video returns the long-form video with id.
func (c *Catalog) Video(id string) (Video, bool) {
	for _, v := range c.Videos {
		if v.ID == id {
			return v, true
		}
	}
	return Video{}, false
}

// Related returns every other long-form video, in catalog order.
func (c *Catalog) Related(id string) []Video {
	out := make([]Video, 0, len(c.Videos))
	for _, v := range c.Videos {
		if v.ID != id {
			out = append(out, v)
		}
	}
	return out
}
