package playback

import (
	"github.com/charmbracelet/log"

	"github.com/abelbrown/realtube/internal/logging"
)

// LogResource is a Resource that fetches nothing. It mirrors what a real
// player would be told to do and writes each command to the log, which is
// all the terminal front end needs.
type LogResource struct {
	log *log.Logger

	URL     string
	Playing bool
	Muted   bool
	Level   int
	Loads   int
}

// NewLogResource creates a sink logging under prefix.
func NewLogResource(prefix string) *LogResource {
	return &LogResource{log: logging.WithPrefix(prefix), Level: MaxVolume}
}

func (r *LogResource) Load(url string) {
	r.URL = url
	r.Playing = false
	r.Loads++
	r.log.Debug("load", "url", url)
}

func (r *LogResource) Play() {
	r.Playing = true
	r.log.Debug("play", "url", r.URL)
}

func (r *LogResource) Pause() {
	r.Playing = false
	r.log.Debug("pause", "url", r.URL)
}

func (r *LogResource) SetMuted(muted bool) {
	r.Muted = muted
	r.log.Debug("mute", "muted", muted)
}

func (r *LogResource) SetVolume(level int) {
	r.Level = level
	r.log.Debug("volume", "level", level)
}
