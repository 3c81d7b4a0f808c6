package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/gofrs/flock"
	"github.com/mattn/go-isatty"

	"github.com/abelbrown/realtube/internal/catalog"
	"github.com/abelbrown/realtube/internal/config"
	"github.com/abelbrown/realtube/internal/logging"
	"github.com/abelbrown/realtube/internal/otel"
	"github.com/abelbrown/realtube/internal/store"
	"github.com/abelbrown/realtube/internal/subscriptions"
)

var (
	errNoTerminal  = errors.New("realtube needs an interactive terminal")
	errSessionBusy = errors.New("another realtube session is running")
)

// session is everything an interactive view needs. Only one session per
// data directory runs at a time.
type session struct {
	cfg    *config.Config
	lock   *flock.Flock
	db     *store.Store
	events *otel.Logger
	ring   *otel.RingBuffer
	subs   *subscriptions.Store
	cat    *catalog.Catalog
}

func requireTerminal(w io.Writer) error {
	file, ok := w.(*os.File)
	if !ok {
		return errNoTerminal
	}
	fd := file.Fd()
	if !isatty.IsTerminal(fd) && !isatty.IsCygwinTerminal(fd) {
		return errNoTerminal
	}
	return nil
}

// openSession takes the session lock and opens logs, events, database,
// subscriptions and catalog. Close releases all of them.
func openSession(cfg *config.Config) (*session, error) {
	lock := flock.New(cfg.LockPath())
	ok, err := lock.TryLock()
	if err != nil {
		return nil, fmt.Errorf("acquire lock: %w", err)
	}
	if !ok {
		return nil, fmt.Errorf("%w (lock %s)", errSessionBusy, cfg.LockPath())
	}
	s := &session{cfg: cfg, lock: lock}

	if err := logging.Init(cfg.DataDir, cfg.LogLevel); err != nil {
		s.Close()
		return nil, err
	}

	events, err := otel.OpenFile(cfg.EventsPath())
	if err != nil {
		logging.Warn("event log unavailable", "err", err)
		events = otel.NewNullLogger()
	}
	s.events = events
	s.ring = otel.NewRingBuffer(otel.DefaultRingSize)
	s.events.SetRingBuffer(s.ring)
	s.events.Info(otel.KindStartup, "main", "session "+s.events.SessionID())

	s.db, err = store.Open(cfg.DBPath())
	if err != nil {
		s.events.Error(otel.KindError, "main", err)
		s.Close()
		return nil, fmt.Errorf("open database: %w", err)
	}
	s.subs = subscriptions.Open(s.db, s.events)

	s.cat, err = openCatalog(cfg)
	if err != nil {
		s.events.Error(otel.KindError, "main", err)
		s.Close()
		return nil, err
	}
	logging.Info("session opened", "db", cfg.DBPath(), "subscriptions", s.subs.Len())
	return s, nil
}

// Close tears down in reverse order of openSession.
func (s *session) Close() {
	if s.events != nil {
		s.events.Info(otel.KindShutdown, "main", "")
		s.events.Close()
	}
	if s.db != nil {
		if err := s.db.Close(); err != nil {
			logging.Error("close database", "err", err)
		}
	}
	logging.Close()
	if err := s.lock.Unlock(); err != nil {
		fmt.Fprintf(os.Stderr, "release lock: %v\n", err)
	}
}

func runProgram(model tea.Model) error {
	p := tea.NewProgram(model, tea.WithAltScreen(), tea.WithMouseCellMotion())
	_, err := p.Run()
	return err
}
