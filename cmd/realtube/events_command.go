package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"github.com/abelbrown/realtube/internal/otel"
)

// levelRank returns a numeric rank for filtering (higher = more severe).
func levelRank(level otel.Level) int {
	switch level {
	case otel.LevelInfo:
		return 1
	case otel.LevelWarn:
		return 2
	case otel.LevelError:
		return 3
	default:
		return 0
	}
}

type eventFilter struct {
	kind  string
	level string
	comp  string
}

func (f eventFilter) match(e otel.Event) bool {
	if f.kind != "" && !strings.HasPrefix(string(e.Kind), f.kind) {
		return false
	}
	if f.level != "" && levelRank(e.Level) < levelRank(otel.Level(f.level)) {
		return false
	}
	if f.comp != "" && e.Comp != f.comp {
		return false
	}
	return true
}

func newEventsCommand(ctx *commandContext) *cobra.Command {
	var tail int
	var filter eventFilter
	var rawJSON bool

	cmd := &cobra.Command{
		Use:   "events",
		Short: "Show recent session events",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()

			f, err := os.Open(cfg.EventsPath())
			if errors.Is(err, os.ErrNotExist) {
				fmt.Fprintln(out, "No events recorded yet; run `realtube shorts` first")
				return nil
			}
			if err != nil {
				return fmt.Errorf("open event log: %w", err)
			}
			defer f.Close()

			all, err := otel.ReadEvents(f)
			if err != nil {
				return err
			}
			var events []otel.Event
			for _, e := range all {
				if filter.match(e) {
					events = append(events, e)
				}
			}
			if tail > 0 && len(events) > tail {
				events = events[len(events)-tail:]
			}

			if rawJSON {
				enc := json.NewEncoder(out)
				for _, e := range events {
					if err := enc.Encode(e); err != nil {
						return err
					}
				}
				return nil
			}

			rows := make([][]string, 0, len(events))
			for _, e := range events {
				detail := e.Msg
				if e.Err != "" {
					detail = "ERR: " + e.Err
				}
				subject := e.Item
				if e.Channel != "" {
					subject = e.Channel
				}
				rows = append(rows, []string{humanize.Time(e.Time), string(e.Level), string(e.Kind), e.Comp, subject, detail})
			}
			fmt.Fprintln(out, renderTable(
				[]string{"When", "Level", "Kind", "Comp", "Subject", "Detail"},
				rows,
				nil,
			))
			return nil
		},
	}
	cmd.Flags().IntVarP(&tail, "tail", "n", 50, "Number of recent events to show")
	cmd.Flags().StringVar(&filter.kind, "kind", "", "Filter by event kind prefix (e.g. 'nav')")
	cmd.Flags().StringVar(&filter.level, "level", "", "Minimum level: debug, info, warn, error")
	cmd.Flags().StringVar(&filter.comp, "comp", "", "Filter by component name")
	cmd.Flags().BoolVar(&rawJSON, "json", false, "Output raw JSON lines")
	return cmd
}
