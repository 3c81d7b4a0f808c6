package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/abelbrown/realtube/internal/playback"
	"github.com/abelbrown/realtube/internal/ui"
)

func newShortsCommand(ctx *commandContext) *cobra.Command {
	var start string

	cmd := &cobra.Command{
		Use:   "shorts",
		Short: "Browse the vertical shorts feed",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := requireTerminal(cmd.OutOrStdout()); err != nil {
				return err
			}
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			s, err := openSession(cfg)
			if err != nil {
				return err
			}
			defer s.Close()

			index := 0
			if start != "" {
				index = s.cat.ShortIndex(start)
				if index < 0 {
					return fmt.Errorf("unknown short %q", start)
				}
			}

			model, err := ui.NewShorts(ui.ShortsConfig{
				Items:    s.cat.Shorts,
				Start:    index,
				Resource: playback.NewLogResource("shorts"),
				Player: playback.Options{
					Autoplay:    cfg.Shorts.Autoplay,
					FallbackURL: cfg.FallbackMediaURL,
				},
				Following:     s.subs,
				Events:        s.events,
				Ring:          s.ring,
				PulseDuration: cfg.PulseDuration(),
				GestureQuiet:  cfg.GestureQuiet(),
			})
			if err != nil {
				return err
			}
			return runProgram(model)
		},
	}
	cmd.Flags().StringVar(&start, "start", "", "ID of the short to open first")
	return cmd
}

func newWatchCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "watch [video-id]",
		Short: "Open a long-form video page",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := requireTerminal(cmd.OutOrStdout()); err != nil {
				return err
			}
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			s, err := openSession(cfg)
			if err != nil {
				return err
			}
			defer s.Close()

			id := ""
			if len(args) == 1 {
				id = args[0]
			} else if len(s.cat.Videos) > 0 {
				id = s.cat.Videos[0].ID
			}

			model, err := ui.NewWatch(ui.WatchConfig{
				Catalog:  s.cat,
				VideoID:  id,
				Resource: playback.NewLogResource("watch"),
				Player: playback.Options{
					Autoplay:    cfg.Watch.Autoplay,
					FallbackURL: cfg.FallbackMediaURL,
				},
				Following:     s.subs,
				Events:        s.events,
				Ring:          s.ring,
				PulseDuration: cfg.PulseDuration(),
			})
			if err != nil {
				return err
			}
			return runProgram(model)
		},
	}
}
