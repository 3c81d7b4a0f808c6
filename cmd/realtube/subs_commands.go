package main

import (
	"fmt"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"github.com/abelbrown/realtube/internal/channel"
	"github.com/abelbrown/realtube/internal/store"
	"github.com/abelbrown/realtube/internal/subscriptions"
)

func newSubsCommand(ctx *commandContext) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "subs",
		Short: "List and edit followed channels",
	}
	cmd.AddCommand(newSubsListCommand(ctx))
	cmd.AddCommand(newSubsAddCommand(ctx))
	cmd.AddCommand(newSubsRemoveCommand(ctx))
	return cmd
}

func newSubsListCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "Show followed channels",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return ctx.withSubscriptions(func(subs *subscriptions.Store, db *store.Store) error {
				out := cmd.OutOrStdout()
				all := subs.GetAll()
				if len(all) == 0 {
					fmt.Fprintln(out, "No subscriptions")
					return nil
				}

				rows := make([][]string, 0, len(all))
				for _, c := range all {
					rows = append(rows, []string{c.Name, c.Handle, c.ID, c.Subscribers})
				}
				fmt.Fprintln(out, renderTable(
					[]string{"Channel", "Handle", "ID", "Subscribers"},
					rows,
					[]columnAlignment{alignLeft, alignLeft, alignLeft, alignRight},
				))

				footer := fmt.Sprintf("%d channels", len(all))
				if at, ok, err := db.UpdatedAt(subscriptions.Key); err == nil && ok {
					footer += ", updated " + humanize.Time(at)
				}
				fmt.Fprintln(out, footer)
				return nil
			})
		},
	}
}

func newSubsAddCommand(ctx *commandContext) *cobra.Command {
	var subscribers string
	var description string

	cmd := &cobra.Command{
		Use:   "add <channel name>",
		Short: "Follow a channel by display name",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			name := strings.Join(args, " ")
			c := channel.FromName(name, subscribers)
			c.Description = description

			return ctx.withSubscriptions(func(subs *subscriptions.Store, _ *store.Store) error {
				out := cmd.OutOrStdout()
				if subs.IsSubscribed(c.ID) {
					fmt.Fprintf(out, "Already subscribed to %s (%s)\n", c.Name, c.ID)
					return nil
				}
				if err := subs.Subscribe(c); err != nil {
					return err
				}
				fmt.Fprintf(out, "Subscribed to %s (%s)\n", c.Name, c.ID)
				return nil
			})
		},
	}
	cmd.Flags().StringVar(&subscribers, "subscribers", "", "Subscriber label to store with the channel")
	cmd.Flags().StringVar(&description, "description", "", "Channel description")
	return cmd
}

func newSubsRemoveCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:     "rm <channel name or id>",
		Aliases: []string{"remove"},
		Short:   "Stop following a channel",
		Args:    cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			arg := strings.Join(args, " ")

			return ctx.withSubscriptions(func(subs *subscriptions.Store, _ *store.Store) error {
				id := channel.Resolve(arg, subs.IsSubscribed)
				if !subs.IsSubscribed(id) {
					return fmt.Errorf("not subscribed to %s", id)
				}
				if err := subs.Unsubscribe(id); err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Unsubscribed from %s\n", id)
				return nil
			})
		},
	}
}
