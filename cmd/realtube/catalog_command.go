package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/abelbrown/realtube/internal/channel"
)

func newCatalogCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "catalog",
		Short: "List the shorts and videos available to browse",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cat, err := ctx.loadCatalog()
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()

			rows := make([][]string, 0, len(cat.Shorts))
			for _, s := range cat.Shorts {
				rows = append(rows, []string{s.ID, s.Title, channel.DisplayName(s.Channel), s.Views})
			}
			fmt.Fprintln(out, "Shorts")
			fmt.Fprintln(out, renderTable(
				[]string{"ID", "Title", "Channel", "Views"},
				rows,
				[]columnAlignment{alignLeft, alignLeft, alignLeft, alignRight},
			))

			rows = rows[:0]
			for _, v := range cat.Videos {
				rows = append(rows, []string{v.ID, v.Title, channel.DisplayName(v.Channel), v.Views, v.Duration, v.Published})
			}
			fmt.Fprintln(out, "Videos")
			fmt.Fprintln(out, renderTable(
				[]string{"ID", "Title", "Channel", "Views", "Length", "Published"},
				rows,
				[]columnAlignment{alignLeft, alignLeft, alignLeft, alignRight, alignRight, alignLeft},
			))
			return nil
		},
	}
}
