package commands

import (
	"fmt"
	"strconv"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"github.com/realgold/showcase/internal/database/repository"
)

func impressionsCmd() *cobra.Command {
	var (
		limit   int
		summary bool
	)
	cmd := &cobra.Command{
		Use:   "impressions",
		Short: "List recently settled slides",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			if summary {
				rows, err := env.impressions.Summary(ctx)
				if err != nil {
					return err
				}
				fmt.Fprintln(cmd.OutOrStdout(), summaryTable(rows))
				return nil
			}
			rows, err := env.impressions.Recent(ctx, limit)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), impressionTable(rows))
			return nil
		},
	}
	cmd.Flags().IntVar(&limit, "limit", 20, "number of impressions to show")
	cmd.Flags().BoolVar(&summary, "summary", false, "count impressions per slide instead")
	return cmd
}

func impressionTable(rows []repository.Impression) string {
	t := table.New().
		Border(lipgloss.NormalBorder()).
		Headers("SETTLED", "#", "TAB", "TRIGGER")
	for _, im := range rows {
		t.Row(im.SettledAt.Local().Format(time.DateTime), strconv.Itoa(im.SlideIndex+1), im.TabLabel, im.Trigger)
	}
	return t.String()
}

func summaryTable(rows []repository.ImpressionSummary) string {
	t := table.New().
		Border(lipgloss.NormalBorder()).
		Headers("TAB", "VIEWS", "LAST")
	for _, s := range rows {
		t.Row(s.TabLabel, strconv.Itoa(s.Count), s.LastSettled.Local().Format(time.DateTime))
	}
	return t.String()
}
