package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/realgold/showcase/internal/deckfile"
)

func deckCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "deck",
		Short: "Print the resolved deck as a TOML deck file",
		RunE: func(cmd *cobra.Command, args []string) error {
			deck, err := env.decks.Load(cmd.Context())
			if err != nil {
				return fmt.Errorf("load deck: %w", err)
			}
			return deckfile.Write(cmd.OutOrStdout(), deck.Slides())
		},
	}
}
