package cmd

import (
	"fmt"
	"strconv"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"
	"github.com/tursodatabase/blocks/internal/ranking"
	"github.com/tursodatabase/blocks/internal/settings"
)

var (
	lastFlag  bool
	limitFlag int
)

func init() {
	rootCmd.AddCommand(scoresCmd)
	scoresCmd.Flags().BoolVar(&lastFlag, "last", false, "Show the most recent game instead of the high scores")
	scoresCmd.Flags().IntVarP(&limitFlag, "limit", "n", ranking.DefaultSize, "Number of high scores to show")
}

var scoresCmd = &cobra.Command{
	Use:               "scores",
	Short:             "Show the high score table",
	Args:              cobra.NoArgs,
	ValidArgsFunction: noFilesArg,
	RunE: func(cmd *cobra.Command, args []string) error {
		cmd.SilenceUsage = true
		settings, err := settings.ReadSettings()
		if err != nil {
			return fmt.Errorf("failed to read settings: %w", err)
		}

		if lastFlag {
			game, ok := settings.LastGame()
			if !ok {
				fmt.Println("No recent game. Run", emph("blocks play"), "to start one.")
				return nil
			}
			fmt.Printf("%s scored %s with %d lines and %d pieces %s.\n",
				emph(game.Player), emph(humanize.Comma(int64(game.Score))), game.Lines, game.Pieces,
				humanize.Time(time.Unix(game.PlayedAt, 0)))
			return nil
		}

		store, err := ranking.Open(cmd.Context(), settings.ScoresPath())
		if err != nil {
			return err
		}
		defer store.Close()

		entries, err := store.Top(cmd.Context(), limitFlag)
		if err != nil {
			return err
		}
		if len(entries) == 0 {
			fmt.Println("No scores yet. Run", emph("blocks play"), "to start a game.")
			return nil
		}
		printTable([]string{"#", "Player", "Score", "Lines", "Pieces", "Played"}, scoreRows(entries, time.Now()))
		return nil
	},
}

func scoreRows(entries []ranking.Entry, now time.Time) [][]string {
	data := make([][]string, 0, len(entries))
	for i, entry := range entries {
		data = append(data, []string{
			strconv.Itoa(i + 1),
			entry.Player,
			humanize.Comma(int64(entry.Score)),
			strconv.Itoa(entry.Lines),
			strconv.Itoa(entry.Pieces),
			humanize.RelTime(entry.PlayedAt, now, "ago", "from now"),
		})
	}
	return data
}
