package cmd

import (
	"context"
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/athoscouto/codename"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/tursodatabase/blocks/internal"
	"github.com/tursodatabase/blocks/internal/flags"
	"github.com/tursodatabase/blocks/internal/play"
	"github.com/tursodatabase/blocks/internal/prompt"
	"github.com/tursodatabase/blocks/internal/ranking"
	"github.com/tursodatabase/blocks/internal/settings"
	"github.com/tursodatabase/blocks/internal/tetris"
	"golang.org/x/term"
)

var (
	rowsFlag         int
	colsFlag         int
	dropIntervalFlag time.Duration
)

func init() {
	rootCmd.AddCommand(playCmd)
	addGameConfigFlags(playCmd)
	flags.AddSeed(playCmd)
}

func addGameConfigFlags(cmd *cobra.Command) {
	cmd.Flags().IntVar(&rowsFlag, "rows", tetris.DefaultRows, "Number of board rows")
	cmd.Flags().IntVar(&colsFlag, "cols", tetris.DefaultCols, "Number of board columns")
	cmd.Flags().DurationVar(&dropIntervalFlag, "drop-interval", tetris.DefaultDropInterval, "Time between two gravity steps")
}

// gameConfig starts from the stored settings; flags given on the command line win
func gameConfig(cmd *cobra.Command, settings *settings.Settings) (tetris.Config, error) {
	config := settings.GameConfig()
	if cmd.Flags().Changed("rows") {
		config.Rows = rowsFlag
	}
	if cmd.Flags().Changed("cols") {
		config.Cols = colsFlag
		if config.SpawnX+4 > config.Cols {
			config.SpawnX = (config.Cols - 4) / 2
		}
	}
	if cmd.Flags().Changed("drop-interval") {
		config.DropInterval = dropIntervalFlag
	}
	return config, config.Validate()
}

var playCmd = &cobra.Command{
	Use:               "play",
	Aliases:           []string{"relax"},
	Short:             "Sometimes you feel like you're working too hard... relax!",
	Args:              cobra.NoArgs,
	ValidArgsFunction: noFilesArg,
	RunE: func(cmd *cobra.Command, args []string) error {
		cmd.SilenceUsage = true
		if !prompt.IsInteractive() {
			return fmt.Errorf("play needs an interactive terminal, try %s", emph("blocks simulate"))
		}

		settings, err := settings.ReadSettings()
		if err != nil {
			return fmt.Errorf("failed to read settings: %w", err)
		}
		config, err := gameConfig(cmd, settings)
		if err != nil {
			return err
		}
		if _, height, err := term.GetSize(int(os.Stdout.Fd())); err == nil && height < config.Rows+2 {
			fmt.Println(internal.Warn(fmt.Sprintf("Your terminal is %d lines high, the board needs %d.", height, config.Rows+2)))
		}

		logger, closeLog, err := openLog(settings.Path())
		if err != nil {
			return err
		}
		defer closeLog()

		var results []tetris.Result
		options := []tetris.Option{
			tetris.WithLogger(logger),
			tetris.OnGameOver(func(result tetris.Result) {
				results = append(results, result)
			}),
		}
		if seed := flags.Seed(); seed != 0 {
			options = append(options, tetris.WithSeed(seed))
		}
		engine, err := tetris.NewEngine(config, options...)
		if err != nil {
			return err
		}

		logger.WithField("seed", flags.Seed()).Info("play started")
		if _, err := tea.NewProgram(play.NewModel(engine, logger), tea.WithAltScreen()).Run(); err != nil {
			return err
		}

		return recordResults(cmd.Context(), settings, logger, results)
	},
}

// recordResults saves every finished game that makes the high score table
func recordResults(ctx context.Context, settings *settings.Settings, logger logrus.FieldLogger, results []tetris.Result) error {
	if len(results) == 0 {
		return nil
	}
	if ctx == nil {
		ctx = context.Background()
	}

	store, err := ranking.Open(ctx, settings.ScoresPath())
	if err != nil {
		return err
	}
	defer store.Close()

	for _, result := range results {
		fmt.Printf("Game over! Score %s, %d lines, %d pieces.\n", emph(fmt.Sprint(result.Score)), result.Lines, result.Pieces)

		table, err := store.Ranking(ctx, ranking.DefaultSize)
		if err != nil {
			return err
		}
		place := table.InsertScore(ranking.NewEntry("", result))
		player := settings.GetPlayer()
		if place >= 0 && result.Score > 0 {
			suggestion, err := defaultPlayerName(player)
			if err != nil {
				return err
			}
			name, err := prompt.PlayerName(result.Score, suggestion)
			if errors.Is(err, prompt.ErrCancelled) {
				continue
			}
			if err != nil {
				return err
			}
			player = name
			settings.SetPlayer(player)
		}

		entry, err := store.Insert(ctx, ranking.NewEntry(player, result))
		if err != nil {
			return err
		}
		settings.SetLastGame(lastGame(entry))
		logger.WithFields(logrus.Fields{
			"player": entry.Player,
			"score":  entry.Score,
			"place":  place + 1,
		}).Info("score recorded")
	}
	return nil
}

func defaultPlayerName(player string) (string, error) {
	if player != "" {
		return player, nil
	}
	rng, err := codename.DefaultRNG()
	if err != nil {
		return "", err
	}
	return codename.Generate(rng, 0), nil
}

func lastGame(entry ranking.Entry) settings.LastGame {
	return settings.LastGame{
		Player:   entry.Player,
		Score:    entry.Score,
		Lines:    entry.Lines,
		Pieces:   entry.Pieces,
		PlayedAt: entry.PlayedAt.Unix(),
	}
}
