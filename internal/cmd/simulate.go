package cmd

import (
	"context"
	"fmt"
	"runtime"
	"strconv"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"
	"github.com/tursodatabase/blocks/internal/flags"
	"github.com/tursodatabase/blocks/internal/play"
	"github.com/tursodatabase/blocks/internal/settings"
	"github.com/tursodatabase/blocks/internal/tetris"
	"golang.org/x/sync/errgroup"
)

var (
	gamesFlag      int
	piecesFlag     int
	randomnessFlag float64
	timeoutFlag    time.Duration
)

func init() {
	rootCmd.AddCommand(simulateCmd)
	addGameConfigFlags(simulateCmd)
	flags.AddSeed(simulateCmd)
	simulateCmd.Flags().IntVarP(&gamesFlag, "games", "g", 4, "Number of games played side by side")
	simulateCmd.Flags().IntVar(&piecesFlag, "pieces", 1000, "Stop a game after this many pieces, zero for no limit")
	simulateCmd.Flags().Float64Var(&randomnessFlag, "randomness", 0, "Probability of a random placement instead of the best one")
	simulateCmd.Flags().DurationVar(&timeoutFlag, "timeout", time.Minute, "Give up after this long")
}

type simulation struct {
	seed   int64
	result tetris.Result
	over   bool
}

var simulateCmd = &cobra.Command{
	Use:               "simulate",
	Short:             "Let a bot play several games at once",
	Args:              cobra.NoArgs,
	ValidArgsFunction: noFilesArg,
	RunE: func(cmd *cobra.Command, args []string) error {
		cmd.SilenceUsage = true
		settings, err := settings.ReadSettings()
		if err != nil {
			return fmt.Errorf("failed to read settings: %w", err)
		}
		config, err := gameConfig(cmd, settings)
		if err != nil {
			return err
		}
		if gamesFlag < 1 {
			return fmt.Errorf("games must be at least 1, got %d", gamesFlag)
		}
		if randomnessFlag < 0 || randomnessFlag > 1 {
			return fmt.Errorf("randomness must be between 0 and 1, got %g", randomnessFlag)
		}

		seed := flags.Seed()
		if seed == 0 {
			seed = time.Now().UnixNano()
		}

		ctx, cancel := context.WithTimeout(cmd.Context(), timeoutFlag)
		defer cancel()
		start := time.Now()
		simulations, err := simulate(ctx, config, gamesFlag, piecesFlag, seed, randomnessFlag)
		if err != nil {
			return err
		}

		printTable([]string{"#", "Seed", "Score", "Lines", "Pieces", "Ended"}, simulationRows(simulations))
		total := tetris.Result{}
		for _, simulation := range simulations {
			total.Score += simulation.result.Score
			total.Lines += simulation.result.Lines
			total.Pieces += simulation.result.Pieces
		}
		fmt.Printf("\n%s games, %s points, %s lines, %s pieces in %s.\n",
			emph(humanize.Comma(int64(len(simulations)))),
			emph(humanize.Comma(int64(total.Score))),
			humanize.Comma(int64(total.Lines)),
			humanize.Comma(int64(total.Pieces)),
			time.Since(start).Round(time.Millisecond))
		return nil
	},
}

// simulate plays games engines concurrently, game i seeded with seed+i
func simulate(ctx context.Context, config tetris.Config, games, pieces int, seed int64, randomness float64) ([]simulation, error) {
	simulations := make([]simulation, games)
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(runtime.NumCPU())
	for i := range simulations {
		i := i
		g.Go(func() error {
			gameSeed := seed + int64(i)
			engine, err := tetris.NewEngine(config, tetris.WithSeed(gameSeed))
			if err != nil {
				return err
			}
			bot := play.NewBot(gameSeed)
			bot.Randomness = randomness
			result, err := bot.Play(ctx, engine, pieces)
			if err != nil {
				return err
			}
			simulations[i] = simulation{seed: gameSeed, result: result, over: engine.GameOver()}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return simulations, nil
}

func simulationRows(simulations []simulation) [][]string {
	data := make([][]string, 0, len(simulations))
	for i, simulation := range simulations {
		ended := "piece limit"
		if simulation.over {
			ended = "game over"
		}
		data = append(data, []string{
			strconv.Itoa(i + 1),
			strconv.FormatInt(simulation.seed, 10),
			humanize.Comma(int64(simulation.result.Score)),
			strconv.Itoa(simulation.result.Lines),
			strconv.Itoa(simulation.result.Pieces),
			ended,
		})
	}
	return data
}
