package main

import (
	"errors"
	"fmt"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/exp/rand"

	"turnbase/engine"
	"turnbase/game"
	"turnbase/searcher"
)

var oddsSeed uint64

var oddsCmd = &cobra.Command{
	Use:   "odds [token...]",
	Short: "Estimate outcomes from a position",
	Long: `Plays the given input tokens from the start of the game, then estimates
win counts by uniform-random rollouts: overall per player, and per legal
option for the active player.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		initial, err := newGame(cfg.Game)
		if err != nil {
			return err
		}
		sess := engine.NewSession(initial, engine.WithLogger(logger))
		for _, token := range args {
			if !sess.Submit(token) {
				return fmt.Errorf("token %q is not a legal input at this point", token)
			}
		}

		options := []searcher.Option{searcher.WithCollector(searcher.NewCollector())}
		if cmd.Flags().Changed("seed") {
			options = append(options, searcher.WithRand(rand.New(rand.NewSource(oddsSeed))))
		}
		est := searcher.New(options...)

		wins, err := est.EstimateOutcomes(cmd.Context(), sess, cfg.Iterations)
		if errors.Is(err, game.ErrNoSession) {
			return errors.New("the game is already over at this position")
		}
		if err != nil {
			return err
		}
		report := est.Report()
		fmt.Printf("%d rollouts in %s (%d without a winner)\n",
			report.Rollouts, report.Duration.Round(time.Millisecond), report.NoWinner)
		for player := 0; player < numPlayers(wins); player++ {
			fmt.Printf("  player %d: %d wins\n", player+1, wins[player+1])
		}

		perOption := cfg.Iterations / max(len(sess.Options()), 1)
		result, err := est.EstimateOptionOutcomes(cmd.Context(), sess, perOption)
		if errors.Is(err, game.ErrNoActivePlayer) {
			logger.Info().Msg("no active player, skipping per-option estimate")
			return nil
		}
		if err != nil {
			return err
		}
		fmt.Printf("per-option wins for player %d (of %d rollouts each):\n", sess.ActivePlayer(), perOption)
		for _, option := range sess.Options() {
			fmt.Printf("  %s: %d\n", option, result[option])
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(oddsCmd)
	oddsCmd.Flags().Uint64Var(&oddsSeed, "seed", 0, "fixed random seed for reproducible estimates")
}

// numPlayers infers how many players to print from the highest winning id.
func numPlayers(wins map[int]int) int {
	highest := 0
	for player := range wins {
		if player > highest {
			highest = player
		}
	}
	return highest
}
