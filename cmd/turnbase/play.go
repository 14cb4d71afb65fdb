package main

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"turnbase/engine"
	"turnbase/game"
	"turnbase/searcher"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play a game interactively",
	Long: `Starts an interactive session on stdin. Enter one of the listed tokens to
move, "undo" to take the last choice back, "odds" to estimate each option's
winning chances, "quit" to leave.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		initial, err := newGame(cfg.Game)
		if err != nil {
			return err
		}
		sess := engine.NewSession(initial,
			engine.WithSink(newTermSink()),
			engine.WithLogger(logger),
		)
		est := searcher.New()

		scanner := bufio.NewScanner(os.Stdin)
		for {
			prompt(sess)
			if !scanner.Scan() {
				return scanner.Err()
			}
			token := strings.TrimSpace(scanner.Text())
			switch token {
			case "quit", "q":
				return nil
			case "undo":
				if !sess.Undo() {
					fmt.Println("nothing to undo")
				}
			case "odds":
				printOdds(cmd.Context(), est, sess)
			case "":
			default:
				if !sess.Submit(token) {
					fmt.Printf("ignored %q\n", token)
				}
			}
		}
	},
}

func init() {
	rootCmd.AddCommand(playCmd)
}

func prompt(sess *engine.Session) {
	if sess.Over() {
		if winner := sess.Winner(); winner != game.NoPlayer {
			fmt.Printf("game over, player %d wins (undo/quit)\n", winner)
		} else {
			fmt.Println("game over, no winner (undo/quit)")
		}
		fmt.Print("> ")
		return
	}
	if player := sess.ActivePlayer(); player != game.NoPlayer {
		fmt.Printf("player %d, options: %s\n", player, strings.Join(sess.Options(), " "))
	} else {
		fmt.Printf("options: %s\n", strings.Join(sess.Options(), " "))
	}
	fmt.Print("> ")
}

func printOdds(ctx context.Context, est *searcher.Searcher, sess *engine.Session) {
	perOption := cfg.Iterations / max(len(sess.Options()), 1)
	result, err := est.EstimateOptionOutcomes(ctx, sess, perOption)
	switch {
	case errors.Is(err, game.ErrNoActivePlayer):
		fmt.Println("no active player to estimate for")
		return
	case errors.Is(err, game.ErrNoSession):
		fmt.Println("no game to estimate")
		return
	case err != nil:
		fmt.Println("estimate aborted:", err)
		return
	}
	for _, option := range sess.Options() {
		fmt.Printf("  %s: %3.0f%% (%d/%d)\n", option,
			100*float64(result[option])/float64(perOption), result[option], perOption)
	}
}
