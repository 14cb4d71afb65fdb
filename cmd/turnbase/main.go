package main

import (
	"fmt"
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"turnbase/game"
	"turnbase/games/nimsum"
	"turnbase/games/tictactoe"
)

var (
	cfgFile string
	cfg     config
	logger  zerolog.Logger
)

var rootCmd = &cobra.Command{
	Use:           "turnbase",
	Short:         "Turn-based game engine with Monte Carlo move evaluation",
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		loaded, err := loadConfig(cfgFile)
		if err != nil {
			return err
		}
		// Flags win over the config file.
		if !cmd.Flags().Changed("game") {
			cfg.Game = loaded.Game
		}
		if !cmd.Flags().Changed("iterations") {
			cfg.Iterations = loaded.Iterations
		}
		if !cmd.Flags().Changed("verbose") {
			cfg.Verbose = loaded.Verbose
		}

		level := zerolog.InfoLevel
		if cfg.Verbose {
			level = zerolog.DebugLevel
		}
		logger = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).
			Level(level).
			With().Timestamp().Logger()
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default turnbase.yaml if present)")
	rootCmd.PersistentFlags().StringVar(&cfg.Game, "game", "tictactoe", "game to run (tictactoe or nimsum)")
	rootCmd.PersistentFlags().IntVar(&cfg.Iterations, "iterations", 2000, "rollouts per estimate")
	rootCmd.PersistentFlags().BoolVarP(&cfg.Verbose, "verbose", "v", false, "debug logging")
}

func newGame(name string) (game.State, error) {
	switch name {
	case "tictactoe":
		return tictactoe.NewGame(), nil
	case "nimsum":
		return nimsum.NewGame(), nil
	default:
		return nil, fmt.Errorf("unknown game %q", name)
	}
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}
