// Command gridnav plans grid routes and runs chase simulations.
//
//	gridnav path --rows 8 --columns 8 --from 0,0 --to 7,7 --mode evader --threat 4,4
//	gridnav run scenarios/corridor.yaml --db runs.sqlite --render
//	gridnav replay --db runs.sqlite [game-id]
package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
)

var version = "0.1.0-dev"

// app carries state shared by the subcommands.
type app struct {
	logLevel  string
	logFormat string
	log       *slog.Logger
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		stop()
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	a := &app{}

	rootCmd := &cobra.Command{
		Use:   "gridnav",
		Short: "Plan king-move routes on a grid and run chase simulations",
		Long: `gridnav computes shortest king-move routes on rectangular grids.

Pursuers head straight for their target. Evaders route around the 3x3
zone of every threat and are repelled by the nearest one.`,
		Version:      version,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			l, err := newLogger(cmd.ErrOrStderr(), a.logLevel, a.logFormat)
			if err != nil {
				return err
			}
			a.log = l
			return nil
		},
	}
	rootCmd.PersistentFlags().StringVar(&a.logLevel, "log-level", "info", "Log level: debug|info|warn|error")
	rootCmd.PersistentFlags().StringVar(&a.logFormat, "log-format", "text", "Log format: text|json")

	// Path command - one shortest-path query
	pathCmd := &cobra.Command{
		Use:   "path",
		Short: "Print the shortest route between two cells",
		Args:  cobra.NoArgs,
		RunE:  a.runPath,
	}
	pathCmd.Flags().Int("rows", 8, "Grid rows")
	pathCmd.Flags().Int("columns", 8, "Grid columns")
	pathCmd.Flags().String("from", "", "Origin cell as row,col")
	pathCmd.Flags().String("to", "", "Target cell as row,col")
	pathCmd.Flags().String("mode", "pursuer", "Routing mode: pursuer|evader")
	pathCmd.Flags().StringArray("threat", nil, "Threat cell as row,col (repeatable)")
	pathCmd.Flags().Bool("cost", false, "Also print the accumulated cost of the target")
	_ = pathCmd.MarkFlagRequired("from")
	_ = pathCmd.MarkFlagRequired("to")

	// Run command - simulate one game
	runCmd := &cobra.Command{
		Use:   "run [scenario.yaml]",
		Short: "Simulate a chase from a scenario file (or the default board)",
		Args:  cobra.MaximumNArgs(1),
		RunE:  a.runSim,
	}
	runCmd.Flags().String("db", "", "Record the game to this SQLite file")
	runCmd.Flags().Bool("render", false, "Print the board after every tick")
	runCmd.Flags().Int64("seed", 0, "Override the scenario seed")
	runCmd.Flags().Int("max-ticks", 0, "Override the scenario tick budget")

	// Replay command - inspect recorded games
	replayCmd := &cobra.Command{
		Use:   "replay [game-id]",
		Short: "List recorded games or print the ticks of one",
		Args:  cobra.MaximumNArgs(1),
		RunE:  a.runReplay,
	}
	replayCmd.Flags().String("db", "", "SQLite file written by run --db")
	replayCmd.Flags().Bool("render", false, "Print the board for every tick")
	_ = replayCmd.MarkFlagRequired("db")

	rootCmd.AddCommand(pathCmd, runCmd, replayCmd)

	return rootCmd
}

// fail wraps err with the command name for the final error line.
func fail(cmd *cobra.Command, err error) error {
	return fmt.Errorf("%s: %w", cmd.Name(), err)
}
