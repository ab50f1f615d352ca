package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/gridnav/replay"
	"github.com/katalvlaran/gridnav/scenario"
	"github.com/katalvlaran/gridnav/sim"
)

func (a *app) runSim(cmd *cobra.Command, args []string) error {
	dbPath, _ := cmd.Flags().GetString("db")
	render, _ := cmd.Flags().GetBool("render")

	sc := scenario.Default()
	if len(args) == 1 {
		var err error
		if sc, err = scenario.Load(args[0]); err != nil {
			return fail(cmd, err)
		}
	}
	if cmd.Flags().Changed("seed") {
		sc.Seed, _ = cmd.Flags().GetInt64("seed")
	}
	if cmd.Flags().Changed("max-ticks") {
		sc.MaxTicks, _ = cmd.Flags().GetInt("max-ticks")
	}

	opts := []sim.Option{sim.WithLogger(a.log)}
	if dbPath != "" {
		store, err := replay.OpenSQLite(dbPath)
		if err != nil {
			return fail(cmd, err)
		}
		defer store.Close()
		opts = append(opts, sim.WithRecorder(store))
	}

	g, err := sim.New(sc, opts...)
	if err != nil {
		return fail(cmd, err)
	}

	out := cmd.OutOrStdout()
	var status sim.Status
	if render {
		if err = g.Render(out); err != nil {
			return fail(cmd, err)
		}
		for !g.Status().Finished() {
			if err = cmd.Context().Err(); err != nil {
				return fail(cmd, err)
			}
			if _, err = g.Tick(); err != nil {
				return fail(cmd, err)
			}
			if err = g.Render(out); err != nil {
				return fail(cmd, err)
			}
		}
		status = g.Status()
	} else if status, err = g.Run(cmd.Context()); err != nil {
		return fail(cmd, err)
	}

	fmt.Fprintf(out, "game %s %s after %d ticks\n", g.ID(), status, g.Current().Tick)

	return nil
}
