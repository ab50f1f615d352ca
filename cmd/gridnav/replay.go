package main

import (
	"fmt"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/gridnav/gridgraph"
	"github.com/katalvlaran/gridnav/replay"
	"github.com/katalvlaran/gridnav/sim"
)

func (a *app) runReplay(cmd *cobra.Command, args []string) error {
	dbPath, _ := cmd.Flags().GetString("db")
	render, _ := cmd.Flags().GetBool("render")

	store, err := replay.OpenSQLite(dbPath)
	if err != nil {
		return fail(cmd, err)
	}
	defer store.Close()

	games, err := store.Games()
	if err != nil {
		return fail(cmd, err)
	}
	out := cmd.OutOrStdout()

	if len(args) == 0 {
		tw := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
		fmt.Fprintln(tw, "ID\tNAME\tBOARD\tTICKS\tSTATUS\tCREATED")
		for _, g := range games {
			fmt.Fprintf(tw, "%s\t%s\t%dx%d\t%d\t%s\t%s\n",
				g.ID, g.Name, g.Rows, g.Columns, g.Ticks, g.Status, g.CreatedAt.Format(time.RFC3339))
		}
		return tw.Flush()
	}

	id := args[0]
	ticks, err := store.Ticks(id)
	if err != nil {
		return fail(cmd, err)
	}
	var info sim.Info
	for _, g := range games {
		if g.ID == id {
			info = g.Info
		}
	}
	a.log.Debug("replaying", "game", id, "ticks", len(ticks))

	grid := gridgraph.Grid{Rows: info.Rows, Columns: info.Columns}
	for _, t := range ticks {
		if render {
			if err := sim.RenderState(out, grid, info.Target, t.State, t.Status); err != nil {
				return fail(cmd, err)
			}
			continue
		}
		fmt.Fprintf(out, "%d\t%s\tevader %s\tpursuers %s\n",
			t.State.Tick, t.Status, t.State.Evader, cellList(t.State.Pursuers))
	}

	return nil
}

func cellList(cells []gridgraph.Cell) string {
	if len(cells) == 0 {
		return "-"
	}
	parts := make([]string, len(cells))
	for i, c := range cells {
		parts[i] = c.String()
	}
	return strings.Join(parts, " ")
}
