package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/gridnav/dijkstra"
	"github.com/katalvlaran/gridnav/gridgraph"
)

func (a *app) runPath(cmd *cobra.Command, _ []string) error {
	rows, _ := cmd.Flags().GetInt("rows")
	columns, _ := cmd.Flags().GetInt("columns")
	fromRaw, _ := cmd.Flags().GetString("from")
	toRaw, _ := cmd.Flags().GetString("to")
	modeRaw, _ := cmd.Flags().GetString("mode")
	threatsRaw, _ := cmd.Flags().GetStringArray("threat")
	withCost, _ := cmd.Flags().GetBool("cost")

	from, err := parseCell(fromRaw)
	if err != nil {
		return fail(cmd, fmt.Errorf("--from: %w", err))
	}
	to, err := parseCell(toRaw)
	if err != nil {
		return fail(cmd, fmt.Errorf("--to: %w", err))
	}
	mode, err := dijkstra.ParseMode(modeRaw)
	if err != nil {
		return fail(cmd, err)
	}
	threats := make([]gridgraph.Cell, 0, len(threatsRaw))
	for _, raw := range threatsRaw {
		c, err := parseCell(raw)
		if err != nil {
			return fail(cmd, fmt.Errorf("--threat: %w", err))
		}
		threats = append(threats, c)
	}

	req := dijkstra.Request{
		Rows:    rows,
		Columns: columns,
		Origin:  from,
		Target:  to,
		Mode:    mode,
		Threats: threats,
	}
	a.log.Debug("planning route",
		"mode", mode.String(),
		"from", from.String(),
		"to", to.String(),
		"threats", len(threats),
	)

	path, err := dijkstra.ShortestPath(req)
	if err != nil {
		return fail(cmd, err)
	}

	out := cmd.OutOrStdout()
	if len(path) == 0 {
		fmt.Fprintln(out, "already at target")
	} else {
		parts := make([]string, len(path))
		for i, c := range path {
			parts[i] = c.String()
		}
		fmt.Fprintln(out, strings.Join(parts, " "))
	}
	if withCost {
		t, err := dijkstra.BuildTable(req)
		if err != nil {
			return fail(cmd, err)
		}
		cost, _ := t.Cost(to)
		fmt.Fprintf(out, "cost %d\n", cost)
	}

	return nil
}

// parseCell reads "row,col".
func parseCell(raw string) (gridgraph.Cell, error) {
	r, c, ok := strings.Cut(strings.TrimSpace(raw), ",")
	if !ok {
		return gridgraph.Cell{}, fmt.Errorf("cell %q: want row,col", raw)
	}
	row, err := strconv.Atoi(strings.TrimSpace(r))
	if err != nil {
		return gridgraph.Cell{}, fmt.Errorf("cell %q: row: %w", raw, err)
	}
	col, err := strconv.Atoi(strings.TrimSpace(c))
	if err != nil {
		return gridgraph.Cell{}, fmt.Errorf("cell %q: column: %w", raw, err)
	}

	return gridgraph.Cell{Row: row, Column: col}, nil
}
