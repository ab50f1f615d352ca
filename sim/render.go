package sim

import (
	"fmt"
	"io"
	"strings"

	"github.com/katalvlaran/gridnav/gridgraph"
)

// Glyphs used by Render, highest precedence first.
const (
	glyphEvader  = 'E'
	glyphPursuer = 'P'
	glyphTarget  = 'T'
	glyphRoute   = '*'
	glyphEmpty   = '.'
)

// Render writes the latest state with RenderState.
func (g *Game) Render(w io.Writer) error {
	return RenderState(w, g.grid, g.info.Target, g.history[len(g.history)-1], g.status)
}

// RenderState writes st as a text grid, one row per line, preceded by a
// header line with the tick and status. Cells shared by several agents show
// the highest-precedence glyph: evader, pursuer, target, route.
// Cells outside grid are skipped.
func RenderState(w io.Writer, grid gridgraph.Grid, target gridgraph.Cell, st State, status Status) error {
	if err := grid.Validate(); err != nil {
		return err
	}
	rows, cols := grid.Rows, grid.Columns

	board := make([][]byte, rows)
	for r := range board {
		board[r] = []byte(strings.Repeat(string(glyphEmpty), cols))
	}
	put := func(c gridgraph.Cell, glyph byte) {
		if grid.InBounds(c) {
			board[c.Row][c.Column] = glyph
		}
	}
	for _, c := range st.EvaderPath {
		put(c, glyphRoute)
	}
	put(target, glyphTarget)
	for _, p := range st.Pursuers {
		put(p, glyphPursuer)
	}
	put(st.Evader, glyphEvader)

	var sb strings.Builder
	fmt.Fprintf(&sb, "tick %d %s\n", st.Tick, status)
	for _, line := range board {
		sb.Write(line)
		sb.WriteByte('\n')
	}
	_, err := io.WriteString(w, sb.String())

	return err
}
