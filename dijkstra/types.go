// Package dijkstra defines core types and configuration options
// for threat-aware shortest paths on a bounded king-move grid.
//
// A Request names the grid, the origin and target cells, the navigation
// Mode and the current threat positions. Options carry the walker's own
// cell (for the exclusion escape hatch) and observation hooks.
//
// Errors (sentinel):
//
//	– ErrInvalidRequest if the grid is empty, a cell lies outside it,
//	                    the mode is unknown, or a table lookup fails.
//	– ErrUnreachable    if no route exists under the current exclusion rules.
package dijkstra

import (
	"errors"
	"fmt"
	"strings"

	"github.com/katalvlaran/gridnav/gridgraph"
)

// Sentinel errors returned by the grid engine.
var (
	// ErrInvalidRequest indicates malformed input: non-positive grid dimensions,
	// an origin, target, agent or threat outside the grid, an unknown Mode,
	// or a cell missing from a distance table during reconstruction.
	ErrInvalidRequest = errors.New("dijkstra: invalid request")

	// ErrUnreachable indicates that the target cannot be reached from the
	// origin under the exclusion rules of the requested Mode.
	ErrUnreachable = errors.New("dijkstra: target unreachable")
)

// Mode selects how a walker treats threats.
type Mode int

const (
	// Pursuer ignores threats entirely and heads straight for the target.
	// No exclusion filtering is applied, so the pursuer always keeps full
	// connectivity to close in.
	Pursuer Mode = iota

	// Evader keeps out of every threat's 3×3 zone (except its own cell and the
	// target) and pays a repulsion penalty that grows near threats.
	Evader
)

// String returns the lower-case mode name.
func (m Mode) String() string {
	switch m {
	case Pursuer:
		return "pursuer"
	case Evader:
		return "evader"
	default:
		return fmt.Sprintf("mode(%d)", int(m))
	}
}

// Valid reports whether m is one of the declared modes.
func (m Mode) Valid() bool {
	return m == Pursuer || m == Evader
}

// ParseMode converts "pursuer" or "evader" (case-insensitive) into a Mode.
func ParseMode(s string) (Mode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "pursuer":
		return Pursuer, nil
	case "evader":
		return Evader, nil
	default:
		return 0, fmt.Errorf("%w: unknown mode %q", ErrInvalidRequest, s)
	}
}

// Request is an immutable snapshot of one path query.
//
// Rows, Columns – grid dimensions, both > 0.
// Origin        – starting cell, must lie within the grid.
// Target        – destination cell, must lie within the grid.
// Mode          – Pursuer or Evader.
// Threats       – current threat positions (may be empty); must lie within the grid.
type Request struct {
	Rows, Columns int
	Origin        gridgraph.Cell
	Target        gridgraph.Cell
	Mode          Mode
	Threats       []gridgraph.Cell
}

// Grid returns the request's grid dimensions.
func (r Request) Grid() gridgraph.Grid {
	return gridgraph.Grid{Rows: r.Rows, Columns: r.Columns}
}

// validate checks every input against the grid, in order:
//  1. grid dimensions,
//  2. mode,
//  3. origin, target and agent cells,
//  4. each threat.
func (r Request) validate(o Options) (gridgraph.Grid, error) {
	g := r.Grid()
	if err := g.Validate(); err != nil {
		return g, fmt.Errorf("%w: %w", ErrInvalidRequest, err)
	}
	if !r.Mode.Valid() {
		return g, fmt.Errorf("%w: unknown %s", ErrInvalidRequest, r.Mode)
	}
	if err := g.Check(r.Origin); err != nil {
		return g, fmt.Errorf("%w: origin: %w", ErrInvalidRequest, err)
	}
	if err := g.Check(r.Target); err != nil {
		return g, fmt.Errorf("%w: target: %w", ErrInvalidRequest, err)
	}
	if o.agentSet {
		if err := g.Check(o.Agent); err != nil {
			return g, fmt.Errorf("%w: agent: %w", ErrInvalidRequest, err)
		}
	}
	for i, t := range r.Threats {
		if err := g.Check(t); err != nil {
			return g, fmt.Errorf("%w: threat %d: %w", ErrInvalidRequest, i, err)
		}
	}

	return g, nil
}

// Options configures a single engine run.
//
// Agent    – the walker's current cell, enterable in Evader mode even inside
// a threat zone; defaults to Origin.
// OnSettle – called once per cell when its distance becomes final.
// OnRelax  – called each time a cell's tentative distance improves.
type Options struct {
	Agent    gridgraph.Cell
	OnSettle func(c gridgraph.Cell, cost int64)
	OnRelax  func(from, to gridgraph.Cell, cost int64)

	agentSet bool
}

// Option represents a functional option for configuring a run.
type Option func(*Options)

// WithAgent sets the walker's current cell for the Evader escape hatch.
// Without it the origin is used.
func WithAgent(c gridgraph.Cell) Option {
	return func(o *Options) {
		o.Agent = c
		o.agentSet = true
	}
}

// WithOnSettle registers a callback run when a cell is extracted from the frontier.
func WithOnSettle(fn func(c gridgraph.Cell, cost int64)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnSettle = fn
		}
	}
}

// WithOnRelax registers a callback run when a cell's recorded cost improves.
func WithOnRelax(fn func(from, to gridgraph.Cell, cost int64)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnRelax = fn
		}
	}
}

// DefaultOptions returns Options with no-op hooks and no explicit agent.
func DefaultOptions() Options {
	return Options{
		OnSettle: func(gridgraph.Cell, int64) {},
		OnRelax:  func(gridgraph.Cell, gridgraph.Cell, int64) {},
	}
}

// buildOptions applies opts over DefaultOptions.
func buildOptions(opts []Option) Options {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}

// agent resolves the walker's cell: the explicit agent, or the origin.
func (o Options) agent(r Request) gridgraph.Cell {
	if o.agentSet {
		return o.Agent
	}

	return r.Origin
}
