package sim

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/katalvlaran/gridnav/dijkstra"
	"github.com/katalvlaran/gridnav/gridgraph"
	"github.com/katalvlaran/gridnav/scenario"
)

// Game is one chase on a fixed board. A Game is not safe for concurrent use.
type Game struct {
	info     Info
	grid     gridgraph.Grid
	maxTicks int
	status   Status
	history  []State
	log      *slog.Logger
	rec      Recorder
}

// New validates sc, places the agents and returns an Idle game whose history
// holds the spawn state at tick 0. If a Recorder is attached, the game and
// its spawn state are recorded before New returns.
func New(sc scenario.Scenario, opts ...Option) (*Game, error) {
	if err := sc.Validate(); err != nil {
		return nil, err
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	p, err := spawn(sc, rngFromSeed(sc.Seed))
	if err != nil {
		return nil, err
	}

	g := &Game{
		info: Info{
			ID:      o.ID.String(),
			Name:    sc.Name,
			Rows:    sc.Rows,
			Columns: sc.Columns,
			Target:  p.target,
			Seed:    sc.Seed,
		},
		grid:     sc.Grid(),
		maxTicks: sc.MaxTicks,
		status:   Idle,
		log:      o.Logger.With("game", o.ID.String()),
		rec:      o.Recorder,
	}
	first := State{Evader: p.evader, Pursuers: p.pursuers}
	g.history = append(g.history, first)

	if g.rec != nil {
		if err = g.rec.RecordGame(g.info); err != nil {
			return nil, fmt.Errorf("sim: record game: %w", err)
		}
		if err = g.rec.RecordTick(g.info.ID, first.clone(), g.status); err != nil {
			return nil, fmt.Errorf("sim: record spawn: %w", err)
		}
	}
	g.log.Info("game spawned",
		slog.String("scenario", sc.Name),
		slog.Int("rows", sc.Rows),
		slog.Int("columns", sc.Columns),
		slog.String("evader", p.evader.String()),
		slog.String("target", p.target.String()),
		slog.Int("pursuers", len(p.pursuers)),
	)

	return g, nil
}

// ID returns the game identifier.
func (g *Game) ID() string { return g.info.ID }

// Info returns the static description of the game.
func (g *Game) Info() Info { return g.info }

// Target returns the evader's goal cell.
func (g *Game) Target() gridgraph.Cell { return g.info.Target }

// Grid returns the board.
func (g *Game) Grid() gridgraph.Grid { return g.grid }

// Status returns the lifecycle state.
func (g *Game) Status() Status { return g.status }

// Current returns a copy of the latest state.
func (g *Game) Current() State {
	return g.history[len(g.history)-1].clone()
}

// History returns copies of every state, spawn first.
func (g *Game) History() []State {
	out := make([]State, len(g.history))
	for i, st := range g.history {
		out[i] = st.clone()
	}

	return out
}

// Tick plays one step and returns the new state.
//
// Steps:
//  1. The evader routes to the target around the pursuers' zones and takes
//     one step; with no route it holds its cell.
//  2. Evader on target ⇒ Won; pursuers do not move.
//  3. Each pursuer routes straight to the evader's new cell and takes one step.
//  4. Any pursuer on the evader ⇒ Lost.
//  5. Still running at the tick budget ⇒ Stalled.
//
// Returns ErrFinished once the game has ended. Engine errors other than
// dijkstra.ErrUnreachable abort the tick and leave the game unchanged.
func (g *Game) Tick() (State, error) {
	if g.status.Finished() {
		return State{}, fmt.Errorf("%w: %s", ErrFinished, g.status)
	}

	cur := g.history[len(g.history)-1]
	next := State{
		Tick:     cur.Tick + 1,
		Evader:   cur.Evader,
		Pursuers: append([]gridgraph.Cell(nil), cur.Pursuers...),
	}
	status := Running

	// A pinned spawn may already put a pursuer on the evader.
	if caught(cur.Evader, cur.Pursuers) {
		status = Lost
	} else {
		// 1) Evader step.
		step, rest, err := g.step(dijkstra.Request{
			Rows:    g.grid.Rows,
			Columns: g.grid.Columns,
			Origin:  cur.Evader,
			Target:  g.info.Target,
			Mode:    dijkstra.Evader,
			Threats: cur.Pursuers,
		}, dijkstra.WithAgent(cur.Evader))
		if err != nil {
			return State{}, err
		}
		next.Evader, next.EvaderPath = step, rest

		// 2) Goal check.
		if next.Evader == g.info.Target {
			status = Won
		} else {
			// 3) Pursuer steps.
			for i, p := range cur.Pursuers {
				step, _, err = g.step(dijkstra.Request{
					Rows:    g.grid.Rows,
					Columns: g.grid.Columns,
					Origin:  p,
					Target:  next.Evader,
					Mode:    dijkstra.Pursuer,
				})
				if err != nil {
					return State{}, err
				}
				next.Pursuers[i] = step
			}
			// 4) Capture check.
			if caught(next.Evader, next.Pursuers) {
				status = Lost
			}
		}
	}

	// 5) Budget.
	if status == Running && next.Tick >= g.maxTicks {
		status = Stalled
	}

	if g.rec != nil {
		if err := g.rec.RecordTick(g.info.ID, next.clone(), status); err != nil {
			return State{}, fmt.Errorf("sim: record tick %d: %w", next.Tick, err)
		}
	}
	g.history = append(g.history, next)
	g.status = status

	g.log.Debug("tick",
		slog.Int("tick", next.Tick),
		slog.String("evader", next.Evader.String()),
		slog.Int("route", len(next.EvaderPath)),
		slog.String("status", status.String()),
	)
	if status.Finished() {
		g.log.Info("game finished",
			slog.String("status", status.String()),
			slog.Int("ticks", next.Tick),
		)
	}

	return next.clone(), nil
}

// step plans req and returns the first cell of the route plus the rest.
// An unreachable target yields req.Origin so the agent holds its cell.
func (g *Game) step(req dijkstra.Request, opts ...dijkstra.Option) (gridgraph.Cell, []gridgraph.Cell, error) {
	path, err := dijkstra.ShortestPath(req, opts...)
	switch {
	case errors.Is(err, dijkstra.ErrUnreachable):
		g.log.Debug("no route, holding",
			slog.String("mode", req.Mode.String()),
			slog.String("at", req.Origin.String()),
		)
		return req.Origin, nil, nil
	case err != nil:
		return gridgraph.Cell{}, nil, fmt.Errorf("sim: plan %s route from %s: %w", req.Mode, req.Origin, err)
	case len(path) == 0:
		return req.Origin, nil, nil
	}

	return path[0], path[1:], nil
}

// Run ticks until the game finishes or ctx is done. It returns the final
// status, or the status so far together with ctx.Err() or a tick error.
func (g *Game) Run(ctx context.Context) (Status, error) {
	for !g.status.Finished() {
		if err := ctx.Err(); err != nil {
			return g.status, err
		}
		if _, err := g.Tick(); err != nil {
			return g.status, err
		}
	}

	return g.status, nil
}

// caught reports whether any pursuer stands on evader.
func caught(evader gridgraph.Cell, pursuers []gridgraph.Cell) bool {
	for _, p := range pursuers {
		if p == evader {
			return true
		}
	}

	return false
}
