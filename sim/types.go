// Package sim is a headless chase simulation built on the dijkstra engine.
//
// One evader tries to reach a target cell while pursuers close in on it.
// Every tick the evader plans an Evader-mode route around the pursuers'
// zones and takes one step, then each pursuer plans a Pursuer-mode route to
// the evader's new cell and takes one step. The game is won when the evader
// reaches the target, lost when a pursuer lands on the evader, and stalled
// when the tick budget runs out.
//
// Rendering here is a plain-text dump for terminals and logs.
package sim

import (
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/google/uuid"

	"github.com/katalvlaran/gridnav/gridgraph"
)

// Sentinel errors for simulation operations.
var (
	// ErrFinished indicates Tick was called on a game that already ended.
	ErrFinished = errors.New("sim: game already finished")
	// ErrSpawn indicates the agents could not be placed on the board.
	ErrSpawn = errors.New("sim: cannot place agents")
)

// Status is the game's lifecycle state.
type Status int

const (
	// Idle: spawned, no tick yet.
	Idle Status = iota
	// Running: at least one tick played, no outcome yet.
	Running
	// Won: the evader reached the target.
	Won
	// Lost: a pursuer caught the evader.
	Lost
	// Stalled: the tick budget ran out.
	Stalled
)

// String returns the lower-case status name.
func (s Status) String() string {
	switch s {
	case Idle:
		return "idle"
	case Running:
		return "running"
	case Won:
		return "won"
	case Lost:
		return "lost"
	case Stalled:
		return "stalled"
	default:
		return fmt.Sprintf("status(%d)", int(s))
	}
}

// Finished reports whether no further ticks may be played.
func (s Status) Finished() bool {
	return s == Won || s == Lost || s == Stalled
}

// ParseStatus is the inverse of Status.String.
func ParseStatus(s string) (Status, error) {
	for st := Idle; st <= Stalled; st++ {
		if st.String() == s {
			return st, nil
		}
	}

	return 0, fmt.Errorf("sim: unknown status %q", s)
}

// State is the board after one tick.
type State struct {
	Tick     int
	Evader   gridgraph.Cell
	Pursuers []gridgraph.Cell
	// EvaderPath is the rest of the route the evader planned this tick,
	// after the step it took. Kept for display only.
	EvaderPath []gridgraph.Cell
}

// clone returns a deep copy of st.
func (st State) clone() State {
	out := st
	out.Pursuers = append([]gridgraph.Cell(nil), st.Pursuers...)
	out.EvaderPath = append([]gridgraph.Cell(nil), st.EvaderPath...)

	return out
}

// Info is the static description of a game.
type Info struct {
	ID      string
	Name    string
	Rows    int
	Columns int
	Target  gridgraph.Cell
	Seed    int64
}

// Recorder persists games and their ticks. replay.Store implements it.
type Recorder interface {
	RecordGame(info Info) error
	RecordTick(gameID string, st State, status Status) error
}

// Options configures a Game.
//
// Logger   – structured logger; defaults to a discarding handler.
// Recorder – optional sink for the game and every tick.
// ID       – game identifier; defaults to a random UUID.
type Options struct {
	Logger   *slog.Logger
	Recorder Recorder
	ID       uuid.UUID
}

// Option represents a functional option for configuring a Game.
type Option func(*Options)

// WithLogger sets the logger. A nil logger is ignored.
func WithLogger(l *slog.Logger) Option {
	return func(o *Options) {
		if l != nil {
			o.Logger = l
		}
	}
}

// WithRecorder attaches a Recorder.
func WithRecorder(r Recorder) Option {
	return func(o *Options) {
		o.Recorder = r
	}
}

// WithID fixes the game identifier.
func WithID(id uuid.UUID) Option {
	return func(o *Options) {
		o.ID = id
	}
}

// DefaultOptions returns Options with a discarding logger, no recorder and a fresh UUID.
func DefaultOptions() Options {
	return Options{
		Logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
		ID:     uuid.New(),
	}
}
