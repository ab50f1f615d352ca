// Package scenario loads chase-simulation setups from YAML files.
//
// A scenario fixes the board size, the number of pursuers, the RNG seed and
// the tick budget, and may pin any of the starting positions:
//
//	name: corridor
//	rows: 5
//	columns: 9
//	seed: 42
//	max_ticks: 200
//	evader: [2, 0]
//	target: [2, 8]
//	pursuer_positions:
//	  - [0, 6]
//	  - [4, 6]
//
// Fields left out keep the values from Default.
package scenario

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/gridnav/gridgraph"
)

// ErrInvalid indicates a scenario that cannot be simulated.
var ErrInvalid = errors.New("scenario: invalid")

// Default board constants.
const (
	DefaultRows     = 24
	DefaultColumns  = 12
	DefaultPursuers = 5
	DefaultMaxTicks = 500
)

// Position is a [row, column] pair in YAML.
type Position struct {
	Row, Column int
}

// Cell converts p to a grid cell.
func (p Position) Cell() gridgraph.Cell {
	return gridgraph.Cell{Row: p.Row, Column: p.Column}
}

// UnmarshalYAML decodes a two-element sequence.
func (p *Position) UnmarshalYAML(value *yaml.Node) error {
	var pair []int
	if err := value.Decode(&pair); err != nil {
		return fmt.Errorf("line %d: position must be [row, column]: %w", value.Line, err)
	}
	if len(pair) != 2 {
		return fmt.Errorf("line %d: position must be [row, column], got %d values", value.Line, len(pair))
	}
	p.Row, p.Column = pair[0], pair[1]

	return nil
}

// MarshalYAML encodes p as a flow sequence.
func (p Position) MarshalYAML() (interface{}, error) {
	n := &yaml.Node{Kind: yaml.SequenceNode, Style: yaml.FlowStyle}
	for _, v := range []int{p.Row, p.Column} {
		n.Content = append(n.Content, &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!int", Value: fmt.Sprint(v)})
	}

	return n, nil
}

// Scenario describes one simulation setup.
type Scenario struct {
	Name     string `yaml:"name"`
	Rows     int    `yaml:"rows"`
	Columns  int    `yaml:"columns"`
	Pursuers int    `yaml:"pursuers"`
	Seed     int64  `yaml:"seed"`
	MaxTicks int    `yaml:"max_ticks"`

	Evader           *Position  `yaml:"evader,omitempty"`
	Target           *Position  `yaml:"target,omitempty"`
	PursuerPositions []Position `yaml:"pursuer_positions,omitempty"`
}

// Default returns the classic 24×12 board with five pursuers.
func Default() Scenario {
	return Scenario{
		Name:     "default",
		Rows:     DefaultRows,
		Columns:  DefaultColumns,
		Pursuers: DefaultPursuers,
		MaxTicks: DefaultMaxTicks,
	}
}

// Grid returns the scenario's board.
func (s Scenario) Grid() gridgraph.Grid {
	return gridgraph.Grid{Rows: s.Rows, Columns: s.Columns}
}

// Load reads and validates the scenario at path.
func Load(path string) (Scenario, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return Scenario{}, err
	}
	s, err := Parse(raw)
	if err != nil {
		return Scenario{}, fmt.Errorf("%s: %w", path, err)
	}

	return s, nil
}

// Parse decodes raw YAML over Default and validates the result.
// When pursuer_positions is given and pursuers is not, the count follows the list.
func Parse(raw []byte) (Scenario, error) {
	s := Default()
	explicit := struct {
		Pursuers *int `yaml:"pursuers"`
	}{}
	if err := yaml.Unmarshal(raw, &s); err != nil {
		return Scenario{}, fmt.Errorf("%w: %w", ErrInvalid, err)
	}
	if err := yaml.Unmarshal(raw, &explicit); err != nil {
		return Scenario{}, fmt.Errorf("%w: %w", ErrInvalid, err)
	}
	if explicit.Pursuers == nil && len(s.PursuerPositions) > 0 {
		s.Pursuers = len(s.PursuerPositions)
	}
	if err := s.Validate(); err != nil {
		return Scenario{}, err
	}

	return s, nil
}

// Validate checks the scenario, in order:
//  1. positive board dimensions,
//  2. non-negative pursuer count and positive tick budget,
//  3. pinned positions in bounds, consistent with the pursuer count,
//  4. evader and target on distinct cells.
func (s Scenario) Validate() error {
	g := s.Grid()
	if err := g.Validate(); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalid, err)
	}
	if s.Pursuers < 0 {
		return fmt.Errorf("%w: pursuers must be non-negative, got %d", ErrInvalid, s.Pursuers)
	}
	if s.MaxTicks <= 0 {
		return fmt.Errorf("%w: max_ticks must be positive, got %d", ErrInvalid, s.MaxTicks)
	}
	if g.Size() < 2 {
		return fmt.Errorf("%w: board needs at least two cells for evader and target", ErrInvalid)
	}
	if n := len(s.PursuerPositions); n > 0 && n != s.Pursuers {
		return fmt.Errorf("%w: %d pursuer_positions for %d pursuers", ErrInvalid, n, s.Pursuers)
	}
	for i, p := range s.PursuerPositions {
		if err := g.Check(p.Cell()); err != nil {
			return fmt.Errorf("%w: pursuer %d: %w", ErrInvalid, i, err)
		}
	}
	if s.Evader != nil {
		if err := g.Check(s.Evader.Cell()); err != nil {
			return fmt.Errorf("%w: evader: %w", ErrInvalid, err)
		}
	}
	if s.Target != nil {
		if err := g.Check(s.Target.Cell()); err != nil {
			return fmt.Errorf("%w: target: %w", ErrInvalid, err)
		}
	}
	if s.Evader != nil && s.Target != nil && *s.Evader == *s.Target {
		return fmt.Errorf("%w: evader and target share %s", ErrInvalid, s.Evader.Cell())
	}

	return nil
}

// Marshal encodes s as YAML.
func (s Scenario) Marshal() ([]byte, error) {
	return yaml.Marshal(s)
}
