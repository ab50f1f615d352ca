// Package replay stores simulated games and their ticks in SQLite so that
// runs can be listed and stepped through after the fact.
package replay

import (
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	_ "modernc.org/sqlite"

	"github.com/katalvlaran/gridnav/gridgraph"
	"github.com/katalvlaran/gridnav/sim"
)

// Sentinel errors for replay operations.
var (
	// ErrClosed indicates use of a Store after Close.
	ErrClosed = errors.New("replay: store closed")
	// ErrUnknownGame indicates a game id with no recorded game.
	ErrUnknownGame = errors.New("replay: unknown game")
)

// timeLayout keeps created_at fixed-width so it sorts as text.
const timeLayout = "2006-01-02T15:04:05.000000000Z"

// Store is a SQLite-backed sim.Recorder. It is safe for concurrent use.
type Store struct {
	db   *sql.DB
	mu   sync.Mutex
	once sync.Once
	now  func() time.Time
}

var _ sim.Recorder = (*Store)(nil)

// Game is one row of the games table plus its tick summary.
type Game struct {
	sim.Info
	CreatedAt time.Time
	Ticks     int
	Status    sim.Status
}

// Tick is one recorded state.
type Tick struct {
	State  sim.State
	Status sim.Status
}

// OpenSQLite opens (creating if needed) the database at path.
func OpenSQLite(path string) (*Store, error) {
	if path == "" {
		return nil, fmt.Errorf("replay: empty db path")
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, err
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, err
	}
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)
	db.SetConnMaxLifetime(0)

	if err := initPragmas(db); err != nil {
		_ = db.Close()
		return nil, err
	}
	if err := initSchema(db); err != nil {
		_ = db.Close()
		return nil, err
	}

	return &Store{db: db, now: time.Now}, nil
}

func initPragmas(db *sql.DB) error {
	pragmas := []string{
		"PRAGMA journal_mode=WAL;",
		"PRAGMA synchronous=NORMAL;",
		"PRAGMA foreign_keys=ON;",
		"PRAGMA busy_timeout=5000;",
		"PRAGMA temp_store=MEMORY;",
	}
	for _, p := range pragmas {
		if _, err := db.Exec(p); err != nil {
			return err
		}
	}
	return nil
}

func initSchema(db *sql.DB) error {
	stmts := []string{
		`CREATE TABLE IF NOT EXISTS games (
			id TEXT PRIMARY KEY,
			name TEXT NOT NULL,
			grid_rows INTEGER NOT NULL,
			grid_cols INTEGER NOT NULL,
			target_row INTEGER NOT NULL,
			target_col INTEGER NOT NULL,
			seed INTEGER NOT NULL,
			created_at TEXT NOT NULL
		);`,
		`CREATE TABLE IF NOT EXISTS ticks (
			game_id TEXT NOT NULL REFERENCES games(id) ON DELETE CASCADE,
			tick INTEGER NOT NULL,
			evader_row INTEGER NOT NULL,
			evader_col INTEGER NOT NULL,
			pursuers_json TEXT NOT NULL,
			route_json TEXT NOT NULL,
			status TEXT NOT NULL,
			PRIMARY KEY (game_id, tick)
		);`,
	}
	for _, s := range stmts {
		if _, err := db.Exec(s); err != nil {
			return err
		}
	}
	return nil
}

// Close releases the database. Further calls return ErrClosed.
func (s *Store) Close() error {
	err := ErrClosed
	s.once.Do(func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		err = s.db.Close()
		s.db = nil
	})
	return err
}

// handle returns the open db or ErrClosed. Callers hold s.mu.
func (s *Store) handle() (*sql.DB, error) {
	if s.db == nil {
		return nil, ErrClosed
	}
	return s.db, nil
}

// RecordGame inserts info into the games table.
func (s *Store) RecordGame(info sim.Info) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	db, err := s.handle()
	if err != nil {
		return err
	}

	_, err = db.Exec(
		`INSERT INTO games(id, name, grid_rows, grid_cols, target_row, target_col, seed, created_at)
		 VALUES(?, ?, ?, ?, ?, ?, ?, ?)`,
		info.ID, info.Name, info.Rows, info.Columns,
		info.Target.Row, info.Target.Column, info.Seed,
		s.now().UTC().Format(timeLayout),
	)
	if err != nil {
		return fmt.Errorf("replay: insert game %s: %w", info.ID, err)
	}
	return nil
}

// RecordTick inserts st for gameID. The game must have been recorded first.
func (s *Store) RecordTick(gameID string, st sim.State, status sim.Status) error {
	pursuers, err := encodeCells(st.Pursuers)
	if err != nil {
		return err
	}
	route, err := encodeCells(st.EvaderPath)
	if err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	db, err := s.handle()
	if err != nil {
		return err
	}

	_, err = db.Exec(
		`INSERT INTO ticks(game_id, tick, evader_row, evader_col, pursuers_json, route_json, status)
		 VALUES(?, ?, ?, ?, ?, ?, ?)`,
		gameID, st.Tick, st.Evader.Row, st.Evader.Column, pursuers, route, status.String(),
	)
	if err != nil {
		return fmt.Errorf("replay: insert tick %d of %s: %w", st.Tick, gameID, err)
	}
	return nil
}

// Games lists recorded games, oldest first, with their tick count and latest status.
func (s *Store) Games() ([]Game, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	db, err := s.handle()
	if err != nil {
		return nil, err
	}

	rows, err := db.Query(`
		SELECT g.id, g.name, g.grid_rows, g.grid_cols, g.target_row, g.target_col, g.seed, g.created_at,
		       COUNT(t.tick),
		       COALESCE((SELECT status FROM ticks WHERE game_id = g.id ORDER BY tick DESC LIMIT 1), '')
		FROM games g
		LEFT JOIN ticks t ON t.game_id = g.id
		GROUP BY g.id
		ORDER BY g.created_at, g.id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Game
	for rows.Next() {
		var (
			g       Game
			created string
			status  string
		)
		if err := rows.Scan(&g.ID, &g.Name, &g.Rows, &g.Columns, &g.Target.Row, &g.Target.Column,
			&g.Seed, &created, &g.Ticks, &status); err != nil {
			return nil, err
		}
		if g.CreatedAt, err = time.Parse(timeLayout, created); err != nil {
			return nil, fmt.Errorf("replay: game %s created_at: %w", g.ID, err)
		}
		if status != "" {
			if g.Status, err = sim.ParseStatus(status); err != nil {
				return nil, err
			}
		}
		out = append(out, g)
	}
	return out, rows.Err()
}

// Ticks returns the recorded states of gameID in tick order.
// Returns ErrUnknownGame if the game was never recorded.
func (s *Store) Ticks(gameID string) ([]Tick, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	db, err := s.handle()
	if err != nil {
		return nil, err
	}

	var n int
	if err := db.QueryRow(`SELECT COUNT(*) FROM games WHERE id = ?`, gameID).Scan(&n); err != nil {
		return nil, err
	}
	if n == 0 {
		return nil, fmt.Errorf("%w: %s", ErrUnknownGame, gameID)
	}

	rows, err := db.Query(`
		SELECT tick, evader_row, evader_col, pursuers_json, route_json, status
		FROM ticks WHERE game_id = ? ORDER BY tick`, gameID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Tick
	for rows.Next() {
		var (
			t                     Tick
			pursuers, route, stat string
		)
		if err := rows.Scan(&t.State.Tick, &t.State.Evader.Row, &t.State.Evader.Column,
			&pursuers, &route, &stat); err != nil {
			return nil, err
		}
		if t.State.Pursuers, err = decodeCells(pursuers); err != nil {
			return nil, err
		}
		if t.State.EvaderPath, err = decodeCells(route); err != nil {
			return nil, err
		}
		if t.Status, err = sim.ParseStatus(stat); err != nil {
			return nil, err
		}
		out = append(out, t)
	}
	return out, rows.Err()
}

// encodeCells stores cells as a JSON array of [row, column] pairs.
func encodeCells(cells []gridgraph.Cell) (string, error) {
	pairs := make([][2]int, len(cells))
	for i, c := range cells {
		pairs[i] = [2]int{c.Row, c.Column}
	}
	b, err := json.Marshal(pairs)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

func decodeCells(raw string) ([]gridgraph.Cell, error) {
	var pairs [][2]int
	if err := json.Unmarshal([]byte(raw), &pairs); err != nil {
		return nil, fmt.Errorf("replay: decode cells: %w", err)
	}
	if len(pairs) == 0 {
		return nil, nil
	}
	cells := make([]gridgraph.Cell, len(pairs))
	for i, p := range pairs {
		cells[i] = gridgraph.Cell{Row: p[0], Column: p[1]}
	}
	return cells, nil
}
