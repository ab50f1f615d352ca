package replay

import (
	"context"
	"database/sql"
	"path/filepath"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/gridnav/gridgraph"
	"github.com/katalvlaran/gridnav/scenario"
	"github.com/katalvlaran/gridnav/sim"
)

func openTestStore(t *testing.T) (*Store, string) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "nested", "replay.sqlite")
	s, err := OpenSQLite(path)
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Close() })

	base := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	calls := 0
	s.now = func() time.Time {
		calls++
		return base.Add(time.Duration(calls) * time.Second)
	}
	return s, path
}

func corridor() scenario.Scenario {
	return scenario.Scenario{
		Name:     "corridor",
		Rows:     3,
		Columns:  5,
		Seed:     9,
		MaxTicks: 10,
		Evader:   &scenario.Position{Row: 1, Column: 0},
		Target:   &scenario.Position{Row: 1, Column: 4},
	}
}

func TestOpenSQLite_EmptyPath(t *testing.T) {
	_, err := OpenSQLite("")
	require.Error(t, err)
}

func TestStore_RecordsSimulatedGame(t *testing.T) {
	s, path := openTestStore(t)

	id := uuid.New()
	g, err := sim.New(corridor(), sim.WithRecorder(s), sim.WithID(id))
	require.NoError(t, err)
	status, err := g.Run(context.Background())
	require.NoError(t, err)
	require.Equal(t, sim.Won, status)

	games, err := s.Games()
	require.NoError(t, err)
	require.Len(t, games, 1)
	got := games[0]
	assert.Equal(t, id.String(), got.ID)
	assert.Equal(t, "corridor", got.Name)
	assert.Equal(t, 3, got.Rows)
	assert.Equal(t, 5, got.Columns)
	assert.Equal(t, gridgraph.Cell{Row: 1, Column: 4}, got.Target)
	assert.Equal(t, int64(9), got.Seed)
	assert.Equal(t, 5, got.Ticks)
	assert.Equal(t, sim.Won, got.Status)
	assert.Equal(t, time.Date(2024, 5, 1, 12, 0, 1, 0, time.UTC), got.CreatedAt)

	ticks, err := s.Ticks(id.String())
	require.NoError(t, err)
	history := g.History()
	require.Len(t, ticks, len(history))
	for i, tk := range ticks {
		assert.Equal(t, history[i], tk.State, "tick %d", i)
	}
	assert.Equal(t, sim.Idle, ticks[0].Status)
	assert.Equal(t, sim.Running, ticks[1].Status)
	assert.Equal(t, sim.Won, ticks[len(ticks)-1].Status)

	// Re-open and query the raw table.
	db, err := sql.Open("sqlite", path)
	require.NoError(t, err)
	defer db.Close()
	var route string
	require.NoError(t, db.QueryRow(`SELECT route_json FROM ticks WHERE game_id = ? AND tick = 1`, id.String()).Scan(&route))
	assert.Equal(t, "[[1,2],[1,3],[1,4]]", route)
}

func TestStore_GamesOrderedByCreation(t *testing.T) {
	s, _ := openTestStore(t)

	ids := []string{"b-game", "a-game", "c-game"}
	for _, id := range ids {
		require.NoError(t, s.RecordGame(sim.Info{ID: id, Name: id, Rows: 2, Columns: 2}))
	}
	require.NoError(t, s.RecordTick("a-game", sim.State{Tick: 0}, sim.Idle))
	require.NoError(t, s.RecordTick("a-game", sim.State{Tick: 1}, sim.Lost))

	games, err := s.Games()
	require.NoError(t, err)
	require.Len(t, games, 3)
	for i, id := range ids {
		assert.Equal(t, id, games[i].ID)
	}
	assert.Equal(t, 0, games[0].Ticks)
	assert.Equal(t, sim.Idle, games[0].Status)
	assert.Equal(t, 2, games[1].Ticks)
	assert.Equal(t, sim.Lost, games[1].Status)
}

func TestStore_Errors(t *testing.T) {
	s, _ := openTestStore(t)

	_, err := s.Ticks("missing")
	assert.ErrorIs(t, err, ErrUnknownGame)

	// Foreign key: ticks need their game.
	assert.Error(t, s.RecordTick("missing", sim.State{}, sim.Idle))

	info := sim.Info{ID: "dup", Rows: 1, Columns: 2}
	require.NoError(t, s.RecordGame(info))
	assert.Error(t, s.RecordGame(info))

	require.NoError(t, s.RecordTick("dup", sim.State{Tick: 0}, sim.Idle))
	assert.Error(t, s.RecordTick("dup", sim.State{Tick: 0}, sim.Idle))

	require.NoError(t, s.Close())
	assert.ErrorIs(t, s.Close(), ErrClosed)
	assert.ErrorIs(t, s.RecordGame(sim.Info{ID: "late"}), ErrClosed)
	_, err = s.Games()
	assert.ErrorIs(t, err, ErrClosed)
}

func TestCellsCodec(t *testing.T) {
	raw, err := encodeCells(nil)
	require.NoError(t, err)
	assert.Equal(t, "[]", raw)
	cells, err := decodeCells(raw)
	require.NoError(t, err)
	assert.Nil(t, cells)

	_, err = decodeCells("{")
	assert.Error(t, err)
}
