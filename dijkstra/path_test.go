package dijkstra_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/gridnav/dijkstra"
	"github.com/katalvlaran/gridnav/gridgraph"
)

func TestReconstruct_Errors(t *testing.T) {
	_, err := dijkstra.Reconstruct(nil, cell(0, 0), cell(1, 1))
	require.ErrorIs(t, err, dijkstra.ErrInvalidRequest)

	table, err := dijkstra.BuildTable(dijkstra.Request{Rows: 4, Columns: 4, Origin: cell(0, 0), Target: cell(3, 3)})
	require.NoError(t, err)

	// Target not part of the table.
	_, err = dijkstra.Reconstruct(table, cell(0, 0), cell(4, 4))
	require.ErrorIs(t, err, dijkstra.ErrInvalidRequest)

	// The chain from (3,3) ends at the table's origin (0,0), never at (1,0).
	_, err = dijkstra.Reconstruct(table, cell(1, 0), cell(3, 3))
	require.ErrorIs(t, err, dijkstra.ErrUnreachable)
}

func TestReconstruct_FromTable(t *testing.T) {
	req := dijkstra.Request{Rows: 6, Columns: 6, Origin: cell(5, 0), Target: cell(0, 5)}
	table, err := dijkstra.BuildTable(req)
	require.NoError(t, err)

	path, err := dijkstra.Reconstruct(table, req.Origin, req.Target)
	require.NoError(t, err)
	require.Equal(t, []gridgraph.Cell{cell(4, 1), cell(3, 2), cell(2, 3), cell(1, 4), cell(0, 5)}, path)

	// Any reached cell can be reconstructed from the same table.
	path, err = dijkstra.Reconstruct(table, req.Origin, cell(4, 1))
	require.NoError(t, err)
	require.Equal(t, []gridgraph.Cell{cell(4, 1)}, path)

	path, err = dijkstra.Reconstruct(table, req.Origin, req.Origin)
	require.NoError(t, err)
	require.Empty(t, path)
}
