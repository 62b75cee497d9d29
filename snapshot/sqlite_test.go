package snapshot_test

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/katalvlaran/roadledger/core"
	"github.com/katalvlaran/roadledger/snapshot"
	"github.com/stretchr/testify/require"
)

func openSQLite(t *testing.T) *snapshot.SQLiteSink {
	t.Helper()
	s, err := snapshot.OpenSQLite(filepath.Join(t.TempDir(), "roads.db"), nil)
	require.NoError(t, err)
	t.Cleanup(func() { s.Close() })

	return s
}

func TestSQLiteSink_Seed(t *testing.T) {
	ctx := context.Background()
	s := openSQLite(t)

	require.NoError(t, s.Save(ctx, seededView(t)))

	cities, roads, err := s.Counts(ctx)
	require.NoError(t, err)
	require.Equal(t, 7, cities)
	require.Equal(t, 9, roads)

	stored, err := s.StoredRoads(ctx)
	require.NoError(t, err)
	require.Equal(t, snapshot.StoredRoad{Number: 1, Name: "Kigali-Muhanga", Budget: 28.6}, stored[0])
	require.Equal(t, snapshot.StoredRoad{Number: 9, Name: "Musanze-Rubavu", Budget: 33.7}, stored[8])
}

func TestSQLiteSink_ReplacesState(t *testing.T) {
	ctx := context.Background()
	s := openSQLite(t)

	g, err := core.NewSeededGraph()
	require.NoError(t, err)
	require.NoError(t, s.Save(ctx, g.View()))

	// swap two names; UNIQUE(name) must not trip across saves
	require.NoError(t, g.RenameCity("Kigali", "tmp"))
	require.NoError(t, g.RenameCity("Huye", "Kigali"))
	require.NoError(t, g.RenameCity("tmp", "Huye"))
	_, err = g.AddCity("Karongi")
	require.NoError(t, err)
	require.NoError(t, g.AddRoadWithBudget("Karongi", "Rubavu", 12))
	require.NoError(t, s.Save(ctx, g.View()))

	cities, roads, err := s.Counts(ctx)
	require.NoError(t, err)
	require.Equal(t, 8, cities)
	require.Equal(t, 10, roads)

	stored, err := s.StoredRoads(ctx)
	require.NoError(t, err)
	require.Equal(t, "Huye-Muhanga", stored[0].Name)
	require.Equal(t, "Rubavu-Karongi", stored[9].Name)
}

func TestSQLiteSink_WithMulti(t *testing.T) {
	ctx := context.Background()
	db := openSQLite(t)
	files, err := snapshot.NewFileSink(t.TempDir())
	require.NoError(t, err)

	require.NoError(t, snapshot.Multi(files, db).Save(ctx, seededView(t)))

	_, roads, err := db.Counts(ctx)
	require.NoError(t, err)
	require.Equal(t, 9, roads)
	require.FileExists(t, files.RoadsPath())
}
