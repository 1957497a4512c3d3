package results

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWithParams(t *testing.T) {
	assert.Equal(t, "a.db?x=1", withParams("a.db", "x=1"))
	assert.Equal(t, "a.db?cache=shared&x=1", withParams("a.db?cache=shared", "x=1"))
}

func TestOpenFileWithQuery(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "results.db")

	db, err := Open(path + "?_foreign_keys=on")
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	require.NoError(t, Migrate(context.Background(), db))

	s := NewStore(db)
	require.NoError(t, s.Insert(context.Background(), Result{DealID: "d/0", Pairs: 2, Tries: 3}))
	n, err := s.Count(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 1, n)
	assert.FileExists(t, path)
}
