package local

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"immodok/internal/domain"
)

func TestStore_Roundtrip(t *testing.T) {
	store := NewStore(filepath.Join(t.TempDir(), "docs"))
	ctx := context.Background()

	require.NoError(t, store.Save(ctx, "deadbeef", []byte("%PDF-1.4 content")))

	data, err := store.Load(ctx, "deadbeef")
	require.NoError(t, err)
	assert.Equal(t, []byte("%PDF-1.4 content"), data)

	require.NoError(t, store.Delete(ctx, "deadbeef"))

	_, err = store.Load(ctx, "deadbeef")
	assert.ErrorIs(t, err, domain.ErrFileNotFound)
}

func TestStore_LoadMissing(t *testing.T) {
	store := NewStore(t.TempDir())

	_, err := store.Load(context.Background(), "nope")
	assert.ErrorIs(t, err, domain.ErrFileNotFound)
}

func TestStore_RejectsPathTraversal(t *testing.T) {
	store := NewStore(t.TempDir())
	ctx := context.Background()

	for _, id := range []string{"../secret", "a/b", ".hidden", ".."} {
		_, err := store.Load(ctx, id)
		assert.ErrorIs(t, err, domain.ErrFileNotFound, "id %q", id)

		err = store.Save(ctx, id, []byte("x"))
		assert.ErrorIs(t, err, domain.ErrFileNotFound, "id %q", id)
	}
}
