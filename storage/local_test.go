package storage

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLocalStoreSaveAndDelete(t *testing.T) {
	store, err := NewLocalStore(t.TempDir())
	require.NoError(t, err)

	data := []byte{0x89, 'P', 'N', 'G', '\r', '\n', 0x1a, '\n'}
	path, err := store.Save(context.Background(), "avatar.png", data)
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(path, PublicPrefix+"/"))
	assert.True(t, strings.HasSuffix(path, ".png"))

	onDisk := filepath.Join(store.Dir, filepath.Base(path))
	written, err := os.ReadFile(onDisk)
	require.NoError(t, err)
	assert.Equal(t, data, written)

	require.NoError(t, store.Delete(context.Background(), path))
	_, err = os.Stat(onDisk)
	assert.True(t, os.IsNotExist(err))
}

func TestLocalStoreUniqueNames(t *testing.T) {
	store, err := NewLocalStore(t.TempDir())
	require.NoError(t, err)

	first, err := store.Save(context.Background(), "a.jpg", []byte("x"))
	require.NoError(t, err)
	second, err := store.Save(context.Background(), "a.jpg", []byte("y"))
	require.NoError(t, err)

	assert.NotEqual(t, first, second)
}

func TestLocalStoreDeleteMissingIsNoop(t *testing.T) {
	store, err := NewLocalStore(t.TempDir())
	require.NoError(t, err)

	assert.NoError(t, store.Delete(context.Background(), PublicPrefix+"/gone.png"))
}
