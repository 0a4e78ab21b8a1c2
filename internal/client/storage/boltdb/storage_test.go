package boltdb

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.etcd.io/bbolt"
)

func TestNew_CreatesBuckets(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "client.db")

	store, err := New(context.Background(), dbPath)
	require.NoError(t, err)
	defer func() { require.NoError(t, store.Close()) }()

	err = store.db.View(func(tx *bbolt.Tx) error {
		assert.NotNil(t, tx.Bucket(bucketAuth))
		return nil
	})
	require.NoError(t, err)
}

func TestNew_InvalidPath(t *testing.T) {
	// Каталог вместо файла
	_, err := New(context.Background(), t.TempDir())
	assert.Error(t, err)
}

func TestClose_Idempotent(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "client.db")

	store, err := New(context.Background(), dbPath)
	require.NoError(t, err)

	require.NoError(t, store.Close())

	var empty Storage
	assert.NoError(t, empty.Close())
}
