package catalog

import (
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad(t *testing.T) {
	books, err := Load()
	require.NoError(t, err)
	require.Len(t, books, 10)

	// Каталог отсортирован по ISBN
	isSorted := sort.SliceIsSorted(books, func(i, j int) bool {
		return books[i].ISBN < books[j].ISBN
	})
	assert.True(t, isSorted)

	byISBN := make(map[string]string)
	for _, b := range books {
		assert.NotEmpty(t, b.ISBN)
		assert.NotEmpty(t, b.Title)
		assert.NotEmpty(t, b.Author)
		assert.NotNil(t, b.Reviews)
		assert.Empty(t, b.Reviews)
		byISBN[b.ISBN] = b.Title
	}

	assert.Equal(t, "Things Fall Apart", byISBN["1"])
	assert.Equal(t, "The Brothers Karamazov", byISBN["10"])
}
