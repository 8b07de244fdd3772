package resource

import (
	"context"
	"io"
	"os"
	"path/filepath"
	"testing"

	"zoo-food-costs/internal/model"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFileSource_Open_Success(t *testing.T) {
	source := NewFileSource(zerolog.Nop())

	filePath := filepath.Join(t.TempDir(), "prices.txt")
	require.NoError(t, os.WriteFile(filePath, []byte("Meat=12.56\nFruit=5.60\n"), 0644))

	rc, err := source.Open(context.Background(), filePath)
	require.NoError(t, err)
	defer rc.Close()

	content, err := io.ReadAll(rc)
	require.NoError(t, err)
	assert.Equal(t, "Meat=12.56\nFruit=5.60\n", string(content))
}

func TestFileSource_Open_NotFound(t *testing.T) {
	source := NewFileSource(zerolog.Nop())

	rc, err := source.Open(context.Background(), "/nonexistent/path/to/prices.txt")

	require.Error(t, err)
	assert.Nil(t, rc)
	assert.ErrorIs(t, err, model.ErrResourceNotFound)
	assert.NotErrorIs(t, err, model.ErrIO)
	assert.Contains(t, err.Error(), "/nonexistent/path/to/prices.txt")
}

func TestFileSource_Open_Directory(t *testing.T) {
	source := NewFileSource(zerolog.Nop())

	// Opening a directory succeeds on most platforms, reading from it fails.
	rc, err := source.Open(context.Background(), t.TempDir())
	if err != nil {
		assert.ErrorIs(t, err, model.ErrIO)
		return
	}
	defer rc.Close()

	_, err = io.ReadAll(rc)
	assert.Error(t, err)
}
