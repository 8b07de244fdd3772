package resource

import (
	"context"
	"errors"
	"io"
	"io/fs"
	"os"

	"zoo-food-costs/internal/model"

	"github.com/rs/zerolog"
)

// fileSource implements Source on the local file system.
type fileSource struct {
	logger zerolog.Logger
}

// NewFileSource creates a new file-based resource source.
func NewFileSource(logger zerolog.Logger) Source {
	return &fileSource{
		logger: logger.With().Str("component", "file-source").Logger(),
	}
}

// Open opens the file at path.
func (s *fileSource) Open(ctx context.Context, path string) (io.ReadCloser, error) {
	s.logger.Debug().Str("file", path).Msg("opening resource file")

	file, err := os.Open(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			s.logger.Warn().Str("file", path).Msg("resource file not found")
			return nil, model.NotFoundError(path, err)
		}
		s.logger.Error().Err(err).Str("file", path).Msg("failed to open resource file")
		return nil, model.IOError(path, err)
	}

	return file, nil
}
