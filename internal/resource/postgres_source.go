package resource

import (
	"bytes"
	"context"
	"errors"
	"io"

	"zoo-food-costs/internal/model"

	"github.com/jackc/pgx/v5"
	"github.com/rs/zerolog"
)

// Querier is the read access a Postgres source needs. It is satisfied by
// *pgxpool.Pool, *pgx.Conn and pgx.Tx.
type Querier interface {
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// postgresSource implements Source over the zoo_resources table:
//
//	CREATE TABLE zoo_resources (name TEXT PRIMARY KEY, content BYTEA NOT NULL)
type postgresSource struct {
	db     Querier
	logger zerolog.Logger
}

// NewPostgresSource creates a resource source backed by PostgreSQL.
func NewPostgresSource(db Querier, logger zerolog.Logger) Source {
	return &postgresSource{
		db:     db,
		logger: logger.With().Str("component", "postgres-source").Logger(),
	}
}

// Open reads the content stored under name.
func (s *postgresSource) Open(ctx context.Context, name string) (io.ReadCloser, error) {
	query := `
		SELECT content
		FROM zoo_resources
		WHERE name = $1
	`

	var content []byte
	err := s.db.QueryRow(ctx, query, name).Scan(&content)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			s.logger.Warn().Str("resource", name).Msg("resource not found in database")
			return nil, model.NotFoundError(name, err)
		}
		s.logger.Error().Err(err).Str("resource", name).Msg("failed to query resource")
		return nil, model.IOError(name, err)
	}

	return io.NopCloser(bytes.NewReader(content)), nil
}
