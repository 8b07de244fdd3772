package resource

import (
	"context"
	"io"
)

// Source opens named backing resources (price list, diet table, census).
type Source interface {
	// Open returns a reader over the resource content. The caller closes it.
	// A missing resource yields an error matching model.ErrResourceNotFound;
	// any other access failure matches model.ErrIO.
	Open(ctx context.Context, name string) (io.ReadCloser, error)
}
