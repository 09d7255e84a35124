package cache

import (
	"context"

	"bizreview/internal/model"
)

// BusinessCache is a read-through cache for single business lookups.
// Implementations are safe for concurrent use. A miss is (nil, false, nil).
type BusinessCache interface {
	Get(ctx context.Context, id int64) (*model.Business, bool, error)
	Set(ctx context.Context, b *model.Business) error
	Delete(ctx context.Context, id int64) error
}

// Noop never stores anything. It is used when no cache is configured.
type Noop struct{}

var _ BusinessCache = Noop{}

func (Noop) Get(context.Context, int64) (*model.Business, bool, error) { return nil, false, nil }
func (Noop) Set(context.Context, *model.Business) error                { return nil }
func (Noop) Delete(context.Context, int64) error                       { return nil }
