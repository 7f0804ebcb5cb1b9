package congregation

import (
	"context"
	"time"
)

type Repository interface {
	ListMembers(ctx context.Context, organizationID string, limit, offset int) ([]Member, error)
	CountMembers(ctx context.Context, organizationID string) (int64, error)
	ListEvents(ctx context.Context, organizationID string, from, to time.Time) ([]Event, error)
	Summary(ctx context.Context, organizationID string) (*Summary, error)
}
