package family

import "context"

type Repository interface {
	ListByUser(ctx context.Context, userID string) ([]Member, error)
	Get(ctx context.Context, id string) (Member, error)
	Create(ctx context.Context, m *Member) error
	Delete(ctx context.Context, id string) error
}
