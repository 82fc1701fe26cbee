package stamp

import "context"

type Repository interface {
	Upsert(ctx context.Context, userID string, stamps []Stamp) error
	ListByUser(ctx context.Context, userID string) ([]Stamp, error)
	Delete(ctx context.Context, userID, isbn, childID string) error
}
