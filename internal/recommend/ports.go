package recommend

import (
	"context"

	"libfinder/internal/family"
	"libfinder/internal/platform/data4library"
)

type PopularSource interface {
	PopularBooks(ctx context.Context, q data4library.PopularQuery) ([]data4library.PopularBook, error)
}

// MemberLookup resolves a family member owned by a user.
type MemberLookup interface {
	Get(ctx context.Context, userID, id string) (family.Member, error)
}
