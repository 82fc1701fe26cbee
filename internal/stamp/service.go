package stamp

import (
	"context"
	"fmt"
	"strings"
	"time"

	"libfinder/internal/book"
)

type Service struct {
	repo Repository
	now  func() time.Time
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo, now: time.Now}
}

func (s *Service) List(ctx context.Context, userID string) ([]Stamp, error) {
	stamps, err := s.repo.ListByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("list stamps: %w", err)
	}
	if stamps == nil {
		stamps = []Stamp{}
	}
	return stamps, nil
}

// Sync upserts the client's stamps and returns the merged server list.
// The last write for a given (isbn, child) wins.
func (s *Service) Sync(ctx context.Context, userID string, stamps []Stamp) ([]Stamp, error) {
	if len(stamps) > maxSyncBatch {
		return nil, fmt.Errorf("%w: at most %d stamps per sync", ErrInvalidInput, maxSyncBatch)
	}

	// Within one batch the later entry for a key replaces the earlier one.
	byKey := make(map[string]int, len(stamps))
	batch := make([]Stamp, 0, len(stamps))
	for _, st := range stamps {
		st.ISBN = book.NormalizeISBN(st.ISBN)
		st.ChildID = strings.TrimSpace(st.ChildID)
		if st.ISBN == "" || strings.TrimSpace(st.Title) == "" {
			return nil, fmt.Errorf("%w: isbn and title are required", ErrInvalidInput)
		}
		if st.CreatedAt.IsZero() {
			st.CreatedAt = s.now().UTC()
		}
		key := st.ISBN + "\x00" + st.ChildID
		if i, ok := byKey[key]; ok {
			batch[i] = st
			continue
		}
		byKey[key] = len(batch)
		batch = append(batch, st)
	}

	if len(batch) > 0 {
		if err := s.repo.Upsert(ctx, userID, batch); err != nil {
			return nil, fmt.Errorf("sync stamps: %w", err)
		}
	}
	return s.List(ctx, userID)
}

func (s *Service) Delete(ctx context.Context, userID, isbn, childID string) error {
	isbn = book.NormalizeISBN(isbn)
	if isbn == "" {
		return fmt.Errorf("%w: isbn is required", ErrInvalidInput)
	}
	return s.repo.Delete(ctx, userID, isbn, strings.TrimSpace(childID))
}
