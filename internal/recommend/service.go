package recommend

import (
	"context"
	"fmt"
	"time"

	"libfinder/internal/book"
	"libfinder/internal/cache"
	"libfinder/internal/platform/data4library"
)

const dateLayout = "2006-01-02"

type Service struct {
	popular   PopularSource
	members   MemberLookup
	snapshots cache.Store
	now       func() time.Time
}

func NewService(popular PopularSource, members MemberLookup, snapshots cache.Store) *Service {
	return &Service{popular: popular, members: members, snapshots: snapshots, now: time.Now}
}

// ForAge returns up to size popular books for the age group of age,
// ranked by loans over the last 90 days.
func (s *Service) ForAge(ctx context.Context, age, size int) (Result, error) {
	group, ok := GroupFor(age)
	if !ok || age > 120 {
		return Result{}, fmt.Errorf("%w: age must be between 0 and 120", ErrInvalidInput)
	}
	if size <= 0 || size > maxSize {
		size = defaultSize
	}

	end := s.now()
	period := Period{
		Start: end.AddDate(0, 0, -lookbackDays).Format(dateLayout),
		End:   end.Format(dateLayout),
	}

	key := "popular:" + group.Code + ":" + period.End
	books, err := cache.Fetch(ctx, s.snapshots, key, cache.PopularTTL, func(ctx context.Context) ([]book.Book, error) {
		popular, err := s.popular.PopularBooks(ctx, data4library.PopularQuery{
			StartDate: period.Start,
			EndDate:   period.End,
			Age:       group.Code,
			PageSize:  snapshotSize,
		})
		if err != nil {
			return nil, fmt.Errorf("popular books for age %s: %w", group.Code, err)
		}
		return toBooks(popular), nil
	})
	if err != nil {
		return Result{}, err
	}

	if len(books) > size {
		books = books[:size]
	}
	return Result{AgeGroup: group, Period: period, Books: books}, nil
}

// ForChild recommends for a family member of userID, using their birth year.
func (s *Service) ForChild(ctx context.Context, userID, childID string, size int) (Result, error) {
	m, err := s.members.Get(ctx, userID, childID)
	if err != nil {
		return Result{}, err
	}
	age, ok := m.Age(s.now())
	if !ok {
		return Result{}, ErrNoBirthYear
	}
	return s.ForAge(ctx, age, size)
}

func toBooks(popular []data4library.PopularBook) []book.Book {
	books := make([]book.Book, 0, len(popular))
	for _, p := range popular {
		books = append(books, book.Book{
			ISBN13:        p.ISBN13,
			Title:         p.Title,
			Author:        p.Authors,
			Publisher:     p.Publisher,
			PublishYear:   p.PublicationYear,
			ClassName:     p.ClassName,
			CoverImageURL: p.ImageURL,
			LoanCount:     &p.LoanCount,
			Ranking:       &p.Ranking,
		})
	}
	return books
}
