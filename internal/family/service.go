package family

import (
	"context"
	"fmt"
	"strings"
	"time"
	"unicode/utf8"
)

type Service struct {
	repo Repository
	now  func() time.Time
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo, now: time.Now}
}

func (s *Service) List(ctx context.Context, userID string) ([]Member, error) {
	members, err := s.repo.ListByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("list family members: %w", err)
	}
	if members == nil {
		members = []Member{}
	}
	return members, nil
}

func (s *Service) Create(ctx context.Context, userID string, cmd CreateCommand) (Member, error) {
	name := strings.TrimSpace(cmd.Name)
	if name == "" || utf8.RuneCountInString(name) > maxNameLength {
		return Member{}, fmt.Errorf("%w: name must be 1-%d characters", ErrInvalidInput, maxNameLength)
	}
	if y := cmd.BirthYear; y != nil && (*y < 1900 || *y > s.now().Year()) {
		return Member{}, fmt.Errorf("%w: birth_year must be between 1900 and %d", ErrInvalidInput, s.now().Year())
	}

	m := Member{UserID: userID, Name: name, BirthYear: cmd.BirthYear}
	if err := s.repo.Create(ctx, &m); err != nil {
		return Member{}, fmt.Errorf("create family member: %w", err)
	}
	return m, nil
}

// Get returns the member if it belongs to userID.
func (s *Service) Get(ctx context.Context, userID, id string) (Member, error) {
	m, err := s.repo.Get(ctx, id)
	if err != nil {
		return Member{}, err
	}
	if m.UserID != userID {
		return Member{}, ErrForbidden
	}
	return m, nil
}

func (s *Service) Delete(ctx context.Context, userID, id string) error {
	if _, err := s.Get(ctx, userID, id); err != nil {
		return err
	}
	return s.repo.Delete(ctx, id)
}
