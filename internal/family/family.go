package family

import (
	"errors"
	"time"
)

var (
	ErrNotFound     = errors.New("family member not found")
	ErrForbidden    = errors.New("family member belongs to another user")
	ErrInvalidInput = errors.New("invalid input")
)

const maxNameLength = 30

// Member is a child or other reader registered under a user account.
type Member struct {
	ID        string    `json:"id"`
	UserID    string    `json:"-"`
	Name      string    `json:"name"`
	BirthYear *int      `json:"birth_year,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

// Age is the member's age in whole years at now, counting the birth year
// as age zero. ok is false when no birth year is recorded.
func (m Member) Age(now time.Time) (age int, ok bool) {
	if m.BirthYear == nil {
		return 0, false
	}
	return max(now.Year()-*m.BirthYear, 0), true
}

type CreateCommand struct {
	Name      string `json:"name" validate:"required,max=30"`
	BirthYear *int   `json:"birth_year,omitempty" validate:"omitempty,gte=1900"`
}
