package stamp

import (
	"errors"
	"time"
)

var (
	ErrNotFound     = errors.New("stamp not found")
	ErrInvalidInput = errors.New("invalid input")
)

// maxSyncBatch bounds how many stamps one sync request may carry.
const maxSyncBatch = 500

// Stamp marks a book as read, optionally for one family member. A stamp is
// identified by (user, isbn, child_id); an empty ChildID is the account
// holder's own stamp.
type Stamp struct {
	ISBN      string    `json:"isbn" validate:"required,isbn"`
	Title     string    `json:"title" validate:"required,max=500"`
	Author    string    `json:"author,omitempty"`
	CoverURL  string    `json:"cover_url,omitempty" validate:"omitempty,url"`
	Emoji     string    `json:"emoji,omitempty" validate:"max=16"`
	ChildID   string    `json:"child_id,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

type SyncRequest struct {
	Stamps []Stamp `json:"stamps" validate:"max=500,dive"`
}
