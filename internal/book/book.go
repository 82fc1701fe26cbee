package book

import (
	"errors"
	"html"
	"strings"
)

var (
	// ErrNotFound is returned when a book is not found.
	ErrNotFound     = errors.New("book not found")
	ErrInvalidInput = errors.New("invalid input")
)

// Book is catalog data fetched from upstream. It is never edited locally.
type Book struct {
	ISBN          string `json:"isbn,omitempty"`
	ISBN13        string `json:"isbn13,omitempty"`
	Title         string `json:"title"`
	Author        string `json:"author,omitempty"`
	Publisher     string `json:"publisher,omitempty"`
	PublishYear   string `json:"publish_year,omitempty"`
	ClassNo       string `json:"class_no,omitempty"`
	ClassName     string `json:"class_name,omitempty"`
	Description   string `json:"description,omitempty"`
	CoverImageURL string `json:"cover_image_url,omitempty"`
	LoanCount     *int   `json:"loan_count,omitempty"`
	Ranking       *int   `json:"ranking,omitempty"`
	Link          string `json:"link,omitempty"`
}

// Key is isbn13 when known, otherwise isbn.
func (b Book) Key() string {
	if b.ISBN13 != "" {
		return b.ISBN13
	}
	return b.ISBN
}

// Query is a keyword search. Page is 1-based.
type Query struct {
	Q        string
	Page     int
	PageSize int
}

// Review is a blog post about a book.
type Review struct {
	Title       string `json:"title"`
	Link        string `json:"link"`
	Summary     string `json:"summary"`
	BloggerName string `json:"blogger_name"`
	PostDate    string `json:"post_date"`
}

type Page struct {
	Books []Book `json:"books"`
	Total int    `json:"total"`
}

// cleanText strips the <b> highlight tags search results carry and
// decodes entities.
func cleanText(s string) string {
	s = strings.NewReplacer("<b>", "", "</b>", "").Replace(s)
	return strings.TrimSpace(html.UnescapeString(s))
}

// NormalizeISBN drops hyphens and spaces.
func NormalizeISBN(s string) string {
	return strings.NewReplacer("-", "", " ", "").Replace(strings.TrimSpace(s))
}
