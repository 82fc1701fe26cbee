package book

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"libfinder/internal/cache"
	"libfinder/internal/platform/data4library"
	"libfinder/internal/platform/naver"
)

const (
	defaultPageSize = 20
	maxPageSize     = 100
	defaultReviews  = 10
	maxReviews      = 30
)

// Service provides book-related business logic.
type Service struct {
	search  Searcher
	details DetailSource
	covers  cache.Store
	pages   *cache.Memory[Page]
}

// NewService creates a new book service. covers persists cover URLs.
func NewService(search Searcher, details DetailSource, covers cache.Store) *Service {
	return &Service{
		search:  search,
		details: details,
		covers:  covers,
		pages:   cache.NewMemory[Page]("book_search"),
	}
}

// Search runs a keyword search.
func (s *Service) Search(ctx context.Context, q Query) (Page, error) {
	q.Q = strings.TrimSpace(q.Q)
	if q.Q == "" {
		return Page{}, fmt.Errorf("%w: q is required", ErrInvalidInput)
	}
	if q.Page < 1 {
		q.Page = 1
	}
	if q.PageSize <= 0 || q.PageSize > maxPageSize {
		q.PageSize = defaultPageSize
	}

	key := q.Q + "|" + strconv.Itoa(q.Page) + "|" + strconv.Itoa(q.PageSize)
	return s.pages.Do(ctx, key, cache.DefaultTTL, func(ctx context.Context) (Page, error) {
		res, err := s.search.SearchBooks(ctx, naver.SearchQuery{
			Query:   q.Q,
			Display: q.PageSize,
			Start:   (q.Page-1)*q.PageSize + 1,
		})
		if err != nil {
			return Page{}, fmt.Errorf("search books: %w", err)
		}
		page := Page{Total: res.Total, Books: make([]Book, 0, len(res.Items))}
		for _, it := range res.Items {
			page.Books = append(page.Books, Book{
				ISBN:          it.ISBN10(),
				ISBN13:        it.ISBN13(),
				Title:         cleanText(it.Title),
				Author:        strings.ReplaceAll(cleanText(it.Author), "^", ", "),
				Publisher:     cleanText(it.Publisher),
				PublishYear:   yearOf(it.PubDate),
				Description:   cleanText(it.Description),
				CoverImageURL: it.Image,
				Link:          it.Link,
			})
		}
		return page, nil
	})
}

// Detail returns catalog detail for isbn, with a cover when one is known.
func (s *Service) Detail(ctx context.Context, isbn string) (Book, error) {
	isbn = NormalizeISBN(isbn)
	if isbn == "" {
		return Book{}, fmt.Errorf("%w: isbn is required", ErrInvalidInput)
	}
	d, err := s.details.BookDetail(ctx, isbn)
	if errors.Is(err, data4library.ErrNotFound) {
		return Book{}, ErrNotFound
	}
	if err != nil {
		return Book{}, fmt.Errorf("book detail %s: %w", isbn, err)
	}

	b := Book{
		ISBN:          d.ISBN,
		ISBN13:        d.ISBN13,
		Title:         d.Title,
		Author:        d.Authors,
		Publisher:     d.Publisher,
		PublishYear:   d.PublicationYear,
		ClassName:     d.ClassName,
		Description:   d.Description,
		CoverImageURL: d.ImageURL,
	}
	if b.ISBN13 == "" && len(isbn) == 13 {
		b.ISBN13 = isbn
	}
	if b.CoverImageURL == "" {
		if cover, err := s.CoverURL(ctx, isbn); err == nil {
			b.CoverImageURL = cover
		}
	}
	return b, nil
}

// CoverURL finds a cover image for isbn, remembered for 30 days. An empty
// string means no cover exists.
func (s *Service) CoverURL(ctx context.Context, isbn string) (string, error) {
	isbn = NormalizeISBN(isbn)
	if isbn == "" {
		return "", fmt.Errorf("%w: isbn is required", ErrInvalidInput)
	}
	return cache.Fetch(ctx, s.covers, "cover:"+isbn, cache.CoverTTL, func(ctx context.Context) (string, error) {
		if d, err := s.details.BookDetail(ctx, isbn); err == nil && d.ImageURL != "" {
			return d.ImageURL, nil
		}
		res, err := s.search.SearchBooks(ctx, naver.SearchQuery{Query: isbn, Display: 1})
		if err != nil {
			return "", fmt.Errorf("cover %s: %w", isbn, err)
		}
		if len(res.Items) == 0 {
			return "", nil
		}
		return res.Items[0].Image, nil
	})
}

// Reviews finds blog posts about the book, searched by its title.
func (s *Service) Reviews(ctx context.Context, isbn string, limit int) ([]Review, error) {
	if limit <= 0 || limit > maxReviews {
		limit = defaultReviews
	}
	b, err := s.Detail(ctx, isbn)
	if err != nil {
		return nil, err
	}

	res, err := s.search.SearchBlogs(ctx, naver.SearchQuery{Query: b.Title + " 책", Display: limit, Sort: "sim"})
	if err != nil {
		return nil, fmt.Errorf("reviews %s: %w", isbn, err)
	}
	reviews := make([]Review, 0, len(res.Items))
	for _, it := range res.Items {
		reviews = append(reviews, Review{
			Title:       cleanText(it.Title),
			Link:        it.Link,
			Summary:     cleanText(it.Description),
			BloggerName: it.BloggerName,
			PostDate:    it.PostDate,
		})
	}
	return reviews, nil
}

// yearOf takes the year from a yyyymmdd date.
func yearOf(pubDate string) string {
	if len(pubDate) >= 4 {
		return pubDate[:4]
	}
	return pubDate
}
