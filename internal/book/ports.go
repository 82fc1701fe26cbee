package book

import (
	"context"

	"libfinder/internal/platform/data4library"
	"libfinder/internal/platform/naver"
)

// Searcher is the keyword search backend.
type Searcher interface {
	SearchBooks(ctx context.Context, q naver.SearchQuery) (naver.SearchResult[naver.BookItem], error)
	SearchBlogs(ctx context.Context, q naver.SearchQuery) (naver.SearchResult[naver.BlogItem], error)
}

// DetailSource returns catalog detail for one ISBN.
type DetailSource interface {
	BookDetail(ctx context.Context, isbn string) (data4library.BookDetail, error)
}
