package book

import (
	"context"

	"github.com/stretchr/testify/mock"

	"libfinder/internal/platform/data4library"
	"libfinder/internal/platform/naver"
)

type mockSearcher struct {
	mock.Mock
}

func (m *mockSearcher) SearchBooks(ctx context.Context, q naver.SearchQuery) (naver.SearchResult[naver.BookItem], error) {
	args := m.Called(ctx, q)
	return args.Get(0).(naver.SearchResult[naver.BookItem]), args.Error(1)
}

func (m *mockSearcher) SearchBlogs(ctx context.Context, q naver.SearchQuery) (naver.SearchResult[naver.BlogItem], error) {
	args := m.Called(ctx, q)
	return args.Get(0).(naver.SearchResult[naver.BlogItem]), args.Error(1)
}

type mockDetails struct {
	mock.Mock
}

func (m *mockDetails) BookDetail(ctx context.Context, isbn string) (data4library.BookDetail, error) {
	args := m.Called(ctx, isbn)
	return args.Get(0).(data4library.BookDetail), args.Error(1)
}
