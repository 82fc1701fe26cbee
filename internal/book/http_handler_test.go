package book

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"libfinder/internal/cache"
	"libfinder/internal/platform/data4library"
	"libfinder/internal/platform/naver"
	"libfinder/internal/testutil"
)

func TestHTTPHandler_Search(t *testing.T) {
	search := &mockSearcher{}
	handler := NewHTTPHandler(NewService(search, &mockDetails{}, cache.NewMemoryStore()))

	t.Run("success", func(t *testing.T) {
		search.On("SearchBooks", mock.Anything, naver.SearchQuery{Query: "채식주의자", Display: 20, Start: 1}).
			Return(naver.SearchResult[naver.BookItem]{Total: 45, Items: []naver.BookItem{{Title: "채식주의자"}}}, nil).Once()

		w := httptest.NewRecorder()
		r := httptest.NewRequest(http.MethodGet, "/api/books?q=%EC%B1%84%EC%8B%9D%EC%A3%BC%EC%9D%98%EC%9E%90", nil)

		handler.Search(w, r)

		rec := testutil.RecordHTTPResponse(w)
		require.Equal(t, http.StatusOK, rec.Code)
		meta := rec.Body["meta"].(map[string]any)
		assert.Equal(t, float64(45), meta["total"])
		assert.Equal(t, float64(3), meta["total_pages"])
	})

	t.Run("missing query", func(t *testing.T) {
		w := httptest.NewRecorder()
		r := httptest.NewRequest(http.MethodGet, "/api/books", nil)

		handler.Search(w, r)

		rec := testutil.RecordHTTPResponse(w)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, "VALIDATION_ERROR", rec.ErrorCode())
	})

	t.Run("upstream failure", func(t *testing.T) {
		search.On("SearchBooks", mock.Anything, mock.MatchedBy(func(q naver.SearchQuery) bool { return q.Query == "fail" })).
			Return(naver.SearchResult[naver.BookItem]{}, errors.New("down")).Once()

		w := httptest.NewRecorder()
		r := httptest.NewRequest(http.MethodGet, "/api/books?q=fail", nil)

		handler.Search(w, r)

		assert.Equal(t, http.StatusBadGateway, w.Code)
	})
}

func TestHTTPHandler_Detail(t *testing.T) {
	details := &mockDetails{}
	handler := NewHTTPHandler(NewService(&mockSearcher{}, details, cache.NewMemoryStore()))

	t.Run("found", func(t *testing.T) {
		details.On("BookDetail", mock.Anything, isbn13).
			Return(data4library.BookDetail{Title: "소년이 온다", ImageURL: "https://img"}, nil).Once()

		w := httptest.NewRecorder()
		r := httptest.NewRequest(http.MethodGet, "/api/books/"+isbn13, nil)
		r.SetPathValue("isbn", isbn13)

		handler.Detail(w, r)

		rec := testutil.RecordHTTPResponse(w)
		require.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "소년이 온다", rec.Body["data"].(map[string]any)["title"])
	})

	t.Run("not found", func(t *testing.T) {
		details.On("BookDetail", mock.Anything, "0000").Return(data4library.BookDetail{}, data4library.ErrNotFound).Once()

		w := httptest.NewRecorder()
		r := httptest.NewRequest(http.MethodGet, "/api/books/0000", nil)
		r.SetPathValue("isbn", "0000")

		handler.Detail(w, r)

		rec := testutil.RecordHTTPResponse(w)
		assert.Equal(t, http.StatusNotFound, rec.Code)
		assert.Equal(t, "NOT_FOUND", rec.ErrorCode())
	})
}
