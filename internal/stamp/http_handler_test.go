package stamp

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"libfinder/internal/testutil"
)

func TestHTTPHandler_Sync(t *testing.T) {
	tests := []struct {
		name       string
		body       any
		auth       bool
		wantStatus int
	}{
		{
			name:       "merged list",
			body:       map[string]any{"stamps": []map[string]any{{"isbn": "9788936434120", "title": "소년이 온다"}}},
			auth:       true,
			wantStatus: http.StatusOK,
		},
		{
			name:       "unauthenticated",
			body:       map[string]any{"stamps": []any{}},
			wantStatus: http.StatusUnauthorized,
		},
		{
			name:       "invalid isbn",
			body:       map[string]any{"stamps": []map[string]any{{"isbn": "abc", "title": "x"}}},
			auth:       true,
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "malformed body",
			body:       []int{1, 2},
			auth:       true,
			wantStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := &mockRepo{}
			repo.On("Upsert", mock.Anything, testutil.TestUserID, mock.Anything).Return(nil).Maybe()
			repo.On("ListByUser", mock.Anything, testutil.TestUserID).
				Return([]Stamp{{ISBN: "9788936434120", Title: "소년이 온다"}}, nil).Maybe()
			h := NewHTTPHandler(newTestService(repo))

			r := testutil.NewRequest(http.MethodPost, "/api/stamps/sync", tt.body)
			if tt.auth {
				r = testutil.WithUser(r, testutil.TestUserID)
			}
			w := httptest.NewRecorder()

			h.Sync(w, r)

			rec := testutil.RecordHTTPResponse(w)
			require.Equal(t, tt.wantStatus, rec.Code)
			if tt.wantStatus == http.StatusOK {
				assert.Len(t, rec.Body["data"].([]any), 1)
			}
		})
	}
}

func TestHTTPHandler_Delete(t *testing.T) {
	repo := &mockRepo{}
	repo.On("Delete", mock.Anything, testutil.TestUserID, "9788936434120", "kid-1").Return(nil)
	repo.On("Delete", mock.Anything, testutil.TestUserID, "9780000000000", "").Return(ErrNotFound)
	h := NewHTTPHandler(NewService(repo))

	r := testutil.WithUser(httptest.NewRequest(http.MethodDelete, "/api/stamps/9788936434120?child_id=kid-1", nil), testutil.TestUserID)
	r.SetPathValue("isbn", "9788936434120")
	w := httptest.NewRecorder()
	h.Delete(w, r)
	assert.Equal(t, http.StatusNoContent, w.Code)

	r = testutil.WithUser(httptest.NewRequest(http.MethodDelete, "/api/stamps/9780000000000", nil), testutil.TestUserID)
	r.SetPathValue("isbn", "9780000000000")
	w = httptest.NewRecorder()
	h.Delete(w, r)
	assert.Equal(t, http.StatusNotFound, w.Code)
}
