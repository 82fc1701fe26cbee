package recommend

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"libfinder/internal/cache"
	"libfinder/internal/family"
	"libfinder/internal/testutil"
)

func TestHTTPHandler_Get(t *testing.T) {
	members := &mockMembers{}
	members.On("Get", mock.Anything, testutil.TestUserID, "missing").Return(family.Member{}, family.ErrNotFound)
	members.On("Get", mock.Anything, testutil.TestUserID, "theirs").Return(family.Member{}, family.ErrForbidden)

	popular := &mockPopular{}
	popular.On("PopularBooks", mock.Anything, mock.Anything).Return(popularN(4), nil)

	h := NewHTTPHandler(newTestService(popular, members, cache.NewMemoryStore()))

	tests := []struct {
		name       string
		url        string
		user       string
		wantStatus int
	}{
		{name: "by age", url: "/api/recommendations?age=7&size=2", wantStatus: http.StatusOK},
		{name: "missing age", url: "/api/recommendations", wantStatus: http.StatusBadRequest},
		{name: "negative age", url: "/api/recommendations?age=-1", wantStatus: http.StatusBadRequest},
		{name: "child without auth", url: "/api/recommendations?child_id=x", wantStatus: http.StatusUnauthorized},
		{name: "child missing", url: "/api/recommendations?child_id=missing", user: testutil.TestUserID, wantStatus: http.StatusNotFound},
		{name: "child of other user", url: "/api/recommendations?child_id=theirs", user: testutil.TestUserID, wantStatus: http.StatusForbidden},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := httptest.NewRequest(http.MethodGet, tt.url, nil)
			if tt.user != "" {
				r = testutil.WithUser(r, tt.user)
			}
			w := httptest.NewRecorder()

			h.Get(w, r)

			rec := testutil.RecordHTTPResponse(w)
			require.Equal(t, tt.wantStatus, rec.Code)
			if tt.wantStatus == http.StatusOK {
				data := rec.Body["data"].(map[string]any)
				assert.Len(t, data["books"].([]any), 2)
				assert.Equal(t, "6", data["age_group"].(map[string]any)["code"])
			}
		})
	}
}
