package stamp

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"libfinder/internal/testutil"
)

type mockRepo struct {
	mock.Mock
}

func (m *mockRepo) Upsert(ctx context.Context, userID string, stamps []Stamp) error {
	return m.Called(ctx, userID, stamps).Error(0)
}

func (m *mockRepo) ListByUser(ctx context.Context, userID string) ([]Stamp, error) {
	args := m.Called(ctx, userID)
	stamps, _ := args.Get(0).([]Stamp)
	return stamps, args.Error(1)
}

func (m *mockRepo) Delete(ctx context.Context, userID, isbn, childID string) error {
	return m.Called(ctx, userID, isbn, childID).Error(0)
}

var syncNow = time.Date(2026, 5, 5, 9, 0, 0, 0, time.UTC)

func newTestService(repo Repository) *Service {
	s := NewService(repo)
	s.now = func() time.Time { return syncNow }
	return s
}

func TestService_SyncCollapsesDuplicateKeys(t *testing.T) {
	repo := &mockRepo{}
	created := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)

	want := []Stamp{
		{ISBN: "9788936434120", Title: "소년이 온다 (개정판)", Emoji: "📕", CreatedAt: created},
		{ISBN: "9788936434120", ChildID: "kid-1", Title: "소년이 온다", CreatedAt: syncNow},
	}
	repo.On("Upsert", mock.Anything, testutil.TestUserID, want).Return(nil).Once()
	repo.On("ListByUser", mock.Anything, testutil.TestUserID).Return(want, nil).Once()

	merged, err := newTestService(repo).Sync(context.Background(), testutil.TestUserID, []Stamp{
		{ISBN: "978-89-364-3412-0", Title: "소년이 온다", CreatedAt: created},
		{ISBN: "9788936434120", ChildID: " kid-1 ", Title: "소년이 온다"},
		{ISBN: "9788936434120", Title: "소년이 온다 (개정판)", Emoji: "📕", CreatedAt: created},
	})
	require.NoError(t, err)
	assert.Equal(t, want, merged)
	repo.AssertExpectations(t)
}

func TestService_SyncEmptyReturnsServerList(t *testing.T) {
	repo := &mockRepo{}
	server := []Stamp{{ISBN: "1", Title: "a"}}
	repo.On("ListByUser", mock.Anything, testutil.TestUserID).Return(server, nil)

	merged, err := newTestService(repo).Sync(context.Background(), testutil.TestUserID, nil)
	require.NoError(t, err)
	assert.Equal(t, server, merged)
	repo.AssertNotCalled(t, "Upsert", mock.Anything, mock.Anything, mock.Anything)
}

func TestService_SyncErrors(t *testing.T) {
	t.Run("missing title", func(t *testing.T) {
		_, err := newTestService(&mockRepo{}).Sync(context.Background(), testutil.TestUserID, []Stamp{{ISBN: "1"}})
		assert.ErrorIs(t, err, ErrInvalidInput)
	})

	t.Run("too many", func(t *testing.T) {
		_, err := newTestService(&mockRepo{}).Sync(context.Background(), testutil.TestUserID, make([]Stamp, maxSyncBatch+1))
		assert.ErrorIs(t, err, ErrInvalidInput)
	})

	t.Run("repository failure", func(t *testing.T) {
		repo := &mockRepo{}
		repo.On("Upsert", mock.Anything, mock.Anything, mock.Anything).Return(errors.New("db down"))

		_, err := newTestService(repo).Sync(context.Background(), testutil.TestUserID, []Stamp{{ISBN: "1", Title: "a"}})
		require.Error(t, err)
		assert.NotErrorIs(t, err, ErrInvalidInput)
	})
}

func TestService_Delete(t *testing.T) {
	repo := &mockRepo{}
	repo.On("Delete", mock.Anything, testutil.TestUserID, "9788936434120", "kid-1").Return(nil).Once()
	repo.On("Delete", mock.Anything, testutil.TestUserID, "9788936434120", "").Return(ErrNotFound).Once()
	svc := newTestService(repo)

	require.NoError(t, svc.Delete(context.Background(), testutil.TestUserID, "9788936434120", "kid-1"))
	assert.ErrorIs(t, svc.Delete(context.Background(), testutil.TestUserID, "9788936434120", ""), ErrNotFound)
	assert.ErrorIs(t, svc.Delete(context.Background(), testutil.TestUserID, " ", ""), ErrInvalidInput)
	repo.AssertExpectations(t)
}

func TestService_DeleteNormalizesISBN(t *testing.T) {
	repo := new(mockRepo)
	repo.On("Delete", mock.Anything, testutil.TestUserID, "9788936434120", "").Return(nil).Once()
	svc := newTestService(repo)

	require.NoError(t, svc.Delete(context.Background(), testutil.TestUserID, "978-89-364-3412-0", ""))
	repo.AssertExpectations(t)
}
