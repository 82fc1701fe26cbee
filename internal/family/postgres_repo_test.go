package family

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"libfinder/internal/testutil"
)

func TestPostgresRepo_Lifecycle(t *testing.T) {
	db := testutil.PostgresPool(t)
	ctx := context.Background()
	repo := NewPostgresRepo(db, 5*time.Second)

	userID := "repo-test-" + time.Now().Format("150405.000000")
	t.Cleanup(func() {
		_, _ = db.Exec(context.Background(), `DELETE FROM family_members WHERE user_id = $1`, userID)
	})

	year := 2018
	m := Member{UserID: userID, Name: "서연", BirthYear: &year}
	require.NoError(t, repo.Create(ctx, &m))
	require.NotEmpty(t, m.ID)

	got, err := repo.Get(ctx, m.ID)
	require.NoError(t, err)
	assert.Equal(t, userID, got.UserID)
	require.NotNil(t, got.BirthYear)
	assert.Equal(t, 2018, *got.BirthYear)

	list, err := repo.ListByUser(ctx, userID)
	require.NoError(t, err)
	assert.Len(t, list, 1)

	require.NoError(t, repo.Delete(ctx, m.ID))
	assert.ErrorIs(t, repo.Delete(ctx, m.ID), ErrNotFound)

	_, err = repo.Get(ctx, "not-a-uuid")
	assert.ErrorIs(t, err, ErrNotFound)
}
