package stamp

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"libfinder/internal/testutil"
)

func TestPostgresRepo_UpsertLastWriteWins(t *testing.T) {
	db := testutil.PostgresPool(t)
	ctx := context.Background()
	repo := NewPostgresRepo(db, 5*time.Second)

	userID := "stamp-test-" + time.Now().Format("150405.000000")
	t.Cleanup(func() {
		_, _ = db.Exec(context.Background(), `DELETE FROM read_stamps WHERE user_id = $1`, userID)
	})

	at := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	require.NoError(t, repo.Upsert(ctx, userID, []Stamp{
		{ISBN: "9788936434120", Title: "old", CreatedAt: at},
		{ISBN: "9788936434120", ChildID: "kid-1", Title: "kid", CreatedAt: at},
	}))
	require.NoError(t, repo.Upsert(ctx, userID, []Stamp{
		{ISBN: "9788936434120", Title: "new", Emoji: "⭐", CreatedAt: at},
	}))

	stamps, err := repo.ListByUser(ctx, userID)
	require.NoError(t, err)
	require.Len(t, stamps, 2)
	titles := map[string]string{}
	for _, st := range stamps {
		titles[st.ChildID] = st.Title
	}
	assert.Equal(t, map[string]string{"": "new", "kid-1": "kid"}, titles)

	require.NoError(t, repo.Delete(ctx, userID, "9788936434120", "kid-1"))
	assert.ErrorIs(t, repo.Delete(ctx, userID, "9788936434120", "kid-1"), ErrNotFound)
}
