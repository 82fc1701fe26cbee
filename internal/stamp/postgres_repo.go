package stamp

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PostgresRepo struct {
	db      *pgxpool.Pool
	timeout time.Duration
}

func NewPostgresRepo(db *pgxpool.Pool, timeout time.Duration) *PostgresRepo {
	return &PostgresRepo{db: db, timeout: timeout}
}

func (r *PostgresRepo) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(ctx, r.timeout)
}

// Upsert writes all stamps in one transaction. Existing rows take the
// incoming fields.
func (r *PostgresRepo) Upsert(ctx context.Context, userID string, stamps []Stamp) error {
	const upsertSQL = `
		INSERT INTO read_stamps (user_id, isbn, child_id, title, author, cover_url, emoji, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, NOW())
		ON CONFLICT (user_id, isbn, child_id)
		DO UPDATE SET title = EXCLUDED.title,
		              author = EXCLUDED.author,
		              cover_url = EXCLUDED.cover_url,
		              emoji = EXCLUDED.emoji,
		              created_at = EXCLUDED.created_at,
		              updated_at = NOW()
	`
	timeoutCtx, cancel := r.withTimeout(ctx)
	defer cancel()

	return pgx.BeginFunc(timeoutCtx, r.db, func(tx pgx.Tx) error {
		batch := &pgx.Batch{}
		for _, st := range stamps {
			batch.Queue(upsertSQL, userID, st.ISBN, st.ChildID, st.Title, st.Author, st.CoverURL, st.Emoji, st.CreatedAt)
		}
		return tx.SendBatch(timeoutCtx, batch).Close()
	})
}

func (r *PostgresRepo) ListByUser(ctx context.Context, userID string) ([]Stamp, error) {
	const query = `
		SELECT isbn, child_id, title, author, cover_url, emoji, created_at
		FROM read_stamps
		WHERE user_id = $1
		ORDER BY created_at DESC, isbn ASC
	`
	timeoutCtx, cancel := r.withTimeout(ctx)
	defer cancel()
	rows, err := r.db.Query(timeoutCtx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var stamps []Stamp
	for rows.Next() {
		var st Stamp
		if err := rows.Scan(&st.ISBN, &st.ChildID, &st.Title, &st.Author, &st.CoverURL, &st.Emoji, &st.CreatedAt); err != nil {
			return nil, err
		}
		stamps = append(stamps, st)
	}
	return stamps, rows.Err()
}

func (r *PostgresRepo) Delete(ctx context.Context, userID, isbn, childID string) error {
	const deleteSQL = `DELETE FROM read_stamps WHERE user_id = $1 AND isbn = $2 AND child_id = $3`
	timeoutCtx, cancel := r.withTimeout(ctx)
	defer cancel()
	tag, err := r.db.Exec(timeoutCtx, deleteSQL, userID, isbn, childID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}
