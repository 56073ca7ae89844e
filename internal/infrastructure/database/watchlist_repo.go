package database

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgtype"

	"anibot/internal/domain"
	"anibot/internal/domain/entities"
	"anibot/internal/ports/output"
)

// DBTX is the subset of pgxpool.Pool (or pgx.Tx) the repositories use.
type DBTX interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

var _ output.WatchlistRepository = (*WatchlistRepository)(nil)

// WatchlistRepository implements output.WatchlistRepository using pgx.
type WatchlistRepository struct {
	db DBTX
}

// NewWatchlistRepository creates a WatchlistRepository.
func NewWatchlistRepository(db DBTX) *WatchlistRepository {
	return &WatchlistRepository{db: db}
}

const insertEntry = `
INSERT INTO watchlist_entries (user_id, kind, content_id, locale)
VALUES ($1, $2, $3, $4)
ON CONFLICT (user_id, kind, content_id) DO NOTHING
RETURNING id, created_at`

func (r *WatchlistRepository) Add(ctx context.Context, entry *entities.UserEntry) error {
	var (
		id        int64
		createdAt pgtype.Timestamptz
	)
	err := r.db.QueryRow(ctx, insertEntry, entry.UserID, string(entry.Kind), entry.ContentID, entry.Locale).Scan(&id, &createdAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return domain.ErrAlreadyTracked
	}
	if err != nil {
		return fmt.Errorf("insert watchlist entry: %w", err)
	}
	entry.ID = uint(id)
	entry.CreatedAt = pgtypeTimestamptzToTime(createdAt)
	return nil
}

const deleteEntry = `
DELETE FROM watchlist_entries
WHERE user_id = $1 AND kind = $2 AND content_id = $3`

func (r *WatchlistRepository) Remove(ctx context.Context, userID string, kind entities.MediaType, contentID int) error {
	tag, err := r.db.Exec(ctx, deleteEntry, userID, string(kind), contentID)
	if err != nil {
		return fmt.Errorf("delete watchlist entry: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotTracked
	}
	return nil
}

const selectByUser = `
SELECT id, user_id, kind, content_id, locale, created_at
FROM watchlist_entries
WHERE user_id = $1 AND kind = $2
ORDER BY created_at, id`

func (r *WatchlistRepository) ListByUser(ctx context.Context, userID string, kind entities.MediaType) ([]entities.UserEntry, error) {
	rows, err := r.db.Query(ctx, selectByUser, userID, string(kind))
	if err != nil {
		return nil, fmt.Errorf("list watchlist entries: %w", err)
	}
	out, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (entities.UserEntry, error) {
		var w watchlistRow
		if err := row.Scan(&w.ID, &w.UserID, &w.Kind, &w.ContentID, &w.Locale, &w.CreatedAt); err != nil {
			return entities.UserEntry{}, err
		}
		return entryToDomain(w), nil
	})
	if err != nil {
		return nil, fmt.Errorf("scan watchlist entries: %w", err)
	}
	return out, nil
}

const selectSubscribers = `
SELECT user_id, locale
FROM watchlist_entries
WHERE kind = $1 AND content_id = $2
ORDER BY created_at, id`

func (r *WatchlistRepository) ListSubscribers(ctx context.Context, kind entities.MediaType, contentID int) ([]entities.Subscriber, error) {
	rows, err := r.db.Query(ctx, selectSubscribers, string(kind), contentID)
	if err != nil {
		return nil, fmt.Errorf("list subscribers: %w", err)
	}
	out, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (entities.Subscriber, error) {
		var s entities.Subscriber
		err := row.Scan(&s.UserID, &s.Locale)
		return s, err
	})
	if err != nil {
		return nil, fmt.Errorf("scan subscribers: %w", err)
	}
	return out, nil
}

const selectDistinctContent = `
SELECT DISTINCT content_id
FROM watchlist_entries
WHERE kind = $1
ORDER BY content_id`

func (r *WatchlistRepository) DistinctContent(ctx context.Context, kind entities.MediaType) ([]int, error) {
	rows, err := r.db.Query(ctx, selectDistinctContent, string(kind))
	if err != nil {
		return nil, fmt.Errorf("list tracked content: %w", err)
	}
	ids, err := pgx.CollectRows(rows, pgx.RowTo[int32])
	if err != nil {
		return nil, fmt.Errorf("scan tracked content: %w", err)
	}
	out := make([]int, len(ids))
	for i, id := range ids {
		out[i] = int(id)
	}
	return out, nil
}
