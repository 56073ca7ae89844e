package database

import (
	"time"

	"github.com/jackc/pgx/v5/pgtype"

	"anibot/internal/domain/entities"
)

// watchlistRow mirrors one row of watchlist_entries.
type watchlistRow struct {
	ID        int64
	UserID    string
	Kind      string
	ContentID int32
	Locale    string
	CreatedAt pgtype.Timestamptz
}

// pgtypeTimestamptzToTime returns t.Time when Valid, else zero time.
func pgtypeTimestamptzToTime(t pgtype.Timestamptz) time.Time {
	if !t.Valid {
		return time.Time{}
	}
	return t.Time
}

func entryToDomain(r watchlistRow) entities.UserEntry {
	return entities.UserEntry{
		ID:        uint(r.ID),
		UserID:    r.UserID,
		ContentID: int(r.ContentID),
		Kind:      entities.MediaType(r.Kind),
		Locale:    r.Locale,
		CreatedAt: pgtypeTimestamptzToTime(r.CreatedAt),
	}
}
