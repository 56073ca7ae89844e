package output

import (
	"context"

	"anibot/internal/domain/entities"
)

type WatchlistRepository interface {
	Add(ctx context.Context, entry *entities.UserEntry) error
	Remove(ctx context.Context, userID string, kind entities.MediaType, contentID int) error
	ListByUser(ctx context.Context, userID string, kind entities.MediaType) ([]entities.UserEntry, error)
	ListSubscribers(ctx context.Context, kind entities.MediaType, contentID int) ([]entities.Subscriber, error)
	DistinctContent(ctx context.Context, kind entities.MediaType) ([]int, error)
}
