package input

import (
	"context"

	"anibot/internal/domain/entities"
)

type WatchlistUseCase interface {
	Track(ctx context.Context, userID string, kind entities.MediaType, contentID int, locale string) (*entities.ListTitle, error)
	Untrack(ctx context.Context, userID string, kind entities.MediaType, contentID int) error
	Entries(ctx context.Context, userID string, kind entities.MediaType) ([]entities.UserEntry, error)
}
