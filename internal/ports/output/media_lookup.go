package output

import (
	"context"
	"time"

	"anibot/internal/domain/entities"
)

// MediaLookup is the media catalog client.
type MediaLookup interface {
	AnimeSearchTitle(ctx context.Context, id int) (*entities.ListTitle, error)
	MangaSearchTitle(ctx context.Context, id int) (*entities.ListTitle, error)
	MediaAnime(ctx context.Context, id int) (*entities.Media, error)
	MediaManga(ctx context.Context, id int) (*entities.Media, error)
	// AiringSchedules lists episodes of the given anime airing in (from, to].
	AiringSchedules(ctx context.Context, ids []int, from, to time.Time) ([]entities.AiringEvent, error)
}
