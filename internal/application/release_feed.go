package application

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"anibot/internal/domain/entities"
	"anibot/internal/ports/input"
	"anibot/internal/ports/output"
)

// ReleaseService finds tracked anime episodes that just aired.
type ReleaseService struct {
	watchlistRepo output.WatchlistRepository
	lookup        output.MediaLookup
	logger        *slog.Logger
}

func NewReleaseService(watchlistRepo output.WatchlistRepository, lookup output.MediaLookup, logger *slog.Logger) *ReleaseService {
	return &ReleaseService{
		watchlistRepo: watchlistRepo,
		lookup:        lookup,
		logger:        logger,
	}
}

// ReleasesBetween returns one Release per episode aired in (from, to].
// A media record that cannot be fetched skips its release; the others are
// still returned.
func (s *ReleaseService) ReleasesBetween(ctx context.Context, from, to time.Time) ([]input.Release, error) {
	ids, err := s.watchlistRepo.DistinctContent(ctx, entities.MediaTypeAnime)
	if err != nil {
		return nil, fmt.Errorf("tracked anime: %w", err)
	}
	if len(ids) == 0 {
		return nil, nil
	}

	events, err := s.lookup.AiringSchedules(ctx, ids, from, to)
	if err != nil {
		return nil, fmt.Errorf("airing schedules: %w", err)
	}

	releases := make([]input.Release, 0, len(events))
	for _, event := range events {
		media, err := s.lookup.MediaAnime(ctx, event.MediaID)
		if err != nil {
			s.logger.Error("release dropped: media lookup failed", "media_id", event.MediaID, "episode", event.Episode, "from", from, "to", to, "error", err)
			continue
		}
		subscribers, err := s.watchlistRepo.ListSubscribers(ctx, entities.MediaTypeAnime, event.MediaID)
		if err != nil {
			return nil, fmt.Errorf("subscribers of %d: %w", event.MediaID, err)
		}
		releases = append(releases, input.Release{
			Event:       event,
			Media:       airedMedia(media, event),
			Subscribers: subscribers,
		})
	}
	s.logger.Info("releases collected", "from", from, "to", to, "count", len(releases))
	return releases, nil
}

// airedMedia returns media as seen right after event aired. The next episode
// is always the one following event; the catalog countdown is kept only when
// it points at that same episode.
func airedMedia(media *entities.Media, event entities.AiringEvent) *entities.Media {
	aired := *media
	next := event.Episode + 1
	aired.NextAiringEpisode = &entities.NextAiring{Episode: &next}
	if catalog := media.NextAiringEpisode; catalog != nil && catalog.Episode != nil && *catalog.Episode == next {
		aired.NextAiringEpisode.TimeUntilAiring = catalog.TimeUntilAiring
	}
	return &aired
}
