package application

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/sourcegraph/conc/pool"

	"anibot/internal/domain/entities"
	"anibot/internal/ports/output"
)

// MediaService renders watchlists, countdowns and media details.
type MediaService struct {
	lookup output.MediaLookup
	logger *slog.Logger
}

func NewMediaService(lookup output.MediaLookup, logger *slog.Logger) *MediaService {
	return &MediaService{
		lookup: lookup,
		logger: logger,
	}
}

type titleSearch func(ctx context.Context, id int) (*entities.ListTitle, error)

// resolveTitles looks every entry up concurrently and returns the titles in
// entry order. The first failure cancels the remaining lookups and fails the
// whole call.
func (s *MediaService) resolveTitles(ctx context.Context, user []entities.UserEntry, search titleSearch) ([]entities.ListTitle, error) {
	titles := make([]entities.ListTitle, len(user))
	p := pool.New().WithContext(ctx).WithCancelOnError().WithFirstError()
	for i, entry := range user {
		p.Go(func(ctx context.Context) error {
			title, err := search(ctx, entry.ContentID)
			if err != nil {
				return fmt.Errorf("lookup %d: %w", entry.ContentID, err)
			}
			titles[i] = *title
			return nil
		})
	}
	if err := p.Wait(); err != nil {
		return nil, err
	}
	s.logger.Debug("titles resolved", "count", len(titles))
	return titles, nil
}

func (s *MediaService) fetchAnimeList(ctx context.Context, user []entities.UserEntry, status entities.Status, tr output.Localizer) (string, error) {
	allAnime, err := s.resolveTitles(ctx, user, s.lookup.AnimeSearchTitle)
	if err != nil {
		return "", fmt.Errorf("fetch anime list: %w", err)
	}
	return renderList(allAnime, status, tr), nil
}

func (s *MediaService) fetchMangaList(ctx context.Context, user []entities.UserEntry, status entities.Status, tr output.Localizer) (string, error) {
	allManga, err := s.resolveTitles(ctx, user, s.lookup.MangaSearchTitle)
	if err != nil {
		return "", fmt.Errorf("fetch manga list: %w", err)
	}
	return renderList(allManga, status, tr), nil
}
