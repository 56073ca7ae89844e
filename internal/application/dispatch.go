package application

import (
	"context"
	"fmt"
	"strings"

	"anibot/internal/domain"
	"anibot/internal/domain/entities"
	"anibot/internal/ports/output"
)

// category is what a list filter maps to: the status to keep (empty keeps
// everything) and the template wrapping the rendered list.
type category struct {
	status      entities.Status
	templateKey string
}

var animeCategories = map[entities.Filter]category{
	entities.FilterAll:            {templateKey: "watchlistOptions"},
	entities.FilterReleasing:      {status: entities.StatusReleasing, templateKey: "airingAnimeOptions"},
	entities.FilterFinished:       {status: entities.StatusFinished, templateKey: "completedAnimeOptions"},
	entities.FilterCancelled:      {status: entities.StatusCancelled, templateKey: "cancelledAnimeOptions"},
	entities.FilterNotYetReleased: {status: entities.StatusNotYetReleased, templateKey: "soonAnimeOptions"},
}

var mangaCategories = map[entities.Filter]category{
	entities.FilterAll:            {templateKey: "readlistOptions"},
	entities.FilterReleasing:      {status: entities.StatusReleasing, templateKey: "publishingMangaOptions"},
	entities.FilterFinished:       {status: entities.StatusFinished, templateKey: "completedMangaOptions"},
	entities.FilterCancelled:      {status: entities.StatusCancelled, templateKey: "cancelledMangaOptions"},
	entities.FilterNotYetReleased: {status: entities.StatusNotYetReleased, templateKey: "soonMangaOptions"},
}

const (
	watchlistMoreInfoKey = "watchlistMoreInfoOptions"
	readlistMoreInfoKey  = "readlistMoreInfoOptions"
)

// HandleAnime renders the user's watchlist for filter. Without a known filter
// it returns the filter menu and fetches nothing.
func (s *MediaService) HandleAnime(ctx context.Context, user []entities.UserEntry, filter entities.Filter, tr output.Localizer) (string, error) {
	c, ok := animeCategories[filter]
	if !ok {
		return tr.T(watchlistMoreInfoKey, nil), nil
	}
	anime, err := s.fetchAnimeList(ctx, user, c.status, tr)
	if err != nil {
		return "", err
	}
	return tr.T(c.templateKey, map[string]any{"anime": anime}), nil
}

// HandleManga is HandleAnime for the readlist.
func (s *MediaService) HandleManga(ctx context.Context, user []entities.UserEntry, filter entities.Filter, tr output.Localizer) (string, error) {
	c, ok := mangaCategories[filter]
	if !ok {
		return tr.T(readlistMoreInfoKey, nil), nil
	}
	manga, err := s.fetchMangaList(ctx, user, c.status, tr)
	if err != nil {
		return "", err
	}
	return tr.T(c.templateKey, map[string]any{"manga": manga}), nil
}

// HandleCountdownData renders the user's releasing anime ranked by soonest
// next episode.
func (s *MediaService) HandleCountdownData(ctx context.Context, user []entities.UserEntry, tr output.Localizer) (string, error) {
	allAnime, err := s.resolveTitles(ctx, user, s.lookup.AnimeSearchTitle)
	if err != nil {
		return "", fmt.Errorf("fetch countdown: %w", err)
	}

	var b strings.Builder
	for rank, title := range countdownOrder(allAnime) {
		fields := entities.CountdownFields{Rank: rank, Info: title.Info()}
		if title.NextAiringEpisode != nil {
			fields.NextAiringEpisode = *title.NextAiringEpisode
		}
		b.WriteString(renderCountdown(fields, tr))
		b.WriteString("\n")
	}
	return b.String(), nil
}

// HandleMediaMore renders the detail message of one anime or manga.
func (s *MediaService) HandleMediaMore(ctx context.Context, contentID int, request entities.MediaType, tr output.Localizer) (string, error) {
	var (
		media *entities.Media
		err   error
	)
	switch request {
	case entities.MediaTypeAnime:
		media, err = s.lookup.MediaAnime(ctx, contentID)
	case entities.MediaTypeManga:
		media, err = s.lookup.MediaManga(ctx, contentID)
	default:
		return "", fmt.Errorf("media more %q: %w", request, domain.ErrUnknownMediaType)
	}
	if err != nil {
		return "", fmt.Errorf("media more %d: %w", contentID, err)
	}
	return mediaMessage(media, tr), nil
}
