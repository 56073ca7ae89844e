package application

import (
	"context"
	"fmt"

	"anibot/internal/domain"
	"anibot/internal/domain/entities"
	"anibot/internal/ports/output"
)

type WatchlistService struct {
	watchlistRepo output.WatchlistRepository
	lookup        output.MediaLookup
}

func NewWatchlistService(watchlistRepo output.WatchlistRepository, lookup output.MediaLookup) *WatchlistService {
	return &WatchlistService{
		watchlistRepo: watchlistRepo,
		lookup:        lookup,
	}
}

// Track adds contentID to the user's list after checking the catalog knows it.
func (s *WatchlistService) Track(ctx context.Context, userID string, kind entities.MediaType, contentID int, locale string) (*entities.ListTitle, error) {
	if contentID <= 0 {
		return nil, domain.ErrInvalidContentID
	}
	var (
		title *entities.ListTitle
		err   error
	)
	switch kind {
	case entities.MediaTypeAnime:
		title, err = s.lookup.AnimeSearchTitle(ctx, contentID)
	case entities.MediaTypeManga:
		title, err = s.lookup.MangaSearchTitle(ctx, contentID)
	default:
		return nil, domain.ErrUnknownMediaType
	}
	if err != nil {
		return nil, fmt.Errorf("lookup %d: %w", contentID, err)
	}
	entry := &entities.UserEntry{
		UserID:    userID,
		ContentID: contentID,
		Kind:      kind,
		Locale:    locale,
	}
	if err := s.watchlistRepo.Add(ctx, entry); err != nil {
		return nil, fmt.Errorf("track %d: %w", contentID, err)
	}
	return title, nil
}

func (s *WatchlistService) Untrack(ctx context.Context, userID string, kind entities.MediaType, contentID int) error {
	if !kind.Valid() {
		return domain.ErrUnknownMediaType
	}
	if err := s.watchlistRepo.Remove(ctx, userID, kind, contentID); err != nil {
		return fmt.Errorf("untrack %d: %w", contentID, err)
	}
	return nil
}

func (s *WatchlistService) Entries(ctx context.Context, userID string, kind entities.MediaType) ([]entities.UserEntry, error) {
	return s.watchlistRepo.ListByUser(ctx, userID, kind)
}
