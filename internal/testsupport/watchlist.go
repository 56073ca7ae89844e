package testsupport

import (
	"context"
	"sync"
	"time"

	"anibot/internal/domain"
	"anibot/internal/domain/entities"
	"anibot/internal/ports/output"
)

var _ output.WatchlistRepository = (*WatchlistRepo)(nil)

// WatchlistRepo is an in-memory watchlist keeping insertion order.
type WatchlistRepo struct {
	mu      sync.Mutex
	nextID  uint
	Entries []entities.UserEntry
}

func (r *WatchlistRepo) Add(ctx context.Context, entry *entities.UserEntry) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, e := range r.Entries {
		if e.UserID == entry.UserID && e.Kind == entry.Kind && e.ContentID == entry.ContentID {
			return domain.ErrAlreadyTracked
		}
	}
	r.nextID++
	entry.ID = r.nextID
	entry.CreatedAt = time.Now()
	r.Entries = append(r.Entries, *entry)
	return nil
}

func (r *WatchlistRepo) Remove(ctx context.Context, userID string, kind entities.MediaType, contentID int) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i, e := range r.Entries {
		if e.UserID == userID && e.Kind == kind && e.ContentID == contentID {
			r.Entries = append(r.Entries[:i], r.Entries[i+1:]...)
			return nil
		}
	}
	return domain.ErrNotTracked
}

func (r *WatchlistRepo) ListByUser(ctx context.Context, userID string, kind entities.MediaType) ([]entities.UserEntry, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []entities.UserEntry
	for _, e := range r.Entries {
		if e.UserID == userID && e.Kind == kind {
			out = append(out, e)
		}
	}
	return out, nil
}

func (r *WatchlistRepo) ListSubscribers(ctx context.Context, kind entities.MediaType, contentID int) ([]entities.Subscriber, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []entities.Subscriber
	for _, e := range r.Entries {
		if e.Kind == kind && e.ContentID == contentID {
			out = append(out, entities.Subscriber{UserID: e.UserID, Locale: e.Locale})
		}
	}
	return out, nil
}

func (r *WatchlistRepo) DistinctContent(ctx context.Context, kind entities.MediaType) ([]int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	seen := map[int]bool{}
	var out []int
	for _, e := range r.Entries {
		if e.Kind == kind && !seen[e.ContentID] {
			seen[e.ContentID] = true
			out = append(out, e.ContentID)
		}
	}
	return out, nil
}
