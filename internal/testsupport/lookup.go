package testsupport

import (
	"context"
	"fmt"
	"sync"
	"time"

	"anibot/internal/domain"
	"anibot/internal/domain/entities"
	"anibot/internal/ports/output"
)

var _ output.MediaLookup = (*Lookup)(nil)

// Lookup is an in-memory catalog. Unknown ids return domain.ErrMediaNotFound,
// ids listed in Fail return their error.
type Lookup struct {
	mu      sync.Mutex
	Anime   map[int]*entities.ListTitle
	Manga   map[int]*entities.ListTitle
	Media   map[int]*entities.Media
	Airings []entities.AiringEvent
	Fail    map[int]error

	AnimeCalls []int
	MangaCalls []int
	MediaCalls []string
}

func NewLookup() *Lookup {
	return &Lookup{
		Anime: map[int]*entities.ListTitle{},
		Manga: map[int]*entities.ListTitle{},
		Media: map[int]*entities.Media{},
		Fail:  map[int]error{},
	}
}

func (l *Lookup) AnimeSearchTitle(ctx context.Context, id int) (*entities.ListTitle, error) {
	l.mu.Lock()
	l.AnimeCalls = append(l.AnimeCalls, id)
	l.mu.Unlock()
	return l.title(ctx, l.Anime, id)
}

func (l *Lookup) MangaSearchTitle(ctx context.Context, id int) (*entities.ListTitle, error) {
	l.mu.Lock()
	l.MangaCalls = append(l.MangaCalls, id)
	l.mu.Unlock()
	return l.title(ctx, l.Manga, id)
}

func (l *Lookup) title(ctx context.Context, titles map[int]*entities.ListTitle, id int) (*entities.ListTitle, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	l.mu.Lock()
	defer l.mu.Unlock()
	if err, ok := l.Fail[id]; ok {
		return nil, err
	}
	title, ok := titles[id]
	if !ok {
		return nil, fmt.Errorf("title %d: %w", id, domain.ErrMediaNotFound)
	}
	return title, nil
}

func (l *Lookup) MediaAnime(ctx context.Context, id int) (*entities.Media, error) {
	return l.media(ctx, "ANIME", id)
}

func (l *Lookup) MediaManga(ctx context.Context, id int) (*entities.Media, error) {
	return l.media(ctx, "MANGA", id)
}

func (l *Lookup) media(ctx context.Context, kind string, id int) (*entities.Media, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	l.mu.Lock()
	defer l.mu.Unlock()
	l.MediaCalls = append(l.MediaCalls, fmt.Sprintf("%s:%d", kind, id))
	if err, ok := l.Fail[id]; ok {
		return nil, err
	}
	media, ok := l.Media[id]
	if !ok {
		return nil, fmt.Errorf("media %d: %w", id, domain.ErrMediaNotFound)
	}
	return media, nil
}

func (l *Lookup) AiringSchedules(ctx context.Context, ids []int, from, to time.Time) ([]entities.AiringEvent, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	wanted := make(map[int]bool, len(ids))
	for _, id := range ids {
		wanted[id] = true
	}
	l.mu.Lock()
	defer l.mu.Unlock()
	var out []entities.AiringEvent
	for _, a := range l.Airings {
		if wanted[a.MediaID] && a.AiringAt > from.Unix() && a.AiringAt <= to.Unix() {
			out = append(out, a)
		}
	}
	return out, nil
}
