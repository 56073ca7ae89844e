package anilist

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"

	"github.com/avast/retry-go/v4"

	"anibot/internal/domain"
	"anibot/internal/domain/entities"
	"anibot/internal/ports/output"
)

const (
	DefaultEndpoint = "https://graphql.anilist.co"

	maxResponseBytes = 4 << 20
	maxAiringPages   = 10
)

// Ensure Client implements the output.MediaLookup port.
var _ output.MediaLookup = (*Client)(nil)

// Client queries the AniList GraphQL API.
type Client struct {
	endpoint string
	httpc    *http.Client
	logger   *slog.Logger

	attempts   uint
	retryDelay time.Duration
}

func NewClient(endpoint string, httpc *http.Client, logger *slog.Logger) *Client {
	if endpoint == "" {
		endpoint = DefaultEndpoint
	}
	if httpc == nil {
		httpc = &http.Client{Timeout: 15 * time.Second}
	}
	return &Client{
		endpoint:   endpoint,
		httpc:      httpc,
		logger:     logger,
		attempts:   3,
		retryDelay: 500 * time.Millisecond,
	}
}

func (c *Client) AnimeSearchTitle(ctx context.Context, id int) (*entities.ListTitle, error) {
	return c.searchTitle(ctx, id, entities.MediaTypeAnime)
}

func (c *Client) MangaSearchTitle(ctx context.Context, id int) (*entities.ListTitle, error) {
	return c.searchTitle(ctx, id, entities.MediaTypeManga)
}

func (c *Client) searchTitle(ctx context.Context, id int, kind entities.MediaType) (*entities.ListTitle, error) {
	var resp struct {
		Media *listTitleDTO `json:"Media"`
	}
	if err := c.do(ctx, titleQuery, map[string]any{"id": id, "type": kind}, &resp); err != nil {
		return nil, fmt.Errorf("%s title %d: %w", kind, id, err)
	}
	if resp.Media == nil {
		return nil, fmt.Errorf("%s title %d: %w", kind, id, domain.ErrMediaNotFound)
	}
	title := listTitleToDomain(*resp.Media)
	return &title, nil
}

func (c *Client) MediaAnime(ctx context.Context, id int) (*entities.Media, error) {
	return c.media(ctx, id, entities.MediaTypeAnime)
}

func (c *Client) MediaManga(ctx context.Context, id int) (*entities.Media, error) {
	return c.media(ctx, id, entities.MediaTypeManga)
}

func (c *Client) media(ctx context.Context, id int, kind entities.MediaType) (*entities.Media, error) {
	var resp struct {
		Media *mediaDTO `json:"Media"`
	}
	if err := c.do(ctx, mediaQuery, map[string]any{"id": id, "type": kind}, &resp); err != nil {
		return nil, fmt.Errorf("%s media %d: %w", kind, id, err)
	}
	if resp.Media == nil {
		return nil, fmt.Errorf("%s media %d: %w", kind, id, domain.ErrMediaNotFound)
	}
	media := mediaToDomain(*resp.Media)
	return &media, nil
}

// AiringSchedules lists episodes of ids airing in (from, to], oldest first.
func (c *Client) AiringSchedules(ctx context.Context, ids []int, from, to time.Time) ([]entities.AiringEvent, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	var events []entities.AiringEvent
	for page := 1; page <= maxAiringPages; page++ {
		var resp airingPageDTO
		vars := map[string]any{
			"ids":  ids,
			"from": from.Unix(),
			"to":   to.Unix() + 1,
			"page": page,
		}
		if err := c.do(ctx, airingQuery, vars, &resp); err != nil {
			return nil, fmt.Errorf("airing schedules page %d: %w", page, err)
		}
		for _, s := range resp.Page.AiringSchedules {
			events = append(events, entities.AiringEvent{
				MediaID:  s.MediaID,
				Episode:  s.Episode,
				AiringAt: s.AiringAt,
			})
		}
		if !resp.Page.PageInfo.HasNextPage {
			return events, nil
		}
	}
	c.logger.Warn("anilist: airing schedules truncated", "pages", maxAiringPages, "events", len(events))
	return events, nil
}

// do posts one GraphQL query and decodes its data into out. Rate limiting and
// server errors are retried with backoff; anything else fails at once.
func (c *Client) do(ctx context.Context, query string, variables map[string]any, out any) error {
	body, err := json.Marshal(graphQLRequest{Query: query, Variables: variables})
	if err != nil {
		return fmt.Errorf("encode request: %w", err)
	}

	return retry.Do(
		func() error {
			return c.post(ctx, body, out)
		},
		retry.Context(ctx),
		retry.Attempts(c.attempts),
		retry.Delay(c.retryDelay),
		retry.DelayType(retry.BackOffDelay),
		retry.LastErrorOnly(true),
		retry.OnRetry(func(n uint, err error) {
			c.logger.Warn("anilist: retrying request", "attempt", n+1, "error", err)
		}),
	)
}

func (c *Client) post(ctx context.Context, body []byte, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(body))
	if err != nil {
		return retry.Unrecoverable(err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpc.Do(req)
	if err != nil {
		if ctx.Err() != nil {
			return retry.Unrecoverable(err)
		}
		return err
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
	if err != nil {
		return fmt.Errorf("read response: %w", err)
	}

	var envelope graphQLResponse
	decodeErr := json.Unmarshal(raw, &envelope)

	if resp.StatusCode != http.StatusOK || len(envelope.Errors) > 0 {
		apiErr := newAPIError(resp.StatusCode, envelope.Errors)
		switch {
		case apiErr.notFound():
			return retry.Unrecoverable(errors.Join(domain.ErrMediaNotFound, apiErr))
		case apiErr.Temporary():
			return apiErr
		default:
			return retry.Unrecoverable(apiErr)
		}
	}
	if decodeErr != nil {
		return retry.Unrecoverable(fmt.Errorf("decode response: %w", decodeErr))
	}
	if err := json.Unmarshal(envelope.Data, out); err != nil {
		return retry.Unrecoverable(fmt.Errorf("decode data: %w", err))
	}
	return nil
}
