package anilist

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"anibot/internal/domain"
	"anibot/internal/domain/entities"
	"anibot/internal/testsupport"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	c := NewClient(srv.URL, srv.Client(), testsupport.Logger())
	c.retryDelay = time.Millisecond
	return c
}

func decodeRequest(t *testing.T, r *http.Request) graphQLRequest {
	t.Helper()
	var req graphQLRequest
	require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
	return req
}

func TestAnimeSearchTitle(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		req := decodeRequest(t, r)
		assert.Equal(t, titleQuery, req.Query)
		assert.EqualValues(t, 16498, req.Variables["id"])
		assert.Equal(t, "ANIME", req.Variables["type"])

		_, _ = w.Write([]byte(`{"data":{"Media":{
			"id":16498,"status":"FINISHED",
			"title":{"romaji":"Shingeki no Kyojin","english":"Attack on Titan","native":"進撃の巨人"},
			"countryOfOrigin":"JP","siteUrl":"https://anilist.co/anime/16498",
			"nextAiringEpisode":null}}}`))
	})

	title, err := c.AnimeSearchTitle(context.Background(), 16498)
	require.NoError(t, err)
	assert.Equal(t, 16498, title.ID)
	assert.Equal(t, entities.StatusFinished, title.Status)
	assert.Equal(t, "Attack on Titan", *title.Title.English)
	assert.Equal(t, "進撃の巨人", *title.Title.Native)
	assert.Equal(t, "JP", title.CountryOfOrigin)
	assert.Nil(t, title.NextAiringEpisode)
}

func TestMangaSearchTitleWithNullFields(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		req := decodeRequest(t, r)
		assert.Equal(t, "MANGA", req.Variables["type"])
		_, _ = w.Write([]byte(`{"data":{"Media":{
			"id":30013,"status":"RELEASING",
			"title":{"romaji":"ONE PIECE","english":null,"native":null},
			"countryOfOrigin":"JP","siteUrl":null,
			"nextAiringEpisode":{"episode":null,"timeUntilAiring":null}}}}`))
	})

	title, err := c.MangaSearchTitle(context.Background(), 30013)
	require.NoError(t, err)
	assert.Nil(t, title.Title.English)
	assert.Nil(t, title.SiteURL)
	require.NotNil(t, title.NextAiringEpisode)
	assert.Nil(t, title.NextAiringEpisode.Episode)
}

func TestMediaManga(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		req := decodeRequest(t, r)
		assert.Equal(t, mediaQuery, req.Query)
		_, _ = w.Write([]byte(`{"data":{"Media":{
			"id":30002,"type":"MANGA","status":"RELEASING",
			"title":{"romaji":"Berserk","english":"Berserk","native":"ベルセルク"},
			"description":"Guts<br>lives.","format":"MANGA","source":"ORIGINAL",
			"season":null,"seasonYear":null,"episodes":null,"chapters":null,"volumes":42,
			"duration":null,"isAdult":false,"countryOfOrigin":"JP",
			"siteUrl":"https://anilist.co/manga/30002",
			"coverImage":{"extraLarge":"https://img/xl.jpg","large":"https://img/l.jpg"},
			"bannerImage":null,
			"startDate":{"year":1989,"month":8,"day":25},
			"endDate":{"year":null,"month":null,"day":null},
			"nextAiringEpisode":null,
			"streamingEpisodes":[],
			"genres":["Action","Drama"],
			"averageScore":93}}}`))
	})

	media, err := c.MediaManga(context.Background(), 30002)
	require.NoError(t, err)
	assert.Equal(t, entities.MediaTypeManga, media.Type)
	assert.Equal(t, "ORIGINAL", *media.Source)
	assert.Equal(t, 42, *media.Volumes)
	assert.Nil(t, media.Chapters)
	assert.Equal(t, 1989, *media.StartDate.Year)
	assert.Nil(t, media.EndDate.Year)
	assert.Equal(t, "https://img/xl.jpg", *media.CoverImage.ExtraLarge)
	assert.Equal(t, []string{"Action", "Drama"}, media.Genres)
	assert.Equal(t, 93, *media.AverageScore)
	assert.Empty(t, media.StreamingEpisodes)
}

func TestNotFoundIsNotRetried(t *testing.T) {
	var calls atomic.Int32
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		w.WriteHeader(http.StatusNotFound)
		_, _ = w.Write([]byte(`{"errors":[{"message":"Not Found.","status":404}],"data":{"Media":null}}`))
	})

	_, err := c.MediaAnime(context.Background(), 1)
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrMediaNotFound)
	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusNotFound, apiErr.StatusCode)
	assert.Equal(t, int32(1), calls.Load())
}

func TestNullMediaIsNotFound(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"data":{"Media":null}}`))
	})

	_, err := c.AnimeSearchTitle(context.Background(), 1)
	assert.ErrorIs(t, err, domain.ErrMediaNotFound)
}

func TestRateLimitIsRetried(t *testing.T) {
	var calls atomic.Int32
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if calls.Add(1) == 1 {
			w.WriteHeader(http.StatusTooManyRequests)
			_, _ = w.Write([]byte(`{"errors":[{"message":"Too Many Requests.","status":429}],"data":null}`))
			return
		}
		_, _ = w.Write([]byte(`{"data":{"Media":{"id":1,"status":"RELEASING","title":{"romaji":"X"},"countryOfOrigin":"JP"}}}`))
	})

	title, err := c.AnimeSearchTitle(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, "X", *title.Title.Romaji)
	assert.Equal(t, int32(2), calls.Load())
}

func TestServerErrorsExhaustAttempts(t *testing.T) {
	var calls atomic.Int32
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		w.WriteHeader(http.StatusBadGateway)
	})

	_, err := c.AnimeSearchTitle(context.Background(), 1)
	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusBadGateway, apiErr.StatusCode)
	assert.True(t, apiErr.Temporary())
	assert.Equal(t, int32(3), calls.Load())
}

func TestGraphQLErrorsFailWithoutRetry(t *testing.T) {
	var calls atomic.Int32
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		w.WriteHeader(http.StatusBadRequest)
		_, _ = w.Write([]byte(`{"errors":[{"message":"Variable \"$id\" got invalid value","status":400}]}`))
	})

	_, err := c.AnimeSearchTitle(context.Background(), 1)
	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, []string{`Variable "$id" got invalid value`}, apiErr.Messages)
	assert.False(t, errors.Is(err, domain.ErrMediaNotFound))
	assert.Equal(t, int32(1), calls.Load())
}

func TestCancelledContext(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"data":{"Media":null}}`))
	})
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := c.AnimeSearchTitle(ctx, 1)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestAiringSchedulesPages(t *testing.T) {
	from := time.Unix(1_700_000_000, 0)
	to := from.Add(10 * time.Minute)

	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		req := decodeRequest(t, r)
		assert.Equal(t, airingQuery, req.Query)
		assert.EqualValues(t, from.Unix(), req.Variables["from"])
		assert.EqualValues(t, to.Unix()+1, req.Variables["to"])
		assert.Equal(t, []any{float64(1), float64(2)}, req.Variables["ids"])

		switch req.Variables["page"] {
		case float64(1):
			_, _ = w.Write([]byte(`{"data":{"Page":{"pageInfo":{"hasNextPage":true},
				"airingSchedules":[{"mediaId":1,"episode":5,"airingAt":1700000100}]}}}`))
		default:
			_, _ = w.Write([]byte(`{"data":{"Page":{"pageInfo":{"hasNextPage":false},
				"airingSchedules":[{"mediaId":2,"episode":9,"airingAt":1700000200}]}}}`))
		}
	})

	events, err := c.AiringSchedules(context.Background(), []int{1, 2}, from, to)
	require.NoError(t, err)
	assert.Equal(t, []entities.AiringEvent{
		{MediaID: 1, Episode: 5, AiringAt: 1700000100},
		{MediaID: 2, Episode: 9, AiringAt: 1700000200},
	}, events)
}

func TestAiringSchedulesWithoutIDs(t *testing.T) {
	c := NewClient("http://127.0.0.1:1", nil, testsupport.Logger())
	events, err := c.AiringSchedules(context.Background(), nil, time.Now(), time.Now())
	require.NoError(t, err)
	assert.Nil(t, events)
}
