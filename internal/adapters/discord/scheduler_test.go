package discord

import (
	"context"
	"errors"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/bwmarrin/discordgo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"anibot/internal/application"
	"anibot/internal/domain/entities"
	"anibot/internal/ports/input"
	"anibot/internal/testsupport"
	pkgdiscord "anibot/pkg/discord"
)

type sentMessage struct {
	channelID string
	content   string
}

type fakeMessenger struct {
	mu       sync.Mutex
	sent     []sentMessage
	blocked  map[string]bool
	channels int
}

func (m *fakeMessenger) ChannelMessageSend(channelID, content string, _ ...discordgo.RequestOption) (*discordgo.Message, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.sent = append(m.sent, sentMessage{channelID: channelID, content: content})
	return &discordgo.Message{ChannelID: channelID, Content: content}, nil
}

func (m *fakeMessenger) UserChannelCreate(recipientID string, _ ...discordgo.RequestOption) (*discordgo.Channel, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.blocked[recipientID] {
		return nil, errors.New("cannot send messages to this user")
	}
	m.channels++
	return &discordgo.Channel{ID: "dm-" + recipientID}, nil
}

type fakeReleases struct {
	releases []input.Release
	err      error
	from, to time.Time
}

func (f *fakeReleases) ReleasesBetween(_ context.Context, from, to time.Time) ([]input.Release, error) {
	f.from, f.to = from, to
	return f.releases, f.err
}

func newSchedulerHandler(releases input.ReleaseUseCase, channelID string) (*Handler, *testsupport.Translator) {
	translator := &testsupport.Translator{}
	logger := testsupport.Logger()
	lookup := testsupport.NewLookup()
	return NewHandler(
		application.NewMediaService(lookup, logger),
		application.NewWatchlistService(&testsupport.WatchlistRepo{}, lookup),
		releases,
		translator,
		"en",
		channelID,
		logger,
	), translator
}

func TestAnnounceReleases(t *testing.T) {
	releases := &fakeReleases{releases: []input.Release{{
		Event: entities.AiringEvent{MediaID: 1, Episode: 5},
		Media: &entities.Media{ID: 1, Title: entities.Title{Romaji: testsupport.Ptr("Frieren")}},
		Subscribers: []entities.Subscriber{
			{UserID: "a", Locale: "pt-BR"},
			{UserID: "blocked", Locale: "en"},
			{UserID: "b"},
		},
	}}}
	h, translator := newSchedulerHandler(releases, "42")
	m := &fakeMessenger{blocked: map[string]bool{"blocked": true}}

	from, to := time.Unix(100, 0), time.Unix(700, 0)
	require.NoError(t, h.announceReleases(context.Background(), m, from, to))
	assert.Equal(t, from, releases.from)
	assert.Equal(t, to, releases.to)

	require.Len(t, m.sent, 3)
	assert.Equal(t, "42", m.sent[0].channelID)
	assert.True(t, strings.HasPrefix(m.sent[0].content, "newRelease["))
	assert.Equal(t, "dm-a", m.sent[1].channelID)
	assert.True(t, strings.HasPrefix(m.sent[1].content, "userRelease["))
	assert.Equal(t, "dm-b", m.sent[2].channelID)

	var locales []string
	for _, c := range translator.Calls {
		if c.Key == "userRelease" {
			locales = append(locales, c.Locale)
		}
	}
	assert.Equal(t, []string{"pt-BR", "en", "en"}, locales)
	call, ok := translator.Last("newRelease")
	require.True(t, ok)
	assert.Equal(t, "en", call.Locale)
}

func TestAnnounceReleasesWithoutChannel(t *testing.T) {
	releases := &fakeReleases{releases: []input.Release{{
		Media:       &entities.Media{ID: 1},
		Subscribers: []entities.Subscriber{{UserID: "a", Locale: "en"}},
	}}}
	h, _ := newSchedulerHandler(releases, "")
	m := &fakeMessenger{}

	require.NoError(t, h.announceReleases(context.Background(), m, time.Now(), time.Now()))
	require.Len(t, m.sent, 1)
	assert.Equal(t, "dm-a", m.sent[0].channelID)
}

func TestAnnounceReleasesPropagatesFeedError(t *testing.T) {
	h, _ := newSchedulerHandler(&fakeReleases{err: errors.New("db down")}, "42")
	m := &fakeMessenger{}

	assert.Error(t, h.announceReleases(context.Background(), m, time.Now(), time.Now()))
	assert.Empty(t, m.sent)
}

func TestSendSplitsLongMessages(t *testing.T) {
	m := &fakeMessenger{}
	content := strings.Repeat(strings.Repeat("a", 99)+"\n", 50)

	require.NoError(t, send(m, "42", content))
	require.Len(t, m.sent, 3)
	var joined strings.Builder
	for _, s := range m.sent {
		assert.LessOrEqual(t, len(s.content), pkgdiscord.MaxMessageLength)
		joined.WriteString(s.content)
	}
	assert.Equal(t, content, joined.String())
}

func TestRunReleaseAnnouncementsStopsWithContext(t *testing.T) {
	h, _ := newSchedulerHandler(&fakeReleases{}, "")
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		h.RunReleaseAnnouncements(ctx, &fakeMessenger{}, time.Hour)
		close(done)
	}()
	cancel()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("scheduler did not stop")
	}
}
