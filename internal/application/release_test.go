package application

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"anibot/internal/domain/entities"
	"anibot/internal/testsupport"
)

func releaseMedia() *entities.Media {
	return &entities.Media{
		ID:              21,
		Type:            entities.MediaTypeAnime,
		Title:           entities.Title{English: str("One Piece"), Romaji: str("One Piece"), Native: str("ONE PIECE")},
		Status:          entities.StatusReleasing,
		Format:          str("TV"),
		Source:          str("MANGA"),
		Season:          str("FALL"),
		SeasonYear:      num(1999),
		Duration:        num(24),
		CountryOfOrigin: "JP",
		SiteURL:         str("https://anilist.co/anime/21"),
		CoverImage:      entities.CoverImage{ExtraLarge: str("https://img/21.jpg")},
		StartDate:       entities.FuzzyDate{Year: num(1999), Month: num(10), Day: num(20)},
		NextAiringEpisode: &entities.NextAiring{
			Episode:         num(1101),
			TimeUntilAiring: num(3600),
		},
		StreamingEpisodes: []entities.StreamingEpisode{{Title: "Episode 1100", URL: "https://cr/1100", Site: "Crunchyroll"}},
	}
}

func TestHandleNewRelease(t *testing.T) {
	svc := NewMediaService(testsupport.NewLookup(), testsupport.Logger())
	translator := &testsupport.Translator{}

	got := svc.HandleNewRelease(releaseMedia(), "pt-BR", translator)
	assert.NotEmpty(t, got)

	call, ok := translator.Last("newRelease")
	require.True(t, ok)
	assert.Equal(t, "pt-BR", call.Locale)
	for _, key := range []string{"image", "season", "duration", "startDate", "endDate"} {
		assert.Contains(t, call.Data, key)
	}
	assert.Equal(t, "https://img/21.jpg\n", call.Data["image"])
	assert.Equal(t, "season[season=season_FALL 1999]", call.Data["season"])
	assert.Equal(t, "startDate[date=1999-10-20]", call.Data["startDate"])
	assert.Equal(t, "endDateUnknown", call.Data["endDate"])
	assert.Equal(t, "newEpisode[episode=1100,episodes=?]", call.Data["newContent"])
	assert.Equal(t, "japan[japan=ONE PIECE]", call.Data["native"])
	assert.Equal(t, "https://anilist.co/anime/21", call.Data["siteUrl"])

	for _, c := range translator.Calls {
		assert.Equal(t, "pt-BR", c.Locale, c.Key)
	}
}

func TestHandleUserRelease(t *testing.T) {
	svc := NewMediaService(testsupport.NewLookup(), testsupport.Logger())
	translator := &testsupport.Translator{}

	svc.HandleUserRelease(releaseMedia(), "en", translator)

	call, ok := translator.Last("userRelease")
	require.True(t, ok)
	for _, key := range []string{"image", "season", "duration", "startDate", "endDate"} {
		assert.NotContains(t, call.Data, key)
	}
	for _, key := range []string{"siteUrl", "isAdult", "kind", "native", "english", "romaji", "newContent", "streamingEpisodes"} {
		assert.Contains(t, call.Data, key)
	}
	assert.Equal(t, "kindWithSource[format=format_TV,source=source_MANGA]", call.Data["kind"])
	assert.Equal(t, "", call.Data["isAdult"])
}

func TestHandleReleaseWithSparseMedia(t *testing.T) {
	svc := NewMediaService(testsupport.NewLookup(), testsupport.Logger())
	translator := &testsupport.Translator{}

	svc.HandleNewRelease(&entities.Media{}, "en", translator)

	call, ok := translator.Last("newRelease")
	require.True(t, ok)
	for key, value := range call.Data {
		assert.Equal(t, "", value, key)
	}
}
