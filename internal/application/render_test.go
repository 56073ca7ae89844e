package application

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"anibot/internal/domain/entities"
	"anibot/internal/testsupport"
)

func str(s string) *string { return &s }
func num(n int) *int       { return &n }

func TestRenderInfo(t *testing.T) {
	tests := []struct {
		name string
		info entities.InfoFields
		want string
	}{
		{
			name: "no field",
			info: entities.InfoFields{CountryOfOrigin: "JP"},
			want: "",
		},
		{
			name: "native only from japan",
			info: entities.InfoFields{Title: entities.Title{Native: str("進撃の巨人")}, CountryOfOrigin: "JP"},
			want: "japan[japan=進撃の巨人]",
		},
		{
			name: "native only elsewhere",
			info: entities.InfoFields{Title: entities.Title{Native: str("全职高手")}, CountryOfOrigin: "CN"},
			want: "chinese[chinese=全职高手]",
		},
		{
			name: "every field in order",
			info: entities.InfoFields{
				Title:           entities.Title{English: str("Attack on Titan"), Romaji: str("Shingeki no Kyojin"), Native: str("進撃の巨人")},
				CountryOfOrigin: "JP",
				SiteURL:         str("https://anilist.co/anime/16498"),
			},
			want: "japan[japan=進撃の巨人]english[english=Attack on Titan]romaji[romaji=Shingeki no Kyojin]seeMore[siteUrl=https://anilist.co/anime/16498]",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tr, _ := testsupport.NewLocalizer()
			assert.Equal(t, tt.want, renderInfo(tt.info, tr))
		})
	}
}

func TestRenderCountdown(t *testing.T) {
	tr, _ := testsupport.NewLocalizer()
	got := renderCountdown(entities.CountdownFields{
		Rank: 3,
		Info: entities.InfoFields{Title: entities.Title{Romaji: str("Sousou no Frieren")}},
		NextAiringEpisode: entities.NextAiring{
			Episode:         num(12),
			TimeUntilAiring: num(90000),
		},
	}, tr)
	assert.Equal(t, "IV\nromaji[romaji=Sousou no Frieren]episode[episode=12]timeUntilAiring[timeUntilAiring=days[count=1] hours[count=1]]", got)

	got = renderCountdown(entities.CountdownFields{Info: entities.InfoFields{Title: entities.Title{Romaji: str("X")}}}, tr)
	assert.Equal(t, "I\nromaji[romaji=X]", got)
}

func TestRenderList(t *testing.T) {
	titles := []entities.ListTitle{
		{ID: 1, Status: entities.StatusFinished, Title: entities.Title{English: str("One")}},
		{ID: 2, Status: entities.StatusReleasing, Title: entities.Title{English: str("Two")}},
		{ID: 3, Status: entities.StatusFinished, Title: entities.Title{English: str("Three")}},
	}
	tr, _ := testsupport.NewLocalizer()

	assert.Equal(t,
		"english[english=One]\nenglish[english=Two]\nenglish[english=Three]\n",
		renderList(titles, "", tr))
	assert.Equal(t,
		"english[english=One]\nenglish[english=Three]\n",
		renderList(titles, entities.StatusFinished, tr))
	assert.Equal(t, "", renderList(titles, entities.StatusCancelled, tr))
	assert.Equal(t, "", renderList(nil, "", tr))
}

func TestCountdownOrder(t *testing.T) {
	airing := func(id int, seconds *int) entities.ListTitle {
		return entities.ListTitle{
			ID:                id,
			Status:            entities.StatusReleasing,
			NextAiringEpisode: &entities.NextAiring{TimeUntilAiring: seconds},
		}
	}
	titles := []entities.ListTitle{
		airing(1, nil),
		airing(2, num(300)),
		{ID: 3, Status: entities.StatusReleasing},
		airing(4, num(100)),
		airing(5, num(300)),
		{ID: 6, Status: entities.StatusFinished, NextAiringEpisode: &entities.NextAiring{TimeUntilAiring: num(1)}},
	}

	var ids []int
	for _, title := range countdownOrder(titles) {
		ids = append(ids, title.ID)
	}
	assert.Equal(t, []int{4, 2, 5, 1, 3}, ids)
}
