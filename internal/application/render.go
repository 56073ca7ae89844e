package application

import (
	"cmp"
	"slices"
	"strings"

	"anibot/internal/application/formatting"
	"anibot/internal/domain/entities"
	"anibot/internal/ports/output"
	"anibot/pkg/roman"
)

// renderInfo renders the names and link of one title, skipping absent fields.
func renderInfo(info entities.InfoFields, tr output.Localizer) string {
	var b strings.Builder
	if info.Title.Native != nil {
		b.WriteString(formatting.Native(*info.Title.Native, info.CountryOfOrigin, tr))
	}
	if info.Title.English != nil {
		b.WriteString(tr.T("english", map[string]any{"english": *info.Title.English}))
	}
	if info.Title.Romaji != nil {
		b.WriteString(tr.T("romaji", map[string]any{"romaji": *info.Title.Romaji}))
	}
	if info.SiteURL != nil {
		b.WriteString(tr.T("seeMore", map[string]any{"siteUrl": *info.SiteURL}))
	}
	return b.String()
}

func renderCountdown(c entities.CountdownFields, tr output.Localizer) string {
	var b strings.Builder
	b.WriteString(roman.Format(c.Rank+1))
	b.WriteString("\n")
	b.WriteString(renderInfo(c.Info, tr))

	next := c.NextAiringEpisode
	if next.Episode != nil {
		b.WriteString(tr.T("episode", map[string]any{"episode": *next.Episode}))
	}
	if next.TimeUntilAiring != nil {
		b.WriteString(tr.T("timeUntilAiring", map[string]any{
			"timeUntilAiring": formatting.NextAiring(*next.TimeUntilAiring, tr),
		}))
	}
	return b.String()
}

// renderList renders one info line per title whose status matches filterBy.
// An empty filterBy keeps every title.
func renderList(titles []entities.ListTitle, filterBy entities.Status, tr output.Localizer) string {
	var b strings.Builder
	for _, title := range titles {
		if filterBy != "" && title.Status != filterBy {
			continue
		}
		b.WriteString(renderInfo(title.Info(), tr))
		b.WriteString("\n")
	}
	return b.String()
}

// countdownOrder sorts releasing titles by soonest next episode. Titles
// without a known airing time go last.
func countdownOrder(titles []entities.ListTitle) []entities.ListTitle {
	var releasing []entities.ListTitle
	for _, title := range titles {
		if title.Status == entities.StatusReleasing {
			releasing = append(releasing, title)
		}
	}
	slices.SortStableFunc(releasing, func(a, b entities.ListTitle) int {
		ta, oka := timeUntilAiring(a)
		tb, okb := timeUntilAiring(b)
		switch {
		case oka && okb:
			return cmp.Compare(ta, tb)
		case oka:
			return -1
		case okb:
			return 1
		}
		return 0
	})
	return releasing
}

func timeUntilAiring(title entities.ListTitle) (int, bool) {
	if title.NextAiringEpisode == nil || title.NextAiringEpisode.TimeUntilAiring == nil {
		return 0, false
	}
	return *title.NextAiringEpisode.TimeUntilAiring, true
}
