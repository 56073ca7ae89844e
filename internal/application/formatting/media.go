// Package formatting turns single media fields into display lines.
// Every helper returns "" when its source field is absent, so callers can
// concatenate results without checking.
package formatting

import (
	"fmt"
	"html"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/microcosm-cc/bluemonday"

	"anibot/internal/domain/entities"
	"anibot/internal/ports/output"
)

const (
	maxStreamingEpisodes = 3
	maxDescriptionRunes  = 600
)

var (
	descriptionPolicy = bluemonday.StrictPolicy()
	lineBreaks        = strings.NewReplacer("<br>", "\n", "<br/>", "\n", "<br />", "\n")
)

// Native renders the native title, flagged by country of origin.
func Native(native, countryOfOrigin string, tr output.Localizer) string {
	if countryOfOrigin == "JP" {
		return tr.T("japan", map[string]any{"japan": native})
	}
	return tr.T("chinese", map[string]any{"chinese": native})
}

// AllTitles renders each title line keyed by its template placeholder.
func AllTitles(title entities.Title, countryOfOrigin string, tr output.Localizer) map[string]any {
	titles := map[string]any{"native": "", "english": "", "romaji": ""}
	if title.Native != nil {
		titles["native"] = Native(*title.Native, countryOfOrigin, tr)
	}
	if title.English != nil {
		titles["english"] = tr.T("english", map[string]any{"english": *title.English})
	}
	if title.Romaji != nil {
		titles["romaji"] = tr.T("romaji", map[string]any{"romaji": *title.Romaji})
	}
	return titles
}

func Season(season *string, year *int, tr output.Localizer) string {
	if season == nil {
		return ""
	}
	label := tr.T("season_"+*season, nil)
	if year != nil {
		label += " " + strconv.Itoa(*year)
	}
	return tr.T("season", map[string]any{"season": label})
}

func IsAdult(isAdult bool, tr output.Localizer) string {
	if !isAdult {
		return ""
	}
	return tr.T("isAdult", nil)
}

// Kind renders the media format, with its source material when known.
func Kind(format, source *string, tr output.Localizer) string {
	if format == nil {
		return ""
	}
	data := map[string]any{"format": tr.T("format_"+*format, nil)}
	if source == nil {
		return tr.T("kind", data)
	}
	data["source"] = tr.T("source_"+*source, nil)
	return tr.T("kindWithSource", data)
}

// Image picks the widest available picture and puts it on its own line so
// the chat client unfurls it.
func Image(cover entities.CoverImage, banner *string) string {
	for _, u := range []*string{banner, cover.ExtraLarge, cover.Large} {
		if u != nil && *u != "" {
			return *u + "\n"
		}
	}
	return ""
}

func Duration(minutes *int, tr output.Localizer) string {
	if minutes == nil || *minutes <= 0 {
		return ""
	}
	return tr.T("duration", map[string]any{"duration": span(*minutes*60, tr)})
}

func StartDate(date entities.FuzzyDate, status entities.Status, tr output.Localizer) string {
	if d := Date(date); d != "" {
		return tr.T("startDate", map[string]any{"date": d})
	}
	if status == entities.StatusNotYetReleased {
		return tr.T("startDateUnknown", nil)
	}
	return ""
}

func EndDate(date entities.FuzzyDate, status entities.Status, tr output.Localizer) string {
	if d := Date(date); d != "" {
		return tr.T("endDate", map[string]any{"date": d})
	}
	if status == entities.StatusReleasing {
		return tr.T("endDateUnknown", nil)
	}
	return ""
}

// Date formats the known prefix of a fuzzy date as YYYY, YYYY-MM or YYYY-MM-DD.
func Date(date entities.FuzzyDate) string {
	if date.Year == nil {
		return ""
	}
	s := fmt.Sprintf("%04d", *date.Year)
	if date.Month == nil {
		return s
	}
	s += fmt.Sprintf("-%02d", *date.Month)
	if date.Day == nil {
		return s
	}
	return s + fmt.Sprintf("-%02d", *date.Day)
}

// NewContent renders the latest released episode: the one before the next
// scheduled airing, or the last one of a finished run.
func NewContent(next *entities.NextAiring, episodes *int, tr output.Localizer) string {
	latest := 0
	switch {
	case next != nil && next.Episode != nil:
		latest = *next.Episode - 1
	case episodes != nil:
		latest = *episodes
	}
	if latest < 1 {
		return ""
	}
	total := "?"
	if episodes != nil {
		total = strconv.Itoa(*episodes)
	}
	return tr.T("newEpisode", map[string]any{"episode": latest, "episodes": total})
}

// StreamingEpisodes renders links to the most recent streaming episodes.
func StreamingEpisodes(eps []entities.StreamingEpisode, tr output.Localizer) string {
	if len(eps) == 0 {
		return ""
	}
	if len(eps) > maxStreamingEpisodes {
		eps = eps[len(eps)-maxStreamingEpisodes:]
	}
	var b strings.Builder
	for _, ep := range eps {
		b.WriteString(tr.T("streamingEpisode", map[string]any{
			"title": ep.Title,
			"url":   ep.URL,
			"site":  ep.Site,
		}))
	}
	return b.String()
}

// NextAiring formats a countdown in seconds as days, hours and minutes.
func NextAiring(seconds int, tr output.Localizer) string {
	return span(seconds, tr)
}

func span(seconds int, tr output.Localizer) string {
	if seconds < 0 {
		seconds = 0
	}
	days := seconds / 86400
	hours := seconds % 86400 / 3600
	minutes := seconds % 3600 / 60

	var parts []string
	if days > 0 {
		parts = append(parts, tr.T("days", map[string]any{"count": days}))
	}
	if hours > 0 {
		parts = append(parts, tr.T("hours", map[string]any{"count": hours}))
	}
	if minutes > 0 || len(parts) == 0 {
		parts = append(parts, tr.T("minutes", map[string]any{"count": minutes}))
	}
	return strings.Join(parts, " ")
}

func Status(status entities.Status, tr output.Localizer) string {
	if status == "" {
		return ""
	}
	return tr.T("status", map[string]any{"status": tr.T("status_"+string(status), nil)})
}

// Progress renders the episode count of an anime, or chapters and volumes of a manga.
func Progress(media *entities.Media, tr output.Localizer) string {
	if media.Type == entities.MediaTypeManga {
		var b strings.Builder
		if media.Chapters != nil {
			b.WriteString(tr.T("chapters", map[string]any{"chapters": *media.Chapters}))
		}
		if media.Volumes != nil {
			b.WriteString(tr.T("volumes", map[string]any{"volumes": *media.Volumes}))
		}
		return b.String()
	}
	if media.Episodes == nil {
		return ""
	}
	return tr.T("episodes", map[string]any{"episodes": *media.Episodes})
}

func Genres(genres []string, tr output.Localizer) string {
	if len(genres) == 0 {
		return ""
	}
	return tr.T("genres", map[string]any{"genres": strings.Join(genres, ", ")})
}

func Score(score *int, tr output.Localizer) string {
	if score == nil {
		return ""
	}
	return tr.T("averageScore", map[string]any{"score": *score})
}

// Description strips the catalog's HTML and truncates long synopses.
func Description(description *string, tr output.Localizer) string {
	if description == nil {
		return ""
	}
	text := lineBreaks.Replace(*description)
	text = html.UnescapeString(descriptionPolicy.Sanitize(text))
	text = strings.TrimSpace(text)
	if text == "" {
		return ""
	}
	if utf8.RuneCountInString(text) > maxDescriptionRunes {
		text = strings.TrimSpace(string([]rune(text)[:maxDescriptionRunes])) + "…"
	}
	return tr.T("synopsis", map[string]any{"synopsis": text})
}
