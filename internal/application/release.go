package application

import (
	"maps"

	"anibot/internal/application/formatting"
	"anibot/internal/domain/entities"
	"anibot/internal/ports/output"
)

// HandleNewRelease renders the public announcement of a new release.
func (s *MediaService) HandleNewRelease(media *entities.Media, language string, t output.T) string {
	tr := output.Bind(t, language)
	data := map[string]any{
		"siteUrl":           siteURL(media.SiteURL),
		"season":            formatting.Season(media.Season, media.SeasonYear, tr),
		"isAdult":           formatting.IsAdult(media.IsAdult, tr),
		"kind":              formatting.Kind(media.Format, media.Source, tr),
		"image":             formatting.Image(media.CoverImage, media.BannerImage),
		"duration":          formatting.Duration(media.Duration, tr),
		"endDate":           formatting.EndDate(media.EndDate, media.Status, tr),
		"startDate":         formatting.StartDate(media.StartDate, media.Status, tr),
		"newContent":        formatting.NewContent(media.NextAiringEpisode, media.Episodes, tr),
		"streamingEpisodes": formatting.StreamingEpisodes(media.StreamingEpisodes, tr),
	}
	maps.Copy(data, formatting.AllTitles(media.Title, media.CountryOfOrigin, tr))
	return t.T(language, "newRelease", data)
}

// HandleUserRelease renders the shorter release notice sent to subscribers.
func (s *MediaService) HandleUserRelease(media *entities.Media, language string, t output.T) string {
	tr := output.Bind(t, language)
	data := map[string]any{
		"siteUrl":           siteURL(media.SiteURL),
		"isAdult":           formatting.IsAdult(media.IsAdult, tr),
		"kind":              formatting.Kind(media.Format, media.Source, tr),
		"newContent":        formatting.NewContent(media.NextAiringEpisode, media.Episodes, tr),
		"streamingEpisodes": formatting.StreamingEpisodes(media.StreamingEpisodes, tr),
	}
	maps.Copy(data, formatting.AllTitles(media.Title, media.CountryOfOrigin, tr))
	return t.T(language, "userRelease", data)
}

// mediaMessage renders the detail message of a media record.
func mediaMessage(media *entities.Media, tr output.Localizer) string {
	data := map[string]any{
		"siteUrl":     siteURL(media.SiteURL),
		"image":       formatting.Image(media.CoverImage, media.BannerImage),
		"kind":        formatting.Kind(media.Format, media.Source, tr),
		"status":      formatting.Status(media.Status, tr),
		"progress":    formatting.Progress(media, tr),
		"duration":    formatting.Duration(media.Duration, tr),
		"season":      formatting.Season(media.Season, media.SeasonYear, tr),
		"startDate":   formatting.StartDate(media.StartDate, media.Status, tr),
		"endDate":     formatting.EndDate(media.EndDate, media.Status, tr),
		"genres":      formatting.Genres(media.Genres, tr),
		"score":       formatting.Score(media.AverageScore, tr),
		"isAdult":     formatting.IsAdult(media.IsAdult, tr),
		"description": formatting.Description(media.Description, tr),
	}
	maps.Copy(data, formatting.AllTitles(media.Title, media.CountryOfOrigin, tr))
	return tr.T("mediaMore", data)
}

func siteURL(u *string) string {
	if u == nil {
		return ""
	}
	return *u
}
