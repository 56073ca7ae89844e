package anilist

import "anibot/internal/domain/entities"

func titleToDomain(t titleDTO) entities.Title {
	return entities.Title{
		English: t.English,
		Romaji:  t.Romaji,
		Native:  t.Native,
	}
}

func nextAiringToDomain(n *nextAiringDTO) *entities.NextAiring {
	if n == nil {
		return nil
	}
	return &entities.NextAiring{
		Episode:         n.Episode,
		TimeUntilAiring: n.TimeUntilAiring,
	}
}

func fuzzyDateToDomain(d fuzzyDateDTO) entities.FuzzyDate {
	return entities.FuzzyDate{Year: d.Year, Month: d.Month, Day: d.Day}
}

func listTitleToDomain(l listTitleDTO) entities.ListTitle {
	return entities.ListTitle{
		ID:                l.ID,
		Status:            entities.Status(l.Status),
		Title:             titleToDomain(l.Title),
		CountryOfOrigin:   l.CountryOfOrigin,
		SiteURL:           l.SiteURL,
		NextAiringEpisode: nextAiringToDomain(l.NextAiringEpisode),
	}
}

func mediaToDomain(m mediaDTO) entities.Media {
	episodes := make([]entities.StreamingEpisode, 0, len(m.StreamingEpisodes))
	for _, ep := range m.StreamingEpisodes {
		episodes = append(episodes, entities.StreamingEpisode{
			Title:     ep.Title,
			Thumbnail: ep.Thumbnail,
			URL:       ep.URL,
			Site:      ep.Site,
		})
	}
	return entities.Media{
		ID:                m.ID,
		Type:              entities.MediaType(m.Type),
		Title:             titleToDomain(m.Title),
		Description:       m.Description,
		Status:            entities.Status(m.Status),
		Format:            m.Format,
		Source:            m.Source,
		Season:            m.Season,
		SeasonYear:        m.SeasonYear,
		Episodes:          m.Episodes,
		Chapters:          m.Chapters,
		Volumes:           m.Volumes,
		Duration:          m.Duration,
		IsAdult:           m.IsAdult,
		CountryOfOrigin:   m.CountryOfOrigin,
		SiteURL:           m.SiteURL,
		CoverImage:        entities.CoverImage{ExtraLarge: m.CoverImage.ExtraLarge, Large: m.CoverImage.Large},
		BannerImage:       m.BannerImage,
		StartDate:         fuzzyDateToDomain(m.StartDate),
		EndDate:           fuzzyDateToDomain(m.EndDate),
		NextAiringEpisode: nextAiringToDomain(m.NextAiringEpisode),
		StreamingEpisodes: episodes,
		Genres:            m.Genres,
		AverageScore:      m.AverageScore,
	}
}
