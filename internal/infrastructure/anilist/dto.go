package anilist

import "encoding/json"

type graphQLRequest struct {
	Query     string         `json:"query"`
	Variables map[string]any `json:"variables,omitempty"`
}

type graphQLResponse struct {
	Data   json.RawMessage `json:"data"`
	Errors []graphQLError  `json:"errors"`
}

type graphQLError struct {
	Message string `json:"message"`
	Status  int    `json:"status"`
}

type titleDTO struct {
	English *string `json:"english"`
	Romaji  *string `json:"romaji"`
	Native  *string `json:"native"`
}

type nextAiringDTO struct {
	Episode         *int `json:"episode"`
	TimeUntilAiring *int `json:"timeUntilAiring"`
}

type fuzzyDateDTO struct {
	Year  *int `json:"year"`
	Month *int `json:"month"`
	Day   *int `json:"day"`
}

type coverImageDTO struct {
	ExtraLarge *string `json:"extraLarge"`
	Large      *string `json:"large"`
}

type streamingEpisodeDTO struct {
	Title     string `json:"title"`
	Thumbnail string `json:"thumbnail"`
	URL       string `json:"url"`
	Site      string `json:"site"`
}

type listTitleDTO struct {
	ID                int            `json:"id"`
	Status            string         `json:"status"`
	Title             titleDTO       `json:"title"`
	CountryOfOrigin   string         `json:"countryOfOrigin"`
	SiteURL           *string        `json:"siteUrl"`
	NextAiringEpisode *nextAiringDTO `json:"nextAiringEpisode"`
}

type mediaDTO struct {
	ID                int                   `json:"id"`
	Type              string                `json:"type"`
	Status            string                `json:"status"`
	Title             titleDTO              `json:"title"`
	Description       *string               `json:"description"`
	Format            *string               `json:"format"`
	Source            *string               `json:"source"`
	Season            *string               `json:"season"`
	SeasonYear        *int                  `json:"seasonYear"`
	Episodes          *int                  `json:"episodes"`
	Chapters          *int                  `json:"chapters"`
	Volumes           *int                  `json:"volumes"`
	Duration          *int                  `json:"duration"`
	IsAdult           bool                  `json:"isAdult"`
	CountryOfOrigin   string                `json:"countryOfOrigin"`
	SiteURL           *string               `json:"siteUrl"`
	CoverImage        coverImageDTO         `json:"coverImage"`
	BannerImage       *string               `json:"bannerImage"`
	StartDate         fuzzyDateDTO          `json:"startDate"`
	EndDate           fuzzyDateDTO          `json:"endDate"`
	NextAiringEpisode *nextAiringDTO        `json:"nextAiringEpisode"`
	StreamingEpisodes []streamingEpisodeDTO `json:"streamingEpisodes"`
	Genres            []string              `json:"genres"`
	AverageScore      *int                  `json:"averageScore"`
}

type airingScheduleDTO struct {
	MediaID  int   `json:"mediaId"`
	Episode  int   `json:"episode"`
	AiringAt int64 `json:"airingAt"`
}

type airingPageDTO struct {
	Page struct {
		PageInfo struct {
			HasNextPage bool `json:"hasNextPage"`
		} `json:"pageInfo"`
		AiringSchedules []airingScheduleDTO `json:"airingSchedules"`
	} `json:"Page"`
}
