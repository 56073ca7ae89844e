package entities

// MediaType discriminates between the two catalogs a user can track.
type MediaType string

const (
	MediaTypeAnime MediaType = "ANIME"
	MediaTypeManga MediaType = "MANGA"
)

// Valid reports whether t is one of the known media types.
func (t MediaType) Valid() bool {
	return t == MediaTypeAnime || t == MediaTypeManga
}

// Status is the release status reported by the catalog.
type Status string

const (
	StatusReleasing      Status = "RELEASING"
	StatusFinished       Status = "FINISHED"
	StatusCancelled      Status = "CANCELLED"
	StatusNotYetReleased Status = "NOT_YET_RELEASED"
	StatusHiatus         Status = "HIATUS"
)

// Title holds the names of a media entry. Any of them may be missing.
type Title struct {
	English *string
	Romaji  *string
	Native  *string
}

// NextAiring describes the next episode to air, as seen at fetch time.
type NextAiring struct {
	Episode         *int
	TimeUntilAiring *int // seconds
}

// ListTitle is the light record used for watchlist/readlist rendering.
type ListTitle struct {
	ID                int
	Status            Status
	Title             Title
	CountryOfOrigin   string
	SiteURL           *string
	NextAiringEpisode *NextAiring
}

// Info returns the fields the info line is rendered from.
func (l ListTitle) Info() InfoFields {
	return InfoFields{
		Title:           l.Title,
		CountryOfOrigin: l.CountryOfOrigin,
		SiteURL:         l.SiteURL,
	}
}

// InfoFields is the input of the single-item info line.
type InfoFields struct {
	Title           Title
	CountryOfOrigin string
	SiteURL         *string
}

// CountdownFields is the input of one ranked countdown line.
// Rank is zero-based.
type CountdownFields struct {
	Rank              int
	Info              InfoFields
	NextAiringEpisode NextAiring
}

// FuzzyDate is a partially known calendar date.
type FuzzyDate struct {
	Year  *int
	Month *int
	Day   *int
}

// CoverImage holds the cover URLs by size.
type CoverImage struct {
	ExtraLarge *string
	Large      *string
}

// StreamingEpisode is an episode link on an external streaming site.
type StreamingEpisode struct {
	Title     string
	Thumbnail string
	URL       string
	Site      string
}

// Media is the full catalog record of an anime or manga.
type Media struct {
	ID                int
	Type              MediaType
	Title             Title
	Description       *string
	Status            Status
	Format            *string
	Source            *string
	Season            *string
	SeasonYear        *int
	Episodes          *int
	Chapters          *int
	Volumes           *int
	Duration          *int // minutes per episode
	IsAdult           bool
	CountryOfOrigin   string
	SiteURL           *string
	CoverImage        CoverImage
	BannerImage       *string
	StartDate         FuzzyDate
	EndDate           FuzzyDate
	NextAiringEpisode *NextAiring
	StreamingEpisodes []StreamingEpisode
	Genres            []string
	AverageScore      *int
}

// AiringEvent is one scheduled airing of an anime episode.
type AiringEvent struct {
	MediaID  int
	Episode  int
	AiringAt int64 // unix seconds
}
