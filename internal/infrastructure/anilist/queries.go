package anilist

const titleQuery = `query ($id: Int, $type: MediaType) {
  Media(id: $id, type: $type) {
    id
    status
    title { romaji english native }
    countryOfOrigin
    siteUrl
    nextAiringEpisode { episode timeUntilAiring }
  }
}`

const mediaQuery = `query ($id: Int, $type: MediaType) {
  Media(id: $id, type: $type) {
    id
    type
    status
    title { romaji english native }
    description(asHtml: false)
    format
    source(version: 3)
    season
    seasonYear
    episodes
    chapters
    volumes
    duration
    isAdult
    countryOfOrigin
    siteUrl
    coverImage { extraLarge large }
    bannerImage
    startDate { year month day }
    endDate { year month day }
    nextAiringEpisode { episode timeUntilAiring }
    streamingEpisodes { title thumbnail url site }
    genres
    averageScore
  }
}`

const airingQuery = `query ($ids: [Int], $from: Int, $to: Int, $page: Int) {
  Page(page: $page, perPage: 50) {
    pageInfo { hasNextPage }
    airingSchedules(mediaId_in: $ids, airingAt_greater: $from, airingAt_lesser: $to, sort: TIME) {
      mediaId
      episode
      airingAt
    }
  }
}`
