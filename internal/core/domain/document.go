package domain

import "time"

// Collections backed by the schemaless document table.
const (
	CollectionArticles          = "articles"
	CollectionCompetitions      = "competitionList"
	CollectionPages             = "pageList"
	CollectionAwards            = "awardList"
	CollectionCompetitionImages = "competitionImages"
)

// Document is a JSON object stored verbatim in a named collection.
type Document struct {
	ID         string
	Collection string
	Body       map[string]any
	CreatedAt  time.Time
}
