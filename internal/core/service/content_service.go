package service

import (
	"context"

	"github.com/tohsaka888/societies-server/internal/core/domain"
	"github.com/tohsaka888/societies-server/internal/core/repository"
)

// RecentCompetitionLimit caps the competition list.
const RecentCompetitionLimit = 3

// ContentService reads and writes the schemaless site collections.
type ContentService struct {
	docs repository.DocumentRepository
}

func NewContentService(docs repository.DocumentRepository) *ContentService {
	return &ContentService{docs: docs}
}

func (s *ContentService) AddArticle(ctx context.Context, article map[string]any) (string, error) {
	if len(article) == 0 {
		return "", malformed("article body is empty")
	}
	doc, err := s.docs.Insert(ctx, domain.CollectionArticles, article)
	if err != nil {
		return "", storeError("insert article", err)
	}
	return doc.ID, nil
}

func (s *ContentService) Articles(ctx context.Context) ([]map[string]any, error) {
	return s.bodies(ctx, domain.CollectionArticles, nil, 0)
}

func (s *ContentService) RecentCompetitions(ctx context.Context) ([]map[string]any, error) {
	return s.bodies(ctx, domain.CollectionCompetitions, nil, RecentCompetitionLimit)
}

// Pages returns the page documents of a competition.
func (s *ContentService) Pages(ctx context.Context, competitionID string) ([]map[string]any, error) {
	return s.bodies(ctx, domain.CollectionPages, map[string]string{"id": competitionID}, 0)
}

// AwardList returns the first award document of a competition, or nil.
func (s *ContentService) AwardList(ctx context.Context, competitionID string) (map[string]any, error) {
	bodies, err := s.bodies(ctx, domain.CollectionAwards, map[string]string{"id": competitionID}, 1)
	if err != nil || len(bodies) == 0 {
		return nil, err
	}
	return bodies[0], nil
}

// CompetitionImages returns the images field of the competition's first image document.
func (s *ContentService) CompetitionImages(ctx context.Context, competitionID string) (any, error) {
	bodies, err := s.bodies(ctx, domain.CollectionCompetitionImages, map[string]string{"id": competitionID}, 1)
	if err != nil {
		return nil, err
	}
	if len(bodies) == 0 {
		return nil, ErrNoDocument
	}
	return bodies[0]["images"], nil
}

func (s *ContentService) bodies(ctx context.Context, collection string, match map[string]string, limit int) ([]map[string]any, error) {
	docs, err := s.docs.Find(ctx, collection, match, limit)
	if err != nil {
		return nil, storeError("find "+collection, err)
	}

	bodies := make([]map[string]any, 0, len(docs))
	for _, d := range docs {
		body := make(map[string]any, len(d.Body)+1)
		for k, v := range d.Body {
			body[k] = v
		}
		body["_id"] = d.ID
		bodies = append(bodies, body)
	}
	return bodies, nil
}
