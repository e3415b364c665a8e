package service

import (
	"context"
	"sotestenv/internal/cache"
	"sotestenv/internal/model"
	"sotestenv/internal/repository"

	"go.uber.org/zap"
)

// QuestionService assembles the question catalog served to teams
type QuestionService struct {
	questionRepo repository.QuestionRepo
	documentRepo repository.DocumentRepo
	catalogCache cache.CatalogCache
	logger       *zap.Logger
}

// NewQuestionService creates a new question service
func NewQuestionService(questionRepo repository.QuestionRepo, documentRepo repository.DocumentRepo, catalogCache cache.CatalogCache, logger *zap.Logger) *QuestionService {
	return &QuestionService{
		questionRepo: questionRepo,
		documentRepo: documentRepo,
		catalogCache: catalogCache,
		logger:       logger,
	}
}

// GetCatalog returns the full question catalog plus global documents.
// Reads go through the redis cache; a cache failure falls back to mongo
// rather than failing the request.
func (s *QuestionService) GetCatalog(ctx context.Context) (*model.QuestionCatalog, error) {
	if cached, err := s.catalogCache.Get(ctx); err != nil {
		s.logger.Warn("catalog cache read failed", zap.Error(err))
	} else if cached != nil {
		return cached, nil
	}

	questions, err := s.questionRepo.GetAll(ctx)
	if err != nil {
		return nil, err
	}

	docs, err := s.documentRepo.GetAll(ctx)
	if err != nil {
		return nil, err
	}

	// Empty sequences marshal as [] rather than null
	if questions == nil {
		questions = []model.Question{}
	}
	if docs == nil {
		docs = []model.Document{}
	}

	catalog := &model.QuestionCatalog{
		Questions:  questions,
		GlobalDocs: docs,
	}

	if err := s.catalogCache.Set(ctx, catalog); err != nil {
		s.logger.Warn("catalog cache write failed", zap.Error(err))
	}

	return catalog, nil
}

// GetByNum returns a single question, or nil if no question has that num
func (s *QuestionService) GetByNum(ctx context.Context, num int) (*model.Question, error) {
	return s.questionRepo.GetByNum(ctx, num)
}
