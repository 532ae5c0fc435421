package service

import (
	"context"
	"strings"

	"github.com/feedback-portal-api/internal/models"
	"github.com/feedback-portal-api/internal/repository"
	"github.com/feedback-portal-api/internal/validation"
	"github.com/rs/zerolog"
)

// commentService is the concrete implementation of CommentService
type commentService struct {
	repo repository.CommentRepository
	log  zerolog.Logger
}

func newCommentService(repo repository.CommentRepository, log zerolog.Logger) CommentService {
	return &commentService{
		repo: repo,
		log:  log.With().Str("service", "comment").Logger(),
	}
}

// List returns comments newest first, optionally filtered by analysis status
func (s *commentService) List(ctx context.Context, isAnalyzed *bool) ([]*models.Comment, error) {
	return s.repo.List(ctx, isAnalyzed)
}

// Create validates and persists a new comment. Every new comment starts
// unanalyzed with a pending sentiment and zero confidence; only the
// privileged sentiment update may move it out of that state.
func (s *commentService) Create(ctx context.Context, req *models.CreateCommentRequest) (*models.Comment, error) {
	if verrs := validation.ValidateCreateComment(req); len(verrs) > 0 {
		return nil, verrs
	}

	comment := &models.Comment{
		Text:                strings.TrimSpace(req.Text),
		TopicID:             strings.TrimSpace(req.TopicID),
		SentimentResult:     models.SentimentPending,
		SentimentConfidence: 0,
		IsAnalyzed:          false,
	}
	if name := strings.TrimSpace(req.AuthorName); name != "" {
		comment.AuthorName = &name
	}

	if err := s.repo.Create(ctx, comment); err != nil {
		return nil, err
	}

	s.log.Info().
		Int64("comment_id", comment.ID).
		Str("topic_id", comment.TopicID).
		Bool("anonymous", comment.AuthorName == nil).
		Msg("Comment created")

	return comment, nil
}

// ApplySentimentUpdate validates and applies a partial update to the
// sentiment fields of an existing comment. Reapplying the same payload is
// idempotent; the store does not restrict transitions between analysis
// states beyond field-level validity.
func (s *commentService) ApplySentimentUpdate(ctx context.Context, id int64, update *models.SentimentUpdate) (*models.Comment, error) {
	if verrs := validation.ValidateSentimentUpdate(update); len(verrs) > 0 {
		return nil, verrs
	}

	comment, err := s.repo.UpdateSentiment(ctx, id, update)
	if err != nil {
		return nil, err
	}
	if comment == nil {
		return nil, ErrCommentNotFound
	}

	s.log.Info().
		Int64("comment_id", comment.ID).
		Str("sentiment_result", comment.SentimentResult).
		Bool("is_analyzed", comment.IsAnalyzed).
		Msg("Sentiment update applied")

	return comment, nil
}

// Stats returns comment counts by analysis status
func (s *commentService) Stats(ctx context.Context) (*CommentStats, error) {
	total, err := s.repo.Count(ctx)
	if err != nil {
		return nil, err
	}
	analyzed, err := s.repo.CountByAnalyzed(ctx, true)
	if err != nil {
		return nil, err
	}

	return &CommentStats{
		Total:    total,
		Analyzed: analyzed,
		Pending:  total - analyzed,
	}, nil
}
