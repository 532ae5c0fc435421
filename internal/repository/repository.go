package repository

import (
	"context"

	"github.com/feedback-portal-api/internal/database"
	"github.com/feedback-portal-api/internal/models"
)

// CommentRepository defines the interface for comment data operations
type CommentRepository interface {
	Create(ctx context.Context, comment *models.Comment) error
	GetByID(ctx context.Context, id int64) (*models.Comment, error)
	List(ctx context.Context, isAnalyzed *bool) ([]*models.Comment, error)
	UpdateSentiment(ctx context.Context, id int64, update *models.SentimentUpdate) (*models.Comment, error)
	Count(ctx context.Context) (int, error)
	CountByAnalyzed(ctx context.Context, isAnalyzed bool) (int, error)
}

// Repositories holds all repository interfaces
type Repositories struct {
	Comment CommentRepository
}

// New creates all repositories with the given database connection
func New(db *database.DB) *Repositories {
	return &Repositories{
		Comment: NewCommentRepo(db),
	}
}
