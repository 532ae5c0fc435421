package service

import (
	"context"
	"errors"

	"github.com/feedback-portal-api/internal/models"
	"github.com/feedback-portal-api/internal/repository"
	"github.com/rs/zerolog"
)

// ErrCommentNotFound is returned when a referenced comment id does not exist
var ErrCommentNotFound = errors.New("comment not found")

// CommentStats summarizes the analysis state of the stored comments
type CommentStats struct {
	Total    int `json:"total"`
	Analyzed int `json:"analyzed"`
	Pending  int `json:"pending"`
}

// CommentService defines the interface for comment operations
type CommentService interface {
	List(ctx context.Context, isAnalyzed *bool) ([]*models.Comment, error)
	Create(ctx context.Context, req *models.CreateCommentRequest) (*models.Comment, error)
	ApplySentimentUpdate(ctx context.Context, id int64, update *models.SentimentUpdate) (*models.Comment, error)
	Stats(ctx context.Context) (*CommentStats, error)
}

// Services holds all service interfaces
type Services struct {
	Comment CommentService
}

// NewServices creates all services
func NewServices(repos *repository.Repositories, log zerolog.Logger) *Services {
	return &Services{
		Comment: newCommentService(repos.Comment, log),
	}
}
