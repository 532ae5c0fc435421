package mocks

import (
	"context"
	"sort"
	"strings"
	"time"

	"github.com/feedback-portal-api/internal/models"
	"github.com/feedback-portal-api/internal/service"
	"github.com/feedback-portal-api/internal/validation"
)

// MockCommentService is a mock implementation of CommentService backed by an
// in-memory map, applying the same validation rules as the real service.
type MockCommentService struct {
	Comments    map[int64]*models.Comment
	NextID      int64
	CreateError error
	ListError   error
	StatsError  error
}

func NewMockCommentService() *MockCommentService {
	return &MockCommentService{
		Comments: make(map[int64]*models.Comment),
		NextID:   1,
	}
}

func (m *MockCommentService) List(ctx context.Context, isAnalyzed *bool) ([]*models.Comment, error) {
	if m.ListError != nil {
		return nil, m.ListError
	}
	result := make([]*models.Comment, 0)
	for _, comment := range m.Comments {
		if isAnalyzed != nil && comment.IsAnalyzed != *isAnalyzed {
			continue
		}
		copied := *comment
		result = append(result, &copied)
	}
	sort.Slice(result, func(i, j int) bool {
		if result[i].CreatedAt.Equal(result[j].CreatedAt) {
			return result[i].ID > result[j].ID
		}
		return result[i].CreatedAt.After(result[j].CreatedAt)
	})
	return result, nil
}

func (m *MockCommentService) Create(ctx context.Context, req *models.CreateCommentRequest) (*models.Comment, error) {
	if m.CreateError != nil {
		return nil, m.CreateError
	}
	if verrs := validation.ValidateCreateComment(req); len(verrs) > 0 {
		return nil, verrs
	}

	comment := &models.Comment{
		ID:                  m.NextID,
		Text:                strings.TrimSpace(req.Text),
		TopicID:             strings.TrimSpace(req.TopicID),
		SentimentResult:     models.SentimentPending,
		SentimentConfidence: 0,
		IsAnalyzed:          false,
		CreatedAt:           time.Now(),
	}
	if name := strings.TrimSpace(req.AuthorName); name != "" {
		comment.AuthorName = &name
	}
	m.NextID++
	m.Comments[comment.ID] = comment

	copied := *comment
	return &copied, nil
}

func (m *MockCommentService) ApplySentimentUpdate(ctx context.Context, id int64, update *models.SentimentUpdate) (*models.Comment, error) {
	if verrs := validation.ValidateSentimentUpdate(update); len(verrs) > 0 {
		return nil, verrs
	}
	comment, ok := m.Comments[id]
	if !ok {
		return nil, service.ErrCommentNotFound
	}
	if update.SentimentResult != nil {
		comment.SentimentResult = *update.SentimentResult
	}
	if update.SentimentConfidence != nil {
		comment.SentimentConfidence = *update.SentimentConfidence
	}
	if update.IsAnalyzed != nil {
		comment.IsAnalyzed = *update.IsAnalyzed
	}
	copied := *comment
	return &copied, nil
}

func (m *MockCommentService) Stats(ctx context.Context) (*service.CommentStats, error) {
	if m.StatsError != nil {
		return nil, m.StatsError
	}
	stats := &service.CommentStats{Total: len(m.Comments)}
	for _, comment := range m.Comments {
		if comment.IsAnalyzed {
			stats.Analyzed++
		}
	}
	stats.Pending = stats.Total - stats.Analyzed
	return stats, nil
}
