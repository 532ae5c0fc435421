package mocks

import (
	"context"
	"sort"
	"time"

	"github.com/feedback-portal-api/internal/models"
)

// MockCommentRepository is a mock implementation of CommentRepository
type MockCommentRepository struct {
	Comments    map[int64]*models.Comment
	NextID      int64
	CreateError error
	ListError   error
	UpdateError error
	UpdateCalls int
}

func NewMockCommentRepository() *MockCommentRepository {
	return &MockCommentRepository{
		Comments: make(map[int64]*models.Comment),
		NextID:   1,
	}
}

func (m *MockCommentRepository) Create(ctx context.Context, comment *models.Comment) error {
	if m.CreateError != nil {
		return m.CreateError
	}
	comment.ID = m.NextID
	m.NextID++
	if comment.CreatedAt.IsZero() {
		comment.CreatedAt = time.Now()
	}
	stored := *comment
	m.Comments[comment.ID] = &stored
	return nil
}

func (m *MockCommentRepository) GetByID(ctx context.Context, id int64) (*models.Comment, error) {
	comment, ok := m.Comments[id]
	if !ok {
		return nil, nil
	}
	copied := *comment
	return &copied, nil
}

func (m *MockCommentRepository) List(ctx context.Context, isAnalyzed *bool) ([]*models.Comment, error) {
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

func (m *MockCommentRepository) UpdateSentiment(ctx context.Context, id int64, update *models.SentimentUpdate) (*models.Comment, error) {
	m.UpdateCalls++
	if m.UpdateError != nil {
		return nil, m.UpdateError
	}
	comment, ok := m.Comments[id]
	if !ok {
		return nil, nil
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

func (m *MockCommentRepository) Count(ctx context.Context) (int, error) {
	return len(m.Comments), nil
}

func (m *MockCommentRepository) CountByAnalyzed(ctx context.Context, isAnalyzed bool) (int, error) {
	count := 0
	for _, comment := range m.Comments {
		if comment.IsAnalyzed == isAnalyzed {
			count++
		}
	}
	return count, nil
}
