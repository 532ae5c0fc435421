package repository

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"github.com/feedback-portal-api/internal/database"
	"github.com/feedback-portal-api/internal/models"
)

const commentColumns = `id, text, author_name, topic_id, sentiment_result, sentiment_confidence, is_analyzed, created_at`

// commentRepo is the concrete implementation of CommentRepository
type commentRepo struct {
	db *database.DB
}

// NewCommentRepo creates a new comment repository
func NewCommentRepo(db *database.DB) CommentRepository {
	return &commentRepo{db: db}
}

// Create inserts a new comment. The database assigns the id and creation
// timestamp; both are written back into the passed comment.
func (r *commentRepo) Create(ctx context.Context, comment *models.Comment) error {
	query := `
		INSERT INTO comments (text, author_name, topic_id, sentiment_result, sentiment_confidence, is_analyzed)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, created_at
	`
	return r.db.QueryRowContext(ctx, query,
		comment.Text, comment.AuthorName, comment.TopicID,
		comment.SentimentResult, comment.SentimentConfidence, comment.IsAnalyzed,
	).Scan(&comment.ID, &comment.CreatedAt)
}

// GetByID retrieves a comment by ID
func (r *commentRepo) GetByID(ctx context.Context, id int64) (*models.Comment, error) {
	query := fmt.Sprintf(`SELECT %s FROM comments WHERE id = $1`, commentColumns)

	var comment models.Comment
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&comment.ID, &comment.Text, &comment.AuthorName, &comment.TopicID,
		&comment.SentimentResult, &comment.SentimentConfidence, &comment.IsAnalyzed,
		&comment.CreatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return &comment, nil
}

// List returns comments newest first, optionally filtered by analysis status
func (r *commentRepo) List(ctx context.Context, isAnalyzed *bool) ([]*models.Comment, error) {
	query := fmt.Sprintf(`SELECT %s FROM comments`, commentColumns)
	var args []interface{}

	if isAnalyzed != nil {
		query += ` WHERE is_analyzed = $1`
		args = append(args, *isAnalyzed)
	}
	query += ` ORDER BY created_at DESC, id DESC`

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	comments := make([]*models.Comment, 0)
	for rows.Next() {
		var comment models.Comment
		err := rows.Scan(
			&comment.ID, &comment.Text, &comment.AuthorName, &comment.TopicID,
			&comment.SentimentResult, &comment.SentimentConfidence, &comment.IsAnalyzed,
			&comment.CreatedAt,
		)
		if err != nil {
			return nil, err
		}
		comments = append(comments, &comment)
	}

	return comments, rows.Err()
}

// UpdateSentiment applies a partial update to the sentiment fields of a
// comment in a single statement. Omitted fields keep their prior values.
// Returns nil without error when no row matches the id.
func (r *commentRepo) UpdateSentiment(ctx context.Context, id int64, update *models.SentimentUpdate) (*models.Comment, error) {
	var sets []string
	var args []interface{}

	if update.SentimentResult != nil {
		args = append(args, *update.SentimentResult)
		sets = append(sets, fmt.Sprintf("sentiment_result = $%d", len(args)))
	}
	if update.SentimentConfidence != nil {
		args = append(args, *update.SentimentConfidence)
		sets = append(sets, fmt.Sprintf("sentiment_confidence = $%d", len(args)))
	}
	if update.IsAnalyzed != nil {
		args = append(args, *update.IsAnalyzed)
		sets = append(sets, fmt.Sprintf("is_analyzed = $%d", len(args)))
	}
	if len(sets) == 0 {
		return nil, fmt.Errorf("no fields to update")
	}

	args = append(args, id)
	query := fmt.Sprintf(
		`UPDATE comments SET %s WHERE id = $%d RETURNING %s`,
		strings.Join(sets, ", "), len(args), commentColumns,
	)

	var comment models.Comment
	err := r.db.QueryRowContext(ctx, query, args...).Scan(
		&comment.ID, &comment.Text, &comment.AuthorName, &comment.TopicID,
		&comment.SentimentResult, &comment.SentimentConfidence, &comment.IsAnalyzed,
		&comment.CreatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return &comment, nil
}

// Count returns the total number of comments
func (r *commentRepo) Count(ctx context.Context) (int, error) {
	var count int
	err := r.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM comments").Scan(&count)
	return count, err
}

// CountByAnalyzed returns the number of comments with the given analysis status
func (r *commentRepo) CountByAnalyzed(ctx context.Context, isAnalyzed bool) (int, error) {
	var count int
	err := r.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM comments WHERE is_analyzed = $1", isAnalyzed).Scan(&count)
	return count, err
}
