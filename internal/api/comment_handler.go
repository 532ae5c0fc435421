package api

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/feedback-portal-api/internal/models"
	"github.com/feedback-portal-api/internal/service"
	"github.com/feedback-portal-api/internal/validation"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

// CommentHandler handles comment endpoints
type CommentHandler struct {
	services *service.Services
	log      zerolog.Logger
}

// NewCommentHandler creates a new CommentHandler
func NewCommentHandler(services *service.Services, log zerolog.Logger) *CommentHandler {
	return &CommentHandler{
		services: services,
		log:      log.With().Str("handler", "comment").Logger(),
	}
}

// ListComments handles GET /api/comments
// Returns all comments newest first, optionally filtered by is_analyzed.
func (h *CommentHandler) ListComments(c *gin.Context) {
	ctx := c.Request.Context()

	var isAnalyzed *bool
	if raw, ok := c.GetQuery("is_analyzed"); ok {
		flag := strings.EqualFold(raw, "true")
		isAnalyzed = &flag
	}

	comments, err := h.services.Comment.List(ctx, isAnalyzed)
	if err != nil {
		h.log.Error().Err(err).Msg("Failed to list comments")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list comments"})
		return
	}

	c.JSON(http.StatusOK, comments)
}

// CreateComment handles POST /api/comments
func (h *CommentHandler) CreateComment(c *gin.Context) {
	ctx := c.Request.Context()

	var req models.CreateCommentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid JSON body"})
		return
	}

	comment, err := h.services.Comment.Create(ctx, &req)
	if err != nil {
		var verrs validation.Errors
		if errors.As(err, &verrs) {
			c.JSON(http.StatusBadRequest, gin.H{"error": verrs.Error()})
			return
		}
		h.log.Error().Err(err).Msg("Failed to create comment")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to create comment"})
		return
	}

	c.JSON(http.StatusCreated, comment)
}

// UpdateSentiment handles PATCH /api/comments/:id/sentiment
// Reached only through the service-key middleware.
func (h *CommentHandler) UpdateSentiment(c *gin.Context) {
	ctx := c.Request.Context()

	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid comment id"})
		return
	}

	var req models.SentimentUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid JSON body"})
		return
	}

	comment, err := h.services.Comment.ApplySentimentUpdate(ctx, id, req.ToUpdate())
	if err != nil {
		var verrs validation.Errors
		if errors.As(err, &verrs) {
			c.JSON(http.StatusBadRequest, gin.H{"error": verrs.Error()})
			return
		}
		if errors.Is(err, service.ErrCommentNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Not found"})
			return
		}
		h.log.Error().Err(err).Int64("comment_id", id).Msg("Failed to apply sentiment update")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to update sentiment"})
		return
	}

	c.JSON(http.StatusOK, comment)
}
