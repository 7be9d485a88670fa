package handlers

import (
	"net/http"

	"mandry/models"
	"mandry/services/review"
	"mandry/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// ReviewHandler exposes the review read and write endpoints.
type ReviewHandler struct {
	ReviewService review.ReviewService
}

// NewReviewHandler creates a ReviewHandler.
func NewReviewHandler(svc review.ReviewService) *ReviewHandler {
	return &ReviewHandler{ReviewService: svc}
}

// ListAttractionReviewsHandler handles GET /api/attractions/:id/reviews.
// Every read refreshes external reviews before serving the merged set.
func (h *ReviewHandler) ListAttractionReviewsHandler(c *gin.Context) {
	attractionID := c.Param("id")

	reviews, err := h.ReviewService.ListAttractionReviews(c.Request.Context(), attractionID)
	if err != nil {
		utils.GetLogger().Warn("Failed to list reviews",
			zap.String("attractionId", attractionID), zap.Error(err))
		utils.DomainError(c, err)
		return
	}
	if reviews == nil {
		reviews = []models.Review{}
	}
	c.JSON(http.StatusOK, reviews)
}

// CreateReviewHandler handles POST /api/attractions/:id/reviews.
func (h *ReviewHandler) CreateReviewHandler(c *gin.Context) {
	userID := c.GetString("userID")
	attractionID := c.Param("id")

	var req struct {
		Rating int    `json:"rating"`
		Text   string `json:"text"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid review payload", err.Error())
		return
	}

	created, err := h.ReviewService.CreateReview(c.Request.Context(), userID, attractionID, req.Rating, req.Text)
	if err != nil {
		utils.DomainError(c, err)
		return
	}
	c.JSON(http.StatusCreated, created)
}

// UpdateReviewHandler handles PUT /api/reviews/:id.
func (h *ReviewHandler) UpdateReviewHandler(c *gin.Context) {
	userID := c.GetString("userID")
	reviewID := c.Param("id")

	var req struct {
		Rating int    `json:"rating"`
		Text   string `json:"text"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid review payload", err.Error())
		return
	}

	updated, err := h.ReviewService.UpdateReview(c.Request.Context(), userID, reviewID, req.Rating, req.Text)
	if err != nil {
		utils.DomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, updated)
}

// DeleteReviewHandler handles DELETE /api/reviews/:id.
func (h *ReviewHandler) DeleteReviewHandler(c *gin.Context) {
	userID := c.GetString("userID")
	reviewID := c.Param("id")

	if err := h.ReviewService.DeleteReview(c.Request.Context(), userID, reviewID); err != nil {
		utils.DomainError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Review deleted successfully"})
}
