package handlers

import (
	"net/http"
	"os"
	"path/filepath"

	"mandry/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// UploadPhotoHandler handles POST /api/attractions/:id/photos. The multipart
// file is staged to a temp path, pushed to storage and its URL appended to
// the attraction.
func (h *AttractionHandler) UploadPhotoHandler(c *gin.Context) {
	logger := utils.GetLogger()

	file, err := c.FormFile("photo")
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Missing photo file", err.Error())
		return
	}

	tmpPath := filepath.Join(os.TempDir(), filepath.Base(file.Filename))
	if err := c.SaveUploadedFile(file, tmpPath); err != nil {
		logger.Error("Failed to stage uploaded photo", zap.Error(err))
		c.JSON(http.StatusInternalServerError, utils.ErrorResponse{Message: "Failed to process upload"})
		return
	}
	defer os.Remove(tmpPath)

	imageURL, err := h.AttractionService.AddPhoto(c.Request.Context(), c.Param("id"), tmpPath)
	if err != nil {
		utils.DomainError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"url": imageURL})
}
