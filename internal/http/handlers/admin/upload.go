package admin

import (
	"github.com/sochitour-next/internal/http/response"

	"github.com/gin-gonic/gin"
)

// Upload handles POST /api/upload: a single catalog image.
func (h *Handler) Upload(c *gin.Context) {
	file, err := c.FormFile("image")
	if err != nil {
		response.BadRequest(c, "image file is required")
		return
	}

	url, err := h.UploadService.SaveImage(file)
	if err != nil {
		respondServiceError(c, err, "file not found")
		return
	}

	response.Success(c, gin.H{
		"image_url": url,
	})
}
