package handler

import (
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/akumaldo/project-manager-suite/internal/middleware"
	"github.com/akumaldo/project-manager-suite/internal/storage"
)

const maxPhotoSize = 5 << 20

type UploadHandler struct {
	uploader storage.Uploader
}

func NewUploadHandler(uploader storage.Uploader) *UploadHandler {
	return &UploadHandler{uploader: uploader}
}

// POST /upload/persona-photo
func (h *UploadHandler) PersonaPhoto(c *gin.Context) {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		BadRequest(c, 40001, "file is required")
		return
	}
	if fileHeader.Size > maxPhotoSize {
		BadRequest(c, 40001, "file exceeds the 5MB limit")
		return
	}
	contentType := fileHeader.Header.Get("Content-Type")
	if !strings.HasPrefix(contentType, "image/") {
		BadRequest(c, 40001, "only image uploads are accepted")
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		InternalError(c, err.Error())
		return
	}
	defer file.Close()

	userID := middleware.GetCurrentUserID(c)
	objectName := storage.ObjectName(userID, fileHeader.Filename)
	url, err := h.uploader.Upload(c.Request.Context(), objectName, file, fileHeader.Size, contentType)
	if err != nil {
		InternalError(c, err.Error())
		return
	}

	Success(c, gin.H{"file_url": url})
}
