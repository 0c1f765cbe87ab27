package handlers

import (
	"net/http"
	"os"
	"path/filepath"

	"localspot/services/storage"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// photoFolder is the Cloudinary folder for provider photos.
const photoFolder = "localspot/providers"

// StorageHandler serves admin photo uploads.
type StorageHandler struct {
	Storage storage.StorageService
}

// NewStorageHandler creates a StorageHandler.
func NewStorageHandler(svc storage.StorageService) *StorageHandler {
	return &StorageHandler{Storage: svc}
}

// UploadPhotoHandler accepts a multipart file and uploads it to the photo
// store, returning the public identifier and URL to attach to a provider.
func (h *StorageHandler) UploadPhotoHandler(c *gin.Context) {
	logger := getLogger(c)

	file, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing file: " + err.Error()})
		return
	}

	tmpPath := filepath.Join(os.TempDir(), uuid.NewString()+filepath.Ext(file.Filename))
	if err := c.SaveUploadedFile(file, tmpPath); err != nil {
		logger.Error("Failed to stage upload", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to upload photo"})
		return
	}
	defer os.Remove(tmpPath)

	publicID, err := h.Storage.UploadFile(c.Request.Context(), tmpPath, photoFolder)
	if err != nil {
		logger.Error("Failed to upload photo", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to upload photo"})
		return
	}

	url, err := h.Storage.GetDownloadURL(c.Request.Context(), publicID, 0)
	if err != nil {
		logger.Error("Failed to resolve photo URL", zap.String("publicID", publicID), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to upload photo"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"publicId": publicID, "url": url})
}
