package httpapi

import (
	"io"
	"net/http"

	storagePort "github.com/Mikielai/crudblog/internal/ports/storage"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

const maxUploadSize = 5 << 20 // 5 MiB

var allowedImageTypes = map[string]string{
	"image/jpeg": ".jpg",
	"image/png":  ".png",
	"image/gif":  ".gif",
	"image/webp": ".webp",
}

type UploadController struct {
	images storagePort.ImageStore
	log    *zap.Logger
}

func NewUploadController(images storagePort.ImageStore, logger *zap.Logger) *UploadController {
	return &UploadController{images: images, log: logger}
}

func (ctl *UploadController) Upload(c *gin.Context) {
	file, header, err := c.Request.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "no file uploaded"})
		return
	}
	defer file.Close()

	ext, ok := allowedImageTypes[header.Header.Get("Content-Type")]
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid file type, only JPEG, PNG, GIF and WebP are allowed"})
		return
	}
	if header.Size > maxUploadSize {
		c.JSON(http.StatusBadRequest, gin.H{"error": "file too large, maximum size is 5MB"})
		return
	}

	// The declared size is client-controlled; cap the actual read too.
	data, err := io.ReadAll(io.LimitReader(file, maxUploadSize+1))
	if err != nil {
		ctl.log.Error("reading upload failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to read file"})
		return
	}
	if int64(len(data)) > maxUploadSize {
		c.JSON(http.StatusBadRequest, gin.H{"error": "file too large, maximum size is 5MB"})
		return
	}

	url, err := ctl.images.Save(c.Request.Context(), ext, data)
	if err != nil {
		ctl.log.Error("saving upload failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to save file"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "imageUrl": url})
}
