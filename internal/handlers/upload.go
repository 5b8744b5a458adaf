package handlers

import (
	"context"
	"fmt"
	"log"
	"mime/multipart"
	"net/http"
	"path/filepath"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"backend/internal/storage"
)

const maxImageSize = 5 << 20

var allowedImageExtensions = map[string]struct{}{
	".jpg":  {},
	".jpeg": {},
	".png":  {},
	".webp": {},
	".gif":  {},
}

func validateImageUpload(file *multipart.FileHeader) error {
	extension := strings.ToLower(filepath.Ext(file.Filename))
	if extension == "" {
		return fmt.Errorf("image file extension is required")
	}
	if _, ok := allowedImageExtensions[extension]; !ok {
		return fmt.Errorf("unsupported image type: %s", extension)
	}
	if file.Size > maxImageSize {
		return fmt.Errorf("image file too large (max 5MB)")
	}
	if contentType := file.Header.Get("Content-Type"); contentType != "" &&
		!strings.HasPrefix(contentType, "image/") {
		return fmt.Errorf("unsupported content type: %s", contentType)
	}
	return nil
}

/*
POST /api/admin/upload
- single image, streamed to the bucket, returns the public URL
*/
func UploadImage(store *storage.S3Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		const route = "POST /api/admin/upload"
		defer handlePanic(c, route)

		file, err := c.FormFile("image")
		if err != nil {
			respondWithError(c, http.StatusBadRequest, route, "no file uploaded")
			return
		}

		if err := validateImageUpload(file); err != nil {
			respondWithError(c, http.StatusBadRequest, route, err.Error())
			return
		}

		src, err := file.Open()
		if err != nil {
			respondWithError(c, http.StatusInternalServerError, route, "upload failed")
			return
		}
		defer src.Close()

		key := storage.UploadKey(file.Filename)

		ctx, cancel := context.WithTimeout(c.Request.Context(), 30*time.Second)
		defer cancel()

		url, err := store.Upload(ctx, key, file.Header.Get("Content-Type"), src)
		if err != nil {
			log.Printf("[%s] storage error key=%s: %v", route, key, err)
			respondWithError(c, http.StatusInternalServerError, route, "upload failed")
			return
		}

		log.Printf("[%s] uploaded key=%s size=%d", route, key, file.Size)
		c.JSON(http.StatusOK, gin.H{
			"imageUrl": url,
			"message":  "Image uploaded successfully",
		})
	}
}
