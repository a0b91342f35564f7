// Package storage keeps uploaded post images, either on Cloudflare R2 or on
// the local disk.
package storage

import (
	"context"
	"fmt"
	"io"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
)

type Storage interface {
	Put(ctx context.Context, key string, body io.Reader, contentType string) error
	Delete(ctx context.Context, key string) error
	URL(key string) string
}

const MaxImageSize = 10 * 1024 * 1024 // 10MB

var imageTypes = map[string]string{
	"image/jpeg": ".jpg",
	"image/jpg":  ".jpg",
	"image/png":  ".png",
	"image/webp": ".webp",
	"image/gif":  ".gif",
	"image/heic": ".heic",
}

// IsImageType reports whether contentType is accepted for post images.
func IsImageType(contentType string) bool {
	_, ok := imageTypes[contentType]
	return ok
}

// PostImageKey builds a unique key: posts/{postID}/{unix}_{uuid}{ext}.
func PostImageKey(postID uint, fileName, contentType string) string {
	ext := strings.ToLower(filepath.Ext(fileName))
	if ext == "" {
		ext = imageTypes[contentType]
	}
	return fmt.Sprintf("posts/%d/%d_%s%s", postID, time.Now().Unix(), uuid.New().String(), ext)
}
