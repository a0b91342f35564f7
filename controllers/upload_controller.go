package controllers

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/snap-point/insta-api/apperr"
	"github.com/snap-point/insta-api/models"
	"github.com/snap-point/insta-api/policy"
	"github.com/snap-point/insta-api/storage"
)

// UploadImage attaches a multipart "image" file to a post the caller owns.
func (pc *PostController) UploadImage(c *gin.Context) {
	post, ok := pc.loadPost(c, policy.ActionUpdate)
	if !ok {
		return
	}

	header, err := c.FormFile("image")
	if err != nil {
		respondError(c, fmt.Errorf("%w: image file is required", apperr.ErrValidation))
		return
	}
	if header.Size > storage.MaxImageSize {
		respondError(c, fmt.Errorf("%w: file size exceeds 10MB limit", apperr.ErrValidation))
		return
	}
	contentType := header.Header.Get("Content-Type")
	if !storage.IsImageType(contentType) {
		respondError(c, fmt.Errorf("%w: unsupported image type %q", apperr.ErrValidation, contentType))
		return
	}

	file, err := header.Open()
	if err != nil {
		respondError(c, fmt.Errorf("open upload: %w", err))
		return
	}
	defer file.Close()

	ctx := c.Request.Context()
	key := storage.PostImageKey(post.ID, header.Filename, contentType)
	if err := pc.Storage.Put(ctx, key, file, contentType); err != nil {
		respondError(c, fmt.Errorf("store image: %w", err))
		return
	}

	image := &models.PostImage{PostID: post.ID, Key: key, ContentType: contentType}
	if err := pc.Store.CreateImage(ctx, image); err != nil {
		pc.removeFiles([]models.PostImage{*image})
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"id":  image.ID,
		"url": absoluteURL(c, pc.Storage.URL(key)),
	})
}

func (pc *PostController) removeFiles(images []models.PostImage) {
	if len(images) == 0 {
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	for _, img := range images {
		if err := pc.Storage.Delete(ctx, img.Key); err != nil {
			log.Printf("Failed to delete stored image %s: %v", img.Key, err)
		}
	}
}
