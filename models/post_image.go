package models

import (
	"time"
)

// PostImage is an image attached to a post. Key addresses the file in storage.
type PostImage struct {
	ID          uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	PostID      uint      `gorm:"not null;index" json:"post_id"`
	Key         string    `gorm:"not null;uniqueIndex" json:"key"`
	ContentType string    `gorm:"size:50;not null" json:"content_type"`
	CreatedAt   time.Time `json:"created_at"`
}
