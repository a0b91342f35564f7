package models

import (
	"time"
)

// ActivityLog is one thing a user did, as published on the event stream.
type ActivityLog struct {
	ID         uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	CreatedAt  time.Time `gorm:"index" json:"createdAt"`
	UserID     uint      `gorm:"not null;index" json:"userId"`
	Activity   string    `gorm:"not null;type:varchar(50)" json:"activity"` // "post.created", "user.followed", ...
	TargetKind string    `gorm:"type:varchar(20)" json:"targetKind"`
	TargetID   uint      `json:"targetId"`
}
