package models

import (
	"time"
)

// Follow is a directed edge: FollowerID follows FollowedID.
type Follow struct {
	ID         uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	FollowedID uint      `gorm:"not null;uniqueIndex:idx_follows_pair;check:chk_follows_not_self,followed_id <> follower_id" json:"followed_id"`
	FollowerID uint      `gorm:"not null;uniqueIndex:idx_follows_pair;index" json:"follower_id"`
	CreatedAt  time.Time `json:"created_at"`

	Followed User `gorm:"foreignKey:FollowedID" json:"-"`
	Follower User `gorm:"foreignKey:FollowerID" json:"-"`
}
