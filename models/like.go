package models

import (
	"fmt"
	"time"
)

// LikeKind enumerates the content types a user can like.
type LikeKind string

const (
	LikeKindPost    LikeKind = "post"
	LikeKindComment LikeKind = "comment"
)

func (k LikeKind) Valid() bool {
	switch k {
	case LikeKindPost, LikeKindComment:
		return true
	}
	return false
}

// LikeTarget identifies one likeable object.
type LikeTarget struct {
	Kind LikeKind
	ID   uint
}

func (t LikeTarget) String() string { return fmt.Sprintf("%s:%d", t.Kind, t.ID) }

// Likeable is implemented by every model that can receive likes.
type Likeable interface {
	LikeTarget() LikeTarget
}

type Like struct {
	ID         uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	UserID     uint      `gorm:"not null;uniqueIndex:idx_likes_user_target" json:"user_id"`
	TargetKind LikeKind  `gorm:"size:20;not null;uniqueIndex:idx_likes_user_target;index:idx_likes_target" json:"target_kind"`
	TargetID   uint      `gorm:"not null;uniqueIndex:idx_likes_user_target;index:idx_likes_target" json:"target_id"`
	CreatedAt  time.Time `json:"created_at"`

	User User `gorm:"foreignKey:UserID" json:"-"`
}

func (l *Like) Target() LikeTarget { return LikeTarget{Kind: l.TargetKind, ID: l.TargetID} }
