package models

import (
	"time"
)

type Post struct {
	ID        uint        `gorm:"primaryKey;autoIncrement" json:"id"`
	AuthorID  uint        `gorm:"not null;index" json:"author_id"`
	Author    User        `gorm:"foreignKey:AuthorID" json:"-"`
	Text      string      `gorm:"type:text;not null" json:"text"`
	Tags      []Tag       `gorm:"many2many:post_tags" json:"tags"`
	Images    []PostImage `gorm:"foreignKey:PostID" json:"images"`
	Comments  []Comment   `gorm:"foreignKey:PostID" json:"comments"`
	CreatedAt time.Time   `json:"created_at"`
	UpdatedAt time.Time   `json:"updated_at"`
}

// OwnerID is the user allowed to mutate the post.
func (p *Post) OwnerID() uint { return p.AuthorID }

func (p *Post) LikeTarget() LikeTarget { return LikeTarget{Kind: LikeKindPost, ID: p.ID} }

// TagSlugs returns the slugs of the loaded tags.
func (p *Post) TagSlugs() []string {
	slugs := make([]string, 0, len(p.Tags))
	for _, t := range p.Tags {
		slugs = append(slugs, t.Slug)
	}
	return slugs
}
