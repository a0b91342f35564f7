package store

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"github.com/snap-point/insta-api/models"
)

// CommentFilter narrows ListComments. Zero fields do not filter.
type CommentFilter struct {
	PostID   uint
	AuthorID uint
}

func (s *Store) CreateComment(ctx context.Context, comment *models.Comment) error {
	if err := s.with(ctx).Omit("Author").Create(comment).Error; err != nil {
		return translate(err, "create comment")
	}
	return translate(s.with(ctx).Preload("Author").First(comment, comment.ID).Error, "reload comment")
}

func (s *Store) GetComment(ctx context.Context, id uint) (*models.Comment, error) {
	var comment models.Comment
	if err := s.with(ctx).Preload("Author").First(&comment, id).Error; err != nil {
		return nil, translate(err, fmt.Sprintf("comment %d", id))
	}
	return &comment, nil
}

func (s *Store) CommentExists(ctx context.Context, id uint) (bool, error) {
	var count int64
	if err := s.with(ctx).Model(&models.Comment{}).Where("id = ?", id).Count(&count).Error; err != nil {
		return false, translate(err, fmt.Sprintf("comment %d", id))
	}
	return count > 0, nil
}

func (s *Store) ListComments(ctx context.Context, filter CommentFilter) ([]models.Comment, error) {
	q := s.with(ctx).Preload("Author")
	if filter.PostID != 0 {
		q = q.Where("post_id = ?", filter.PostID)
	}
	if filter.AuthorID != 0 {
		q = q.Where("author_id = ?", filter.AuthorID)
	}

	var comments []models.Comment
	if err := q.Order("created_at ASC, id ASC").Find(&comments).Error; err != nil {
		return nil, translate(err, "list comments")
	}
	return comments, nil
}

func (s *Store) UpdateComment(ctx context.Context, comment *models.Comment, text string) error {
	if err := s.with(ctx).Model(&models.Comment{}).Where("id = ?", comment.ID).Update("text", text).Error; err != nil {
		return translate(err, fmt.Sprintf("update comment %d", comment.ID))
	}
	comment.Text = text
	return nil
}

// DeleteComment removes the comment and the likes pointing at it.
func (s *Store) DeleteComment(ctx context.Context, comment *models.Comment) error {
	return s.Transaction(ctx, func(tx *Store) error {
		if err := tx.db.Where("target_kind = ? AND target_id = ?", models.LikeKindComment, comment.ID).
			Delete(&models.Like{}).Error; err != nil {
			return translate(err, "delete comment likes")
		}
		res := tx.db.Delete(&models.Comment{}, comment.ID)
		if res.Error != nil {
			return translate(res.Error, fmt.Sprintf("delete comment %d", comment.ID))
		}
		if res.RowsAffected == 0 {
			return translate(gorm.ErrRecordNotFound, fmt.Sprintf("comment %d", comment.ID))
		}
		return nil
	})
}
