package store

import (
	"context"
	"fmt"

	"github.com/snap-point/insta-api/apperr"
	"github.com/snap-point/insta-api/models"
)

// TargetExists reports whether the object a like would point at exists.
func (s *Store) TargetExists(ctx context.Context, target models.LikeTarget) (bool, error) {
	switch target.Kind {
	case models.LikeKindPost:
		return s.PostExists(ctx, target.ID)
	case models.LikeKindComment:
		return s.CommentExists(ctx, target.ID)
	}
	return false, fmt.Errorf("%w: unknown like target kind %q", apperr.ErrValidation, target.Kind)
}

func (s *Store) HasLike(ctx context.Context, target models.LikeTarget, userID uint) (bool, error) {
	var count int64
	err := s.with(ctx).Model(&models.Like{}).
		Where("target_kind = ? AND target_id = ? AND user_id = ?", target.Kind, target.ID, userID).
		Count(&count).Error
	if err != nil {
		return false, translate(err, fmt.Sprintf("check like on %s", target))
	}
	return count > 0, nil
}

func (s *Store) CountLikes(ctx context.Context, target models.LikeTarget) (int64, error) {
	var count int64
	err := s.with(ctx).Model(&models.Like{}).
		Where("target_kind = ? AND target_id = ?", target.Kind, target.ID).
		Count(&count).Error
	if err != nil {
		return 0, translate(err, fmt.Sprintf("count likes on %s", target))
	}
	return count, nil
}

func (s *Store) CreateLike(ctx context.Context, like *models.Like) error {
	return translate(s.with(ctx).Omit("User").Create(like).Error, fmt.Sprintf("like %s", like.Target()))
}

// DeleteLike removes the user's like on target and reports whether one existed.
func (s *Store) DeleteLike(ctx context.Context, target models.LikeTarget, userID uint) (bool, error) {
	res := s.with(ctx).
		Where("target_kind = ? AND target_id = ? AND user_id = ?", target.Kind, target.ID, userID).
		Delete(&models.Like{})
	if res.Error != nil {
		return false, translate(res.Error, fmt.Sprintf("unlike %s", target))
	}
	return res.RowsAffected > 0, nil
}
