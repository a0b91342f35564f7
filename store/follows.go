package store

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"github.com/snap-point/insta-api/models"
)

func (s *Store) FollowExists(ctx context.Context, followedID, followerID uint) (bool, error) {
	var count int64
	err := s.with(ctx).Model(&models.Follow{}).
		Where("followed_id = ? AND follower_id = ?", followedID, followerID).
		Count(&count).Error
	if err != nil {
		return false, translate(err, "check follow")
	}
	return count > 0, nil
}

// CreateFollow inserts the edge. A concurrent duplicate surfaces as
// apperr.ErrConflict through the unique index on the pair.
func (s *Store) CreateFollow(ctx context.Context, follow *models.Follow) error {
	err := s.with(ctx).Omit("Followed", "Follower").Create(follow).Error
	return translate(err, fmt.Sprintf("follow %d -> %d", follow.FollowerID, follow.FollowedID))
}

func (s *Store) DeleteFollow(ctx context.Context, followedID, followerID uint) error {
	res := s.with(ctx).Where("followed_id = ? AND follower_id = ?", followedID, followerID).Delete(&models.Follow{})
	if res.Error != nil {
		return translate(res.Error, "unfollow")
	}
	if res.RowsAffected == 0 {
		return translate(gorm.ErrRecordNotFound, fmt.Sprintf("follow %d -> %d", followerID, followedID))
	}
	return nil
}

// Followers lists the users following userID, most recent first.
func (s *Store) Followers(ctx context.Context, userID uint) ([]models.User, error) {
	var users []models.User
	err := s.with(ctx).
		Joins("JOIN follows ON follows.follower_id = users.id").
		Where("follows.followed_id = ?", userID).
		Order("follows.created_at DESC, follows.id DESC").
		Find(&users).Error
	if err != nil {
		return nil, translate(err, "list followers")
	}
	return users, nil
}

// Following lists the users userID follows, most recent first.
func (s *Store) Following(ctx context.Context, userID uint) ([]models.User, error) {
	var users []models.User
	err := s.with(ctx).
		Joins("JOIN follows ON follows.followed_id = users.id").
		Where("follows.follower_id = ?", userID).
		Order("follows.created_at DESC, follows.id DESC").
		Find(&users).Error
	if err != nil {
		return nil, translate(err, "list following")
	}
	return users, nil
}

// FollowCounts returns how many users follow userID and how many it follows.
func (s *Store) FollowCounts(ctx context.Context, userID uint) (followers, following int64, err error) {
	if err = s.with(ctx).Model(&models.Follow{}).Where("followed_id = ?", userID).Count(&followers).Error; err != nil {
		return 0, 0, translate(err, "count followers")
	}
	if err = s.with(ctx).Model(&models.Follow{}).Where("follower_id = ?", userID).Count(&following).Error; err != nil {
		return 0, 0, translate(err, "count following")
	}
	return followers, following, nil
}
