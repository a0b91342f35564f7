package store

import (
	"context"

	"github.com/snap-point/insta-api/models"
)

func (s *Store) CreateRefreshToken(ctx context.Context, token *models.RefreshToken) error {
	return translate(s.with(ctx).Omit("User").Create(token).Error, "store refresh token")
}

func (s *Store) GetRefreshToken(ctx context.Context, token string) (*models.RefreshToken, error) {
	var rt models.RefreshToken
	if err := s.with(ctx).Where("token = ?", token).First(&rt).Error; err != nil {
		return nil, translate(err, "refresh token")
	}
	return &rt, nil
}

// RotateRefreshToken replaces the stored token value and expiry in place.
func (s *Store) RotateRefreshToken(ctx context.Context, rt *models.RefreshToken) error {
	err := s.with(ctx).Model(rt).Updates(map[string]interface{}{
		"token":      rt.Token,
		"expires_at": rt.ExpiresAt,
	}).Error
	return translate(err, "rotate refresh token")
}

// DeleteRefreshToken revokes token for userID. Unknown tokens are ignored.
func (s *Store) DeleteRefreshToken(ctx context.Context, userID uint, token string) error {
	err := s.with(ctx).Where("user_id = ? AND token = ?", userID, token).Delete(&models.RefreshToken{}).Error
	return translate(err, "revoke refresh token")
}
