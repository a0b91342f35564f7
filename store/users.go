package store

import (
	"context"
	"fmt"

	"github.com/snap-point/insta-api/models"
)

func (s *Store) CreateUser(ctx context.Context, user *models.User) error {
	return translate(s.with(ctx).Create(user).Error, "create user")
}

func (s *Store) GetUser(ctx context.Context, id uint) (*models.User, error) {
	var user models.User
	if err := s.with(ctx).First(&user, id).Error; err != nil {
		return nil, translate(err, fmt.Sprintf("user %d", id))
	}
	return &user, nil
}

func (s *Store) GetUserByEmail(ctx context.Context, email string) (*models.User, error) {
	var user models.User
	if err := s.with(ctx).Where("email = ?", email).First(&user).Error; err != nil {
		return nil, translate(err, "user by email")
	}
	return &user, nil
}

func (s *Store) GetUserByGoogleID(ctx context.Context, googleID string) (*models.User, error) {
	var user models.User
	if err := s.with(ctx).Where("google_id = ?", googleID).First(&user).Error; err != nil {
		return nil, translate(err, "user by google id")
	}
	return &user, nil
}

func (s *Store) ListUsers(ctx context.Context) ([]models.User, error) {
	var users []models.User
	if err := s.with(ctx).Order("id ASC").Find(&users).Error; err != nil {
		return nil, translate(err, "list users")
	}
	return users, nil
}

// UpdateUser applies the given column updates and reloads the user.
func (s *Store) UpdateUser(ctx context.Context, user *models.User, updates map[string]interface{}) error {
	if len(updates) == 0 {
		return nil
	}
	if err := s.with(ctx).Model(user).Updates(updates).Error; err != nil {
		return translate(err, fmt.Sprintf("update user %d", user.ID))
	}
	return translate(s.with(ctx).First(user, user.ID).Error, fmt.Sprintf("reload user %d", user.ID))
}

// UserExists reports whether the email is already registered.
func (s *Store) UserExists(ctx context.Context, email string) (bool, error) {
	var count int64
	if err := s.with(ctx).Model(&models.User{}).Where("email = ?", email).Count(&count).Error; err != nil {
		return false, translate(err, "check email")
	}
	return count > 0, nil
}
