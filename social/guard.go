// Package social holds the relationship rules between users and content:
// follow edges and likes.
package social

import (
	"context"
	"errors"
	"fmt"

	"github.com/snap-point/insta-api/apperr"
	"github.com/snap-point/insta-api/models"
)

// FollowStore is the part of the entity store the Guard needs.
type FollowStore interface {
	FollowExists(ctx context.Context, followedID, followerID uint) (bool, error)
	CreateFollow(ctx context.Context, follow *models.Follow) error
	DeleteFollow(ctx context.Context, followedID, followerID uint) error
	Followers(ctx context.Context, userID uint) ([]models.User, error)
	Following(ctx context.Context, userID uint) ([]models.User, error)
}

// Guard keeps follow edges unique and never self-referencing.
type Guard struct {
	store FollowStore
}

func NewGuard(store FollowStore) *Guard {
	return &Guard{store: store}
}

// CreateFollow makes follower follow followed.
//
// The duplicate check runs before the self check so the error is
// deterministic. The check-then-insert is not atomic; a concurrent insert of
// the same pair is caught by the store's unique index and reported as
// apperr.ErrDuplicateRelationship as well.
func (g *Guard) CreateFollow(ctx context.Context, followed, follower *models.User) (*models.Follow, error) {
	exists, err := g.store.FollowExists(ctx, followed.ID, follower.ID)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, apperr.ErrDuplicateRelationship
	}
	if followed.ID == follower.ID {
		return nil, apperr.ErrSelfReference
	}

	follow := &models.Follow{FollowedID: followed.ID, FollowerID: follower.ID}
	if err := g.store.CreateFollow(ctx, follow); err != nil {
		if errors.Is(err, apperr.ErrConflict) {
			return nil, apperr.ErrDuplicateRelationship
		}
		return nil, err
	}
	return follow, nil
}

// Unfollow removes the edge. A missing edge is apperr.ErrNotFound.
func (g *Guard) Unfollow(ctx context.Context, followed, follower *models.User) error {
	if err := g.store.DeleteFollow(ctx, followed.ID, follower.ID); err != nil {
		return fmt.Errorf("unfollow user %d: %w", followed.ID, err)
	}
	return nil
}

func (g *Guard) Followers(ctx context.Context, user *models.User) ([]models.User, error) {
	return g.store.Followers(ctx, user.ID)
}

func (g *Guard) Following(ctx context.Context, user *models.User) ([]models.User, error) {
	return g.store.Following(ctx, user.ID)
}
