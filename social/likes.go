package social

import (
	"context"
	"errors"
	"fmt"

	"github.com/snap-point/insta-api/apperr"
	"github.com/snap-point/insta-api/models"
	"github.com/snap-point/insta-api/policy"
)

// LikeStore is the part of the entity store the like queries need.
type LikeStore interface {
	TargetExists(ctx context.Context, target models.LikeTarget) (bool, error)
	HasLike(ctx context.Context, target models.LikeTarget, userID uint) (bool, error)
	CountLikes(ctx context.Context, target models.LikeTarget) (int64, error)
	CreateLike(ctx context.Context, like *models.Like) error
	DeleteLike(ctx context.Context, target models.LikeTarget, userID uint) (bool, error)
}

type Likes struct {
	store LikeStore
}

func NewLikes(store LikeStore) *Likes {
	return &Likes{store: store}
}

// IsFan reports whether actor has liked item. Anonymous actors are never fans.
func (l *Likes) IsFan(ctx context.Context, item models.Likeable, actor policy.Actor) (bool, error) {
	if !actor.Authenticated() {
		return false, nil
	}
	return l.store.HasLike(ctx, item.LikeTarget(), actor.UserID)
}

// TotalLikes counts the likes pointing at item.
func (l *Likes) TotalLikes(ctx context.Context, item models.Likeable) (int64, error) {
	return l.store.CountLikes(ctx, item.LikeTarget())
}

// Like records actor's like on item. Liking twice is not an error; created
// reports whether a new like was stored.
func (l *Likes) Like(ctx context.Context, item models.Likeable, actor policy.Actor) (created bool, err error) {
	if !actor.Authenticated() {
		return false, apperr.ErrUnauthenticated
	}
	target := item.LikeTarget()
	if !target.Kind.Valid() {
		return false, fmt.Errorf("%w: unknown like target kind %q", apperr.ErrValidation, target.Kind)
	}

	exists, err := l.store.TargetExists(ctx, target)
	if err != nil {
		return false, err
	}
	if !exists {
		return false, fmt.Errorf("%s: %w", target, apperr.ErrNotFound)
	}

	liked, err := l.store.HasLike(ctx, target, actor.UserID)
	if err != nil || liked {
		return false, err
	}

	like := &models.Like{UserID: actor.UserID, TargetKind: target.Kind, TargetID: target.ID}
	if err := l.store.CreateLike(ctx, like); err != nil {
		if errors.Is(err, apperr.ErrConflict) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}

// Unlike removes actor's like on item; removed is false when there was none.
func (l *Likes) Unlike(ctx context.Context, item models.Likeable, actor policy.Actor) (removed bool, err error) {
	if !actor.Authenticated() {
		return false, apperr.ErrUnauthenticated
	}
	return l.store.DeleteLike(ctx, item.LikeTarget(), actor.UserID)
}
