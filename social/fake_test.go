package social

import (
	"context"
	"fmt"
	"sync"

	"github.com/snap-point/insta-api/apperr"
	"github.com/snap-point/insta-api/models"
)

type edge struct{ followed, follower uint }

type likeKey struct {
	target models.LikeTarget
	user   uint
}

// memStore is an in-memory FollowStore and LikeStore with unique edges.
type memStore struct {
	mu      sync.Mutex
	users   map[uint]models.User
	follows map[edge]bool
	likes   map[likeKey]bool
	objects map[models.LikeTarget]bool

	// racedFollow makes FollowExists miss an edge that CreateFollow then hits
	racedFollow bool
}

func newMemStore() *memStore {
	return &memStore{
		users:   map[uint]models.User{},
		follows: map[edge]bool{},
		likes:   map[likeKey]bool{},
		objects: map[models.LikeTarget]bool{},
	}
}

func (m *memStore) addUser(id uint) *models.User {
	u := models.User{ID: id, Email: fmt.Sprintf("u%d@example.com", id)}
	m.users[id] = u
	return &u
}

func (m *memStore) FollowExists(_ context.Context, followedID, followerID uint) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.racedFollow {
		return false, nil
	}
	return m.follows[edge{followedID, followerID}], nil
}

func (m *memStore) CreateFollow(_ context.Context, f *models.Follow) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	e := edge{f.FollowedID, f.FollowerID}
	if m.follows[e] {
		return fmt.Errorf("follow: %w", apperr.ErrConflict)
	}
	m.follows[e] = true
	f.ID = uint(len(m.follows))
	return nil
}

func (m *memStore) DeleteFollow(_ context.Context, followedID, followerID uint) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	e := edge{followedID, followerID}
	if !m.follows[e] {
		return fmt.Errorf("follow: %w", apperr.ErrNotFound)
	}
	delete(m.follows, e)
	return nil
}

func (m *memStore) Followers(_ context.Context, userID uint) ([]models.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []models.User
	for e := range m.follows {
		if e.followed == userID {
			out = append(out, m.users[e.follower])
		}
	}
	return out, nil
}

func (m *memStore) Following(_ context.Context, userID uint) ([]models.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []models.User
	for e := range m.follows {
		if e.follower == userID {
			out = append(out, m.users[e.followed])
		}
	}
	return out, nil
}

func (m *memStore) TargetExists(_ context.Context, t models.LikeTarget) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.objects[t], nil
}

func (m *memStore) HasLike(_ context.Context, t models.LikeTarget, userID uint) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.likes[likeKey{t, userID}], nil
}

func (m *memStore) CountLikes(_ context.Context, t models.LikeTarget) (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var n int64
	for k := range m.likes {
		if k.target == t {
			n++
		}
	}
	return n, nil
}

func (m *memStore) CreateLike(_ context.Context, l *models.Like) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	k := likeKey{l.Target(), l.UserID}
	if m.likes[k] {
		return fmt.Errorf("like: %w", apperr.ErrConflict)
	}
	m.likes[k] = true
	return nil
}

func (m *memStore) DeleteLike(_ context.Context, t models.LikeTarget, userID uint) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	k := likeKey{t, userID}
	existed := m.likes[k]
	delete(m.likes, k)
	return existed, nil
}
