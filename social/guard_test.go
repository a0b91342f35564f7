package social

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/snap-point/insta-api/apperr"
)

func TestCreateFollow(t *testing.T) {
	ctx := context.Background()
	st := newMemStore()
	a, b := st.addUser(1), st.addUser(2)
	g := NewGuard(st)

	f, err := g.CreateFollow(ctx, a, b)
	require.NoError(t, err)
	assert.Equal(t, a.ID, f.FollowedID)
	assert.Equal(t, b.ID, f.FollowerID)

	_, err = g.CreateFollow(ctx, a, b)
	assert.ErrorIs(t, err, apperr.ErrDuplicateRelationship)

	// the reverse edge is a different relationship
	_, err = g.CreateFollow(ctx, b, a)
	assert.NoError(t, err)
}

func TestCreateFollowSelf(t *testing.T) {
	st := newMemStore()
	a := st.addUser(1)
	_, err := NewGuard(st).CreateFollow(context.Background(), a, a)
	assert.ErrorIs(t, err, apperr.ErrSelfReference)
	assert.Empty(t, st.follows)
}

func TestCreateFollowLostRaceIsDuplicate(t *testing.T) {
	ctx := context.Background()
	st := newMemStore()
	a, b := st.addUser(1), st.addUser(2)
	g := NewGuard(st)
	_, err := g.CreateFollow(ctx, a, b)
	require.NoError(t, err)

	st.racedFollow = true
	_, err = g.CreateFollow(ctx, a, b)
	assert.ErrorIs(t, err, apperr.ErrDuplicateRelationship)
}

func TestUnfollowAndLists(t *testing.T) {
	ctx := context.Background()
	st := newMemStore()
	a, b, c := st.addUser(1), st.addUser(2), st.addUser(3)
	g := NewGuard(st)
	_, err := g.CreateFollow(ctx, a, b)
	require.NoError(t, err)
	_, err = g.CreateFollow(ctx, a, c)
	require.NoError(t, err)

	followers, err := g.Followers(ctx, a)
	require.NoError(t, err)
	assert.Len(t, followers, 2)
	following, err := g.Following(ctx, b)
	require.NoError(t, err)
	require.Len(t, following, 1)
	assert.Equal(t, a.ID, following[0].ID)

	require.NoError(t, g.Unfollow(ctx, a, b))
	assert.ErrorIs(t, g.Unfollow(ctx, a, b), apperr.ErrNotFound)

	// following again after unfollowing is allowed
	_, err = g.CreateFollow(ctx, a, b)
	assert.NoError(t, err)
}
