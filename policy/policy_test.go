package policy

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/snap-point/insta-api/apperr"
)

type resource struct{ owner uint }

func (r resource) OwnerID() uint { return r.owner }

func TestAuthorizeOpenReads(t *testing.T) {
	for _, action := range []Action{ActionList, ActionRetrieve} {
		assert.NoError(t, Authorize(action, Anonymous(), nil))
		assert.NoError(t, Authorize(action, Actor{UserID: 3}, resource{owner: 9}))
	}
}

func TestAuthorizeCreateAndOwnNeedAuthentication(t *testing.T) {
	for _, action := range []Action{ActionCreate, ActionOwn} {
		assert.ErrorIs(t, Authorize(action, Anonymous(), nil), apperr.ErrUnauthenticated)
		assert.NoError(t, Authorize(action, Actor{UserID: 1}, nil))
	}
}

func TestAuthorizeMutationsNeedOwnership(t *testing.T) {
	post := resource{owner: 1}
	for _, action := range []Action{ActionUpdate, ActionPartialUpdate, ActionDestroy} {
		assert.NoError(t, Authorize(action, Actor{UserID: 1}, post), action)
		assert.ErrorIs(t, Authorize(action, Actor{UserID: 2}, post), apperr.ErrForbidden, action)
		assert.ErrorIs(t, Authorize(action, Anonymous(), post), apperr.ErrUnauthenticated, action)
		assert.ErrorIs(t, Authorize(action, Actor{UserID: 1}, nil), apperr.ErrForbidden, action)
	}
}

func TestAuthorizeUnknownActionIsDenied(t *testing.T) {
	assert.ErrorIs(t, Authorize(Action("publish"), Actor{UserID: 1}, resource{owner: 1}), apperr.ErrForbidden)
}

func TestActionFor(t *testing.T) {
	assert.Equal(t, ActionList, ActionFor(http.MethodGet, false))
	assert.Equal(t, ActionRetrieve, ActionFor(http.MethodGet, true))
	assert.Equal(t, ActionCreate, ActionFor(http.MethodPost, false))
	assert.Equal(t, ActionUpdate, ActionFor(http.MethodPut, true))
	assert.Equal(t, ActionPartialUpdate, ActionFor(http.MethodPatch, true))
	assert.Equal(t, ActionDestroy, ActionFor(http.MethodDelete, true))
	assert.Equal(t, Action(""), ActionFor(http.MethodOptions, true))
}
