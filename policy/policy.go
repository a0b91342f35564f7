// Package policy decides whether an actor may perform an action on a resource.
//
// Reads are open to everyone, creation and "own" listings need an
// authenticated actor, and mutations are reserved to the resource's author.
// Authorize does no I/O: callers load the target first, so a missing
// resource is reported as not found before the policy is consulted.
package policy

import (
	"net/http"

	"github.com/snap-point/insta-api/apperr"
)

type Action string

const (
	ActionList          Action = "list"
	ActionRetrieve      Action = "retrieve"
	ActionCreate        Action = "create"
	ActionUpdate        Action = "update"
	ActionPartialUpdate Action = "partial_update"
	ActionDestroy       Action = "destroy"
	ActionOwn           Action = "own"
)

// Actor is the identity a request acts as. The zero value is anonymous.
type Actor struct {
	UserID uint
	Email  string
}

func Anonymous() Actor { return Actor{} }

func (a Actor) Authenticated() bool { return a.UserID != 0 }

// Owned is implemented by resources that have a single author.
type Owned interface {
	OwnerID() uint
}

// Authorize returns nil when actor may perform action on target, otherwise
// apperr.ErrUnauthenticated or apperr.ErrForbidden. target is only consulted
// for mutating actions.
func Authorize(action Action, actor Actor, target Owned) error {
	switch action {
	case ActionList, ActionRetrieve:
		return nil
	case ActionCreate, ActionOwn:
		if !actor.Authenticated() {
			return apperr.ErrUnauthenticated
		}
		return nil
	case ActionUpdate, ActionPartialUpdate, ActionDestroy:
		if !actor.Authenticated() {
			return apperr.ErrUnauthenticated
		}
		if target == nil || target.OwnerID() != actor.UserID {
			return apperr.ErrForbidden
		}
		return nil
	default:
		return apperr.ErrForbidden
	}
}

// ActionFor maps an HTTP method on a collection (detail=false) or on a single
// resource (detail=true) to its action.
func ActionFor(method string, detail bool) Action {
	switch method {
	case http.MethodGet, http.MethodHead:
		if detail {
			return ActionRetrieve
		}
		return ActionList
	case http.MethodPost:
		return ActionCreate
	case http.MethodPut:
		return ActionUpdate
	case http.MethodPatch:
		return ActionPartialUpdate
	case http.MethodDelete:
		return ActionDestroy
	}
	return Action("")
}
