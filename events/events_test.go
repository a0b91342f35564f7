package events

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRecorderKeepsOrder(t *testing.T) {
	var r Recorder
	var p Publisher = &r
	p.Publish(context.Background(), Event{Type: PostCreated, ActorID: 1, TargetKind: "post", TargetID: 3})
	p.Publish(context.Background(), Event{Type: ContentLiked, ActorID: 2, TargetKind: "post", TargetID: 3})

	assert.Equal(t, []string{PostCreated, ContentLiked}, r.Types())
}

func TestLogPublisherDoesNotPanic(t *testing.T) {
	assert.NotPanics(t, func() {
		LogPublisher{}.Publish(context.Background(), Event{Type: UserFollowed})
	})
}

func TestMultiFansOut(t *testing.T) {
	var a, b Recorder
	Multi{&a, &b}.Publish(context.Background(), Event{Type: UserUnfollowed})

	assert.Equal(t, []string{UserUnfollowed}, a.Types())
	assert.Equal(t, []string{UserUnfollowed}, b.Types())
}
