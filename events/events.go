// Package events publishes what happened in the API (posts created, follows,
// likes) for other services to consume.
package events

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"sync"
	"time"

	"github.com/nats-io/nats.go"
)

const (
	PostCreated    = "post.created"
	PostDeleted    = "post.deleted"
	CommentCreated = "comment.created"
	UserFollowed   = "user.followed"
	UserUnfollowed = "user.unfollowed"
	ContentLiked   = "content.liked"
	ContentUnliked = "content.unliked"
)

type Event struct {
	Type       string    `json:"type"`
	ActorID    uint      `json:"actorId"`
	TargetKind string    `json:"targetKind"`
	TargetID   uint      `json:"targetId"`
	At         time.Time `json:"at"`
}

// Publisher delivers events. Publishing never fails the request that caused
// it; implementations log delivery errors.
type Publisher interface {
	Publish(ctx context.Context, e Event)
}

// NATSPublisher publishes each event as JSON on subject "<prefix>.<type>".
type NATSPublisher struct {
	conn   *nats.Conn
	prefix string
}

// ConnectNATS dials url, retrying while the server comes up.
func ConnectNATS(url, prefix string, attempts int) (*NATSPublisher, error) {
	var conn *nats.Conn
	var err error
	for i := 0; i < attempts; i++ {
		conn, err = nats.Connect(url, nats.Name("insta-api"))
		if err == nil {
			return &NATSPublisher{conn: conn, prefix: prefix}, nil
		}
		log.Printf("Waiting for NATS to be ready... (%v)", err)
		time.Sleep(2 * time.Second)
	}
	return nil, fmt.Errorf("connect to NATS at %s: %w", url, err)
}

func (p *NATSPublisher) Publish(_ context.Context, e Event) {
	if e.At.IsZero() {
		e.At = time.Now()
	}
	data, err := json.Marshal(e)
	if err != nil {
		log.Printf("Failed to encode event %s: %v", e.Type, err)
		return
	}
	if err := p.conn.Publish(p.prefix+"."+e.Type, data); err != nil {
		log.Printf("Failed to publish event %s: %v", e.Type, err)
	}
}

func (p *NATSPublisher) Close() {
	if err := p.conn.Drain(); err != nil {
		log.Printf("Failed to drain NATS connection: %v", err)
	}
}

// Multi fans an event out to every publisher in order.
type Multi []Publisher

func (m Multi) Publish(ctx context.Context, e Event) {
	for _, p := range m {
		p.Publish(ctx, e)
	}
}

// LogPublisher writes events to the standard logger.
type LogPublisher struct{}

func (LogPublisher) Publish(_ context.Context, e Event) {
	log.Printf("event %s actor=%d target=%s:%d", e.Type, e.ActorID, e.TargetKind, e.TargetID)
}

// Recorder keeps published events in memory.
type Recorder struct {
	mu     sync.Mutex
	events []Event
}

func (r *Recorder) Publish(_ context.Context, e Event) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.events = append(r.events, e)
}

// Types lists the recorded event types in order.
func (r *Recorder) Types() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	types := make([]string, 0, len(r.events))
	for _, e := range r.events {
		types = append(types, e.Type)
	}
	return types
}
