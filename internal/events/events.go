package events

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// Type names an activity event
type Type string

const (
	PostCreated     Type = "post.created"
	PostDeleted     Type = "post.deleted"
	CommentCreated  Type = "comment.created"
	ReplyCreated    Type = "reply.created"
	ReactionToggled Type = "reaction.toggled"
)

// Event is one committed mutation of the feed
type Event struct {
	ID         string    `json:"id" bson:"_id"`
	Type       Type      `json:"type" bson:"type"`
	ActorID    uint      `json:"actor_id" bson:"actor_id"`
	TargetKind string    `json:"target_kind" bson:"target_kind"`
	TargetID   uint      `json:"target_id" bson:"target_id"`
	Reaction   string    `json:"reaction,omitempty" bson:"reaction,omitempty"`
	Outcome    string    `json:"outcome,omitempty" bson:"outcome,omitempty"`
	OccurredAt time.Time `json:"occurred_at" bson:"occurred_at"`
}

// New stamps an event with a fresh id
func New(t Type, actorID uint, targetKind string, targetID uint, at time.Time) Event {
	return Event{
		ID:         uuid.NewString(),
		Type:       t,
		ActorID:    actorID,
		TargetKind: targetKind,
		TargetID:   targetID,
		OccurredAt: at,
	}
}

// Publisher records events once the mutation that produced them is committed
type Publisher interface {
	Publish(ctx context.Context, event Event) error
}

// NopPublisher drops every event
type NopPublisher struct{}

func (NopPublisher) Publish(context.Context, Event) error { return nil }
