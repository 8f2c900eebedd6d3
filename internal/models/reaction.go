package models

import (
	"fmt"
	"strings"
	"time"
)

// ReactionKind is one of the eight fixed reaction codes
type ReactionKind string

const (
	ReactionWow        ReactionKind = "WO"
	ReactionLit        ReactionKind = "LI"
	ReactionLove       ReactionKind = "LO"
	ReactionHaha       ReactionKind = "HA"
	ReactionThumbsUp   ReactionKind = "TU"
	ReactionThumbsDown ReactionKind = "TD"
	ReactionAngry      ReactionKind = "AN"
	ReactionSad        ReactionKind = "SA"
)

var reactionNames = map[ReactionKind]string{
	ReactionWow:        "WOW",
	ReactionLit:        "LIT",
	ReactionLove:       "LOVE",
	ReactionHaha:       "HAHA",
	ReactionThumbsUp:   "THUMBS-UP",
	ReactionThumbsDown: "THUMBS-DOWN",
	ReactionAngry:      "ANGRY",
	ReactionSad:        "SAD",
}

// PositiveReactions and NegativeReactions partition all kinds
var (
	PositiveReactions = []ReactionKind{ReactionThumbsUp, ReactionLit, ReactionLove, ReactionHaha, ReactionWow}
	NegativeReactions = []ReactionKind{ReactionSad, ReactionAngry, ReactionThumbsDown}
)

// Valid reports whether k is one of the known codes
func (k ReactionKind) Valid() bool {
	_, ok := reactionNames[k]
	return ok
}

// Name returns the display name, e.g. "THUMBS-UP"
func (k ReactionKind) Name() string {
	return reactionNames[k]
}

// IsPositive reports whether k counts towards the positive side
func (k ReactionKind) IsPositive() bool {
	for _, p := range PositiveReactions {
		if p == k {
			return true
		}
	}
	return false
}

// IsNegative reports whether k counts towards the negative side
func (k ReactionKind) IsNegative() bool {
	for _, n := range NegativeReactions {
		if n == k {
			return true
		}
	}
	return false
}

// ParseReactionKind accepts a code ("HA") or a display name ("haha")
func ParseReactionKind(s string) (ReactionKind, error) {
	s = strings.ToUpper(strings.TrimSpace(s))
	if k := ReactionKind(s); k.Valid() {
		return k, nil
	}
	for k, name := range reactionNames {
		if name == s {
			return k, nil
		}
	}
	return "", fmt.Errorf("unknown reaction %q", s)
}

// TargetKind discriminates what a reaction points at
type TargetKind string

const (
	TargetPost    TargetKind = "post"
	TargetComment TargetKind = "comment"
)

// Target is the post or comment a reaction refers to
type Target struct {
	Kind TargetKind `json:"kind"`
	ID   uint       `json:"id"`
}

func PostTarget(id uint) Target    { return Target{Kind: TargetPost, ID: id} }
func CommentTarget(id uint) Target { return Target{Kind: TargetComment, ID: id} }

func (t Target) String() string {
	return fmt.Sprintf("%s:%d", t.Kind, t.ID)
}

// Reaction is a user's single reaction on a target. At most one row exists
// per (ReactedByID, target), enforced by the two unique indexes.
type Reaction struct {
	ID          uint         `json:"id" gorm:"primaryKey"`
	Reaction    ReactionKind `json:"reaction" gorm:"size:2;not null;index"`
	ReactedAt   time.Time    `json:"reacted_at" gorm:"not null"`
	ReactedByID uint         `json:"reacted_by_id" gorm:"not null;index;uniqueIndex:idx_reaction_user_post;uniqueIndex:idx_reaction_user_comment"`
	ReactedBy   User         `json:"-" gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;"`
	PostID      *uint        `json:"post_id,omitempty" gorm:"index;uniqueIndex:idx_reaction_user_post"`
	Post        *Post        `json:"-" gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;"`
	CommentID   *uint        `json:"comment_id,omitempty" gorm:"index;uniqueIndex:idx_reaction_user_comment"`
	Comment     *Comment     `json:"-" gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;"`
}

// NewReaction builds a reaction row with the reference column for target set
func NewReaction(userID uint, target Target, kind ReactionKind, at time.Time) *Reaction {
	r := &Reaction{
		Reaction:    kind,
		ReactedAt:   at,
		ReactedByID: userID,
	}
	id := target.ID
	switch target.Kind {
	case TargetPost:
		r.PostID = &id
	case TargetComment:
		r.CommentID = &id
	}
	return r
}

// Target returns the post or comment this reaction points at
func (r Reaction) Target() Target {
	if r.PostID != nil {
		return PostTarget(*r.PostID)
	}
	if r.CommentID != nil {
		return CommentTarget(*r.CommentID)
	}
	return Target{}
}

// CreateReactionRequest defines the request body for reacting to a target
type CreateReactionRequest struct {
	Reaction string `json:"reaction" validate:"required,reaction_kind"`
}
