package models

import "time"

// Comment is either a top-level comment on a post or a reply to a top-level
// comment. Exactly one of PostID and ParentCommentID is set; use
// NewTopLevelComment and NewReply to build one.
type Comment struct {
	ID              uint      `json:"id" gorm:"primaryKey"`
	Content         string    `json:"content" gorm:"size:1000;not null"`
	CommentedAt     time.Time `json:"commented_at" gorm:"not null"`
	CommentedByID   uint      `json:"commented_by_id" gorm:"not null;index"`
	CommentedBy     User      `json:"-" gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;"`
	PostID          *uint     `json:"post_id,omitempty" gorm:"index"`
	Post            *Post     `json:"-" gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;"`
	ParentCommentID *uint     `json:"parent_comment_id,omitempty" gorm:"index"`
	ParentComment   *Comment  `json:"-" gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;"`
}

// CommentParent tells where a comment hangs: on a post or under another comment
type CommentParent interface {
	isCommentParent()
}

// TopLevel is the parent of a comment made directly on a post
type TopLevel struct {
	PostID uint
}

// Reply is the parent of a comment made under a top-level comment
type Reply struct {
	ParentID uint
}

func (TopLevel) isCommentParent() {}
func (Reply) isCommentParent()    {}

// NewTopLevelComment builds a comment attached to a post
func NewTopLevelComment(postID, userID uint, content string, at time.Time) *Comment {
	return &Comment{
		Content:       content,
		CommentedAt:   at,
		CommentedByID: userID,
		PostID:        &postID,
	}
}

// NewReply builds a comment attached to a top-level comment
func NewReply(parentID, userID uint, content string, at time.Time) *Comment {
	return &Comment{
		Content:         content,
		CommentedAt:     at,
		CommentedByID:   userID,
		ParentCommentID: &parentID,
	}
}

// Parent returns the comment's parent variant. It returns nil for a row that
// has neither reference set, which the constructors never produce.
func (c Comment) Parent() CommentParent {
	switch {
	case c.PostID != nil:
		return TopLevel{PostID: *c.PostID}
	case c.ParentCommentID != nil:
		return Reply{ParentID: *c.ParentCommentID}
	}
	return nil
}

// IsReply reports whether the comment hangs under another comment
func (c Comment) IsReply() bool {
	_, ok := c.Parent().(Reply)
	return ok
}

// CreateCommentRequest defines the request body for commenting or replying
type CreateCommentRequest struct {
	Content string `json:"content" validate:"required,min=1,max=1000"`
}
