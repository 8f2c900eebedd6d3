package models

import "time"

// MaxContentLength bounds post, comment and reply text
const MaxContentLength = 1000

// Post represents a feed post
type Post struct {
	ID         uint      `json:"id" gorm:"primaryKey"`
	Content    string    `json:"content" gorm:"size:1000;not null"`
	PostedAt   time.Time `json:"posted_at" gorm:"not null"`
	PostedByID uint      `json:"posted_by_id" gorm:"not null;index"`
	PostedBy   User      `json:"-" gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;"`
}

// CreatePostRequest defines the request body for creating a new post
type CreatePostRequest struct {
	Content string `json:"content" validate:"required,min=1,max=1000"`
}
