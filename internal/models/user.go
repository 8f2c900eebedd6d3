package models

import "time"

// User is an author of posts, comments and reactions. Users are never updated.
type User struct {
	ID          uint      `json:"id" gorm:"primaryKey"`
	Name        string    `json:"name" gorm:"size:100;not null"`
	ProfilePic  string    `json:"profile_pic"`
	FirebaseUID *string   `json:"firebase_uid,omitempty" gorm:"uniqueIndex"` // Set for users created through Firebase login
	CreatedAt   time.Time `json:"-"`
}

// UserSummary is the compact author block embedded in read views
type UserSummary struct {
	UserID     uint   `json:"user_id"`
	Name       string `json:"name"`
	ProfilePic string `json:"profile_pic"`
}

// ToSummary converts a user into its embedded read form
func (u User) ToSummary() UserSummary {
	return UserSummary{
		UserID:     u.ID,
		Name:       u.Name,
		ProfilePic: u.ProfilePic,
	}
}
