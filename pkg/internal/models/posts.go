package models

import (
	"gorm.io/datatypes"
)

type Post struct {
	BaseModel

	Title     string                       `json:"title"`
	Content   string                       `json:"content"`
	ImageURL  string                       `json:"image_url"`
	AuthorKey string                       `json:"-"`
	Flags     datatypes.JSONSlice[string]  `json:"flags"`
	Upvotes   int                          `json:"upvotes"`
	Comments  datatypes.JSONSlice[Comment] `json:"comments"`
	Language  string                       `json:"language"`
	UserID    string                       `json:"user_id" gorm:"index"`
	UserEmail *string                      `json:"user_email"`
	RepostOf  *string                      `json:"repost_of"`

	// Version guards read-modify-write of the comment list.
	Version int `json:"version"`
}

// Attribution is what the detail view shows as the poster.
func (v Post) Attribution() string {
	if v.UserEmail != nil && len(*v.UserEmail) > 0 {
		return *v.UserEmail
	}
	return v.UserID
}

type Comment struct {
	ID   int64  `json:"id"`
	Text string `json:"text"`
	User string `json:"user"`
}
