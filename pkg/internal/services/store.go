package services

import (
	"context"

	"git.solsynth.dev/hypernet/hobbyhub/pkg/internal/models"
	"gorm.io/datatypes"
)

// ContentStore is the backend holding the "posts" collection.
// Every call is one round trip; failures are returned unchanged except not-found,
// which is always ErrPostNotFound.
type ContentStore interface {
	ListPosts(ctx context.Context) ([]models.Post, error)
	GetPost(ctx context.Context, id string) (models.Post, error)
	CreatePost(ctx context.Context, item models.Post) (models.Post, error)
	UpdatePost(ctx context.Context, id string, patch PostPatch) (models.Post, error)
	DeletePost(ctx context.Context, id string) error

	IncrementUpvotes(ctx context.Context, id string) (models.Post, error)
	// ReplaceComments stores comments only when the post is still at version,
	// otherwise it fails with ErrConflict.
	ReplaceComments(ctx context.Context, id string, version int, comments []models.Comment) (models.Post, error)
}

// PostPatch holds the editable fields of a post, nil means untouched.
type PostPatch struct {
	Title    *string
	Content  *string
	ImageURL *string
	Flags    *[]string
	RepostOf **string
	Language *string
}

func (v PostPatch) Columns() map[string]any {
	columns := make(map[string]any)
	if v.Title != nil {
		columns["title"] = *v.Title
	}
	if v.Content != nil {
		columns["content"] = *v.Content
	}
	if v.ImageURL != nil {
		columns["image_url"] = *v.ImageURL
	}
	if v.Flags != nil {
		columns["flags"] = datatypes.JSONSlice[string](*v.Flags)
	}
	if v.RepostOf != nil {
		columns["repost_of"] = *v.RepostOf
	}
	if v.Language != nil {
		columns["language"] = *v.Language
	}
	return columns
}

func (v PostPatch) Apply(item models.Post) models.Post {
	if v.Title != nil {
		item.Title = *v.Title
	}
	if v.Content != nil {
		item.Content = *v.Content
	}
	if v.ImageURL != nil {
		item.ImageURL = *v.ImageURL
	}
	if v.Flags != nil {
		item.Flags = append(datatypes.JSONSlice[string]{}, *v.Flags...)
	}
	if v.RepostOf != nil {
		item.RepostOf = *v.RepostOf
	}
	if v.Language != nil {
		item.Language = *v.Language
	}
	return item
}
