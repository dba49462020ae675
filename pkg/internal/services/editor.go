package services

import (
	"context"
	"strings"
	"time"

	"git.solsynth.dev/hypernet/hobbyhub/pkg/internal/metrics"
	"git.solsynth.dev/hypernet/hobbyhub/pkg/internal/models"
	"github.com/rs/zerolog/log"
	"github.com/samber/lo"
	"gorm.io/datatypes"
)

// PostDraft is the editor form.
type PostDraft struct {
	Title     string   `json:"title"`
	ImageURL  string   `json:"image_url"`
	Content   string   `json:"content"`
	Flags     []string `json:"flags"`
	AuthorKey string   `json:"author_key"`
	RepostOf  string   `json:"repost_of"`
}

func ValidatePostDraft(draft PostDraft) (PostDraft, error) {
	if len(strings.TrimSpace(draft.Title)) == 0 {
		return draft, ValidationError{Field: "title", Reason: "is required"}
	}
	if len(strings.TrimSpace(draft.ImageURL)) == 0 {
		return draft, ValidationError{Field: "image_url", Reason: "is required"}
	}
	if len(draft.AuthorKey) == 0 {
		return draft, ValidationError{Field: "author_key", Reason: "is required"}
	}

	flags, err := NormalizeFlags(draft.Flags)
	if err != nil {
		return draft, err
	}
	draft.Flags = flags
	draft.RepostOf = strings.TrimSpace(draft.RepostOf)
	return draft, nil
}

func draftRepostOf(draft PostDraft) *string {
	if len(draft.RepostOf) == 0 {
		return nil
	}
	return lo.ToPtr(draft.RepostOf)
}

func draftLanguage(draft PostDraft) string {
	return DetectLanguage(strings.TrimSpace(draft.Title + "\n" + draft.Content))
}

// LoadPostDraft pre-fills the edit form. The author key always starts blank.
func LoadPostDraft(ctx context.Context, store ContentStore, id string) (PostDraft, error) {
	post, err := store.GetPost(ctx, id)
	if err != nil {
		return PostDraft{}, err
	}
	return PostDraft{
		Title:    post.Title,
		ImageURL: post.ImageURL,
		Content:  post.Content,
		Flags:    append([]string{}, post.Flags...),
		RepostOf: lo.FromPtr(post.RepostOf),
	}, nil
}

func NewPost(ctx context.Context, store ContentStore, draft PostDraft, actor Actor, now time.Time) (models.Post, error) {
	draft, err := ValidatePostDraft(draft)
	if err != nil {
		return models.Post{}, err
	}

	item := models.Post{
		Title:     draft.Title,
		Content:   draft.Content,
		ImageURL:  draft.ImageURL,
		AuthorKey: draft.AuthorKey,
		Flags:     datatypes.JSONSlice[string](draft.Flags),
		Upvotes:   0,
		Comments:  datatypes.JSONSlice[models.Comment]{},
		Language:  draftLanguage(draft),
		UserID:    actor.ID,
		UserEmail: actor.Email,
		RepostOf:  draftRepostOf(draft),
	}
	item.CreatedAt = now

	log.Debug().Str("actor", actor.ID).Msg("Posting a post...")
	start := time.Now()

	item, err = store.CreatePost(ctx, item)
	if err != nil {
		return item, err
	}

	metrics.PostsCreated.WithLabelValues("editor").Inc()
	log.Debug().Dur("elapsed", time.Since(start)).Str("post", item.ID).Msg("The post is posted.")
	return item, nil
}

// EditPost re-reads the post to verify the author key, then writes only the editable fields.
func EditPost(ctx context.Context, store ContentStore, id string, draft PostDraft) (models.Post, error) {
	draft, err := ValidatePostDraft(draft)
	if err != nil {
		return models.Post{}, err
	}

	check, err := VerifyPostAuthorKey(ctx, store, id, draft.AuthorKey)
	if err != nil {
		return models.Post{}, err
	}
	if err := check.Err(); err != nil {
		return models.Post{}, err
	}

	return store.UpdatePost(ctx, id, PostPatch{
		Title:    lo.ToPtr(draft.Title),
		Content:  lo.ToPtr(draft.Content),
		ImageURL: lo.ToPtr(draft.ImageURL),
		Flags:    lo.ToPtr(draft.Flags),
		RepostOf: lo.ToPtr(draftRepostOf(draft)),
		Language: lo.ToPtr(draftLanguage(draft)),
	})
}
