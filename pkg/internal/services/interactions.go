package services

import (
	"context"
	"slices"
	"strings"
	"time"

	"git.solsynth.dev/hypernet/hobbyhub/pkg/internal/metrics"
	"git.solsynth.dev/hypernet/hobbyhub/pkg/internal/models"
	"github.com/rs/zerolog/log"
	"github.com/samber/lo"
	"gorm.io/datatypes"
)

const RepostTitlePrefix = "[Repost] "

// IsPostOwner gates the manage controls, it compares creator ids and never the author key.
func IsPostOwner(post models.Post, actorId string) bool {
	return len(actorId) > 0 && post.UserID == actorId
}

func UpvotePost(ctx context.Context, store ContentStore, id string) (models.Post, error) {
	item, err := store.IncrementUpvotes(ctx, id)
	if err != nil {
		return item, err
	}
	metrics.Upvotes.Inc()
	return item, nil
}

func nextCommentID(comments []models.Comment, now time.Time) int64 {
	id := now.UnixMilli()
	for _, comment := range comments {
		if comment.ID >= id {
			id = comment.ID + 1
		}
	}
	return id
}

// IsBlankComment reports comment text that AddComment ignores.
func IsBlankComment(text string) bool {
	return len(strings.TrimSpace(text)) == 0
}

// AddComment appends a comment by the actor. Blank text is ignored and the post comes back untouched.
func AddComment(ctx context.Context, store ContentStore, id, actorId, text string, now time.Time) (models.Post, error) {
	post, err := store.GetPost(ctx, id)
	if err != nil {
		return post, err
	}
	if IsBlankComment(text) {
		return post, nil
	}

	comments := append(slices.Clone([]models.Comment(post.Comments)), models.Comment{
		ID:   nextCommentID(post.Comments, now),
		Text: text,
		User: actorId,
	})

	item, err := store.ReplaceComments(ctx, post.ID, post.Version, comments)
	if err != nil {
		metrics.CommentWrites.WithLabelValues("add", "failed").Inc()
		return item, err
	}
	metrics.CommentWrites.WithLabelValues("add", "ok").Inc()
	return item, nil
}

// DeleteComment removes a comment after checking the post's author key.
func DeleteComment(ctx context.Context, store ContentStore, id string, commentId int64, key string) (models.Post, error) {
	post, err := store.GetPost(ctx, id)
	if err != nil {
		return post, err
	}
	if err := CheckAuthorKey(post, key).Err(); err != nil {
		metrics.CommentWrites.WithLabelValues("delete", "rejected").Inc()
		return post, err
	}

	comments := lo.Filter(post.Comments, func(item models.Comment, _ int) bool {
		return item.ID != commentId
	})
	if len(comments) == len(post.Comments) {
		return post, ErrCommentNotFound
	}

	item, err := store.ReplaceComments(ctx, post.ID, post.Version, comments)
	if err != nil {
		metrics.CommentWrites.WithLabelValues("delete", "failed").Inc()
		return item, err
	}
	metrics.CommentWrites.WithLabelValues("delete", "ok").Inc()
	return item, nil
}

type DeletePostRequest struct {
	AuthorKey string
	Confirmed bool
}

// DeletePost needs both steps: a matching author key and an explicit confirmation.
func DeletePost(ctx context.Context, store ContentStore, id string, req DeletePostRequest) error {
	check, err := VerifyPostAuthorKey(ctx, store, id, req.AuthorKey)
	if err != nil {
		return err
	}
	if err := check.Err(); err != nil {
		return err
	}
	if !req.Confirmed {
		return ErrConfirmationRequired
	}

	if err := store.DeletePost(ctx, id); err != nil {
		return err
	}
	metrics.PostsDeleted.Inc()
	log.Info().Str("post", id).Msg("A post has been deleted.")
	return nil
}

// RepostPost inserts a copy of the post attributed to the actor and pointing back at the source.
func RepostPost(ctx context.Context, store ContentStore, id string, actor Actor, now time.Time) (models.Post, error) {
	source, err := store.GetPost(ctx, id)
	if err != nil {
		return source, err
	}

	createdAt := now
	if !createdAt.After(source.CreatedAt) {
		createdAt = source.CreatedAt.Add(time.Microsecond)
	}

	item := models.Post{
		Title:     RepostTitlePrefix + source.Title,
		Content:   source.Content,
		ImageURL:  source.ImageURL,
		AuthorKey: source.AuthorKey,
		Flags:     append(datatypes.JSONSlice[string]{}, source.Flags...),
		Upvotes:   0,
		Comments:  datatypes.JSONSlice[models.Comment]{},
		Language:  source.Language,
		UserID:    actor.ID,
		UserEmail: actor.Email,
		RepostOf:  lo.ToPtr(source.ID),
	}
	item.CreatedAt = createdAt

	item, err = store.CreatePost(ctx, item)
	if err != nil {
		return item, err
	}
	metrics.PostsCreated.WithLabelValues("repost").Inc()
	return item, nil
}
