package services_test

import (
	"context"
	"testing"

	"git.solsynth.dev/hypernet/hobbyhub/pkg/internal/models"
	"git.solsynth.dev/hypernet/hobbyhub/pkg/internal/services"
	"github.com/samber/lo"
	"github.com/stretchr/testify/require"
)

func validDraft() services.PostDraft {
	return services.PostDraft{
		Title:     "Old town alley",
		ImageURL:  "https://images.example.com/alley.jpg",
		Content:   "A quiet alley in the old town, late afternoon.",
		Flags:     []string{models.PostFlagStreet, models.PostFlagTravel, models.PostFlagStreet},
		AuthorKey: testAuthorKey,
	}
}

func TestValidatePostDraft(t *testing.T) {
	t.Parallel()

	draft, err := services.ValidatePostDraft(validDraft())
	require.NoError(t, err)
	require.Equal(t, []string{models.PostFlagStreet, models.PostFlagTravel}, draft.Flags)

	for field, mutate := range map[string]func(d *services.PostDraft){
		"title":      func(d *services.PostDraft) { d.Title = "  " },
		"image_url":  func(d *services.PostDraft) { d.ImageURL = "" },
		"author_key": func(d *services.PostDraft) { d.AuthorKey = "" },
		"flags":      func(d *services.PostDraft) { d.Flags = []string{"Underwater"} },
	} {
		draft := validDraft()
		mutate(&draft)
		_, err := services.ValidatePostDraft(draft)
		var validationErr services.ValidationError
		require.ErrorAs(t, err, &validationErr, field)
		require.Equal(t, field, validationErr.Field)
	}
}

func TestNewPost(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	store := services.NewMemoryPostStore()
	actor := services.Actor{ID: "guest-7"}

	item, err := services.NewPost(ctx, store, validDraft(), actor, testNow)
	require.NoError(t, err)
	require.NotEmpty(t, item.ID)
	require.Equal(t, "Old town alley", item.Title)
	require.Equal(t, testAuthorKey, item.AuthorKey)
	require.Equal(t, []string{models.PostFlagStreet, models.PostFlagTravel}, []string(item.Flags))
	require.Zero(t, item.Upvotes)
	require.Empty(t, item.Comments)
	require.Equal(t, "guest-7", item.UserID)
	require.Nil(t, item.UserEmail)
	require.Nil(t, item.RepostOf)
	require.True(t, item.CreatedAt.Equal(testNow))

	_, err = services.NewPost(ctx, store, services.PostDraft{Title: "No image", AuthorKey: "k"}, actor, testNow)
	require.True(t, services.IsValidationError(err))

	items, err := store.ListPosts(ctx)
	require.NoError(t, err)
	require.Len(t, items, 1)
}

func TestLoadPostDraftLeavesKeyBlank(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	store := services.NewMemoryPostStore()
	item := seedPost(t, store, func(item *models.Post) {
		item.RepostOf = lo.ToPtr("source")
	})

	draft, err := services.LoadPostDraft(ctx, store, item.ID)
	require.NoError(t, err)
	require.Equal(t, item.Title, draft.Title)
	require.Equal(t, item.ImageURL, draft.ImageURL)
	require.Equal(t, item.Content, draft.Content)
	require.Equal(t, []string{models.PostFlagLandscape}, draft.Flags)
	require.Equal(t, "source", draft.RepostOf)
	require.Empty(t, draft.AuthorKey)

	_, err = services.LoadPostDraft(ctx, store, "missing")
	require.ErrorIs(t, err, services.ErrPostNotFound)
}

func TestEditPost(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	store := services.NewMemoryPostStore()
	item := seedPost(t, store, func(item *models.Post) {
		item.Upvotes = 4
		item.Comments = append(item.Comments, models.Comment{ID: 1, Text: "keep me", User: "x"})
	})

	draft := validDraft()
	draft.AuthorKey = "wrong"
	_, err := services.EditPost(ctx, store, item.ID, draft)
	require.ErrorIs(t, err, services.ErrAuthorKeyMismatch)

	stored, err := store.GetPost(ctx, item.ID)
	require.NoError(t, err)
	require.Equal(t, "Morning fog", stored.Title)

	updated, err := services.EditPost(ctx, store, item.ID, validDraft())
	require.NoError(t, err)
	require.Equal(t, "Old town alley", updated.Title)
	require.Equal(t, validDraft().Content, updated.Content)
	require.Equal(t, []string{models.PostFlagStreet, models.PostFlagTravel}, []string(updated.Flags))
	require.Equal(t, 4, updated.Upvotes)
	require.Len(t, updated.Comments, 1)
	require.Equal(t, "owner", updated.UserID)
	require.Equal(t, testAuthorKey, updated.AuthorKey)

	_, err = services.EditPost(ctx, store, "missing", validDraft())
	require.ErrorIs(t, err, services.ErrPostNotFound)
}
