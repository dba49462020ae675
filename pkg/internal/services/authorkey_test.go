package services_test

import (
	"context"
	"testing"

	"git.solsynth.dev/hypernet/hobbyhub/pkg/internal/models"
	"git.solsynth.dev/hypernet/hobbyhub/pkg/internal/services"
	"github.com/stretchr/testify/require"
)

func TestCheckAuthorKey(t *testing.T) {
	t.Parallel()

	item := models.Post{AuthorKey: testAuthorKey}

	require.Equal(t, services.AuthorKeyMatched, services.CheckAuthorKey(item, testAuthorKey))
	require.Equal(t, services.AuthorKeyMismatched, services.CheckAuthorKey(item, "S3CRET-KEY"))
	require.Equal(t, services.AuthorKeyMissing, services.CheckAuthorKey(item, ""))

	require.NoError(t, services.AuthorKeyMatched.Err())
	require.ErrorIs(t, services.AuthorKeyMismatched.Err(), services.ErrAuthorKeyMismatch)
	require.True(t, services.IsValidationError(services.AuthorKeyMissing.Err()))
}

func TestVerifyPostAuthorKey(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	store := services.NewMemoryPostStore()
	item := seedPost(t, store)

	result, err := services.VerifyPostAuthorKey(ctx, store, item.ID, testAuthorKey)
	require.NoError(t, err)
	require.Equal(t, services.AuthorKeyMatched, result)

	result, err = services.VerifyPostAuthorKey(ctx, store, item.ID, "nope")
	require.NoError(t, err)
	require.Equal(t, services.AuthorKeyMismatched, result)

	_, err = services.VerifyPostAuthorKey(ctx, store, "missing", testAuthorKey)
	require.ErrorIs(t, err, services.ErrPostNotFound)
}
