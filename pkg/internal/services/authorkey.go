package services

import (
	"context"
	"crypto/subtle"

	"git.solsynth.dev/hypernet/hobbyhub/pkg/internal/metrics"
	"git.solsynth.dev/hypernet/hobbyhub/pkg/internal/models"
)

type AuthorKeyCheck string

const (
	AuthorKeyMatched    = AuthorKeyCheck("matched")
	AuthorKeyMismatched = AuthorKeyCheck("mismatched")
	AuthorKeyMissing    = AuthorKeyCheck("missing")
)

func (v AuthorKeyCheck) Err() error {
	switch v {
	case AuthorKeyMatched:
		return nil
	case AuthorKeyMissing:
		return ValidationError{Field: "author_key", Reason: "is required"}
	default:
		return ErrAuthorKeyMismatch
	}
}

func CheckAuthorKey(post models.Post, key string) AuthorKeyCheck {
	var result AuthorKeyCheck
	switch {
	case len(key) == 0:
		result = AuthorKeyMissing
	case subtle.ConstantTimeCompare([]byte(post.AuthorKey), []byte(key)) == 1:
		result = AuthorKeyMatched
	default:
		result = AuthorKeyMismatched
	}
	metrics.AuthorKeyChecks.WithLabelValues(string(result)).Inc()
	return result
}

// VerifyPostAuthorKey is the credential step of edit and delete, it reads the post fresh.
func VerifyPostAuthorKey(ctx context.Context, store ContentStore, id, key string) (AuthorKeyCheck, error) {
	post, err := store.GetPost(ctx, id)
	if err != nil {
		return AuthorKeyMismatched, err
	}
	return CheckAuthorKey(post, key), nil
}
