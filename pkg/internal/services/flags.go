package services

import (
	"fmt"

	"git.solsynth.dev/hypernet/hobbyhub/pkg/internal/models"
	"github.com/samber/lo"
)

func IsKnownFlag(flag string) bool {
	return lo.Contains(models.PostFlagVocabulary, flag)
}

// NormalizeFlags drops duplicates and rejects anything outside the vocabulary.
func NormalizeFlags(flags []string) ([]string, error) {
	out := lo.Uniq(flags)
	for _, flag := range out {
		if !IsKnownFlag(flag) {
			return nil, ValidationError{Field: "flags", Reason: fmt.Sprintf("contains unknown flag %q", flag)}
		}
	}
	return out, nil
}
