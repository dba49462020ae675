package services

import (
	"slices"
	"strings"

	"git.solsynth.dev/hypernet/hobbyhub/pkg/internal/models"
	"github.com/samber/lo"
)

type PostSortOrder string

const (
	PostSortNewest      = PostSortOrder("newest")
	PostSortMostUpvoted = PostSortOrder("most_upvoted")
)

func ParsePostSortOrder(raw string) PostSortOrder {
	switch strings.ReplaceAll(strings.ToLower(strings.TrimSpace(raw)), " ", "_") {
	case string(PostSortMostUpvoted), "upvotes":
		return PostSortMostUpvoted
	default:
		return PostSortNewest
	}
}

type PostListQuery struct {
	Flag   string
	Search string
	Sort   PostSortOrder
}

func FilterPostWithFlag(items []models.Post, flag string) []models.Post {
	if len(flag) == 0 || strings.EqualFold(flag, models.PostFlagAll) {
		return items
	}
	return lo.Filter(items, func(item models.Post, _ int) bool {
		return lo.Contains(item.Flags, flag)
	})
}

// FilterPostWithTitleSearch matches the probe as a case-insensitive substring of the title.
func FilterPostWithTitleSearch(items []models.Post, probe string) []models.Post {
	if len(probe) == 0 {
		return items
	}
	probe = strings.ToLower(probe)
	return lo.Filter(items, func(item models.Post, _ int) bool {
		return strings.Contains(strings.ToLower(item.Title), probe)
	})
}

func SortPosts(items []models.Post, order PostSortOrder) []models.Post {
	out := slices.Clone(items)
	switch order {
	case PostSortMostUpvoted:
		slices.SortStableFunc(out, func(a, b models.Post) int {
			return b.Upvotes - a.Upvotes
		})
	default:
		slices.SortStableFunc(out, func(a, b models.Post) int {
			return b.CreatedAt.Compare(a.CreatedAt)
		})
	}
	return out
}

// ApplyPostListQuery runs flag filter, title search and sort, always in that order.
func ApplyPostListQuery(items []models.Post, query PostListQuery) []models.Post {
	items = FilterPostWithFlag(items, query.Flag)
	items = FilterPostWithTitleSearch(items, query.Search)
	return SortPosts(items, query.Sort)
}
