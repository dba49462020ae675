package services

import (
	"context"
	"slices"
	"sync"
	"time"

	"git.solsynth.dev/hypernet/hobbyhub/pkg/internal/models"
	"github.com/google/uuid"
	"github.com/samber/lo"
	"gorm.io/datatypes"
)

// MemoryPostStore keeps posts in process memory, used for local development and tests.
type MemoryPostStore struct {
	mu    sync.RWMutex
	posts map[string]models.Post
}

func NewMemoryPostStore() *MemoryPostStore {
	return &MemoryPostStore{posts: make(map[string]models.Post)}
}

func clonePost(item models.Post) models.Post {
	item.Flags = append(datatypes.JSONSlice[string]{}, item.Flags...)
	item.Comments = append(datatypes.JSONSlice[models.Comment]{}, item.Comments...)
	if item.RepostOf != nil {
		item.RepostOf = lo.ToPtr(*item.RepostOf)
	}
	if item.UserEmail != nil {
		item.UserEmail = lo.ToPtr(*item.UserEmail)
	}
	return item
}

func (v *MemoryPostStore) ListPosts(ctx context.Context) ([]models.Post, error) {
	v.mu.RLock()
	defer v.mu.RUnlock()

	items := lo.MapToSlice(v.posts, func(_ string, item models.Post) models.Post {
		return clonePost(item)
	})
	slices.SortStableFunc(items, func(a, b models.Post) int {
		return b.CreatedAt.Compare(a.CreatedAt)
	})
	return items, nil
}

func (v *MemoryPostStore) GetPost(ctx context.Context, id string) (models.Post, error) {
	v.mu.RLock()
	defer v.mu.RUnlock()

	item, ok := v.posts[id]
	if !ok {
		return models.Post{}, ErrPostNotFound
	}
	return clonePost(item), nil
}

func (v *MemoryPostStore) CreatePost(ctx context.Context, item models.Post) (models.Post, error) {
	v.mu.Lock()
	defer v.mu.Unlock()

	if len(item.ID) == 0 {
		item.ID = uuid.NewString()
	}
	if item.CreatedAt.IsZero() {
		item.CreatedAt = time.Now()
	}
	item.UpdatedAt = item.CreatedAt
	item = clonePost(item)
	v.posts[item.ID] = item
	return clonePost(item), nil
}

func (v *MemoryPostStore) mutate(id string, fn func(item *models.Post) error) (models.Post, error) {
	v.mu.Lock()
	defer v.mu.Unlock()

	item, ok := v.posts[id]
	if !ok {
		return models.Post{}, ErrPostNotFound
	}
	if err := fn(&item); err != nil {
		return models.Post{}, err
	}
	item.UpdatedAt = time.Now()
	v.posts[id] = item
	return clonePost(item), nil
}

func (v *MemoryPostStore) UpdatePost(ctx context.Context, id string, patch PostPatch) (models.Post, error) {
	return v.mutate(id, func(item *models.Post) error {
		*item = patch.Apply(*item)
		return nil
	})
}

func (v *MemoryPostStore) DeletePost(ctx context.Context, id string) error {
	v.mu.Lock()
	defer v.mu.Unlock()

	delete(v.posts, id)
	return nil
}

func (v *MemoryPostStore) IncrementUpvotes(ctx context.Context, id string) (models.Post, error) {
	return v.mutate(id, func(item *models.Post) error {
		item.Upvotes++
		return nil
	})
}

func (v *MemoryPostStore) ReplaceComments(ctx context.Context, id string, version int, comments []models.Comment) (models.Post, error) {
	return v.mutate(id, func(item *models.Post) error {
		if item.Version != version {
			return ErrConflict
		}
		item.Comments = append(datatypes.JSONSlice[models.Comment]{}, comments...)
		item.Version++
		return nil
	})
}
