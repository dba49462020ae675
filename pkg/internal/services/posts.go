package services

import (
	"context"
	"errors"
	"time"

	"git.solsynth.dev/hypernet/hobbyhub/pkg/internal/models"
	"github.com/rs/zerolog/log"
	"gorm.io/datatypes"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormPostStore keeps posts in the relational database.
type GormPostStore struct {
	db *gorm.DB
}

func NewGormPostStore(db *gorm.DB) *GormPostStore {
	return &GormPostStore{db: db}
}

func translatePostError(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrPostNotFound
	}
	return err
}

func (v *GormPostStore) ListPosts(ctx context.Context) ([]models.Post, error) {
	var items []models.Post
	if err := v.db.WithContext(ctx).
		Order("created_at DESC").
		Find(&items).Error; err != nil {
		return items, err
	}
	return items, nil
}

func (v *GormPostStore) GetPost(ctx context.Context, id string) (models.Post, error) {
	var item models.Post
	if err := v.db.WithContext(ctx).
		Where("id = ?", id).
		First(&item).Error; err != nil {
		return item, translatePostError(err)
	}
	return item, nil
}

func (v *GormPostStore) CreatePost(ctx context.Context, item models.Post) (models.Post, error) {
	if item.CreatedAt.IsZero() {
		item.CreatedAt = time.Now()
	}
	if item.Comments == nil {
		item.Comments = datatypes.JSONSlice[models.Comment]{}
	}
	if item.Flags == nil {
		item.Flags = datatypes.JSONSlice[string]{}
	}

	log.Debug().Str("title", item.Title).Msg("Saving post record into database...")
	if err := v.db.WithContext(ctx).Create(&item).Error; err != nil {
		return item, err
	}
	return item, nil
}

func (v *GormPostStore) update(ctx context.Context, tx *gorm.DB, columns map[string]any) (models.Post, error) {
	var item models.Post
	tx = tx.WithContext(ctx).Model(&item).Clauses(clause.Returning{}).Updates(columns)
	if tx.Error != nil {
		return item, tx.Error
	} else if tx.RowsAffected == 0 {
		return item, ErrPostNotFound
	}
	return item, nil
}

func (v *GormPostStore) UpdatePost(ctx context.Context, id string, patch PostPatch) (models.Post, error) {
	columns := patch.Columns()
	if len(columns) == 0 {
		return v.GetPost(ctx, id)
	}
	return v.update(ctx, v.db.Where("id = ?", id), columns)
}

func (v *GormPostStore) DeletePost(ctx context.Context, id string) error {
	return v.db.WithContext(ctx).Delete(&models.Post{}, "id = ?", id).Error
}

func (v *GormPostStore) IncrementUpvotes(ctx context.Context, id string) (models.Post, error) {
	return v.update(ctx, v.db.Where("id = ?", id), map[string]any{
		"upvotes": gorm.Expr("upvotes + ?", 1),
	})
}

func (v *GormPostStore) ReplaceComments(ctx context.Context, id string, version int, comments []models.Comment) (models.Post, error) {
	item, err := v.update(ctx, v.db.Where("id = ? AND version = ?", id, version), map[string]any{
		"comments": datatypes.JSONSlice[models.Comment](comments),
		"version":  gorm.Expr("version + ?", 1),
	})
	if errors.Is(err, ErrPostNotFound) {
		// Nothing matched: either the post is gone or another writer moved the version on.
		if _, err := v.GetPost(ctx, id); err != nil {
			return item, err
		}
		return item, ErrConflict
	}
	return item, err
}
