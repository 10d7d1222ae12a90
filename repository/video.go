package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/ola007-cpu/webApp/entity"
	"github.com/ola007-cpu/webApp/infra"
	"github.com/ola007-cpu/webApp/utils"
	"gorm.io/gorm"
)

type VideoRepository struct {
	pg *infra.PostgresClient
}

func NewVideoRepository(pg *infra.PostgresClient) *VideoRepository {
	return &VideoRepository{pg: pg}
}

func (r *VideoRepository) Create(ctx context.Context, video *entity.Video) error {
	db, err := r.pg.Connect(ctx)
	if err != nil {
		return err
	}
	if video.ID == uuid.Nil {
		video.ID = uuid.New()
	}
	return db.Create(video).Error
}

// ListNewestFirst returns the full catalog ordered by creation time
// descending. Unpaginated; the feed consumes the whole list.
func (r *VideoRepository) ListNewestFirst(ctx context.Context) ([]entity.Video, error) {
	db, err := r.pg.Connect(ctx)
	if err != nil {
		return nil, err
	}
	var videos []entity.Video
	if err := db.Order("created_at DESC").Find(&videos).Error; err != nil {
		return nil, err
	}
	return videos, nil
}

func (r *VideoRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Video, error) {
	db, err := r.pg.Connect(ctx)
	if err != nil {
		return nil, err
	}
	var video entity.Video
	if err := db.Where("id = ?", id).First(&video).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: video %s", utils.ErrNotFound, id)
		}
		return nil, err
	}
	return &video, nil
}

func (r *VideoRepository) Exists(ctx context.Context, id uuid.UUID) (bool, error) {
	db, err := r.pg.Connect(ctx)
	if err != nil {
		return false, err
	}
	var count int64
	if err := db.Model(&entity.Video{}).Where("id = ?", id).Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

// IncrementLikes adds exactly 1 to the like counter inside the store
// (never read-modify-write in the application), so concurrent likes
// cannot lose updates. Returns the number of rows touched; 0 means the
// id resolved to nothing.
func (r *VideoRepository) IncrementLikes(ctx context.Context, id uuid.UUID) (int64, error) {
	db, err := r.pg.Connect(ctx)
	if err != nil {
		return 0, err
	}
	res := db.Model(&entity.Video{}).Where("id = ?", id).
		UpdateColumn("likes", gorm.Expr("likes + ?", 1))
	return res.RowsAffected, res.Error
}
