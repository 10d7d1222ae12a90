package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/ola007-cpu/webApp/entity"
	"github.com/ola007-cpu/webApp/infra"
)

type CommentRepository struct {
	pg *infra.PostgresClient
}

func NewCommentRepository(pg *infra.PostgresClient) *CommentRepository {
	return &CommentRepository{pg: pg}
}

func (r *CommentRepository) Create(ctx context.Context, comment *entity.Comment) error {
	db, err := r.pg.Connect(ctx)
	if err != nil {
		return err
	}
	if comment.ID == uuid.Nil {
		comment.ID = uuid.New()
	}
	return db.Create(comment).Error
}

func (r *CommentRepository) ListByVideoID(ctx context.Context, videoID uuid.UUID) ([]entity.Comment, error) {
	db, err := r.pg.Connect(ctx)
	if err != nil {
		return nil, err
	}
	var comments []entity.Comment
	if err := db.Where("video_id = ?", videoID).Order("created_at DESC").Find(&comments).Error; err != nil {
		return nil, err
	}
	return comments, nil
}
