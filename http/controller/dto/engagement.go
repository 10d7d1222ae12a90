package dto

import (
	"time"

	"github.com/ola007-cpu/webApp/entity"
)

type LikeRequest struct {
	VideoID string `json:"videoId"`
}

type LikeResponse struct {
	Success bool `json:"success"`
}

type CreateCommentRequest struct {
	VideoID string `json:"videoId"`
	Text    string `json:"text"`
}

type CommentResponse struct {
	ID        string    `json:"id"`
	VideoID   string    `json:"videoId"`
	UserID    string    `json:"userId"`
	Text      string    `json:"text"`
	CreatedAt time.Time `json:"createdAt"`
}

func NewCommentResponse(comment *entity.Comment) CommentResponse {
	return CommentResponse{
		ID:        comment.ID.String(),
		VideoID:   comment.VideoID.String(),
		UserID:    comment.UserID,
		Text:      comment.Text,
		CreatedAt: comment.CreatedAt,
	}
}
