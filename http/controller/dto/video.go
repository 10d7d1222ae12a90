package dto

import (
	"time"

	"github.com/ola007-cpu/webApp/entity"
)

type VideoResponse struct {
	ID           string    `json:"id"`
	VideoURL     string    `json:"videoUrl"`
	ThumbnailURL string    `json:"thumbnailUrl,omitempty"`
	Caption      string    `json:"caption"`
	Likes        int64     `json:"likes"`
	UserID       string    `json:"userId"`
	CreatedAt    time.Time `json:"createdAt"`
}

// NewVideoResponse exposes a stored record with its storage location
// replaced by url (signed, or the canonical fallback).
func NewVideoResponse(video *entity.Video, url string) VideoResponse {
	return VideoResponse{
		ID:           video.ID.String(),
		VideoURL:     url,
		ThumbnailURL: video.ThumbnailURL,
		Caption:      video.Caption,
		Likes:        video.Likes,
		UserID:       video.UserID,
		CreatedAt:    video.CreatedAt,
	}
}

type UploadResponse struct {
	Success bool          `json:"success"`
	Video   VideoResponse `json:"video"`
}
