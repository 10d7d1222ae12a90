package entity

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// Placeholder identities used until a real auth layer is wired in.
// Records carry an opaque owner string so swapping in authenticated
// user ids requires no schema change.
const (
	AnonymousUploader  = "user-1"
	AnonymousCommenter = "anon_user"
)

type Video struct {
	ID           uuid.UUID      `json:"id" gorm:"type:uuid;primaryKey"`
	VideoURL     string         `json:"videoUrl" gorm:"type:varchar(2048);not null"`
	ThumbnailURL string         `json:"thumbnailUrl" gorm:"type:varchar(2048)"`
	Caption      string         `json:"caption" gorm:"type:text"`
	Likes        int64          `json:"likes" gorm:"not null;default:0"`
	UserID       string         `json:"userId" gorm:"type:varchar(255);not null;default:'anon'"`
	Upload       datatypes.JSON `json:"upload,omitempty" gorm:"type:jsonb"`
	CreatedAt    time.Time      `json:"createdAt" gorm:"not null;autoCreateTime;index:idx_videos_created_at,sort:desc"`
}

// UploadInfo is the shape stored in Video.Upload.
type UploadInfo struct {
	Filename    string `json:"filename"`
	SizeBytes   int64  `json:"size_bytes"`
	ContentType string `json:"content_type"`
}
