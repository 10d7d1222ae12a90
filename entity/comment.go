package entity

import (
	"time"

	"github.com/google/uuid"
)

type Comment struct {
	ID        uuid.UUID `json:"id" gorm:"type:uuid;primaryKey"`
	VideoID   uuid.UUID `json:"videoId" gorm:"type:uuid;not null;index"`
	UserID    string    `json:"userId" gorm:"type:varchar(255);not null;default:'anon_user'"`
	Text      string    `json:"text" gorm:"type:text;not null"`
	CreatedAt time.Time `json:"createdAt" gorm:"not null;autoCreateTime"`

	Video *Video `json:"-" gorm:"foreignKey:VideoID;constraint:OnDelete:CASCADE"`
}
