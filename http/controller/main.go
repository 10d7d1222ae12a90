package controller

import (
	"context"
	"time"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/metric"

	"github.com/ola007-cpu/webApp/config"
	"github.com/ola007-cpu/webApp/entity"
	"github.com/ola007-cpu/webApp/infra"
	"github.com/ola007-cpu/webApp/infra/produce"
	"github.com/ola007-cpu/webApp/repository"
)

// The document and object stores are collaborators behind narrow
// interfaces; handlers never see gorm or minio types directly.

type VideoCatalog interface {
	Create(ctx context.Context, video *entity.Video) error
	ListNewestFirst(ctx context.Context) ([]entity.Video, error)
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Video, error)
	Exists(ctx context.Context, id uuid.UUID) (bool, error)
	IncrementLikes(ctx context.Context, id uuid.UUID) (int64, error)
}

type CommentCatalog interface {
	Create(ctx context.Context, comment *entity.Comment) error
	ListByVideoID(ctx context.Context, videoID uuid.UUID) ([]entity.Comment, error)
}

type MetadataCache interface {
	Get(ctx context.Context, key string, dest interface{}) error
	Set(ctx context.Context, key string, value interface{}, expiration time.Duration) error
	Delete(ctx context.Context, keys ...string) error
}

type EventPublisher interface {
	VideoUploaded(ctx context.Context, msg produce.VideoUploadedMessage) error
}

type Controller struct {
	Config   *config.Config
	Logger   *infra.LoggerClient
	Videos   VideoCatalog
	Comments CommentCatalog
	Objects  infra.ObjectStore
	Cache    MetadataCache  // optional, nil without Redis
	Events   EventPublisher // optional, nil without RabbitMQ

	uploads metric.Int64Counter
}

func NewController(cfg *config.Config, infraClient *infra.Infra, repo *repository.Repository) *Controller {
	ctrl := &Controller{
		Config:   cfg,
		Logger:   infraClient.Logger,
		Videos:   repo.VideoRepo,
		Comments: repo.CommentRepo,
		Objects:  infraClient.Objects,
	}

	if infraClient.Redis != nil {
		ctrl.Cache = infraClient.Redis
	}
	if infraClient.Produce != nil {
		ctrl.Events = infraClient.Produce.VideoEvents
	}

	meter := otel.Meter("webapp/http")
	if counter, err := meter.Int64Counter("videos_uploaded_total",
		metric.WithDescription("Videos accepted by the upload pipeline"),
	); err == nil {
		ctrl.uploads = counter
	}

	return ctrl
}

func (ctrl *Controller) signTTL() time.Duration {
	return time.Duration(ctrl.Config.EnvConfig.Storage.SignTTL) * time.Second
}

// signedOrCanonical rewrites a stored location into a freshly signed
// URL. A signing failure degrades that one record to its unsigned
// canonical location; it never fails the surrounding request.
func (ctrl *Controller) signedOrCanonical(ctx context.Context, video *entity.Video) string {
	signed, err := ctrl.Objects.PresignedURL(ctx, video.VideoURL, ctrl.signTTL())
	if err != nil {
		ctrl.Logger.WarningWithContextf(ctx, "[Feed] Signing failed for video %s, serving canonical location: %v", video.ID, err)
		return video.VideoURL
	}
	return signed
}
