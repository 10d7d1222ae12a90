package worker

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	amqp "github.com/rabbitmq/amqp091-go"

	"github.com/ola007-cpu/webApp/infra"
	"github.com/ola007-cpu/webApp/infra/produce"
	"github.com/ola007-cpu/webApp/repository"
)

// VideoConsumer warms the metadata cache for freshly uploaded videos
// so the first detail fetch after an upload never pays a database read.
type VideoConsumer struct {
	channel    *amqp.Channel
	infra      *infra.Infra
	repository *repository.Repository
}

func NewVideoConsumer(channel *amqp.Channel, infra *infra.Infra, repo *repository.Repository) *VideoConsumer {
	return &VideoConsumer{
		channel:    channel,
		infra:      infra,
		repository: repo,
	}
}

func (c *VideoConsumer) Start(ctx context.Context) error {
	msgs, err := c.channel.Consume(
		produce.VideoUploadedQueue,
		"",
		false,
		false,
		false,
		false,
		nil,
	)
	if err != nil {
		return fmt.Errorf("failed to register video uploaded consumer: %w", err)
	}

	c.infra.Logger.InfoWithContextf(ctx, "[Video Consumer] Started listening for uploads on queue: %s", produce.VideoUploadedQueue)

	go func() {
		for {
			select {
			case <-ctx.Done():
				c.infra.Logger.InfoWithContextf(ctx, "[Video Consumer] Shutting down...")
				return
			case msg, ok := <-msgs:
				if !ok {
					c.infra.Logger.WarningWithContextf(ctx, "[Video Consumer] Channel closed")
					return
				}
				c.handleVideoUploaded(ctx, msg)
			}
		}
	}()

	return nil
}

func (c *VideoConsumer) handleVideoUploaded(ctx context.Context, msg amqp.Delivery) {
	var payload produce.VideoUploadedMessage
	if err := json.Unmarshal(msg.Body, &payload); err != nil {
		c.infra.Logger.ErrorWithContextf(ctx, err, "[Video Consumer] Failed to unmarshal message: %v", err)
		_ = msg.Nack(false, false)
		return
	}

	videoID, err := uuid.Parse(payload.VideoID)
	if err != nil {
		c.infra.Logger.ErrorWithContextf(ctx, err, "[Video Consumer] Invalid video id %q: %v", payload.VideoID, err)
		_ = msg.Nack(false, false)
		return
	}

	maxRetries := 3
	for attempt := 1; attempt <= maxRetries; attempt++ {
		err = c.warmCache(ctx, videoID)
		if err == nil {
			c.infra.Logger.InfoWithContextf(ctx, "[Video Consumer] Warmed cache for video: %s", payload.VideoID)
			_ = msg.Ack(false)
			return
		}

		c.infra.Logger.ErrorWithContextf(ctx, err, "[Video Consumer] Attempt %d/%d failed: %v", attempt, maxRetries, err)

		if attempt < maxRetries {
			time.Sleep(time.Duration(attempt) * 2 * time.Second)
		}
	}

	c.infra.Logger.ErrorWithContextf(ctx, err, "[Video Consumer] Failed after %d attempts, requeueing message", maxRetries)
	_ = msg.Nack(false, true)
}

func (c *VideoConsumer) warmCache(ctx context.Context, videoID uuid.UUID) error {
	video, err := c.repository.VideoRepo.FindByID(ctx, videoID)
	if err != nil {
		return fmt.Errorf("failed to load video %s: %w", videoID.String(), err)
	}

	key := infra.VideoCacheKey(videoID.String())
	if err := c.infra.Redis.Set(ctx, key, video, infra.VideoCacheTTL); err != nil {
		return fmt.Errorf("failed to cache video %s: %w", videoID.String(), err)
	}

	return nil
}
