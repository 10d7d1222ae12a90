package produce

import (
	"context"
	"encoding/json"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"
)

const (
	VideoExchange           = "video.exchange"
	VideoUploadedQueue      = "video.uploaded"
	VideoUploadedRoutingKey = "video.uploaded"
)

// VideoUploadedMessage is published after an upload completes (object
// stored and metadata persisted). Consumers use it to warm caches.
type VideoUploadedMessage struct {
	VideoID     string `json:"video_id"`
	Location    string `json:"location"`
	ContentType string `json:"content_type"`
	SizeBytes   int64  `json:"size_bytes"`
	UserID      string `json:"user_id"`
	Timestamp   int64  `json:"timestamp"`
}

type VideoEventService struct {
	channel *amqp.Channel
}

func InitVideoEventService(channel *amqp.Channel) *VideoEventService {
	service := &VideoEventService{
		channel: channel,
	}

	err := channel.ExchangeDeclare(
		VideoExchange,
		"topic",
		true,
		false,
		false,
		false,
		nil,
	)
	if err != nil {
		panic("Failed to declare Video exchange: " + err.Error())
	}

	_, err = channel.QueueDeclare(
		VideoUploadedQueue,
		true,
		false,
		false,
		false,
		nil,
	)
	if err != nil {
		panic("Failed to declare Video uploaded queue: " + err.Error())
	}

	err = channel.QueueBind(
		VideoUploadedQueue,
		VideoUploadedRoutingKey,
		VideoExchange,
		false,
		nil,
	)
	if err != nil {
		panic("Failed to bind Video uploaded queue: " + err.Error())
	}

	return service
}

func (s *VideoEventService) VideoUploaded(ctx context.Context, msg VideoUploadedMessage) error {
	if msg.Timestamp == 0 {
		msg.Timestamp = time.Now().Unix()
	}

	body, err := json.Marshal(msg)
	if err != nil {
		return err
	}

	return s.channel.PublishWithContext(ctx,
		VideoExchange,
		VideoUploadedRoutingKey,
		false,
		false,
		amqp.Publishing{
			ContentType:  "application/json",
			Body:         body,
			DeliveryMode: amqp.Persistent,
			Timestamp:    time.Now(),
		},
	)
}
