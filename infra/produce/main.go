package produce

import amqp "github.com/rabbitmq/amqp091-go"

type Produce struct {
	VideoEvents *VideoEventService
}

var produceInstance *Produce

func InitProduce(channel *amqp.Channel) *Produce {
	if produceInstance != nil {
		return produceInstance
	}

	videoEvents := InitVideoEventService(channel)
	if videoEvents == nil {
		panic("Failed to initialize Video event service")
	}

	produceInstance = &Produce{
		VideoEvents: videoEvents,
	}

	return produceInstance
}

func GetProduce() *Produce {
	if produceInstance == nil {
		panic("Produce not initialized. Call InitProduce() first.")
	}
	return produceInstance
}
