package rabbitmq

import (
	"context"
	"encoding/json"

	amqp "github.com/rabbitmq/amqp091-go"

	"github.com/lernhub/location-availability-generator/internal/core/domain"
	"github.com/lernhub/location-availability-generator/internal/core/ports/out"
)

type CacheAvailabilityMessage struct {
	LocationID   uint                      `json:"location_id"`
	Availability domain.WeeklyAvailability `json:"availability"`
}

func (l *CacheHitListener) startAvailabilityQueue(ctx context.Context) error {
	queue, err := l.channel.QueueDeclare(
		l.cfg.RabbitMq.QueueConfig.AvailabilityQueueName,
		true,  // durable
		true,  // delete when unused
		false, // exclusive
		false, // no-wait
		nil,   // arguments
	)
	if err != nil {
		return err
	}
	err = l.channel.QueueBind(
		queue.Name,
		l.cfg.RabbitMq.QueueConfig.AvailabilityQueueBind,
		l.cfg.RabbitMq.QueueConfig.AvailabilityQueueExchange,
		false,
		nil,
	)
	if err != nil {
		return err
	}

	msgs, err := l.channel.Consume(
		queue.Name,
		"",    // consumer
		false, // auto-ack
		false, // exclusive
		false, // no-local
		false, // no-wait
		nil,   // args
	)
	if err != nil {
		return err
	}

	go func() {
		for {
			select {
			case <-ctx.Done():
				return
			case msg := <-msgs:
				if err := l.processAvailabilityMessage(ctx, msg); err != nil {
					msg.Nack(false, true) // requeue message
					continue
				}
				msg.Ack(false)
			}
		}
	}()

	return nil
}

func (l *CacheHitListener) processAvailabilityMessage(ctx context.Context, msg amqp.Delivery) error {
	cacheMessageRoutingKey, err := l.parseCacheMessageRoutingKey(ctx, msg)
	if err != nil {
		return err
	}

	if cacheMessageRoutingKey.ResourceType != CacheHitResourceTypeAvailability {
		return nil
	}

	var msgJson CacheAvailabilityMessage
	if err := json.Unmarshal(msg.Body, &msgJson); err != nil {
		return err
	}

	l.logger.Info("availability.message.received", out.LogFields{
		"locationId": msgJson.LocationID,
		"dayOfWeek":  msgJson.Availability.DayOfWeek,
		"routingKey": msg.RoutingKey,
	})

	// Изменение шаблона рабочих часов затрагивает все недели локации
	go l.useCase.InvalidateLocationCache(ctx, msgJson.LocationID)

	l.logger.Info("availability.message.invalidated", out.LogFields{
		"locationId": msgJson.LocationID,
		"type":       cacheMessageRoutingKey.CacheHitType,
	})

	return nil
}
