package rabbitmq

import (
	"context"

	amqp "github.com/rabbitmq/amqp091-go"

	"github.com/lernhub/location-availability-generator/internal/core/ports/out"
)

func (l *CacheHitListener) startAllQueue(ctx context.Context) error {
	queue, err := l.channel.QueueDeclare(
		l.cfg.RabbitMq.QueueConfig.AllQueueName,
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
		l.cfg.RabbitMq.QueueConfig.AllQueueBind,
		l.cfg.RabbitMq.QueueConfig.AllQueueExchange,
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
				if err := l.processAllMessage(ctx, msg); err != nil {
					msg.Nack(false, true) // requeue message
					continue
				}
				msg.Ack(false)
			}
		}
	}()

	return nil
}

func (l *CacheHitListener) processAllMessage(ctx context.Context, msg amqp.Delivery) error {
	cacheMessageRoutingKey, err := l.parseCacheMessageRoutingKey(ctx, msg)
	if err != nil {
		return err
	}

	if cacheMessageRoutingKey.ResourceType != CacheHitResourceTypeAll {
		return nil
	}

	// Массовые изменения (миграции, пересоздание сидов) сбрасывают весь кэш недель
	if cacheMessageRoutingKey.CacheHitType == CacheHitTypeInvalidate {
		go l.useCase.InvalidateAllCache(ctx)

		l.logger.Info("_all_.message.invalidated", out.LogFields{
			"weeks_cache": true,
		})
	}

	return nil
}
