package reminderdue

import (
	"context"
	c "dentalab/internal/core/domain/common"
	e "dentalab/internal/core/domain/errors"
	"dentalab/internal/core/domain/logging"
	"dentalab/internal/core/domain/reminder"
	"dentalab/internal/rabbitmq"
	"dentalab/internal/rabbitmq/schema"

	"github.com/rabbitmq/amqp091-go"
)

// Consumer drains the dispatch queue and fans each reminder out to the
// configured senders. Send failures are logged per sender and the message
// is acknowledged anyway: delivery is best effort by policy.
type Consumer struct {
	log     logging.Logger
	channel *rabbitmq.Channel
	queue   string
	senders []reminder.Sender
}

func New(
	log logging.Logger,
	channel *rabbitmq.Channel,
	queue string,
	senders ...reminder.Sender,
) *Consumer {
	if log == nil {
		panic(e.NewNilArgumentError("log"))
	}
	if channel == nil {
		panic(e.NewNilArgumentError("channel"))
	}
	if queue == "" {
		panic("queue name must not be empty")
	}
	if len(senders) == 0 {
		panic("at least one sender is required")
	}

	return &Consumer{log: log, channel: channel, queue: queue, senders: senders}
}

func (c *Consumer) Consume() error {
	deliveries, err := c.channel.Consume(c.queue, "", false, false, false, false, nil)
	if err != nil {
		c.log.Error(context.Background(), "Could not start consuming.", logging.Entry("err", err))
		return err
	}

	go func() {
		for delivery := range deliveries {
			msg := &schema.Reminder{}
			if err := msg.Unmarshal(delivery.Body); err != nil {
				c.log.Error(
					context.Background(),
					"Could not unmarshal reminder message.",
					logging.Entry("err", err),
				)
				c.ack(delivery)
				continue
			}

			rem := decodeReminder(msg)
			for _, sender := range c.senders {
				if err := sender.SendReminder(context.Background(), rem); err != nil {
					c.log.Error(
						context.Background(),
						"Sender failed for reminder.",
						logging.Entry("reminderID", rem.ID),
						logging.Entry("err", err),
					)
				}
			}
			c.ack(delivery)
		}
	}()
	return nil
}

func (c *Consumer) ack(delivery amqp091.Delivery) {
	if err := delivery.Ack(true); err != nil {
		c.log.Error(context.Background(), "Could not ACK AMQP message.", logging.Entry("err", err))
	}
}

func decodeReminder(msg *schema.Reminder) reminder.Reminder {
	kind, _ := reminder.ParseKind(msg.Tipo)
	priority, _ := reminder.ParsePriority(msg.Prioridad)
	return reminder.Reminder{
		ID:          reminder.ID(msg.ID),
		Title:       msg.Titulo,
		Description: c.NewOptional(msg.Descripcion, msg.Descripcion != ""),
		Kind:        kind,
		Priority:    priority,
		At:          msg.Fecha,
	}
}
