package reminderdispatch

import (
	"context"
	e "dentalab/internal/core/domain/errors"
	"dentalab/internal/core/domain/logging"
	"dentalab/internal/core/domain/reminder"
	"dentalab/internal/rabbitmq"
	"dentalab/internal/rabbitmq/schema"

	"github.com/rabbitmq/amqp091-go"
)

// RabbitMQ publishes due reminders to the dispatch queue consumed by the
// notifier process.
type RabbitMQ struct {
	log        logging.Logger
	channel    *rabbitmq.Channel
	exchange   string
	routingKey string
}

func NewRabbitMQ(log logging.Logger, channel *rabbitmq.Channel, exchange string, routingKey string) *RabbitMQ {
	if log == nil {
		panic(e.NewNilArgumentError("log"))
	}
	if channel == nil {
		panic(e.NewNilArgumentError("channel"))
	}
	return &RabbitMQ{log: log, channel: channel, exchange: exchange, routingKey: routingKey}
}

func (d *RabbitMQ) DispatchReminder(ctx context.Context, r reminder.Reminder) error {
	msg := schema.Reminder{
		ID:          int64(r.ID),
		Titulo:      r.Title,
		Descripcion: r.Description.Value,
		Tipo:        r.Kind.String(),
		Prioridad:   r.Priority.String(),
		Fecha:       r.At,
	}
	body, err := msg.Marshal()
	if err != nil {
		return err
	}

	err = d.channel.PublishWithContext(ctx, d.exchange, d.routingKey, false, false, amqp091.Publishing{
		ContentType:  "application/json",
		DeliveryMode: amqp091.Persistent,
		Body:         body,
	})
	if err != nil {
		logging.Error(ctx, d.log, err)
		return err
	}
	d.log.Info(
		ctx,
		"Reminder published to the dispatch queue.",
		logging.Entry("RK", d.routingKey),
		logging.Entry("reminderID", r.ID),
	)
	return nil
}

var _ reminder.Dispatcher = (*RabbitMQ)(nil)
