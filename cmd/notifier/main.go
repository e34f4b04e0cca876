package main

import (
	"context"
	"dentalab/internal/app/deps"
	"dentalab/internal/core/domain/logging"
	"dentalab/internal/core/domain/reminder"
	remindersender "dentalab/internal/implementations/reminder_sender"
	reminderdue "dentalab/internal/rabbitmq/consumers/reminder_due"
	"os"
	"os/signal"
	"syscall"
)

func main() {
	deps, shutdownDeps := deps.InitDeps()
	log := deps.Logger
	defer shutdownDeps()

	rabbitmqChannel, err := deps.Rabbitmq.Channel()
	if err != nil {
		log.Error(context.Background(), "Could not create RabbitMQ channel.", logging.Entry("err", err))
		panic(err)
	}
	defer rabbitmqChannel.Close()

	senders := []reminder.Sender{remindersender.NewSse(deps.SseServer)}
	if deps.Config.EmailTo != "" {
		senders = append(
			senders,
			remindersender.NewEmailSender(deps.AwsConfig, deps.Config.EmailFrom, deps.Config.EmailTo),
		)
	}
	if deps.Config.WhatsappAPIURL != "" {
		senders = append(
			senders,
			remindersender.NewWhatsAppSender(
				deps.Config.WhatsappAPIURL,
				deps.Config.WhatsappToken,
				deps.Config.WhatsappRecipient,
			),
		)
	}

	consumer := reminderdue.New(log, rabbitmqChannel, deps.Config.DispatchQueue, senders...)
	if err := consumer.Consume(); err != nil {
		log.Error(
			context.Background(),
			"Could not start RabbitMQ consuming.",
			logging.Entry("err", err),
			logging.Entry("queue", deps.Config.DispatchQueue),
		)
		panic(err)
	}
	log.Info(context.Background(), "Notifier has started.", logging.Entry("queue", deps.Config.DispatchQueue))

	stopCh, closeCh := createChannel()
	defer closeCh()

	<-stopCh
	log.Info(context.Background(), "Stopping notifier.")
}

func createChannel() (chan os.Signal, func()) {
	stopCh := make(chan os.Signal, 1)
	signal.Notify(stopCh, os.Interrupt, syscall.SIGTERM, syscall.SIGINT)

	return stopCh, func() {
		close(stopCh)
	}
}
