package remindersender

import (
	"context"
	"fmt"

	"dentalab/internal/core/domain/reminder"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/ses"
	"github.com/aws/aws-sdk-go-v2/service/ses/types"
)

// EmailSender delivers reminders to the laboratory inbox through SES.
type EmailSender struct {
	ses *ses.Client
	// This address must be verified with Amazon SES.
	sender    string
	recipient string
}

func NewEmailSender(awsConfig aws.Config, sender string, recipient string) *EmailSender {
	return &EmailSender{
		ses:       ses.NewFromConfig(awsConfig),
		sender:    sender,
		recipient: recipient,
	}
}

func (s *EmailSender) SendReminder(ctx context.Context, r reminder.Reminder) error {
	subject := fmt.Sprintf("[%s] %s", r.Priority, r.Title)
	body := fmt.Sprintf("Recordatorio: %s\nFecha: %s", r.Title, r.At.Format("02/01/2006 15:04"))
	if r.Description.IsPresent {
		body += "\n\n" + r.Description.Value
	}

	_, err := s.ses.SendEmail(
		ctx,
		&ses.SendEmailInput{
			Source: &s.sender,
			Destination: &types.Destination{
				ToAddresses: []string{s.recipient},
			},
			Message: &types.Message{
				Subject: &types.Content{Data: &subject},
				Body: &types.Body{
					Text: &types.Content{Data: &body},
				},
			},
		},
	)
	return err
}

var _ reminder.Sender = (*EmailSender)(nil)
