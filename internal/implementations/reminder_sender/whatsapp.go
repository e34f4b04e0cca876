package remindersender

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	e "dentalab/internal/core/domain/errors"
	"dentalab/internal/core/domain/reminder"
)

const whatsappRequestTimeout = 10 * time.Second

// WhatsAppSender posts reminder messages to the WhatsApp Cloud API.
type WhatsAppSender struct {
	httpClient *http.Client
	apiURL     string
	token      string
	recipient  string
}

func NewWhatsAppSender(apiURL string, token string, recipient string) *WhatsAppSender {
	if apiURL == "" {
		panic(e.NewInvalidStateError("apiURL must not be empty"))
	}
	return &WhatsAppSender{
		httpClient: &http.Client{Timeout: whatsappRequestTimeout},
		apiURL:     apiURL,
		token:      token,
		recipient:  recipient,
	}
}

type whatsappMessage struct {
	MessagingProduct string       `json:"messaging_product"`
	To               string       `json:"to"`
	Type             string       `json:"type"`
	Text             whatsappText `json:"text"`
}

type whatsappText struct {
	Body string `json:"body"`
}

func (s *WhatsAppSender) SendReminder(ctx context.Context, r reminder.Reminder) error {
	text := fmt.Sprintf("🦷 *%s*\nFecha: %s", r.Title, r.At.Format("02/01/2006 15:04"))
	if r.Description.IsPresent {
		text += "\n" + r.Description.Value
	}

	body, err := json.Marshal(whatsappMessage{
		MessagingProduct: "whatsapp",
		To:               s.recipient,
		Type:             "text",
		Text:             whatsappText{Body: text},
	})
	if err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.apiURL, bytes.NewReader(body))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+s.token)

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode >= http.StatusBadRequest {
		return fmt.Errorf("whatsapp API returned status %d", resp.StatusCode)
	}
	return nil
}

var _ reminder.Sender = (*WhatsAppSender)(nil)
