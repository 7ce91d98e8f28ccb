package backend

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/bizzauto/gateway/internal/entity"
)

type SendMessageRequest struct {
	To   string `json:"to"`
	Body string `json:"body"`
}

// SendWhatsappMessage relays a text message through the backend's Meta Graph
// API integration. The raw Graph API response is returned as-is.
func (c *Client) SendWhatsappMessage(ctx context.Context, to, body string) (json.RawMessage, error) {
	res := c.Post(ctx, Endpoints.SendMetaWhatsapp, SendMessageRequest{To: to, Body: body})
	if err := res.Err(); err != nil {
		return nil, fmt.Errorf("send whatsapp message: %w", err)
	}

	return json.RawMessage(res.Data), nil
}

func (c *Client) WhatsappLogs(ctx context.Context) ([]entity.WhatsappLog, error) {
	var logs []entity.WhatsappLog

	err := c.Get(ctx, Endpoints.WhatsappLogs).Decode(&logs)
	if err != nil {
		return nil, fmt.Errorf("list whatsapp logs: %w", err)
	}

	return logs, nil
}

func (c *Client) ScheduledMessages(ctx context.Context) ([]entity.ScheduledMessage, error) {
	var messages []entity.ScheduledMessage

	err := c.Get(ctx, Endpoints.ScheduledWhatsappMessages).Decode(&messages)
	if err != nil {
		return nil, fmt.Errorf("list scheduled messages: %w", err)
	}

	return messages, nil
}

func (c *Client) ScheduleMessage(ctx context.Context, msg entity.ScheduledMessage) (entity.ScheduledMessage, error) {
	var created entity.ScheduledMessage

	err := c.Post(ctx, Endpoints.ScheduledWhatsappMessages, msg).Decode(&created)
	if err != nil {
		return entity.ScheduledMessage{}, fmt.Errorf("schedule message: %w", err)
	}

	return created, nil
}
