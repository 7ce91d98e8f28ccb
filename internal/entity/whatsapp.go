package entity

import (
	"time"

	"github.com/gofrs/uuid/v5"
)

type MessageStatus = string

const (
	MessageStatusPending MessageStatus = "pending"
	MessageStatusSent    MessageStatus = "sent"
	MessageStatusFailed  MessageStatus = "failed"
)

type WhatsappLog struct {
	ID          uuid.UUID     `json:"id,omitempty"`
	CompanyID   uuid.UUID     `json:"company_id"`
	MessageType string        `json:"message_type,omitempty"` // incoming or outgoing
	Phone       string        `json:"phone,omitempty"`
	Message     string        `json:"message,omitempty"`
	Status      MessageStatus `json:"status,omitempty"`
}

type ScheduledMessage struct {
	ID          uuid.UUID     `json:"id,omitempty"`
	CompanyID   uuid.UUID     `json:"company_id"`
	Phone       string        `json:"phone"`
	Message     string        `json:"message"`
	ScheduledAt time.Time     `json:"scheduled_at"`
	Status      MessageStatus `json:"status,omitempty"`
}

type UploadedDoc struct {
	ID        uuid.UUID `json:"id,omitempty"`
	CompanyID uuid.UUID `json:"company_id"`
	FileName  string    `json:"file_name"`
	FileURL   string    `json:"file_url"`
}
