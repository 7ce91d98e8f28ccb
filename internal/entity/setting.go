package entity

import (
	"encoding/json"

	"github.com/gofrs/uuid/v5"
)

type Setting struct {
	ID     uuid.UUID       `json:"id,omitempty"`
	UserID uuid.UUID       `json:"user_id"`
	Key    string          `json:"key"`
	Value  json.RawMessage `json:"value"`
}
