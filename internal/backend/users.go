package backend

import (
	"context"
	"fmt"

	"github.com/gofrs/uuid/v5"

	"github.com/bizzauto/gateway/internal/entity"
)

func (c *Client) User(ctx context.Context, id uuid.UUID) (entity.User, error) {
	var user entity.User

	err := c.Get(ctx, Endpoints.Users+"/"+id.String()).Decode(&user)
	if err != nil {
		return entity.User{}, fmt.Errorf("get user: %w", err)
	}

	return user, nil
}

func (c *Client) Settings(ctx context.Context) ([]entity.Setting, error) {
	var settings []entity.Setting

	err := c.Get(ctx, Endpoints.Tables.Settings).Decode(&settings)
	if err != nil {
		return nil, fmt.Errorf("list settings: %w", err)
	}

	return settings, nil
}

func (c *Client) SaveSetting(ctx context.Context, setting entity.Setting) (entity.Setting, error) {
	var saved entity.Setting

	err := c.Post(ctx, Endpoints.Settings, setting).Decode(&saved)
	if err != nil {
		return entity.Setting{}, fmt.Errorf("save setting: %w", err)
	}

	return saved, nil
}

type HealthStatus struct {
	Status  string `json:"status"`
	Version string `json:"version,omitempty"`
	Message string `json:"message,omitempty"`
}

func (c *Client) Health(ctx context.Context) (HealthStatus, error) {
	var health HealthStatus

	err := c.Get(ctx, Endpoints.Health).Decode(&health)
	if err != nil {
		return HealthStatus{}, fmt.Errorf("health check: %w", err)
	}

	return health, nil
}
