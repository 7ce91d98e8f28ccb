package backend

import (
	"context"
	"fmt"

	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"

	"github.com/bizzauto/gateway/internal/entity"
)

func (c *Client) Tenants(ctx context.Context) ([]entity.Company, error) {
	var tenants []entity.Company

	err := c.Get(ctx, Endpoints.Admin.Tenants).Decode(&tenants)
	if err != nil {
		return nil, fmt.Errorf("list tenants: %w", err)
	}

	return tenants, nil
}

func (c *Client) AdminUsers(ctx context.Context) ([]entity.User, error) {
	var users []entity.User

	err := c.Get(ctx, Endpoints.Admin.Users).Decode(&users)
	if err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}

	return users, nil
}

func (c *Client) SuspendUser(ctx context.Context, id uuid.UUID) error {
	err := c.Post(ctx, Endpoints.Admin.Users+"/"+id.String()+"/suspend", nil).Err()
	if err != nil {
		return fmt.Errorf("suspend user: %w", err)
	}

	return nil
}

func (c *Client) ActivateUser(ctx context.Context, id uuid.UUID) error {
	err := c.Post(ctx, Endpoints.Admin.Users+"/"+id.String()+"/activate", nil).Err()
	if err != nil {
		return fmt.Errorf("activate user: %w", err)
	}

	return nil
}

type AdminAnalytics struct {
	TotalTenants    int             `json:"total_tenants"`
	ActiveUsers     int             `json:"active_users"`
	SuspendedUsers  int             `json:"suspended_users"`
	InvoicesCreated int             `json:"invoices_created"`
	TotalRevenue    decimal.Decimal `json:"total_revenue"`
}

func (c *Client) Analytics(ctx context.Context) (AdminAnalytics, error) {
	var analytics AdminAnalytics

	err := c.Get(ctx, Endpoints.Admin.Analytics).Decode(&analytics)
	if err != nil {
		return AdminAnalytics{}, fmt.Errorf("admin analytics: %w", err)
	}

	return analytics, nil
}

type WhatsappStats struct {
	Sent    int `json:"sent"`
	Failed  int `json:"failed"`
	Pending int `json:"pending"`
}

func (c *Client) AdminWhatsappStats(ctx context.Context) (WhatsappStats, error) {
	var stats WhatsappStats

	err := c.Get(ctx, Endpoints.Admin.WhatsappStats).Decode(&stats)
	if err != nil {
		return WhatsappStats{}, fmt.Errorf("whatsapp stats: %w", err)
	}

	return stats, nil
}

type BillingEntry struct {
	TenantID   uuid.UUID       `json:"tenant_id"`
	TenantName string          `json:"tenant_name"`
	Period     string          `json:"period"` // YYYY-MM
	Amount     decimal.Decimal `json:"amount"`
	Paid       bool            `json:"paid"`
}

func (c *Client) BillingHistory(ctx context.Context) ([]BillingEntry, error) {
	var entries []BillingEntry

	err := c.Get(ctx, Endpoints.Admin.Billing).Decode(&entries)
	if err != nil {
		return nil, fmt.Errorf("billing history: %w", err)
	}

	return entries, nil
}
