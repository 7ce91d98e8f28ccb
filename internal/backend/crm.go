package backend

import (
	"context"
	"fmt"

	"github.com/gofrs/uuid/v5"

	"github.com/bizzauto/gateway/internal/entity"
)

func (c *Client) Companies(ctx context.Context) ([]entity.Company, error) {
	var companies []entity.Company

	err := c.Get(ctx, Endpoints.Companies).Decode(&companies)
	if err != nil {
		return nil, fmt.Errorf("list companies: %w", err)
	}

	return companies, nil
}

func (c *Client) CreateCompany(ctx context.Context, company entity.Company) (entity.Company, error) {
	var created entity.Company

	err := c.Post(ctx, Endpoints.Companies, company).Decode(&created)
	if err != nil {
		return entity.Company{}, fmt.Errorf("create company: %w", err)
	}

	return created, nil
}

func (c *Client) Clients(ctx context.Context) ([]entity.Client, error) {
	var clients []entity.Client

	err := c.Get(ctx, Endpoints.Clients).Decode(&clients)
	if err != nil {
		return nil, fmt.Errorf("list clients: %w", err)
	}

	return clients, nil
}

func (c *Client) CreateCRMClient(ctx context.Context, client entity.Client) (entity.Client, error) {
	var created entity.Client

	err := c.Post(ctx, Endpoints.Clients, client).Decode(&created)
	if err != nil {
		return entity.Client{}, fmt.Errorf("create client: %w", err)
	}

	return created, nil
}

func (c *Client) UpdateCRMClient(ctx context.Context, id uuid.UUID, client entity.Client) (entity.Client, error) {
	var updated entity.Client

	err := c.Put(ctx, Endpoints.Clients+"/"+id.String(), client).Decode(&updated)
	if err != nil {
		return entity.Client{}, fmt.Errorf("update client: %w", err)
	}

	return updated, nil
}

func (c *Client) DeleteCRMClient(ctx context.Context, id uuid.UUID) error {
	err := c.Delete(ctx, Endpoints.Clients+"/"+id.String()).Err()
	if err != nil {
		return fmt.Errorf("delete client: %w", err)
	}

	return nil
}

func (c *Client) Leads(ctx context.Context) ([]entity.Lead, error) {
	var leads []entity.Lead

	err := c.Get(ctx, Endpoints.Leads).Decode(&leads)
	if err != nil {
		return nil, fmt.Errorf("list leads: %w", err)
	}

	return leads, nil
}

func (c *Client) CreateLead(ctx context.Context, lead entity.Lead) (entity.Lead, error) {
	var created entity.Lead

	err := c.Post(ctx, Endpoints.Leads, lead).Decode(&created)
	if err != nil {
		return entity.Lead{}, fmt.Errorf("create lead: %w", err)
	}

	return created, nil
}

func (c *Client) Suppliers(ctx context.Context) ([]entity.Supplier, error) {
	var suppliers []entity.Supplier

	err := c.Get(ctx, Endpoints.Suppliers).Decode(&suppliers)
	if err != nil {
		return nil, fmt.Errorf("list suppliers: %w", err)
	}

	return suppliers, nil
}
