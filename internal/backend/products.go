package backend

import (
	"context"
	"fmt"

	"github.com/gofrs/uuid/v5"

	"github.com/bizzauto/gateway/internal/entity"
)

func (c *Client) Products(ctx context.Context) ([]entity.Product, error) {
	var products []entity.Product

	err := c.Get(ctx, Endpoints.Products).Decode(&products)
	if err != nil {
		return nil, fmt.Errorf("list products: %w", err)
	}

	return products, nil
}

func (c *Client) Product(ctx context.Context, id uuid.UUID) (entity.Product, error) {
	var product entity.Product

	err := c.Get(ctx, Endpoints.Products+"/"+id.String()).Decode(&product)
	if err != nil {
		return entity.Product{}, fmt.Errorf("get product: %w", err)
	}

	return product, nil
}

func (c *Client) CreateProduct(ctx context.Context, product entity.Product) (entity.Product, error) {
	var created entity.Product

	err := c.Post(ctx, Endpoints.Products, product).Decode(&created)
	if err != nil {
		return entity.Product{}, fmt.Errorf("create product: %w", err)
	}

	return created, nil
}

func (c *Client) UpdateProduct(ctx context.Context, id uuid.UUID, product entity.Product) (entity.Product, error) {
	var updated entity.Product

	err := c.Put(ctx, Endpoints.Products+"/"+id.String(), product).Decode(&updated)
	if err != nil {
		return entity.Product{}, fmt.Errorf("update product: %w", err)
	}

	return updated, nil
}

func (c *Client) DeleteProduct(ctx context.Context, id uuid.UUID) error {
	err := c.Delete(ctx, Endpoints.Products+"/"+id.String()).Err()
	if err != nil {
		return fmt.Errorf("delete product: %w", err)
	}

	return nil
}
