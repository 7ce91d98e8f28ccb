package backend

import (
	"context"
	"fmt"
	"io"

	"github.com/gofrs/uuid/v5"

	"github.com/bizzauto/gateway/internal/entity"
)

func (c *Client) Invoices(ctx context.Context) ([]entity.Invoice, error) {
	var invoices []entity.Invoice

	err := c.Get(ctx, Endpoints.Invoices).Decode(&invoices)
	if err != nil {
		return nil, fmt.Errorf("list invoices: %w", err)
	}

	return invoices, nil
}

func (c *Client) CreateInvoice(ctx context.Context, invoice entity.Invoice) (entity.Invoice, error) {
	var created entity.Invoice

	err := c.Post(ctx, Endpoints.Invoices, invoice).Decode(&created)
	if err != nil {
		return entity.Invoice{}, fmt.Errorf("create invoice: %w", err)
	}

	return created, nil
}

func (c *Client) DeleteInvoice(ctx context.Context, id uuid.UUID) error {
	err := c.Delete(ctx, Endpoints.Invoices+"/"+id.String()).Err()
	if err != nil {
		return fmt.Errorf("delete invoice: %w", err)
	}

	return nil
}

func (c *Client) InvoiceItems(ctx context.Context, invoiceID uuid.UUID) ([]entity.InvoiceItem, error) {
	var items []entity.InvoiceItem

	err := c.Get(ctx, Endpoints.InvoiceItems+"/"+invoiceID.String()).Decode(&items)
	if err != nil {
		return nil, fmt.Errorf("list invoice items: %w", err)
	}

	return items, nil
}

type OCRUploadResponse struct {
	Message  string `json:"message"`
	FileName string `json:"file_name"`
	TaskID   string `json:"task_id"`
}

// UploadInvoiceForOCR queues a scanned invoice for text extraction.
func (c *Client) UploadInvoiceForOCR(ctx context.Context, filename string, file io.Reader) (OCRUploadResponse, error) {
	var resp OCRUploadResponse

	err := c.Upload(ctx, Endpoints.OCRUpload, "file", filename, file).Decode(&resp)
	if err != nil {
		return OCRUploadResponse{}, fmt.Errorf("upload invoice for ocr: %w", err)
	}

	return resp, nil
}

func (c *Client) Purchases(ctx context.Context) ([]entity.Purchase, error) {
	var purchases []entity.Purchase

	err := c.Get(ctx, Endpoints.Purchases).Decode(&purchases)
	if err != nil {
		return nil, fmt.Errorf("list purchases: %w", err)
	}

	return purchases, nil
}
