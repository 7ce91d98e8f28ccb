package entity

import (
	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"
)

type PaymentStatus = string

const (
	PaymentStatusUnpaid  PaymentStatus = "unpaid"
	PaymentStatusPartial PaymentStatus = "partial"
	PaymentStatusPaid    PaymentStatus = "paid"
)

type Invoice struct {
	ID            uuid.UUID       `json:"id,omitempty"`
	CompanyID     uuid.UUID       `json:"company_id"`
	ClientID      uuid.UUID       `json:"client_id,omitempty"`
	InvoiceDate   string          `json:"invoice_date"` // YYYY-MM-DD
	TotalAmount   decimal.Decimal `json:"total_amount"`
	PaymentStatus PaymentStatus   `json:"payment_status,omitempty"`
	Notes         string          `json:"notes,omitempty"`
}

type InvoiceItem struct {
	ID        uuid.UUID       `json:"id,omitempty"`
	InvoiceID uuid.UUID       `json:"invoice_id"`
	ProductID uuid.UUID       `json:"product_id"`
	Quantity  int             `json:"quantity"`
	Price     decimal.Decimal `json:"price"`
	Total     decimal.Decimal `json:"total"`
}

type Purchase struct {
	ID           uuid.UUID       `json:"id,omitempty"`
	CompanyID    uuid.UUID       `json:"company_id"`
	SupplierID   uuid.UUID       `json:"supplier_id,omitempty"`
	PurchaseDate string          `json:"purchase_date"` // YYYY-MM-DD
	TotalAmount  decimal.Decimal `json:"total_amount"`
	Notes        string          `json:"notes,omitempty"`
}

type PurchaseItem struct {
	ID         uuid.UUID       `json:"id,omitempty"`
	PurchaseID uuid.UUID       `json:"purchase_id"`
	ProductID  uuid.UUID       `json:"product_id"`
	Quantity   int             `json:"quantity"`
	Price      decimal.Decimal `json:"price"`
	Total      decimal.Decimal `json:"total"`
}
