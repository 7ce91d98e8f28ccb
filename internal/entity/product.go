package entity

import (
	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"
)

type Product struct {
	ID            uuid.UUID       `json:"id,omitempty"`
	CompanyID     uuid.UUID       `json:"company_id"`
	Name          string          `json:"name"`
	SKU           string          `json:"sku,omitempty"`
	Category      string          `json:"category,omitempty"`
	PurchasePrice decimal.Decimal `json:"purchase_price"`
	SalePrice     decimal.Decimal `json:"sale_price"`
	StockQuantity int             `json:"stock_quantity"`
	LowStockAlert int             `json:"low_stock_alert,omitempty"`
	Unit          string          `json:"unit,omitempty"`
}
