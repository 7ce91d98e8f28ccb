package backend

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/bizzauto/gateway/internal/entity"
)

// SalesSummary returns the invoices backing the accounting sales report.
func (c *Client) SalesSummary(ctx context.Context) ([]entity.Invoice, error) {
	var invoices []entity.Invoice

	err := c.Get(ctx, Endpoints.Accounting.SalesSummary).Decode(&invoices)
	if err != nil {
		return nil, fmt.Errorf("sales summary: %w", err)
	}

	return invoices, nil
}

type ExpenseReportRow struct {
	Category string          `json:"category"`
	Total    decimal.Decimal `json:"total"`
}

func (c *Client) ExpenseReport(ctx context.Context) ([]ExpenseReportRow, error) {
	var rows []ExpenseReportRow

	err := c.Get(ctx, Endpoints.Accounting.ExpenseReport).Decode(&rows)
	if err != nil {
		return nil, fmt.Errorf("expense report: %w", err)
	}

	return rows, nil
}

// StockReport returns products for the stock valuation report.
func (c *Client) StockReport(ctx context.Context) ([]entity.Product, error) {
	var products []entity.Product

	err := c.Get(ctx, Endpoints.Accounting.StockReport).Decode(&products)
	if err != nil {
		return nil, fmt.Errorf("stock report: %w", err)
	}

	return products, nil
}

type DashboardSummary struct {
	TotalSales    decimal.Decimal `json:"total_sales"`
	TotalExpenses decimal.Decimal `json:"total_expenses"`
	TotalClients  int             `json:"total_clients"`
	TotalProducts int             `json:"total_products"`
	LowStockCount int             `json:"low_stock_count"`
	UnpaidCount   int             `json:"unpaid_invoices"`
}

func (c *Client) DashboardSummary(ctx context.Context) (DashboardSummary, error) {
	var summary DashboardSummary

	err := c.Get(ctx, Endpoints.Dashboard.Summary).Decode(&summary)
	if err != nil {
		return DashboardSummary{}, fmt.Errorf("dashboard summary: %w", err)
	}

	return summary, nil
}
