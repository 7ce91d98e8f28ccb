package entity

import (
	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"
)

type PaymentMethod = string

const (
	PaymentMethodCash         PaymentMethod = "Cash"
	PaymentMethodBankTransfer PaymentMethod = "Bank Transfer"
	PaymentMethodCreditCard   PaymentMethod = "Credit Card"
	PaymentMethodDebitCard    PaymentMethod = "Debit Card"
)

// DailyExpense is a record of the local development expense store. Amounts
// stay float64 so the wire shape matches the mock routes exactly.
type DailyExpense struct {
	ID            int           `json:"id"`
	Date          string        `json:"date"` // YYYY-MM-DD
	Description   string        `json:"description"`
	Category      string        `json:"category"`
	Amount        float64       `json:"amount"`
	PaymentMethod PaymentMethod `json:"paymentMethod"`
	Receipt       bool          `json:"receipt"`
}

// ExpensePatch is a merge-patch for a stored expense. Nil fields are left
// untouched.
type ExpensePatch struct {
	Date          *string  `json:"date"`
	Description   *string  `json:"description"`
	Category      *string  `json:"category"`
	Amount        *float64 `json:"amount"`
	PaymentMethod *string  `json:"paymentMethod"`
	Receipt       *bool    `json:"receipt"`
}

// Expense is the remote API's expense resource, distinct from the local
// development store's DailyExpense.
type Expense struct {
	ID          uuid.UUID       `json:"id,omitempty"`
	CompanyID   uuid.UUID       `json:"company_id"`
	Title       string          `json:"title"`
	Category    string          `json:"category,omitempty"`
	Amount      decimal.Decimal `json:"amount"`
	ExpenseDate string          `json:"expense_date"` // YYYY-MM-DD
	Notes       string          `json:"notes,omitempty"`
}

// ExpenseSummary holds the rolling spend totals shown on the dashboard.
type ExpenseSummary struct {
	Today float64 `json:"today"`
	Month float64 `json:"month"`
	Year  float64 `json:"year"`
}
