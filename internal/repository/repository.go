// Package repository holds the in-memory expense store backing the local
// mock routes. It is a development stand-in for a real database: state lives
// for the lifetime of the process and is seeded on construction.
package repository

import (
	"sync"

	"github.com/bizzauto/gateway/internal/entity"
)

type Repository struct {
	mu       sync.Mutex
	expenses []entity.DailyExpense
}

// New returns a store seeded with the development fixtures.
func New() *Repository {
	return &Repository{
		expenses: []entity.DailyExpense{
			{ID: 1, Date: "2025-11-03", Description: "Fuel for delivery truck", Category: "Fuel", Amount: 5000, PaymentMethod: entity.PaymentMethodCash, Receipt: true},
			{ID: 2, Date: "2025-11-02", Description: "Office supplies", Category: "Office Supplies", Amount: 1200, PaymentMethod: entity.PaymentMethodBankTransfer, Receipt: false},
		},
	}
}

// NewEmpty returns a store with no records, for tests.
func NewEmpty() *Repository {
	return &Repository{}
}

// All returns the records newest-first.
func (r *Repository) All() []entity.DailyExpense {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := make([]entity.DailyExpense, len(r.expenses))
	copy(out, r.expenses)

	return out
}

// Add assigns the next free ID and prepends the record.
func (r *Repository) Add(e entity.DailyExpense) entity.DailyExpense {
	r.mu.Lock()
	defer r.mu.Unlock()

	maxID := 0
	for _, v := range r.expenses {
		if v.ID > maxID {
			maxID = v.ID
		}
	}

	e.ID = maxID + 1
	r.expenses = append([]entity.DailyExpense{e}, r.expenses...)

	return e
}

// Update shallow-merges the set fields of patch onto the stored record.
func (r *Repository) Update(id int, patch entity.ExpensePatch) (entity.DailyExpense, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i, v := range r.expenses {
		if v.ID != id {
			continue
		}

		if patch.Date != nil {
			v.Date = *patch.Date
		}

		if patch.Description != nil {
			v.Description = *patch.Description
		}

		if patch.Category != nil {
			v.Category = *patch.Category
		}

		if patch.Amount != nil {
			v.Amount = *patch.Amount
		}

		if patch.PaymentMethod != nil {
			v.PaymentMethod = *patch.PaymentMethod
		}

		if patch.Receipt != nil {
			v.Receipt = *patch.Receipt
		}

		r.expenses[i] = v

		return v, true
	}

	return entity.DailyExpense{}, false
}

// Delete removes the record and reports whether it existed.
func (r *Repository) Delete(id int) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i, v := range r.expenses {
		if v.ID == id {
			r.expenses = append(r.expenses[:i], r.expenses[i+1:]...)
			return true
		}
	}

	return false
}
