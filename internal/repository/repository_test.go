package repository_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/bizzauto/gateway/internal/entity"
	"github.com/bizzauto/gateway/internal/repository"
)

func TestRepository_AddPrepends(t *testing.T) {
	t.Parallel()

	repo := repository.NewEmpty()

	first := repo.Add(entity.DailyExpense{Date: "2025-06-01", Description: "Diesel", Category: "Fuel", Amount: 250, PaymentMethod: entity.PaymentMethodCash})
	require.Equal(t, 1, first.ID)

	second := repo.Add(entity.DailyExpense{Date: "2025-06-02", Description: "Stamps", Category: "Office Supplies", Amount: 40, PaymentMethod: entity.PaymentMethodCash})
	require.Equal(t, 2, second.ID)

	all := repo.All()
	require.Len(t, all, 2)
	require.Equal(t, second, all[0])
	require.Equal(t, first, all[1])
}

func TestRepository_AddReusesMaxPlusOne(t *testing.T) {
	t.Parallel()

	repo := repository.NewEmpty()

	a := repo.Add(entity.DailyExpense{Description: "a"})
	b := repo.Add(entity.DailyExpense{Description: "b"})

	require.True(t, repo.Delete(a.ID))

	c := repo.Add(entity.DailyExpense{Description: "c"})
	require.Equal(t, b.ID+1, c.ID)
}

func TestRepository_UpdateMergesSetFieldsOnly(t *testing.T) {
	t.Parallel()

	repo := repository.NewEmpty()
	created := repo.Add(entity.DailyExpense{
		Date:          "2025-06-01",
		Description:   "Diesel",
		Category:      "Fuel",
		Amount:        250,
		PaymentMethod: entity.PaymentMethodCash,
		Receipt:       true,
	})

	amount := 500.0

	updated, ok := repo.Update(created.ID, entity.ExpensePatch{Amount: &amount})
	require.True(t, ok)
	require.Equal(t, 500.0, updated.Amount)
	require.Equal(t, "Diesel", updated.Description)
	require.Equal(t, "Fuel", updated.Category)
	require.Equal(t, "2025-06-01", updated.Date)
	require.True(t, updated.Receipt)

	all := repo.All()
	require.Equal(t, updated, all[0])
}

func TestRepository_UpdateUnknownID(t *testing.T) {
	t.Parallel()

	repo := repository.NewEmpty()

	_, ok := repo.Update(42, entity.ExpensePatch{})
	require.False(t, ok)
}

func TestRepository_Delete(t *testing.T) {
	t.Parallel()

	repo := repository.NewEmpty()
	created := repo.Add(entity.DailyExpense{Description: "Diesel"})

	require.True(t, repo.Delete(created.ID))

	for _, v := range repo.All() {
		require.NotEqual(t, created.ID, v.ID)
	}

	before := repo.All()
	require.False(t, repo.Delete(999))
	require.Equal(t, before, repo.All())
}

func TestRepository_SeededFixtures(t *testing.T) {
	t.Parallel()

	repo := repository.New()

	all := repo.All()
	require.Len(t, all, 2)
	require.Equal(t, 1, all[0].ID)
	require.Equal(t, "Fuel for delivery truck", all[0].Description)
}
