package service

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/vetbase/backend/internal/model"
	"github.com/vetbase/backend/internal/model/types"
)

func TestSumProfit(t *testing.T) {
	t.Parallel()

	entry := func(kind, competency string, amount float64) *model.FinanceEntry {
		return &model.FinanceEntry{Type: kind, CompetencyAt: competency, Amount: amount}
	}

	paid := []*model.FinanceEntry{
		entry(model.FinanceTypeIncome, "2026-03-01", 100),
		entry(model.FinanceTypeIncome, "2026-03-14", 250),
		entry(model.FinanceTypeExpense, "2026-03-14", 80),
		entry(model.FinanceTypeExpense, "2026-02-28", 999),
		entry("UNKNOWN", "2026-03-14", 1234),
	}

	t.Run("single day window", func(t *testing.T) {
		assert.Equal(t, types.ProfitPeriod{Income: 250, Expense: 80, Profit: 170}, sumProfit(paid, "2026-03-14", "2026-03-14"))
	})

	t.Run("month window", func(t *testing.T) {
		assert.Equal(t, types.ProfitPeriod{Income: 350, Expense: 80, Profit: 270}, sumProfit(paid, "2026-03-01", "2026-03-31"))
	})

	t.Run("empty window", func(t *testing.T) {
		assert.Equal(t, types.ProfitPeriod{}, sumProfit(paid, "2027-01-01", "2027-01-31"))
	})
}
