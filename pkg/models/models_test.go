package models_test

import (
	"time"

	"github.com/finboard/backend/internal/types"
	"github.com/finboard/backend/pkg/aggregate"
	"github.com/finboard/backend/pkg/models"
	"github.com/shopspring/decimal"
)

func (suite *TestSuiteStandard) TestSyncTransactions() {
	transactions := []aggregate.Transaction{
		{ID: 1, Name: "Bread", Amount: decimal.RequireFromString("3.20"), Date: time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC), Category: "groceries", Method: "cash"},
		{ID: 2, Name: "Dinner", Amount: decimal.RequireFromString("42.10"), Date: time.Date(2025, 3, 14, 19, 30, 0, 0, time.UTC), Category: "restaurants/coffee", SubCategory: "Rome trip"},
	}
	suite.Require().Nil(models.SyncTransactions(suite.db, transactions))

	mirrored, err := models.Transactions(suite.db)
	suite.Require().Nil(err)
	suite.Require().Len(mirrored, 2)
	suite.Assert().Equal(int64(2), mirrored[0].ID, "transactions must be ordered newest first")
	suite.Assert().Equal("Rome trip", mirrored[0].SubCategory)
	suite.Assert().True(mirrored[1].Amount.Equal(decimal.RequireFromString("3.2")))

	// Update one, drop the other
	transactions = []aggregate.Transaction{
		{ID: 1, Name: "Bread and butter", Amount: decimal.RequireFromString("5"), Date: time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC), Category: "groceries"},
	}
	suite.Require().Nil(models.SyncTransactions(suite.db, transactions))

	mirrored, err = models.Transactions(suite.db)
	suite.Require().Nil(err)
	suite.Require().Len(mirrored, 1)
	suite.Assert().Equal("Bread and butter", mirrored[0].Name)
	suite.Assert().True(mirrored[0].Amount.Equal(decimal.NewFromInt(5)))

	var count int64
	suite.Require().Nil(suite.db.Model(&models.Transaction{}).Count(&count).Error)
	suite.Assert().Equal(int64(1), count)
}

func (suite *TestSuiteStandard) TestSyncTransactionsEmpty() {
	suite.Require().Nil(models.SyncTransactions(suite.db, []aggregate.Transaction{
		{ID: 1, Amount: decimal.NewFromInt(1), Date: time.Now()},
	}))
	suite.Require().Nil(models.SyncTransactions(suite.db, nil))

	mirrored, err := models.Transactions(suite.db)
	suite.Require().Nil(err)
	suite.Assert().Empty(mirrored)
}

func (suite *TestSuiteStandard) TestTransactionKeepsCalendarMonth() {
	loc := time.FixedZone("UTC-5", -5*60*60)
	suite.Require().Nil(models.SyncTransactions(suite.db, []aggregate.Transaction{
		{ID: 1, Amount: decimal.NewFromInt(1), Date: time.Date(2025, 3, 31, 23, 30, 0, 0, loc), Category: "groceries"},
	}))

	mirrored, err := models.Transactions(suite.db)
	suite.Require().Nil(err)
	suite.Require().Len(mirrored, 1)
	suite.Assert().Equal(types.NewMonth(2025, 3), mirrored[0].Month())
}

func (suite *TestSuiteStandard) TestTransactionsBetween() {
	loc := time.FixedZone("UTC-5", -5*60*60)
	suite.Require().Nil(models.SyncTransactions(suite.db, []aggregate.Transaction{
		{ID: 1, Amount: decimal.NewFromInt(1), Date: time.Date(2024, 12, 20, 0, 0, 0, 0, time.UTC), Category: "groceries"},
		{ID: 2, Amount: decimal.NewFromInt(2), Date: time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC), Category: "groceries"},
		{ID: 3, Amount: decimal.NewFromInt(3), Date: time.Date(2025, 3, 31, 23, 30, 0, 0, loc), Category: "dining"},
		{ID: 4, Amount: decimal.NewFromInt(4), Date: time.Date(2025, 6, 2, 0, 0, 0, 0, time.UTC), Category: "dining"},
	}))

	march := types.NewMonth(2025, 3)
	mirrored, err := models.TransactionsBetween(suite.db, march.Start(), march.End())
	suite.Require().Nil(err)

	ids := make([]int64, 0, len(mirrored))
	for _, t := range mirrored {
		ids = append(ids, t.ID)
	}
	suite.Assert().ElementsMatch([]int64{2, 3}, ids, "transactions far outside of the month are not loaded")
}

func (suite *TestSuiteStandard) TestSyncIncome() {
	income := []aggregate.Income{
		{ID: 1, Name: "Salary", Amount: decimal.NewFromInt(3000), Date: time.Date(2025, 2, 28, 0, 0, 0, 0, time.UTC), Account: "checking"},
		{ID: 2, Name: "Salary", Amount: decimal.NewFromInt(3100), Date: time.Date(2025, 3, 28, 0, 0, 0, 0, time.UTC), Account: "checking"},
	}
	suite.Require().Nil(models.SyncIncome(suite.db, income))

	mirrored, err := models.AllIncome(suite.db)
	suite.Require().Nil(err)
	suite.Require().Len(mirrored, 2)
	suite.Assert().Equal(int64(2), mirrored[0].ID)

	suite.Require().Nil(models.SyncIncome(suite.db, income[:1]))
	mirrored, err = models.AllIncome(suite.db)
	suite.Require().Nil(err)
	suite.Assert().Len(mirrored, 1)
}

func (suite *TestSuiteStandard) TestSetBudget() {
	entry, err := models.SetBudget(suite.db, aggregate.BudgetEntry{Category: "groceries", BudgetAmount: decimal.NewFromInt(400)})
	suite.Require().Nil(err)
	suite.Assert().Equal("groceries", entry.Category)

	_, err = models.SetBudget(suite.db, aggregate.BudgetEntry{Category: "groceries", BudgetAmount: decimal.NewFromInt(450)})
	suite.Require().Nil(err)

	budgets, err := models.Budgets(suite.db)
	suite.Require().Nil(err)
	suite.Require().Len(budgets, 1, "budgets must be overwritten, not duplicated")
	suite.Assert().True(budgets[0].BudgetAmount.Equal(decimal.NewFromInt(450)))
}

func (suite *TestSuiteStandard) TestSetBudgetWithoutCategory() {
	_, err := models.SetBudget(suite.db, aggregate.BudgetEntry{BudgetAmount: decimal.NewFromInt(1)})
	suite.Assert().ErrorIs(err, models.ErrCategoryRequired)
}

func (suite *TestSuiteStandard) TestSyncBudgets() {
	_, err := models.SetBudget(suite.db, aggregate.BudgetEntry{Category: "clothes/care", BudgetAmount: decimal.NewFromInt(80)})
	suite.Require().Nil(err)

	err = models.SyncBudgets(suite.db, []aggregate.BudgetEntry{
		{Category: "utilities", BudgetAmount: decimal.NewFromInt(150)},
		{Category: "groceries", BudgetAmount: decimal.NewFromInt(400)},
	})
	suite.Require().Nil(err)

	budgets, err := models.Budgets(suite.db)
	suite.Require().Nil(err)
	suite.Require().Len(budgets, 2)
	suite.Assert().Equal("groceries", budgets[0].Category)
	suite.Assert().Equal("utilities", budgets[1].Category)

	suite.Assert().ErrorIs(models.SyncBudgets(suite.db, []aggregate.BudgetEntry{{}}), models.ErrCategoryRequired)
}

func (suite *TestSuiteStandard) TestLastSyncRun() {
	_, err := models.LastSyncRun(suite.db)
	suite.Assert().ErrorIs(err, models.ErrResourceNotFound)

	start := time.Now().Add(-time.Hour)
	suite.Require().Nil(suite.db.Create(&models.SyncRun{StartedAt: start, Transactions: 1}).Error)
	suite.Require().Nil(suite.db.Create(&models.SyncRun{StartedAt: start.Add(time.Minute), Transactions: 2}).Error)

	run, err := models.LastSyncRun(suite.db)
	suite.Require().Nil(err)
	suite.Assert().Equal(2, run.Transactions)
}

func (suite *TestSuiteStandard) TestClosedDatabase() {
	suite.CloseDB()

	_, err := models.Transactions(suite.db)
	suite.Assert().ErrorIs(err, models.ErrGeneral)
}
