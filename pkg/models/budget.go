package models

import (
	"fmt"

	"github.com/finboard/backend/pkg/aggregate"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// Budget is the budget of one category. There is at most one budget per category.
type Budget struct {
	DefaultModel
	Category string          `gorm:"uniqueIndex"`
	Amount   decimal.Decimal `gorm:"type:DECIMAL(20,8)"`
}

var budgetUpsert = clause.OnConflict{
	Columns:   []clause.Column{{Name: "category"}},
	DoUpdates: clause.AssignmentColumns([]string{"updated_at", "amount"}),
}

// Budgets returns all budgets ordered by category.
func Budgets(db *gorm.DB) ([]aggregate.BudgetEntry, error) {
	var rows []Budget
	if err := db.Order("category").Find(&rows).Error; err != nil {
		return nil, err
	}

	budgets := make([]aggregate.BudgetEntry, 0, len(rows))
	for _, row := range rows {
		budgets = append(budgets, aggregate.BudgetEntry{Category: row.Category, BudgetAmount: row.Amount})
	}
	return budgets, nil
}

// SetBudget creates or overwrites the budget of a category.
func SetBudget(db *gorm.DB, entry aggregate.BudgetEntry) (aggregate.BudgetEntry, error) {
	if entry.Category == "" {
		return aggregate.BudgetEntry{}, ErrCategoryRequired
	}

	row := Budget{Category: entry.Category, Amount: entry.BudgetAmount}
	if err := db.Clauses(budgetUpsert).Create(&row).Error; err != nil {
		return aggregate.BudgetEntry{}, err
	}

	return aggregate.BudgetEntry{Category: row.Category, BudgetAmount: row.Amount}, nil
}

// SyncBudgets replaces all budgets with the ones passed in.
func SyncBudgets(db *gorm.DB, budgets []aggregate.BudgetEntry) error {
	rows := make([]Budget, 0, len(budgets))
	categories := make([]string, 0, len(budgets))
	for _, b := range budgets {
		if b.Category == "" {
			return ErrCategoryRequired
		}

		rows = append(rows, Budget{Category: b.Category, Amount: b.BudgetAmount})
		categories = append(categories, b.Category)
	}

	return db.Transaction(func(tx *gorm.DB) error {
		if len(rows) > 0 {
			if err := tx.Clauses(budgetUpsert).CreateInBatches(&rows, batchSize).Error; err != nil {
				return fmt.Errorf("error mirroring budgets: %w", err)
			}
		}

		stale := tx.Session(&gorm.Session{AllowGlobalUpdate: true})
		if len(categories) > 0 {
			stale = stale.Where("category NOT IN ?", categories)
		}

		if err := stale.Delete(&Budget{}).Error; err != nil {
			return fmt.Errorf("error deleting stale budgets: %w", err)
		}
		return nil
	})
}
