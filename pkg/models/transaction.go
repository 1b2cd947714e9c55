package models

import (
	"fmt"
	"time"

	"github.com/finboard/backend/pkg/aggregate"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// batchSize is the number of records written per INSERT statement.
const batchSize = 100

// Transaction is a mirrored spending record.
type Transaction struct {
	DefaultModel
	ExternalID  int64           `gorm:"uniqueIndex"` // ID of the transaction in the finance backend
	Name        string
	Amount      decimal.Decimal `gorm:"type:DECIMAL(20,8)"`
	Date        time.Time       `gorm:"index"`
	Category    string          `gorm:"index"`
	SubCategory string
	Method      string
}

func newTransaction(t aggregate.Transaction) Transaction {
	return Transaction{
		ExternalID:  t.ID,
		Name:        t.Name,
		Amount:      t.Amount,
		Date:        t.Date,
		Category:    t.Category,
		SubCategory: t.SubCategory,
		Method:      t.Method,
	}
}

// Aggregate returns the transaction for aggregation.
func (t Transaction) Aggregate() aggregate.Transaction {
	return aggregate.Transaction{
		ID:          t.ExternalID,
		Name:        t.Name,
		Amount:      t.Amount,
		Date:        t.Date,
		Category:    t.Category,
		SubCategory: t.SubCategory,
		Method:      t.Method,
	}
}

// Transactions returns all mirrored transactions, newest first.
func Transactions(db *gorm.DB) ([]aggregate.Transaction, error) {
	var rows []Transaction
	err := db.Order("date DESC, external_id DESC").Find(&rows).Error
	if err != nil {
		return nil, err
	}

	transactions := make([]aggregate.Transaction, 0, len(rows))
	for _, row := range rows {
		transactions = append(transactions, row.Aggregate())
	}
	return transactions, nil
}

// TransactionsBetween returns the mirrored transactions dated from start up
// to end, newest first.
//
// Dates are stored with the offset of the backend, so the range is widened by
// a day on both ends. Callers filter the result by calendar month.
func TransactionsBetween(db *gorm.DB, start, end time.Time) ([]aggregate.Transaction, error) {
	db = db.Where("date >= ? AND date < ?", start.UTC().AddDate(0, 0, -1), end.UTC().AddDate(0, 0, 1))
	return Transactions(db)
}

// SyncTransactions replaces the mirrored transactions with the ones passed in.
//
// Existing transactions are updated in place, transactions that no longer
// exist upstream are deleted.
func SyncTransactions(db *gorm.DB, transactions []aggregate.Transaction) error {
	rows := make([]Transaction, 0, len(transactions))
	ids := make([]int64, 0, len(transactions))
	for _, t := range transactions {
		rows = append(rows, newTransaction(t))
		ids = append(ids, t.ID)
	}

	return db.Transaction(func(tx *gorm.DB) error {
		if len(rows) > 0 {
			err := tx.Clauses(clause.OnConflict{
				Columns:   []clause.Column{{Name: "external_id"}},
				DoUpdates: clause.AssignmentColumns([]string{"updated_at", "name", "amount", "date", "category", "sub_category", "method"}),
			}).CreateInBatches(&rows, batchSize).Error
			if err != nil {
				return fmt.Errorf("error mirroring transactions: %w", err)
			}
		}

		stale := tx.Session(&gorm.Session{AllowGlobalUpdate: true})
		if len(ids) > 0 {
			stale = stale.Where("external_id NOT IN ?", ids)
		}

		if err := stale.Delete(&Transaction{}).Error; err != nil {
			return fmt.Errorf("error deleting stale transactions: %w", err)
		}
		return nil
	})
}
