package models

import (
	"fmt"
	"time"

	"github.com/finboard/backend/pkg/aggregate"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// Income is a mirrored income record.
type Income struct {
	DefaultModel
	ExternalID   int64 `gorm:"uniqueIndex"`
	Name         string
	Amount       decimal.Decimal `gorm:"type:DECIMAL(20,8)"`
	DateReceived time.Time       `gorm:"index"`
	Account      string
}

// Aggregate returns the income for aggregation.
func (i Income) Aggregate() aggregate.Income {
	return aggregate.Income{
		ID:      i.ExternalID,
		Name:    i.Name,
		Amount:  i.Amount,
		Date:    i.DateReceived,
		Account: i.Account,
	}
}

// AllIncome returns all mirrored income, newest first.
func AllIncome(db *gorm.DB) ([]aggregate.Income, error) {
	var rows []Income
	if err := db.Order("date_received DESC, external_id DESC").Find(&rows).Error; err != nil {
		return nil, err
	}

	income := make([]aggregate.Income, 0, len(rows))
	for _, row := range rows {
		income = append(income, row.Aggregate())
	}
	return income, nil
}

// SyncIncome replaces the mirrored income with the records passed in.
func SyncIncome(db *gorm.DB, income []aggregate.Income) error {
	rows := make([]Income, 0, len(income))
	ids := make([]int64, 0, len(income))
	for _, i := range income {
		rows = append(rows, Income{
			ExternalID:   i.ID,
			Name:         i.Name,
			Amount:       i.Amount,
			DateReceived: i.Date,
			Account:      i.Account,
		})
		ids = append(ids, i.ID)
	}

	return db.Transaction(func(tx *gorm.DB) error {
		if len(rows) > 0 {
			err := tx.Clauses(clause.OnConflict{
				Columns:   []clause.Column{{Name: "external_id"}},
				DoUpdates: clause.AssignmentColumns([]string{"updated_at", "name", "amount", "date_received", "account"}),
			}).CreateInBatches(&rows, batchSize).Error
			if err != nil {
				return fmt.Errorf("error mirroring income: %w", err)
			}
		}

		stale := tx.Session(&gorm.Session{AllowGlobalUpdate: true})
		if len(ids) > 0 {
			stale = stale.Where("external_id NOT IN ?", ids)
		}

		if err := stale.Delete(&Income{}).Error; err != nil {
			return fmt.Errorf("error deleting stale income: %w", err)
		}
		return nil
	})
}
