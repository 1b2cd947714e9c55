package models_test

import (
	"testing"
	"time"

	"github.com/finboard/backend/pkg/aggregate"
	"github.com/finboard/backend/pkg/models"
	"github.com/finboard/backend/test"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMigrateWithExistingDB(t *testing.T) {
	testDB := test.TmpFile(t)

	// Migrate the database once
	db, err := models.Connect(testDB)
	require.Nil(t, err)

	require.Nil(t, models.SyncBudgets(db, []aggregate.BudgetEntry{{Category: "groceries", BudgetAmount: decimal.NewFromInt(300)}}))

	// Close the connection
	sqlDB, err := db.DB()
	require.Nil(t, err)
	sqlDB.Close()

	// Migrate it again, the mirrored data stays
	db, err = models.Connect(testDB)
	require.Nil(t, err)

	budgets, err := models.Budgets(db)
	require.Nil(t, err)
	assert.Len(t, budgets, 1)
}

func TestConnectInvalidPath(t *testing.T) {
	_, err := models.Connect(t.TempDir() + "/missing/directory/mirror.db")
	assert.NotNil(t, err)
}

func (suite *TestSuiteStandard) TestModelTimeUTC() {
	tz, _ := time.LoadLocation("Europe/Berlin")

	model := models.DefaultModel{
		CreatedAt: time.Date(2000, 1, 2, 3, 4, 5, 6, tz),
		UpdatedAt: time.Date(2001, 2, 3, 4, 5, 6, 7, tz),
	}

	suite.Require().Nil(model.AfterFind(suite.db))

	suite.Assert().Equal(time.UTC, model.CreatedAt.Location(), "Timezone for model is not UTC")
	suite.Assert().Equal(time.UTC, model.UpdatedAt.Location(), "Timezone for model is not UTC")
}

func (suite *TestSuiteStandard) TestModelID() {
	run := models.SyncRun{StartedAt: time.Now()}
	suite.Require().Nil(suite.db.Create(&run).Error)
	suite.Assert().NotEqual("00000000-0000-0000-0000-000000000000", run.ID.String(), "an ID is generated on creation")
}
