// Package mirror copies the data of the finance backend into the local
// database so that the dashboard can be served while the backend is offline.
package mirror

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/finboard/backend/pkg/aggregate"
	"github.com/finboard/backend/pkg/models"
	"github.com/robfig/cron/v3"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"
	"gorm.io/gorm"
)

// ErrSyncRunning is returned when a synchronization is requested while another one is running.
var ErrSyncRunning = errors.New("a synchronization is already running")

// syncTimeout bounds scheduled synchronizations.
const syncTimeout = 5 * time.Minute

// Upstream is the source of the mirrored data.
type Upstream interface {
	Transactions(context.Context) ([]aggregate.Transaction, error)
	Income(context.Context) ([]aggregate.Income, error)
	Budgets(context.Context) ([]aggregate.BudgetEntry, error)
}

// Mirror synchronizes the local database with the finance backend.
type Mirror struct {
	upstream Upstream
	db       *gorm.DB
	running  sync.Mutex
}

// New returns a new Mirror.
func New(upstream Upstream, db *gorm.DB) *Mirror {
	return &Mirror{upstream: upstream, db: db}
}

// Sync fetches all transactions, income and budgets and replaces the
// mirrored data with them. Every run is recorded, including failed ones.
//
// Nothing is written unless all data has been fetched successfully.
func (m *Mirror) Sync(ctx context.Context) (models.SyncRun, error) {
	if !m.running.TryLock() {
		return models.SyncRun{}, ErrSyncRunning
	}
	defer m.running.Unlock()

	run := models.SyncRun{StartedAt: time.Now()}
	err := m.sync(ctx, &run)
	run.FinishedAt = time.Now()

	if err != nil {
		run.Error = err.Error()
	}

	if createErr := m.db.Create(&run).Error; createErr != nil {
		log.Error().Err(createErr).Msg("Mirror")
	}

	if err != nil {
		return run, err
	}

	log.Info().
		Int("transactions", run.Transactions).
		Int("income", run.Income).
		Int("budgets", run.Budgets).
		Dur("duration", run.FinishedAt.Sub(run.StartedAt)).
		Msg("Mirror synchronized")

	return run, nil
}

func (m *Mirror) sync(ctx context.Context, run *models.SyncRun) error {
	var (
		transactions []aggregate.Transaction
		income       []aggregate.Income
		budgets      []aggregate.BudgetEntry
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		transactions, err = m.upstream.Transactions(gctx)
		return err
	})
	g.Go(func() (err error) {
		income, err = m.upstream.Income(gctx)
		return err
	})
	g.Go(func() (err error) {
		budgets, err = m.upstream.Budgets(gctx)
		return err
	})

	if err := g.Wait(); err != nil {
		return fmt.Errorf("error fetching data to mirror: %w", err)
	}

	// A cancelled sync must not replace the mirror
	if err := ctx.Err(); err != nil {
		return err
	}

	if err := models.SyncTransactions(m.db, transactions); err != nil {
		return err
	}

	if err := models.SyncIncome(m.db, income); err != nil {
		return err
	}

	if err := models.SyncBudgets(m.db, budgets); err != nil {
		return err
	}

	run.Transactions = len(transactions)
	run.Income = len(income)
	run.Budgets = len(budgets)
	return nil
}

// Schedule runs Sync according to the cron spec until the returned
// scheduler is stopped. Runs are skipped while the previous one is still in progress.
func (m *Mirror) Schedule(spec string) (*cron.Cron, error) {
	logger := cronLogger{log.Logger.With().Str("component", "mirror").Logger()}

	c := cron.New(
		cron.WithLogger(logger),
		cron.WithChain(cron.Recover(logger), cron.SkipIfStillRunning(logger)),
	)

	_, err := c.AddFunc(spec, func() {
		ctx, cancel := context.WithTimeout(context.Background(), syncTimeout)
		defer cancel()

		if _, err := m.Sync(ctx); err != nil {
			log.Error().Err(err).Msg("Scheduled mirror synchronization failed")
		}
	})
	if err != nil {
		return nil, fmt.Errorf("invalid sync schedule %q: %w", spec, err)
	}

	c.Start()
	return c, nil
}

// cronLogger sends cron logs to zerolog.
type cronLogger struct {
	Logger zerolog.Logger
}

func (l cronLogger) Info(msg string, keysAndValues ...interface{}) {
	l.Logger.Debug().Fields(keysAndValues).Msg(msg)
}

func (l cronLogger) Error(err error, msg string, keysAndValues ...interface{}) {
	l.Logger.Error().Err(err).Fields(keysAndValues).Msg(msg)
}
