package cmd

import (
	"context"
	"path/filepath"
	"testing"

	"debt-planner/config"
	"debt-planner/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestNewApp_SQLiteStoreKeepsHistory(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.Store.Driver = "sqlite"
	cfg.Store.DSN = filepath.Join(t.TempDir(), "plans.db")
	logger := zap.NewNop().Sugar()
	ctx := context.Background()

	input := domain.PlanInput{
		Debts:         []domain.Debt{{ID: "card", Balance: 1000, AnnualInterestRate: 0.2}},
		MonthlyBudget: 200,
	}

	first, err := newApp(ctx, cfg, logger)
	require.NoError(t, err)
	assert.Contains(t, first.health, "store")
	_, err = first.service.Compare(ctx, input)
	require.NoError(t, err)
	first.Close(logger)

	second, err := newApp(ctx, cfg, logger)
	require.NoError(t, err)
	defer second.Close(logger)

	plans, err := second.service.History(ctx, 0)
	require.NoError(t, err)
	require.Len(t, plans, 1)
	assert.Equal(t, 200.0, plans[0].Input.MonthlyBudget)
}

func TestNewApp_MemoryDefaults(t *testing.T) {
	a, err := newApp(context.Background(), config.DefaultConfig(), zap.NewNop().Sugar())
	require.NoError(t, err)
	defer a.Close(zap.NewNop().Sugar())

	assert.Empty(t, a.health)
	assert.Empty(t, a.closers)
}
