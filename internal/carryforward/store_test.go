package carryforward

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rgehrsitz/taxcalc/internal/domain"
)

func TestFileStoreRoundTrip(t *testing.T) {
	store := NewFileStore(t.TempDir())

	state := domain.CarryforwardState{
		FederalShortTermLoss:      decimal.NewFromInt(27000),
		FederalLongTermLoss:       decimal.NewFromInt(1500),
		FederalInvestmentInterest: decimal.RequireFromString("812.34"),
		StateCapitalLoss:          decimal.NewFromInt(30000),
	}
	require.NoError(t, store.Save(2025, state))

	loaded, err := store.Load(2025)
	require.NoError(t, err)
	assert.True(t, loaded.FederalShortTermLoss.Equal(state.FederalShortTermLoss))
	assert.True(t, loaded.FederalLongTermLoss.Equal(state.FederalLongTermLoss))
	assert.True(t, loaded.FederalInvestmentInterest.Equal(state.FederalInvestmentInterest))
	assert.True(t, loaded.StateCapitalLoss.Equal(state.StateCapitalLoss))
}

func TestFileStoreMissingFileIsZeroState(t *testing.T) {
	store := NewFileStore(t.TempDir())

	loaded, err := store.Load(2024)
	require.NoError(t, err)
	assert.Equal(t, domain.ZeroCarryforward(), loaded)
}

func TestFileStoreSaveCreatesDirectory(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested", "data")
	store := NewFileStore(dir)

	require.NoError(t, store.Save(2025, domain.ZeroCarryforward()))

	_, err := os.Stat(filepath.Join(dir, "2025_carryforward.yaml"))
	assert.NoError(t, err)
}

func TestFileStoreSaveOverwrites(t *testing.T) {
	store := NewFileStore(t.TempDir())

	require.NoError(t, store.Save(2025, domain.CarryforwardState{
		StateCapitalLoss: decimal.NewFromInt(100),
	}))
	require.NoError(t, store.Save(2025, domain.CarryforwardState{
		StateCapitalLoss: decimal.NewFromInt(200),
	}))

	loaded, err := store.Load(2025)
	require.NoError(t, err)
	assert.True(t, loaded.StateCapitalLoss.Equal(decimal.NewFromInt(200)))
}

func TestFileStoreRejectsCorruptFile(t *testing.T) {
	dir := t.TempDir()
	store := NewFileStore(dir)
	require.NoError(t, os.WriteFile(filepath.Join(dir, "2025_carryforward.yaml"),
		[]byte("federal_short_term_loss: [broken"), 0o644))

	_, err := store.Load(2025)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to parse")
}

func TestFileStoreRejectsNegativeBalances(t *testing.T) {
	dir := t.TempDir()
	store := NewFileStore(dir)
	require.NoError(t, os.WriteFile(filepath.Join(dir, "2025_carryforward.yaml"),
		[]byte("state_capital_loss: -400\n"), 0o644))

	_, err := store.Load(2025)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "must be non-negative")
}
