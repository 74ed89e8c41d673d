package config_test

import (
	"testing"

	"github.com/jhoicas/vending-machine/pkg/config"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_ValoresPorDefecto(t *testing.T) {
	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, "development", cfg.App.Env)
	assert.Equal(t, "vending-machine", cfg.App.Name)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, "VendingInventory", cfg.Inventory.Resource)
	assert.Equal(t, "plist", cfg.Inventory.Type)
	assert.Equal(t, []string{"./resources"}, cfg.Inventory.Paths)
	assert.True(t, cfg.Machine.StartingBalance.Equal(decimal.NewFromInt(10)))
}

func TestLoad_VariablesDeEntorno(t *testing.T) {
	t.Setenv("APP_ENV", "production")
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("INVENTORY_RESOURCE", "Stock")
	t.Setenv("INVENTORY_TYPE", "yaml")
	t.Setenv("RESOURCE_PATHS", "/etc/vending, ./resources,,")
	t.Setenv("STARTING_BALANCE", " 0.00 ")

	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, "production", cfg.App.Env)
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, "Stock", cfg.Inventory.Resource)
	assert.Equal(t, "yaml", cfg.Inventory.Type)
	assert.Equal(t, []string{"/etc/vending", "./resources"}, cfg.Inventory.Paths)
	assert.True(t, cfg.Machine.StartingBalance.IsZero())
}

func TestLoad_SaldoInicialInvalido(t *testing.T) {
	for _, raw := range []string{"diez", "-1.50"} {
		t.Run(raw, func(t *testing.T) {
			t.Setenv("STARTING_BALANCE", raw)
			_, err := config.Load()
			assert.Error(t, err)
		})
	}
}
