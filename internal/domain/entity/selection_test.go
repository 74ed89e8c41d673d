package entity_test

import (
	"testing"

	"github.com/jhoicas/vending-machine/internal/domain/entity"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestParseSelection(t *testing.T) {
	for _, sel := range entity.DisplaySelections() {
		got, ok := entity.ParseSelection(sel.DisplayName())
		assert.True(t, ok, sel)
		assert.Equal(t, sel, got)
	}

	for _, name := range []string{"", "soda", "SODA", "Pizza", "Soda "} {
		_, ok := entity.ParseSelection(name)
		assert.False(t, ok, "%q no pertenece al catálogo", name)
	}
}

func TestDisplaySelections_SinDuplicados(t *testing.T) {
	seen := make(map[entity.Selection]bool)
	for _, sel := range entity.DisplaySelections() {
		assert.False(t, seen[sel], "duplicado %s", sel)
		seen[sel] = true
	}
	assert.Len(t, seen, 12)
}

func TestInventoryClone(t *testing.T) {
	inv := entity.Inventory{entity.SelectionGum: {Price: decimal.RequireFromString("0.5"), Quantity: decimal.NewFromInt(3)}}
	cp := inv.Clone()
	cp[entity.SelectionGum] = entity.VendingItem{}

	assert.True(t, inv[entity.SelectionGum].InStock())
	assert.False(t, cp[entity.SelectionGum].InStock())
}

func TestAmountInRange(t *testing.T) {
	dentro := []string{"0", "1.25", "-3", "1e300", "1.7976931348623157e308", "5e-324"}
	for _, s := range dentro {
		assert.True(t, entity.AmountInRange(decimal.RequireFromString(s)), s)
	}

	fuera := []string{"1e200000000", "1e-200000000", "0e-400", "2e308", "1e309", "-1e400"}
	for _, s := range fuera {
		assert.False(t, entity.AmountInRange(decimal.RequireFromString(s)), s)
	}
}
