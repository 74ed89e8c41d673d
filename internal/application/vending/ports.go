package vending

import (
	"github.com/jhoicas/vending-machine/internal/domain/entity"
	"github.com/jhoicas/vending-machine/internal/domain/vending"
	"github.com/shopspring/decimal"
)

// Asegurar que la máquina de dominio implementa Machine.
var _ Machine = (*vending.VendingMachine)(nil)

// Machine forma de una máquina expendedora: orden de presentación, inventario, saldo y transacciones.
type Machine interface {
	Selection() []entity.Selection
	AmountDeposited() decimal.Decimal
	ItemForSelection(sel entity.Selection) (entity.VendingItem, bool)
	Deposit(amount decimal.Decimal) error
	Vend(sel entity.Selection, quantity decimal.Decimal) (entity.VendMovement, error)
}

// IconResolver ruta del ícono de una selección (lo implementa catalog.Icons).
type IconResolver interface {
	IconPath(sel entity.Selection) string
}
