package vending

import (
	"fmt"

	"github.com/jhoicas/vending-machine/internal/domain"
	"github.com/jhoicas/vending-machine/internal/domain/entity"
	"github.com/shopspring/decimal"
)

// VendingMachine dueña exclusiva del inventario y del saldo depositado (servicio de dominio).
// Cada Vend es un intento atómico: o actualiza saldo e inventario, o no modifica nada.
// No es seguro para uso concurrente; el llamador debe serializar Deposit y Vend con un único lock.
type VendingMachine struct {
	selection       []entity.Selection
	inventory       entity.Inventory
	amountDeposited decimal.Decimal
}

// NewVendingMachine construye la máquina con una copia del inventario y el saldo inicial.
func NewVendingMachine(inventory entity.Inventory, startingBalance decimal.Decimal) (*VendingMachine, error) {
	if startingBalance.IsNegative() {
		return nil, fmt.Errorf("%w: saldo inicial negativo %s", domain.ErrInvalidDeposit, startingBalance)
	}
	for sel := range inventory {
		if !sel.Valid() {
			return nil, fmt.Errorf("%w: %q", domain.ErrInvalidKey, string(sel))
		}
	}
	return &VendingMachine{
		selection:       entity.DisplaySelections(),
		inventory:       inventory.Clone(),
		amountDeposited: startingBalance,
	}, nil
}

// Selection orden de presentación; no interviene en las transacciones.
func (m *VendingMachine) Selection() []entity.Selection {
	out := make([]entity.Selection, len(m.selection))
	copy(out, m.selection)
	return out
}

// AmountDeposited saldo disponible.
func (m *VendingMachine) AmountDeposited() decimal.Decimal {
	return m.amountDeposited
}

// Inventory copia del inventario actual.
func (m *VendingMachine) Inventory() entity.Inventory {
	return m.inventory.Clone()
}

// ItemForSelection consulta pura; ok=false si la selección no está surtida.
func (m *VendingMachine) ItemForSelection(sel entity.Selection) (entity.VendingItem, bool) {
	item, ok := m.inventory[sel]
	return item, ok
}

// Deposit suma amount al saldo. Un monto negativo se rechaza con ErrInvalidDeposit.
func (m *VendingMachine) Deposit(amount decimal.Decimal) error {
	if amount.IsNegative() {
		return fmt.Errorf("%w: monto negativo %s", domain.ErrInvalidDeposit, amount)
	}
	m.amountDeposited = m.amountDeposited.Add(amount)
	return nil
}

// Vend valida todo antes de mutar: selección, existencia, cantidad, fondos y stock suficiente;
// luego descuenta el total del saldo y la cantidad del inventario. El movimiento devuelto no
// trae ID ni CreatedAt: los asigna quien lo registra.
func (m *VendingMachine) Vend(sel entity.Selection, quantity decimal.Decimal) (entity.VendMovement, error) {
	item, ok := m.inventory[sel]
	if !ok {
		return entity.VendMovement{}, fmt.Errorf("%w: %q", domain.ErrInvalidSelection, string(sel))
	}
	if !item.InStock() {
		return entity.VendMovement{}, fmt.Errorf("%w: %s", domain.ErrOutOfStock, sel)
	}
	if !quantity.IsPositive() {
		return entity.VendMovement{}, fmt.Errorf("%w: %s", domain.ErrInvalidQuantity, quantity)
	}

	totalPrice := item.Price.Mul(quantity)
	if m.amountDeposited.LessThan(totalPrice) {
		return entity.VendMovement{}, &domain.InsufficientFundsError{Required: totalPrice.Sub(m.amountDeposited)}
	}
	// Con fondos suficientes todavía puede faltar stock; la cantidad nunca queda negativa.
	if item.Quantity.LessThan(quantity) {
		return entity.VendMovement{}, fmt.Errorf("%w: %s disponible %s, solicitado %s",
			domain.ErrInsufficientStock, sel, item.Quantity, quantity)
	}

	m.amountDeposited = m.amountDeposited.Sub(totalPrice)
	item.Quantity = item.Quantity.Sub(quantity)
	m.inventory[sel] = item

	return entity.VendMovement{
		Selection:    sel,
		Quantity:     quantity,
		UnitPrice:    item.Price,
		TotalPrice:   totalPrice,
		BalanceAfter: m.amountDeposited,
		StockAfter:   item.Quantity,
	}, nil
}
