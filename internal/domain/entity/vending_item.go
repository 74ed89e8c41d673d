package entity

import (
	"math"

	"github.com/shopspring/decimal"
)

// Rango de magnitudes de un monto: el finito de float64. Fuera de él las operaciones de
// decimal reescalan a exponentes enormes.
const (
	maxAmountExponent = 308
	minAmountExponent = -324
)

var maxAmount = decimal.NewFromFloat(math.MaxFloat64)

// VendingItem registro de inventario de una selección: precio unitario y cantidad disponible.
// Quantity admite fracciones (productos a granel por peso o volumen).
type VendingItem struct {
	Price    decimal.Decimal
	Quantity decimal.Decimal
}

// InStock indica si queda existencia (cantidad estrictamente positiva).
func (i VendingItem) InStock() bool {
	return i.Quantity.GreaterThan(decimal.Zero)
}

// Inventory existencias por selección; una selección sin surtir simplemente no aparece.
type Inventory map[Selection]VendingItem

// Clone devuelve una copia independiente (VendingItem es un valor, basta copiar el mapa).
func (inv Inventory) Clone() Inventory {
	out := make(Inventory, len(inv))
	for k, v := range inv {
		out[k] = v
	}
	return out
}

// AmountInRange indica si d cabe en el rango finito de float64 (precios y cantidades de recurso).
func AmountInRange(d decimal.Decimal) bool {
	exp := int64(d.Exponent())
	if exp < minAmountExponent {
		return false
	}
	switch adjusted := exp + int64(d.NumDigits()) - 1; {
	case adjusted > maxAmountExponent:
		return false
	case adjusted == maxAmountExponent:
		return d.Abs().LessThanOrEqual(maxAmount)
	}
	return true
}
