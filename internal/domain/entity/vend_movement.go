package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// VendMovement registro en memoria de una venta confirmada (no se persiste).
type VendMovement struct {
	ID           string
	Selection    Selection
	Quantity     decimal.Decimal
	UnitPrice    decimal.Decimal
	TotalPrice   decimal.Decimal
	BalanceAfter decimal.Decimal // saldo depositado luego de descontar TotalPrice
	StockAfter   decimal.Decimal
	CreatedAt    time.Time
}
