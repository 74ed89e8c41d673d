package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// ItemResponse datos de una selección para que la interfaz muestre precio, existencia e ícono.
type ItemResponse struct {
	Selection string          `json:"selection"`
	Price     decimal.Decimal `json:"price"`
	Quantity  decimal.Decimal `json:"quantity"`
	InStock   bool            `json:"in_stock"`
	IconPath  string          `json:"icon_path,omitempty"`
}

// MachineStatusResponse saldo y existencias en orden de presentación (solo selecciones surtidas).
type MachineStatusResponse struct {
	AmountDeposited decimal.Decimal `json:"amount_deposited"`
	Items           []ItemResponse  `json:"items"`
}

// MovementResponse venta confirmada.
type MovementResponse struct {
	ID           string          `json:"id"`
	Selection    string          `json:"selection"`
	Quantity     decimal.Decimal `json:"quantity"`
	UnitPrice    decimal.Decimal `json:"unit_price"`
	TotalPrice   decimal.Decimal `json:"total_price"`
	BalanceAfter decimal.Decimal `json:"balance_after"`
	StockAfter   decimal.Decimal `json:"stock_after"`
	CreatedAt    time.Time       `json:"created_at"`
}
