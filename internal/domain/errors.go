package domain

import (
	"errors"
	"fmt"

	"github.com/shopspring/decimal"
)

// Errores de configuración (fatales para el arranque).
var (
	ErrResourceNotFound  = errors.New("recurso no encontrado")
	ErrMalformedResource = errors.New("recurso mal formado")
)

// Errores de decodificación del inventario (fatales para el arranque).
var (
	ErrInvalidKey      = errors.New("clave de selección inválida")
	ErrMalformedRecord = errors.New("registro de inventario mal formado")
)

// Errores de transacción (recuperables: el llamador los presenta al usuario).
var (
	ErrInvalidSelection  = errors.New("selección inválida")
	ErrOutOfStock        = errors.New("producto agotado")
	ErrInsufficientFunds = errors.New("fondos insuficientes")
	ErrInsufficientStock = errors.New("stock insuficiente")
	ErrInvalidDeposit    = errors.New("depósito inválido")
	ErrInvalidQuantity   = errors.New("cantidad inválida")
)

// InsufficientFundsError indica cuánto dinero falta para completar una venta.
// errors.Is(err, ErrInsufficientFunds) es verdadero para este tipo.
type InsufficientFundsError struct {
	Required decimal.Decimal
}

func (e *InsufficientFundsError) Error() string {
	return fmt.Sprintf("%s: faltan %s", ErrInsufficientFunds, e.Required.String())
}

func (e *InsufficientFundsError) Is(target error) bool {
	return target == ErrInsufficientFunds
}

// AmountRequired extrae el monto faltante si err es (o envuelve) un InsufficientFundsError.
func AmountRequired(err error) (decimal.Decimal, bool) {
	var fundsErr *InsufficientFundsError
	if errors.As(err, &fundsErr) {
		return fundsErr.Required, true
	}
	return decimal.Zero, false
}
