package inventory

import (
	"encoding/json"
	"fmt"
	"math"
	"math/big"
	"sort"

	"github.com/jhoicas/vending-machine/internal/domain"
	"github.com/jhoicas/vending-machine/internal/domain/entity"
	"github.com/shopspring/decimal"
)

// Campos obligatorios de cada registro en el recurso de inventario.
const (
	FieldPrice    = "price"
	FieldQuantity = "quantity"
)

// InventoryFromDictionary convierte el mapa genérico del recurso en un inventario tipado.
// Las claves se recorren en orden ascendente; el primer error aborta la decodificación completa
// (no se devuelve inventario parcial).
func InventoryFromDictionary(dict map[string]any) (entity.Inventory, error) {
	keys := make([]string, 0, len(dict))
	for k := range dict {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	inv := make(entity.Inventory, len(dict))
	for _, key := range keys {
		sel, ok := entity.ParseSelection(key)
		if !ok {
			return nil, fmt.Errorf("%w: %q", domain.ErrInvalidKey, key)
		}
		item, err := itemFromValue(dict[key])
		if err != nil {
			return nil, fmt.Errorf("%s: %w", key, err)
		}
		inv[sel] = item
	}
	return inv, nil
}

// itemFromValue exige un diccionario con price y quantity numéricos, finitos y no negativos.
func itemFromValue(v any) (entity.VendingItem, error) {
	record, ok := v.(map[string]any)
	if !ok {
		return entity.VendingItem{}, fmt.Errorf("%w: se esperaba diccionario, llegó %T", domain.ErrMalformedRecord, v)
	}
	price, err := numericField(record, FieldPrice)
	if err != nil {
		return entity.VendingItem{}, err
	}
	quantity, err := numericField(record, FieldQuantity)
	if err != nil {
		return entity.VendingItem{}, err
	}
	return entity.VendingItem{Price: price, Quantity: quantity}, nil
}

func numericField(record map[string]any, field string) (decimal.Decimal, error) {
	raw, ok := record[field]
	if !ok {
		return decimal.Zero, fmt.Errorf("%w: falta %s", domain.ErrMalformedRecord, field)
	}
	d, ok := toDecimal(raw)
	if !ok {
		return decimal.Zero, fmt.Errorf("%w: %s no numérico (%T)", domain.ErrMalformedRecord, field, raw)
	}
	if !entity.AmountInRange(d) {
		return decimal.Zero, fmt.Errorf("%w: %s fuera de rango %v", domain.ErrMalformedRecord, field, raw)
	}
	if d.IsNegative() {
		return decimal.Zero, fmt.Errorf("%w: %s negativo %s", domain.ErrMalformedRecord, field, d)
	}
	return d, nil
}

// toDecimal acepta los tipos numéricos que producen los decodificadores de recursos
// (plist, JSON con UseNumber, YAML, TOML). Los strings no cuentan como números.
func toDecimal(v any) (decimal.Decimal, bool) {
	switch n := v.(type) {
	case decimal.Decimal:
		return n, true
	case json.Number:
		d, err := decimal.NewFromString(n.String())
		return d, err == nil
	case float64:
		if math.IsNaN(n) || math.IsInf(n, 0) {
			return decimal.Zero, false
		}
		return decimal.NewFromFloat(n), true
	case float32:
		if math.IsNaN(float64(n)) || math.IsInf(float64(n), 0) {
			return decimal.Zero, false
		}
		return decimal.NewFromFloat32(n), true
	case int:
		return decimal.NewFromInt(int64(n)), true
	case int8:
		return decimal.NewFromInt(int64(n)), true
	case int16:
		return decimal.NewFromInt(int64(n)), true
	case int32:
		return decimal.NewFromInt32(n), true
	case int64:
		return decimal.NewFromInt(n), true
	case uint:
		return fromUint(uint64(n)), true
	case uint8:
		return fromUint(uint64(n)), true
	case uint16:
		return fromUint(uint64(n)), true
	case uint32:
		return fromUint(uint64(n)), true
	case uint64:
		return fromUint(n), true
	default:
		return decimal.Zero, false
	}
}

func fromUint(n uint64) decimal.Decimal {
	return decimal.NewFromBigInt(new(big.Int).SetUint64(n), 0)
}
