package vending

import (
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/jhoicas/vending-machine/internal/application/dto"
	"github.com/jhoicas/vending-machine/internal/domain"
	"github.com/jhoicas/vending-machine/internal/domain/entity"
	"github.com/jhoicas/vending-machine/pkg/logger"
	"github.com/shopspring/decimal"
)

// VendingUseCase interfaz estrecha que consume la interfaz gráfica: depositar, vender y consultar.
// Un único mutex cubre Deposit y Vend, porque Vend lee y escribe saldo e inventario.
type VendingUseCase struct {
	mu        sync.Mutex
	machine   Machine
	icons     IconResolver
	log       *logger.Logger
	movements []entity.VendMovement
	now       func() time.Time
}

// NewVendingUseCase construye el caso de uso. icons y log pueden ser nil.
func NewVendingUseCase(machine Machine, icons IconResolver, log *logger.Logger) *VendingUseCase {
	if log == nil {
		log = logger.Nop()
	}
	return &VendingUseCase{
		machine: machine,
		icons:   icons,
		log:     log.Component("vending"),
		now:     time.Now,
	}
}

// Deposit suma amount al saldo depositado.
func (uc *VendingUseCase) Deposit(amount decimal.Decimal) error {
	uc.mu.Lock()
	defer uc.mu.Unlock()

	if err := uc.machine.Deposit(amount); err != nil {
		uc.log.Warn().Err(err).Str("amount", amount.String()).Msg("depósito rechazado")
		return err
	}
	uc.log.Debug().
		Str("amount", amount.String()).
		Str("balance", uc.machine.AmountDeposited().String()).
		Msg("depósito registrado")
	return nil
}

// Vend intenta vender quantity unidades de sel. Los errores de transacción (selección inválida,
// agotado, fondos o stock insuficientes) se devuelven sin modificar el estado de la máquina.
func (uc *VendingUseCase) Vend(sel entity.Selection, quantity decimal.Decimal) (*dto.MovementResponse, error) {
	uc.mu.Lock()
	defer uc.mu.Unlock()

	mov, err := uc.machine.Vend(sel, quantity)
	if err != nil {
		ev := uc.log.Warn().Err(err).Str("selection", sel.String()).Str("quantity", quantity.String())
		if required, ok := domain.AmountRequired(err); ok {
			ev = ev.Str("amount_required", required.String())
		}
		ev.Msg("venta rechazada")
		return nil, err
	}

	mov.ID = uuid.New().String()
	mov.CreatedAt = uc.now()
	uc.movements = append(uc.movements, mov)

	uc.log.Info().
		Str("movement_id", mov.ID).
		Str("selection", mov.Selection.String()).
		Str("quantity", mov.Quantity.String()).
		Str("total", mov.TotalPrice.String()).
		Str("balance", mov.BalanceAfter.String()).
		Msg("venta confirmada")

	return toMovementResponse(mov), nil
}

// VendByName igual que Vend pero recibe el nombre canónico de la selección.
func (uc *VendingUseCase) VendByName(name string, quantity decimal.Decimal) (*dto.MovementResponse, error) {
	sel, ok := entity.ParseSelection(name)
	if !ok {
		uc.log.Warn().Str("selection", name).Msg("selección fuera del catálogo")
		return nil, fmt.Errorf("%w: %q", domain.ErrInvalidSelection, name)
	}
	return uc.Vend(sel, quantity)
}

// ItemForSelection consulta pura; ok=false si la selección no está surtida.
func (uc *VendingUseCase) ItemForSelection(sel entity.Selection) (*dto.ItemResponse, bool) {
	uc.mu.Lock()
	defer uc.mu.Unlock()

	item, ok := uc.machine.ItemForSelection(sel)
	if !ok {
		return nil, false
	}
	return uc.toItemResponse(sel, item), true
}

// AmountDeposited saldo actual.
func (uc *VendingUseCase) AmountDeposited() decimal.Decimal {
	uc.mu.Lock()
	defer uc.mu.Unlock()
	return uc.machine.AmountDeposited()
}

// Status saldo y selecciones surtidas en orden de presentación.
func (uc *VendingUseCase) Status() *dto.MachineStatusResponse {
	uc.mu.Lock()
	defer uc.mu.Unlock()

	out := &dto.MachineStatusResponse{
		AmountDeposited: uc.machine.AmountDeposited(),
		Items:           []dto.ItemResponse{},
	}
	for _, sel := range uc.machine.Selection() {
		if item, ok := uc.machine.ItemForSelection(sel); ok {
			out.Items = append(out.Items, *uc.toItemResponse(sel, item))
		}
	}
	return out
}

// Movements ventas confirmadas en orden cronológico (solo en memoria).
func (uc *VendingUseCase) Movements() []dto.MovementResponse {
	uc.mu.Lock()
	defer uc.mu.Unlock()

	out := make([]dto.MovementResponse, 0, len(uc.movements))
	for _, m := range uc.movements {
		out = append(out, *toMovementResponse(m))
	}
	return out
}

func (uc *VendingUseCase) toItemResponse(sel entity.Selection, item entity.VendingItem) *dto.ItemResponse {
	resp := &dto.ItemResponse{
		Selection: sel.DisplayName(),
		Price:     item.Price,
		Quantity:  item.Quantity,
		InStock:   item.InStock(),
	}
	if uc.icons != nil {
		resp.IconPath = uc.icons.IconPath(sel)
	}
	return resp
}

func toMovementResponse(m entity.VendMovement) *dto.MovementResponse {
	return &dto.MovementResponse{
		ID:           m.ID,
		Selection:    m.Selection.DisplayName(),
		Quantity:     m.Quantity,
		UnitPrice:    m.UnitPrice,
		TotalPrice:   m.TotalPrice,
		BalanceAfter: m.BalanceAfter,
		StockAfter:   m.StockAfter,
		CreatedAt:    m.CreatedAt,
	}
}
