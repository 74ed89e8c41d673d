package vending

import (
	"fmt"

	"github.com/jhoicas/vending-machine/internal/application/inventory"
	"github.com/jhoicas/vending-machine/internal/domain/vending"
	"github.com/jhoicas/vending-machine/pkg/logger"
	"github.com/shopspring/decimal"
)

// BootstrapConfig datos para armar la máquina al arrancar.
type BootstrapConfig struct {
	Resource        string
	Type            string
	StartingBalance decimal.Decimal
}

// Bootstrap carga y decodifica el inventario, construye la máquina y el caso de uso.
// Un error aquí es fatal: la aplicación no debe arrancar con una configuración inutilizable.
func Bootstrap(loader inventory.DictionaryLoader, cfg BootstrapConfig, icons IconResolver, log *logger.Logger) (*VendingUseCase, error) {
	inv, err := inventory.LoadInventory(loader, cfg.Resource, cfg.Type)
	if err != nil {
		return nil, err
	}
	machine, err := vending.NewVendingMachine(inv, cfg.StartingBalance)
	if err != nil {
		return nil, fmt.Errorf("crear máquina: %w", err)
	}
	uc := NewVendingUseCase(machine, icons, log)
	uc.log.Info().
		Int("items", len(inv)).
		Str("balance", cfg.StartingBalance.String()).
		Msg("máquina inicializada")
	return uc, nil
}
