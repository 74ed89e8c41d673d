package main

import (
	"github.com/jhoicas/vending-machine/internal/application/catalog"
	appvending "github.com/jhoicas/vending-machine/internal/application/vending"
	"github.com/jhoicas/vending-machine/internal/infrastructure/resource"
	"github.com/jhoicas/vending-machine/pkg/config"
	"github.com/jhoicas/vending-machine/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: cfg.Log.Level,
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Strs("resource_paths", cfg.Inventory.Paths).
		Msg("iniciando aplicación")

	// Bundle de recursos: inventario e íconos se buscan en los mismos directorios
	bundle := resource.NewOSBundle(cfg.Inventory.Paths...)
	loader := resource.NewLoader(bundle)
	icons := catalog.NewIcons(bundle)

	vendingUC, err := appvending.Bootstrap(loader, appvending.BootstrapConfig{
		Resource:        cfg.Inventory.Resource,
		Type:            cfg.Inventory.Type,
		StartingBalance: cfg.Machine.StartingBalance,
	}, icons, log)
	if err != nil {
		log.Fatal().Err(err).
			Str("resource", cfg.Inventory.Resource).
			Str("type", cfg.Inventory.Type).
			Msg("inventario inutilizable")
	}

	status := vendingUC.Status()
	for _, item := range status.Items {
		log.Info().
			Str("selection", item.Selection).
			Str("price", item.Price.String()).
			Str("quantity", item.Quantity.String()).
			Bool("in_stock", item.InStock).
			Str("icon", item.IconPath).
			Msg("existencia")
	}
	log.Info().Str("amount_deposited", status.AmountDeposited.String()).Msg("máquina lista")
}
