package config

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
	"github.com/spf13/viper"
)

// Config agrupa la configuración de la aplicación (lectura vía Viper desde env y opcionalmente archivo).
type Config struct {
	App       AppConfig
	Log       LogConfig
	Inventory InventoryConfig
	Machine   MachineConfig
}

// AppConfig configuración general de la aplicación.
type AppConfig struct {
	Env  string // development, staging, production
	Name string
}

// LogConfig nivel del logger estructurado.
type LogConfig struct {
	Level string
}

// InventoryConfig ubicación del recurso de inventario que se carga una sola vez al arrancar.
type InventoryConfig struct {
	Resource string   // nombre lógico, sin extensión
	Type     string   // plist, json, yaml, yml, toml
	Paths    []string // directorios de búsqueda en orden
}

// MachineConfig parámetros de inicialización de la máquina.
type MachineConfig struct {
	StartingBalance decimal.Decimal
}

// Load lee la configuración desde variables de entorno (y opcionalmente desde archivo).
// Las env vars tienen prioridad. Nombres esperados: APP_ENV, LOG_LEVEL, INVENTORY_RESOURCE,
// INVENTORY_TYPE, RESOURCE_PATHS, STARTING_BALANCE.
func Load() (*Config, error) {
	v := viper.New()

	// Opcional: archivo de configuración (config.env en . o ./config)
	v.SetConfigName("config")
	v.SetConfigType("env")
	v.AddConfigPath(".")
	v.AddConfigPath("./config")
	_ = v.ReadInConfig() // ignoramos error si no existe

	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	return fromViper(v)
}

func fromViper(v *viper.Viper) (*Config, error) {
	balanceRaw := getString(v, "STARTING_BALANCE", "10.0")
	balance, err := decimal.NewFromString(strings.TrimSpace(balanceRaw))
	if err != nil {
		return nil, fmt.Errorf("config: STARTING_BALANCE %q: %w", balanceRaw, err)
	}
	if balance.IsNegative() {
		return nil, fmt.Errorf("config: STARTING_BALANCE no puede ser negativo (%s)", balance)
	}

	cfg := &Config{
		App: AppConfig{
			Env:  getString(v, "APP_ENV", "development"),
			Name: getString(v, "APP_NAME", "vending-machine"),
		},
		Log: LogConfig{
			Level: getString(v, "LOG_LEVEL", "info"),
		},
		Inventory: InventoryConfig{
			Resource: getString(v, "INVENTORY_RESOURCE", "VendingInventory"),
			Type:     getString(v, "INVENTORY_TYPE", "plist"),
			Paths:    splitList(getString(v, "RESOURCE_PATHS", "./resources")),
		},
		Machine: MachineConfig{
			StartingBalance: balance,
		},
	}
	return cfg, nil
}

func getString(v *viper.Viper, key, def string) string {
	if v.IsSet(key) {
		return v.GetString(key)
	}
	return def
}

// splitList separa por comas y descarta elementos vacíos.
func splitList(s string) []string {
	var out []string
	for _, p := range strings.Split(s, ",") {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
