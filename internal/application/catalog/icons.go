package catalog

import "github.com/jhoicas/vending-machine/internal/domain/entity"

// Recurso de ícono usado cuando una selección no tiene imagen propia.
const (
	DefaultIconName = "Default"
	IconType        = "png"
)

// ResourceLocator ubica un recurso por nombre lógico y tipo (lo implementa resource.Bundle).
type ResourceLocator interface {
	PathForResource(name, ofType string) (string, error)
}

// Icons resuelve la ruta del ícono de cada selección para la interfaz gráfica.
type Icons struct {
	locator ResourceLocator
}

// NewIcons construye el resolvedor de íconos.
func NewIcons(locator ResourceLocator) *Icons {
	return &Icons{locator: locator}
}

// IconPath ruta de "<DisplayName>.png"; si no existe, la de "Default.png"; si tampoco, "".
// Nunca falla: la ausencia de imágenes no debe impedir vender.
func (i *Icons) IconPath(sel entity.Selection) string {
	if i == nil || i.locator == nil {
		return ""
	}
	if p, err := i.locator.PathForResource(sel.DisplayName(), IconType); err == nil {
		return p
	}
	if p, err := i.locator.PathForResource(DefaultIconName, IconType); err == nil {
		return p
	}
	return ""
}
