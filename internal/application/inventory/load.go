package inventory

import (
	"fmt"

	"github.com/jhoicas/vending-machine/internal/domain/entity"
)

// LoadInventory lee el recurso con loader y lo decodifica. Cualquier error es fatal para el arranque.
func LoadInventory(loader DictionaryLoader, resource, ofType string) (entity.Inventory, error) {
	dict, err := loader.DictionaryFromFile(resource, ofType)
	if err != nil {
		return nil, fmt.Errorf("cargar %s.%s: %w", resource, ofType, err)
	}
	inv, err := InventoryFromDictionary(dict)
	if err != nil {
		return nil, fmt.Errorf("decodificar %s.%s: %w", resource, ofType, err)
	}
	return inv, nil
}
