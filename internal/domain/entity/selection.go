package entity

// Selection identificador de producto del catálogo cerrado. El valor string es el nombre canónico
// usado como clave en el archivo de configuración y en los recursos de íconos.
type Selection string

// Catálogo de productos.
const (
	SelectionGum         Selection = "Gum"
	SelectionSportsDrink Selection = "SportsDrink"
	SelectionFruitJuice  Selection = "FruitJuice"
	SelectionWater       Selection = "Water"
	SelectionPopTart     Selection = "PopTart"
	SelectionCandyBar    Selection = "CandyBar"
	SelectionWrap        Selection = "Wrap"
	SelectionSandwich    Selection = "Sandwich"
	SelectionCookie      Selection = "Cookie"
	SelectionChips       Selection = "Chips"
	SelectionDietSoda    Selection = "DietSoda"
	SelectionSoda        Selection = "Soda"
)

// displayOrder orden fijo en que la interfaz muestra las selecciones.
var displayOrder = [...]Selection{
	SelectionSoda,
	SelectionDietSoda,
	SelectionChips,
	SelectionCookie,
	SelectionSandwich,
	SelectionWrap,
	SelectionCandyBar,
	SelectionPopTart,
	SelectionWater,
	SelectionFruitJuice,
	SelectionSportsDrink,
	SelectionGum,
}

// DisplaySelections devuelve una copia del orden de presentación (todas las selecciones del catálogo).
func DisplaySelections() []Selection {
	out := make([]Selection, len(displayOrder))
	copy(out, displayOrder[:])
	return out
}

// ParseSelection busca el nombre canónico exacto (sensible a mayúsculas).
func ParseSelection(name string) (Selection, bool) {
	s := Selection(name)
	return s, s.Valid()
}

// Valid indica si la selección pertenece al catálogo.
func (s Selection) Valid() bool {
	for _, v := range displayOrder {
		if v == s {
			return true
		}
	}
	return false
}

// DisplayName nombre canónico; también es el nombre del recurso de ícono.
func (s Selection) DisplayName() string {
	return string(s)
}

func (s Selection) String() string {
	return string(s)
}
