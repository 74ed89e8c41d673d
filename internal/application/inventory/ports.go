package inventory

// DictionaryLoader lee un recurso clave/valor (por nombre lógico y tipo) a un mapa genérico.
// Debe devolver domain.ErrResourceNotFound si el recurso no existe y domain.ErrMalformedResource
// si no se puede interpretar como diccionario.
type DictionaryLoader interface {
	DictionaryFromFile(resource, ofType string) (map[string]any, error)
}
