package resource

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/jhoicas/vending-machine/internal/application/inventory"
	"github.com/jhoicas/vending-machine/internal/domain"
	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

// Asegurar que Loader implementa inventory.DictionaryLoader.
var _ inventory.DictionaryLoader = (*Loader)(nil)

// Tipos de recurso soportados.
const (
	TypePlist = "plist"
	TypeJSON  = "json"
	TypeYAML  = "yaml"
	TypeYML   = "yml"
	TypeTOML  = "toml"
)

type decodeFunc func(data []byte) (any, error)

// Loader lee recursos clave/valor del bundle a un map[string]any.
// Solo lectura: no guarda estado entre llamadas.
type Loader struct {
	bundle   *Bundle
	decoders map[string]decodeFunc
}

// NewLoader construye el loader con los decodificadores por tipo.
func NewLoader(bundle *Bundle) *Loader {
	return &Loader{
		bundle: bundle,
		decoders: map[string]decodeFunc{
			TypePlist: parsePlist,
			TypeJSON:  decodeJSON,
			TypeYAML:  decodeYAML,
			TypeYML:   decodeYAML,
			TypeTOML:  decodeTOML,
		},
	}
}

// DictionaryFromFile ubica "<resource>.<ofType>" en el bundle y lo interpreta como diccionario.
// ofType se normaliza (minúsculas, sin punto inicial) tanto para elegir el decodificador como
// para buscar el archivo.
// ErrResourceNotFound si no existe; ErrMalformedResource si no se puede leer, no se puede parsear,
// la raíz no es un diccionario o el tipo no está soportado.
func (l *Loader) DictionaryFromFile(resource, ofType string) (map[string]any, error) {
	kind := strings.ToLower(strings.TrimPrefix(ofType, "."))
	decode, ok := l.decoders[kind]
	if !ok {
		return nil, fmt.Errorf("%w: tipo %q no soportado", domain.ErrMalformedResource, ofType)
	}

	path, err := l.bundle.PathForResource(resource, kind)
	if err != nil {
		return nil, err
	}
	data, err := l.bundle.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: leer %s: %v", domain.ErrMalformedResource, path, err)
	}
	value, err := decode(data)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", domain.ErrMalformedResource, path, err)
	}
	dict, ok := value.(map[string]any)
	if !ok {
		return nil, fmt.Errorf("%w: %s: la raíz es %T, se esperaba diccionario", domain.ErrMalformedResource, path, value)
	}
	return dict, nil
}

// decodeJSON conserva los números como json.Number para no perder precisión en precios.
func decodeJSON(data []byte) (any, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	var v any
	if err := dec.Decode(&v); err != nil {
		return nil, err
	}
	if _, err := dec.Token(); err != io.EOF {
		return nil, fmt.Errorf("json: contenido adicional después del documento")
	}
	return v, nil
}

func decodeYAML(data []byte) (any, error) {
	var v any
	if err := yaml.Unmarshal(data, &v); err != nil {
		return nil, err
	}
	return v, nil
}

func decodeTOML(data []byte) (any, error) {
	var v map[string]any
	if err := toml.Unmarshal(data, &v); err != nil {
		return nil, err
	}
	return v, nil
}
