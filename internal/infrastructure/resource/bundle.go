package resource

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/jhoicas/vending-machine/internal/domain"
	"github.com/spf13/afero"
)

// Bundle ubica recursos de la aplicación por nombre lógico y tipo dentro de una lista
// ordenada de directorios. Reemplaza al bundle de la aplicación gráfica.
type Bundle struct {
	fs    afero.Fs
	paths []string
}

// NewBundle construye el bundle sobre fs. Sin paths se busca solo en el directorio actual.
func NewBundle(fs afero.Fs, paths ...string) *Bundle {
	if len(paths) == 0 {
		paths = []string{"."}
	}
	return &Bundle{fs: fs, paths: paths}
}

// NewOSBundle bundle sobre el sistema de archivos real.
func NewOSBundle(paths ...string) *Bundle {
	return NewBundle(afero.NewOsFs(), paths...)
}

// PathForResource devuelve la ruta del primer "<dir>/<name>.<ofType>" que exista como archivo regular.
func (b *Bundle) PathForResource(name, ofType string) (string, error) {
	if name == "" {
		return "", fmt.Errorf("%w: nombre vacío", domain.ErrResourceNotFound)
	}
	file := name
	if ofType != "" {
		file = name + "." + strings.TrimPrefix(ofType, ".")
	}
	for _, dir := range b.paths {
		p := filepath.Join(dir, file)
		info, err := b.fs.Stat(p)
		if err != nil || info.IsDir() {
			continue
		}
		return p, nil
	}
	return "", fmt.Errorf("%w: %s en %v", domain.ErrResourceNotFound, file, b.paths)
}

// ReadFile lee el contenido completo de path.
func (b *Bundle) ReadFile(path string) ([]byte, error) {
	return afero.ReadFile(b.fs, path)
}
