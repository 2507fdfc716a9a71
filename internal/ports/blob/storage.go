package blob

import (
	"context"
	"errors"
	"io"
)

var (
	// ErrNotFound indica que la URL no refiere a ningún blob almacenado.
	ErrNotFound = errors.New("blob not found")
)

// Storage abstrae el backend de archivos binarios. Las URLs que devuelve
// Upload son públicas y durables; el resto de operaciones reciben esas
// mismas URLs (no paths internos).
type Storage interface {
	// Upload escribe el contenido bajo el path lógico indicado, creando
	// cualquier estructura intermedia, y devuelve la URL pública.
	Upload(ctx context.Context, r io.Reader, size int64, path string) (string, error)

	// Delete borra el blob referido por la URL. ErrNotFound si no existe.
	Delete(ctx context.Context, url string) error

	// DeleteNamespace borra recursivamente todo bajo un prefijo lógico.
	// Si el prefijo no existe, no es un error.
	DeleteNamespace(ctx context.Context, prefix string) error

	// Exists reporta si la URL refiere a un blob almacenado.
	Exists(ctx context.Context, url string) (bool, error)
}
