package animals

import (
	"context"
	"errors"
	"fmt"
	"io"
	"path"
	"strings"
	"time"

	"github.com/google/uuid"

	"openadopt/internal/platform/logger"
	"openadopt/internal/ports/blob"
)

var (
	ErrUploadRejected  = errors.New("upload rejected")
	ErrURLNotInGallery = errors.New("url not in gallery")
)

// allowedUploadTypes es la allow-list de MIME types para foto principal
// y galería.
var allowedUploadTypes = map[string]struct{}{
	"image/jpeg":      {},
	"image/jpg":       {},
	"image/png":       {},
	"image/webp":      {},
	"image/gif":       {},
	"video/mp4":       {},
	"video/mpeg":      {},
	"video/quicktime": {},
}

// Media orquesta el ciclo de vida de los binarios de una ficha: foto
// principal (reemplazo + garbage collect del blob anterior), galería
// acotada y purge al borrar la ficha.
type Media struct {
	repo    Repository
	storage blob.Storage
	log     logger.Logger
	now     func() time.Time

	maxBytes   int64
	maxGallery int
}

func NewMedia(repo Repository, storage blob.Storage, log logger.Logger, maxBytes int64, maxGallery int) *Media {
	if maxBytes <= 0 {
		maxBytes = 6 * 1024 * 1024
	}
	if maxGallery <= 0 {
		maxGallery = 10
	}
	return &Media{
		repo:       repo,
		storage:    storage,
		log:        log,
		now:        time.Now,
		maxBytes:   maxBytes,
		maxGallery: maxGallery,
	}
}

func (m *Media) MaxGallery() int { return m.maxGallery }
func (m *Media) MaxBytes() int64 { return m.maxBytes }

// Upload describe el archivo entrante ya abierto.
type Upload struct {
	Reader      io.Reader
	Size        int64
	ContentType string
	Filename    string
}

// SetPrimaryPhoto valida, sube y commitea la nueva URL como foto
// principal. Recién después del commit intenta borrar el blob anterior:
// si ese delete falla solo se loguea (el blob queda huérfano, se recupera
// out-of-band).
func (m *Media) SetPrimaryPhoto(ctx context.Context, a Animal, up Upload) (string, error) {
	if err := m.validate(up); err != nil {
		return "", err
	}

	url, err := m.storage.Upload(ctx, up.Reader, up.Size, m.storagePath(a.ID, up.Filename))
	if err != nil {
		return "", fmt.Errorf("upload primary photo: %w", err)
	}

	previous := a.PrimaryPhotoURL
	a.PrimaryPhotoURL = url
	a.UpdatedAt = m.now()
	if err := m.repo.Update(ctx, a); err != nil {
		return "", fmt.Errorf("persist primary photo: %w", err)
	}

	if previous != "" {
		if err := m.storage.Delete(ctx, previous); err != nil {
			m.log.Warn("failed to delete previous primary photo", map[string]any{
				"animal_id": a.ID,
				"url":       previous,
				"error":     err.Error(),
			})
		}
	}

	return url, nil
}

// AddGalleryFile valida y sube el archivo, y apendea la URL a la galería.
// Si la galería ya está llena no sube nada. El append re-chequea el
// límite atómicamente en el store; si perdió la carrera contra otro
// append concurrente, el blob recién subido se limpia best-effort.
func (m *Media) AddGalleryFile(ctx context.Context, a Animal, up Upload) (string, error) {
	if err := m.validate(up); err != nil {
		return "", err
	}
	if len(a.ExtraPhotos) >= m.maxGallery {
		return "", ErrGalleryFull
	}

	url, err := m.storage.Upload(ctx, up.Reader, up.Size, m.storagePath(a.ID, up.Filename))
	if err != nil {
		return "", fmt.Errorf("upload gallery file: %w", err)
	}

	if err := m.repo.AddGalleryURL(ctx, a.ID, url, m.maxGallery); err != nil {
		if cleanupErr := m.storage.Delete(ctx, url); cleanupErr != nil {
			m.log.Warn("failed to clean up blob after append failure", map[string]any{
				"animal_id": a.ID,
				"url":       url,
				"error":     cleanupErr.Error(),
			})
		}
		return "", err
	}

	return url, nil
}

// RemoveGalleryFile borra el blob y saca la URL de la galería. A
// diferencia de los cleanups best-effort, acá el delete es iniciado por
// el usuario y su fallo se propaga.
func (m *Media) RemoveGalleryFile(ctx context.Context, a Animal, url string) error {
	member := false
	for _, u := range a.ExtraPhotos {
		if u == url {
			member = true
			break
		}
	}
	if !member {
		return ErrURLNotInGallery
	}

	// Blob ya inexistente = ya borrado: pasa cuando un intento anterior
	// borró el binario pero falló antes de sacar la fila. El remove tiene
	// que poder completarse en el retry.
	if err := m.storage.Delete(ctx, url); err != nil && !errors.Is(err, blob.ErrNotFound) {
		return fmt.Errorf("delete gallery blob: %w", err)
	}

	if err := m.repo.RemoveGalleryURL(ctx, a.ID, url); err != nil {
		return err
	}
	return nil
}

// PurgeAll borra el namespace completo de storage de una ficha ya
// eliminada. Best-effort: el registro ya no existe y los blobs sobrantes
// son un costo residual aceptado.
func (m *Media) PurgeAll(ctx context.Context, animalID string) {
	if err := m.storage.DeleteNamespace(ctx, "animals/"+animalID); err != nil {
		m.log.Warn("failed to purge media namespace", map[string]any{
			"animal_id": animalID,
			"error":     err.Error(),
		})
	}
}

func (m *Media) validate(up Upload) error {
	ct := strings.ToLower(strings.TrimSpace(up.ContentType))
	if _, ok := allowedUploadTypes[ct]; !ok {
		return fmt.Errorf("%w: content type %q not allowed", ErrUploadRejected, up.ContentType)
	}
	if up.Size <= 0 || up.Size > m.maxBytes {
		return fmt.Errorf("%w: size %d out of bounds (max %d)", ErrUploadRejected, up.Size, m.maxBytes)
	}
	return nil
}

// storagePath agrupa todos los blobs de una ficha bajo animals/{id}/files
// para que el purge pueda ser un solo delete de namespace.
func (m *Media) storagePath(animalID, filename string) string {
	ext := strings.ToLower(path.Ext(filename))
	return fmt.Sprintf("animals/%s/files/%s%s", animalID, uuid.NewString(), ext)
}
