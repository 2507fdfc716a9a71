package animals

import "context"

type Repository interface {
	Create(ctx context.Context, a Animal) error
	GetByID(ctx context.Context, id string) (Animal, error)

	// List y Count aplican el mismo scope: los listados paginados y su
	// total tienen que coincidir siempre.
	List(ctx context.Context, scope Scope, skip, limit int) ([]Animal, error)
	Count(ctx context.Context, scope Scope) (int, error)

	Update(ctx context.Context, a Animal) error
	Delete(ctx context.Context, id string) error

	// AddGalleryURL agrega al final de la galería solo si el count actual
	// es menor a max, chequeado atómicamente en el store (evita que dos
	// appends concurrentes pasen ambos el límite). ErrGalleryFull si no
	// hay lugar.
	AddGalleryURL(ctx context.Context, animalID, url string, max int) error

	// RemoveGalleryURL saca la URL de la galería. ErrNotFound si no es
	// miembro.
	RemoveGalleryURL(ctx context.Context, animalID, url string) error
}
