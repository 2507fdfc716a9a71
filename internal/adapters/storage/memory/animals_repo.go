package memory

import (
	"context"
	"errors"
	"sort"
	"strings"
	"sync"

	"openadopt/internal/domain/animals"
)

type animalsRepo struct {
	mu      sync.RWMutex
	byID    map[string]animals.Animal
	gallery map[string][]string
}

func NewAnimalsRepo() animals.Repository {
	return &animalsRepo{
		byID:    make(map[string]animals.Animal),
		gallery: make(map[string][]string),
	}
}

func (r *animalsRepo) Create(ctx context.Context, a animals.Animal) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if strings.TrimSpace(a.ID) == "" {
		return errors.New("animal id required")
	}
	if _, exists := r.byID[a.ID]; exists {
		return errors.New("animal already exists")
	}

	r.byID[a.ID] = a
	return nil
}

func (r *animalsRepo) GetByID(ctx context.Context, id string) (animals.Animal, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	a, ok := r.byID[id]
	if !ok {
		return animals.Animal{}, animals.ErrNotFound
	}
	a.ExtraPhotos = append([]string(nil), r.gallery[id]...)
	return a, nil
}

func (r *animalsRepo) List(ctx context.Context, scope animals.Scope, skip, limit int) ([]animals.Animal, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := r.scoped(scope)

	if skip >= len(out) {
		return []animals.Animal{}, nil
	}
	out = out[skip:]
	if limit > 0 && limit < len(out) {
		out = out[:limit]
	}

	for i := range out {
		out[i].ExtraPhotos = append([]string(nil), r.gallery[out[i].ID]...)
	}
	return out, nil
}

func (r *animalsRepo) Count(ctx context.Context, scope animals.Scope) (int, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return len(r.scoped(scope)), nil
}

func (r *animalsRepo) Update(ctx context.Context, a animals.Animal) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.byID[a.ID]; !exists {
		return animals.ErrNotFound
	}
	// La galería se gestiona por Add/RemoveGalleryURL, no por Update.
	a.ExtraPhotos = nil
	r.byID[a.ID] = a
	return nil
}

func (r *animalsRepo) Delete(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.byID[id]; !exists {
		return animals.ErrNotFound
	}
	delete(r.byID, id)
	delete(r.gallery, id)
	return nil
}

// AddGalleryURL replica la semántica del append condicional del store
// SQL: chequeo de capacidad y append bajo el mismo lock.
func (r *animalsRepo) AddGalleryURL(ctx context.Context, animalID, url string, max int) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.byID[animalID]; !exists {
		return animals.ErrNotFound
	}
	if len(r.gallery[animalID]) >= max {
		return animals.ErrGalleryFull
	}
	r.gallery[animalID] = append(r.gallery[animalID], url)
	return nil
}

func (r *animalsRepo) RemoveGalleryURL(ctx context.Context, animalID, url string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	urls := r.gallery[animalID]
	for i, u := range urls {
		if u == url {
			r.gallery[animalID] = append(urls[:i], urls[i+1:]...)
			return nil
		}
	}
	return animals.ErrNotFound
}

// scoped devuelve las fichas visibles bajo el scope, ordenadas por
// created_at asc (consistencia con el adapter SQL).
func (r *animalsRepo) scoped(scope animals.Scope) []animals.Animal {
	out := make([]animals.Animal, 0)
	for _, a := range r.byID {
		if scope.Matches(a) {
			out = append(out, a)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].CreatedAt.Equal(out[j].CreatedAt) {
			return out[i].ID < out[j].ID
		}
		return out[i].CreatedAt.Before(out[j].CreatedAt)
	})
	return out
}
