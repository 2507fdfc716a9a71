package animals

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
)

var (
	ErrInvalidInput = errors.New("invalid input")
	ErrNotFound     = errors.New("animal not found")
	ErrGalleryFull  = errors.New("gallery is full")
)

type Service struct {
	repo Repository
	now  func() time.Time

	defaultPageSize int
	maxPageSize     int
}

func NewService(repo Repository, defaultPageSize, maxPageSize int) *Service {
	if defaultPageSize <= 0 {
		defaultPageSize = 50
	}
	if maxPageSize <= 0 {
		maxPageSize = 100
	}
	return &Service{
		repo:            repo,
		now:             time.Now,
		defaultPageSize: defaultPageSize,
		maxPageSize:     maxPageSize,
	}
}

type CreateInput struct {
	Name            string
	Species         Species
	Breed           string
	Size            Size
	Age             int
	AgeUnit         AgeUnit
	Gender          Gender
	AdoptionStatus  AdoptionStatus
	CurrentLocation Location
	Description     string
	MedicalNotes    string
	BehavioralNotes string
	PrimaryPhotoURL string
}

func (s *Service) Create(ctx context.Context, ownerID string, in CreateInput) (Animal, error) {
	if strings.TrimSpace(ownerID) == "" {
		return Animal{}, ErrInvalidInput
	}
	if !validName(in.Name) {
		return Animal{}, ErrInvalidInput
	}
	if !validSpecies(in.Species) || !validSize(in.Size) {
		return Animal{}, ErrInvalidInput
	}
	if !validAge(in.Age) || !validAgeUnit(in.AgeUnit) || !validGender(in.Gender) {
		return Animal{}, ErrInvalidInput
	}
	if !validLocation(in.CurrentLocation) {
		return Animal{}, ErrInvalidInput
	}
	if !validPhotoURL(in.PrimaryPhotoURL) {
		return Animal{}, ErrInvalidInput
	}

	status := in.AdoptionStatus
	if status == "" {
		status = StatusAvailable
	}
	if !validAdoptionStatus(status) {
		return Animal{}, ErrInvalidInput
	}

	now := s.now()
	a := Animal{
		ID:              uuid.NewString(),
		CreatedByID:     ownerID,
		Name:            strings.TrimSpace(in.Name),
		Species:         in.Species,
		Breed:           strings.TrimSpace(in.Breed),
		Size:            in.Size,
		Age:             in.Age,
		AgeUnit:         in.AgeUnit,
		Gender:          in.Gender,
		AdoptionStatus:  status,
		CurrentLocation: in.CurrentLocation,
		Description:     in.Description,
		MedicalNotes:    in.MedicalNotes,
		BehavioralNotes: in.BehavioralNotes,
		PrimaryPhotoURL: in.PrimaryPhotoURL,
		ExtraPhotos:     []string{},
		CreatedAt:       now,
		UpdatedAt:       now,
	}

	if err := s.repo.Create(ctx, a); err != nil {
		return Animal{}, err
	}
	return a, nil
}

// GetByID es un lookup sin scoping: el authz por ownership es un paso
// separado del caller (ver policy.go).
func (s *Service) GetByID(ctx context.Context, id string) (Animal, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return Animal{}, ErrNotFound
	}
	return s.repo.GetByID(ctx, id)
}

// PageBounds normaliza la paginación pedida: skip negativo se corrige a
// 0; limit <= 0 usa el default y nunca supera el máximo configurado.
func (s *Service) PageBounds(skip, limit int) (int, int) {
	if skip < 0 {
		skip = 0
	}
	if limit <= 0 {
		limit = s.defaultPageSize
	}
	if limit > s.maxPageSize {
		limit = s.maxPageSize
	}
	return skip, limit
}

// List devuelve la página pedida y el total, ambos bajo el mismo scope.
func (s *Service) List(ctx context.Context, scope Scope, skip, limit int) ([]Animal, int, error) {
	skip, limit = s.PageBounds(skip, limit)

	total, err := s.repo.Count(ctx, scope)
	if err != nil {
		return nil, 0, err
	}

	items, err := s.repo.List(ctx, scope, skip, limit)
	if err != nil {
		return nil, 0, err
	}
	return items, total, nil
}

// UpdateInput son campos PATCH: nil = no tocar.
type UpdateInput struct {
	Name            *string
	Species         *Species
	Breed           *string
	Size            *Size
	Age             *int
	AgeUnit         *AgeUnit
	Gender          *Gender
	AdoptionStatus  *AdoptionStatus
	CurrentLocation *Location
	Description     *string
	MedicalNotes    *string
	BehavioralNotes *string
	PrimaryPhotoURL *string
}

// Update aplica solo los campos presentes, re-validando cada uno.
// No hay validación cruzada entre campos (p.ej. species/size): el negocio
// no define reglas de combinación.
func (s *Service) Update(ctx context.Context, a Animal, in UpdateInput) (Animal, error) {
	if in.Name != nil {
		if !validName(*in.Name) {
			return Animal{}, ErrInvalidInput
		}
		a.Name = strings.TrimSpace(*in.Name)
	}
	if in.Species != nil {
		if !validSpecies(*in.Species) {
			return Animal{}, ErrInvalidInput
		}
		a.Species = *in.Species
	}
	if in.Breed != nil {
		a.Breed = strings.TrimSpace(*in.Breed)
	}
	if in.Size != nil {
		if !validSize(*in.Size) {
			return Animal{}, ErrInvalidInput
		}
		a.Size = *in.Size
	}
	if in.Age != nil {
		if !validAge(*in.Age) {
			return Animal{}, ErrInvalidInput
		}
		a.Age = *in.Age
	}
	if in.AgeUnit != nil {
		if !validAgeUnit(*in.AgeUnit) {
			return Animal{}, ErrInvalidInput
		}
		a.AgeUnit = *in.AgeUnit
	}
	if in.Gender != nil {
		if !validGender(*in.Gender) {
			return Animal{}, ErrInvalidInput
		}
		a.Gender = *in.Gender
	}
	if in.AdoptionStatus != nil {
		if !validAdoptionStatus(*in.AdoptionStatus) {
			return Animal{}, ErrInvalidInput
		}
		a.AdoptionStatus = *in.AdoptionStatus
	}
	if in.CurrentLocation != nil {
		if !validLocation(*in.CurrentLocation) {
			return Animal{}, ErrInvalidInput
		}
		a.CurrentLocation = *in.CurrentLocation
	}
	if in.Description != nil {
		a.Description = *in.Description
	}
	if in.MedicalNotes != nil {
		a.MedicalNotes = *in.MedicalNotes
	}
	if in.BehavioralNotes != nil {
		a.BehavioralNotes = *in.BehavioralNotes
	}
	if in.PrimaryPhotoURL != nil {
		if !validPhotoURL(*in.PrimaryPhotoURL) {
			return Animal{}, ErrInvalidInput
		}
		a.PrimaryPhotoURL = *in.PrimaryPhotoURL
	}

	a.UpdatedAt = s.now()
	if err := s.repo.Update(ctx, a); err != nil {
		return Animal{}, err
	}
	return s.repo.GetByID(ctx, a.ID)
}

// Delete borra solo el registro; el purge de los binarios asociados lo
// orquesta Media después (no necesitan ser atómicos entre sí).
func (s *Service) Delete(ctx context.Context, a Animal) error {
	return s.repo.Delete(ctx, a.ID)
}
