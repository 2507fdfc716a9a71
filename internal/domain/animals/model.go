package animals

import (
	"strings"
	"time"
)

// Species define las especies soportadas.
// @Enum dog, cat, other
type Species string

const (
	SpeciesDog   Species = "dog"
	SpeciesCat   Species = "cat"
	SpeciesOther Species = "other"
)

// Size es opcional (vacío = sin dato).
// @Enum small, medium, large
type Size string

const (
	SizeSmall  Size = "small"
	SizeMedium Size = "medium"
	SizeLarge  Size = "large"
)

// AgeUnit define la unidad de la edad.
// @Enum months, years
type AgeUnit string

const (
	AgeMonths AgeUnit = "months"
	AgeYears  AgeUnit = "years"
)

// Gender define el sexo del animal.
// @Enum male, female
type Gender string

const (
	GenderMale   Gender = "male"
	GenderFemale Gender = "female"
)

// AdoptionStatus define el estado de adopción.
// @Enum available, adopted, on_hold
type AdoptionStatus string

const (
	StatusAvailable AdoptionStatus = "available"
	StatusAdopted   AdoptionStatus = "adopted"
	StatusOnHold    AdoptionStatus = "on_hold"
)

// Location es opcional (vacío = sin dato).
// @Enum fostered, shelter, stray
type Location string

const (
	LocationFostered Location = "fostered"
	LocationShelter  Location = "shelter"
	LocationStray    Location = "stray"
)

// MaxAge es el tope de sanidad para la edad, en la unidad que sea.
const MaxAge = 50

// Animal es una ficha de animal en adopción. CreatedByID es el admin
// dueño de la ficha y no cambia nunca después del alta.
type Animal struct {
	ID          string
	CreatedByID string

	Name    string
	Species Species
	Breed   string
	Size    Size
	Age     int
	AgeUnit AgeUnit
	Gender  Gender

	AdoptionStatus  AdoptionStatus
	CurrentLocation Location

	Description     string
	MedicalNotes    string
	BehavioralNotes string

	// PrimaryPhotoURL vacío = sin foto principal.
	PrimaryPhotoURL string
	// ExtraPhotos es la galería ordenada, acotada por config.
	ExtraPhotos []string

	CreatedAt time.Time
	UpdatedAt time.Time
}

func validSpecies(s Species) bool {
	switch s {
	case SpeciesDog, SpeciesCat, SpeciesOther:
		return true
	}
	return false
}

func validSize(s Size) bool {
	switch s {
	case "", SizeSmall, SizeMedium, SizeLarge:
		return true
	}
	return false
}

func validAgeUnit(u AgeUnit) bool {
	return u == AgeMonths || u == AgeYears
}

func validGender(g Gender) bool {
	return g == GenderMale || g == GenderFemale
}

func validAdoptionStatus(s AdoptionStatus) bool {
	switch s {
	case StatusAvailable, StatusAdopted, StatusOnHold:
		return true
	}
	return false
}

func validLocation(l Location) bool {
	switch l {
	case "", LocationFostered, LocationShelter, LocationStray:
		return true
	}
	return false
}

func validName(name string) bool {
	return len(strings.TrimSpace(name)) >= 2
}

func validAge(age int) bool {
	return age > 0 && age <= MaxAge
}

// validPhotoURL exige URLs absolutas http(s) cuando el campo viene seteado.
func validPhotoURL(url string) bool {
	if url == "" {
		return true
	}
	return strings.HasPrefix(url, "http://") || strings.HasPrefix(url, "https://")
}
