package postgres

import (
	"context"
	"database/sql"
	"strings"

	"openadopt/internal/domain/animals"
)

type AnimalsRepo struct {
	db *sql.DB
}

func NewAnimalsRepo(db *sql.DB) *AnimalsRepo {
	return &AnimalsRepo{db: db}
}

const animalColumns = `
	id, created_by_id,
	name, species, breed, size,
	age, age_unit, gender,
	adoption_status, current_location,
	description, medical_notes, behavioral_notes,
	primary_photo_url,
	created_at, updated_at`

func (r *AnimalsRepo) Create(ctx context.Context, a animals.Animal) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO animals (`+animalColumns+`
		) VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12,$13,$14,$15,$16,$17)
	`,
		a.ID,
		a.CreatedByID,
		a.Name,
		string(a.Species),
		a.Breed,
		string(a.Size),
		a.Age,
		string(a.AgeUnit),
		string(a.Gender),
		string(a.AdoptionStatus),
		string(a.CurrentLocation),
		a.Description,
		a.MedicalNotes,
		a.BehavioralNotes,
		a.PrimaryPhotoURL,
		a.CreatedAt,
		a.UpdatedAt,
	)
	return err
}

func (r *AnimalsRepo) GetByID(ctx context.Context, id string) (animals.Animal, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return animals.Animal{}, animals.ErrNotFound
	}

	row := r.db.QueryRowContext(ctx, `
		SELECT `+animalColumns+`
		FROM animals
		WHERE id = $1
	`, id)

	a, err := scanAnimal(row)
	if err != nil {
		return animals.Animal{}, err
	}

	a.ExtraPhotos, err = r.loadGallery(ctx, a.ID)
	if err != nil {
		return animals.Animal{}, err
	}
	return a, nil
}

func (r *AnimalsRepo) List(ctx context.Context, scope animals.Scope, skip, limit int) ([]animals.Animal, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT `+animalColumns+`
		FROM animals
		WHERE ($1 = '' OR created_by_id = $1)
		ORDER BY created_at ASC, id ASC
		OFFSET $2 LIMIT $3
	`, scope.OwnerID, skip, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]animals.Animal, 0)
	for rows.Next() {
		a, err := scanAnimal(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, a)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	// La galería se carga por ficha; las páginas están acotadas a 100.
	for i := range out {
		out[i].ExtraPhotos, err = r.loadGallery(ctx, out[i].ID)
		if err != nil {
			return nil, err
		}
	}
	return out, nil
}

func (r *AnimalsRepo) Count(ctx context.Context, scope animals.Scope) (int, error) {
	var total int
	err := r.db.QueryRowContext(ctx, `
		SELECT COUNT(*)
		FROM animals
		WHERE ($1 = '' OR created_by_id = $1)
	`, scope.OwnerID).Scan(&total)
	return total, err
}

func (r *AnimalsRepo) Update(ctx context.Context, a animals.Animal) error {
	res, err := r.db.ExecContext(ctx, `
		UPDATE animals
		SET
			name = $2,
			species = $3,
			breed = $4,
			size = $5,
			age = $6,
			age_unit = $7,
			gender = $8,
			adoption_status = $9,
			current_location = $10,
			description = $11,
			medical_notes = $12,
			behavioral_notes = $13,
			primary_photo_url = $14,
			updated_at = $15
		WHERE id = $1
	`,
		a.ID,
		a.Name,
		string(a.Species),
		a.Breed,
		string(a.Size),
		a.Age,
		string(a.AgeUnit),
		string(a.Gender),
		string(a.AdoptionStatus),
		string(a.CurrentLocation),
		a.Description,
		a.MedicalNotes,
		a.BehavioralNotes,
		a.PrimaryPhotoURL,
		a.UpdatedAt,
	)
	if err != nil {
		return err
	}
	n, _ := res.RowsAffected()
	if n == 0 {
		return animals.ErrNotFound
	}
	return nil
}

func (r *AnimalsRepo) Delete(ctx context.Context, id string) error {
	// animal_photos cae por ON DELETE CASCADE (ver schema.sql).
	res, err := r.db.ExecContext(ctx, `DELETE FROM animals WHERE id = $1`, id)
	if err != nil {
		return err
	}
	n, _ := res.RowsAffected()
	if n == 0 {
		return animals.ErrNotFound
	}
	return nil
}

// AddGalleryURL apendea bajo lock de la fila padre, para que dos appends
// concurrentes no puedan pasar ambos el chequeo de capacidad.
func (r *AnimalsRepo) AddGalleryURL(ctx context.Context, animalID, url string, max int) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback() }()

	var id string
	err = tx.QueryRowContext(ctx, `SELECT id FROM animals WHERE id = $1 FOR UPDATE`, animalID).Scan(&id)
	if err != nil {
		if err == sql.ErrNoRows {
			return animals.ErrNotFound
		}
		return err
	}

	res, err := tx.ExecContext(ctx, `
		INSERT INTO animal_photos (animal_id, url, position)
		SELECT $1, $2, COALESCE(MAX(position), -1) + 1
		FROM animal_photos
		WHERE animal_id = $1
		HAVING COUNT(*) < $3
	`, animalID, url, max)
	if err != nil {
		return err
	}
	n, _ := res.RowsAffected()
	if n == 0 {
		return animals.ErrGalleryFull
	}

	return tx.Commit()
}

func (r *AnimalsRepo) RemoveGalleryURL(ctx context.Context, animalID, url string) error {
	res, err := r.db.ExecContext(ctx, `
		DELETE FROM animal_photos
		WHERE animal_id = $1 AND url = $2
	`, animalID, url)
	if err != nil {
		return err
	}
	n, _ := res.RowsAffected()
	if n == 0 {
		return animals.ErrNotFound
	}
	return nil
}

func (r *AnimalsRepo) loadGallery(ctx context.Context, animalID string) ([]string, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT url
		FROM animal_photos
		WHERE animal_id = $1
		ORDER BY position ASC
	`, animalID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	urls := make([]string, 0)
	for rows.Next() {
		var u string
		if err := rows.Scan(&u); err != nil {
			return nil, err
		}
		urls = append(urls, u)
	}
	return urls, rows.Err()
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanAnimal(row rowScanner) (animals.Animal, error) {
	var a animals.Animal
	var species, size, ageUnit, gender, status, location string
	if err := row.Scan(
		&a.ID,
		&a.CreatedByID,
		&a.Name,
		&species,
		&a.Breed,
		&size,
		&a.Age,
		&ageUnit,
		&gender,
		&status,
		&location,
		&a.Description,
		&a.MedicalNotes,
		&a.BehavioralNotes,
		&a.PrimaryPhotoURL,
		&a.CreatedAt,
		&a.UpdatedAt,
	); err != nil {
		if err == sql.ErrNoRows {
			return animals.Animal{}, animals.ErrNotFound
		}
		return animals.Animal{}, err
	}

	a.Species = animals.Species(species)
	a.Size = animals.Size(size)
	a.AgeUnit = animals.AgeUnit(ageUnit)
	a.Gender = animals.Gender(gender)
	a.AdoptionStatus = animals.AdoptionStatus(status)
	a.CurrentLocation = animals.Location(location)
	return a, nil
}
