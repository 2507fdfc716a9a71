package animals

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"openadopt/internal/domain/users"

	"github.com/go-chi/chi/v5"
)

func RegisterRoutes(r chi.Router, svc *Service, media *Media) {
	r.Route("/admin/animals", func(ar chi.Router) {
		ar.Get("/", listAnimalsHandler(svc))
		ar.Post("/", createAnimalHandler(svc))

		ar.Route("/{animalID}", func(idr chi.Router) {
			idr.Get("/", getAnimalHandler(svc))
			idr.Patch("/", updateAnimalHandler(svc))
			idr.Delete("/", deleteAnimalHandler(svc, media))

			idr.Post("/photos/primary", setPrimaryPhotoHandler(svc, media))
			idr.Post("/files", addGalleryFileHandler(svc, media))
			idr.Delete("/files", removeGalleryFileHandler(svc, media))
		})
	})
}

type createAnimalRequest struct {
	Name            string `json:"name"`
	Species         string `json:"species"`
	Breed           string `json:"breed"`
	Size            string `json:"size"`
	Age             int    `json:"age"`
	AgeUnit         string `json:"age_unit"`
	Gender          string `json:"gender"`
	AdoptionStatus  string `json:"adoption_status"`
	CurrentLocation string `json:"current_location"`
	Description     string `json:"description"`
	MedicalNotes    string `json:"medical_notes"`
	BehavioralNotes string `json:"behavioral_notes"`
	PrimaryPhotoURL string `json:"primary_photo_url"`
}

type updateAnimalRequest struct {
	// Punteros para PATCH real: nil = no tocar.
	Name            *string `json:"name"`
	Species         *string `json:"species"`
	Breed           *string `json:"breed"`
	Size            *string `json:"size"`
	Age             *int    `json:"age"`
	AgeUnit         *string `json:"age_unit"`
	Gender          *string `json:"gender"`
	AdoptionStatus  *string `json:"adoption_status"`
	CurrentLocation *string `json:"current_location"`
	Description     *string `json:"description"`
	MedicalNotes    *string `json:"medical_notes"`
	BehavioralNotes *string `json:"behavioral_notes"`
	PrimaryPhotoURL *string `json:"primary_photo_url"`
}

type animalResponse struct {
	ID              string    `json:"id"`
	CreatedByID     string    `json:"created_by_id"`
	Name            string    `json:"name"`
	Species         string    `json:"species"`
	Breed           string    `json:"breed,omitempty"`
	Size            string    `json:"size,omitempty"`
	Age             int       `json:"age"`
	AgeUnit         string    `json:"age_unit"`
	Gender          string    `json:"gender"`
	AdoptionStatus  string    `json:"adoption_status"`
	CurrentLocation string    `json:"current_location,omitempty"`
	Description     string    `json:"description,omitempty"`
	MedicalNotes    string    `json:"medical_notes,omitempty"`
	BehavioralNotes string    `json:"behavioral_notes,omitempty"`
	PrimaryPhotoURL string    `json:"primary_photo_url,omitempty"`
	ExtraPhotos     []string  `json:"extra_photos"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

type paginatedAnimalsResponse struct {
	Items []animalResponse `json:"items"`
	Total int              `json:"total"`
	Skip  int              `json:"skip"`
	Limit int              `json:"limit"`
}

type urlResponse struct {
	URL string `json:"url"`
}

type removeFileRequest struct {
	URL string `json:"url"`
}

// requireStaff corta con 401 sin identidad y 403 para viewer. Devuelve
// el usuario cuando la superficie admin puede atenderlo.
func requireStaff(w http.ResponseWriter, r *http.Request) (users.User, bool) {
	u, ok := users.GetUser(r.Context())
	if !ok {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return users.User{}, false
	}
	if !IsStaff(u) {
		http.Error(w, "admin access required", http.StatusForbidden)
		return users.User{}, false
	}
	return u, true
}

// resolveOwned hace el patrón lookup-then-check: 404 si la ficha no
// existe, 401 si existe pero el caller no la puede gestionar.
func resolveOwned(w http.ResponseWriter, r *http.Request, svc *Service) (users.User, Animal, bool) {
	u, ok := requireStaff(w, r)
	if !ok {
		return users.User{}, Animal{}, false
	}

	a, err := svc.GetByID(r.Context(), chi.URLParam(r, "animalID"))
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			http.Error(w, "animal not found", http.StatusNotFound)
		} else {
			http.Error(w, "internal error", http.StatusInternalServerError)
		}
		return users.User{}, Animal{}, false
	}

	if !CanManage(u, a) {
		http.Error(w, "access to animal not allowed", http.StatusUnauthorized)
		return users.User{}, Animal{}, false
	}
	return u, a, true
}

// @Summary Listar fichas
// @Description Listado paginado. Un admin ve solo sus fichas; super_admin ve todo. El total respeta el mismo filtro que los items.
// @Tags admin,animals
// @Produce json
// @Param Authorization header string true "Bearer token"
// @Param skip query int false "Offset (default 0)"
// @Param limit query int false "Tamaño de página (default 50, máximo 100)"
// @Success 200 {object} paginatedAnimalsResponse
// @Failure 401 {string} string "unauthorized"
// @Failure 403 {string} string "admin access required"
// @Router /admin/animals [get]
func listAnimalsHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		u, ok := requireStaff(w, r)
		if !ok {
			return
		}

		skip, limit := svc.PageBounds(queryInt(r, "skip", 0), queryInt(r, "limit", 0))

		items, total, err := svc.List(r.Context(), ScopeFor(u), skip, limit)
		if err != nil {
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}

		out := make([]animalResponse, 0, len(items))
		for _, a := range items {
			out = append(out, toAnimalResponse(a))
		}

		writeJSON(w, http.StatusOK, paginatedAnimalsResponse{
			Items: out,
			Total: total,
			Skip:  skip,
			Limit: limit,
		})
	}
}

// @Summary Crear ficha
// @Tags admin,animals
// @Accept json
// @Produce json
// @Param Authorization header string true "Bearer token"
// @Param payload body createAnimalRequest true "Datos del animal"
// @Success 201 {object} animalResponse
// @Failure 400 {string} string "invalid json / invalid input"
// @Router /admin/animals [post]
func createAnimalHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		u, ok := requireStaff(w, r)
		if !ok {
			return
		}

		var req createAnimalRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "invalid json", http.StatusBadRequest)
			return
		}

		a, err := svc.Create(r.Context(), u.ID, CreateInput{
			Name:            req.Name,
			Species:         Species(req.Species),
			Breed:           req.Breed,
			Size:            Size(req.Size),
			Age:             req.Age,
			AgeUnit:         AgeUnit(req.AgeUnit),
			Gender:          Gender(req.Gender),
			AdoptionStatus:  AdoptionStatus(req.AdoptionStatus),
			CurrentLocation: Location(req.CurrentLocation),
			Description:     req.Description,
			MedicalNotes:    req.MedicalNotes,
			BehavioralNotes: req.BehavioralNotes,
			PrimaryPhotoURL: req.PrimaryPhotoURL,
		})
		if err != nil {
			if errors.Is(err, ErrInvalidInput) {
				http.Error(w, err.Error(), http.StatusBadRequest)
				return
			}
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}

		writeJSON(w, http.StatusCreated, toAnimalResponse(a))
	}
}

func getAnimalHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		_, a, ok := resolveOwned(w, r, svc)
		if !ok {
			return
		}
		writeJSON(w, http.StatusOK, toAnimalResponse(a))
	}
}

func updateAnimalHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		_, a, ok := resolveOwned(w, r, svc)
		if !ok {
			return
		}

		var req updateAnimalRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "invalid json", http.StatusBadRequest)
			return
		}

		updated, err := svc.Update(r.Context(), a, UpdateInput{
			Name:            req.Name,
			Species:         (*Species)(req.Species),
			Breed:           req.Breed,
			Size:            (*Size)(req.Size),
			Age:             req.Age,
			AgeUnit:         (*AgeUnit)(req.AgeUnit),
			Gender:          (*Gender)(req.Gender),
			AdoptionStatus:  (*AdoptionStatus)(req.AdoptionStatus),
			CurrentLocation: (*Location)(req.CurrentLocation),
			Description:     req.Description,
			MedicalNotes:    req.MedicalNotes,
			BehavioralNotes: req.BehavioralNotes,
			PrimaryPhotoURL: req.PrimaryPhotoURL,
		})
		if err != nil {
			switch {
			case errors.Is(err, ErrInvalidInput):
				http.Error(w, err.Error(), http.StatusBadRequest)
			case errors.Is(err, ErrNotFound):
				http.Error(w, "animal not found", http.StatusNotFound)
			default:
				http.Error(w, "internal error", http.StatusInternalServerError)
			}
			return
		}

		writeJSON(w, http.StatusOK, toAnimalResponse(updated))
	}
}

// deleteAnimalHandler borra el registro y recién después purga el
// namespace de storage (best-effort; el 204 no depende del purge).
func deleteAnimalHandler(svc *Service, media *Media) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		_, a, ok := resolveOwned(w, r, svc)
		if !ok {
			return
		}

		if err := svc.Delete(r.Context(), a); err != nil {
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}

		media.PurgeAll(r.Context(), a.ID)

		w.WriteHeader(http.StatusNoContent)
	}
}

// @Summary Reemplazar foto principal
// @Description Sube el archivo multipart "file" y lo fija como foto principal. El blob anterior se borra best-effort después del commit.
// @Tags admin,animals,media
// @Accept mpfd
// @Produce json
// @Param Authorization header string true "Bearer token"
// @Param animalID path string true "ID de la ficha"
// @Param file formData file true "Imagen o video (máx 6MB)"
// @Success 201 {object} urlResponse
// @Failure 400 {string} string "upload rejected"
// @Router /admin/animals/{animalID}/photos/primary [post]
func setPrimaryPhotoHandler(svc *Service, media *Media) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		_, a, ok := resolveOwned(w, r, svc)
		if !ok {
			return
		}

		up, cleanup, ok := readUpload(w, r, media)
		if !ok {
			return
		}
		defer cleanup()

		url, err := media.SetPrimaryPhoto(r.Context(), a, up)
		if err != nil {
			writeMediaError(w, err)
			return
		}

		writeJSON(w, http.StatusCreated, urlResponse{URL: url})
	}
}

// @Summary Agregar archivo a la galería
// @Tags admin,animals,media
// @Accept mpfd
// @Produce json
// @Param Authorization header string true "Bearer token"
// @Param animalID path string true "ID de la ficha"
// @Param file formData file true "Imagen o video (máx 6MB)"
// @Success 201 {object} urlResponse
// @Failure 400 {string} string "gallery is full / upload rejected"
// @Router /admin/animals/{animalID}/files [post]
func addGalleryFileHandler(svc *Service, media *Media) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		_, a, ok := resolveOwned(w, r, svc)
		if !ok {
			return
		}

		up, cleanup, ok := readUpload(w, r, media)
		if !ok {
			return
		}
		defer cleanup()

		url, err := media.AddGalleryFile(r.Context(), a, up)
		if err != nil {
			writeMediaError(w, err)
			return
		}

		writeJSON(w, http.StatusCreated, urlResponse{URL: url})
	}
}

func removeGalleryFileHandler(svc *Service, media *Media) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		_, a, ok := resolveOwned(w, r, svc)
		if !ok {
			return
		}

		var req removeFileRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.URL == "" {
			http.Error(w, "url required", http.StatusBadRequest)
			return
		}

		if err := media.RemoveGalleryFile(r.Context(), a, req.URL); err != nil {
			if errors.Is(err, ErrURLNotInGallery) {
				http.Error(w, "url not in gallery", http.StatusNotFound)
				return
			}
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}

		w.WriteHeader(http.StatusNoContent)
	}
}

// readUpload extrae el archivo multipart "file" acotando el body al
// máximo configurado antes de leer nada.
func readUpload(w http.ResponseWriter, r *http.Request, media *Media) (Upload, func(), bool) {
	r.Body = http.MaxBytesReader(w, r.Body, media.MaxBytes()+4096)

	file, header, err := r.FormFile("file")
	if err != nil {
		http.Error(w, "multipart field 'file' required", http.StatusBadRequest)
		return Upload{}, nil, false
	}

	return Upload{
		Reader:      file,
		Size:        header.Size,
		ContentType: header.Header.Get("Content-Type"),
		Filename:    header.Filename,
	}, func() { _ = file.Close() }, true
}

func writeMediaError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, ErrUploadRejected), errors.Is(err, ErrGalleryFull):
		http.Error(w, err.Error(), http.StatusBadRequest)
	case errors.Is(err, ErrNotFound):
		http.Error(w, "animal not found", http.StatusNotFound)
	default:
		http.Error(w, "internal error", http.StatusInternalServerError)
	}
}

func toAnimalResponse(a Animal) animalResponse {
	photos := a.ExtraPhotos
	if photos == nil {
		photos = []string{}
	}
	return animalResponse{
		ID:              a.ID,
		CreatedByID:     a.CreatedByID,
		Name:            a.Name,
		Species:         string(a.Species),
		Breed:           a.Breed,
		Size:            string(a.Size),
		Age:             a.Age,
		AgeUnit:         string(a.AgeUnit),
		Gender:          string(a.Gender),
		AdoptionStatus:  string(a.AdoptionStatus),
		CurrentLocation: string(a.CurrentLocation),
		Description:     a.Description,
		MedicalNotes:    a.MedicalNotes,
		BehavioralNotes: a.BehavioralNotes,
		PrimaryPhotoURL: a.PrimaryPhotoURL,
		ExtraPhotos:     photos,
		CreatedAt:       a.CreatedAt,
		UpdatedAt:       a.UpdatedAt,
	}
}

func queryInt(r *http.Request, key string, def int) int {
	raw := r.URL.Query().Get(key)
	if raw == "" {
		return def
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return def
	}
	return n
}

// writeJSON está duplicado a propósito en los handlers de cada módulo
// (users/animals); si aparece un tercer módulo conviene extraerlo.
func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
