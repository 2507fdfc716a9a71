package animals

import (
	"context"
	"errors"
	"sort"
	"testing"
	"time"
)

// -------------------------
// Test repo (in-memory)
// -------------------------

type testRepo struct {
	byID    map[string]Animal
	gallery map[string][]string
}

func newTestRepo() *testRepo {
	return &testRepo{byID: map[string]Animal{}, gallery: map[string][]string{}}
}

func (r *testRepo) Create(ctx context.Context, a Animal) error {
	if a.ID == "" {
		return errors.New("repo: id required")
	}
	r.byID[a.ID] = a
	return nil
}

func (r *testRepo) GetByID(ctx context.Context, id string) (Animal, error) {
	a, ok := r.byID[id]
	if !ok {
		return Animal{}, ErrNotFound
	}
	a.ExtraPhotos = append([]string(nil), r.gallery[id]...)
	return a, nil
}

func (r *testRepo) List(ctx context.Context, scope Scope, skip, limit int) ([]Animal, error) {
	out := r.scoped(scope)
	if skip >= len(out) {
		return []Animal{}, nil
	}
	out = out[skip:]
	if limit > 0 && limit < len(out) {
		out = out[:limit]
	}
	return out, nil
}

func (r *testRepo) Count(ctx context.Context, scope Scope) (int, error) {
	return len(r.scoped(scope)), nil
}

func (r *testRepo) Update(ctx context.Context, a Animal) error {
	if _, ok := r.byID[a.ID]; !ok {
		return ErrNotFound
	}
	a.ExtraPhotos = nil
	r.byID[a.ID] = a
	return nil
}

func (r *testRepo) Delete(ctx context.Context, id string) error {
	if _, ok := r.byID[id]; !ok {
		return ErrNotFound
	}
	delete(r.byID, id)
	delete(r.gallery, id)
	return nil
}

func (r *testRepo) AddGalleryURL(ctx context.Context, animalID, url string, max int) error {
	if _, ok := r.byID[animalID]; !ok {
		return ErrNotFound
	}
	if len(r.gallery[animalID]) >= max {
		return ErrGalleryFull
	}
	r.gallery[animalID] = append(r.gallery[animalID], url)
	return nil
}

func (r *testRepo) RemoveGalleryURL(ctx context.Context, animalID, url string) error {
	urls := r.gallery[animalID]
	for i, u := range urls {
		if u == url {
			r.gallery[animalID] = append(urls[:i], urls[i+1:]...)
			return nil
		}
	}
	return ErrNotFound
}

func (r *testRepo) scoped(scope Scope) []Animal {
	out := make([]Animal, 0)
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

func validCreateInput() CreateInput {
	return CreateInput{
		Name:    "Firulais",
		Species: SpeciesDog,
		Age:     3,
		AgeUnit: AgeYears,
		Gender:  GenderMale,
	}
}

// -------------------------
// Tests
// -------------------------

func TestService_Create_Defaults(t *testing.T) {
	repo := newTestRepo()
	svc := NewService(repo, 50, 100)

	now := time.Date(2026, 2, 1, 10, 0, 0, 0, time.UTC)
	svc.now = func() time.Time { return now }

	a, err := svc.Create(context.Background(), "admin-1", validCreateInput())
	if err != nil {
		t.Fatalf("Create error: %v", err)
	}
	if a.ID == "" {
		t.Fatalf("expected generated id")
	}
	if a.CreatedByID != "admin-1" {
		t.Fatalf("expected owner admin-1, got %s", a.CreatedByID)
	}
	if a.AdoptionStatus != StatusAvailable {
		t.Fatalf("expected status default available, got %s", a.AdoptionStatus)
	}
	if a.CreatedAt != now || a.UpdatedAt != now {
		t.Fatalf("expected CreatedAt/UpdatedAt to be now")
	}
	if a.ExtraPhotos == nil || len(a.ExtraPhotos) != 0 {
		t.Fatalf("expected empty (non-nil) gallery, got %#v", a.ExtraPhotos)
	}
}

func TestService_Create_Validation(t *testing.T) {
	repo := newTestRepo()
	svc := NewService(repo, 50, 100)

	cases := []struct {
		name   string
		mutate func(*CreateInput)
		ok     bool
	}{
		{"name of one char", func(in *CreateInput) { in.Name = "F" }, false},
		{"name of two chars", func(in *CreateInput) { in.Name = "Fi" }, true},
		{"name of only spaces", func(in *CreateInput) { in.Name = "   " }, false},
		{"age zero", func(in *CreateInput) { in.Age = 0 }, false},
		{"age one", func(in *CreateInput) { in.Age = 1 }, true},
		{"age at cap", func(in *CreateInput) { in.Age = MaxAge }, true},
		{"age above cap", func(in *CreateInput) { in.Age = MaxAge + 1 }, false},
		{"unknown species", func(in *CreateInput) { in.Species = "hamster" }, false},
		{"empty size allowed", func(in *CreateInput) { in.Size = "" }, true},
		{"unknown size", func(in *CreateInput) { in.Size = "gigantic" }, false},
		{"unknown age unit", func(in *CreateInput) { in.AgeUnit = "weeks" }, false},
		{"unknown gender", func(in *CreateInput) { in.Gender = "unknown" }, false},
		{"unknown status", func(in *CreateInput) { in.AdoptionStatus = "pending" }, false},
		{"empty location allowed", func(in *CreateInput) { in.CurrentLocation = "" }, true},
		{"unknown location", func(in *CreateInput) { in.CurrentLocation = "zoo" }, false},
		{"relative photo url", func(in *CreateInput) { in.PrimaryPhotoURL = "/photos/a.jpg" }, false},
		{"absolute photo url", func(in *CreateInput) { in.PrimaryPhotoURL = "https://cdn.example/a.jpg" }, true},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			in := validCreateInput()
			tc.mutate(&in)

			_, err := svc.Create(context.Background(), "admin-1", in)
			if tc.ok && err != nil {
				t.Fatalf("expected ok, got %v", err)
			}
			if !tc.ok && err != ErrInvalidInput {
				t.Fatalf("expected ErrInvalidInput, got %v", err)
			}
		})
	}
}

func TestService_Create_TrimsName(t *testing.T) {
	repo := newTestRepo()
	svc := NewService(repo, 50, 100)

	in := validCreateInput()
	in.Name = "  Firulais  "
	a, err := svc.Create(context.Background(), "admin-1", in)
	if err != nil {
		t.Fatalf("Create error: %v", err)
	}
	if a.Name != "Firulais" {
		t.Fatalf("expected trimmed name, got %q", a.Name)
	}
}

func TestService_PageBounds(t *testing.T) {
	svc := NewService(newTestRepo(), 50, 100)

	cases := []struct {
		skip, limit         int
		wantSkip, wantLimit int
	}{
		{0, 0, 0, 50},    // default
		{-5, 10, 0, 10},  // skip negativo se corrige
		{0, 250, 0, 100}, // limit se capea al máximo
		{7, 20, 7, 20},   // valores razonables pasan tal cual
	}
	for _, tc := range cases {
		skip, limit := svc.PageBounds(tc.skip, tc.limit)
		if skip != tc.wantSkip || limit != tc.wantLimit {
			t.Fatalf("PageBounds(%d, %d) = (%d, %d), want (%d, %d)",
				tc.skip, tc.limit, skip, limit, tc.wantSkip, tc.wantLimit)
		}
	}
}

func TestService_List_ScopedTotalMatchesItems(t *testing.T) {
	repo := newTestRepo()
	svc := NewService(repo, 50, 100)

	base := time.Date(2026, 2, 1, 10, 0, 0, 0, time.UTC)
	for i := 0; i < 3; i++ {
		svc.now = func() time.Time { return base.Add(time.Duration(i) * time.Minute) }
		if _, err := svc.Create(context.Background(), "admin-a", validCreateInput()); err != nil {
			t.Fatalf("Create error: %v", err)
		}
	}
	svc.now = func() time.Time { return base.Add(time.Hour) }
	if _, err := svc.Create(context.Background(), "admin-b", validCreateInput()); err != nil {
		t.Fatalf("Create error: %v", err)
	}

	// Scope de un admin: solo lo suyo, y el total bajo el mismo filtro.
	items, total, err := svc.List(context.Background(), Scope{OwnerID: "admin-a"}, 0, 2)
	if err != nil {
		t.Fatalf("List error: %v", err)
	}
	if total != 3 {
		t.Fatalf("expected scoped total 3, got %d", total)
	}
	if len(items) != 2 {
		t.Fatalf("expected page of 2, got %d", len(items))
	}
	for _, a := range items {
		if a.CreatedByID != "admin-a" {
			t.Fatalf("leaked animal from another owner: %s", a.CreatedByID)
		}
	}

	// Scope sin restricción: todo el universo.
	_, total, err = svc.List(context.Background(), Scope{}, 0, 0)
	if err != nil {
		t.Fatalf("List error: %v", err)
	}
	if total != 4 {
		t.Fatalf("expected unrestricted total 4, got %d", total)
	}

	// skip más allá del final: página vacía, total intacto.
	items, total, err = svc.List(context.Background(), Scope{OwnerID: "admin-a"}, 10, 0)
	if err != nil {
		t.Fatalf("List error: %v", err)
	}
	if len(items) != 0 || total != 3 {
		t.Fatalf("expected empty page with total 3, got %d items / total %d", len(items), total)
	}
}

func TestService_Update_PatchSemantics(t *testing.T) {
	repo := newTestRepo()
	svc := NewService(repo, 50, 100)

	created := time.Date(2026, 2, 1, 10, 0, 0, 0, time.UTC)
	svc.now = func() time.Time { return created }

	a, err := svc.Create(context.Background(), "admin-1", validCreateInput())
	if err != nil {
		t.Fatalf("Create error: %v", err)
	}

	updated := created.Add(time.Hour)
	svc.now = func() time.Time { return updated }

	newName := "  Rocky  "
	newStatus := StatusAdopted
	got, err := svc.Update(context.Background(), a, UpdateInput{
		Name:           &newName,
		AdoptionStatus: &newStatus,
	})
	if err != nil {
		t.Fatalf("Update error: %v", err)
	}
	if got.Name != "Rocky" {
		t.Fatalf("expected trimmed name Rocky, got %q", got.Name)
	}
	if got.AdoptionStatus != StatusAdopted {
		t.Fatalf("expected status adopted, got %s", got.AdoptionStatus)
	}
	// Campos no enviados quedan como estaban.
	if got.Species != a.Species || got.Age != a.Age {
		t.Fatalf("untouched fields changed: %#v", got)
	}
	if !got.UpdatedAt.Equal(updated) {
		t.Fatalf("expected UpdatedAt bumped to %v, got %v", updated, got.UpdatedAt)
	}
	if !got.CreatedAt.Equal(created) {
		t.Fatalf("CreatedAt should not change on update")
	}
}

func TestService_Update_RejectsInvalidPatch(t *testing.T) {
	repo := newTestRepo()
	svc := NewService(repo, 50, 100)

	a, err := svc.Create(context.Background(), "admin-1", validCreateInput())
	if err != nil {
		t.Fatalf("Create error: %v", err)
	}

	badAge := 0
	if _, err := svc.Update(context.Background(), a, UpdateInput{Age: &badAge}); err != ErrInvalidInput {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}

	// El rechazo no debe haber tocado el registro.
	stored, err := svc.GetByID(context.Background(), a.ID)
	if err != nil {
		t.Fatalf("GetByID error: %v", err)
	}
	if stored.Age != a.Age {
		t.Fatalf("record mutated by rejected patch")
	}
}

func TestService_Delete_RemovesRecord(t *testing.T) {
	repo := newTestRepo()
	svc := NewService(repo, 50, 100)

	a, err := svc.Create(context.Background(), "admin-1", validCreateInput())
	if err != nil {
		t.Fatalf("Create error: %v", err)
	}

	if err := svc.Delete(context.Background(), a); err != nil {
		t.Fatalf("Delete error: %v", err)
	}
	if _, err := svc.GetByID(context.Background(), a.ID); err != ErrNotFound {
		t.Fatalf("expected ErrNotFound after delete, got %v", err)
	}
}
