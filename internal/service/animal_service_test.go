package service

import (
	"errors"
	"testing"
	"time"

	"github.com/go-playground/validator/v10"
	"gorm.io/gorm"

	"github.com/MauriicioRibotta/RuralJMSolution/internal/contract"
	"github.com/MauriicioRibotta/RuralJMSolution/internal/domain/entity"
	"github.com/MauriicioRibotta/RuralJMSolution/internal/infrastructure/idp"
	"github.com/MauriicioRibotta/RuralJMSolution/internal/utils/apierror"
	"github.com/MauriicioRibotta/RuralJMSolution/internal/utils/validators"
)

// -------------------------
// Shared test fixtures
// -------------------------

const (
	ownerID = "5f8a1c4e-9d2b-4f6a-8c3e-1a7b9d0e2f4c"
	otherID = "0b39cc28-14b8-4d0f-93bb-0a2dbdc8d7e5"
)

func newTestValidate() *validator.Validate {
	v := validator.New()
	_ = v.RegisterValidation("cuit", validators.Cuit)
	_ = v.RegisterValidation("rp", validators.RP)
	return v
}

func strp(s string) *string { return &s }

// -------------------------
// Test repos (in-memory)
// -------------------------

type fakeExpositorRepo struct {
	byID    map[string]*entity.Expositor
	updates []map[string]any
	findErr error
}

func newFakeExpositorRepo(expositores ...*entity.Expositor) *fakeExpositorRepo {
	r := &fakeExpositorRepo{byID: map[string]*entity.Expositor{}}
	for _, e := range expositores {
		r.byID[e.ID] = e
	}
	return r
}

func (r *fakeExpositorRepo) FindAll() ([]*entity.Expositor, error) {
	if r.findErr != nil {
		return nil, r.findErr
	}
	out := make([]*entity.Expositor, 0, len(r.byID))
	for _, e := range r.byID {
		out = append(out, e)
	}
	return out, nil
}

func (r *fakeExpositorRepo) FindByID(id string) (*entity.Expositor, error) {
	if r.findErr != nil {
		return nil, r.findErr
	}
	return r.byID[id], nil
}

func (r *fakeExpositorRepo) FindByCuit(cuit string) (*entity.Expositor, error) {
	if r.findErr != nil {
		return nil, r.findErr
	}
	for _, e := range r.byID {
		if e.Cuit == cuit {
			return e, nil
		}
	}
	return nil, nil
}

func (r *fakeExpositorRepo) FindByEmail(email string) (*entity.Expositor, error) {
	if r.findErr != nil {
		return nil, r.findErr
	}
	for _, e := range r.byID {
		if e.Email != nil && *e.Email == email {
			return e, nil
		}
	}
	return nil, nil
}

func (r *fakeExpositorRepo) Insert(fields map[string]any) error {
	cuit := fields["cuit"].(string)
	for _, e := range r.byID {
		if e.Cuit == cuit {
			return gorm.ErrDuplicatedKey
		}
	}

	e := &entity.Expositor{
		ID:           fields["id"].(string),
		Cuit:         cuit,
		RazonSocial:  fields["razon_social"].(string),
		NombreCabana: fields["nombre_cabana"].(string),
		CreatedAt:    fields["created_at"].(time.Time),
		UpdatedAt:    fields["updated_at"].(time.Time),
	}
	if v, ok := fields["email"]; ok {
		s := v.(string)
		e.Email = &s
	}
	if v, ok := fields["telefono"]; ok {
		s := v.(string)
		e.Telefono = &s
	}
	r.byID[e.ID] = e
	return nil
}

func (r *fakeExpositorRepo) UpdateFields(id string, fields map[string]any) error {
	e, ok := r.byID[id]
	if !ok {
		return errors.New("repo: not found")
	}

	r.updates = append(r.updates, fields)
	if v, ok := fields["razon_social"]; ok {
		e.RazonSocial = v.(string)
	}
	if v, ok := fields["updated_at"]; ok {
		e.UpdatedAt = v.(time.Time)
	}
	return nil
}

type fakeAnimalRepo struct {
	byID      map[string]*entity.Animal
	owners    *fakeExpositorRepo
	raza      entity.Raza
	tipo      entity.TipoInscripcion
	updates   []map[string]any
	deletions int
	findErr   error
}

func newFakeAnimalRepo(owners *fakeExpositorRepo) *fakeAnimalRepo {
	return &fakeAnimalRepo{
		byID:   map[string]*entity.Animal{},
		owners: owners,
		raza: entity.Raza{
			ID:      1,
			Nombre:  "Angus",
			Especie: entity.Especie{ID: 1, Nombre: "Bovinos"},
		},
		tipo: entity.TipoInscripcion{ID: 1, Nombre: "Pedigree"},
	}
}

func (r *fakeAnimalRepo) FindAll(expositorID string) ([]*entity.Animal, error) {
	if r.findErr != nil {
		return nil, r.findErr
	}
	out := make([]*entity.Animal, 0)
	for _, a := range r.byID {
		if expositorID == "" || a.ExpositorID == expositorID {
			out = append(out, a)
		}
	}
	return out, nil
}

func (r *fakeAnimalRepo) FindByID(id string) (*entity.Animal, error) {
	if r.findErr != nil {
		return nil, r.findErr
	}
	return r.byID[id], nil
}

func (r *fakeAnimalRepo) Insert(fields map[string]any) error {
	expositorID := fields["expositor_id"].(string)
	razaID := fields["raza_id"].(int)
	rp := fields["rp"].(string)
	for _, a := range r.byID {
		if a.ExpositorID == expositorID && a.RazaID == razaID && a.RP == rp {
			return gorm.ErrDuplicatedKey
		}
	}

	a := &entity.Animal{
		ID:                fields["id"].(string),
		ExpositorID:       expositorID,
		RazaID:            razaID,
		TipoInscripcionID: fields["tipo_inscripcion_id"].(int),
		RP:                rp,
		Sexo:              fields["sexo"].(string),
		CreatedAt:         fields["created_at"].(time.Time),
		Raza:              r.raza,
		TipoInscripcion:   r.tipo,
	}
	if v, ok := fields["nombre_animal"]; ok {
		s := v.(string)
		a.NombreAnimal = &s
	}
	if owner, ok := r.owners.byID[expositorID]; ok {
		a.Expositor = *owner
	}
	r.byID[a.ID] = a
	return nil
}

func (r *fakeAnimalRepo) UpdateFields(id string, fields map[string]any) error {
	a, ok := r.byID[id]
	if !ok {
		return errors.New("repo: not found")
	}

	if v, ok := fields["rp"]; ok {
		rp := v.(string)
		for _, existing := range r.byID {
			if existing.ID != id && existing.ExpositorID == a.ExpositorID && existing.RazaID == a.RazaID && existing.RP == rp {
				return gorm.ErrDuplicatedKey
			}
		}
		a.RP = rp
	}
	if v, ok := fields["nombre_animal"]; ok {
		s := v.(string)
		a.NombreAnimal = &s
	}
	r.updates = append(r.updates, fields)
	return nil
}

func (r *fakeAnimalRepo) Delete(animal *entity.Animal) error {
	delete(r.byID, animal.ID)
	r.deletions++
	return nil
}

func newAnimalFixture() (*DefaultAnimalService, *fakeAnimalRepo, *fakeExpositorRepo) {
	owners := newFakeExpositorRepo(
		&entity.Expositor{
			ID:           ownerID,
			Cuit:         "20123456789",
			RazonSocial:  "Cabaña La Esperanza SA",
			NombreCabana: "La Esperanza",
			Email:        strp("owner@example.com"),
		},
		&entity.Expositor{
			ID:           otherID,
			Cuit:         "27987654321",
			RazonSocial:  "Estancia El Ombú SRL",
			NombreCabana: "El Ombú",
		},
	)
	animals := newFakeAnimalRepo(owners)
	svc := NewAnimalService(animals, owners, newTestValidate())
	return svc, animals, owners
}

func validCreateRequest() *contract.CreateAnimalRequest {
	return &contract.CreateAnimalRequest{
		RazaID:            1,
		TipoInscripcionID: 1,
		RP:                "RP-100",
		Sexo:              contract.SexoMacho,
	}
}

// -------------------------
// Tests
// -------------------------

func TestAnimalService_Create_OwnerProfileOwnsAnimal(t *testing.T) {
	svc, _, _ := newAnimalFixture()
	ident := &idp.Identity{Sub: "sub-1", Email: "owner@example.com"}

	created, apierr := svc.CreateAnimal(ident, validCreateRequest())
	if apierr != nil {
		t.Fatalf("CreateAnimal returned error: %v", apierr)
	}
	if created.ExpositorID != ownerID {
		t.Fatalf("expected animal owned by %s, got %s", ownerID, created.ExpositorID)
	}
	if created.RazaNombre != "Angus" || created.EspecieNombre != "Bovinos" {
		t.Fatalf("expected joined raza/especie names, got %q/%q", created.RazaNombre, created.EspecieNombre)
	}
	if created.ExpositorNombreCabana != "La Esperanza" {
		t.Fatalf("expected joined cabaña name, got %q", created.ExpositorNombreCabana)
	}
}

func TestAnimalService_Create_RejectsConflictingExpositorID(t *testing.T) {
	svc, repo, _ := newAnimalFixture()
	ident := &idp.Identity{Sub: "sub-1", Email: "owner@example.com"}

	req := validCreateRequest()
	req.ExpositorID = strp(otherID)

	_, apierr := svc.CreateAnimal(ident, req)
	if apierr != apierror.OwnershipError {
		t.Fatalf("expected OwnershipError, got %v", apierr)
	}
	if len(repo.byID) != 0 {
		t.Fatalf("expected no animal inserted, got %d", len(repo.byID))
	}
}

func TestAnimalService_Create_OwnerMayRepeatOwnID(t *testing.T) {
	svc, _, _ := newAnimalFixture()
	ident := &idp.Identity{Sub: "sub-1", Email: "owner@example.com"}

	req := validCreateRequest()
	req.ExpositorID = strp(ownerID)

	created, apierr := svc.CreateAnimal(ident, req)
	if apierr != nil {
		t.Fatalf("CreateAnimal returned error: %v", apierr)
	}
	if created.ExpositorID != ownerID {
		t.Fatalf("expected animal owned by %s, got %s", ownerID, created.ExpositorID)
	}
}

func TestAnimalService_Create_AdminMustNameOwner(t *testing.T) {
	svc, _, _ := newAnimalFixture()

	_, apierr := svc.CreateAnimal(nil, validCreateRequest())
	if apierr != apierror.MissingExpositorIDError {
		t.Fatalf("expected MissingExpositorIDError, got %v", apierr)
	}

	req := validCreateRequest()
	req.ExpositorID = strp(otherID)
	created, apierr := svc.CreateAnimal(nil, req)
	if apierr != nil {
		t.Fatalf("CreateAnimal returned error: %v", apierr)
	}
	if created.ExpositorID != otherID {
		t.Fatalf("expected animal owned by %s, got %s", otherID, created.ExpositorID)
	}
}

func TestAnimalService_Create_DuplicateRPIsConflict(t *testing.T) {
	svc, _, _ := newAnimalFixture()
	ident := &idp.Identity{Sub: "sub-1", Email: "owner@example.com"}

	if _, apierr := svc.CreateAnimal(ident, validCreateRequest()); apierr != nil {
		t.Fatalf("first CreateAnimal returned error: %v", apierr)
	}

	_, apierr := svc.CreateAnimal(ident, validCreateRequest())
	if apierr != apierror.DuplicateRPError {
		t.Fatalf("expected DuplicateRPError, got %v", apierr)
	}
}

func TestAnimalService_Create_ValidationFailureIsStructured(t *testing.T) {
	svc, _, _ := newAnimalFixture()
	ident := &idp.Identity{Sub: "sub-1", Email: "owner@example.com"}

	req := validCreateRequest()
	req.Sexo = "macho" // enum literals are case-sensitive

	_, apierr := svc.CreateAnimal(ident, req)
	structured, ok := apierr.(*apierror.StructuredError)
	if !ok {
		t.Fatalf("expected StructuredError, got %T", apierr)
	}
	if structured.Code() != 400 {
		t.Fatalf("expected 400, got %d", structured.Code())
	}
	if len(structured.Errors["sexo"]) == 0 {
		t.Fatalf("expected a problem reported for 'sexo', got %#v", structured.Errors)
	}
}

func TestAnimalService_List_OwnerScopeIgnoresCuitFilter(t *testing.T) {
	svc, _, _ := newAnimalFixture()
	ident := &idp.Identity{Sub: "sub-1", Email: "owner@example.com"}

	if _, apierr := svc.CreateAnimal(ident, validCreateRequest()); apierr != nil {
		t.Fatalf("CreateAnimal returned error: %v", apierr)
	}
	otherReq := validCreateRequest()
	otherReq.RP = "RP-200"
	otherReq.ExpositorID = strp(otherID)
	if _, apierr := svc.CreateAnimal(nil, otherReq); apierr != nil {
		t.Fatalf("admin CreateAnimal returned error: %v", apierr)
	}

	// Filter names the other expositor's CUIT; the owner still only sees
	// their own animal.
	animals, apierr := svc.ListAnimals(ident, "27987654321")
	if apierr != nil {
		t.Fatalf("ListAnimals returned error: %v", apierr)
	}
	if len(animals) != 1 || animals[0].ExpositorID != ownerID {
		t.Fatalf("expected only the owner's animal, got %#v", animals)
	}
}

func TestAnimalService_List_AdminSeesAllAndMayFilter(t *testing.T) {
	svc, _, _ := newAnimalFixture()
	ident := &idp.Identity{Sub: "sub-1", Email: "owner@example.com"}

	if _, apierr := svc.CreateAnimal(ident, validCreateRequest()); apierr != nil {
		t.Fatalf("CreateAnimal returned error: %v", apierr)
	}
	otherReq := validCreateRequest()
	otherReq.RP = "RP-200"
	otherReq.ExpositorID = strp(otherID)
	if _, apierr := svc.CreateAnimal(nil, otherReq); apierr != nil {
		t.Fatalf("admin CreateAnimal returned error: %v", apierr)
	}

	all, apierr := svc.ListAnimals(nil, "")
	if apierr != nil {
		t.Fatalf("ListAnimals returned error: %v", apierr)
	}
	if len(all) != 2 {
		t.Fatalf("expected 2 animals, got %d", len(all))
	}

	filtered, apierr := svc.ListAnimals(nil, "27987654321")
	if apierr != nil {
		t.Fatalf("filtered ListAnimals returned error: %v", apierr)
	}
	if len(filtered) != 1 || filtered[0].ExpositorID != otherID {
		t.Fatalf("expected only the filtered expositor's animal, got %#v", filtered)
	}
}

func TestAnimalService_List_UnknownCuitYieldsEmptyList(t *testing.T) {
	svc, _, _ := newAnimalFixture()
	ident := &idp.Identity{Sub: "sub-1", Email: "owner@example.com"}

	if _, apierr := svc.CreateAnimal(ident, validCreateRequest()); apierr != nil {
		t.Fatalf("CreateAnimal returned error: %v", apierr)
	}

	animals, apierr := svc.ListAnimals(nil, "99999999999")
	if apierr != nil {
		t.Fatalf("expected no error for unknown cuit, got %v", apierr)
	}
	if animals == nil || len(animals) != 0 {
		t.Fatalf("expected empty list, got %#v", animals)
	}
}

func TestAnimalService_Get_MissingIsNotFound(t *testing.T) {
	svc, _, _ := newAnimalFixture()

	_, apierr := svc.GetAnimal("missing-id")
	if apierr != apierror.NotFoundError {
		t.Fatalf("expected NotFoundError, got %v", apierr)
	}
}

func TestAnimalService_Update_MissingIsNotFound(t *testing.T) {
	svc, _, _ := newAnimalFixture()

	_, apierr := svc.UpdateAnimal("missing-id", &contract.UpdateAnimalRequest{})
	if apierr != apierror.NotFoundError {
		t.Fatalf("expected NotFoundError, got %v", apierr)
	}
}

func TestAnimalService_Update_EmptyBodySkipsWrite(t *testing.T) {
	svc, repo, _ := newAnimalFixture()
	ident := &idp.Identity{Sub: "sub-1", Email: "owner@example.com"}

	created, apierr := svc.CreateAnimal(ident, validCreateRequest())
	if apierr != nil {
		t.Fatalf("CreateAnimal returned error: %v", apierr)
	}

	updated, apierr := svc.UpdateAnimal(created.ID, &contract.UpdateAnimalRequest{})
	if apierr != nil {
		t.Fatalf("UpdateAnimal returned error: %v", apierr)
	}
	if len(repo.updates) != 0 {
		t.Fatalf("expected no write for an empty body, got %d", len(repo.updates))
	}
	if updated.RP != created.RP {
		t.Fatalf("expected unchanged animal, got %#v", updated)
	}
}

func TestAnimalService_Update_AppliesOnlySuppliedFields(t *testing.T) {
	svc, repo, _ := newAnimalFixture()
	ident := &idp.Identity{Sub: "sub-1", Email: "owner@example.com"}

	created, apierr := svc.CreateAnimal(ident, validCreateRequest())
	if apierr != nil {
		t.Fatalf("CreateAnimal returned error: %v", apierr)
	}

	updated, apierr := svc.UpdateAnimal(created.ID, &contract.UpdateAnimalRequest{
		Nombre: strp("Huracán"),
	})
	if apierr != nil {
		t.Fatalf("UpdateAnimal returned error: %v", apierr)
	}

	if len(repo.updates) != 1 {
		t.Fatalf("expected exactly one write, got %d", len(repo.updates))
	}
	fields := repo.updates[0]
	if len(fields) != 1 || fields["nombre_animal"] != "Huracán" {
		t.Fatalf("expected only nombre_animal in the write, got %#v", fields)
	}
	if updated.Nombre == nil || *updated.Nombre != "Huracán" {
		t.Fatalf("expected updated name, got %#v", updated.Nombre)
	}
	if updated.RP != created.RP {
		t.Fatalf("expected rp untouched, got %q", updated.RP)
	}
}

func TestAnimalService_Update_DuplicateRPIsConflict(t *testing.T) {
	svc, _, _ := newAnimalFixture()
	ident := &idp.Identity{Sub: "sub-1", Email: "owner@example.com"}

	if _, apierr := svc.CreateAnimal(ident, validCreateRequest()); apierr != nil {
		t.Fatalf("first CreateAnimal returned error: %v", apierr)
	}
	second := validCreateRequest()
	second.RP = "RP-200"
	created, apierr := svc.CreateAnimal(ident, second)
	if apierr != nil {
		t.Fatalf("second CreateAnimal returned error: %v", apierr)
	}

	_, apierr = svc.UpdateAnimal(created.ID, &contract.UpdateAnimalRequest{RP: strp("RP-100")})
	if apierr != apierror.DuplicateRPError {
		t.Fatalf("expected DuplicateRPError, got %v", apierr)
	}
}

func TestAnimalService_Delete_MissingIsNotFound(t *testing.T) {
	svc, repo, _ := newAnimalFixture()

	apierr := svc.DeleteAnimal("missing-id")
	if apierr != apierror.NotFoundError {
		t.Fatalf("expected NotFoundError, got %v", apierr)
	}
	if repo.deletions != 0 {
		t.Fatalf("expected no deletion, got %d", repo.deletions)
	}
}

func TestAnimalService_Delete_RemovesAnimal(t *testing.T) {
	svc, repo, _ := newAnimalFixture()
	ident := &idp.Identity{Sub: "sub-1", Email: "owner@example.com"}

	created, apierr := svc.CreateAnimal(ident, validCreateRequest())
	if apierr != nil {
		t.Fatalf("CreateAnimal returned error: %v", apierr)
	}

	if apierr := svc.DeleteAnimal(created.ID); apierr != nil {
		t.Fatalf("DeleteAnimal returned error: %v", apierr)
	}
	if len(repo.byID) != 0 {
		t.Fatalf("expected animal removed, got %d left", len(repo.byID))
	}

	if apierr := svc.DeleteAnimal(created.ID); apierr != apierror.NotFoundError {
		t.Fatalf("expected NotFoundError on second delete, got %v", apierr)
	}
}
