package services

import (
	"errors"
	"reflect"
	"testing"
	"time"

	"github.com/soaringjerry/myndwell/internal/models"
)

func TestPersonServiceGetByCompany(t *testing.T) {
	svc := NewPersonService(&stubStore{})
	for _, p := range []*models.Person{
		{CompanyID: "A", Email: "a1@a.com", Name: "A1", Status: models.UserActive},
		{CompanyID: "B", Email: "b1@b.com", Name: "B1", Status: models.UserActive},
		{CompanyID: "A", Email: "a2@a.com", Name: "A2", Status: models.UserPending},
	} {
		if _, err := svc.Create(p); err != nil {
			t.Fatalf("Create error: %v", err)
		}
	}

	got := svc.GetByCompany("A")
	if len(got) != 2 || got[0].Name != "A1" || got[1].Name != "A2" {
		t.Fatalf("unexpected persons for A: %+v", got)
	}
	if none := svc.GetByCompany("nobody"); none == nil || len(none) != 0 {
		t.Fatalf("expected empty non-nil slice, got %#v", none)
	}
}

func TestPersonServiceCreateDefaults(t *testing.T) {
	svc := NewPersonService(&stubStore{})
	p, err := svc.Create(&models.Person{CompanyID: "A", Email: "x@a.com", Name: "X", Status: models.UserActive})
	if err != nil {
		t.Fatalf("Create error: %v", err)
	}
	if p.Roles == nil || p.Metadata == nil {
		t.Fatalf("expected empty roles and metadata, got %+v", p)
	}
}

func TestPersonServiceCreateRejectsBadStatus(t *testing.T) {
	svc := NewPersonService(&stubStore{})
	if _, err := svc.Create(&models.Person{Name: "X", Status: "retired"}); err == nil {
		t.Fatalf("expected invalid status error")
	}
}

func TestPersonServiceUpdateStatusOnly(t *testing.T) {
	svc := NewPersonService(&stubStore{}, WithClock(tickingClock()))
	p, _ := svc.Create(&models.Person{
		CompanyID: "A", Email: "jane@a.com", Name: "Jane",
		Roles: []string{"user"}, Status: models.UserActive,
		Metadata: map[string]any{"department": "Engineering"},
	})

	inactive := models.UserInactive
	updated, err := svc.Update(p.ID, PersonPatch{Status: &inactive})
	if err != nil {
		t.Fatalf("Update error: %v", err)
	}
	if updated.Status != models.UserInactive {
		t.Fatalf("status not updated: %s", updated.Status)
	}
	if updated.Email != "jane@a.com" || updated.Name != "Jane" || updated.CompanyID != "A" {
		t.Fatalf("unrelated fields changed: %+v", updated)
	}
	if len(updated.Roles) != 1 || updated.Metadata["department"] != "Engineering" {
		t.Fatalf("roles or metadata changed: %+v", updated)
	}
	if !updated.UpdatedAt.After(updated.CreatedAt) {
		t.Fatalf("expected updated_at to advance")
	}
}

func TestPersonServiceUpdateRejectsBadStatus(t *testing.T) {
	svc := NewPersonService(&stubStore{})
	p, _ := svc.Create(&models.Person{Name: "X", Status: models.UserActive})
	bad := models.UserStatus("gone")
	if _, err := svc.Update(p.ID, PersonPatch{Status: &bad}); err == nil {
		t.Fatalf("expected error")
	}
	if got := svc.GetByID(p.ID); got.Status != models.UserActive {
		t.Fatalf("status changed by rejected update: %s", got.Status)
	}
}

func TestPersonServiceDelete(t *testing.T) {
	svc := NewPersonService(&stubStore{})
	p, _ := svc.Create(&models.Person{Name: "X", Status: models.UserActive})
	if !svc.Delete(p.ID) || svc.Delete(p.ID) {
		t.Fatalf("expected delete once")
	}
}

func TestPersonServiceRegister(t *testing.T) {
	svc := NewPersonService(&stubStore{}, WithIDFunc(func() string { return "U1" }))
	p, err := svc.Register(Registration{
		CompanyID:  "C1",
		Email:      "  New.Hire@Acme.COM ",
		FullName:   "New Hire",
		Department: "HR",
		WorkMode:   "remote",
	})
	if err != nil {
		t.Fatalf("Register error: %v", err)
	}
	if p.ID != "U1" || p.Email != "new.hire@acme.com" || p.Name != "New Hire" {
		t.Fatalf("unexpected person: %+v", p)
	}
	if p.Status != models.UserActive || len(p.Roles) != 1 || p.Roles[0] != "user" {
		t.Fatalf("unexpected status or roles: %+v", p)
	}
	if p.Metadata["department"] != "HR" || p.Metadata["work_mode"] != "remote" {
		t.Fatalf("profile fields not in metadata: %+v", p.Metadata)
	}
}

func TestPersonServiceRegisterRequiredFields(t *testing.T) {
	svc := NewPersonService(&stubStore{})
	cases := []Registration{
		{Email: "a@b.com", FullName: "A"},
		{CompanyID: "C1", FullName: "A"},
		{CompanyID: "C1", Email: "a@b.com"},
	}
	for i, r := range cases {
		_, err := svc.Register(r)
		var se *ServiceError
		if !errors.As(err, &se) || se.Code != ErrorInvalid {
			t.Fatalf("case %d: expected invalid error, got %v", i, err)
		}
	}
}

func TestPersonServiceRoundTrip(t *testing.T) {
	at := time.Date(2025, 3, 1, 9, 0, 0, 0, time.UTC)
	svc := NewPersonService(&stubStore{}, WithClock(fixedClock(at)))
	p, _ := svc.Create(&models.Person{
		CompanyID: "C1", Email: "a@a.com", Name: "A", Roles: []string{"employee"},
		Status: models.UserActive, Metadata: map[string]any{"department": "HR"},
	})
	if got := svc.GetByID(p.ID); !reflect.DeepEqual(got, p) {
		t.Fatalf("round trip mismatch:\n got %+v\nwant %+v", got, p)
	}
}

func TestPersonServiceDeleteMissingKeepsSize(t *testing.T) {
	svc := NewPersonService(&stubStore{})
	svc.Create(&models.Person{Name: "A", Status: models.UserActive})
	if svc.Delete("missing") {
		t.Fatalf("expected delete of unknown id to report false")
	}
	if n := len(svc.GetAll()); n != 1 {
		t.Fatalf("expected 1 person, got %d", n)
	}
}

func TestPersonServiceUpdateReplacesMetadata(t *testing.T) {
	svc := NewPersonService(&stubStore{})
	p, _ := svc.Create(&models.Person{
		Name: "A", Status: models.UserActive,
		Metadata: map[string]any{"department": "HR", "shift": "Day Shift"},
	})

	meta := map[string]any{"mobile": "555"}
	updated, err := svc.Update(p.ID, PersonPatch{Metadata: &meta})
	if err != nil {
		t.Fatalf("Update error: %v", err)
	}
	if !reflect.DeepEqual(updated.Metadata, map[string]any{"mobile": "555"}) {
		t.Fatalf("expected metadata to be replaced, got %v", updated.Metadata)
	}
}

func TestPersonServiceUpdateCopiesPatchValues(t *testing.T) {
	svc := NewPersonService(&stubStore{})
	p, _ := svc.Create(&models.Person{Name: "A", Status: models.UserActive})

	roles := []string{"manager"}
	meta := map[string]any{"department": "HR"}
	if _, err := svc.Update(p.ID, PersonPatch{Roles: &roles, Metadata: &meta}); err != nil {
		t.Fatalf("Update error: %v", err)
	}
	roles[0] = "admin"
	meta["department"] = "Sales"
	meta["extra"] = true

	got := svc.GetByID(p.ID)
	if got.Roles[0] != "manager" {
		t.Fatalf("stored roles follow the caller's slice: %v", got.Roles)
	}
	if len(got.Metadata) != 1 || got.Metadata["department"] != "HR" {
		t.Fatalf("stored metadata follows the caller's map: %v", got.Metadata)
	}
}
