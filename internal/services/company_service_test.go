package services

import (
	"reflect"
	"testing"
	"time"

	"github.com/soaringjerry/myndwell/internal/models"
)

func strPtr(s string) *string { return &s }

func TestCompanyServiceCreateAssignsIDAndTimestamps(t *testing.T) {
	store := &stubStore{}
	at := time.Date(2025, 3, 1, 9, 0, 0, 0, time.UTC)
	svc := NewCompanyService(store, WithClock(fixedClock(at)), WithIDFunc(func() string { return "C1" }))

	c, err := svc.Create(&models.Company{Name: "Foo"})
	if err != nil {
		t.Fatalf("Create error: %v", err)
	}
	if c.ID != "C1" {
		t.Fatalf("expected generated id, got %q", c.ID)
	}
	if !c.CreatedAt.Equal(at) || !c.UpdatedAt.Equal(c.CreatedAt) {
		t.Fatalf("expected created_at == updated_at == %v, got %v / %v", at, c.CreatedAt, c.UpdatedAt)
	}
	if c.Domains == nil {
		t.Fatalf("expected empty domains, got nil")
	}

	got := svc.GetByID("C1")
	if got == nil || got.Name != "Foo" {
		t.Fatalf("round trip failed: %+v", got)
	}
}

func TestCompanyServiceCreateKeepsPresetID(t *testing.T) {
	svc := NewCompanyService(&stubStore{}, WithIDFunc(func() string { return "generated" }))
	c, err := svc.Create(&models.Company{ID: "preset", Name: "Foo"})
	if err != nil {
		t.Fatalf("Create error: %v", err)
	}
	if c.ID != "preset" {
		t.Fatalf("expected preset id, got %q", c.ID)
	}
}

func TestCompanyServiceCreateNil(t *testing.T) {
	svc := NewCompanyService(&stubStore{})
	_, err := svc.Create(nil)
	se, ok := AsServiceError(err)
	if !ok || se.Code != ErrorInvalid {
		t.Fatalf("expected invalid error, got %v", err)
	}
}

func TestCompanyServiceCreateDistinctIDs(t *testing.T) {
	svc := NewCompanyService(&stubStore{})
	a, _ := svc.Create(&models.Company{Name: "A"})
	b, _ := svc.Create(&models.Company{Name: "B"})
	if a.ID == "" || a.ID == b.ID {
		t.Fatalf("expected distinct ids, got %q and %q", a.ID, b.ID)
	}
	if all := svc.GetAll(); len(all) != 2 || all[0].Name != "A" || all[1].Name != "B" {
		t.Fatalf("expected insertion order, got %+v", all)
	}
}

func TestCompanyServiceUpdate(t *testing.T) {
	store := &stubStore{}
	svc := NewCompanyService(store, WithClock(tickingClock()))
	c, _ := svc.Create(&models.Company{Name: "Foo", Domains: []string{"foo.com"}, Status: "active"})
	created := c.CreatedAt

	updated, err := svc.Update(c.ID, CompanyPatch{Name: strPtr("Bar")})
	if err != nil {
		t.Fatalf("Update error: %v", err)
	}
	if updated.Name != "Bar" {
		t.Fatalf("name not updated: %+v", updated)
	}
	if updated.Status != "active" || len(updated.Domains) != 1 || updated.Domains[0] != "foo.com" {
		t.Fatalf("untouched fields changed: %+v", updated)
	}
	if !updated.CreatedAt.Equal(created) {
		t.Fatalf("created_at changed")
	}
	if !updated.UpdatedAt.After(created) {
		t.Fatalf("expected updated_at to advance")
	}
}

func TestCompanyServiceUpdateNeverMovesBack(t *testing.T) {
	now := time.Date(2025, 5, 1, 0, 0, 0, 0, time.UTC)
	clock := func() time.Time { return now }
	svc := NewCompanyService(&stubStore{}, WithClock(clock))
	c, _ := svc.Create(&models.Company{Name: "Foo"})

	now = now.Add(-time.Hour)
	updated, _ := svc.Update(c.ID, CompanyPatch{Status: strPtr("inactive")})
	if updated.UpdatedAt.Before(c.UpdatedAt) {
		t.Fatalf("updated_at went backwards: %v < %v", updated.UpdatedAt, c.UpdatedAt)
	}
}

func TestCompanyServiceUpdateMissing(t *testing.T) {
	svc := NewCompanyService(&stubStore{})
	got, err := svc.Update("missing", CompanyPatch{Name: strPtr("x")})
	if err != nil || got != nil {
		t.Fatalf("expected nil result, got %+v, %v", got, err)
	}
}

func TestCompanyServiceDelete(t *testing.T) {
	svc := NewCompanyService(&stubStore{})
	c, _ := svc.Create(&models.Company{Name: "Foo"})
	if !svc.Delete(c.ID) {
		t.Fatalf("expected delete to succeed")
	}
	if svc.GetByID(c.ID) != nil {
		t.Fatalf("expected company gone")
	}
	if svc.Delete(c.ID) {
		t.Fatalf("expected second delete to report false")
	}
}

func TestCompanyServiceRoundTrip(t *testing.T) {
	at := time.Date(2025, 3, 1, 9, 0, 0, 0, time.UTC)
	svc := NewCompanyService(&stubStore{}, WithClock(fixedClock(at)))
	c, _ := svc.Create(&models.Company{Name: "Foo", Domains: []string{"foo.com", "foo.io"}, Status: "active"})
	if got := svc.GetByID(c.ID); !reflect.DeepEqual(got, c) {
		t.Fatalf("round trip mismatch:\n got %+v\nwant %+v", got, c)
	}
}

func TestCompanyServiceDeleteMissingKeepsSize(t *testing.T) {
	svc := NewCompanyService(&stubStore{})
	svc.Create(&models.Company{Name: "A"})
	svc.Create(&models.Company{Name: "B"})
	if svc.Delete("missing") {
		t.Fatalf("expected delete of unknown id to report false")
	}
	if n := len(svc.GetAll()); n != 2 {
		t.Fatalf("expected 2 companies, got %d", n)
	}
}

func TestCompanyServiceUpdateCopiesDomains(t *testing.T) {
	svc := NewCompanyService(&stubStore{})
	c, _ := svc.Create(&models.Company{Name: "Foo"})

	domains := []string{"foo.com"}
	if _, err := svc.Update(c.ID, CompanyPatch{Domains: &domains}); err != nil {
		t.Fatalf("Update error: %v", err)
	}
	domains[0] = "evil.com"
	if got := svc.GetByID(c.ID).Domains; len(got) != 1 || got[0] != "foo.com" {
		t.Fatalf("stored domains follow the caller's slice: %v", got)
	}
}
