package services

import (
	"maps"
	"slices"
	"strings"

	"github.com/soaringjerry/myndwell/internal/models"
	"go.uber.org/zap"
)

type PersonStore interface {
	ListPersons() []*models.Person
	GetPerson(id string) *models.Person
	InsertPerson(p *models.Person)
	UpdatePerson(id string, mutate func(*models.Person)) *models.Person
	DeletePerson(id string) bool
}

type PersonPatch struct {
	CompanyID *string            `json:"company_id"`
	Email     *string            `json:"email"`
	Name      *string            `json:"name"`
	Roles     *[]string          `json:"roles"`
	Status    *models.UserStatus `json:"status"`
	Metadata  *map[string]any    `json:"metadata"`
}

func (p PersonPatch) validate() error {
	if p.Status != nil && !p.Status.Valid() {
		return NewInvalidError("invalid user status " + string(*p.Status))
	}
	return nil
}

func (p PersonPatch) apply(t *models.Person) {
	if p.CompanyID != nil {
		t.CompanyID = *p.CompanyID
	}
	if p.Email != nil {
		t.Email = *p.Email
	}
	if p.Name != nil {
		t.Name = *p.Name
	}
	if p.Roles != nil {
		t.Roles = slices.Clone(*p.Roles)
	}
	if p.Status != nil {
		t.Status = *p.Status
	}
	if p.Metadata != nil {
		t.Metadata = maps.Clone(*p.Metadata)
	}
}

// Registration is the self-service sign-up form. Everything except
// CompanyID, Email and FullName ends up in the person's metadata.
type Registration struct {
	CompanyID     string `json:"company_id"`
	Email         string `json:"email"`
	FullName      string `json:"fullName"`
	YearOfBirth   string `json:"yearOfBirth"`
	Mobile        string `json:"mobile"`
	AltEmail      string `json:"altEmail"`
	Designation   string `json:"designation"`
	Department    string `json:"department"`
	Location      string `json:"location"`
	MaritalStatus string `json:"maritalStatus"`
	CurrentRole   string `json:"currentRole"`
	YearOfJoining string `json:"yearOfJoining"`
	WorkMode      string `json:"workMode"`
	Shift         string `json:"shift"`
}

func (r Registration) metadata() map[string]any {
	return map[string]any{
		"year_of_birth":   r.YearOfBirth,
		"mobile":          r.Mobile,
		"alt_email":       r.AltEmail,
		"designation":     r.Designation,
		"department":      r.Department,
		"location":        r.Location,
		"marital_status":  r.MaritalStatus,
		"current_role":    r.CurrentRole,
		"year_of_joining": r.YearOfJoining,
		"work_mode":       r.WorkMode,
		"shift":           r.Shift,
	}
}

type PersonService struct {
	deps
	store PersonStore
}

func NewPersonService(store PersonStore, opts ...Option) *PersonService {
	return &PersonService{deps: buildDeps(opts), store: store}
}

func (s *PersonService) GetAll() []*models.Person {
	return s.store.ListPersons()
}

// GetByCompany scans all persons; order follows insertion.
func (s *PersonService) GetByCompany(companyID string) []*models.Person {
	out := []*models.Person{}
	for _, p := range s.store.ListPersons() {
		if p.CompanyID == companyID {
			out = append(out, p)
		}
	}
	return out
}

func (s *PersonService) GetByID(id string) *models.Person {
	return s.store.GetPerson(id)
}

// Create does not check email uniqueness or that the company exists.
func (s *PersonService) Create(p *models.Person) (*models.Person, error) {
	if p == nil {
		return nil, NewInvalidError("person required")
	}
	if !p.Status.Valid() {
		return nil, NewInvalidError("invalid user status " + string(p.Status))
	}
	if p.ID == "" {
		p.ID = s.newID()
	}
	if p.Roles == nil {
		p.Roles = []string{}
	}
	if p.Metadata == nil {
		p.Metadata = map[string]any{}
	}
	now := s.now()
	p.CreatedAt, p.UpdatedAt = now, now
	s.store.InsertPerson(p)
	s.log.Debug("person created", zap.String("id", p.ID), zap.String("company_id", p.CompanyID))
	return p, nil
}

func (s *PersonService) Update(id string, p PersonPatch) (*models.Person, error) {
	if err := p.validate(); err != nil {
		return nil, err
	}
	return s.store.UpdatePerson(id, func(t *models.Person) {
		p.apply(t)
		t.UpdatedAt = s.touch(t.UpdatedAt)
	}), nil
}

func (s *PersonService) Delete(id string) bool {
	ok := s.store.DeletePerson(id)
	if ok {
		s.log.Debug("person deleted", zap.String("id", id))
	}
	return ok
}

// Register creates an active person with the "user" role from a sign-up form.
func (s *PersonService) Register(r Registration) (*models.Person, error) {
	email := strings.ToLower(strings.TrimSpace(r.Email))
	name := strings.TrimSpace(r.FullName)
	switch {
	case strings.TrimSpace(r.CompanyID) == "":
		return nil, NewInvalidError("company_id required")
	case email == "":
		return nil, NewInvalidError("email required")
	case name == "":
		return nil, NewInvalidError("fullName required")
	}
	return s.Create(&models.Person{
		CompanyID: strings.TrimSpace(r.CompanyID),
		Email:     email,
		Name:      name,
		Roles:     []string{"user"},
		Status:    models.UserActive,
		Metadata:  r.metadata(),
	})
}
