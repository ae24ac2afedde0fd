package services

import (
	"slices"

	"github.com/soaringjerry/myndwell/internal/models"
	"go.uber.org/zap"
)

type CompanyStore interface {
	ListCompanies() []*models.Company
	GetCompany(id string) *models.Company
	InsertCompany(c *models.Company)
	UpdateCompany(id string, mutate func(*models.Company)) *models.Company
	DeleteCompany(id string) bool
}

// CompanyPatch lists the fields an update may change. Nil fields are left alone.
type CompanyPatch struct {
	Name    *string   `json:"name"`
	Domains *[]string `json:"domains"`
	Status  *string   `json:"status"`
}

func (p CompanyPatch) apply(c *models.Company) {
	if p.Name != nil {
		c.Name = *p.Name
	}
	if p.Domains != nil {
		c.Domains = slices.Clone(*p.Domains)
	}
	if p.Status != nil {
		c.Status = *p.Status
	}
}

type CompanyService struct {
	deps
	store CompanyStore
}

func NewCompanyService(store CompanyStore, opts ...Option) *CompanyService {
	return &CompanyService{deps: buildDeps(opts), store: store}
}

func (s *CompanyService) GetAll() []*models.Company {
	return s.store.ListCompanies()
}

func (s *CompanyService) GetByID(id string) *models.Company {
	return s.store.GetCompany(id)
}

// Create assigns an id when missing and stamps both timestamps. Duplicate
// names or domains are accepted.
func (s *CompanyService) Create(c *models.Company) (*models.Company, error) {
	if c == nil {
		return nil, NewInvalidError("company required")
	}
	if c.ID == "" {
		c.ID = s.newID()
	}
	if c.Domains == nil {
		c.Domains = []string{}
	}
	now := s.now()
	c.CreatedAt, c.UpdatedAt = now, now
	s.store.InsertCompany(c)
	s.log.Debug("company created", zap.String("id", c.ID))
	return c, nil
}

// Update returns nil when no company has the id.
func (s *CompanyService) Update(id string, p CompanyPatch) (*models.Company, error) {
	return s.store.UpdateCompany(id, func(c *models.Company) {
		p.apply(c)
		c.UpdatedAt = s.touch(c.UpdatedAt)
	}), nil
}

// Delete does not cascade; persons and deployments keep their company_id.
func (s *CompanyService) Delete(id string) bool {
	ok := s.store.DeleteCompany(id)
	if ok {
		s.log.Debug("company deleted", zap.String("id", id))
	}
	return ok
}
