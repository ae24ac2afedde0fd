package services

import (
	"github.com/soaringjerry/myndwell/internal/models"
)

// ReportStore is the read-only view the tracker, monitor and report
// screens work from.
type ReportStore interface {
	GetCompany(id string) *models.Company
	ListCompanies() []*models.Company
	GetSurveyTemplate(id string) *models.SurveyTemplate
	ListSurveyTemplates() []*models.SurveyTemplate
	GetDeployment(id string) *models.Deployment
	ListDeployments() []*models.Deployment
}

// CompanySurvey pairs a survey template with a company for the tracker.
// Field names follow the tracker's payload.
type CompanySurvey struct {
	SurveyID        string `json:"SurveyId"`
	SurveyName      string `json:"SurveyName"`
	CompanySurveyID string `json:"CompanySurveyId"`
}

// DeploymentMonitor is a deployment with its company and template resolved.
// Either reference may be nil if the id no longer resolves.
type DeploymentMonitor struct {
	Deployment     *models.Deployment     `json:"deployment"`
	Company        *models.Company        `json:"company"`
	SurveyTemplate *models.SurveyTemplate `json:"survey"`
}

type Reports struct {
	Deployments []*models.Deployment `json:"deployments"`
	Companies   []*models.Company    `json:"companies"`
}

// CompanyOptions holds the registration form dropdowns.
type CompanyOptions struct {
	Designations     []string `json:"Designations"`
	Departments      []string `json:"Departments"`
	CompanyLocations []string `json:"CompanyLocations"`
	CurrentRoles     []string `json:"CurrentRoles"`
	WorkMode         []string `json:"WorkMode"`
	Shift            []string `json:"Shift"`
}

// The lists are the same for every company until companies carry their own.
func defaultCompanyOptions() *CompanyOptions {
	return &CompanyOptions{
		Designations:     []string{"Manager", "Senior Developer", "Developer", "Analyst", "Coordinator"},
		Departments:      []string{"Engineering", "HR", "Sales", "Marketing", "Finance"},
		CompanyLocations: []string{"New York", "San Francisco", "Austin", "Remote"},
		CurrentRoles:     []string{"Team Lead", "Individual Contributor", "Manager", "Director"},
		WorkMode:         []string{"Remote", "On-site", "Hybrid"},
		Shift:            []string{"Day Shift", "Night Shift", "Flexible"},
	}
}

type ReportService struct {
	store ReportStore
}

func NewReportService(store ReportStore) *ReportService {
	return &ReportService{store: store}
}

// CompanySurveys lists every template for companyID. The company id is not
// checked; every template is assignable to every company.
func (s *ReportService) CompanySurveys(companyID string) []CompanySurvey {
	templates := s.store.ListSurveyTemplates()
	out := make([]CompanySurvey, 0, len(templates))
	for _, t := range templates {
		out = append(out, CompanySurvey{
			SurveyID:        t.ID,
			SurveyName:      t.Name,
			CompanySurveyID: companyID + "-" + t.ID,
		})
	}
	return out
}

// Monitor returns nil when the deployment is unknown.
func (s *ReportService) Monitor(deploymentID string) *DeploymentMonitor {
	d := s.store.GetDeployment(deploymentID)
	if d == nil {
		return nil
	}
	return &DeploymentMonitor{
		Deployment:     d,
		Company:        s.store.GetCompany(d.CompanyID),
		SurveyTemplate: s.store.GetSurveyTemplate(d.SurveyTemplateID),
	}
}

func (s *ReportService) Reports() *Reports {
	return &Reports{
		Deployments: s.store.ListDeployments(),
		Companies:   s.store.ListCompanies(),
	}
}

// CompanyOptions returns nil when the company is unknown.
func (s *ReportService) CompanyOptions(companyID string) *CompanyOptions {
	if s.store.GetCompany(companyID) == nil {
		return nil
	}
	return defaultCompanyOptions()
}
