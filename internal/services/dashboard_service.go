package services

import (
	"sort"

	"github.com/soaringjerry/myndwell/internal/models"
)

const recentDeploymentLimit = 5

type DashboardStore interface {
	ListCompanies() []*models.Company
	ListPersons() []*models.Person
	ListSurveyTemplates() []*models.SurveyTemplate
	ListDeployments() []*models.Deployment
}

type DashboardSummary struct {
	TotalCompanies    int                  `json:"total_companies"`
	TotalUsers        int                  `json:"total_users"`
	ActiveSurveys     int                  `json:"active_surveys"`
	ActiveDeployments int                  `json:"active_deployments"`
	RecentDeployments []*models.Deployment `json:"recent_deployments"`
}

type DashboardService struct {
	store DashboardStore
}

func NewDashboardService(store DashboardStore) *DashboardService {
	return &DashboardService{store: store}
}

// Summary counts ready surveys and active deployments and lists the most
// recently created deployments first.
func (s *DashboardService) Summary() *DashboardSummary {
	surveys := s.store.ListSurveyTemplates()
	deployments := s.store.ListDeployments()

	out := &DashboardSummary{
		TotalCompanies: len(s.store.ListCompanies()),
		TotalUsers:     len(s.store.ListPersons()),
	}
	for _, t := range surveys {
		if t.Status == models.SurveyReady {
			out.ActiveSurveys++
		}
	}
	for _, d := range deployments {
		if d.Status == models.DeploymentActive {
			out.ActiveDeployments++
		}
	}

	recent := append([]*models.Deployment(nil), deployments...)
	sort.SliceStable(recent, func(i, j int) bool { return recent[i].CreatedAt.After(recent[j].CreatedAt) })
	if len(recent) > recentDeploymentLimit {
		recent = recent[:recentDeploymentLimit]
	}
	out.RecentDeployments = recent
	return out
}
