package services

import (
	"maps"
	"time"

	"github.com/soaringjerry/myndwell/internal/models"
	"go.uber.org/zap"
)

type DeploymentStore interface {
	ListDeployments() []*models.Deployment
	GetDeployment(id string) *models.Deployment
	InsertDeployment(d *models.Deployment)
	UpdateDeployment(id string, mutate func(*models.Deployment)) *models.Deployment
}

type DeploymentPatch struct {
	CompanyID        *string                  `json:"company_id"`
	SurveyTemplateID *string                  `json:"survey_template_id"`
	Name             *string                  `json:"name"`
	Status           *models.DeploymentStatus `json:"status"`
	AudienceType     *models.AudienceType     `json:"audience_type"`
	AudienceData     *map[string]any          `json:"audience_data"`
	Channel          *string                  `json:"channel"`
	StartDate        *time.Time               `json:"start_date"`
	EndDate          *time.Time               `json:"end_date"`
	EmailTemplate    *models.EmailTemplate    `json:"email_template"`
	Reminders        *[]map[string]any        `json:"reminders"`
	MaxAttempts      *int                     `json:"max_attempts"`
	Metrics          *map[string]int          `json:"metrics"`

	// Clear flags null out the optional fields. A clear wins over a value
	// sent in the same patch.
	ClearStartDate     bool `json:"clear_start_date,omitempty"`
	ClearEndDate       bool `json:"clear_end_date,omitempty"`
	ClearEmailTemplate bool `json:"clear_email_template,omitempty"`
}

func (p DeploymentPatch) validate() error {
	if p.Status != nil && !p.Status.Valid() {
		return NewInvalidError("invalid deployment status " + string(*p.Status))
	}
	if p.AudienceType != nil && !p.AudienceType.Valid() {
		return NewInvalidError("invalid audience type " + string(*p.AudienceType))
	}
	return nil
}

func (p DeploymentPatch) apply(d *models.Deployment) {
	if p.CompanyID != nil {
		d.CompanyID = *p.CompanyID
	}
	if p.SurveyTemplateID != nil {
		d.SurveyTemplateID = *p.SurveyTemplateID
	}
	if p.Name != nil {
		d.Name = *p.Name
	}
	if p.Status != nil {
		d.Status = *p.Status
	}
	if p.AudienceType != nil {
		d.AudienceType = *p.AudienceType
	}
	if p.AudienceData != nil {
		d.AudienceData = maps.Clone(*p.AudienceData)
	}
	if p.Channel != nil {
		d.Channel = *p.Channel
	}
	if p.StartDate != nil {
		d.StartDate = models.ClonePtr(p.StartDate)
	}
	if p.ClearStartDate {
		d.StartDate = nil
	}
	if p.EndDate != nil {
		d.EndDate = models.ClonePtr(p.EndDate)
	}
	if p.ClearEndDate {
		d.EndDate = nil
	}
	if p.EmailTemplate != nil {
		d.EmailTemplate = models.ClonePtr(p.EmailTemplate)
	}
	if p.ClearEmailTemplate {
		d.EmailTemplate = nil
	}
	if p.Reminders != nil {
		d.Reminders = models.CloneReminders(*p.Reminders)
	}
	if p.MaxAttempts != nil {
		d.MaxAttempts = *p.MaxAttempts
	}
	if p.Metrics != nil {
		d.Metrics = maps.Clone(*p.Metrics)
	}
}

type DeploymentService struct {
	deps
	store DeploymentStore
}

func NewDeploymentService(store DeploymentStore, opts ...Option) *DeploymentService {
	return &DeploymentService{deps: buildDeps(opts), store: store}
}

func (s *DeploymentService) GetAll() []*models.Deployment {
	return s.store.ListDeployments()
}

func (s *DeploymentService) GetByID(id string) *models.Deployment {
	return s.store.GetDeployment(id)
}

// Create fills channel and max_attempts defaults. Company and survey
// template ids are stored as given.
func (s *DeploymentService) Create(d *models.Deployment) (*models.Deployment, error) {
	if d == nil {
		return nil, NewInvalidError("deployment required")
	}
	if !d.Status.Valid() {
		return nil, NewInvalidError("invalid deployment status " + string(d.Status))
	}
	if !d.AudienceType.Valid() {
		return nil, NewInvalidError("invalid audience type " + string(d.AudienceType))
	}
	if d.ID == "" {
		d.ID = s.newID()
	}
	if d.Channel == "" {
		d.Channel = models.DefaultChannel
	}
	// Zero is the unset value here; a negative budget is treated the same.
	if d.MaxAttempts <= 0 {
		d.MaxAttempts = models.DefaultMaxAttempts
	}
	if d.AudienceData == nil {
		d.AudienceData = map[string]any{}
	}
	if d.Reminders == nil {
		d.Reminders = []map[string]any{}
	}
	if d.Metrics == nil {
		d.Metrics = map[string]int{}
	}
	now := s.now()
	d.CreatedAt, d.UpdatedAt = now, now
	s.store.InsertDeployment(d)
	s.log.Debug("deployment created",
		zap.String("id", d.ID),
		zap.String("company_id", d.CompanyID),
		zap.String("survey_template_id", d.SurveyTemplateID),
		zap.String("status", string(d.Status)),
	)
	return d, nil
}

// Update allows any status change; there is no transition graph.
func (s *DeploymentService) Update(id string, p DeploymentPatch) (*models.Deployment, error) {
	if err := p.validate(); err != nil {
		return nil, err
	}
	return s.store.UpdateDeployment(id, func(d *models.Deployment) {
		p.apply(d)
		d.UpdatedAt = s.touch(d.UpdatedAt)
	}), nil
}

// Metrics returns the counter map, or nil when the deployment is unknown.
func (s *DeploymentService) Metrics(id string) map[string]int {
	d := s.store.GetDeployment(id)
	if d == nil {
		return nil
	}
	if d.Metrics == nil {
		return map[string]int{}
	}
	return d.Metrics
}
