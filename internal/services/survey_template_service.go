package services

import (
	"github.com/soaringjerry/myndwell/internal/models"
	"go.uber.org/zap"
)

type SurveyTemplateStore interface {
	ListSurveyTemplates() []*models.SurveyTemplate
	GetSurveyTemplate(id string) *models.SurveyTemplate
	InsertSurveyTemplate(t *models.SurveyTemplate)
	UpdateSurveyTemplate(id string, mutate func(*models.SurveyTemplate)) *models.SurveyTemplate
}

type SurveyTemplatePatch struct {
	Name        *string                  `json:"name"`
	Version     *string                  `json:"version"`
	Program     *string                  `json:"program"`
	Status      *models.SurveyStatus     `json:"status"`
	Description *string                  `json:"description"`
	Questions   *[]models.SurveyQuestion `json:"questions"`
}

func (p SurveyTemplatePatch) apply(t *models.SurveyTemplate) {
	if p.Name != nil {
		t.Name = *p.Name
	}
	if p.Version != nil {
		t.Version = *p.Version
	}
	if p.Program != nil {
		t.Program = *p.Program
	}
	if p.Status != nil {
		t.Status = *p.Status
	}
	if p.Description != nil {
		t.Description = *p.Description
	}
	if p.Questions != nil {
		t.Questions = models.CloneSurveyQuestions(*p.Questions)
	}
}

type SurveyTemplateService struct {
	deps
	store SurveyTemplateStore
}

func NewSurveyTemplateService(store SurveyTemplateStore, opts ...Option) *SurveyTemplateService {
	return &SurveyTemplateService{deps: buildDeps(opts), store: store}
}

func (s *SurveyTemplateService) GetAll() []*models.SurveyTemplate {
	return s.store.ListSurveyTemplates()
}

func (s *SurveyTemplateService) GetByID(id string) *models.SurveyTemplate {
	return s.store.GetSurveyTemplate(id)
}

// Create also gives every survey question an id and points it at the
// template. Referenced question ids are not checked.
func (s *SurveyTemplateService) Create(t *models.SurveyTemplate) (*models.SurveyTemplate, error) {
	if t == nil {
		return nil, NewInvalidError("survey template required")
	}
	if !t.Status.Valid() {
		return nil, NewInvalidError("invalid survey status " + string(t.Status))
	}
	if t.ID == "" {
		t.ID = s.newID()
	}
	if t.Questions == nil {
		t.Questions = []models.SurveyQuestion{}
	}
	s.linkQuestions(t)
	now := s.now()
	t.CreatedAt, t.UpdatedAt = now, now
	s.store.InsertSurveyTemplate(t)
	s.log.Debug("survey template created", zap.String("id", t.ID), zap.Int("questions", len(t.Questions)))
	return t, nil
}

func (s *SurveyTemplateService) Update(id string, p SurveyTemplatePatch) (*models.SurveyTemplate, error) {
	if p.Status != nil && !p.Status.Valid() {
		return nil, NewInvalidError("invalid survey status " + string(*p.Status))
	}
	return s.store.UpdateSurveyTemplate(id, func(t *models.SurveyTemplate) {
		p.apply(t)
		if p.Questions != nil {
			s.linkQuestions(t)
		}
		t.UpdatedAt = s.touch(t.UpdatedAt)
	}), nil
}

func (s *SurveyTemplateService) linkQuestions(t *models.SurveyTemplate) {
	for i := range t.Questions {
		sq := &t.Questions[i]
		if sq.ID == "" {
			sq.ID = s.newID()
		}
		sq.SurveyTemplateID = t.ID
		if sq.Branching == nil {
			sq.Branching = map[string]any{}
		}
		if sq.Weights == nil {
			sq.Weights = map[string]float64{}
		}
	}
}
