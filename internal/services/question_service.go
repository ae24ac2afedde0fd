package services

import (
	"strings"

	"github.com/soaringjerry/myndwell/internal/models"
	"go.uber.org/zap"
)

type QuestionStore interface {
	ListQuestions() []*models.Question
	GetQuestion(id string) *models.Question
	InsertQuestion(q *models.Question)
	UpdateQuestion(id string, mutate func(*models.Question)) *models.Question
}

type QuestionPatch struct {
	Code       *string              `json:"code"`
	Text       *string              `json:"text"`
	Type       *models.QuestionType `json:"type"`
	Choices    *[]models.Choice     `json:"choices"`
	Validation *models.Validation   `json:"validation"`
}

func (p QuestionPatch) apply(q *models.Question) {
	if p.Code != nil {
		q.Code = *p.Code
	}
	if p.Text != nil {
		q.Text = *p.Text
	}
	if p.Type != nil {
		q.Type = *p.Type
	}
	if p.Choices != nil {
		q.Choices = models.CloneChoices(*p.Choices)
	}
	if p.Validation != nil {
		q.Validation = p.Validation.Clone()
	}
}

type QuestionService struct {
	deps
	store QuestionStore
}

func NewQuestionService(store QuestionStore, opts ...Option) *QuestionService {
	return &QuestionService{deps: buildDeps(opts), store: store}
}

func (s *QuestionService) GetAll() []*models.Question {
	return s.store.ListQuestions()
}

func (s *QuestionService) GetByID(id string) *models.Question {
	return s.store.GetQuestion(id)
}

func (s *QuestionService) Create(q *models.Question) (*models.Question, error) {
	if q == nil {
		return nil, NewInvalidError("question required")
	}
	if !q.Type.Valid() {
		return nil, NewInvalidError("invalid question type " + string(q.Type))
	}
	if q.ID == "" {
		q.ID = s.newID()
	}
	if q.Choices == nil {
		q.Choices = []models.Choice{}
	}
	now := s.now()
	q.CreatedAt, q.UpdatedAt = now, now
	s.store.InsertQuestion(q)
	s.log.Debug("question created", zap.String("id", q.ID), zap.String("code", q.Code))
	return q, nil
}

func (s *QuestionService) Update(id string, p QuestionPatch) (*models.Question, error) {
	if p.Type != nil && !p.Type.Valid() {
		return nil, NewInvalidError("invalid question type " + string(*p.Type))
	}
	return s.store.UpdateQuestion(id, func(q *models.Question) {
		p.apply(q)
		q.UpdatedAt = s.touch(q.UpdatedAt)
	}), nil
}

// Search matches query against text or code, case-insensitively. An empty
// query matches everything; callers that want "no filter" should use GetAll.
func (s *QuestionService) Search(query string) []*models.Question {
	needle := strings.ToLower(query)
	out := []*models.Question{}
	for _, q := range s.store.ListQuestions() {
		if strings.Contains(strings.ToLower(q.Text), needle) || strings.Contains(strings.ToLower(q.Code), needle) {
			out = append(out, q)
		}
	}
	return out
}

// Lookup is what the question bank screens call: everything for an empty
// query, Search otherwise.
func (s *QuestionService) Lookup(query string) []*models.Question {
	if query == "" {
		return s.GetAll()
	}
	return s.Search(query)
}
