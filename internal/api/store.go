package api

import (
	"sync"

	"github.com/soaringjerry/myndwell/internal/models"
)

// Category names, as reported by Counts.
const (
	CategoryCompanies       = "companies"
	CategoryPersons         = "persons"
	CategoryQuestions       = "questions"
	CategorySurveyTemplates = "survey_templates"
	CategoryDeployments     = "deployments"
	CategoryAuditLogs       = "audit_logs"
)

// collection keeps rows by id plus their insertion order. It is not safe
// for concurrent use on its own; memoryStore holds the lock.
type collection[T any] struct {
	rows  map[string]*T
	order []string
	clone func(*T) *T
}

func newCollection[T any](clone func(*T) *T) *collection[T] {
	return &collection[T]{rows: map[string]*T{}, clone: clone}
}

// put stores a copy. Re-putting an id overwrites in place and keeps the
// original position.
func (c *collection[T]) put(id string, v *T) {
	if _, ok := c.rows[id]; !ok {
		c.order = append(c.order, id)
	}
	c.rows[id] = c.clone(v)
}

func (c *collection[T]) get(id string) *T {
	v, ok := c.rows[id]
	if !ok {
		return nil
	}
	return c.clone(v)
}

func (c *collection[T]) list() []*T {
	out := make([]*T, 0, len(c.order))
	for _, id := range c.order {
		out = append(out, c.clone(c.rows[id]))
	}
	return out
}

func (c *collection[T]) update(id string, mutate func(*T)) *T {
	v, ok := c.rows[id]
	if !ok {
		return nil
	}
	mutate(v)
	return c.clone(v)
}

func (c *collection[T]) remove(id string) bool {
	if _, ok := c.rows[id]; !ok {
		return false
	}
	delete(c.rows, id)
	for i, oid := range c.order {
		if oid == id {
			c.order = append(c.order[:i], c.order[i+1:]...)
			break
		}
	}
	return true
}

func (c *collection[T]) len() int { return len(c.rows) }

type memoryStore struct {
	mu          sync.RWMutex
	companies   *collection[models.Company]
	persons     *collection[models.Person]
	questions   *collection[models.Question]
	surveys     *collection[models.SurveyTemplate]
	deployments *collection[models.Deployment]
	audit       *collection[models.AuditLog]
}

// NewMemoryStore returns an empty repository. Nothing is persisted.
func NewMemoryStore() Store {
	return newMemoryStore()
}

func newMemoryStore() *memoryStore {
	return &memoryStore{
		companies:   newCollection((*models.Company).Clone),
		persons:     newCollection((*models.Person).Clone),
		questions:   newCollection((*models.Question).Clone),
		surveys:     newCollection((*models.SurveyTemplate).Clone),
		deployments: newCollection((*models.Deployment).Clone),
		audit:       newCollection((*models.AuditLog).Clone),
	}
}

// companies

func (s *memoryStore) ListCompanies() []*models.Company {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.companies.list()
}

func (s *memoryStore) GetCompany(id string) *models.Company {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.companies.get(id)
}

func (s *memoryStore) InsertCompany(c *models.Company) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.companies.put(c.ID, c)
}

func (s *memoryStore) UpdateCompany(id string, mutate func(*models.Company)) *models.Company {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.companies.update(id, mutate)
}

func (s *memoryStore) DeleteCompany(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.companies.remove(id)
}

// persons

func (s *memoryStore) ListPersons() []*models.Person {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.persons.list()
}

func (s *memoryStore) GetPerson(id string) *models.Person {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.persons.get(id)
}

func (s *memoryStore) InsertPerson(p *models.Person) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.persons.put(p.ID, p)
}

func (s *memoryStore) UpdatePerson(id string, mutate func(*models.Person)) *models.Person {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.persons.update(id, mutate)
}

func (s *memoryStore) DeletePerson(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.persons.remove(id)
}

// questions

func (s *memoryStore) ListQuestions() []*models.Question {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.questions.list()
}

func (s *memoryStore) GetQuestion(id string) *models.Question {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.questions.get(id)
}

func (s *memoryStore) InsertQuestion(q *models.Question) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.questions.put(q.ID, q)
}

func (s *memoryStore) UpdateQuestion(id string, mutate func(*models.Question)) *models.Question {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.questions.update(id, mutate)
}

// survey templates

func (s *memoryStore) ListSurveyTemplates() []*models.SurveyTemplate {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.surveys.list()
}

func (s *memoryStore) GetSurveyTemplate(id string) *models.SurveyTemplate {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.surveys.get(id)
}

func (s *memoryStore) InsertSurveyTemplate(t *models.SurveyTemplate) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.surveys.put(t.ID, t)
}

func (s *memoryStore) UpdateSurveyTemplate(id string, mutate func(*models.SurveyTemplate)) *models.SurveyTemplate {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.surveys.update(id, mutate)
}

// deployments

func (s *memoryStore) ListDeployments() []*models.Deployment {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.deployments.list()
}

func (s *memoryStore) GetDeployment(id string) *models.Deployment {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.deployments.get(id)
}

func (s *memoryStore) InsertDeployment(d *models.Deployment) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.deployments.put(d.ID, d)
}

func (s *memoryStore) UpdateDeployment(id string, mutate func(*models.Deployment)) *models.Deployment {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.deployments.update(id, mutate)
}

// audit log

func (s *memoryStore) AddAuditLog(a *models.AuditLog) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.audit.put(a.ID, a)
}

func (s *memoryStore) ListAuditLogs() []*models.AuditLog {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.audit.list()
}

func (s *memoryStore) Counts() map[string]int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return map[string]int{
		CategoryCompanies:       s.companies.len(),
		CategoryPersons:         s.persons.len(),
		CategoryQuestions:       s.questions.len(),
		CategorySurveyTemplates: s.surveys.len(),
		CategoryDeployments:     s.deployments.len(),
		CategoryAuditLogs:       s.audit.len(),
	}
}
