package services

import (
	"strconv"
	"time"

	"github.com/soaringjerry/myndwell/internal/models"
)

// stubStore is an ordered, copying in-memory Store for service tests.
type stubStore struct {
	companies   []*models.Company
	persons     []*models.Person
	questions   []*models.Question
	surveys     []*models.SurveyTemplate
	deployments []*models.Deployment
	audit       []*models.AuditLog
}

func find[T any](rows []*T, id string, idOf func(*T) string) int {
	for i, r := range rows {
		if idOf(r) == id {
			return i
		}
	}
	return -1
}

func companyID(c *models.Company) string { return c.ID }
func personID(p *models.Person) string { return p.ID }
func questionID(q *models.Question) string { return q.ID }
func surveyID(t *models.SurveyTemplate) string { return t.ID }
func deploymentID(d *models.Deployment) string { return d.ID }

func (s *stubStore) ListCompanies() []*models.Company {
	out := []*models.Company{}
	for _, c := range s.companies {
		out = append(out, c.Clone())
	}
	return out
}

func (s *stubStore) GetCompany(id string) *models.Company {
	if i := find(s.companies, id, companyID); i >= 0 {
		return s.companies[i].Clone()
	}
	return nil
}

func (s *stubStore) InsertCompany(c *models.Company) {
	if i := find(s.companies, c.ID, companyID); i >= 0 {
		s.companies[i] = c.Clone()
		return
	}
	s.companies = append(s.companies, c.Clone())
}

func (s *stubStore) UpdateCompany(id string, mutate func(*models.Company)) *models.Company {
	i := find(s.companies, id, companyID)
	if i < 0 {
		return nil
	}
	mutate(s.companies[i])
	return s.companies[i].Clone()
}

func (s *stubStore) DeleteCompany(id string) bool {
	i := find(s.companies, id, companyID)
	if i < 0 {
		return false
	}
	s.companies = append(s.companies[:i], s.companies[i+1:]...)
	return true
}

func (s *stubStore) ListPersons() []*models.Person {
	out := []*models.Person{}
	for _, p := range s.persons {
		out = append(out, p.Clone())
	}
	return out
}

func (s *stubStore) GetPerson(id string) *models.Person {
	if i := find(s.persons, id, personID); i >= 0 {
		return s.persons[i].Clone()
	}
	return nil
}

func (s *stubStore) InsertPerson(p *models.Person) {
	if i := find(s.persons, p.ID, personID); i >= 0 {
		s.persons[i] = p.Clone()
		return
	}
	s.persons = append(s.persons, p.Clone())
}

func (s *stubStore) UpdatePerson(id string, mutate func(*models.Person)) *models.Person {
	i := find(s.persons, id, personID)
	if i < 0 {
		return nil
	}
	mutate(s.persons[i])
	return s.persons[i].Clone()
}

func (s *stubStore) DeletePerson(id string) bool {
	i := find(s.persons, id, personID)
	if i < 0 {
		return false
	}
	s.persons = append(s.persons[:i], s.persons[i+1:]...)
	return true
}

func (s *stubStore) ListQuestions() []*models.Question {
	out := []*models.Question{}
	for _, q := range s.questions {
		out = append(out, q.Clone())
	}
	return out
}

func (s *stubStore) GetQuestion(id string) *models.Question {
	if i := find(s.questions, id, questionID); i >= 0 {
		return s.questions[i].Clone()
	}
	return nil
}

func (s *stubStore) InsertQuestion(q *models.Question) {
	s.questions = append(s.questions, q.Clone())
}

func (s *stubStore) UpdateQuestion(id string, mutate func(*models.Question)) *models.Question {
	i := find(s.questions, id, questionID)
	if i < 0 {
		return nil
	}
	mutate(s.questions[i])
	return s.questions[i].Clone()
}

func (s *stubStore) ListSurveyTemplates() []*models.SurveyTemplate {
	out := []*models.SurveyTemplate{}
	for _, t := range s.surveys {
		out = append(out, t.Clone())
	}
	return out
}

func (s *stubStore) GetSurveyTemplate(id string) *models.SurveyTemplate {
	if i := find(s.surveys, id, surveyID); i >= 0 {
		return s.surveys[i].Clone()
	}
	return nil
}

func (s *stubStore) InsertSurveyTemplate(t *models.SurveyTemplate) {
	s.surveys = append(s.surveys, t.Clone())
}

func (s *stubStore) UpdateSurveyTemplate(id string, mutate func(*models.SurveyTemplate)) *models.SurveyTemplate {
	i := find(s.surveys, id, surveyID)
	if i < 0 {
		return nil
	}
	mutate(s.surveys[i])
	return s.surveys[i].Clone()
}

func (s *stubStore) ListDeployments() []*models.Deployment {
	out := []*models.Deployment{}
	for _, d := range s.deployments {
		out = append(out, d.Clone())
	}
	return out
}

func (s *stubStore) GetDeployment(id string) *models.Deployment {
	if i := find(s.deployments, id, deploymentID); i >= 0 {
		return s.deployments[i].Clone()
	}
	return nil
}

func (s *stubStore) InsertDeployment(d *models.Deployment) {
	s.deployments = append(s.deployments, d.Clone())
}

func (s *stubStore) UpdateDeployment(id string, mutate func(*models.Deployment)) *models.Deployment {
	i := find(s.deployments, id, deploymentID)
	if i < 0 {
		return nil
	}
	mutate(s.deployments[i])
	return s.deployments[i].Clone()
}

func (s *stubStore) ListAuditLogs() []*models.AuditLog {
	return s.audit
}

var _ Store = (*stubStore)(nil)

// tickingClock advances by one second on every call.
func tickingClock() func() time.Time {
	t := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	return func() time.Time {
		t = t.Add(time.Second)
		return t
	}
}

// fixedClock always returns the same instant.
func fixedClock(t time.Time) func() time.Time {
	return func() time.Time { return t }
}

// sequentialIDs yields prefix-1, prefix-2, ...
func sequentialIDs(prefix string) IDFunc {
	n := 0
	return func() string {
		n++
		return prefix + "-" + strconv.Itoa(n)
	}
}
