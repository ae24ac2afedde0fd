package services

import (
	"time"

	"github.com/soaringjerry/myndwell/internal/models"
	"go.uber.org/zap"
)

// SeedData is the illustrative dataset inserted by Seed.
type SeedData struct {
	Companies      []*models.Company      `json:"companies"`
	Persons        []*models.Person       `json:"persons"`
	Questions      []*models.Question     `json:"questions"`
	SurveyTemplate *models.SurveyTemplate `json:"survey_template"`
	Deployment     *models.Deployment     `json:"deployment"`
}

const invitationBody = `Dear {{name}},

We value your feedback and would like to invite you to participate in our employee satisfaction survey.

Your responses are completely confidential and will help us improve our workplace.

Please click the link below to begin:
{{survey_link}}

Thank you for your time!

Best regards,
HR Team`

func weight(v float64) *float64 { return &v }
func intPtr(v int) *int         { return &v }

// Seed inserts two companies, three persons, three questions, one survey
// template and one active deployment. Every call inserts a fresh copy
// under new ids.
func Seed(set *ServiceSet) (*SeedData, error) {
	out := &SeedData{}

	for _, c := range []*models.Company{
		{Name: "Acme Corporation", Domains: []string{"acme.com", "acmecorp.com"}, Status: "active"},
		{Name: "TechStart Inc", Domains: []string{"techstart.io"}, Status: "active"},
	} {
		created, err := set.Companies.Create(c)
		if err != nil {
			return nil, err
		}
		out.Companies = append(out.Companies, created)
	}
	acme, techStart := out.Companies[0], out.Companies[1]

	for _, p := range []*models.Person{
		{
			CompanyID: acme.ID, Email: "john.doe@acme.com", Name: "John Doe",
			Roles: []string{"admin", "manager"}, Status: models.UserActive,
			Metadata: map[string]any{"department": "HR", "location": "New York"},
		},
		{
			CompanyID: acme.ID, Email: "jane.smith@acme.com", Name: "Jane Smith",
			Roles: []string{"user"}, Status: models.UserActive,
			Metadata: map[string]any{"department": "Engineering", "location": "San Francisco"},
		},
		{
			CompanyID: techStart.ID, Email: "bob.wilson@techstart.io", Name: "Bob Wilson",
			Roles: []string{"admin"}, Status: models.UserActive,
			Metadata: map[string]any{"department": "Product", "location": "Austin"},
		},
	} {
		created, err := set.Persons.Create(p)
		if err != nil {
			return nil, err
		}
		out.Persons = append(out.Persons, created)
	}

	for _, q := range []*models.Question{
		{
			Code: "Q001",
			Text: "How satisfied are you with your current work environment?",
			Type: models.QuestionScale,
			Choices: []models.Choice{
				{Code: "1", Label: "Very Dissatisfied", Weight: weight(1)},
				{Code: "2", Label: "Dissatisfied", Weight: weight(2)},
				{Code: "3", Label: "Neutral", Weight: weight(3)},
				{Code: "4", Label: "Satisfied", Weight: weight(4)},
				{Code: "5", Label: "Very Satisfied", Weight: weight(5)},
			},
			Validation: models.Validation{Required: true, MinValue: intPtr(1), MaxValue: intPtr(5)},
		},
		{
			Code: "Q002",
			Text: "Which benefits are most important to you? (Select all that apply)",
			Type: models.QuestionMulti,
			Choices: []models.Choice{
				{Code: "health", Label: "Health Insurance"},
				{Code: "dental", Label: "Dental Insurance"},
				{Code: "vision", Label: "Vision Insurance"},
				{Code: "retirement", Label: "Retirement Plan"},
				{Code: "pto", Label: "Paid Time Off"},
				{Code: "remote", Label: "Remote Work Options"},
			},
			Validation: models.Validation{Required: true},
		},
		{
			Code:       "Q003",
			Text:       "What suggestions do you have for improving our workplace?",
			Type:       models.QuestionFree,
			Validation: models.Validation{Required: false},
		},
	} {
		created, err := set.Questions.Create(q)
		if err != nil {
			return nil, err
		}
		out.Questions = append(out.Questions, created)
	}

	sections := []string{"Work Environment", "Benefits", "Feedback"}
	links := make([]models.SurveyQuestion, 0, len(out.Questions))
	for i, q := range out.Questions {
		links = append(links, models.SurveyQuestion{QuestionID: q.ID, Order: i + 1, Section: sections[i]})
	}
	tmpl, err := set.Surveys.Create(&models.SurveyTemplate{
		Name:        "Employee Satisfaction Survey",
		Version:     "1.0",
		Program:     "Wellness",
		Status:      models.SurveyReady,
		Description: "Annual employee satisfaction and engagement survey",
		Questions:   links,
	})
	if err != nil {
		return nil, err
	}
	out.SurveyTemplate = tmpl

	now := set.Deployments.now()
	start := now.Add(-5 * 24 * time.Hour)
	end := now.Add(25 * 24 * time.Hour)
	dep, err := set.Deployments.Create(&models.Deployment{
		CompanyID:        acme.ID,
		SurveyTemplateID: tmpl.ID,
		Name:             "Q4 2024 Employee Survey",
		Status:           models.DeploymentActive,
		AudienceType:     models.AudienceAll,
		Channel:          "email",
		StartDate:        &start,
		EndDate:          &end,
		EmailTemplate: &models.EmailTemplate{
			Subject:     "Your Voice Matters - Complete Our Employee Survey",
			Body:        invitationBody,
			PreviewText: "Help us improve our workplace with your feedback",
		},
		Metrics: map[string]int{
			"invites_sent":       45,
			"responses_received": 32,
			"completion_rate":    71,
		},
	})
	if err != nil {
		return nil, err
	}
	out.Deployment = dep

	set.Deployments.log.Info("seed data loaded",
		zap.Int("companies", len(out.Companies)),
		zap.Int("persons", len(out.Persons)),
		zap.Int("questions", len(out.Questions)),
	)
	return out, nil
}
