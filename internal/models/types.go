package models

import (
	"maps"
	"slices"
	"time"
)

// Company is a customer organisation. Status is free-form.
type Company struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Domains   []string  `json:"domains"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Person is an employee of a company. CompanyID is not checked against
// existing companies.
type Person struct {
	ID        string         `json:"id"`
	CompanyID string         `json:"company_id"`
	Email     string         `json:"email"`
	Name      string         `json:"name"`
	Roles     []string       `json:"roles"`
	Status    UserStatus     `json:"status"`
	Metadata  map[string]any `json:"metadata"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
}

// Choice is one selectable answer of a question.
type Choice struct {
	Code   string   `json:"code"`
	Label  string   `json:"label"`
	Weight *float64 `json:"weight,omitempty"`
}

// Validation holds answer constraints for a question.
type Validation struct {
	Required bool    `json:"required"`
	MinValue *int    `json:"min_value,omitempty"`
	MaxValue *int    `json:"max_value,omitempty"`
	Regex    *string `json:"regex,omitempty"`
}

// Question is an entry of the reusable question bank. Code is meant to be
// human-readable but is not required to be unique.
type Question struct {
	ID         string       `json:"id"`
	Code       string       `json:"code"`
	Text       string       `json:"text"`
	Type       QuestionType `json:"type"`
	Choices    []Choice     `json:"choices"`
	Validation Validation   `json:"validation"`
	CreatedAt  time.Time    `json:"created_at"`
	UpdatedAt  time.Time    `json:"updated_at"`
}

// SurveyQuestion places a question inside a template. Order need not be
// contiguous or unique.
type SurveyQuestion struct {
	ID               string             `json:"id"`
	SurveyTemplateID string             `json:"survey_template_id"`
	QuestionID       string             `json:"question_id"`
	Order            int                `json:"order"`
	Section          string             `json:"section"`
	Branching        map[string]any     `json:"branching"`
	Weights          map[string]float64 `json:"weights"`
}

// SurveyTemplate is a versioned, ordered set of questions.
type SurveyTemplate struct {
	ID          string           `json:"id"`
	Name        string           `json:"name"`
	Version     string           `json:"version"`
	Program     string           `json:"program"`
	Status      SurveyStatus     `json:"status"`
	Description string           `json:"description"`
	Questions   []SurveyQuestion `json:"questions"`
	CreatedAt   time.Time        `json:"created_at"`
	UpdatedAt   time.Time        `json:"updated_at"`
}

// EmailTemplate is the invitation sent for a deployment. Body may contain
// the {{name}} and {{survey_link}} placeholders.
type EmailTemplate struct {
	Subject     string `json:"subject"`
	Body        string `json:"body"`
	PreviewText string `json:"preview_text"`
}

const (
	DefaultChannel     = "email"
	DefaultMaxAttempts = 1
)

// Deployment sends one survey template to one company's audience.
type Deployment struct {
	ID               string           `json:"id"`
	CompanyID        string           `json:"company_id"`
	SurveyTemplateID string           `json:"survey_template_id"`
	Name             string           `json:"name"`
	Status           DeploymentStatus `json:"status"`
	AudienceType     AudienceType     `json:"audience_type"`
	AudienceData     map[string]any   `json:"audience_data"`
	Channel          string           `json:"channel"`
	StartDate        *time.Time       `json:"start_date,omitempty"`
	EndDate          *time.Time       `json:"end_date,omitempty"`
	EmailTemplate    *EmailTemplate   `json:"email_template,omitempty"`
	Reminders        []map[string]any `json:"reminders"`
	MaxAttempts      int              `json:"max_attempts"`
	Metrics          map[string]int   `json:"metrics"`
	CreatedAt        time.Time        `json:"created_at"`
	UpdatedAt        time.Time        `json:"updated_at"`
}

// AuditLog records a change to any entity, referenced by type and id.
type AuditLog struct {
	ID         string         `json:"id"`
	Actor      string         `json:"actor"`
	Action     string         `json:"action"`
	EntityType string         `json:"entity_type"`
	EntityID   string         `json:"entity_id"`
	Diff       map[string]any `json:"diff"`
	IPAddress  string         `json:"ip_address"`
	UserAgent  string         `json:"user_agent"`
	Timestamp  time.Time      `json:"timestamp"`
}

// ChoiceView is the machine-readable projection of a choice.
type ChoiceView struct {
	Code  string `json:"code"`
	Label string `json:"label"`
}

// QuestionView is the machine-readable projection of a question used by
// the survey builder.
type QuestionView struct {
	ID      string       `json:"id"`
	Code    string       `json:"code"`
	Text    string       `json:"text"`
	Type    QuestionType `json:"type"`
	Choices []ChoiceView `json:"choices"`
}

func (q *Question) View() QuestionView {
	choices := make([]ChoiceView, 0, len(q.Choices))
	for _, c := range q.Choices {
		choices = append(choices, ChoiceView{Code: c.Code, Label: c.Label})
	}
	return QuestionView{ID: q.ID, Code: q.Code, Text: q.Text, Type: q.Type, Choices: choices}
}

// Clone helpers return deep copies of the slice and map fields so the
// store never shares memory with callers. Values nested inside open maps
// are copied one level deep.

func (c *Company) Clone() *Company {
	out := *c
	out.Domains = slices.Clone(c.Domains)
	return &out
}

func (p *Person) Clone() *Person {
	out := *p
	out.Roles = slices.Clone(p.Roles)
	out.Metadata = maps.Clone(p.Metadata)
	return &out
}

func (q *Question) Clone() *Question {
	out := *q
	out.Choices = CloneChoices(q.Choices)
	out.Validation = q.Validation.Clone()
	return &out
}

// CloneChoices copies a choice list including each weight.
func CloneChoices(in []Choice) []Choice {
	if in == nil {
		return nil
	}
	out := make([]Choice, len(in))
	for i, c := range in {
		c.Weight = ClonePtr(c.Weight)
		out[i] = c
	}
	return out
}

func (v Validation) Clone() Validation {
	v.MinValue = ClonePtr(v.MinValue)
	v.MaxValue = ClonePtr(v.MaxValue)
	v.Regex = ClonePtr(v.Regex)
	return v
}

func (sq SurveyQuestion) clone() SurveyQuestion {
	sq.Branching = maps.Clone(sq.Branching)
	sq.Weights = maps.Clone(sq.Weights)
	return sq
}

func (t *SurveyTemplate) Clone() *SurveyTemplate {
	out := *t
	out.Questions = CloneSurveyQuestions(t.Questions)
	return &out
}

// CloneSurveyQuestions deep-copies a template's question list.
func CloneSurveyQuestions(in []SurveyQuestion) []SurveyQuestion {
	if in == nil {
		return nil
	}
	out := make([]SurveyQuestion, len(in))
	for i, sq := range in {
		out[i] = sq.clone()
	}
	return out
}

func (d *Deployment) Clone() *Deployment {
	out := *d
	out.AudienceData = maps.Clone(d.AudienceData)
	out.StartDate = ClonePtr(d.StartDate)
	out.EndDate = ClonePtr(d.EndDate)
	out.EmailTemplate = ClonePtr(d.EmailTemplate)
	out.Reminders = CloneReminders(d.Reminders)
	out.Metrics = maps.Clone(d.Metrics)
	return &out
}

// CloneReminders copies the schedule entries one level deep.
func CloneReminders(in []map[string]any) []map[string]any {
	if in == nil {
		return nil
	}
	out := make([]map[string]any, len(in))
	for i, r := range in {
		out[i] = maps.Clone(r)
	}
	return out
}

func (a *AuditLog) Clone() *AuditLog {
	out := *a
	out.Diff = maps.Clone(a.Diff)
	return &out
}

// ClonePtr returns a pointer to a copy of *p, or nil.
func ClonePtr[T any](p *T) *T {
	if p == nil {
		return nil
	}
	v := *p
	return &v
}
