package models

import (
	"errors"
	"fmt"
)

// ErrInvalidEnum is returned when a string does not name a known enum value.
var ErrInvalidEnum = errors.New("invalid enum value")

func invalidEnum(kind, v string) error {
	return fmt.Errorf("%w: %s %q", ErrInvalidEnum, kind, v)
}

// UserStatus is the lifecycle state of a person.
type UserStatus string

const (
	UserActive   UserStatus = "active"
	UserInactive UserStatus = "inactive"
	UserPending  UserStatus = "pending"
)

func (s UserStatus) Valid() bool {
	switch s {
	case UserActive, UserInactive, UserPending:
		return true
	}
	return false
}

func ParseUserStatus(v string) (UserStatus, error) {
	s := UserStatus(v)
	if !s.Valid() {
		return "", invalidEnum("user status", v)
	}
	return s, nil
}

func (s *UserStatus) UnmarshalText(b []byte) error {
	v, err := ParseUserStatus(string(b))
	if err != nil {
		return err
	}
	*s = v
	return nil
}

// SurveyStatus is the publication state of a survey template.
type SurveyStatus string

const (
	SurveyDraft    SurveyStatus = "draft"
	SurveyReady    SurveyStatus = "ready"
	SurveyArchived SurveyStatus = "archived"
)

func (s SurveyStatus) Valid() bool {
	switch s {
	case SurveyDraft, SurveyReady, SurveyArchived:
		return true
	}
	return false
}

func ParseSurveyStatus(v string) (SurveyStatus, error) {
	s := SurveyStatus(v)
	if !s.Valid() {
		return "", invalidEnum("survey status", v)
	}
	return s, nil
}

func (s *SurveyStatus) UnmarshalText(b []byte) error {
	v, err := ParseSurveyStatus(string(b))
	if err != nil {
		return err
	}
	*s = v
	return nil
}

// DeploymentStatus is the lifecycle state of a deployment. No transition
// graph is enforced: any value may follow any other.
type DeploymentStatus string

const (
	DeploymentDraft     DeploymentStatus = "draft"
	DeploymentScheduled DeploymentStatus = "scheduled"
	DeploymentActive    DeploymentStatus = "active"
	DeploymentCompleted DeploymentStatus = "completed"
	DeploymentCancelled DeploymentStatus = "cancelled"
)

func (s DeploymentStatus) Valid() bool {
	switch s {
	case DeploymentDraft, DeploymentScheduled, DeploymentActive, DeploymentCompleted, DeploymentCancelled:
		return true
	}
	return false
}

func ParseDeploymentStatus(v string) (DeploymentStatus, error) {
	s := DeploymentStatus(v)
	if !s.Valid() {
		return "", invalidEnum("deployment status", v)
	}
	return s, nil
}

func (s *DeploymentStatus) UnmarshalText(b []byte) error {
	v, err := ParseDeploymentStatus(string(b))
	if err != nil {
		return err
	}
	*s = v
	return nil
}

// QuestionType controls how a question is answered.
type QuestionType string

const (
	QuestionSingle QuestionType = "single"
	QuestionMulti  QuestionType = "multi"
	QuestionScale  QuestionType = "scale"
	QuestionFree   QuestionType = "free"
)

func (t QuestionType) Valid() bool {
	switch t {
	case QuestionSingle, QuestionMulti, QuestionScale, QuestionFree:
		return true
	}
	return false
}

func ParseQuestionType(v string) (QuestionType, error) {
	t := QuestionType(v)
	if !t.Valid() {
		return "", invalidEnum("question type", v)
	}
	return t, nil
}

func (t *QuestionType) UnmarshalText(b []byte) error {
	v, err := ParseQuestionType(string(b))
	if err != nil {
		return err
	}
	*t = v
	return nil
}

// AudienceType selects who receives a deployment.
type AudienceType string

const (
	AudienceAll     AudienceType = "all"
	AudienceSegment AudienceType = "segment"
	AudienceCSV     AudienceType = "csv"
)

func (t AudienceType) Valid() bool {
	switch t {
	case AudienceAll, AudienceSegment, AudienceCSV:
		return true
	}
	return false
}

func ParseAudienceType(v string) (AudienceType, error) {
	t := AudienceType(v)
	if !t.Valid() {
		return "", invalidEnum("audience type", v)
	}
	return t, nil
}

func (t *AudienceType) UnmarshalText(b []byte) error {
	v, err := ParseAudienceType(string(b))
	if err != nil {
		return err
	}
	*t = v
	return nil
}
