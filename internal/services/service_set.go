package services

// Store is everything the service layer needs from the repository.
type Store interface {
	CompanyStore
	PersonStore
	QuestionStore
	SurveyTemplateStore
	DeploymentStore
	AuditStore
}

// ServiceSet wires every service to one shared store.
type ServiceSet struct {
	Companies   *CompanyService
	Persons     *PersonService
	Questions   *QuestionService
	Surveys     *SurveyTemplateService
	Deployments *DeploymentService
	Dashboard   *DashboardService
	Reports     *ReportService
	Audit       *AuditService
}

func NewServiceSet(store Store, opts ...Option) *ServiceSet {
	return &ServiceSet{
		Companies:   NewCompanyService(store, opts...),
		Persons:     NewPersonService(store, opts...),
		Questions:   NewQuestionService(store, opts...),
		Surveys:     NewSurveyTemplateService(store, opts...),
		Deployments: NewDeploymentService(store, opts...),
		Dashboard:   NewDashboardService(store),
		Reports:     NewReportService(store),
		Audit:       NewAuditService(store),
	}
}
