package api

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/soaringjerry/myndwell/internal/middleware"
	"github.com/soaringjerry/myndwell/internal/models"
	"github.com/soaringjerry/myndwell/internal/services"
	"github.com/soaringjerry/myndwell/internal/utils"
	"go.uber.org/zap"
)

// BuildInfo is reported by /health and /version.
type BuildInfo struct {
	Commit string
	Time   string
}

type Router struct {
	store    Store
	services *services.ServiceSet
	log      *zap.Logger
	build    BuildInfo
	now      func() time.Time
}

// NewRouter wires one service set to store. The store is owned by the
// caller; the router never replaces it.
func NewRouter(store Store, log *zap.Logger, build BuildInfo, opts ...services.Option) *Router {
	if log == nil {
		log = zap.NewNop()
	}
	opts = append([]services.Option{services.WithLogger(log)}, opts...)
	return &Router{
		store:    store,
		services: services.NewServiceSet(store, opts...),
		log:      log,
		build:    build,
		now:      time.Now,
	}
}

// Services exposes the wired services, e.g. for seeding at startup.
func (rt *Router) Services() *services.ServiceSet { return rt.services }

// Engine builds a gin engine with the standard middleware chain and all
// routes registered.
func (rt *Router) Engine() *gin.Engine {
	r := gin.New()
	r.Use(
		gin.Recovery(),
		middleware.RequestLogger(rt.log),
		middleware.NoStore(),
		middleware.SecureHeaders(),
		middleware.CORS(),
		middleware.Locale(),
	)
	rt.Register(r)
	return r
}

func (rt *Router) Register(r gin.IRouter) {
	r.GET("/health", rt.handleHealth)
	r.GET("/version", rt.handleVersion)

	api := r.Group("/api")
	api.POST("/seed", rt.handleSeed)
	api.GET("/dashboard", rt.handleDashboard)
	api.GET("/audit", rt.handleAudit)
	api.GET("/reports", rt.handleReports)

	companies := api.Group("/companies")
	companies.GET("", rt.listCompanies)
	companies.POST("", rt.createCompany)
	companies.GET("/:id", rt.getCompany)
	companies.PATCH("/:id", rt.updateCompany)
	companies.DELETE("/:id", rt.deleteCompany)
	companies.GET("/:id/persons", rt.listCompanyPersons)
	companies.GET("/:id/surveys", rt.listCompanySurveys)
	companies.GET("/:id/options", rt.companyOptions)

	persons := api.Group("/persons")
	persons.GET("", rt.listPersons)
	persons.POST("", rt.createPerson)
	persons.GET("/:id", rt.getPerson)
	persons.PATCH("/:id", rt.updatePerson)
	persons.DELETE("/:id", rt.deletePerson)

	api.POST("/register", rt.registerPerson)
	api.POST("/register/bulk", rt.registerBulk)

	questions := api.Group("/questions")
	questions.GET("", rt.listQuestions)
	questions.POST("", rt.createQuestion)
	questions.GET("/search", rt.searchQuestions)
	questions.GET("/:id", rt.getQuestion)
	questions.PATCH("/:id", rt.updateQuestion)

	surveys := api.Group("/surveys")
	surveys.GET("", rt.listSurveys)
	surveys.POST("", rt.createSurvey)
	surveys.GET("/:id", rt.getSurvey)
	surveys.PATCH("/:id", rt.updateSurvey)

	deployments := api.Group("/deployments")
	deployments.GET("", rt.listDeployments)
	deployments.POST("", rt.createDeployment)
	deployments.GET("/:id", rt.getDeployment)
	deployments.PATCH("/:id", rt.updateDeployment)
	deployments.GET("/:id/metrics", rt.deploymentMetrics)
	deployments.GET("/:id/monitor", rt.monitorDeployment)
}

func (rt *Router) handleHealth(c *gin.Context) {
	locale := middleware.LocaleFromContext(c.Request.Context())
	c.JSON(http.StatusOK, gin.H{
		"ok":         true,
		"name":       "Myndwell CRM",
		"locale":     locale,
		"msg":        utils.T(locale, "health.ok"),
		"commit":     rt.build.Commit,
		"build_time": rt.build.Time,
		"counts":     rt.store.Counts(),
	})
}

func (rt *Router) handleVersion(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"commit": rt.build.Commit, "build_time": rt.build.Time})
}

// POST /api/seed loads the sample dataset again; it is not idempotent.
func (rt *Router) handleSeed(c *gin.Context) {
	data, err := services.Seed(rt.services)
	if err != nil {
		rt.writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"ok": true, "msg": rt.t(c, "seed.ok"), "data": data, "counts": rt.store.Counts()})
}

func (rt *Router) handleDashboard(c *gin.Context) {
	c.JSON(http.StatusOK, rt.services.Dashboard.Summary())
}

func (rt *Router) handleAudit(c *gin.Context) {
	c.JSON(http.StatusOK, rt.services.Audit.List())
}

func (rt *Router) t(c *gin.Context, key string) string {
	return utils.T(middleware.LocaleFromContext(c.Request.Context()), key)
}

func (rt *Router) writeError(c *gin.Context, err error) {
	status := http.StatusInternalServerError
	if se, ok := services.AsServiceError(err); ok {
		switch se.Code {
		case services.ErrorInvalid:
			status = http.StatusBadRequest
		case services.ErrorNotFound:
			status = http.StatusNotFound
		}
	} else if errors.Is(err, models.ErrInvalidEnum) {
		status = http.StatusBadRequest
	}
	if status == http.StatusInternalServerError {
		_ = c.Error(err)
	}
	c.JSON(status, gin.H{"error": err.Error()})
}

func (rt *Router) notFound(c *gin.Context, key string) {
	rt.writeError(c, services.NewNotFoundError(rt.t(c, key)))
}

// bindJSON decodes the body into dst; on failure it writes a 400 and
// returns false.
func (rt *Router) bindJSON(c *gin.Context, dst any) bool {
	if err := c.ShouldBindJSON(dst); err != nil {
		rt.writeError(c, services.WrapInvalid(rt.t(c, "request.invalid_payload"), err))
		return false
	}
	return true
}

// parseDate accepts RFC 3339 timestamps or plain YYYY-MM-DD dates. Empty
// input yields nil.
func parseDate(v string) (*time.Time, error) {
	if v == "" {
		return nil, nil
	}
	for _, layout := range []string{time.RFC3339, time.DateOnly} {
		if t, err := time.Parse(layout, v); err == nil {
			return &t, nil
		}
	}
	return nil, services.NewInvalidError("invalid date " + v)
}
