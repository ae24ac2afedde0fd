package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/soaringjerry/myndwell/internal/models"
	"github.com/soaringjerry/myndwell/internal/services"
)

type createDeploymentRequest struct {
	CompanyID        string                  `json:"company_id" binding:"required"`
	SurveyTemplateID string                  `json:"survey_template_id" binding:"required"`
	Name             string                  `json:"name" binding:"required"`
	Status           models.DeploymentStatus `json:"status"`
	AudienceType     models.AudienceType     `json:"audience_type"`
	AudienceData     map[string]any          `json:"audience_data"`
	Channel          string                  `json:"channel"`
	StartDate        string                  `json:"start_date"`
	EndDate          string                  `json:"end_date"`
	EmailTemplate    *models.EmailTemplate   `json:"email_template"`
	Reminders        []map[string]any        `json:"reminders"`
	MaxAttempts      int                     `json:"max_attempts"`
}

// updateDeploymentRequest accepts the same date formats as create; the
// outer date fields shadow the patch's own.
type updateDeploymentRequest struct {
	services.DeploymentPatch
	StartDate *string `json:"start_date"`
	EndDate   *string `json:"end_date"`
}

func (r *updateDeploymentRequest) patch() (services.DeploymentPatch, error) {
	p := r.DeploymentPatch
	if r.StartDate != nil {
		t, err := parseDate(*r.StartDate)
		if err != nil {
			return p, err
		}
		p.StartDate = t
	}
	if r.EndDate != nil {
		t, err := parseDate(*r.EndDate)
		if err != nil {
			return p, err
		}
		p.EndDate = t
	}
	return p, nil
}

func (rt *Router) listDeployments(c *gin.Context) {
	c.JSON(http.StatusOK, rt.services.Deployments.GetAll())
}

func (rt *Router) getDeployment(c *gin.Context) {
	d := rt.services.Deployments.GetByID(c.Param("id"))
	if d == nil {
		rt.notFound(c, "deployment.not_found")
		return
	}
	c.JSON(http.StatusOK, d)
}

func (rt *Router) createDeployment(c *gin.Context) {
	var req createDeploymentRequest
	if !rt.bindJSON(c, &req) {
		return
	}
	start, err := parseDate(req.StartDate)
	if err != nil {
		rt.writeError(c, err)
		return
	}
	end, err := parseDate(req.EndDate)
	if err != nil {
		rt.writeError(c, err)
		return
	}
	if req.Status == "" {
		req.Status = models.DeploymentDraft
	}
	if req.AudienceType == "" {
		req.AudienceType = models.AudienceAll
	}
	d, err := rt.services.Deployments.Create(&models.Deployment{
		CompanyID:        req.CompanyID,
		SurveyTemplateID: req.SurveyTemplateID,
		Name:             req.Name,
		Status:           req.Status,
		AudienceType:     req.AudienceType,
		AudienceData:     req.AudienceData,
		Channel:          req.Channel,
		StartDate:        start,
		EndDate:          end,
		EmailTemplate:    req.EmailTemplate,
		Reminders:        req.Reminders,
		MaxAttempts:      req.MaxAttempts,
	})
	if err != nil {
		rt.writeError(c, err)
		return
	}
	rt.audit(c, "create", "deployment", d.ID, nil)
	c.JSON(http.StatusCreated, d)
}

func (rt *Router) updateDeployment(c *gin.Context) {
	var req updateDeploymentRequest
	if !rt.bindJSON(c, &req) {
		return
	}
	patch, err := req.patch()
	if err != nil {
		rt.writeError(c, err)
		return
	}
	d, err := rt.services.Deployments.Update(c.Param("id"), patch)
	if err != nil {
		rt.writeError(c, err)
		return
	}
	if d == nil {
		rt.notFound(c, "deployment.not_found")
		return
	}
	rt.audit(c, "update", "deployment", d.ID, patch)
	c.JSON(http.StatusOK, d)
}

func (rt *Router) deploymentMetrics(c *gin.Context) {
	m := rt.services.Deployments.Metrics(c.Param("id"))
	if m == nil {
		rt.notFound(c, "deployment.not_found")
		return
	}
	c.JSON(http.StatusOK, m)
}
