package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/soaringjerry/myndwell/internal/models"
	"github.com/soaringjerry/myndwell/internal/services"
)

type createSurveyRequest struct {
	Name        string                  `json:"name" binding:"required"`
	Version     string                  `json:"version"`
	Program     string                  `json:"program"`
	Status      models.SurveyStatus     `json:"status"`
	Description string                  `json:"description"`
	Questions   []models.SurveyQuestion `json:"questions"`
}

func (rt *Router) listSurveys(c *gin.Context) {
	c.JSON(http.StatusOK, rt.services.Surveys.GetAll())
}

func (rt *Router) getSurvey(c *gin.Context) {
	t := rt.services.Surveys.GetByID(c.Param("id"))
	if t == nil {
		rt.notFound(c, "survey.not_found")
		return
	}
	c.JSON(http.StatusOK, t)
}

func (rt *Router) createSurvey(c *gin.Context) {
	var req createSurveyRequest
	if !rt.bindJSON(c, &req) {
		return
	}
	if req.Version == "" {
		req.Version = "1.0"
	}
	if req.Status == "" {
		req.Status = models.SurveyDraft
	}
	t, err := rt.services.Surveys.Create(&models.SurveyTemplate{
		Name:        req.Name,
		Version:     req.Version,
		Program:     req.Program,
		Status:      req.Status,
		Description: req.Description,
		Questions:   req.Questions,
	})
	if err != nil {
		rt.writeError(c, err)
		return
	}
	rt.audit(c, "create", "survey_template", t.ID, nil)
	c.JSON(http.StatusCreated, t)
}

func (rt *Router) updateSurvey(c *gin.Context) {
	var patch services.SurveyTemplatePatch
	if !rt.bindJSON(c, &patch) {
		return
	}
	t, err := rt.services.Surveys.Update(c.Param("id"), patch)
	if err != nil {
		rt.writeError(c, err)
		return
	}
	if t == nil {
		rt.notFound(c, "survey.not_found")
		return
	}
	rt.audit(c, "update", "survey_template", t.ID, patch)
	c.JSON(http.StatusOK, t)
}
