package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/soaringjerry/myndwell/internal/models"
	"github.com/soaringjerry/myndwell/internal/services"
)

type createQuestionRequest struct {
	Code       string              `json:"code" binding:"required"`
	Text       string              `json:"text" binding:"required"`
	Type       models.QuestionType `json:"type" binding:"required"`
	Choices    []models.Choice     `json:"choices"`
	Validation models.Validation   `json:"validation"`
}

// GET /api/questions?search= returns full questions.
func (rt *Router) listQuestions(c *gin.Context) {
	c.JSON(http.StatusOK, rt.services.Questions.Lookup(c.Query("search")))
}

// GET /api/questions/search?q= returns the builder projection.
func (rt *Router) searchQuestions(c *gin.Context) {
	qs := rt.services.Questions.Lookup(c.Query("q"))
	out := make([]models.QuestionView, 0, len(qs))
	for _, q := range qs {
		out = append(out, q.View())
	}
	c.JSON(http.StatusOK, out)
}

func (rt *Router) getQuestion(c *gin.Context) {
	q := rt.services.Questions.GetByID(c.Param("id"))
	if q == nil {
		rt.notFound(c, "question.not_found")
		return
	}
	c.JSON(http.StatusOK, q)
}

func (rt *Router) createQuestion(c *gin.Context) {
	var req createQuestionRequest
	if !rt.bindJSON(c, &req) {
		return
	}
	q, err := rt.services.Questions.Create(&models.Question{
		Code:       req.Code,
		Text:       req.Text,
		Type:       req.Type,
		Choices:    req.Choices,
		Validation: req.Validation,
	})
	if err != nil {
		rt.writeError(c, err)
		return
	}
	rt.audit(c, "create", "question", q.ID, nil)
	c.JSON(http.StatusCreated, q)
}

func (rt *Router) updateQuestion(c *gin.Context) {
	var patch services.QuestionPatch
	if !rt.bindJSON(c, &patch) {
		return
	}
	q, err := rt.services.Questions.Update(c.Param("id"), patch)
	if err != nil {
		rt.writeError(c, err)
		return
	}
	if q == nil {
		rt.notFound(c, "question.not_found")
		return
	}
	rt.audit(c, "update", "question", q.ID, patch)
	c.JSON(http.StatusOK, q)
}
