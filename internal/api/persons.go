package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/soaringjerry/myndwell/internal/models"
	"github.com/soaringjerry/myndwell/internal/services"
)

type createPersonRequest struct {
	CompanyID string            `json:"company_id" binding:"required"`
	Email     string            `json:"email" binding:"required"`
	Name      string            `json:"name" binding:"required"`
	Roles     []string          `json:"roles"`
	Status    models.UserStatus `json:"status"`
	Metadata  map[string]any    `json:"metadata"`
}

func (rt *Router) listPersons(c *gin.Context) {
	if companyID := c.Query("company_id"); companyID != "" {
		c.JSON(http.StatusOK, rt.services.Persons.GetByCompany(companyID))
		return
	}
	c.JSON(http.StatusOK, rt.services.Persons.GetAll())
}

func (rt *Router) getPerson(c *gin.Context) {
	p := rt.services.Persons.GetByID(c.Param("id"))
	if p == nil {
		rt.notFound(c, "person.not_found")
		return
	}
	c.JSON(http.StatusOK, p)
}

func (rt *Router) createPerson(c *gin.Context) {
	var req createPersonRequest
	if !rt.bindJSON(c, &req) {
		return
	}
	if req.Status == "" {
		req.Status = models.UserActive
	}
	p, err := rt.services.Persons.Create(&models.Person{
		CompanyID: req.CompanyID,
		Email:     req.Email,
		Name:      req.Name,
		Roles:     req.Roles,
		Status:    req.Status,
		Metadata:  req.Metadata,
	})
	if err != nil {
		rt.writeError(c, err)
		return
	}
	rt.audit(c, "create", "person", p.ID, nil)
	c.JSON(http.StatusCreated, p)
}

func (rt *Router) updatePerson(c *gin.Context) {
	var patch services.PersonPatch
	if !rt.bindJSON(c, &patch) {
		return
	}
	p, err := rt.services.Persons.Update(c.Param("id"), patch)
	if err != nil {
		rt.writeError(c, err)
		return
	}
	if p == nil {
		rt.notFound(c, "person.not_found")
		return
	}
	rt.audit(c, "update", "person", p.ID, patch)
	c.JSON(http.StatusOK, p)
}

func (rt *Router) deletePerson(c *gin.Context) {
	id := c.Param("id")
	if !rt.services.Persons.Delete(id) {
		rt.notFound(c, "person.not_found")
		return
	}
	rt.audit(c, "delete", "person", id, nil)
	c.Status(http.StatusNoContent)
}

func (rt *Router) registerPerson(c *gin.Context) {
	var reg services.Registration
	if !rt.bindJSON(c, &reg) {
		return
	}
	p, err := rt.services.Persons.Register(reg)
	if err != nil {
		rt.writeError(c, err)
		return
	}
	rt.audit(c, "register", "person", p.ID, nil)
	c.JSON(http.StatusCreated, gin.H{"ok": true, "msg": rt.t(c, "registration.ok"), "user": p})
}

// Bulk CSV import is accepted at the route level only.
func (rt *Router) registerBulk(c *gin.Context) {
	c.JSON(http.StatusNotImplemented, gin.H{"error": rt.t(c, "registration.bulk_stub")})
}
