package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/soaringjerry/myndwell/internal/models"
	"github.com/soaringjerry/myndwell/internal/services"
)

type createCompanyRequest struct {
	Name    string   `json:"name" binding:"required"`
	Domains []string `json:"domains"`
	Status  string   `json:"status"`
}

func (rt *Router) listCompanies(c *gin.Context) {
	c.JSON(http.StatusOK, rt.services.Companies.GetAll())
}

func (rt *Router) getCompany(c *gin.Context) {
	co := rt.services.Companies.GetByID(c.Param("id"))
	if co == nil {
		rt.notFound(c, "company.not_found")
		return
	}
	c.JSON(http.StatusOK, co)
}

func (rt *Router) createCompany(c *gin.Context) {
	var req createCompanyRequest
	if !rt.bindJSON(c, &req) {
		return
	}
	status := req.Status
	if status == "" {
		status = "active"
	}
	co, err := rt.services.Companies.Create(&models.Company{Name: req.Name, Domains: req.Domains, Status: status})
	if err != nil {
		rt.writeError(c, err)
		return
	}
	rt.audit(c, "create", "company", co.ID, nil)
	c.JSON(http.StatusCreated, co)
}

func (rt *Router) updateCompany(c *gin.Context) {
	var p services.CompanyPatch
	if !rt.bindJSON(c, &p) {
		return
	}
	co, err := rt.services.Companies.Update(c.Param("id"), p)
	if err != nil {
		rt.writeError(c, err)
		return
	}
	if co == nil {
		rt.notFound(c, "company.not_found")
		return
	}
	rt.audit(c, "update", "company", co.ID, p)
	c.JSON(http.StatusOK, co)
}

func (rt *Router) deleteCompany(c *gin.Context) {
	id := c.Param("id")
	if !rt.services.Companies.Delete(id) {
		rt.notFound(c, "company.not_found")
		return
	}
	rt.audit(c, "delete", "company", id, nil)
	c.Status(http.StatusNoContent)
}

func (rt *Router) listCompanyPersons(c *gin.Context) {
	c.JSON(http.StatusOK, rt.services.Persons.GetByCompany(c.Param("id")))
}
