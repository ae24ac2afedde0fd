package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

func (rt *Router) listCompanySurveys(c *gin.Context) {
	c.JSON(http.StatusOK, rt.services.Reports.CompanySurveys(c.Param("id")))
}

// GET /api/companies/:id/options feeds the registration form dropdowns.
func (rt *Router) companyOptions(c *gin.Context) {
	opts := rt.services.Reports.CompanyOptions(c.Param("id"))
	if opts == nil {
		rt.notFound(c, "company.not_found")
		return
	}
	c.JSON(http.StatusOK, opts)
}

func (rt *Router) monitorDeployment(c *gin.Context) {
	m := rt.services.Reports.Monitor(c.Param("id"))
	if m == nil {
		rt.notFound(c, "deployment.not_found")
		return
	}
	c.JSON(http.StatusOK, m)
}

func (rt *Router) handleReports(c *gin.Context) {
	c.JSON(http.StatusOK, rt.services.Reports.Reports())
}
