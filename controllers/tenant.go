package controllers

import (
	"net/http"

	authorization "MediFlow360/config/authorization"
	"MediFlow360/services"
	util "MediFlow360/util"

	"github.com/gin-gonic/gin"
)

func Tenant(r *gin.Engine) {
	tenant := r.Group("/tenant")
	{
		tenant.POST("/create", authorization.Authorize("tenant", "create"), CreateTenant)
		tenant.GET("/fetch/:tenantCode", authorization.Authorize("tenant", "view"), FetchTenantByCode)
		tenant.GET("/fetchAll", authorization.Authorize("tenant", "view"), FetchAllTenants)
		tenant.PATCH("/update/:tenantCode", authorization.Authorize("tenant", "update"), UpdateTenant)
		tenant.DELETE("/delete/:tenantCode", authorization.Authorize("tenant", "delete"), DeleteTenant)
	}
}

func CreateTenant(c *gin.Context) {
	var data map[string]interface{}
	if err := c.BindJSON(&data); err != nil {
		c.JSON(http.StatusBadRequest, util.FailedResponse(err))
		return
	}
	tenant, err := services.CreateTenant(c, data)
	if err != nil {
		c.JSON(http.StatusBadRequest, util.FailedResponse(err))
		return
	}
	c.JSON(http.StatusCreated, util.SuccessResponse(tenant))
}

func FetchTenantByCode(c *gin.Context) {
	tenant, err := services.FetchTenantByCode(c, c.Param("tenantCode"))
	if err != nil {
		c.JSON(http.StatusBadRequest, util.FailedResponse(err))
		return
	}
	c.JSON(http.StatusOK, util.SuccessResponse(tenant))
}

func FetchAllTenants(c *gin.Context) {
	tenants, err := services.FetchAllTenants(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, util.FailedResponse(err))
		return
	}
	c.JSON(http.StatusOK, util.SuccessResponse(tenants))
}

func UpdateTenant(c *gin.Context) {
	var data map[string]interface{}
	if err := c.BindJSON(&data); err != nil {
		c.JSON(http.StatusBadRequest, util.FailedResponse(err))
		return
	}
	msg, err := services.UpdateTenantByCode(c, c.Param("tenantCode"), data)
	if err != nil {
		c.JSON(http.StatusBadRequest, util.FailedResponse(err))
		return
	}
	c.JSON(http.StatusOK, util.SuccessResponse(msg))
}

func DeleteTenant(c *gin.Context) {
	msg, err := services.DeleteTenantByCode(c, c.Param("tenantCode"))
	if err != nil {
		c.JSON(http.StatusBadRequest, util.FailedResponse(err))
		return
	}
	c.JSON(http.StatusOK, util.SuccessResponse(msg))
}
