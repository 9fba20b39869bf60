package controllers

import (
	"net/http"

	authorization "MediFlow360/config/authorization"
	"MediFlow360/services"
	util "MediFlow360/util"

	"github.com/gin-gonic/gin"
)

func StockAudit(r *gin.Engine) {
	audit := r.Group("/stockAudit")
	{
		audit.POST("/create", authorization.Authorize("stockAudit", "create"), CreateStockAudit)
		audit.GET("/fetch/:auditId", authorization.Authorize("stockAudit", "view"), FetchStockAuditByCode)
		audit.GET("/fetchAll", authorization.Authorize("stockAudit", "view"), FetchAllStockAudits)
		audit.POST("/apply/:auditId", authorization.Authorize("stockAudit", "update"), ApplyStockAudit)
	}
}

func CreateStockAudit(c *gin.Context) {
	var data map[string]interface{}
	if err := c.BindJSON(&data); err != nil {
		c.JSON(http.StatusBadRequest, util.FailedResponse(err))
		return
	}
	audit, err := services.CreateStockAudit(c, data)
	if err != nil {
		c.JSON(http.StatusBadRequest, util.FailedResponse(err))
		return
	}
	c.JSON(http.StatusCreated, util.SuccessResponse(audit))
}

func FetchStockAuditByCode(c *gin.Context) {
	audit, err := services.FetchStockAuditByCode(c, c.Param("auditId"))
	if err != nil {
		c.JSON(http.StatusBadRequest, util.FailedResponse(err))
		return
	}
	c.JSON(http.StatusOK, util.SuccessResponse(audit))
}

func FetchAllStockAudits(c *gin.Context) {
	audits, err := services.FetchAllStockAudits(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, util.FailedResponse(err))
		return
	}
	c.JSON(http.StatusOK, util.SuccessResponse(audits))
}

func ApplyStockAudit(c *gin.Context) {
	msg, err := services.ApplyStockAudit(c, c.Param("auditId"))
	if err != nil {
		c.JSON(http.StatusBadRequest, util.FailedResponse(err))
		return
	}
	c.JSON(http.StatusOK, util.SuccessResponse(msg))
}
