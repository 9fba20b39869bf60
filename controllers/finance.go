package controllers

import (
	"net/http"

	authorization "MediFlow360/config/authorization"
	"MediFlow360/services"
	util "MediFlow360/util"

	"github.com/gin-gonic/gin"
)

func Finance(r *gin.Engine) {
	finance := r.Group("/finance")
	{
		finance.POST("/create", authorization.Authorize("finance", "create"), CreateFinanceEntry)
		finance.GET("/fetchAll", authorization.Authorize("finance", "view"), FetchAllFinanceEntries)
		finance.GET("/summary", authorization.Authorize("finance", "view"), FetchFinanceSummary)
		finance.GET("/balance", authorization.Authorize("finance", "view"), FetchFinanceBalance)
	}
}

func CreateFinanceEntry(c *gin.Context) {
	var data map[string]interface{}
	if err := c.BindJSON(&data); err != nil {
		c.JSON(http.StatusBadRequest, util.FailedResponse(err))
		return
	}
	entry, err := services.CreateFinanceEntry(c, data)
	if err != nil {
		c.JSON(http.StatusBadRequest, util.FailedResponse(err))
		return
	}
	c.JSON(http.StatusCreated, util.SuccessResponse(entry))
}

func FetchAllFinanceEntries(c *gin.Context) {
	entries, err := services.FetchAllFinanceEntries(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, util.FailedResponse(err))
		return
	}
	c.JSON(http.StatusOK, util.SuccessResponse(entries))
}

func FetchFinanceSummary(c *gin.Context) {
	summary, err := services.FetchFinanceSummary(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, util.FailedResponse(err))
		return
	}
	c.JSON(http.StatusOK, util.SuccessResponse(summary))
}

func FetchFinanceBalance(c *gin.Context) {
	balance, err := services.FetchFinanceBalance(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, util.FailedResponse(err))
		return
	}
	c.JSON(http.StatusOK, util.SuccessResponse(balance))
}
