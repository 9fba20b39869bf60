package controllers

import (
	"net/http"

	authorization "MediFlow360/config/authorization"
	"MediFlow360/services"
	util "MediFlow360/util"

	"github.com/gin-gonic/gin"
)

func Report(r *gin.Engine) {
	report := r.Group("/report")
	{
		report.POST("/request", authorization.Authorize("report", "create"), CreateReportRequest)
		report.GET("/fetch/:requestId", authorization.Authorize("report", "view"), FetchReportRequest)
		report.GET("/fetchAll", authorization.Authorize("report", "view"), FetchAllReportRequests)
	}
}

func CreateReportRequest(c *gin.Context) {
	var data map[string]interface{}
	if err := c.BindJSON(&data); err != nil {
		c.JSON(http.StatusBadRequest, util.FailedResponse(err))
		return
	}
	request, err := services.CreateReportRequest(c, data)
	if err != nil {
		c.JSON(http.StatusBadRequest, util.FailedResponse(err))
		return
	}
	c.JSON(http.StatusAccepted, util.SuccessResponse(request))
}

func FetchReportRequest(c *gin.Context) {
	request, err := services.FetchReportRequest(c, c.Param("requestId"))
	if err != nil {
		c.JSON(http.StatusBadRequest, util.FailedResponse(err))
		return
	}
	c.JSON(http.StatusOK, util.SuccessResponse(request))
}

func FetchAllReportRequests(c *gin.Context) {
	requests, err := services.FetchAllReportRequests(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, util.FailedResponse(err))
		return
	}
	c.JSON(http.StatusOK, util.SuccessResponse(requests))
}
