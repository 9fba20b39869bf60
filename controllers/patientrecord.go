package controllers

import (
	"net/http"

	authorization "MediFlow360/config/authorization"
	"MediFlow360/services"
	util "MediFlow360/util"

	"github.com/gin-gonic/gin"
)

func PatientRecord(r *gin.Engine) {
	record := r.Group("/patientRecord")
	{
		record.PUT("/upsert/:patientId", authorization.Authorize("patientRecord", "update"), UpsertPatientRecord)
		record.GET("/fetch/:patientId", authorization.Authorize("patientRecord", "view"), FetchPatientRecord)
	}
}

func UpsertPatientRecord(c *gin.Context) {
	var data map[string]interface{}
	if err := c.BindJSON(&data); err != nil {
		c.JSON(http.StatusBadRequest, util.FailedResponse(err))
		return
	}
	record, err := services.UpsertPatientRecord(c, c.Param("patientId"), data)
	if err != nil {
		c.JSON(http.StatusBadRequest, util.FailedResponse(err))
		return
	}
	c.JSON(http.StatusOK, util.SuccessResponse(record))
}

func FetchPatientRecord(c *gin.Context) {
	record, err := services.FetchPatientRecord(c, c.Param("patientId"))
	if err != nil {
		c.JSON(http.StatusBadRequest, util.FailedResponse(err))
		return
	}
	c.JSON(http.StatusOK, util.SuccessResponse(record))
}
