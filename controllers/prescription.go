package controllers

import (
	"net/http"

	authorization "MediFlow360/config/authorization"
	"MediFlow360/services"
	util "MediFlow360/util"

	"github.com/gin-gonic/gin"
)

func Prescription(r *gin.Engine) {
	prescription := r.Group("/prescription")
	{
		prescription.POST("/create", authorization.Authorize("prescription", "create"), CreatePrescription)
		prescription.GET("/fetch/:prescriptionId", authorization.Authorize("prescription", "view"), FetchPrescriptionByCode)
		prescription.GET("/fetchAll", authorization.Authorize("prescription", "view"), FetchAllPrescriptions)
		prescription.PATCH("/update/:prescriptionId", authorization.Authorize("prescription", "update"), UpdatePrescriptionNotes)
	}
}

func CreatePrescription(c *gin.Context) {
	var data map[string]interface{}
	if err := c.BindJSON(&data); err != nil {
		c.JSON(http.StatusBadRequest, util.FailedResponse(err))
		return
	}
	prescription, err := services.CreatePrescription(c, data)
	if err != nil {
		c.JSON(http.StatusBadRequest, util.FailedResponse(err))
		return
	}
	c.JSON(http.StatusCreated, util.SuccessResponse(prescription))
}

func FetchPrescriptionByCode(c *gin.Context) {
	prescription, err := services.FetchPrescriptionByCode(c, c.Param("prescriptionId"))
	if err != nil {
		c.JSON(http.StatusBadRequest, util.FailedResponse(err))
		return
	}
	c.JSON(http.StatusOK, util.SuccessResponse(prescription))
}

func FetchAllPrescriptions(c *gin.Context) {
	prescriptions, err := services.FetchAllPrescriptions(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, util.FailedResponse(err))
		return
	}
	c.JSON(http.StatusOK, util.SuccessResponse(prescriptions))
}

func UpdatePrescriptionNotes(c *gin.Context) {
	var data map[string]interface{}
	if err := c.BindJSON(&data); err != nil {
		c.JSON(http.StatusBadRequest, util.FailedResponse(err))
		return
	}
	msg, err := services.UpdatePrescriptionNotes(c, c.Param("prescriptionId"), data)
	if err != nil {
		c.JSON(http.StatusBadRequest, util.FailedResponse(err))
		return
	}
	c.JSON(http.StatusOK, util.SuccessResponse(msg))
}
