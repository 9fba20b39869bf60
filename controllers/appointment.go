package controllers

import (
	"net/http"

	authorization "MediFlow360/config/authorization"
	"MediFlow360/services"
	util "MediFlow360/util"

	"github.com/gin-gonic/gin"
)

func Appointment(r *gin.Engine) {
	appointment := r.Group("/appointment")
	{
		appointment.POST("/create", authorization.Authorize("appointment", "create"), CreateAppointment)
		appointment.GET("/fetch/:appointmentId", authorization.Authorize("appointment", "view"), FetchAppointmentByCode)
		appointment.GET("/fetchAll", authorization.Authorize("appointment", "view"), FetchAllAppointments)
		appointment.PATCH("/status/:appointmentId", authorization.Authorize("appointment", "update"), UpdateAppointmentStatus)
		appointment.DELETE("/delete/:appointmentId", authorization.Authorize("appointment", "delete"), DeleteAppointmentByCode)
	}
}

func CreateAppointment(c *gin.Context) {
	var data map[string]interface{}
	if err := c.BindJSON(&data); err != nil {
		c.JSON(http.StatusBadRequest, util.FailedResponse(err))
		return
	}
	appointment, err := services.CreateAppointment(c, data)
	if err != nil {
		c.JSON(http.StatusBadRequest, util.FailedResponse(err))
		return
	}
	c.JSON(http.StatusCreated, util.SuccessResponse(appointment))
}

func FetchAppointmentByCode(c *gin.Context) {
	appointment, err := services.FetchAppointmentByCode(c, c.Param("appointmentId"))
	if err != nil {
		c.JSON(http.StatusBadRequest, util.FailedResponse(err))
		return
	}
	c.JSON(http.StatusOK, util.SuccessResponse(appointment))
}

func FetchAllAppointments(c *gin.Context) {
	appointments, err := services.FetchAllAppointments(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, util.FailedResponse(err))
		return
	}
	c.JSON(http.StatusOK, util.SuccessResponse(appointments))
}

func UpdateAppointmentStatus(c *gin.Context) {
	var data map[string]interface{}
	if err := c.BindJSON(&data); err != nil {
		c.JSON(http.StatusBadRequest, util.FailedResponse(err))
		return
	}
	msg, err := services.UpdateAppointmentStatus(c, c.Param("appointmentId"), data)
	if err != nil {
		c.JSON(http.StatusBadRequest, util.FailedResponse(err))
		return
	}
	c.JSON(http.StatusOK, util.SuccessResponse(msg))
}

func DeleteAppointmentByCode(c *gin.Context) {
	msg, err := services.DeleteAppointmentByCode(c, c.Param("appointmentId"))
	if err != nil {
		c.JSON(http.StatusBadRequest, util.FailedResponse(err))
		return
	}
	c.JSON(http.StatusOK, util.SuccessResponse(msg))
}
