package controllers

import (
	"net/http"

	"MediFlow360/services"
	util "MediFlow360/util"

	"github.com/gin-gonic/gin"
)

// Auth registers the public routes.
func Auth(r *gin.Engine) {
	r.POST("/auth/login", Login)
	r.POST("/auth/register", RegisterPatient)
}

func Login(c *gin.Context) {
	var data map[string]interface{}
	if err := c.BindJSON(&data); err != nil {
		c.JSON(http.StatusBadRequest, util.FailedResponse(err))
		return
	}
	session, err := services.Login(c, data)
	if err != nil {
		c.JSON(http.StatusUnauthorized, util.FailedResponse(err))
		return
	}
	c.JSON(http.StatusOK, util.SuccessResponse(session))
}

/*
* Patients self-register; every other role is created by an admin
* through the user routes.
 */
func RegisterPatient(c *gin.Context) {
	var data map[string]interface{}
	if err := c.BindJSON(&data); err != nil {
		c.JSON(http.StatusBadRequest, util.FailedResponse(err))
		return
	}
	data["roleCode"] = "PATIENT"
	user, err := services.CreateUser(c, data)
	if err != nil {
		c.JSON(http.StatusBadRequest, util.FailedResponse(err))
		return
	}
	c.JSON(http.StatusCreated, util.SuccessResponse(user))
}

func ChangePassword(c *gin.Context) {
	var data map[string]interface{}
	if err := c.BindJSON(&data); err != nil {
		c.JSON(http.StatusBadRequest, util.FailedResponse(err))
		return
	}
	msg, err := services.ChangePassword(c, data)
	if err != nil {
		c.JSON(http.StatusBadRequest, util.FailedResponse(err))
		return
	}
	c.JSON(http.StatusOK, util.SuccessResponse(msg))
}
