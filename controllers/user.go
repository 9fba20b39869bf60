package controllers

import (
	"net/http"

	authorization "MediFlow360/config/authorization"
	"MediFlow360/services"
	util "MediFlow360/util"

	"github.com/gin-gonic/gin"
)

func User(r *gin.Engine) {
	user := r.Group("/user")
	{
		user.POST("/create", authorization.Authorize("user", "create"), CreateUser)
		user.GET("/fetch/:userCode", authorization.Authorize("user", "view"), FetchUserByCode)
		user.GET("/fetchAll", authorization.Authorize("user", "view"), FetchAllUsers)
		user.PATCH("/update/:userCode", authorization.Authorize("user", "update"), UpdateUser)
		user.DELETE("/delete/:userCode", authorization.Authorize("user", "delete"), DeleteUser)
		user.POST("/changePassword", ChangePassword)
	}
}

func CreateUser(c *gin.Context) {
	var data map[string]interface{}
	if err := c.BindJSON(&data); err != nil {
		c.JSON(http.StatusBadRequest, util.FailedResponse(err))
		return
	}
	user, err := services.CreateUser(c, data)
	if err != nil {
		c.JSON(http.StatusBadRequest, util.FailedResponse(err))
		return
	}
	c.JSON(http.StatusCreated, util.SuccessResponse(user))
}

func FetchUserByCode(c *gin.Context) {
	user, err := services.FetchUserByCode(c, c.Param("userCode"))
	if err != nil {
		c.JSON(http.StatusBadRequest, util.FailedResponse(err))
		return
	}
	c.JSON(http.StatusOK, util.SuccessResponse(user))
}

func FetchAllUsers(c *gin.Context) {
	users, err := services.FetchAllUsers(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, util.FailedResponse(err))
		return
	}
	c.JSON(http.StatusOK, util.SuccessResponse(users))
}

func UpdateUser(c *gin.Context) {
	var data map[string]interface{}
	if err := c.BindJSON(&data); err != nil {
		c.JSON(http.StatusBadRequest, util.FailedResponse(err))
		return
	}
	msg, err := services.UpdateUserByCode(c, c.Param("userCode"), data)
	if err != nil {
		c.JSON(http.StatusBadRequest, util.FailedResponse(err))
		return
	}
	c.JSON(http.StatusOK, util.SuccessResponse(msg))
}

func DeleteUser(c *gin.Context) {
	msg, err := services.DeleteUserByCode(c, c.Param("userCode"))
	if err != nil {
		c.JSON(http.StatusBadRequest, util.FailedResponse(err))
		return
	}
	c.JSON(http.StatusOK, util.SuccessResponse(msg))
}
