package controllers

import (
	"net/http"

	authorization "MediFlow360/config/authorization"
	"MediFlow360/services"
	util "MediFlow360/util"

	"github.com/gin-gonic/gin"
)

func Role(r *gin.Engine) {
	role := r.Group("/role")
	{
		role.POST("/create", authorization.Authorize("role", "create"), CreateRole)
		role.GET("/fetchAll", authorization.Authorize("role", "view"), FetchAllRoles)
		role.PATCH("/update/:roleCode", authorization.Authorize("role", "update"), UpdateRolePrivileges)
	}
}

func CreateRole(c *gin.Context) {
	var data map[string]interface{}
	if err := c.BindJSON(&data); err != nil {
		c.JSON(http.StatusBadRequest, util.FailedResponse(err))
		return
	}
	msg, err := services.CreateRole(c, data)
	if err != nil {
		c.JSON(http.StatusBadRequest, util.FailedResponse(err))
		return
	}
	c.JSON(http.StatusCreated, util.SuccessResponse(msg))
}

func FetchAllRoles(c *gin.Context) {
	roles, err := services.FetchAllRoles(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, util.FailedResponse(err))
		return
	}
	c.JSON(http.StatusOK, util.SuccessResponse(roles))
}

func UpdateRolePrivileges(c *gin.Context) {
	var data map[string]interface{}
	if err := c.BindJSON(&data); err != nil {
		c.JSON(http.StatusBadRequest, util.FailedResponse(err))
		return
	}
	msg, err := services.UpdateRolePrivileges(c, c.Param("roleCode"), data)
	if err != nil {
		c.JSON(http.StatusBadRequest, util.FailedResponse(err))
		return
	}
	c.JSON(http.StatusOK, util.SuccessResponse(msg))
}
