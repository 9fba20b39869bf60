package controllers

import (
	"net/http"

	authorization "MediFlow360/config/authorization"
	"MediFlow360/services"
	util "MediFlow360/util"

	"github.com/gin-gonic/gin"
)

func Template(r *gin.Engine) {
	template := r.Group("/template")
	{
		template.POST("/create", authorization.Authorize("template", "create"), CreateTemplate)
		template.GET("/fetch/:templateId", authorization.Authorize("template", "view"), FetchTemplateByCode)
		template.GET("/fetchAll", authorization.Authorize("template", "view"), FetchAllTemplates)
		template.PATCH("/update/:templateId", authorization.Authorize("template", "update"), UpdateTemplateByCode)
		template.DELETE("/delete/:templateId", authorization.Authorize("template", "delete"), DeleteTemplateByCode)
		template.POST("/render/:templateId", authorization.Authorize("template", "view"), RenderTemplateByCode)
	}
}

func CreateTemplate(c *gin.Context) {
	var data map[string]interface{}
	if err := c.BindJSON(&data); err != nil {
		c.JSON(http.StatusBadRequest, util.FailedResponse(err))
		return
	}
	template, err := services.CreateTemplate(c, data)
	if err != nil {
		c.JSON(http.StatusBadRequest, util.FailedResponse(err))
		return
	}
	c.JSON(http.StatusCreated, util.SuccessResponse(template))
}

func FetchTemplateByCode(c *gin.Context) {
	template, err := services.FetchTemplateByCode(c, c.Param("templateId"))
	if err != nil {
		c.JSON(http.StatusBadRequest, util.FailedResponse(err))
		return
	}
	c.JSON(http.StatusOK, util.SuccessResponse(template))
}

func FetchAllTemplates(c *gin.Context) {
	templates, err := services.FetchAllTemplates(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, util.FailedResponse(err))
		return
	}
	c.JSON(http.StatusOK, util.SuccessResponse(templates))
}

func UpdateTemplateByCode(c *gin.Context) {
	var data map[string]interface{}
	if err := c.BindJSON(&data); err != nil {
		c.JSON(http.StatusBadRequest, util.FailedResponse(err))
		return
	}
	msg, err := services.UpdateTemplateByCode(c, c.Param("templateId"), data)
	if err != nil {
		c.JSON(http.StatusBadRequest, util.FailedResponse(err))
		return
	}
	c.JSON(http.StatusOK, util.SuccessResponse(msg))
}

func DeleteTemplateByCode(c *gin.Context) {
	msg, err := services.DeleteTemplateByCode(c, c.Param("templateId"))
	if err != nil {
		c.JSON(http.StatusBadRequest, util.FailedResponse(err))
		return
	}
	c.JSON(http.StatusOK, util.SuccessResponse(msg))
}

func RenderTemplateByCode(c *gin.Context) {
	var values map[string]interface{}
	if err := c.BindJSON(&values); err != nil {
		c.JSON(http.StatusBadRequest, util.FailedResponse(err))
		return
	}
	html, err := services.RenderTemplateByCode(c, c.Param("templateId"), values)
	if err != nil {
		c.JSON(http.StatusBadRequest, util.FailedResponse(err))
		return
	}
	c.Data(http.StatusOK, "text/html; charset=utf-8", []byte(html))
}
