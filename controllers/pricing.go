package controllers

import (
	"net/http"

	authorization "MediFlow360/config/authorization"
	"MediFlow360/services"
	util "MediFlow360/util"

	"github.com/gin-gonic/gin"
)

func Pricing(r *gin.Engine) {
	price := r.Group("/price")
	{
		price.POST("/upsert", authorization.Authorize("price", "create"), UpsertPrices)
		price.GET("/fetchAll", authorization.Authorize("price", "view"), FetchPriceList)
		price.GET("/quote/:medicineCode", authorization.Authorize("price", "view"), FetchPriceQuote)
	}
}

func UpsertPrices(c *gin.Context) {
	var data map[string]interface{}
	if err := c.BindJSON(&data); err != nil {
		c.JSON(http.StatusBadRequest, util.FailedResponse(err))
		return
	}
	msg, err := services.UpsertPrices(c, data)
	if err != nil {
		c.JSON(http.StatusBadRequest, util.FailedResponse(err))
		return
	}
	c.JSON(http.StatusOK, util.SuccessResponse(msg))
}

func FetchPriceList(c *gin.Context) {
	prices, err := services.FetchPriceList(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, util.FailedResponse(err))
		return
	}
	c.JSON(http.StatusOK, util.SuccessResponse(prices))
}

func FetchPriceQuote(c *gin.Context) {
	quote, err := services.FetchPriceQuote(c, c.Param("medicineCode"))
	if err != nil {
		c.JSON(http.StatusBadRequest, util.FailedResponse(err))
		return
	}
	c.JSON(http.StatusOK, util.SuccessResponse(quote))
}
