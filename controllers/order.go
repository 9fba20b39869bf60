package controllers

import (
	"net/http"

	authorization "MediFlow360/config/authorization"
	"MediFlow360/services"
	util "MediFlow360/util"

	"github.com/gin-gonic/gin"
)

func Order(r *gin.Engine) {
	order := r.Group("/order")
	{
		order.POST("/sale/create", authorization.Authorize("order", "create"), CreateSaleOrder)
		order.POST("/restock/create", authorization.Authorize("order", "create"), CreateRestockOrder)
		order.GET("/fetch/:orderId", authorization.Authorize("order", "view"), FetchOrderByCode)
		order.GET("/fetchAll", authorization.Authorize("order", "view"), FetchAllOrders)
		order.PATCH("/status/:orderId", authorization.Authorize("order", "update"), UpdateOrderStatus)
	}
}

func CreateSaleOrder(c *gin.Context) {
	var data map[string]interface{}
	if err := c.BindJSON(&data); err != nil {
		c.JSON(http.StatusBadRequest, util.FailedResponse(err))
		return
	}
	order, err := services.CreateSaleOrder(c, data)
	if err != nil {
		c.JSON(http.StatusBadRequest, util.FailedResponse(err))
		return
	}
	c.JSON(http.StatusCreated, util.SuccessResponse(order))
}

func CreateRestockOrder(c *gin.Context) {
	var data map[string]interface{}
	if err := c.BindJSON(&data); err != nil {
		c.JSON(http.StatusBadRequest, util.FailedResponse(err))
		return
	}
	order, err := services.CreateRestockOrder(c, data)
	if err != nil {
		c.JSON(http.StatusBadRequest, util.FailedResponse(err))
		return
	}
	c.JSON(http.StatusCreated, util.SuccessResponse(order))
}

func FetchOrderByCode(c *gin.Context) {
	order, err := services.FetchOrderByCode(c, c.Param("orderId"))
	if err != nil {
		c.JSON(http.StatusBadRequest, util.FailedResponse(err))
		return
	}
	c.JSON(http.StatusOK, util.SuccessResponse(order))
}

func FetchAllOrders(c *gin.Context) {
	orders, err := services.FetchAllOrders(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, util.FailedResponse(err))
		return
	}
	c.JSON(http.StatusOK, util.SuccessResponse(orders))
}

func UpdateOrderStatus(c *gin.Context) {
	var data map[string]interface{}
	if err := c.BindJSON(&data); err != nil {
		c.JSON(http.StatusBadRequest, util.FailedResponse(err))
		return
	}
	msg, err := services.UpdateOrderStatus(c, c.Param("orderId"), data)
	if err != nil {
		c.JSON(http.StatusBadRequest, util.FailedResponse(err))
		return
	}
	c.JSON(http.StatusOK, util.SuccessResponse(msg))
}
