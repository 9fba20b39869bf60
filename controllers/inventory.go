package controllers

import (
	"net/http"

	authorization "MediFlow360/config/authorization"
	"MediFlow360/services"
	util "MediFlow360/util"

	"github.com/gin-gonic/gin"
)

func Inventory(r *gin.Engine) {
	inventory := r.Group("/inventory")
	{
		inventory.POST("/create", authorization.Authorize("inventory", "create"), CreateInventoryItem)
		inventory.GET("/fetch/:itemId", authorization.Authorize("inventory", "view"), FetchInventoryItemByCode)
		inventory.GET("/fetchAll", authorization.Authorize("inventory", "view"), FetchAllInventory)
		inventory.PATCH("/update/:itemId", authorization.Authorize("inventory", "update"), UpdateInventoryItem)
		inventory.PATCH("/adjust/:itemId", authorization.Authorize("inventory", "update"), AdjustInventoryStock)
		inventory.DELETE("/delete/:itemId", authorization.Authorize("inventory", "delete"), DeleteInventoryItem)
	}
}

func CreateInventoryItem(c *gin.Context) {
	var data map[string]interface{}
	if err := c.BindJSON(&data); err != nil {
		c.JSON(http.StatusBadRequest, util.FailedResponse(err))
		return
	}
	item, err := services.CreateInventoryItem(c, data)
	if err != nil {
		c.JSON(http.StatusBadRequest, util.FailedResponse(err))
		return
	}
	c.JSON(http.StatusCreated, util.SuccessResponse(item))
}

func FetchInventoryItemByCode(c *gin.Context) {
	item, err := services.FetchInventoryItemByCode(c, c.Param("itemId"))
	if err != nil {
		c.JSON(http.StatusBadRequest, util.FailedResponse(err))
		return
	}
	c.JSON(http.StatusOK, util.SuccessResponse(item))
}

func FetchAllInventory(c *gin.Context) {
	items, err := services.FetchAllInventory(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, util.FailedResponse(err))
		return
	}
	c.JSON(http.StatusOK, util.SuccessResponse(items))
}

func UpdateInventoryItem(c *gin.Context) {
	var data map[string]interface{}
	if err := c.BindJSON(&data); err != nil {
		c.JSON(http.StatusBadRequest, util.FailedResponse(err))
		return
	}
	msg, err := services.UpdateInventoryItem(c, c.Param("itemId"), data)
	if err != nil {
		c.JSON(http.StatusBadRequest, util.FailedResponse(err))
		return
	}
	c.JSON(http.StatusOK, util.SuccessResponse(msg))
}

func AdjustInventoryStock(c *gin.Context) {
	var data map[string]interface{}
	if err := c.BindJSON(&data); err != nil {
		c.JSON(http.StatusBadRequest, util.FailedResponse(err))
		return
	}
	if err := services.AdjustStock(c, c.Param("itemId"), util.ToInt(data["quantity"]), util.GetString(data["reason"])); err != nil {
		c.JSON(http.StatusBadRequest, util.FailedResponse(err))
		return
	}
	c.JSON(http.StatusOK, util.SuccessResponse("stock adjusted"))
}

func DeleteInventoryItem(c *gin.Context) {
	msg, err := services.DeleteInventoryItem(c, c.Param("itemId"))
	if err != nil {
		c.JSON(http.StatusBadRequest, util.FailedResponse(err))
		return
	}
	c.JSON(http.StatusOK, util.SuccessResponse(msg))
}
