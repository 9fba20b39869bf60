package controllers

import (
	"net/http"

	authorization "MediFlow360/config/authorization"
	"MediFlow360/services"
	util "MediFlow360/util"

	"github.com/gin-gonic/gin"
)

func Medicine(r *gin.Engine) {
	medicine := r.Group("/medicine")
	{
		medicine.POST("/create", authorization.Authorize("medicine", "create"), CreateMedicine)
		medicine.GET("/fetch/:medicineCode", authorization.Authorize("medicine", "view"), FetchMedicineByCode)
		medicine.GET("/fetchAll", authorization.Authorize("medicine", "view"), FetchAllMedicines)
		medicine.PATCH("/update/:medicineCode", authorization.Authorize("medicine", "update"), UpdateMedicine)
		medicine.DELETE("/delete/:medicineCode", authorization.Authorize("medicine", "delete"), DeleteMedicine)
	}
}

func CreateMedicine(c *gin.Context) {
	var data map[string]interface{}
	if err := c.BindJSON(&data); err != nil {
		c.JSON(http.StatusBadRequest, util.FailedResponse(err))
		return
	}
	medicine, err := services.CreateMedicine(c, data)
	if err != nil {
		c.JSON(http.StatusBadRequest, util.FailedResponse(err))
		return
	}
	c.JSON(http.StatusCreated, util.SuccessResponse(medicine))
}

func FetchMedicineByCode(c *gin.Context) {
	medicine, err := services.FetchMedicineByCode(c, c.Param("medicineCode"))
	if err != nil {
		c.JSON(http.StatusBadRequest, util.FailedResponse(err))
		return
	}
	c.JSON(http.StatusOK, util.SuccessResponse(medicine))
}

func FetchAllMedicines(c *gin.Context) {
	medicines, err := services.FetchAllMedicines(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, util.FailedResponse(err))
		return
	}
	c.JSON(http.StatusOK, util.SuccessResponse(medicines))
}

func UpdateMedicine(c *gin.Context) {
	var data map[string]interface{}
	if err := c.BindJSON(&data); err != nil {
		c.JSON(http.StatusBadRequest, util.FailedResponse(err))
		return
	}
	msg, err := services.UpdateMedicineByCode(c, c.Param("medicineCode"), data)
	if err != nil {
		c.JSON(http.StatusBadRequest, util.FailedResponse(err))
		return
	}
	c.JSON(http.StatusOK, util.SuccessResponse(msg))
}

func DeleteMedicine(c *gin.Context) {
	msg, err := services.DeleteMedicineByCode(c, c.Param("medicineCode"))
	if err != nil {
		c.JSON(http.StatusBadRequest, util.FailedResponse(err))
		return
	}
	c.JSON(http.StatusOK, util.SuccessResponse(msg))
}
