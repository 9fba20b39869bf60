package controllers

import (
	"net/http"

	authorization "MediFlow360/config/authorization"
	"MediFlow360/services"
	util "MediFlow360/util"

	"github.com/gin-gonic/gin"
)

func Notification(r *gin.Engine) {
	notification := r.Group("/notification")
	{
		notification.GET("/fetchAll", authorization.Authorize("notification", "view"), FetchMyNotifications)
		notification.GET("/unreadCount", authorization.Authorize("notification", "view"), FetchUnreadCount)
		notification.PATCH("/read/:notificationId", authorization.Authorize("notification", "update"), MarkNotificationRead)
		notification.PATCH("/readAll", authorization.Authorize("notification", "update"), MarkAllNotificationsRead)
	}
	activity := r.Group("/activity")
	{
		activity.GET("/fetchAll", authorization.Authorize("activity", "view"), FetchActivityFeed)
	}
}

func FetchMyNotifications(c *gin.Context) {
	notifications, err := services.FetchMyNotifications(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, util.FailedResponse(err))
		return
	}
	c.JSON(http.StatusOK, util.SuccessResponse(notifications))
}

func FetchUnreadCount(c *gin.Context) {
	count, err := services.FetchUnreadCount(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, util.FailedResponse(err))
		return
	}
	c.JSON(http.StatusOK, util.SuccessResponse(count))
}

func MarkNotificationRead(c *gin.Context) {
	msg, err := services.MarkNotificationRead(c, c.Param("notificationId"))
	if err != nil {
		c.JSON(http.StatusBadRequest, util.FailedResponse(err))
		return
	}
	c.JSON(http.StatusOK, util.SuccessResponse(msg))
}

func MarkAllNotificationsRead(c *gin.Context) {
	msg, err := services.MarkAllNotificationsRead(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, util.FailedResponse(err))
		return
	}
	c.JSON(http.StatusOK, util.SuccessResponse(msg))
}

func FetchActivityFeed(c *gin.Context) {
	activities, err := services.FetchActivityFeed(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, util.FailedResponse(err))
		return
	}
	c.JSON(http.StatusOK, util.SuccessResponse(activities))
}
