package controllers

import (
	"net/http"

	authorization "MediFlow360/config/authorization"
	"MediFlow360/services"
	util "MediFlow360/util"

	"github.com/gin-gonic/gin"
)

func Conversation(r *gin.Engine) {
	conversation := r.Group("/conversation")
	{
		conversation.POST("/start", authorization.Authorize("conversation", "create"), StartConversation)
		conversation.GET("/fetchAll", authorization.Authorize("conversation", "view"), FetchMyConversations)
		conversation.POST("/message/:conversationId", authorization.Authorize("conversation", "create"), SendMessage)
		conversation.GET("/messages/:conversationId", authorization.Authorize("conversation", "view"), FetchMessages)
		conversation.PATCH("/read/:conversationId", authorization.Authorize("conversation", "update"), MarkMessagesRead)
	}
}

func StartConversation(c *gin.Context) {
	var data map[string]interface{}
	if err := c.BindJSON(&data); err != nil {
		c.JSON(http.StatusBadRequest, util.FailedResponse(err))
		return
	}
	conversation, err := services.StartConversation(c, data)
	if err != nil {
		c.JSON(http.StatusBadRequest, util.FailedResponse(err))
		return
	}
	c.JSON(http.StatusCreated, util.SuccessResponse(conversation))
}

func FetchMyConversations(c *gin.Context) {
	conversations, err := services.FetchMyConversations(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, util.FailedResponse(err))
		return
	}
	c.JSON(http.StatusOK, util.SuccessResponse(conversations))
}

func SendMessage(c *gin.Context) {
	var data map[string]interface{}
	if err := c.BindJSON(&data); err != nil {
		c.JSON(http.StatusBadRequest, util.FailedResponse(err))
		return
	}
	message, err := services.SendMessage(c, c.Param("conversationId"), data)
	if err != nil {
		c.JSON(http.StatusBadRequest, util.FailedResponse(err))
		return
	}
	c.JSON(http.StatusCreated, util.SuccessResponse(message))
}

func FetchMessages(c *gin.Context) {
	messages, err := services.FetchMessages(c, c.Param("conversationId"))
	if err != nil {
		c.JSON(http.StatusBadRequest, util.FailedResponse(err))
		return
	}
	c.JSON(http.StatusOK, util.SuccessResponse(messages))
}

func MarkMessagesRead(c *gin.Context) {
	msg, err := services.MarkMessagesRead(c, c.Param("conversationId"))
	if err != nil {
		c.JSON(http.StatusBadRequest, util.FailedResponse(err))
		return
	}
	c.JSON(http.StatusOK, util.SuccessResponse(msg))
}
