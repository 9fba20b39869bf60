package controllers

import (
	"io"
	"net/http"

	"MediFlow360/realtime"
	"MediFlow360/services"
	util "MediFlow360/util"

	"github.com/gin-gonic/gin"
)

func Realtime(r *gin.Engine) {
	r.GET("/events/stream", StreamEvents)
}

/*
 * StreamEvents
 * - joins the caller to its personal room and its tenant room
 * - pushes hub events over SSE until the client disconnects
 */
func StreamEvents(c *gin.Context) {
	c.Writer.Header().Set("Content-Type", "text/event-stream")
	c.Writer.Header().Set("Cache-Control", "no-cache")
	c.Writer.Header().Set("Connection", "keep-alive")

	code, err := services.GetCode(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, util.FailedResponse(err))
		return
	}
	rooms := []string{realtime.UserRoom(code)}
	if tenantId, err := services.GetTenantID(c); err == nil {
		rooms = append(rooms, realtime.TenantRoom(tenantId))
	}

	client := make(chan realtime.Event, 8)
	realtime.DefaultHub.Join(client, rooms...)
	defer realtime.DefaultHub.Leave(client)

	c.Stream(func(w io.Writer) bool {
		select {
		case event, ok := <-client:
			if !ok {
				return false
			}
			c.SSEvent(event.Kind, event)
			return true
		case <-c.Request.Context().Done():
			return false
		}
	})
}
