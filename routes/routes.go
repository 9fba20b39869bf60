package routes

import (
	"MediFlow360/controllers"

	authorization "MediFlow360/config/authorization"

	"github.com/gin-gonic/gin"
)

func Routes(r *gin.Engine) {

	//public
	controllers.Auth(r)
	//privateroutes
	r.Use(authorization.JWTAuth())
	controllers.User(r)
	controllers.Role(r)
	controllers.Tenant(r)
	controllers.Medicine(r)
	controllers.Appointment(r)
	controllers.Prescription(r)
	controllers.Inventory(r)
	controllers.Order(r)
	controllers.Finance(r)
	controllers.StockAudit(r)
	controllers.Pricing(r)
	controllers.Notification(r)
	controllers.Conversation(r)
	controllers.Template(r)
	controllers.PatientRecord(r)
	controllers.Report(r)
	controllers.Realtime(r)
}
