package role

import "time"

type Role struct {
	RoleName   string                   `json:"roleName" bson:"roleName"`
	RoleCode   string                   `json:"roleCode" bson:"roleCode"`
	Privileges []map[string]interface{} `json:"privileges" bson:"privileges"`
	CreatedAt  time.Time                `json:"createdAt" bson:"createdAt"`
	CreatedBy  string                   `json:"createdBy" bson:"createdBy"`
	UpdatedAt  time.Time                `json:"updatedAt" bson:"updatedAt"`
	UpdatedBy  string                   `json:"updatedBy" bson:"updatedBy"`
}

func all(resources ...string) []map[string]interface{} {
	privileges := []map[string]interface{}{}
	for _, r := range resources {
		privileges = append(privileges, map[string]interface{}{
			"resource": r,
			"actions":  []interface{}{"*"},
		})
	}
	return privileges
}

func view(resources ...string) []map[string]interface{} {
	privileges := []map[string]interface{}{}
	for _, r := range resources {
		privileges = append(privileges, map[string]interface{}{
			"resource": r,
			"actions":  []interface{}{"view"},
		})
	}
	return privileges
}

func grant(resource string, actions ...string) map[string]interface{} {
	list := []interface{}{}
	for _, a := range actions {
		list = append(list, a)
	}
	return map[string]interface{}{
		"resource": resource,
		"actions":  list,
	}
}

/*
* Defaults returns the roles seeded on first boot. ADMIN bypasses the
* privilege check entirely, so it carries no privilege list.
 */
func Defaults() []Role {
	now := time.Now()
	doctor := Role{
		RoleName: "Doctor",
		RoleCode: "DOCTOR",
		Privileges: append(
			all("appointment", "prescription", "patientRecord", "conversation", "template", "notification"),
			view("user", "medicine", "activity")...,
		),
	}
	pharmacyStaff := Role{
		RoleName: "Pharmacy Staff",
		RoleCode: "PHARMACY_STAFF",
		Privileges: append(
			all("inventory", "order", "stockAudit", "finance", "price", "report", "template", "conversation", "notification"),
			view("medicine", "prescription", "activity", "user")...,
		),
	}
	distributor := Role{
		RoleName: "Distributor",
		RoleCode: "DISTRIBUTOR",
		Privileges: append(
			all("order", "conversation", "notification"),
			view("medicine", "activity")...,
		),
	}
	patient := Role{
		RoleName: "Patient",
		RoleCode: "PATIENT",
		Privileges: append(
			all("conversation", "notification"),
			grant("appointment", "create", "view", "update"),
			grant("patientRecord", "view", "update"),
			grant("prescription", "view"),
			grant("order", "view"),
		),
	}
	roles := []Role{doctor, pharmacyStaff, distributor, patient}
	for i := range roles {
		roles[i].CreatedAt = now
		roles[i].UpdatedAt = now
		roles[i].CreatedBy = "system"
		roles[i].UpdatedBy = "system"
	}
	return roles
}
