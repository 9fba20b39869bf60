package util

// Collection names.
const (
	UserCollection          = "USER"
	RoleCollection          = "ROLE"
	TenantCollection        = "TENANT"
	MedicineCollection      = "MEDICINE"
	AppointmentCollection   = "APPOINTMENT"
	DoctorSlotCollection    = "DOCTOR_TIMESLOTS"
	PrescriptionCollection  = "PRESCRIPTION"
	InventoryCollection     = "INVENTORY"
	OrderCollection         = "ORDER"
	FinanceCollection       = "FINANCE"
	StockAuditCollection    = "STOCK_AUDIT"
	PriceCollection         = "PRICE"
	NotificationCollection  = "NOTIFICATION"
	ActivityCollection      = "ACTIVITY"
	ConversationCollection  = "CONVERSATION"
	MessageCollection       = "MESSAGE"
	TemplateCollection      = "TEMPLATE"
	PatientRecordCollection = "PATIENT_RECORD"
	ReportRequestCollection = "REPORT_REQUEST"
)

// Cache key prefixes.
const (
	UserKey          = "USER_"
	RoleKey          = "ROLE_"
	TenantKey        = "TENANT_"
	MedicineKey      = "MEDICINE_"
	AppointmentKey   = "APPOINTMENT_"
	PrescriptionKey  = "PRESCRIPTION_"
	InventoryKey     = "INVENTORY_"
	OrderKey         = "ORDER_"
	TemplateKey      = "TEMPLATE_"
	PatientRecordKey = "PATIENT_RECORD_"
)

// Code prefixes for generated surrogate ids.
const (
	UserCodePrefix          = "U"
	TenantCodePrefix        = "T"
	MedicineCodePrefix      = "MED"
	AppointmentCodePrefix   = "APT"
	PrescriptionCodePrefix  = "RX"
	InventoryCodePrefix     = "INV"
	OrderCodePrefix         = "ORD"
	FinanceCodePrefix       = "FIN"
	StockAuditCodePrefix    = "AUD"
	NotificationCodePrefix  = "NTF"
	ActivityCodePrefix      = "ACT"
	ConversationCodePrefix  = "CNV"
	MessageCodePrefix       = "MSG"
	TemplateCodePrefix      = "TPL"
	ReportRequestCodePrefix = "RPT"
	RoleCodePrefix          = "ROLE"
)

// Error messages.
const (
	INVALID_USER_TO_ACCESS                 = "this user does not have access"
	UNABLE_TO_FETCH_CODE_FROM_CONTEXT      = "unable to fetch code from context"
	UNABLE_TO_FETCH_TENANT_ID              = "unable to fetch tenantId from context"
	EMAIL_NOT_PROVIDED                     = "email not provided"
	PHONE_NUMBER_NOT_PROVIDED              = "phone number not provided"
	PASSWORD_NOT_PROVIDED                  = "password not provided"
	PLEASE_PROVIDE_EMAIL_OR_PHONE          = "please provide email or phoneNo"
	INCORRECT_PASSWORD                     = "incorrect password"
	ACCOUNT_BLOCKED                        = "account blocked after too many failed logins"
	USER_ALREADY_EXISTS                    = "user already exists with this email or phoneNo"
	ROLE_NAME_ALREADY_EXISTS               = "role already exists with this name"
	RECORD_NOT_FOUND                       = "record not found"
	NO_FIELDS_PROVIDED_TO_UPDATE           = "no fields provided to update"
	TENANT_MISMATCH                        = "record belongs to another tenant"
	MEDICINE_ALREADY_EXISTS_WITH_THIS_NAME = "medicine already exists with this name"
	SLOT_UNAVAILABLE                       = "slot is unavailable"
	SLOT_ALREADY_BOOKED                    = "slot is already booked"
	NO_TIME_SLOT_AVAILABLE_FOR_THIS_DATE   = "no time slot available for this date"
	DOCTOR_WEEKLY_OFF                      = "doctor is on weekly off"
	DOCTOR_IS_ON_LEAVE                     = "doctor is on leave"
	INVALID_STATUS_TRANSITION              = "invalid status transition"
	PRESCRIPTION_ALREADY_DISPENSED         = "prescription item already dispensed"
	BATCH_EXPIRED                          = "batch is expired"
	INSUFFICIENT_STOCK                     = "insufficient stock for medicine"
	QUANTITY_MUST_BE_POSITIVE              = "quantity must be positive"
	AMOUNT_MUST_BE_NON_ZERO                = "amount must be non zero"
	NOT_A_PARTICIPANT                      = "user is not a participant of this conversation"
	TEMPLATE_PLACEHOLDER_MISSING           = "required placeholder value missing"
	UNSUPPORTED_REPORT_KIND                = "unsupported report kind"
	AUDIT_LINES_MUST_BE_ARRAY              = "audit lines must be an array"
	LINES_MUST_BE_ARRAY                    = "order lines must be an array"
	ITEMS_MUST_BE_ARRAY                    = "prescription items must be an array"
	PARTICIPANTS_MUST_BE_TWO               = "conversation needs exactly two participants"
)
