package tool

import "github.com/cloudwego/eino/schema"

// Tool names are the wire contract with the orchestrator. They match the
// reference agent's catalog verbatim, including the legacy "planting"
// names kept for compatibility with existing prompts.
const (
	ToolSendCallCompanionLink  = "send_call_companion_link"
	ToolApproveDiscount        = "approve_discount"
	ToolAskForApproval         = "sync_ask_for_approval"
	ToolUpdateSalesforceCRM    = "update_salesforce_crm"
	ToolAccessCartInformation  = "access_cart_information"
	ToolModifyCart             = "modify_cart"
	ToolProductRecommendations = "get_product_recommendations"
	ToolCheckAvailability      = "check_product_availability"
	ToolScheduleService        = "schedule_planting_service"
	ToolAvailableTimes         = "get_available_planting_times"
	ToolSendCareInstructions   = "send_care_instructions"
	ToolGenerateQRCode         = "generate_qr_code"
	ToolSendSurvey             = "send_satisfaction_survey"
	ToolCollectFeedback        = "collect_feedback"
	ToolSatisfactionStats      = "get_satisfaction_statistics"
	ToolSendReminder           = "send_appointment_reminder"
	ToolSetNotifications       = "set_appointment_notifications"
	ToolUpcomingAppointments   = "check_upcoming_appointments"
	ToolSendPushNotification   = "send_mobile_app_notification"
	ToolGenerateDeepLink       = "generate_mobile_deep_link"
	ToolSyncCustomerData       = "sync_customer_data_to_app"
	ToolMobileAppAnalytics     = "get_mobile_app_analytics"
)

// Infos returns the declarations the orchestrator binds to its chat model.
func Infos() []*schema.ToolInfo {
	return []*schema.ToolInfo{
		{
			Name: ToolSendCallCompanionLink,
			Desc: "Send a link to the customer's phone to start a video session.",
			ParamsOneOf: schema.NewParamsOneOfByParams(map[string]*schema.ParameterInfo{
				"phone_number": {Type: schema.String, Desc: "Phone number to send the link to", Required: true},
			}),
		},
		{
			Name: ToolApproveDiscount,
			Desc: "Approve a flat or percentage discount requested by the customer. Discounts above 10 are rejected.",
			ParamsOneOf: schema.NewParamsOneOfByParams(map[string]*schema.ParameterInfo{
				"discount_type": {Type: schema.String, Desc: "Either \"percentage\" or \"flat\"", Required: true},
				"value":         {Type: schema.Number, Desc: "Discount value", Required: true},
				"reason":        {Type: schema.String, Desc: "Reason for the discount", Required: true},
			}),
		},
		{
			Name: ToolAskForApproval,
			Desc: "Escalate a discount to a manager for approval.",
			ParamsOneOf: schema.NewParamsOneOfByParams(map[string]*schema.ParameterInfo{
				"discount_type": {Type: schema.String, Desc: "Either \"percentage\" or \"flat\"", Required: true},
				"value":         {Type: schema.Number, Desc: "Discount value", Required: true},
				"reason":        {Type: schema.String, Desc: "Reason for the discount", Required: true},
			}),
		},
		{
			Name: ToolUpdateSalesforceCRM,
			Desc: "Update the Salesforce CRM record with customer details.",
			ParamsOneOf: schema.NewParamsOneOfByParams(map[string]*schema.ParameterInfo{
				"customer_id": {Type: schema.String, Desc: "Customer id", Required: true},
				"details":     {Type: schema.Object, Desc: "Details to record", Required: true},
			}),
		},
		{
			Name: ToolAccessCartInformation,
			Desc: "Read the customer's current cart (booked treatments) and subtotal. Call this before modify_cart.",
			ParamsOneOf: schema.NewParamsOneOfByParams(map[string]*schema.ParameterInfo{
				"customer_id": {Type: schema.String, Desc: "Customer id", Required: true},
			}),
		},
		{
			Name: ToolModifyCart,
			Desc: "Add and/or remove items from the customer's cart.",
			ParamsOneOf: schema.NewParamsOneOfByParams(map[string]*schema.ParameterInfo{
				"customer_id":     {Type: schema.String, Desc: "Customer id", Required: true},
				"items_to_add":    {Type: schema.Array, Desc: "Items with product_id and quantity", Required: true},
				"items_to_remove": {Type: schema.Array, Desc: "Product ids to remove", Required: true},
			}),
		},
		{
			Name: ToolProductRecommendations,
			Desc: "Recommend treatments for a skin concern (e.g. 주름, 색소침착, 여드름).",
			ParamsOneOf: schema.NewParamsOneOfByParams(map[string]*schema.ParameterInfo{
				"skin_concern": {Type: schema.String, Desc: "The skin concern", Required: true},
				"customer_id":  {Type: schema.String, Desc: "Customer id for personalization", Required: true},
			}),
		},
		{
			Name: ToolCheckAvailability,
			Desc: "Check availability of a product at a store or for pickup.",
			ParamsOneOf: schema.NewParamsOneOfByParams(map[string]*schema.ParameterInfo{
				"product_id": {Type: schema.String, Desc: "Product id", Required: true},
				"store_id":   {Type: schema.String, Desc: "Store id, or \"pickup\"", Required: true},
			}),
		},
		{
			Name: ToolScheduleService,
			Desc: "Book a beauty treatment appointment for a date and time range.",
			ParamsOneOf: schema.NewParamsOneOfByParams(map[string]*schema.ParameterInfo{
				"customer_id": {Type: schema.String, Desc: "Customer id", Required: true},
				"date":        {Type: schema.String, Desc: "Desired date (YYYY-MM-DD)", Required: true},
				"time_range":  {Type: schema.String, Desc: "Desired time range, e.g. \"9-12\"", Required: true},
				"details":     {Type: schema.String, Desc: "Treatment details", Required: true},
			}),
		},
		{
			Name: ToolAvailableTimes,
			Desc: "List available treatment time slots for a date.",
			ParamsOneOf: schema.NewParamsOneOfByParams(map[string]*schema.ParameterInfo{
				"date": {Type: schema.String, Desc: "Date to check (YYYY-MM-DD)", Required: true},
			}),
		},
		{
			Name: ToolSendCareInstructions,
			Desc: "Send aftercare instructions for a treatment by email or SMS.",
			ParamsOneOf: schema.NewParamsOneOfByParams(map[string]*schema.ParameterInfo{
				"customer_id":     {Type: schema.String, Desc: "Customer id", Required: true},
				"treatment_type":  {Type: schema.String, Desc: "Treatment type, e.g. 보톡스", Required: true},
				"delivery_method": {Type: schema.String, Desc: "\"email\" or \"sms\"", Required: true},
			}),
		},
		{
			Name: ToolGenerateQRCode,
			Desc: "Generate a discount QR code. Percentage discounts are capped at 10, fixed discounts at 20.",
			ParamsOneOf: schema.NewParamsOneOfByParams(map[string]*schema.ParameterInfo{
				"customer_id":     {Type: schema.String, Desc: "Customer id", Required: true},
				"discount_value":  {Type: schema.Number, Desc: "Discount value", Required: true},
				"discount_type":   {Type: schema.String, Desc: "\"percentage\" (default) or \"fixed\"", Required: true},
				"expiration_days": {Type: schema.Integer, Desc: "Days until expiry", Required: true},
			}),
		},
		{
			Name: ToolSendSurvey,
			Desc: "Send a post-treatment satisfaction survey.",
			ParamsOneOf: schema.NewParamsOneOfByParams(map[string]*schema.ParameterInfo{
				"customer_id":     {Type: schema.String, Desc: "Customer id", Required: true},
				"treatment_type":  {Type: schema.String, Desc: "Treatment completed", Required: true},
				"delivery_method": {Type: schema.String, Desc: "\"email\" or \"sms\"", Required: true},
			}),
		},
		{
			Name: ToolCollectFeedback,
			Desc: "Record a customer rating (1-5 stars) and written feedback.",
			ParamsOneOf: schema.NewParamsOneOfByParams(map[string]*schema.ParameterInfo{
				"customer_id":    {Type: schema.String, Desc: "Customer id", Required: true},
				"rating":         {Type: schema.Integer, Desc: "Rating from 1 to 5", Required: true},
				"feedback":       {Type: schema.String, Desc: "Written feedback", Required: true},
				"treatment_type": {Type: schema.String, Desc: "Treatment rated", Required: true},
			}),
		},
		{
			Name: ToolSatisfactionStats,
			Desc: "Get satisfaction statistics for a clinic.",
			ParamsOneOf: schema.NewParamsOneOfByParams(map[string]*schema.ParameterInfo{
				"clinic_id": {Type: schema.String, Desc: "Clinic id (default \"gangnam\")", Required: false},
			}),
		},
		{
			Name: ToolSendReminder,
			Desc: "Send an appointment reminder (24h, 2h or 30min before).",
			ParamsOneOf: schema.NewParamsOneOfByParams(map[string]*schema.ParameterInfo{
				"customer_id":    {Type: schema.String, Desc: "Customer id", Required: true},
				"appointment_id": {Type: schema.String, Desc: "Appointment id", Required: true},
				"reminder_type":  {Type: schema.String, Desc: "\"24h\", \"2h\" or \"30min\"", Required: false},
			}),
		},
		{
			Name: ToolSetNotifications,
			Desc: "Set notification preferences for an appointment.",
			ParamsOneOf: schema.NewParamsOneOfByParams(map[string]*schema.ParameterInfo{
				"customer_id":    {Type: schema.String, Desc: "Customer id", Required: true},
				"appointment_id": {Type: schema.String, Desc: "Appointment id", Required: true},
				"notifications":  {Type: schema.Object, Desc: "Channel flags, e.g. {\"email\": true}", Required: true},
			}),
		},
		{
			Name: ToolUpcomingAppointments,
			Desc: "List the customer's upcoming appointments.",
			ParamsOneOf: schema.NewParamsOneOfByParams(map[string]*schema.ParameterInfo{
				"customer_id": {Type: schema.String, Desc: "Customer id", Required: true},
			}),
		},
		{
			Name: ToolSendPushNotification,
			Desc: "Send a push notification to the customer's mobile app.",
			ParamsOneOf: schema.NewParamsOneOfByParams(map[string]*schema.ParameterInfo{
				"customer_id":       {Type: schema.String, Desc: "Customer id", Required: true},
				"message":           {Type: schema.String, Desc: "Notification message", Required: true},
				"notification_type": {Type: schema.String, Desc: "\"appointment\", \"promotion\" or \"general\"", Required: false},
			}),
		},
		{
			Name: ToolGenerateDeepLink,
			Desc: "Generate a mobile app deep link to a target screen.",
			ParamsOneOf: schema.NewParamsOneOfByParams(map[string]*schema.ParameterInfo{
				"customer_id":   {Type: schema.String, Desc: "Customer id", Required: true},
				"target_screen": {Type: schema.String, Desc: "\"appointment\", \"profile\" or \"treatments\"", Required: true},
				"parameters":    {Type: schema.Object, Desc: "Extra key=value pairs for the link", Required: false},
			}),
		},
		{
			Name: ToolSyncCustomerData,
			Desc: "Sync customer data to the mobile app.",
			ParamsOneOf: schema.NewParamsOneOfByParams(map[string]*schema.ParameterInfo{
				"customer_id": {Type: schema.String, Desc: "Customer id", Required: true},
			}),
		},
		{
			Name: ToolMobileAppAnalytics,
			Desc: "Get mobile app usage analytics for a customer.",
			ParamsOneOf: schema.NewParamsOneOfByParams(map[string]*schema.ParameterInfo{
				"customer_id": {Type: schema.String, Desc: "Customer id", Required: true},
			}),
		},
	}
}
