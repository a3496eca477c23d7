package contract

// Statuses shared across tool results. Policy failures ride the success
// path as structured payloads so the orchestrator's model can read the
// reason and recover; only boundary-level problems use ToolResult.Error.
const (
	StatusOK       = "ok"
	StatusSuccess  = "success"
	StatusError    = "error"
	StatusRejected = "rejected"
	StatusApproved = "approved"
)

type ToolRequest struct {
	Tool string         `json:"tool"`
	Args map[string]any `json:"args,omitempty"`
}

type ToolResult struct {
	Tool   string `json:"tool"`
	Result any    `json:"result,omitempty"`
	Error  string `json:"error,omitempty"`
}

/* ------------------------------- commerce -------------------------------- */

type CartItem struct {
	ProductID string  `json:"product_id"`
	Name      string  `json:"name"`
	Quantity  int     `json:"quantity"`
	Price     float64 `json:"price"`
}

type CartSnapshot struct {
	Items    []CartItem `json:"items"`
	Subtotal float64    `json:"subtotal"`
}

// CartAddition is one item the caller wants added to the cart.
type CartAddition struct {
	ProductID string `json:"product_id"`
	Quantity  int    `json:"quantity"`
}

type CartModification struct {
	Status       string `json:"status"`
	Message      string `json:"message"`
	ItemsAdded   bool   `json:"items_added"`
	ItemsRemoved bool   `json:"items_removed"`
}

type Recommendation struct {
	ProductID   string  `json:"product_id"`
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Price       float64 `json:"price"`
}

type RecommendationSet struct {
	Recommendations []Recommendation `json:"recommendations"`
}

type Availability struct {
	Available bool   `json:"available"`
	Quantity  int    `json:"quantity"`
	Store     string `json:"store"`
}

/* ------------------------------ scheduling ------------------------------- */

type Appointment struct {
	Status           string `json:"status"`
	AppointmentID    string `json:"appointment_id"`
	Date             string `json:"date"`
	Time             string `json:"time"`
	Treatment        string `json:"treatment"`
	ConfirmationTime string `json:"confirmation_time"`
	Location         string `json:"location"`
}

type UpcomingAppointment struct {
	AppointmentID string `json:"appointment_id"`
	Date          string `json:"date"`
	Time          string `json:"time"`
	Treatment     string `json:"treatment"`
	Location      string `json:"location"`
	Doctor        string `json:"doctor"`
	Status        string `json:"status"`
}

type AppointmentList struct {
	Appointments []UpcomingAppointment `json:"appointments"`
}

/* ------------------------------ engagement ------------------------------- */

type CareDelivery struct {
	Status  string `json:"status"`
	Message string `json:"message"`
}

type SurveyDelivery struct {
	Status     string `json:"status"`
	Message    string `json:"message"`
	SurveyLink string `json:"survey_link"`
}

type FeedbackReceipt struct {
	Status    string `json:"status"`
	Message   string `json:"message"`
	Rating    int    `json:"rating,omitempty"`
	Feedback  string `json:"feedback,omitempty"`
	Treatment string `json:"treatment,omitempty"`
}

type TreatmentRating struct {
	Name   string  `json:"name"`
	Rating float64 `json:"rating"`
}

type SatisfactionStats struct {
	AverageRating      float64           `json:"average_rating"`
	TotalReviews       int               `json:"total_reviews"`
	SatisfactionRate   int               `json:"satisfaction_rate"`
	TopRatedTreatments []TreatmentRating `json:"top_rated_treatments"`
}

type ReminderReceipt struct {
	Status        string `json:"status"`
	Message       string `json:"message"`
	AppointmentID string `json:"appointment_id"`
	ReminderType  string `json:"reminder_type"`
}

type NotificationSettings struct {
	Status        string         `json:"status"`
	Message       string         `json:"message"`
	AppointmentID string         `json:"appointment_id"`
	Notifications map[string]any `json:"notifications"`
}

type PushReceipt struct {
	Status         string `json:"status"`
	Message        string `json:"message"`
	NotificationID string `json:"notification_id"`
	CustomerID     string `json:"customer_id"`
	Type           string `json:"type"`
}

type LinkDelivery struct {
	Status  string `json:"status"`
	Message string `json:"message"`
}

/* ------------------------- discount governance --------------------------- */

type DiscountDecision struct {
	Status  string `json:"status"`
	Message string `json:"message,omitempty"`
}

// QRVoucher carries the voucher payload on success; cap violations come
// back with Status "error" and the reason in Message, same shape as every
// other tool error.
type QRVoucher struct {
	Status         string `json:"status"`
	Message        string `json:"message,omitempty"`
	QRCodeData     string `json:"qr_code_data,omitempty"`
	ExpirationDate string `json:"expiration_date,omitempty"`
}

/* ------------------------------ CRM/mobile ------------------------------- */

type CRMUpdate struct {
	Status  string `json:"status"`
	Message string `json:"message"`
}

// Parameter is one ordered key=value pair appended to a deep link.
// A slice keeps the caller's insertion order, which Go maps cannot.
type Parameter struct {
	Key   string
	Value string
}

type DeepLink struct {
	Status   string `json:"status"`
	DeepLink string `json:"deep_link"`
	QRCode   string `json:"qr_code"`
}

type AppSync struct {
	Status        string `json:"status"`
	Message       string `json:"message"`
	SyncTimestamp string `json:"sync_timestamp"`
	CustomerID    string `json:"customer_id"`
}

type AppPreferences struct {
	Language      string          `json:"language"`
	Theme         string          `json:"theme"`
	Notifications map[string]bool `json:"notifications"`
}

type AppAnalytics struct {
	LastLogin                string         `json:"last_login"`
	TotalSessions            int            `json:"total_sessions"`
	MostUsedFeature          string         `json:"most_used_feature"`
	AppVersion               string         `json:"app_version"`
	DeviceType               string         `json:"device_type"`
	PushNotificationsEnabled bool           `json:"push_notifications_enabled"`
	Preferences              AppPreferences `json:"preferences"`
}
