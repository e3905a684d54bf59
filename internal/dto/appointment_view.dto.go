package dto

// AppointmentView is an appointment rendered for a dashboard, with the
// date/time localized to the business's zone.
type AppointmentView struct {
	ID         uint   `json:"id"`
	BusinessID uint   `json:"business_id"`
	Date       string `json:"date"`
	Time       string `json:"time"`
	LocalDate  string `json:"local_date"` // e.g. "January 2, 2006"
	LocalTime  string `json:"local_time"` // e.g. "3:04 PM"
	Confirmed  bool   `json:"confirmed"`

	BusinessName string `json:"business_name,omitempty"`

	CustomerName  string `json:"customer_name,omitempty"`
	CustomerEmail string `json:"customer_email,omitempty"`
	CustomerPhone string `json:"customer_phone,omitempty"`
	CustomerAge   int    `json:"customer_age,omitempty"`
	CustomerImage string `json:"customer_image,omitempty"`
}
