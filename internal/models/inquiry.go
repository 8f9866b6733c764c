package models

import "time"

// Inquiry is a contact-form submission. Submissions are logged and answered
// with a reference id; nothing is stored.
type Inquiry struct {
	Reference  string    `json:"reference"`
	Name       string    `json:"name"`
	Email      string    `json:"email"`
	Phone      string    `json:"phone,omitempty"`
	Subject    string    `json:"subject,omitempty"`
	Message    string    `json:"message"`
	ReceivedAt time.Time `json:"received_at"`
}
