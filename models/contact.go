package models

import "time"

// Contact submission status values.
const (
	ContactStatusNew     = "new"
	ContactStatusRead    = "read"
	ContactStatusReplied = "replied"
)

// Contact is a support/contact-form submission.
type Contact struct {
	ID        string    `json:"id" bson:"_id,omitempty"`
	FirstName string    `json:"firstName" bson:"firstName" validate:"required"`
	LastName  string    `json:"lastName" bson:"lastName" validate:"required"`
	Email     string    `json:"email" bson:"email" validate:"required,email"`
	Phone     string    `json:"phone,omitempty" bson:"phone,omitempty"`
	Subject   string    `json:"subject,omitempty" bson:"subject,omitempty"`
	Message   string    `json:"message" bson:"message" validate:"required"`
	Status    string    `json:"status" bson:"status" validate:"omitempty,oneof=new read replied"`
	CreatedAt time.Time `json:"createdAt" bson:"createdAt"`
}

// ApplyDefaults fills the documented default values on a new submission.
func (m *Contact) ApplyDefaults(now time.Time) {
	if m.Status == "" {
		m.Status = ContactStatusNew
	}
	if m.CreatedAt.IsZero() {
		m.CreatedAt = now
	}
}
