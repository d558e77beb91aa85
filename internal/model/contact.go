package model

import "time"

const (
	ContactStatusNew     = "new"
	ContactStatusRead    = "read"
	ContactStatusReplied = "replied"
)

// ValidContactStatus reports whether s is a known contact status.
func ValidContactStatus(s string) bool {
	switch s {
	case ContactStatusNew, ContactStatusRead, ContactStatusReplied:
		return true
	}
	return false
}

// Contact represents a contact form submission. It is keyed by the storage
// identifier only; contacts have no application-assigned id.
type Contact struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Phone     *string   `json:"phone,omitempty"`
	Subject   *string   `json:"subject,omitempty"`
	Service   *string   `json:"service,omitempty"` // free-text reference, not a foreign key
	Message   string    `json:"message"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// SubmitContactRequest is the public contact form payload.
type SubmitContactRequest struct {
	Name    string  `json:"name" binding:"required"`
	Email   string  `json:"email" binding:"required"`
	Phone   *string `json:"phone"`
	Subject *string `json:"subject"`
	Service *string `json:"service"`
	Message string  `json:"message" binding:"required"`
}

// ContactSummary is the minimal projection echoed back on submission.
type ContactSummary struct {
	ID    int64  `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

// UpdateContactStatusRequest sets a contact's status.
type UpdateContactStatusRequest struct {
	Status string `json:"status" binding:"required"`
}
