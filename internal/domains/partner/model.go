package partner

import (
	"time"

	"github.com/google/uuid"
)

const (
	StatusPending   = "pending"
	StatusContacted = "contacted"
	StatusApproved  = "approved"
	StatusRejected  = "rejected"
)

// Statuses is the full inquiry workflow in lifecycle order.
var Statuses = []string{StatusPending, StatusContacted, StatusApproved, StatusRejected}

func ValidStatus(status string) bool {
	for _, s := range Statuses {
		if s == status {
			return true
		}
	}
	return false
}

// Partner is a partnership inquiry submitted through the public site.
type Partner struct {
	ID           uuid.UUID `json:"id" db:"id"`
	FullName     string    `json:"full_name" db:"full_name"`
	CompanyEmail string    `json:"company_email" db:"company_email"`
	Organization string    `json:"organization" db:"organization"`
	PhoneNumber  string    `json:"phone_number" db:"phone_number"`
	Message      string    `json:"message" db:"message"`
	Status       string    `json:"status" db:"status"`
	CreatedAt    time.Time `json:"created_at" db:"created_at"`
	UpdatedAt    time.Time `json:"updated_at" db:"updated_at"`
}
