package partner

import (
	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/go-ozzo/ozzo-validation/v4/is"
)

// CreatePartnerRequest is the public inquiry form payload.
type CreatePartnerRequest struct {
	FullName     string `json:"full_name" binding:"required"`
	CompanyEmail string `json:"company_email" binding:"required"`
	Organization string `json:"organization" binding:"required"`
	PhoneNumber  string `json:"phone_number" binding:"required"`
	Message      string `json:"message" binding:"required"`
}

func (r CreatePartnerRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.FullName,
			validation.Required.Error("full name is required"),
			validation.Length(1, 255),
		),
		validation.Field(&r.CompanyEmail,
			validation.Required.Error("company email is required"),
			validation.Length(1, 255),
			is.Email.Error("company email must be a valid email address"),
		),
		validation.Field(&r.Organization,
			validation.Required.Error("organization is required"),
			validation.Length(1, 255),
		),
		validation.Field(&r.PhoneNumber,
			validation.Required.Error("phone number is required"),
			validation.Length(1, 20),
		),
		validation.Field(&r.Message,
			validation.Required.Error("message is required"),
			validation.Length(1, 1000),
		),
	)
}

// UpdateStatusRequest moves an inquiry through the review workflow.
type UpdateStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

func (r UpdateStatusRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Status,
			validation.Required.Error("status is required"),
			validation.In(StatusPending, StatusContacted, StatusApproved, StatusRejected).
				Error("status must be pending, contacted, approved or rejected"),
		),
	)
}
