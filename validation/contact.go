package validation

import "github.com/tfkr-ae/folio/domain"

// ContactInput is the body of a contact form submission.
type ContactInput struct {
	Name           string `json:"name" validate:"required,max=100"`
	Email          string `json:"email" validate:"required,max=254,email"`
	Message        string `json:"message" validate:"required"`
	SubmissionType string `json:"submission_type" validate:"omitempty,max=20"`
}

// ValidateContact checks a contact form input.
func ValidateContact(in ContactInput) Result[*domain.ContactSubmission] {
	trim(&in.Name)
	trim(&in.Email)
	trim(&in.Message)
	trim(&in.SubmissionType)

	if errs := check(in); errs.Len() > 0 {
		return reject[*domain.ContactSubmission](errs)
	}

	if in.SubmissionType == "" {
		in.SubmissionType = domain.DefaultSubmissionType
	}

	return Result[*domain.ContactSubmission]{Value: &domain.ContactSubmission{
		Name:           in.Name,
		Email:          in.Email,
		Message:        in.Message,
		SubmissionType: in.SubmissionType,
	}}
}
