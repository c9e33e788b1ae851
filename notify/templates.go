package notify

import (
	"bytes"
	"fmt"
	"text/template"

	"github.com/tfkr-ae/folio/domain"
)

// Message kinds, one per template.
const (
	KindContactOwner  = "contact_owner"
	KindHireOwner     = "hire_owner"
	KindHireApplicant = "hire_applicant"
)

var templates = template.Must(template.New("notify").Funcs(template.FuncMap{
	"orNotProvided": func(s string) string {
		if s == "" {
			return "Not provided"
		}
		return s
	},
	"deref": func(s *string) string {
		if s == nil {
			return ""
		}
		return *s
	},
}).Parse(`
{{- define "contact_owner_subject" }}New Contact Form Submission from {{ .Name }}{{ end -}}
{{- define "contact_owner" -}}
Message: {{ .Message }}

Email: {{ .Email }}
{{- end -}}

{{- define "hire_owner_subject" }}New Hire Request from {{ .Request.CompanyName }}{{ end -}}
{{- define "hire_owner" -}}
--- Hire Request Details ---
Applicant Name: {{ .Request.ApplicantName }}
Applicant Email: {{ .Request.ApplicantEmail }}
Applicant Phone: {{ .Request.ApplicantPhone }}
Company: {{ .Request.CompanyName }}
Role: {{ .Request.Role }}
Offered Salary: {{ .Request.OfferedSalary.StringFixed 2 }}

Message:
{{ deref .Request.Message }}

--- {{ .Profile.Name }}'s Profile ---
Email: {{ orNotProvided .Profile.Email }}
Phone: {{ orNotProvided .Profile.Phone }}
GitHub: {{ orNotProvided .Profile.GitHubURL }}
LinkedIn: {{ orNotProvided .Profile.LinkedInURL }}
Certifications: {{ orNotProvided .Profile.CertsURL }}
Resume: {{ orNotProvided .Profile.ResumeURL }}
{{- end -}}

{{- define "hire_applicant_subject" }}Your hire request was received!{{ end -}}
{{- define "hire_applicant" -}}
Hi {{ .Request.ApplicantName }},

Thank you for contacting {{ .Profile.Name }}.
Your hire request has been received successfully.
{{ .Profile.Name }} will reach out to you shortly.

Best regards,
{{ .Profile.Name }}'s Team
{{- end -}}
`))

type hireData struct {
	Request *domain.HireRequest
	Profile domain.Profile
}

func render(kind string, data any) (subject, body string, err error) {
	var buf bytes.Buffer
	if err := templates.ExecuteTemplate(&buf, kind+"_subject", data); err != nil {
		return "", "", fmt.Errorf("rendering %s subject: %w", kind, err)
	}
	subject = buf.String()

	buf.Reset()
	if err := templates.ExecuteTemplate(&buf, kind, data); err != nil {
		return "", "", fmt.Errorf("rendering %s body: %w", kind, err)
	}
	return subject, buf.String(), nil
}

// ContactOwner composes the alert sent to the owner for a new contact submission.
func ContactOwner(to string, submission *domain.ContactSubmission) (Message, error) {
	subject, body, err := render(KindContactOwner, submission)
	if err != nil {
		return Message{}, err
	}
	id := submission.ID
	return Message{Kind: KindContactOwner, To: to, Subject: subject, Body: body, RecordID: &id}, nil
}

// HireOwner composes the alert sent to the owner for a new hire request, followed by the
// owner's own profile block.
func HireOwner(to string, request *domain.HireRequest, profile domain.Profile) (Message, error) {
	subject, body, err := render(KindHireOwner, hireData{Request: request, Profile: profile})
	if err != nil {
		return Message{}, err
	}
	id := request.ID
	return Message{Kind: KindHireOwner, To: to, Subject: subject, Body: body, RecordID: &id}, nil
}

// HireApplicant composes the confirmation sent back to the applicant.
func HireApplicant(request *domain.HireRequest, profile domain.Profile) (Message, error) {
	subject, body, err := render(KindHireApplicant, hireData{Request: request, Profile: profile})
	if err != nil {
		return Message{}, err
	}
	id := request.ID
	return Message{Kind: KindHireApplicant, To: request.ApplicantEmail, Subject: subject, Body: body, RecordID: &id}, nil
}
