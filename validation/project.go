package validation

import "github.com/tfkr-ae/folio/domain"

// ProjectInput is the body of a project creation request.
type ProjectInput struct {
	Title       string  `json:"title" validate:"required,min=5,max=100"`
	Description string  `json:"description" validate:"required,min=10"`
	TechStack   string  `json:"tech_stack" validate:"required,max=200"`
	GitHubURL   *string `json:"github_url" validate:"omitempty,weburl"`
	DemoURL     *string `json:"demo_url" validate:"omitempty,weburl"`
	Image       *string `json:"image" validate:"omitempty,max=255"`
	Source      string  `json:"source" validate:"omitempty,oneof=manual github-imported"`
}

// ValidateProject checks a project input. The returned project has no ID or timestamps.
func ValidateProject(in ProjectInput) Result[*domain.Project] {
	trim(&in.Title)
	trim(&in.Description)
	trim(&in.TechStack)
	trim(&in.Source)
	in.GitHubURL = optional(in.GitHubURL)
	in.DemoURL = optional(in.DemoURL)
	in.Image = optional(in.Image)

	if errs := check(in); errs.Len() > 0 {
		return reject[*domain.Project](errs)
	}

	source := domain.SourceManual
	if in.Source != "" {
		source = domain.ProjectSource(in.Source)
	}

	return Result[*domain.Project]{Value: &domain.Project{
		Title:       in.Title,
		Description: in.Description,
		TechStack:   in.TechStack,
		GitHubURL:   in.GitHubURL,
		DemoURL:     in.DemoURL,
		Image:       in.Image,
		Source:      source,
	}}
}
