package domain

// Profile is the owner's public contact metadata.
// It comes from process configuration and never from a request.
type Profile struct {
	Name        string `mapstructure:"name"`
	Email       string `mapstructure:"email"`
	Phone       string `mapstructure:"phone"`
	GitHubURL   string `mapstructure:"github_url"`
	LinkedInURL string `mapstructure:"linkedin_url"`
	CertsURL    string `mapstructure:"certifications_url"`
	ResumeURL   string `mapstructure:"cv_url"`
	PictureURL  string `mapstructure:"picture_url"`
}
