package validation

import "github.com/tfkr-ae/folio/domain"

// QuickLinkInput is one entry of a quick link seed file.
type QuickLinkInput struct {
	Title      string `json:"title" yaml:"title" validate:"required,max=50"`
	URL        string `json:"url" yaml:"url" validate:"required,weburl"`
	IconClass  string `json:"icon_class" yaml:"icon_class" validate:"omitempty,max=50"`
	Color      string `json:"color" yaml:"color" validate:"omitempty,max=20"`
	IsDownload bool   `json:"is_download" yaml:"is_download"`
	Order      int    `json:"order" yaml:"order" validate:"gte=0"`
}

// ValidateQuickLink checks a quick link entry and applies the default color.
func ValidateQuickLink(in QuickLinkInput) Result[*domain.QuickLink] {
	trim(&in.Title)
	trim(&in.URL)
	trim(&in.IconClass)
	trim(&in.Color)

	if errs := check(in); errs.Len() > 0 {
		return reject[*domain.QuickLink](errs)
	}

	if in.Color == "" {
		in.Color = domain.DefaultQuickLinkColor
	}

	return Result[*domain.QuickLink]{Value: &domain.QuickLink{
		Title:      in.Title,
		URL:        in.URL,
		IconClass:  in.IconClass,
		Color:      in.Color,
		IsDownload: in.IsDownload,
		Order:      in.Order,
	}}
}
