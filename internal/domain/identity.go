package domain

import (
	"regexp"
	"strings"
)

// urlPattern is the accepted URL prefix for generated launchers.
var urlPattern = regexp.MustCompile(`^https?://`)

// AppIdentity holds the user-supplied fields a launcher is generated from.
// It is transient: constructed per generation request and never persisted.
type AppIdentity struct {
	// Company is the vendor or publisher of the web app.
	Company string
	// Name is the short application name used in artifact filenames.
	Name string
	// Title is the window title of the generated launcher.
	Title string
	// URL is the page the launcher opens.
	URL string
}

// Trimmed returns a copy of the identity with surrounding whitespace
// removed from every field.
func (id AppIdentity) Trimmed() AppIdentity {
	return AppIdentity{
		Company: strings.TrimSpace(id.Company),
		Name:    strings.TrimSpace(id.Name),
		Title:   strings.TrimSpace(id.Title),
		URL:     strings.TrimSpace(id.URL),
	}
}

// Validate checks that all four fields are present and the URL matches the
// http(s) prefix rule. It reports the first problem found.
func (id AppIdentity) Validate() error {
	trimmed := id.Trimmed()

	fields := []struct {
		name  string
		value string
	}{
		{"company", trimmed.Company},
		{"name", trimmed.Name},
		{"title", trimmed.Title},
		{"url", trimmed.URL},
	}
	for _, f := range fields {
		if f.value == "" {
			return &ValidationError{Field: f.name, Reason: "must not be empty"}
		}
	}

	if !urlPattern.MatchString(trimmed.URL) {
		return &ValidationError{Field: "url", Reason: ErrInvalidURL.Error()}
	}

	return nil
}
