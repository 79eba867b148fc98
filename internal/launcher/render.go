package launcher

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/jonesrussell/webnode/internal/artifact"
)

// Placeholder values used by preview rendering when a field is still empty.
const (
	PlaceholderTitle   = "App Title"
	PlaceholderURL     = "https://example.com"
	PlaceholderCompany = "company"
	PlaceholderName    = "name"
)

// scriptFilePerm is the permission used for written launcher scripts.
const scriptFilePerm = 0o644

// Render fills the launcher template with the given title, URL, and icon
// path, applying the escaping each slot requires. The URL is emitted as a
// quoted string literal that round-trips to the exact input string.
func Render(title, url, iconPath string) string {
	return fmt.Sprintf(scriptTemplate,
		escapeQuoted(title),
		escapeIconPath(iconPath),
		stringLiteral(url),
	)
}

// RenderPreview renders the launcher with placeholder defaults substituted
// for any empty field and a relative icon path, so the user can inspect the
// output before generating. Performs no filesystem writes.
func RenderPreview(title, url, company, name string) string {
	if strings.TrimSpace(title) == "" {
		title = PlaceholderTitle
	}
	if strings.TrimSpace(url) == "" {
		url = PlaceholderURL
	}
	if strings.TrimSpace(company) == "" {
		company = PlaceholderCompany
	}
	if strings.TrimSpace(name) == "" {
		name = PlaceholderName
	}

	safeCompany := artifact.Sanitize(company)
	safeName := artifact.Sanitize(name)
	iconPath := filepath.Join(
		"app",
		safeCompany+"."+safeName,
		artifact.IconFilename(company, name),
	)

	return Render(strings.TrimSpace(title), strings.TrimSpace(url), iconPath)
}

// Write writes the rendered script verbatim to path, overwriting any
// existing file.
func Write(script, path string) error {
	if err := os.WriteFile(path, []byte(script), scriptFilePerm); err != nil {
		return fmt.Errorf("failed to write launcher script: %w", err)
	}

	return nil
}

// escapeQuoted backslash-escapes double quotes for embedding inside a
// double-quoted template slot.
func escapeQuoted(s string) string {
	return strings.ReplaceAll(s, `"`, `\"`)
}

// escapeIconPath doubles backslashes and escapes double quotes so the path
// survives literal embedding on path-separator-sensitive platforms.
func escapeIconPath(s string) string {
	s = strings.ReplaceAll(s, `\`, `\\`)
	return strings.ReplaceAll(s, `"`, `\"`)
}

// stringLiteral emits s as a single-quoted string literal understood by the
// launcher runtime. Backslashes and single quotes are escaped, so the
// literal evaluates back to exactly s.
func stringLiteral(s string) string {
	s = strings.ReplaceAll(s, `\`, `\\`)
	s = strings.ReplaceAll(s, `'`, `\'`)
	return "'" + s + "'"
}
