package launcher_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/jonesrussell/webnode/internal/launcher"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRender_BasicSubstitution(t *testing.T) {
	script := launcher.Render("Acme Mail", "https://mail.acme.com", "/apps/icon.ico")

	assert.Contains(t, script, `win.setWindowTitle("Acme Mail")`)
	assert.Contains(t, script, `view.setUrl(QUrl('https://mail.acme.com'))`)
	assert.Contains(t, script, `icon_path = "/apps/icon.ico"`)
}

func TestRender_EscapesTitleQuotes(t *testing.T) {
	script := launcher.Render(`The "Best" App`, "https://ex.com", "")

	assert.Contains(t, script, `win.setWindowTitle("The \"Best\" App")`)
}

func TestRender_URLLiteralRoundTrips(t *testing.T) {
	testCases := []struct {
		name string
		url  string
		want string
	}{
		{"plain", "https://ex.com", `'https://ex.com'`},
		{"query string", "https://ex.com/?a=1&b=2", `'https://ex.com/?a=1&b=2'`},
		{"single quote", "https://ex.com/it's", `'https://ex.com/it\'s'`},
		{"backslash", `https://ex.com/a\b`, `'https://ex.com/a\\b'`},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			script := launcher.Render("T", tc.url, "")
			assert.Contains(t, script, "QUrl("+tc.want+")")
		})
	}
}

func TestRender_EscapesIconPathBackslashes(t *testing.T) {
	script := launcher.Render("T", "https://ex.com", `C:\Users\me\Documents\icon.ico`)

	assert.Contains(t, script, `icon_path = "C:\\Users\\me\\Documents\\icon.ico"`)
}

func TestRenderPreview_PlaceholderDefaults(t *testing.T) {
	script := launcher.RenderPreview("", "", "", "")

	assert.Contains(t, script, `win.setWindowTitle("App Title")`)
	assert.Contains(t, script, `QUrl('https://example.com')`)
	assert.Contains(t, script, filepath.Join("app", "company.name", "webnode.company.name.ico"))
}

func TestRenderPreview_PartialFields(t *testing.T) {
	script := launcher.RenderPreview("My App", "", "Acme Inc!", "")

	assert.Contains(t, script, `win.setWindowTitle("My App")`)
	assert.Contains(t, script, `QUrl('https://example.com')`)
	assert.Contains(t, script, "AcmeInc.name")
}

func TestRenderPreview_Stable(t *testing.T) {
	first := launcher.RenderPreview("", "", "", "")
	second := launcher.RenderPreview("", "", "", "")
	assert.Equal(t, first, second)
}

func TestWrite_Overwrites(t *testing.T) {
	path := filepath.Join(t.TempDir(), "webnode.Acme.Mail.py")

	require.NoError(t, launcher.Write("first version", path))
	require.NoError(t, launcher.Write("second version", path))

	content, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "second version", string(content))
}

func TestWrite_MissingDirectoryFails(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing", "script.py")

	err := launcher.Write("content", path)
	require.Error(t, err)
	assert.True(t, strings.Contains(err.Error(), "failed to write launcher script"))
}
