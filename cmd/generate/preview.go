package generate

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jonesrussell/webnode/internal/launcher"
)

var (
	previewURL     string
	previewCompany string
	previewName    string
	previewTitle   string
)

// PreviewCommand creates the preview command. It renders the launcher
// script with placeholder defaults for any empty field and writes nothing
// to disk.
func PreviewCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "preview",
		Short: "Preview the launcher script without writing files",
		Long: `Renders the launcher script to stdout using placeholder defaults for any
field left empty. No files are written and no network requests are made.`,
		RunE: runPreview,
	}

	cmd.Flags().StringVarP(&previewURL, "url", "u", "", "URL the launcher opens")
	cmd.Flags().StringVarP(&previewCompany, "company", "c", "", "company or vendor of the web app")
	cmd.Flags().StringVarP(&previewName, "name", "n", "", "short application name used in filenames")
	cmd.Flags().StringVarP(&previewTitle, "title", "t", "", "window title")

	return cmd
}

func runPreview(cmd *cobra.Command, args []string) error {
	script := launcher.RenderPreview(previewTitle, previewURL, previewCompany, previewName)

	_, err := fmt.Fprint(os.Stdout, script)
	if err != nil {
		return fmt.Errorf("failed to write preview: %w", err)
	}

	return nil
}
