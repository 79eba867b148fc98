// Package suggestions implements the command-line interface for listing
// the built-in web-app suggestion catalog in a formatted table.
package suggestions

import (
	"fmt"
	"os"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"

	internalsuggestions "github.com/jonesrussell/webnode/internal/suggestions"
)

// Command creates the suggestions command.
func Command() *cobra.Command {
	return &cobra.Command{
		Use:   "suggestions",
		Short: "List built-in web-app suggestions",
		Long:  `List the built-in suggestions selectable with 'webnode generate --sug <key>'.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			entries, err := internalsuggestions.All()
			if err != nil {
				return fmt.Errorf("failed to load suggestions: %w", err)
			}

			renderTable(entries)
			return nil
		},
	}
}

// renderTable formats and displays the suggestions in a table format.
func renderTable(entries []internalsuggestions.Suggestion) {
	t := table.NewWriter()
	t.SetOutputMirror(os.Stdout)
	t.SetStyle(table.StyleLight)

	t.AppendHeader(table.Row{"Key", "Company", "Name", "Title", "URL"})
	for _, entry := range entries {
		t.AppendRow(table.Row{entry.Key, entry.Company, entry.Name, entry.Title, entry.URL})
	}

	t.Render()
}
