// Package generate provides the generate command implementation.
package generate

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/jonesrussell/webnode/internal/config"
	"github.com/jonesrussell/webnode/internal/domain"
	"github.com/jonesrussell/webnode/internal/favicon"
	"github.com/jonesrussell/webnode/internal/fetcher"
	"github.com/jonesrussell/webnode/internal/generator"
	"github.com/jonesrussell/webnode/internal/logger"
	"github.com/jonesrussell/webnode/internal/output"
	"github.com/jonesrussell/webnode/internal/suggestions"
)

var (
	generateURL     string
	generateCompany string
	generateName    string
	generateTitle   string
	generateSug     string
)

// Command creates the generate command.
func Command() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate a web-app launcher for a URL",
		Long: `Generates a launcher script for a web app: resolves the page's favicon,
saves it next to the script, and writes the launcher under the per-user
apps folder.

When --sug is given it selects a built-in suggestion and its URL takes
precedence over --url; --company, --name and --title still override the
catalog values when passed explicitly.
When --title is omitted, the page's <title> is used when reachable.

Example:
  webnode generate --company Acme --name Mail --title "Acme Mail" --url https://mail.acme.com
  webnode generate --sug gmail`,
		RunE: runGenerate,
	}

	cmd.Flags().StringVarP(&generateURL, "url", "u", "", "URL the launcher opens")
	cmd.Flags().StringVarP(&generateCompany, "company", "c", "", "company or vendor of the web app")
	cmd.Flags().StringVarP(&generateName, "name", "n", "", "short application name used in filenames")
	cmd.Flags().StringVarP(&generateTitle, "title", "t", "", "window title (default: the page title)")
	cmd.Flags().StringVarP(&generateSug, "sug", "s", "", "use a built-in suggestion (see 'webnode suggestions')")

	return cmd
}

func runGenerate(cmd *cobra.Command, args []string) error {
	cfg, err := config.FromViper()
	if err != nil {
		return err
	}

	log, err := logger.New(cfg.LoggerConfigFor())
	if err != nil {
		return fmt.Errorf("failed to create logger: %w", err)
	}

	httpFetcher := fetcher.New(cfg.RequestTimeout(), cfg.Generator.UserAgent)
	resolver := favicon.NewResolver(httpFetcher, log)

	identity, err := buildIdentity(cmd)
	if err != nil {
		output.Errorf("%v", err)
		return nil
	}

	identity = defaultTitle(cmd.Context(), identity, resolver)

	svc := generator.NewService(
		resolver,
		favicon.NewDownloader(httpFetcher, log),
		cfg.Generator.BaseFolder,
		log,
	)

	output.Infof("🔍 Resolving favicon for %s...", identity.Trimmed().URL)

	result, err := svc.Generate(cmd.Context(), identity)
	if err != nil {
		return reportGenerateError(err)
	}

	if !result.IconSaved {
		output.Warnf("⚠️  Icon download failed; launcher generated without an icon")
	}
	output.Successf("✅ Script generated: %s", filepath.Base(result.ScriptPath))
	output.Infof("   %s", result.ScriptPath)

	return nil
}

// buildIdentity assembles the app identity from the suggestion catalog
// and/or the field flags. --sug takes precedence over --url; explicitly
// set field flags override catalog values.
func buildIdentity(cmd *cobra.Command) (domain.AppIdentity, error) {
	identity := domain.AppIdentity{
		Company: generateCompany,
		Name:    generateName,
		Title:   generateTitle,
		URL:     generateURL,
	}

	if generateSug == "" {
		return identity, nil
	}

	entry, err := suggestions.Lookup(generateSug)
	if err != nil {
		return domain.AppIdentity{}, err
	}

	suggested := entry.Identity()
	if cmd.Flags().Changed("company") {
		suggested.Company = generateCompany
	}
	if cmd.Flags().Changed("name") {
		suggested.Name = generateName
	}
	if cmd.Flags().Changed("title") {
		suggested.Title = generateTitle
	}

	return suggested, nil
}

// defaultTitle fills an empty title from the page's <title> element when
// the URL is present. Validation still rejects an empty title if the page
// yields none.
func defaultTitle(ctx context.Context, identity domain.AppIdentity, resolver *favicon.Resolver) domain.AppIdentity {
	trimmed := identity.Trimmed()
	if trimmed.Title != "" || trimmed.URL == "" {
		return identity
	}

	if pageTitle := resolver.PageTitle(ctx, trimmed.URL); pageTitle != "" {
		output.Infof("📝 Using page title: %s", pageTitle)
		identity.Title = pageTitle
	}

	return identity
}

// reportGenerateError prints handled failures and returns nil so the
// process exits zero; unexpected errors propagate.
func reportGenerateError(err error) error {
	var verr *domain.ValidationError
	if errors.As(err, &verr) {
		output.Errorf("%v", verr)
		return nil
	}

	if errors.Is(err, domain.ErrNoDocumentsFolder) {
		output.Errorf("Could not locate a Documents folder.")
		return nil
	}

	var gerr *domain.GenerationError
	if errors.As(err, &gerr) {
		output.Errorf("Error: %v", gerr)
		return nil
	}

	return err
}
