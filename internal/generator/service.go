// Package generator orchestrates launcher generation: validation, artifact
// naming, favicon resolution, icon download, and script writing.
package generator

import (
	"context"

	"github.com/jonesrussell/webnode/internal/artifact"
	"github.com/jonesrussell/webnode/internal/domain"
	"github.com/jonesrussell/webnode/internal/favicon"
	"github.com/jonesrussell/webnode/internal/launcher"
	"github.com/jonesrussell/webnode/internal/logger"
)

// FaviconResolver resolves a best-effort favicon URL for a page.
type FaviconResolver interface {
	Resolve(ctx context.Context, pageURL string) favicon.Resolution
}

// IconDownloader fetches icon bytes and persists them to disk.
type IconDownloader interface {
	Download(ctx context.Context, iconURL, destPath string) bool
}

// Result describes a completed generation.
type Result struct {
	// ScriptPath is where the launcher script was written.
	ScriptPath string
	// IconPath is where the icon was written, if IconSaved.
	IconPath string
	// IconSaved reports whether the icon download succeeded.
	IconSaved bool
	// Favicon is the resolution the icon was fetched from.
	Favicon favicon.Resolution
}

// Service generates launcher scripts from app identities. Each Generate
// call is independent and idempotent for its inputs; re-running with the
// same identity overwrites both artifacts.
type Service struct {
	resolver   FaviconResolver
	downloader IconDownloader
	baseFolder string
	logger     logger.Interface
}

// NewService creates a generation service. baseFolder overrides the
// documents-folder heuristic when non-empty.
func NewService(
	resolver FaviconResolver,
	downloader IconDownloader,
	baseFolder string,
	log logger.Interface,
) *Service {
	return &Service{
		resolver:   resolver,
		downloader: downloader,
		baseFolder: baseFolder,
		logger:     log.WithComponent("generator"),
	}
}

// Generate validates the identity, derives artifact paths, resolves and
// downloads the favicon, and writes the launcher script. Icon download
// failure is a warning, not an error. Returns the script path on success.
func (s *Service) Generate(ctx context.Context, identity domain.AppIdentity) (*Result, error) {
	trimmed := identity.Trimmed()
	if err := trimmed.Validate(); err != nil {
		return nil, err
	}

	base, err := s.resolveBaseFolder()
	if err != nil {
		return nil, err
	}

	paths, err := artifact.DerivePaths(base, trimmed.Company, trimmed.Name)
	if err != nil {
		return nil, &domain.GenerationError{Err: err, Context: "failed to derive artifact paths"}
	}

	resolution := s.resolver.Resolve(ctx, trimmed.URL)
	s.logger.Debug("Favicon resolved",
		"page_url", trimmed.URL,
		"icon_url", resolution.ResolvedURL,
		"explicit_link", resolution.Found)

	saved := s.downloader.Download(ctx, resolution.ResolvedURL, paths.Icon)
	if !saved {
		s.logger.Warn("Icon download failed, generating launcher without icon",
			"icon_url", resolution.ResolvedURL)
	}

	script := launcher.Render(trimmed.Title, trimmed.URL, paths.Icon)
	if writeErr := launcher.Write(script, paths.Script); writeErr != nil {
		return nil, &domain.GenerationError{Err: writeErr, Context: "failed to write launcher script"}
	}

	s.logger.Info("Launcher generated",
		"script", paths.Script,
		"icon_saved", saved)

	return &Result{
		ScriptPath: paths.Script,
		IconPath:   paths.Icon,
		IconSaved:  saved,
		Favicon:    resolution,
	}, nil
}

// resolveBaseFolder returns the configured base folder, or the per-user
// apps root located via the documents-folder heuristic.
func (s *Service) resolveBaseFolder() (string, error) {
	if s.baseFolder != "" {
		return s.baseFolder, nil
	}

	return artifact.AppsRoot()
}
