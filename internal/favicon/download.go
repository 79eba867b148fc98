package favicon

import (
	"context"
	"net/http"
	"os"

	"github.com/jonesrussell/webnode/internal/fetcher"
	"github.com/jonesrussell/webnode/internal/logger"
)

// iconFilePerm is the permission used for saved icon files.
const iconFilePerm = 0o644

// Downloader fetches icon bytes and persists them to disk.
type Downloader struct {
	fetcher fetcher.HTTPFetcher
	logger  logger.Interface
}

// NewDownloader creates a Downloader using the given fetch capability.
func NewDownloader(f fetcher.HTTPFetcher, log logger.Interface) *Downloader {
	return &Downloader{
		fetcher: f,
		logger:  log,
	}
}

// Download GETs iconURL and writes the bytes to destPath, overwriting any
// existing file. Returns true only on a 200 response with a non-empty body
// that was written successfully. Failures never propagate; callers treat
// false as non-fatal and generate the launcher without an icon.
func (d *Downloader) Download(ctx context.Context, iconURL, destPath string) bool {
	resp, err := d.fetcher.Fetch(ctx, iconURL)
	if err != nil {
		d.logger.Warn("Icon download failed",
			"url", iconURL,
			"error", err)
		return false
	}

	if resp.StatusCode != http.StatusOK || len(resp.Body) == 0 {
		d.logger.Warn("Icon download returned no usable content",
			"url", iconURL,
			"status", resp.StatusCode,
			"bytes", len(resp.Body))
		return false
	}

	if writeErr := os.WriteFile(destPath, resp.Body, iconFilePerm); writeErr != nil {
		d.logger.Warn("Icon write failed",
			"path", destPath,
			"error", writeErr)
		return false
	}

	return true
}
