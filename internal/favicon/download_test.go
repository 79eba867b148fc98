package favicon_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/jonesrussell/webnode/internal/favicon"
	"github.com/jonesrussell/webnode/internal/fetcher"
	"github.com/jonesrussell/webnode/internal/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// iconBytes is a fake icon payload; the downloader does not inspect content.
var iconBytes = []byte{0x00, 0x00, 0x01, 0x00, 0xDE, 0xAD, 0xBE, 0xEF}

func TestDownload_Success(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write(iconBytes)
	}))
	defer srv.Close()

	dest := filepath.Join(t.TempDir(), "webnode.Acme.Mail.ico")
	d := favicon.NewDownloader(fetcher.NewWithClient(srv.Client()), logger.NewNoOp())

	ok := d.Download(context.Background(), srv.URL+"/favicon.ico", dest)
	require.True(t, ok)

	written, err := os.ReadFile(dest)
	require.NoError(t, err)
	assert.Equal(t, iconBytes, written)
}

func TestDownload_Overwrites(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write(iconBytes)
	}))
	defer srv.Close()

	dest := filepath.Join(t.TempDir(), "icon.ico")
	require.NoError(t, os.WriteFile(dest, []byte("stale"), 0o644))

	d := favicon.NewDownloader(fetcher.NewWithClient(srv.Client()), logger.NewNoOp())
	require.True(t, d.Download(context.Background(), srv.URL, dest))

	written, err := os.ReadFile(dest)
	require.NoError(t, err)
	assert.Equal(t, iconBytes, written)
}

func TestDownload_Non200(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte("boom"))
	}))
	defer srv.Close()

	dest := filepath.Join(t.TempDir(), "icon.ico")
	d := favicon.NewDownloader(fetcher.NewWithClient(srv.Client()), logger.NewNoOp())

	assert.False(t, d.Download(context.Background(), srv.URL, dest))
	assert.NoFileExists(t, dest)
}

func TestDownload_EmptyBody(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	dest := filepath.Join(t.TempDir(), "icon.ico")
	d := favicon.NewDownloader(fetcher.NewWithClient(srv.Client()), logger.NewNoOp())

	assert.False(t, d.Download(context.Background(), srv.URL, dest))
	assert.NoFileExists(t, dest)
}

func TestDownload_NetworkError(t *testing.T) {
	t.Parallel()

	dest := filepath.Join(t.TempDir(), "icon.ico")
	d := favicon.NewDownloader(&failingFetcher{}, logger.NewNoOp())

	assert.False(t, d.Download(context.Background(), "https://ex.com/favicon.ico", dest))
	assert.NoFileExists(t, dest)
}

func TestDownload_UnwritableDestination(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write(iconBytes)
	}))
	defer srv.Close()

	// Destination directory does not exist; the write fails but must not panic.
	dest := filepath.Join(t.TempDir(), "missing", "icon.ico")
	d := favicon.NewDownloader(fetcher.NewWithClient(srv.Client()), logger.NewNoOp())

	assert.False(t, d.Download(context.Background(), srv.URL, dest))
}
