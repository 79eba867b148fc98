// Package favicon resolves and downloads the icon associated with a web page.
package favicon

import (
	"bytes"
	"context"
	"net/url"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"github.com/jonesrussell/webnode/internal/fetcher"
	"github.com/jonesrussell/webnode/internal/logger"
)

// faviconPath is the conventional domain-root icon location used as the
// final fallback.
const faviconPath = "/favicon.ico"

// Resolution is the outcome of resolving a page's favicon URL.
type Resolution struct {
	// SourceURL is the page the resolution started from.
	SourceURL string
	// ResolvedURL is the absolute icon URL. Always set.
	ResolvedURL string
	// Found reports whether an explicit <link rel*=icon> was located,
	// as opposed to the guessed domain-root default.
	Found bool
}

// Resolver produces a best-effort favicon URL for a page.
type Resolver struct {
	fetcher fetcher.HTTPFetcher
	logger  logger.Interface
}

// NewResolver creates a Resolver using the given fetch capability.
func NewResolver(f fetcher.HTTPFetcher, log logger.Interface) *Resolver {
	return &Resolver{
		fetcher: f,
		logger:  log,
	}
}

// Resolve returns a best-effort absolute favicon URL for pageURL. It never
// fails: fetch errors, parse errors, and missing attributes all degrade to
// the {scheme}://{host}/favicon.ico fallback. The fallback order is a
// documented policy; do not harden it.
func (r *Resolver) Resolve(ctx context.Context, pageURL string) Resolution {
	resolution := Resolution{
		SourceURL:   pageURL,
		ResolvedURL: origin(pageURL) + faviconPath,
	}

	resp, err := r.fetcher.Fetch(ctx, pageURL)
	if err != nil {
		r.logger.Debug("Page fetch failed, using domain-root favicon",
			"url", pageURL,
			"error", err)
		return resolution
	}

	doc, parseErr := goquery.NewDocumentFromReader(bytes.NewReader(resp.Body))
	if parseErr != nil {
		r.logger.Debug("HTML parse failed, using domain-root favicon",
			"url", pageURL,
			"error", parseErr)
		return resolution
	}

	href, ok := firstIconHref(doc)
	if !ok {
		return resolution
	}

	resolution.ResolvedURL = absolutize(href, pageURL)
	resolution.Found = true

	return resolution
}

// firstIconHref finds the first <link> in document order whose rel attribute
// contains the case-insensitive substring "icon" (matches icon, shortcut
// icon, apple-touch-icon, ...). First match wins even when it has no usable
// href.
func firstIconHref(doc *goquery.Document) (string, bool) {
	var href string
	var matched bool

	doc.Find("link").EachWithBreak(func(_ int, sel *goquery.Selection) bool {
		rel, hasRel := sel.Attr("rel")
		if !hasRel || !strings.Contains(strings.ToLower(rel), "icon") {
			return true
		}

		matched = true
		href, _ = sel.Attr("href")

		return false
	})

	if !matched || href == "" {
		return "", false
	}

	return href, true
}

// absolutize resolves an icon href against the page's origin. An href that
// already starts with "http" passes through unchanged; root-relative and
// bare-relative hrefs are prefixed with origin and origin/ respectively.
func absolutize(href, pageURL string) string {
	if strings.HasPrefix(href, "http") {
		return href
	}

	base := origin(pageURL)
	if strings.HasPrefix(href, "/") {
		return base + href
	}

	return base + "/" + href
}

// origin returns {scheme}://{host} for a page URL.
func origin(pageURL string) string {
	parsed, err := url.Parse(pageURL)
	if err == nil && parsed.Scheme != "" && parsed.Host != "" {
		return parsed.Scheme + "://" + parsed.Host
	}

	// Degraded path for unparseable input: keep everything up to the first
	// slash after the scheme separator.
	if idx := strings.Index(pageURL, "://"); idx >= 0 {
		rest := pageURL[idx+len("://"):]
		if slash := strings.Index(rest, "/"); slash >= 0 {
			return pageURL[:idx+len("://")+slash]
		}
	}

	return strings.TrimRight(pageURL, "/")
}
