package favicon

import (
	"bytes"
	"context"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// PageTitle fetches pageURL and returns the trimmed text of its <title>
// element. Any failure (fetch, parse, missing element) yields "".
func (r *Resolver) PageTitle(ctx context.Context, pageURL string) string {
	resp, err := r.fetcher.Fetch(ctx, pageURL)
	if err != nil {
		r.logger.Debug("Page fetch failed, no title available",
			"url", pageURL,
			"error", err)
		return ""
	}

	doc, parseErr := goquery.NewDocumentFromReader(bytes.NewReader(resp.Body))
	if parseErr != nil {
		return ""
	}

	return strings.TrimSpace(doc.Find("title").First().Text())
}
