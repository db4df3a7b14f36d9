package content

import (
	"bytes"
	"context"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	htmltomarkdown "github.com/JohannesKaufmann/html-to-markdown/v2"
	readability "github.com/go-shiori/go-readability"

	"pagecast/internal/models"
)

const fetchTimeout = 30 * time.Second

// Fetcher retrieves a web page and converts its main content to markdown.
type Fetcher struct {
	client *http.Client
}

func NewFetcher() *Fetcher {
	return &Fetcher{client: &http.Client{Timeout: fetchTimeout}}
}

// Fetch performs one GET against pageURL and returns the article content as
// markdown. No retries.
func (f *Fetcher) Fetch(ctx context.Context, pageURL string) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, pageURL, nil)
	if err != nil {
		return "", models.WrapError(models.KindFetch, err)
	}
	// Browser-like headers; some sites reject Go's default User-Agent.
	req.Header.Set("User-Agent", "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/91.0.4472.124 Safari/537.36")
	req.Header.Set("Accept", "text/html,application/xhtml+xml,application/xml;q=0.9,*/*;q=0.8")

	resp, err := f.client.Do(req)
	if err != nil {
		return "", models.WrapError(models.KindFetch, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return "", models.NewError(models.KindFetch, "fetching %s returned status %d", pageURL, resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", models.WrapError(models.KindFetch, err)
	}

	parsedURL, _ := url.Parse(pageURL)
	article, err := readability.FromReader(bytes.NewReader(body), parsedURL)
	if err != nil {
		return "", models.NewError(models.KindConversion, "extracting article from %s: %v", pageURL, err)
	}

	html := article.Content
	if strings.TrimSpace(html) == "" {
		// Readability found nothing article-shaped; fall back to the raw page.
		html = string(body)
	}

	markdown, err := htmltomarkdown.ConvertString(html)
	if err != nil {
		return "", models.NewError(models.KindConversion, "converting %s to markdown: %v", pageURL, err)
	}

	return markdown, nil
}
