package metadata

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"pagecast/internal/config"
	"pagecast/internal/models"
)

const (
	anthropicVersion  = "2023-06-01"
	maxResponseTokens = 1024

	disclosure = "This episode's content and hosts were generated with artificial intelligence."

	promptTemplate = `You are generating podcast episode metadata from the markdown content of a web page.

Derive a concise episode title from the page's primary heading, and a description summarizing the page as a whole. Also choose 5-8 short keywords.

Respond with ONLY a JSON object and nothing else: no prose before or after, no code fences. Use exactly these keys:
{"title": "...", "description": "...", "keywords": ["...", "..."]}

Page content:

%s`
)

// ContentFetcher retrieves a URL's content as markdown.
type ContentFetcher interface {
	Fetch(ctx context.Context, pageURL string) (string, error)
}

// Generator derives episode metadata from a reference page via the LLM
// service.
type Generator struct {
	fetcher ContentFetcher
	apiURL  string
	apiKey  string
	model   string
	client  *http.Client
}

func NewGenerator(cfg config.Config, fetcher ContentFetcher) *Generator {
	return &Generator{
		fetcher: fetcher,
		apiURL:  cfg.LLMAPIURL,
		apiKey:  cfg.LLMAPIKey,
		model:   cfg.LLMModel,
		client:  &http.Client{Timeout: 120 * time.Second},
	}
}

type llmRequest struct {
	Model     string       `json:"model"`
	MaxTokens int          `json:"max_tokens"`
	Messages  []llmMessage `json:"messages"`
}

type llmMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type llmResponse struct {
	Content []struct {
		Text string `json:"text"`
	} `json:"content"`
}

// Generate fetches the page, asks the LLM for title/description/keywords and
// applies the mandatory attribution post-processing to the description.
func (g *Generator) Generate(ctx context.Context, contentURL string) (models.EpisodeMetadata, error) {
	markdown, err := g.fetcher.Fetch(ctx, contentURL)
	if err != nil {
		return models.EpisodeMetadata{}, err
	}
	if strings.TrimSpace(markdown) == "" {
		return models.EpisodeMetadata{}, models.NewError(models.KindContentUnavailable, "no content extracted from %s", contentURL)
	}

	text, err := g.complete(ctx, fmt.Sprintf(promptTemplate, markdown))
	if err != nil {
		return models.EpisodeMetadata{}, err
	}

	var meta models.EpisodeMetadata
	if err := json.Unmarshal([]byte(extractJSON(text)), &meta); err != nil {
		return models.EpisodeMetadata{}, models.NewError(models.KindMetadataParse, "model output is not valid JSON: %v: %q", err, text)
	}

	meta.Description = fmt.Sprintf("Source: %s\n\n%s\n\n%s", contentURL, meta.Description, disclosure)
	return meta, nil
}

// complete sends one prompt to the LLM service and returns the model's text.
func (g *Generator) complete(ctx context.Context, prompt string) (string, error) {
	payload, err := json.Marshal(llmRequest{
		Model:     g.model,
		MaxTokens: maxResponseTokens,
		Messages:  []llmMessage{{Role: "user", Content: prompt}},
	})
	if err != nil {
		return "", models.WrapError(models.KindMetadataService, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, g.apiURL, bytes.NewReader(payload))
	if err != nil {
		return "", models.WrapError(models.KindMetadataService, err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("x-api-key", g.apiKey)
	req.Header.Set("anthropic-version", anthropicVersion)

	resp, err := g.client.Do(req)
	if err != nil {
		return "", models.WrapError(models.KindMetadataService, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", models.WrapError(models.KindMetadataService, err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		// Keep the body in the error; decode it when it is JSON so the
		// service's own error message survives.
		var decoded map[string]any
		if json.Unmarshal(body, &decoded) == nil {
			return "", models.NewError(models.KindMetadataService, "metadata service returned status %d: %v", resp.StatusCode, decoded)
		}
		return "", models.NewError(models.KindMetadataService, "metadata service returned status %d: %s", resp.StatusCode, body)
	}

	var parsed llmResponse
	if err := json.Unmarshal(body, &parsed); err != nil {
		return "", models.NewError(models.KindMetadataService, "unexpected metadata service response: %v", err)
	}
	if len(parsed.Content) == 0 {
		return "", models.NewError(models.KindMetadataService, "metadata service response has no content")
	}
	return parsed.Content[0].Text, nil
}

// extractJSON trims anything the model emitted outside the outermost JSON
// object, such as code fences.
func extractJSON(text string) string {
	start := strings.Index(text, "{")
	end := strings.LastIndex(text, "}")
	if start == -1 || end == -1 || end < start {
		return text
	}
	return text[start : end+1]
}
