package hosting

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log"
	"mime/multipart"
	"net/http"
	"os"
	"strconv"
	"time"

	"pagecast/internal/models"
)

// Client posts finished episodes to the podcast hosting endpoint.
type Client struct {
	endpoint string
	client   *http.Client
}

func NewClient(endpoint string) *Client {
	return &Client{
		endpoint: endpoint,
		client:   &http.Client{Timeout: 10 * time.Minute},
	}
}

// UploadRequest is everything the hosting service needs for one episode.
// PublishDate stays in the source timezone while PublishTime is UTC; the
// hosting service expects exactly that pairing.
type UploadRequest struct {
	PodcastID       string
	Title           string
	Description     string
	MediaPath       string // converted file on disk
	MediaName       string // file name presented to the hosting service
	DurationMinutes int
	PublishDate     string // YYYY-MM-DD, unconverted local date
	PublishTime     string // HH:MM:SS, UTC
}

// Upload builds the multipart form and issues one POST. The converted file
// is read fully into memory first; episodes are small enough that streaming
// has not been worth it.
func (c *Client) Upload(ctx context.Context, req UploadRequest) (map[string]any, error) {
	audio, err := os.ReadFile(req.MediaPath)
	if err != nil {
		return nil, models.NewError(models.KindUpload, "reading converted audio: %v", err)
	}

	var buf bytes.Buffer
	form := multipart.NewWriter(&buf)

	fields := map[string]string{
		"podcast_id":   req.PodcastID,
		"title":        req.Title,
		"description":  req.Description,
		"duration":     strconv.Itoa(req.DurationMinutes),
		"explicit":     "false",
		"publish_date": req.PublishDate,
		"publish_time": req.PublishTime,
	}
	for name, value := range fields {
		if err := form.WriteField(name, value); err != nil {
			return nil, models.NewError(models.KindUpload, "writing form field %s: %v", name, err)
		}
	}

	part, err := form.CreateFormFile("audio_file", req.MediaName)
	if err != nil {
		return nil, models.NewError(models.KindUpload, "creating audio form file: %v", err)
	}
	if _, err := part.Write(audio); err != nil {
		return nil, models.NewError(models.KindUpload, "writing audio form file: %v", err)
	}
	if err := form.Close(); err != nil {
		return nil, models.NewError(models.KindUpload, "finalizing form: %v", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, &buf)
	if err != nil {
		return nil, models.WrapError(models.KindUpload, err)
	}
	httpReq.Header.Set("Content-Type", form.FormDataContentType())

	resp, err := c.client.Do(httpReq)
	if err != nil {
		return nil, models.WrapError(models.KindUpload, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, models.WrapError(models.KindUpload, err)
	}

	// Parse regardless of status so failures still log the service's reply.
	var parsed map[string]any
	if err := json.Unmarshal(body, &parsed); err != nil {
		parsed = nil
	}
	log.Printf("Hosting service responded with status %d: %s", resp.StatusCode, body)

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, models.NewError(models.KindUpload, "hosting service returned status %d: %s", resp.StatusCode, body)
	}

	return parsed, nil
}
