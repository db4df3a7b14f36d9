package pipeline

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pagecast/internal/config"
	"pagecast/internal/models"
)

// End-to-end run against fake page, LLM and hosting services; only the
// ffprobe/ffmpeg subprocesses are stubbed out.
func TestRunEndToEnd(t *testing.T) {
	pageServer := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html")
		w.Write([]byte(`<html><body><article><h1>Test</h1><p>Body text about the topic of the episode, long enough to read as an article.</p></article></body></html>`))
	}))
	defer pageServer.Close()

	llmServer := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]any{
			"content": []map[string]string{
				{"text": `{"title":"Test","description":"An episode about the page.","keywords":["test","episode"]}`},
			},
		})
	}))
	defer llmServer.Close()

	var form struct {
		date, utcTime, duration string
	}
	hostingServer := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, r.ParseMultipartForm(1<<20))
		form.date = r.FormValue("publish_date")
		form.utcTime = r.FormValue("publish_time")
		form.duration = r.FormValue("duration")
		json.NewEncoder(w).Encode(map[string]any{"episode_id": 7})
	}))
	defer hostingServer.Close()

	cfg := config.Config{
		LLMAPIKey:       "test-key",
		LLMAPIURL:       llmServer.URL,
		LLMModel:        "test-model",
		HostingAPIURL:   hostingServer.URL,
		PodcastID:       "pod-42",
		PublishTimezone: "America/Halifax",
		OutputDir:       t.TempDir(),
	}

	converted := filepath.Join(cfg.OutputDir, "episode42-e2e.mp3")
	require.NoError(t, os.WriteFile(converted, []byte("mp3 bytes"), 0644))

	p := New(cfg)
	p.probe = func(path string) (int, error) { return 3, nil }
	p.convert = func(inputPath, outputDir string) (string, error) { return converted, nil }

	result := p.Run(context.Background(), models.EpisodeRequest{
		AudioFilePath: "./recordings/episode42.wav",
		ContentURL:    pageServer.URL,
		PublishDate:   "2023-05-15",
		PublishTime:   "10:30",
	})

	require.True(t, result.Success, "error: %s (%s)", result.ErrorMessage, result.ErrorKind)
	assert.NotEmpty(t, result.Title)
	assert.Contains(t, result.Description, "Source: "+pageServer.URL)
	require.NotNil(t, result.DurationMinutes)
	assert.Equal(t, 3, *result.DurationMinutes)
	assert.Equal(t, float64(7), result.HostingResponse["episode_id"])

	assert.Equal(t, "2023-05-15", form.date)
	assert.Equal(t, "13:30:00", form.utcTime)
	assert.Equal(t, "3", form.duration)
}
