package feed

import (
	"time"

	"github.com/eduncan911/podcast"

	"pagecast/internal/models"
)

// EpisodePreview renders a single-item RSS feed for a just-published
// episode. The hosting service regenerates the real feed on its side; this
// preview lets the result be eyeballed or pasted into a standalone feed.
func EpisodePreview(meta models.EpisodeMetadata, enclosureURL string, sizeBytes int64, durationMinutes int, pubDate time.Time) (string, error) {
	p := podcast.New(meta.Title, enclosureURL, meta.Description, &pubDate, &pubDate)

	item := podcast.Item{
		Title:       meta.Title,
		Description: meta.Description,
		PubDate:     &pubDate,
	}
	item.AddEnclosure(enclosureURL, podcast.MP3, sizeBytes)
	item.AddDuration(int64(durationMinutes) * 60)

	if _, err := p.AddItem(item); err != nil {
		return "", err
	}

	return p.String(), nil
}
