package models

// EpisodeRequest is the per-invocation input, built from the command line.
type EpisodeRequest struct {
	AudioFilePath string
	ContentURL    string
	PublishDate   string // YYYY-MM-DD, local to the configured timezone
	PublishTime   string // HH:MM, local to the configured timezone
}

// EpisodeMetadata is the title/description/keywords triple derived from the
// reference page. Description already carries the source attribution and
// AI-disclosure lines.
type EpisodeMetadata struct {
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Keywords    []string `json:"keywords"`
}

// AudioAsset describes the transcoded episode audio.
type AudioAsset struct {
	OriginalPath    string
	ConvertedPath   string
	DurationMinutes int
}
