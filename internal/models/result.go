package models

// PipelineResult is the single structured record printed at the end of a
// run, in both the success and failure shapes.
type PipelineResult struct {
	Success         bool           `json:"success"`
	Title           string         `json:"title,omitempty"`
	Description     string         `json:"description,omitempty"`
	Keywords        []string       `json:"keywords,omitempty"`
	DurationMinutes *int           `json:"durationMinutes,omitempty"`
	HostingResponse map[string]any `json:"hostingResponse,omitempty"`
	FeedPreview     string         `json:"feedPreview,omitempty"`
	ErrorMessage    string         `json:"error,omitempty"`
	ErrorKind       string         `json:"type,omitempty"`
}
