package pipeline

import (
	"context"
	"fmt"
	"log"
	"os"
	"time"

	"pagecast/internal/audio"
	"pagecast/internal/config"
	"pagecast/internal/content"
	"pagecast/internal/feed"
	"pagecast/internal/hosting"
	"pagecast/internal/metadata"
	"pagecast/internal/models"
	"pagecast/internal/schedule"
)

// MetadataGenerator derives episode metadata from a reference page.
type MetadataGenerator interface {
	Generate(ctx context.Context, contentURL string) (models.EpisodeMetadata, error)
}

// Uploader posts a finished episode to the hosting service.
type Uploader interface {
	Upload(ctx context.Context, req hosting.UploadRequest) (map[string]any, error)
}

// Pipeline runs one episode publication end to end. Steps are strictly
// sequential; each consumes the previous step's output.
type Pipeline struct {
	cfg      config.Config
	metadata MetadataGenerator
	uploader Uploader
	probe    func(path string) (int, error)
	convert  func(inputPath, outputDir string) (string, error)
}

// New wires the real components from the configuration.
func New(cfg config.Config) *Pipeline {
	return &Pipeline{
		cfg:      cfg,
		metadata: metadata.NewGenerator(cfg, content.NewFetcher()),
		uploader: hosting.NewClient(cfg.HostingAPIURL),
		probe:    audio.ProbeDurationMinutes,
		convert:  audio.Convert,
	}
}

// Run executes metadata generation, duration probing, transcoding and
// upload in order. Any failure aborts the remaining steps; only a probing
// failure is downgraded to a zero duration. Nothing is cleaned up on
// failure, so a partially converted file can be left behind.
func (p *Pipeline) Run(ctx context.Context, req models.EpisodeRequest) models.PipelineResult {
	log.Printf("Generating episode metadata from %s", req.ContentURL)
	meta, err := p.metadata.Generate(ctx, req.ContentURL)
	if err != nil {
		return fail(err)
	}
	log.Printf("Generated metadata for episode %q", meta.Title)

	log.Printf("Probing audio duration: %s", req.AudioFilePath)
	minutes, err := p.probe(req.AudioFilePath)
	if err != nil {
		log.Printf("Failed to probe audio duration, continuing with 0: %v", err)
		minutes = 0
	}
	log.Printf("Audio duration: %d minutes", minutes)

	log.Printf("Converting audio to MP3: %s", req.AudioFilePath)
	convertedPath, err := p.convert(req.AudioFilePath, p.cfg.OutputDir)
	if err != nil {
		return fail(err)
	}
	asset := models.AudioAsset{
		OriginalPath:    req.AudioFilePath,
		ConvertedPath:   convertedPath,
		DurationMinutes: minutes,
	}
	log.Printf("Converted audio written to %s", convertedPath)

	publishTime, err := schedule.ToUTCTimeOfDay(req.PublishDate, req.PublishTime, p.cfg.PublishTimezone)
	if err != nil {
		return fail(err)
	}

	log.Printf("Uploading episode %q, scheduled for %s at %s UTC", meta.Title, req.PublishDate, publishTime)
	hostingResp, err := p.uploader.Upload(ctx, hosting.UploadRequest{
		PodcastID:       p.cfg.PodcastID,
		Title:           meta.Title,
		Description:     meta.Description,
		MediaPath:       asset.ConvertedPath,
		MediaName:       audio.UploadName(asset.OriginalPath),
		DurationMinutes: asset.DurationMinutes,
		PublishDate:     req.PublishDate,
		PublishTime:     publishTime,
	})
	if err != nil {
		return fail(err)
	}
	log.Printf("Episode %q uploaded", meta.Title)

	result := models.PipelineResult{
		Success:         true,
		Title:           meta.Title,
		Description:     meta.Description,
		Keywords:        meta.Keywords,
		DurationMinutes: &asset.DurationMinutes,
		HostingResponse: hostingResp,
	}

	if preview, err := p.buildPreview(req, meta, asset, hostingResp); err != nil {
		log.Printf("Failed to build feed preview: %v", err)
	} else {
		result.FeedPreview = preview
	}

	return result
}

// buildPreview renders the RSS item preview for the success result. Never
// fatal; the episode is already published by the time this runs.
func (p *Pipeline) buildPreview(req models.EpisodeRequest, meta models.EpisodeMetadata, asset models.AudioAsset, hostingResp map[string]any) (string, error) {
	loc, err := time.LoadLocation(p.cfg.PublishTimezone)
	if err != nil {
		return "", err
	}
	pubDate, err := time.ParseInLocation("2006-01-02 15:04", fmt.Sprintf("%s %s", req.PublishDate, req.PublishTime), loc)
	if err != nil {
		return "", err
	}

	enclosureURL := audio.UploadName(asset.OriginalPath)
	if mediaURL, ok := hostingResp["media_url"].(string); ok && mediaURL != "" {
		enclosureURL = mediaURL
	}

	var sizeBytes int64
	if info, err := os.Stat(asset.ConvertedPath); err == nil {
		sizeBytes = info.Size()
	}

	return feed.EpisodePreview(meta, enclosureURL, sizeBytes, asset.DurationMinutes, pubDate)
}

func fail(err error) models.PipelineResult {
	log.Printf("Pipeline failed: %v", err)
	return models.PipelineResult{
		Success:      false,
		ErrorMessage: models.MessageOf(err),
		ErrorKind:    string(models.KindOf(err)),
	}
}
