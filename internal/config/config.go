package config

import "os"

const (
	defaultLLMAPIURL = "https://api.anthropic.com/v1/messages"
	defaultLLMModel  = "claude-3-5-haiku-latest"

	// Publish times on the command line are interpreted in this zone
	// unless PUBLISH_TIMEZONE overrides it.
	defaultTimezone = "America/Halifax"
)

// Config holds everything read from the environment, built once at startup
// and passed into each component. Missing keys are not validated here; they
// surface as request failures against the service that needed them.
type Config struct {
	LLMAPIKey       string
	LLMAPIURL       string
	LLMModel        string
	HostingAPIURL   string
	PodcastID       string
	PublishTimezone string
	OutputDir       string
}

// Load reads the configuration from the environment.
func Load() Config {
	return Config{
		LLMAPIKey:       os.Getenv("LLM_API_KEY"),
		LLMAPIURL:       getEnv("LLM_API_URL", defaultLLMAPIURL),
		LLMModel:        getEnv("LLM_MODEL", defaultLLMModel),
		HostingAPIURL:   os.Getenv("HOSTING_API_URL"),
		PodcastID:       os.Getenv("PODCAST_ID"),
		PublishTimezone: getEnv("PUBLISH_TIMEZONE", defaultTimezone),
		OutputDir:       getEnv("OUTPUT_DIR", "."),
	}
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
