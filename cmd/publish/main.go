package main

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"os"

	"github.com/joho/godotenv"

	"pagecast/internal/config"
	"pagecast/internal/models"
	"pagecast/internal/pipeline"
)

const usage = "Usage: publish <audioFilePath> <contentURL> <publishDate YYYY-MM-DD> <publishTime HH:MM>"

// CommitSHA is set at build time via ldflags
var CommitSHA = "unknown"

func main() {
	err := godotenv.Load()
	if err != nil {
		log.Println("Error loading .env file")
	}

	req, err := parseArgs(os.Args[1:])
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		fmt.Fprintln(os.Stderr, usage)
		os.Exit(1)
	}

	cfg := config.Load()

	log.Printf("Publishing episode from %s (commit: %s)", req.AudioFilePath, CommitSHA)
	result := pipeline.New(cfg).Run(context.Background(), req)

	out, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		log.Fatalf("could not marshal result: %v", err)
	}
	fmt.Println(string(out))

	if !result.Success {
		os.Exit(1)
	}
}

func parseArgs(args []string) (models.EpisodeRequest, error) {
	if len(args) != 4 {
		return models.EpisodeRequest{}, fmt.Errorf("expected 4 arguments, got %d", len(args))
	}
	return models.EpisodeRequest{
		AudioFilePath: args[0],
		ContentURL:    args[1],
		PublishDate:   args[2],
		PublishTime:   args[3],
	}, nil
}
