package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseArgs(t *testing.T) {
	req, err := parseArgs([]string{"./recordings/episode42.wav", "https://example.com/post", "2023-05-15", "10:30"})
	require.NoError(t, err)

	assert.Equal(t, "./recordings/episode42.wav", req.AudioFilePath)
	assert.Equal(t, "https://example.com/post", req.ContentURL)
	assert.Equal(t, "2023-05-15", req.PublishDate)
	assert.Equal(t, "10:30", req.PublishTime)
}

func TestParseArgsWrongCount(t *testing.T) {
	for _, args := range [][]string{
		{},
		{"episode.wav"},
		{"episode.wav", "https://example.com"},
		{"episode.wav", "https://example.com", "2023-05-15"},
		{"episode.wav", "https://example.com", "2023-05-15", "10:30", "extra"},
	} {
		_, err := parseArgs(args)
		assert.Error(t, err, "args: %v", args)
	}
}
