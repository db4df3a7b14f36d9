package audio

import (
	"encoding/json"
	"fmt"
	"math"
	"os/exec"
	"strconv"
	"strings"
)

var execCommand = exec.Command

type ffprobeOutput struct {
	Format struct {
		Duration string `json:"duration"`
	} `json:"format"`
}

// ProbeDurationMinutes runs ffprobe against path and returns the duration
// rounded to whole minutes (half away from zero). The caller decides what a
// probing failure means; the pipeline treats it as zero and keeps going.
func ProbeDurationMinutes(path string) (int, error) {
	cmd := execCommand("ffprobe",
		"-v", "error",
		"-show_entries", "format=duration",
		"-of", "json",
		path,
	)

	output, err := cmd.CombinedOutput()
	if err != nil {
		return 0, fmt.Errorf("failed to execute ffprobe: %w: %s", err, output)
	}

	// ffprobe can emit warnings before the JSON even with -v error.
	jsonStart := strings.Index(string(output), "{")
	if jsonStart == -1 {
		return 0, fmt.Errorf("no JSON found in ffprobe output: %s", output)
	}

	var probed ffprobeOutput
	if err := json.Unmarshal(output[jsonStart:], &probed); err != nil {
		return 0, fmt.Errorf("failed to unmarshal ffprobe output: %w", err)
	}

	seconds, err := strconv.ParseFloat(probed.Format.Duration, 64)
	if err != nil {
		return 0, fmt.Errorf("ffprobe reported no parseable duration: %w", err)
	}

	return int(math.Round(seconds / 60)), nil
}
