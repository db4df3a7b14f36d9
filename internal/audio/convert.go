package audio

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/google/uuid"

	"pagecast/internal/models"
)

// Convert transcodes inputPath to a standardized MP3 under outputDir:
// stereo, 48kHz, 192kbps, source tags preserved, ID3v2.3 plus a legacy
// ID3v1 tag. The on-disk name carries a short random token so concurrent
// runs against same-named inputs cannot collide.
func Convert(inputPath, outputDir string) (string, error) {
	token := uuid.New().String()[:8]
	base := baseName(inputPath)
	outputPath := filepath.Join(outputDir, fmt.Sprintf("%s-%s.mp3", base, token))

	cmd := execCommand("ffmpeg",
		"-y",
		"-i", inputPath,
		"-ac", "2",
		"-ar", "48000",
		"-b:a", "192k",
		"-map_metadata", "0",
		"-id3v2_version", "3",
		"-write_id3v1", "1",
		outputPath,
	)

	output, err := cmd.CombinedOutput()
	if err != nil {
		return "", models.NewError(models.KindConversion, "failed to execute ffmpeg: %v: %s", err, output)
	}

	return outputPath, nil
}

// UploadName is the file name presented to the hosting service: the input's
// base name with the extension replaced by .mp3, no directory component.
func UploadName(inputPath string) string {
	return baseName(inputPath) + ".mp3"
}

func baseName(path string) string {
	return strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
}
