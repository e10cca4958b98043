// Package transcode re-encodes arbitrary audio into the catalog's MP3
// format: mono, 64 kbit/s, 44.1 kHz.
package transcode

import (
	"bytes"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"

	"github.com/google/uuid"
)

var execCommand = exec.Command

// ToMP3 re-encodes an audio buffer. ffmpeg only works on files, so the
// buffer takes a round trip through two uuid-named temp files; both are
// removed on every exit path. extHint names the input container for ffmpeg
// and comes from the source URL's file extension.
func ToMP3(data []byte, extHint string) ([]byte, error) {
	if extHint == "" {
		extHint = "bin"
	}

	id := uuid.NewString()
	inputPath := filepath.Join(os.TempDir(), id+"."+extHint)
	outputPath := filepath.Join(os.TempDir(), id+"-out.mp3")

	if err := os.WriteFile(inputPath, data, 0o644); err != nil {
		return nil, fmt.Errorf("failed to write transcode input: %w", err)
	}
	defer os.Remove(inputPath)
	defer os.Remove(outputPath)

	cmd := execCommand("ffmpeg",
		"-i", inputPath,
		"-vn",
		"-acodec", "libmp3lame",
		"-b:a", "64k",
		"-ac", "1",
		"-ar", "44100",
		"-f", "mp3",
		outputPath,
	)

	var stderr bytes.Buffer
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		return nil, fmt.Errorf("ffmpeg error: %w, stderr: %s", err, stderr.String())
	}

	out, err := os.ReadFile(outputPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read transcode output: %w", err)
	}
	return out, nil
}
