// Package transcode shells out to ffmpeg for the mono downmix required by
// the speech-recognition service. ffmpeg is an external collaborator: input
// is a file path, output is a converted file path or an error. There is no
// fallback encoder.
package transcode

import (
	"bytes"
	"context"
	"fmt"
	"os/exec"
)

// Transcoder converts audio files via the ffmpeg binary.
type Transcoder struct {
	binary string
}

// New creates a Transcoder. binary defaults to "ffmpeg" when empty.
func New(binary string) *Transcoder {
	if binary == "" {
		binary = "ffmpeg"
	}
	return &Transcoder{binary: binary}
}

// DownmixMono converts the audio at inPath to a single-channel file at
// outPath. The container format is inferred by ffmpeg from the output
// extension, so outPath should keep the original extension.
func (t *Transcoder) DownmixMono(ctx context.Context, inPath, outPath string) error {
	cmd := exec.CommandContext(ctx, t.binary, "-i", inPath, "-ac", "1", outPath)

	var stderr bytes.Buffer
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		if stderr.Len() > 0 {
			return fmt.Errorf("ffmpeg downmix failed: %w: %s", err, stderr.String())
		}
		return fmt.Errorf("ffmpeg downmix failed: %w", err)
	}

	return nil
}
