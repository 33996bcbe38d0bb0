package media

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"

	"savebot/internal/domain"

	"go.uber.org/zap"
)

// transcodeDiagnosticLimit caps ffmpeg output embedded into an error
const transcodeDiagnosticLimit = 700

// Transcoder converts downloaded files with ffmpeg
type Transcoder struct {
	tool   Tool
	logger *zap.Logger
}

// NewTranscoder creates a transcoder using the ffmpeg binary
func NewTranscoder(logger *zap.Logger) *Transcoder {
	return NewTranscoderWithTool(NewCommandTool("ffmpeg"), logger)
}

// NewTranscoderWithTool creates a transcoder with an explicit tool
func NewTranscoderWithTool(tool Tool, logger *zap.Logger) *Transcoder {
	return &Transcoder{tool: tool, logger: logger}
}

// Convert re-encodes source per the requested preset and returns the
// resulting path. FormatAuto returns the source unchanged without
// invoking the tool. Callers must pass a validated preset.
func (t *Transcoder) Convert(ctx context.Context, source string, format domain.Format) (string, error) {
	var out string
	var args []string

	switch format {
	case domain.FormatAuto:
		return source, nil
	case domain.FormatMP4, domain.FormatMKV:
		out = replaceExt(source, string(format))
		args = []string{"-y", "-i", source, "-c:v", "libx264", "-c:a", "aac", out}
	case domain.FormatMP3:
		out = replaceExt(source, "mp3")
		args = []string{"-y", "-i", source, "-vn", "-c:a", "libmp3lame", "-q:a", "2", out}
	default:
		return "", fmt.Errorf("unsupported format preset: %q", format)
	}

	output, err := t.tool.Run(ctx, "", args...)
	if err != nil {
		t.logger.Warn("transcode failed",
			zap.String("source", source),
			zap.String("format", string(format)),
			zap.Error(err),
		)
		return "", fmt.Errorf("%s failed: %s", t.tool.Name(), truncate(output, transcodeDiagnosticLimit))
	}

	return out, nil
}

// replaceExt returns a sibling path with the extension swapped
func replaceExt(path, ext string) string {
	return strings.TrimSuffix(path, filepath.Ext(path)) + "." + ext
}
