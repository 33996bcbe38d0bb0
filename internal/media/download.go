package media

import (
	"context"
	"fmt"
	"io/fs"
	"path/filepath"
	"strings"
	"time"

	"go.uber.org/zap"
)

// outputTemplate bounds the title length and restricts filenames to
// filesystem-safe characters (together with --restrict-filenames)
const outputTemplate = "%(title).100B-%(id)s.%(ext)s"

// diagnosticLimit caps per-tool output embedded into a download error
const diagnosticLimit = 350

// mediaExtensions are preferred during result discovery so that metadata
// sidecars written after the media file do not win the mtime race
var mediaExtensions = map[string]bool{
	".mp4": true, ".mkv": true, ".webm": true, ".mov": true, ".avi": true,
	".mp3": true, ".m4a": true, ".ogg": true, ".opus": true, ".flac": true,
	".wav": true, ".gif": true, ".jpg": true, ".jpeg": true, ".png": true,
	".webp": true,
}

// Downloader fetches media via yt-dlp with a gallery-dl fallback
type Downloader struct {
	primary  Tool
	fallback Tool
	logger   *zap.Logger
}

// NewDownloader creates a downloader using the yt-dlp and gallery-dl binaries
func NewDownloader(logger *zap.Logger) *Downloader {
	return NewDownloaderWithTools(NewCommandTool("yt-dlp"), NewCommandTool("gallery-dl"), logger)
}

// NewDownloaderWithTools creates a downloader with explicit tools
func NewDownloaderWithTools(primary, fallback Tool, logger *zap.Logger) *Downloader {
	return &Downloader{primary: primary, fallback: fallback, logger: logger}
}

// Fetch downloads the URL into workDir and returns the resulting file path.
// The primary tool counts as successful only when it exits zero AND leaves
// at least one file behind; otherwise the fallback gets the same chance.
func (d *Downloader) Fetch(ctx context.Context, url, workDir string) (string, error) {
	args := []string{
		"--no-playlist",
		"-f", "bv*+ba/b",
		"--merge-output-format", "mp4",
		"--restrict-filenames",
		"--no-warnings",
		"-o", filepath.Join(workDir, outputTemplate),
		url,
	}
	primaryOut, err := d.primary.Run(ctx, workDir, args...)
	if err == nil {
		if path := latestFile(workDir); path != "" {
			return path, nil
		}
	} else {
		d.logger.Warn("primary downloader failed",
			zap.String("tool", d.primary.Name()),
			zap.String("url", url),
			zap.Error(err),
		)
	}

	fallbackOut, ferr := d.fallback.Run(ctx, workDir, "--directory", workDir, "--write-metadata", url)
	if ferr == nil {
		if path := latestFile(workDir); path != "" {
			return path, nil
		}
	} else {
		d.logger.Warn("fallback downloader failed",
			zap.String("tool", d.fallback.Name()),
			zap.String("url", url),
			zap.Error(ferr),
		)
	}

	return "", fmt.Errorf("download failed. %s: %s | %s: %s",
		d.primary.Name(), truncate(primaryOut, diagnosticLimit),
		d.fallback.Name(), truncate(fallbackOut, diagnosticLimit))
}

// latestFile returns the most recently modified file under root,
// preferring files with a known media extension. Empty when no file exists.
func latestFile(root string) string {
	var newest, newestMedia string
	var newestTime, newestMediaTime time.Time

	_ = filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil || d.IsDir() {
			return nil
		}
		info, err := d.Info()
		if err != nil {
			return nil
		}
		mod := info.ModTime()
		if newest == "" || mod.After(newestTime) {
			newest, newestTime = path, mod
		}
		if mediaExtensions[strings.ToLower(filepath.Ext(path))] {
			if newestMedia == "" || mod.After(newestMediaTime) {
				newestMedia, newestMediaTime = path, mod
			}
		}
		return nil
	})

	if newestMedia != "" {
		return newestMedia
	}
	return newest
}
