package service

import (
	"context"
	"os"
	"strings"
	"time"

	"savebot/internal/domain"
	"savebot/internal/repository"
	"savebot/internal/texts"

	"go.uber.org/zap"
)

// errDetailLimit caps diagnostic text embedded into user-facing errors
const errDetailLimit = 700

// Fetcher downloads a URL into a working directory
type Fetcher interface {
	Fetch(ctx context.Context, url, workDir string) (string, error)
}

// Converter re-encodes a downloaded file per the requested preset
type Converter interface {
	Convert(ctx context.Context, source string, format domain.Format) (string, error)
}

// DownloadConfig carries the pipeline limits
type DownloadConfig struct {
	RequiredChannel string
	MaxFileSizeMB   int64
	Timeout         time.Duration
}

// DownloadService runs the full download pipeline: subscription gate,
// acquisition, transcoding, size check, delivery.
type DownloadService struct {
	users     repository.UserRepository
	settings  repository.SettingsRepository
	gate      *SubscriptionService
	fetcher   Fetcher
	converter Converter
	messenger Messenger
	cfg       DownloadConfig
	logger    *zap.Logger
}

// NewDownloadService creates a new download pipeline
func NewDownloadService(
	users repository.UserRepository,
	settings repository.SettingsRepository,
	gate *SubscriptionService,
	fetcher Fetcher,
	converter Converter,
	messenger Messenger,
	cfg DownloadConfig,
	logger *zap.Logger,
) *DownloadService {
	return &DownloadService{
		users:     users,
		settings:  settings,
		gate:      gate,
		fetcher:   fetcher,
		converter: converter,
		messenger: messenger,
		cfg:       cfg,
		logger:    logger,
	}
}

// Handle downloads the URL and delivers the resulting file to chatID.
// Failures are reported to the user via the status message; only
// transport errors while reporting are returned.
func (s *DownloadService) Handle(ctx context.Context, chatID, senderID int64, url string, lang domain.Language) error {
	if !s.gate.IsSubscribed(senderID) {
		_, err := s.messenger.Send(chatID, texts.T(lang, texts.NeedSub, s.cfg.RequiredChannel))
		return err
	}

	statusID, err := s.messenger.Send(chatID, texts.T(lang, texts.Downloading))
	if err != nil {
		return err
	}

	if s.cfg.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.cfg.Timeout)
		defer cancel()
	}

	workDir, err := os.MkdirTemp("", "tg_dl_")
	if err != nil {
		return s.reportError(chatID, statusID, lang, err)
	}
	// The scratch workspace is removed on every exit path
	defer os.RemoveAll(workDir)

	source, err := s.fetcher.Fetch(ctx, url, workDir)
	if err != nil {
		return s.reportError(chatID, statusID, lang, err)
	}

	format, err := s.users.GetFormat(senderID)
	if err != nil {
		return s.reportError(chatID, statusID, lang, err)
	}

	result, err := s.converter.Convert(ctx, source, format)
	if err != nil {
		return s.reportError(chatID, statusID, lang, err)
	}

	info, err := os.Stat(result)
	if err != nil {
		return s.reportError(chatID, statusID, lang, err)
	}
	sizeMB := float64(info.Size()) / (1024 * 1024)
	if sizeMB > float64(s.cfg.MaxFileSizeMB) {
		s.logger.Info("file exceeds size limit",
			zap.String("url", url),
			zap.Float64("size_mb", sizeMB),
			zap.Int64("limit_mb", s.cfg.MaxFileSizeMB),
		)
		return s.messenger.Edit(chatID, statusID, texts.T(lang, texts.TooBig, sizeMB, s.cfg.MaxFileSizeMB))
	}

	if err := s.messenger.Edit(chatID, statusID, texts.T(lang, texts.Sending, sizeMB)); err != nil {
		s.logger.Warn("failed to update status message", zap.Error(err))
	}

	caption := s.caption(lang)
	if err := s.messenger.SendFile(chatID, result, caption); err != nil {
		return s.reportError(chatID, statusID, lang, err)
	}

	s.logger.Info("media delivered",
		zap.Int64("chat_id", chatID),
		zap.String("url", url),
		zap.Float64("size_mb", sizeMB),
		zap.String("format", string(format)),
	)
	return s.messenger.Delete(chatID, statusID)
}

// caption returns the configured global caption, or a localized default
// when it is empty
func (s *DownloadService) caption(lang domain.Language) string {
	caption, err := s.settings.GetMediaCaption()
	if err != nil {
		s.logger.Error("failed to load media caption", zap.Error(err))
		caption = ""
	}
	caption = strings.TrimSpace(caption)
	if caption == "" {
		return texts.T(lang, texts.Done)
	}
	return caption
}

func (s *DownloadService) reportError(chatID int64, statusID int, lang domain.Language, cause error) error {
	s.logger.Warn("download pipeline failed", zap.Error(cause))
	detail := cause.Error()
	if len(detail) > errDetailLimit {
		detail = detail[:errDetailLimit]
	}
	return s.messenger.Edit(chatID, statusID, texts.T(lang, texts.Error, detail))
}
