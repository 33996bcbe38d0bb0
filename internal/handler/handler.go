package handler

import (
	"context"

	"savebot/internal/domain"
	"savebot/internal/repository"

	"go.uber.org/zap"
	tele "gopkg.in/telebot.v3"
)

// Profiles is the profile surface the handlers consume
type Profiles interface {
	Ensure(userID int64) error
	IsOwner(userID int64) bool
	Language(userID int64) (domain.Language, error)
	HasLanguage(userID int64) (bool, error)
	SetLanguage(userID int64, lang domain.Language) error
	Format(userID int64) (domain.Format, error)
	SetFormat(userID int64, format domain.Format) error
}

// Downloads runs the download pipeline for one URL
type Downloads interface {
	Handle(ctx context.Context, chatID, senderID int64, url string, lang domain.Language) error
}

// Broadcasts sends one message to every known user
type Broadcasts interface {
	Broadcast(text string) (sent, failed int, err error)
}

// Handler manages all bot interactions
type Handler struct {
	bot        *tele.Bot
	username   string
	profiles   Profiles
	states     repository.StateRepository
	settings   repository.SettingsRepository
	downloads  Downloads
	broadcasts Broadcasts
	logger     *zap.Logger
}

// NewHandler creates a new handler instance
func NewHandler(
	bot *tele.Bot,
	profiles Profiles,
	states repository.StateRepository,
	settings repository.SettingsRepository,
	downloads Downloads,
	broadcasts Broadcasts,
	logger *zap.Logger,
) *Handler {
	h := &Handler{
		bot:        bot,
		profiles:   profiles,
		states:     states,
		settings:   settings,
		downloads:  downloads,
		broadcasts: broadcasts,
		logger:     logger,
	}
	if bot != nil && bot.Me != nil {
		h.username = bot.Me.Username
	}
	return h
}

// RegisterHandlers registers all bot handlers
func (h *Handler) RegisterHandlers() {
	h.bot.Handle("/start", h.handleStart)
	h.bot.Handle(tele.OnText, h.handleText)
	h.bot.Handle(&tele.Btn{Unique: uniqueLanguage}, h.handleLanguageSelect)
	h.bot.Handle(&tele.Btn{Unique: uniqueFormat}, h.handleFormatSelect)
}

// Button uniques for inline callbacks
const (
	uniqueLanguage = "lang"
	uniqueFormat   = "format"
)

// Reply keyboard labels, ru first, en second
var (
	downloadLabels  = [2]string{"📥 Скачать видео/медиа", "📥 Download video/media"}
	formatLabels    = [2]string{"🎬 Формат", "🎬 Format"}
	languageLabels  = [2]string{"🌐 Язык", "🌐 Language"}
	helpLabels      = [2]string{"ℹ️ Помощь", "ℹ️ Help"}
	captionLabels   = [2]string{"📝 Текст под видео", "📝 Media caption"}
	broadcastLabels = [2]string{"📣 Рассылка", "📣 Broadcast"}
)

func label(labels [2]string, lang domain.Language) string {
	if lang == domain.LanguageEN {
		return labels[1]
	}
	return labels[0]
}

// matchesLabel accepts the label in either locale so a stale keyboard
// still works after a language switch
func matchesLabel(text string, labels [2]string) bool {
	return text == labels[0] || text == labels[1]
}

// mainMenu returns the main reply keyboard
func (h *Handler) mainMenu(lang domain.Language, isOwner bool) *tele.ReplyMarkup {
	menu := &tele.ReplyMarkup{ResizeKeyboard: true}
	rows := []tele.Row{
		menu.Row(menu.Text(label(downloadLabels, lang))),
		menu.Row(menu.Text(label(formatLabels, lang)), menu.Text(label(languageLabels, lang))),
		menu.Row(menu.Text(label(helpLabels, lang))),
	}
	if isOwner {
		rows = append(rows, menu.Row(menu.Text(label(captionLabels, lang)), menu.Text(label(broadcastLabels, lang))))
	}
	menu.Reply(rows...)
	return menu
}

// languageButtons returns the inline language selector
func languageButtons() *tele.ReplyMarkup {
	markup := &tele.ReplyMarkup{}
	markup.Inline(markup.Row(
		markup.Data("🇷🇺 Русский", uniqueLanguage, "ru"),
		markup.Data("🇬🇧 English", uniqueLanguage, "en"),
	))
	return markup
}

// formatButtons returns the inline output format selector
func formatButtons() *tele.ReplyMarkup {
	markup := &tele.ReplyMarkup{}
	markup.Inline(
		markup.Row(
			markup.Data("AUTO", uniqueFormat, "auto"),
			markup.Data("MP4", uniqueFormat, "mp4"),
		),
		markup.Row(
			markup.Data("MKV", uniqueFormat, "mkv"),
			markup.Data("MP3", uniqueFormat, "mp3"),
		),
	)
	return markup
}

// language returns the user's language, falling back to the default
func (h *Handler) language(userID int64) domain.Language {
	lang, err := h.profiles.Language(userID)
	if err != nil {
		h.logger.Error("failed to load language", zap.Int64("user_id", userID), zap.Error(err))
		return domain.DefaultLanguage
	}
	return lang
}

// currentState returns the user's conversation state
func (h *Handler) currentState(userID int64) domain.State {
	state, err := h.states.Get(userID)
	if err != nil {
		h.logger.Error("failed to load state", zap.Int64("user_id", userID), zap.Error(err))
		return domain.StateIdle
	}
	return state
}

func (h *Handler) setState(userID int64, state domain.State) {
	if err := h.states.Set(userID, state); err != nil {
		h.logger.Error("failed to store state",
			zap.Int64("user_id", userID),
			zap.String("state", string(state)),
			zap.Error(err),
		)
	}
}

func (h *Handler) clearState(userID int64) {
	if err := h.states.Clear(userID); err != nil {
		h.logger.Error("failed to clear state", zap.Int64("user_id", userID), zap.Error(err))
	}
}
