package handler

import (
	"savebot/internal/domain"
	"savebot/internal/texts"

	"go.uber.org/zap"
	tele "gopkg.in/telebot.v3"
)

// handleStart handles /start command
func (h *Handler) handleStart(c tele.Context) error {
	if c.Chat() == nil || c.Sender() == nil {
		return nil
	}

	if c.Chat().Type != tele.ChatPrivate {
		return c.Send(texts.T(domain.DefaultLanguage, texts.GroupHint, h.username))
	}

	userID := c.Sender().ID

	h.logger.Info("user started bot",
		zap.Int64("user_id", userID),
		zap.String("username", c.Sender().Username),
	)

	if err := h.profiles.Ensure(userID); err != nil {
		h.logger.Error("failed to ensure user exists", zap.Error(err))
		return c.Send(texts.T(domain.DefaultLanguage, texts.Error, "try again later"))
	}

	// Force a language choice before the menu is ever shown
	confirmed, err := h.profiles.HasLanguage(userID)
	if err != nil {
		h.logger.Error("failed to check language selection", zap.Error(err))
		confirmed = false
	}
	if !confirmed {
		return c.Send(texts.T(domain.DefaultLanguage, texts.ChooseLang), languageButtons())
	}

	lang := h.language(userID)
	return c.Send(texts.T(lang, texts.Welcome), h.mainMenu(lang, h.profiles.IsOwner(userID)))
}
