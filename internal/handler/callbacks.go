package handler

import (
	"strings"
	"unicode"

	"savebot/internal/domain"
	"savebot/internal/texts"

	"go.uber.org/zap"
	tele "gopkg.in/telebot.v3"
)

// cleanCallbackData removes all non-printable characters from callback data
func cleanCallbackData(data string) string {
	return strings.Map(func(r rune) rune {
		if unicode.IsPrint(r) {
			return r
		}
		return -1
	}, strings.TrimSpace(data))
}

// handleLanguageSelect stores a language chosen via inline button.
// Language selection is a state-independent side channel: it never
// touches the conversation state.
func (h *Handler) handleLanguageSelect(c tele.Context) error {
	if c.Sender() == nil {
		return nil
	}
	userID := c.Sender().ID

	lang, err := domain.ParseLanguage(cleanCallbackData(c.Data()))
	if err != nil {
		return c.Respond(&tele.CallbackResponse{Text: "Invalid language", ShowAlert: true})
	}

	if err := h.profiles.SetLanguage(userID, lang); err != nil {
		h.logger.Error("failed to store language", zap.Int64("user_id", userID), zap.Error(err))
		return c.Respond(&tele.CallbackResponse{Text: texts.T(lang, texts.Error, "try again later")})
	}

	h.logger.Info("language selected",
		zap.Int64("user_id", userID),
		zap.String("language", string(lang)),
	)

	if err := c.Edit(texts.T(lang, texts.LangSaved)); err != nil {
		h.logger.Debug("failed to edit language prompt", zap.Error(err))
	}
	if err := c.Send(texts.T(lang, texts.Menu), h.mainMenu(lang, h.profiles.IsOwner(userID))); err != nil {
		h.logger.Error("failed to send menu", zap.Error(err))
	}
	return c.Respond()
}

// handleFormatSelect stores an output format chosen via inline button
func (h *Handler) handleFormatSelect(c tele.Context) error {
	if c.Sender() == nil {
		return nil
	}
	userID := c.Sender().ID

	format, err := domain.ParseFormat(cleanCallbackData(c.Data()))
	if err != nil {
		return c.Respond(&tele.CallbackResponse{Text: "Invalid format", ShowAlert: true})
	}

	if err := h.profiles.SetFormat(userID, format); err != nil {
		h.logger.Error("failed to store format", zap.Int64("user_id", userID), zap.Error(err))
		return c.Respond(&tele.CallbackResponse{Text: "Error, try again later"})
	}

	lang := h.language(userID)
	return c.Respond(&tele.CallbackResponse{
		Text:      texts.T(lang, texts.FormatSaved, format),
		ShowAlert: true,
	})
}
