package handler

import (
	"context"
	"strings"

	"savebot/internal/domain"
	"savebot/internal/texts"

	"go.uber.org/zap"
	tele "gopkg.in/telebot.v3"
)

// cancelKeywords abort any pending conversation state, case-insensitive
var cancelKeywords = map[string]bool{
	"cancel": true,
	"отмена": true,
}

// handleText routes free text through the conversation state machine
func (h *Handler) handleText(c tele.Context) error {
	if c.Chat() == nil || c.Sender() == nil {
		return nil
	}

	text := strings.TrimSpace(c.Text())
	if text == "" || strings.HasPrefix(text, "/") {
		return nil
	}

	if c.Chat().Type != tele.ChatPrivate {
		return h.handleGroupText(c, text)
	}

	userID := c.Sender().ID
	if err := h.profiles.Ensure(userID); err != nil {
		h.logger.Error("failed to ensure user exists", zap.Error(err))
		return nil
	}

	lang := h.language(userID)
	isOwner := h.profiles.IsOwner(userID)

	if cancelKeywords[strings.ToLower(text)] {
		h.clearState(userID)
		return c.Send(texts.T(lang, texts.Cancelled), h.mainMenu(lang, isOwner))
	}

	switch h.currentState(userID) {
	case domain.StateAwaitingURL:
		return h.handleAwaitedURL(c, userID, lang, isOwner, text)

	case domain.StateAwaitingCaption:
		if isOwner {
			if err := h.settings.SetMediaCaption(text); err != nil {
				h.logger.Error("failed to store media caption", zap.Error(err))
				return c.Send(texts.T(lang, texts.Error, "try again later"))
			}
			h.clearState(userID)
			return c.Send(texts.T(lang, texts.CaptionSaved), h.mainMenu(lang, true))
		}

	case domain.StateAwaitingBroadcast:
		if isOwner {
			h.clearState(userID)
			sent, failed, err := h.broadcasts.Broadcast(text)
			if err != nil {
				h.logger.Error("broadcast failed", zap.Error(err))
				return c.Send(texts.T(lang, texts.Error, "try again later"))
			}
			return c.Send(texts.T(lang, texts.BroadcastDone, sent, failed), h.mainMenu(lang, true))
		}
	}

	return h.handleMenuAction(c, userID, lang, isOwner, text)
}

// handleAwaitedURL consumes text sent in response to the link prompt.
// Text without a URL keeps the state so the user can retry in place.
func (h *Handler) handleAwaitedURL(c tele.Context, userID int64, lang domain.Language, isOwner bool, text string) error {
	url := ExtractURL(text)
	if url == "" {
		return c.Send(texts.T(lang, texts.BadLink))
	}

	h.clearState(userID)
	if err := h.downloads.Handle(context.Background(), c.Chat().ID, userID, url, lang); err != nil {
		h.logger.Error("download pipeline failed",
			zap.Int64("user_id", userID),
			zap.String("url", url),
			zap.Error(err),
		)
	}
	return c.Send(texts.T(lang, texts.Menu), h.mainMenu(lang, isOwner))
}

// handleMenuAction dispatches main menu button presses
func (h *Handler) handleMenuAction(c tele.Context, userID int64, lang domain.Language, isOwner bool, text string) error {
	switch {
	case matchesLabel(text, downloadLabels):
		h.setState(userID, domain.StateAwaitingURL)
		return c.Send(texts.T(lang, texts.SendLink), &tele.ReplyMarkup{RemoveKeyboard: true})

	case matchesLabel(text, formatLabels):
		format, err := h.profiles.Format(userID)
		if err != nil {
			h.logger.Error("failed to load format", zap.Error(err))
			format = domain.DefaultFormat
		}
		return c.Send(texts.T(lang, texts.FormatNow, format), formatButtons())

	case matchesLabel(text, languageLabels):
		return c.Send(texts.T(lang, texts.ChooseLang), languageButtons())

	case matchesLabel(text, helpLabels):
		return c.Send(texts.T(lang, texts.Help), h.mainMenu(lang, isOwner))

	case matchesLabel(text, captionLabels):
		if !isOwner {
			return c.Send(texts.T(lang, texts.OwnerOnly), h.mainMenu(lang, false))
		}
		h.setState(userID, domain.StateAwaitingCaption)
		return c.Send(texts.T(lang, texts.AskCaption), &tele.ReplyMarkup{RemoveKeyboard: true})

	case matchesLabel(text, broadcastLabels):
		if !isOwner {
			return c.Send(texts.T(lang, texts.OwnerOnly), h.mainMenu(lang, false))
		}
		h.setState(userID, domain.StateAwaitingBroadcast)
		return c.Send(texts.T(lang, texts.AskBroadcast), &tele.ReplyMarkup{RemoveKeyboard: true})
	}

	// Unrecognized text while idle: no error, just reoffer the menu,
	// unless the user still has to pick a language
	confirmed, err := h.profiles.HasLanguage(userID)
	if err != nil {
		h.logger.Error("failed to check language selection", zap.Error(err))
		confirmed = true
	}
	if !confirmed {
		return c.Send(texts.T(domain.DefaultLanguage, texts.ChooseLang), languageButtons())
	}
	return c.Send(texts.T(lang, texts.Menu), h.mainMenu(lang, isOwner))
}

// handleGroupText serves group chats: a mention plus a URL triggers the
// pipeline directly, anything else is ignored
func (h *Handler) handleGroupText(c tele.Context, text string) error {
	if h.username == "" {
		return nil
	}
	mention := "@" + strings.ToLower(h.username)
	if !strings.Contains(strings.ToLower(text), mention) {
		return nil
	}

	url := ExtractURL(text)
	if url == "" {
		return nil
	}

	userID := c.Sender().ID
	lang := h.language(userID)
	if err := h.downloads.Handle(context.Background(), c.Chat().ID, userID, url, lang); err != nil {
		h.logger.Error("group download pipeline failed",
			zap.Int64("chat_id", c.Chat().ID),
			zap.String("url", url),
			zap.Error(err),
		)
	}
	return nil
}
