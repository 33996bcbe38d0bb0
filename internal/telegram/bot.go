// Package telegram adapts the telebot transport to the narrow messenger
// and membership interfaces the services consume.
package telegram

import (
	"path/filepath"

	tele "gopkg.in/telebot.v3"
)

// Bot wraps a telebot instance for outbound delivery
type Bot struct {
	bot *tele.Bot
}

// NewBot creates the transport adapter
func NewBot(bot *tele.Bot) *Bot {
	return &Bot{bot: bot}
}

// Send delivers a text message and returns its message ID
func (b *Bot) Send(chatID int64, text string) (int, error) {
	msg, err := b.bot.Send(tele.ChatID(chatID), text)
	if err != nil {
		return 0, err
	}
	return msg.ID, nil
}

// Edit replaces the text of a previously sent message
func (b *Bot) Edit(chatID int64, messageID int, text string) error {
	_, err := b.bot.Edit(messageRef(chatID, messageID), text)
	return err
}

// Delete removes a previously sent message
func (b *Bot) Delete(chatID int64, messageID int) error {
	return b.bot.Delete(messageRef(chatID, messageID))
}

// SendFile delivers a local file as a document with a caption
func (b *Bot) SendFile(chatID int64, path, caption string) error {
	doc := &tele.Document{
		File:     tele.FromDisk(path),
		FileName: filepath.Base(path),
		Caption:  caption,
	}
	_, err := b.bot.Send(tele.ChatID(chatID), doc)
	return err
}

// MemberStatus returns the raw membership status of a user in a channel.
// The channel may be a numeric ID or an @username.
func (b *Bot) MemberStatus(channel string, userID int64) (string, error) {
	member, err := b.bot.ChatMemberOf(channelRecipient(channel), &tele.User{ID: userID})
	if err != nil {
		return "", err
	}
	return string(member.Role), nil
}

func messageRef(chatID int64, messageID int) tele.Editable {
	return &tele.Message{ID: messageID, Chat: &tele.Chat{ID: chatID}}
}

// channelRecipient lets @username channels be addressed directly,
// which tele.ChatID (an int64) cannot express
type channelRecipient string

func (c channelRecipient) Recipient() string {
	return string(c)
}
