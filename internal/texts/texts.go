// Package texts holds the static localized message catalog.
package texts

import (
	"fmt"

	"savebot/internal/domain"
)

// Message keys
const (
	Welcome       = "welcome"
	ChooseLang    = "choose_lang"
	LangSaved     = "lang_saved"
	Menu          = "menu"
	Help          = "help"
	NeedSub       = "need_sub"
	SendLink      = "send_link"
	BadLink       = "bad_link"
	Downloading   = "downloading"
	Sending       = "sending"
	TooBig        = "too_big"
	Done          = "done"
	Error         = "error"
	FormatNow     = "format_now"
	FormatSaved   = "format_saved"
	OwnerOnly     = "owner_only"
	BroadcastDone = "broadcast_done"
	AskCaption    = "ask_caption"
	CaptionSaved  = "caption_saved"
	AskBroadcast  = "ask_broadcast"
	Cancelled     = "cancelled"
	GroupHint     = "group_hint"
)

var catalog = map[domain.Language]map[string]string{
	domain.LanguageRU: {
		Welcome: "Привет! Я помогу скачать видео/медиа из YouTube, Instagram, TikTok и других платформ.\n\n" +
			"Как пользоваться:\n" +
			"1) Нажми кнопку «Скачать видео/медиа»\n" +
			"2) Отправь ссылку\n" +
			"3) Получи файл в выбранном формате\n\n" +
			"Для работы нужна подписка на обязательный канал.",
		ChooseLang: "Выберите язык:",
		LangSaved:  "Язык сохранён.",
		Menu:       "Меню открыто. Выберите действие:",
		Help: "Возможности:\n" +
			"• Скачивание через yt-dlp с fallback на gallery-dl\n" +
			"• Отправка файлов до лимитов Telegram Bot API\n" +
			"• Выбор формата: auto/mp4/mkv/mp3\n" +
			"• Обязательная подписка на канал",
		NeedSub:       "Для использования бота подпишитесь на канал %s и повторите запрос.",
		SendLink:      "Отправьте ссылку (http/https).",
		BadLink:       "Это не похоже на ссылку. Отправьте корректный URL.",
		Downloading:   "Скачиваю медиа, подождите...",
		Sending:       "Отправляю файл (%.1fMB)...",
		TooBig:        "Файл слишком большой: %.1fMB. Лимит %dMB.",
		Done:          "Готово.",
		Error:         "Ошибка: %s",
		FormatNow:     "Текущий формат: %s",
		FormatSaved:   "Формат сохранён: %s",
		OwnerOnly:     "Эта функция только для владельца.",
		BroadcastDone: "Рассылка завершена. Успешно: %d, ошибок: %d",
		AskCaption:    "Отправьте новый текст под видео (caption).",
		CaptionSaved:  "Текст под видео обновлён.",
		AskBroadcast:  "Отправьте текст рассылки одним сообщением.",
		Cancelled:     "Действие отменено.",
		GroupHint:     "В чате напишите: @%s <ссылка>",
	},
	domain.LanguageEN: {
		Welcome: "Hi! I can download video/media from YouTube, Instagram, TikTok, and many other platforms.\n\n" +
			"How to use:\n" +
			"1) Tap “Download video/media”\n" +
			"2) Send a link\n" +
			"3) Receive file in your chosen format\n\n" +
			"A required channel subscription is needed before using the bot.",
		ChooseLang: "Choose your language:",
		LangSaved:  "Language saved.",
		Menu:       "Menu opened. Choose an action:",
		Help: "Features:\n" +
			"• Download via yt-dlp with gallery-dl fallback\n" +
			"• File sending up to Telegram Bot API limits\n" +
			"• Output formats: auto/mp4/mkv/mp3\n" +
			"• Required channel subscription gate",
		NeedSub:       "Please subscribe to %s and try again.",
		SendLink:      "Send a link (http/https).",
		BadLink:       "This does not look like a valid URL. Send a correct link.",
		Downloading:   "Downloading media, please wait...",
		Sending:       "Uploading file (%.1fMB)...",
		TooBig:        "File is too large: %.1fMB. Limit: %dMB.",
		Done:          "Done.",
		Error:         "Error: %s",
		FormatNow:     "Current format: %s",
		FormatSaved:   "Format saved: %s",
		OwnerOnly:     "This function is owner-only.",
		BroadcastDone: "Broadcast finished. Sent: %d, failed: %d",
		AskCaption:    "Send new media caption text.",
		CaptionSaved:  "Media caption updated.",
		AskBroadcast:  "Send broadcast text in one message.",
		Cancelled:     "Cancelled.",
		GroupHint:     "In group chat send: @%s <link>",
	},
}

// T returns the template for (lang, key) with args interpolated.
// Unknown languages fall back to English.
func T(lang domain.Language, key string, args ...interface{}) string {
	messages, ok := catalog[lang]
	if !ok {
		messages = catalog[domain.LanguageEN]
	}
	tpl := messages[key]
	if len(args) == 0 {
		return tpl
	}
	return fmt.Sprintf(tpl, args...)
}
