package domain

import (
	"fmt"
	"time"
)

// User represents a bot user profile
type User struct {
	UserID           int64
	Language         Language
	LanguageSelected bool
	PreferredFormat  Format
	CreatedAt        time.Time
}

// Language is an interface language of a user
type Language string

const (
	LanguageRU Language = "ru"
	LanguageEN Language = "en"

	// DefaultLanguage is used until the user confirms a choice
	DefaultLanguage = LanguageRU
)

// ParseLanguage validates a raw language value
func ParseLanguage(raw string) (Language, error) {
	lang := Language(raw)
	if !lang.Valid() {
		return "", fmt.Errorf("unknown language: %q", raw)
	}
	return lang, nil
}

// Valid reports whether the language is a known one
func (l Language) Valid() bool {
	return l == LanguageRU || l == LanguageEN
}

// Format is a preferred output format for downloaded media
type Format string

const (
	FormatAuto Format = "auto"
	FormatMP4  Format = "mp4"
	FormatMKV  Format = "mkv"
	FormatMP3  Format = "mp3"

	// DefaultFormat keeps the downloaded file as-is
	DefaultFormat = FormatAuto
)

// ParseFormat validates a raw format value
func ParseFormat(raw string) (Format, error) {
	format := Format(raw)
	if !format.Valid() {
		return "", fmt.Errorf("unknown format: %q", raw)
	}
	return format, nil
}

// Valid reports whether the format is a known one
func (f Format) Valid() bool {
	switch f {
	case FormatAuto, FormatMP4, FormatMKV, FormatMP3:
		return true
	}
	return false
}

// State represents user's current conversation state.
// StateIdle is the default and is stored as row absence.
type State string

const (
	StateIdle              State = "idle"
	StateAwaitingURL       State = "awaiting_url"
	StateAwaitingCaption   State = "awaiting_caption"
	StateAwaitingBroadcast State = "awaiting_broadcast"
)
