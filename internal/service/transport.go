package service

// Messenger is the outbound transport surface the services need
type Messenger interface {
	Send(chatID int64, text string) (int, error)
	Edit(chatID int64, messageID int, text string) error
	Delete(chatID int64, messageID int) error
	SendFile(chatID int64, path, caption string) error
}
