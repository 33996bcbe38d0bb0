package service

import (
	"savebot/internal/repository"

	"go.uber.org/zap"
)

// BroadcastService delivers one message to every known user
type BroadcastService struct {
	users     repository.UserRepository
	messenger Messenger
	logger    *zap.Logger
}

// NewBroadcastService creates a new broadcast service
func NewBroadcastService(users repository.UserRepository, messenger Messenger, logger *zap.Logger) *BroadcastService {
	return &BroadcastService{users: users, messenger: messenger, logger: logger}
}

// Broadcast sends text to all users sequentially. A failed delivery is
// tallied and never aborts the remaining sends.
func (s *BroadcastService) Broadcast(text string) (sent, failed int, err error) {
	users, err := s.users.AllUsers()
	if err != nil {
		return 0, 0, err
	}

	for _, userID := range users {
		if _, err := s.messenger.Send(userID, text); err != nil {
			s.logger.Warn("broadcast delivery failed",
				zap.Int64("user_id", userID),
				zap.Error(err),
			)
			failed++
			continue
		}
		sent++
	}

	s.logger.Info("broadcast finished",
		zap.Int("sent", sent),
		zap.Int("failed", failed),
	)
	return sent, failed, nil
}
