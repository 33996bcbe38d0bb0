package service

import (
	"go.uber.org/zap"
	tele "gopkg.in/telebot.v3"
)

// MembershipClient looks up a user's membership status in a channel
type MembershipClient interface {
	MemberStatus(channel string, userID int64) (string, error)
}

// SubscriptionService gates bot usage behind a required channel
// subscription. Lookups fail closed: any transport error counts as
// not subscribed.
type SubscriptionService struct {
	client  MembershipClient
	channel string
	logger  *zap.Logger
}

// NewSubscriptionService creates a new subscription gate
func NewSubscriptionService(client MembershipClient, channel string, logger *zap.Logger) *SubscriptionService {
	return &SubscriptionService{client: client, channel: channel, logger: logger}
}

// IsSubscribed reports whether the user is subscribed to the required channel
func (s *SubscriptionService) IsSubscribed(userID int64) bool {
	status, err := s.client.MemberStatus(s.channel, userID)
	if err != nil {
		s.logger.Warn("membership lookup failed",
			zap.String("channel", s.channel),
			zap.Int64("user_id", userID),
			zap.Error(err),
		)
		return false
	}

	switch tele.MemberStatus(status) {
	case tele.Creator, tele.Administrator, tele.Member, tele.Restricted:
		return true
	}
	return false
}
