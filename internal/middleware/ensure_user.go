package middleware

import (
	"savebot/internal/service"

	"go.uber.org/zap"
	tele "gopkg.in/telebot.v3"
)

// EnsureUser creates middleware that registers every interacting user
func EnsureUser(profiles *service.ProfileService, logger *zap.Logger) tele.MiddlewareFunc {
	return func(next tele.HandlerFunc) tele.HandlerFunc {
		return func(c tele.Context) error {
			sender := c.Sender()
			if sender == nil || sender.IsBot {
				return next(c)
			}

			if err := profiles.Ensure(sender.ID); err != nil {
				// Registration is best effort; handlers retry on their own
				logger.Error("failed to register user in middleware",
					zap.Int64("user_id", sender.ID),
					zap.Error(err),
				)
			}

			return next(c)
		}
	}
}
