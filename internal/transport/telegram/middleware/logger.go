package middleware

import (
	"log/slog"
	"time"

	"github.com/google/uuid"
	tele "gopkg.in/telebot.v4"
)

// Logger tags every update with a request id and logs how it was handled.
func Logger() tele.MiddlewareFunc {
	return func(next tele.HandlerFunc) tele.HandlerFunc {
		return func(c tele.Context) error {
			rqID := uuid.NewString()
			c.Set("rqID", rqID)
			start := time.Now()

			var chatID int64
			if c.Chat() != nil {
				chatID = c.Chat().ID
			}

			err := next(c)

			attrs := []any{
				slog.String("rqID", rqID),
				slog.Int("updateID", c.Update().ID),
				slog.Int64("chatID", chatID),
				slog.Duration("took", time.Since(start)),
			}
			if c.Callback() != nil {
				attrs = append(attrs, slog.String("callback", c.Callback().Data))
			}

			if err != nil {
				slog.Error("tg.update failed", append(attrs, slog.String("err", err.Error()))...)
				return err
			}

			slog.Info("tg.update", attrs...)
			return nil
		}
	}
}
