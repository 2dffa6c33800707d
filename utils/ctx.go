package utils

import (
	"context"

	"github.com/google/uuid"
	tele "gopkg.in/telebot.v4"
)

type ctxKey string

const rqIDKey ctxKey = "rqID"

// CreateCtxWithRqID reuses the request id stored in the telebot context by the logger
// middleware, or creates a new one.
func CreateCtxWithRqID(c tele.Context) context.Context {
	rqID, ok := c.Get(string(rqIDKey)).(string)
	if !ok || rqID == "" {
		rqID = uuid.NewString()
		c.Set(string(rqIDKey), rqID)
	}
	return ContextWithRqID(context.Background(), rqID)
}

func ContextWithRqID(ctx context.Context, rqID string) context.Context {
	return context.WithValue(ctx, rqIDKey, rqID)
}

func GetRequestIDFromCtx(ctx context.Context) string {
	rqID, _ := ctx.Value(rqIDKey).(string)
	return rqID
}
