package session

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/redis/go-redis/v9"

	"book_catalog/internal/model"
	"book_catalog/utils"
)

const maxUpdateRetries = 5

type RedisSession struct {
	redis      *redis.Client
	expiration time.Duration
}

func NewRedisSession(redisClient *redis.Client, expiration time.Duration) *RedisSession {
	return &RedisSession{redis: redisClient, expiration: expiration}
}

func (r *RedisSession) createSessionKey(sessionID string) string {
	return fmt.Sprintf("session:%s", sessionID)
}

func (r *RedisSession) GetSession(ctx context.Context, sessionID string) (model.Session, error) {
	op := "RedisSession.GetSession"
	rqID := utils.GetRequestIDFromCtx(ctx)
	key := r.createSessionKey(sessionID)

	res, err := r.redis.Get(ctx, key).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			slog.Debug("session not found in redis", slog.String("rqID", rqID), slog.String("op", op), slog.String("key", key))
			return model.Session{}, ErrNotFound
		}

		slog.Error("failed on redis.Get", slog.String("rqID", rqID), slog.String("op", op), slog.String("err", err.Error()), slog.String("key", key))
		return model.Session{}, err
	}

	return r.unmarshal(ctx, op, res)
}

// UpdateSession applies fn to the stored session (the zero Session when none exists) and
// writes the result back. The read-modify-write runs under WATCH, so concurrent updates of one
// session are serialized and the last successful writer wins. An error from fn aborts the
// update and is returned as is.
func (r *RedisSession) UpdateSession(ctx context.Context, sessionID string, fn func(session *model.Session) error) error {
	op := "RedisSession.UpdateSession"
	rqID := utils.GetRequestIDFromCtx(ctx)
	key := r.createSessionKey(sessionID)

	txf := func(tx *redis.Tx) error {
		session := model.Session{}

		res, err := tx.Get(ctx, key).Result()
		switch {
		case errors.Is(err, redis.Nil):
		case err != nil:
			return err
		default:
			session, err = r.unmarshal(ctx, op, res)
			if err != nil {
				return err
			}
		}

		if err = fn(&session); err != nil {
			return err
		}

		sessionJson, err := r.marshal(ctx, op, session)
		if err != nil {
			return err
		}

		_, err = tx.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
			pipe.Set(ctx, key, sessionJson, r.expiration)
			return nil
		})
		return err
	}

	for i := 0; i < maxUpdateRetries; i++ {
		err := r.redis.Watch(ctx, txf, key)
		if err == nil {
			return nil
		}
		if errors.Is(err, redis.TxFailedErr) {
			slog.Debug("session changed concurrently, retrying", slog.String("rqID", rqID), slog.String("op", op), slog.Int("attempt", i+1))
			continue
		}
		return err
	}

	slog.Error("session update retries exhausted", slog.String("rqID", rqID), slog.String("op", op), slog.String("key", key))
	return fmt.Errorf("%s: retries exhausted - %w", op, redis.TxFailedErr)
}

func (r *RedisSession) DeleteSession(ctx context.Context, sessionID string) error {
	op := "RedisSession.DeleteSession"
	rqID := utils.GetRequestIDFromCtx(ctx)

	err := r.redis.Del(ctx, r.createSessionKey(sessionID)).Err()
	if err != nil {
		slog.Error("failed on redis.Del", slog.String("rqID", rqID), slog.String("op", op), slog.String("err", err.Error()))
		return err
	}
	return nil
}

func (r *RedisSession) marshal(ctx context.Context, op string, session model.Session) ([]byte, error) {
	sessionJson, err := json.Marshal(session)
	if err != nil {
		slog.Error("can't marshall session", slog.String("rqID", utils.GetRequestIDFromCtx(ctx)), slog.String("op", op), slog.String("err", err.Error()), slog.Any("session", session))
		return nil, errors.New("can't marshall session")
	}
	return sessionJson, nil
}

func (r *RedisSession) unmarshal(ctx context.Context, op string, res string) (model.Session, error) {
	session := model.Session{}

	err := json.Unmarshal([]byte(res), &session)
	if err != nil {
		slog.Error("can't unmarshall session", slog.String("rqID", utils.GetRequestIDFromCtx(ctx)), slog.String("op", op), slog.String("err", err.Error()), slog.String("resultFromRedis", res))
		return model.Session{}, errors.New("can't unmarshall session")
	}

	return session, nil
}
