package codestore

import (
	"context"
	"errors"
	"time"

	"homeservice-booking/internal/infra"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

// RedisCodeStore keeps hashed verification codes per phone and, per session,
// the set of phones that session has verified.
type RedisCodeStore struct {
	client *redis.Client
}

func NewRedisCodeStore(client *redis.Client) *RedisCodeStore {
	if client == nil {
		panic("codestore: redis client cannot be nil")
	}
	return &RedisCodeStore{client: client}
}

func codeKey(phone string) string {
	return "verification-code:" + phone
}

func verifiedKey(sessionID uuid.UUID) string {
	return "verified-phones:" + sessionID.String()
}

func (s *RedisCodeStore) SaveCode(ctx context.Context, phone, hashedCode string, ttl time.Duration) error {
	if err := s.client.Set(ctx, codeKey(phone), hashedCode, ttl).Err(); err != nil {
		return infra.WrapRepoErr("failed to save verification code", err, infra.KindCacheFailure)
	}
	return nil
}

func (s *RedisCodeStore) GetCode(ctx context.Context, phone string) (string, error) {
	hashed, err := s.client.Get(ctx, codeKey(phone)).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return "", infra.WrapRepoErr("verification code not found", err, infra.KindNotFound)
		}
		return "", infra.WrapRepoErr("failed to load verification code", err, infra.KindCacheFailure)
	}
	return hashed, nil
}

func (s *RedisCodeStore) DeleteCode(ctx context.Context, phone string) error {
	if err := s.client.Del(ctx, codeKey(phone)).Err(); err != nil {
		return infra.WrapRepoErr("failed to delete verification code", err, infra.KindCacheFailure)
	}
	return nil
}

func (s *RedisCodeStore) MarkVerified(ctx context.Context, sessionID uuid.UUID, phone string, ttl time.Duration) error {
	key := verifiedKey(sessionID)
	_, err := s.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.SAdd(ctx, key, phone)
		pipe.Expire(ctx, key, ttl)
		return nil
	})
	if err != nil {
		return infra.WrapRepoErr("failed to mark phone verified", err, infra.KindCacheFailure)
	}
	return nil
}

func (s *RedisCodeStore) IsVerified(ctx context.Context, sessionID uuid.UUID, phone string) (bool, error) {
	ok, err := s.client.SIsMember(ctx, verifiedKey(sessionID), phone).Result()
	if err != nil {
		return false, infra.WrapRepoErr("failed to check verified phone", err, infra.KindCacheFailure)
	}
	return ok, nil
}
