package draftstore

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"time"

	"homeservice-booking/internal/domain/booking"
	"homeservice-booking/internal/infra"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

const keyPrefix = "booking-storage:"

// RedisDraftStore keeps each session's draft as one JSON document.
type RedisDraftStore struct {
	client *redis.Client
	ttl    time.Duration
}

func NewRedisDraftStore(client *redis.Client, ttl time.Duration) *RedisDraftStore {
	if client == nil {
		panic("draftstore: redis client cannot be nil")
	}
	return &RedisDraftStore{client: client, ttl: ttl}
}

func Key(sessionID uuid.UUID) string {
	return keyPrefix + sessionID.String()
}

// Load returns found=false for a missing draft. An undecodable document is
// treated as missing so the session starts over instead of failing forever.
func (s *RedisDraftStore) Load(ctx context.Context, sessionID uuid.UUID) (booking.Draft, bool, error) {
	data, err := s.client.Get(ctx, Key(sessionID)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return booking.NewDraft(), false, nil
		}
		return booking.Draft{}, false, infra.WrapRepoErr("failed to load draft", err, infra.KindCacheFailure)
	}

	var draft booking.Draft
	if err := json.Unmarshal(data, &draft); err != nil {
		slog.WarnContext(ctx, "discarding undecodable draft", "session_id", sessionID, "error", err)
		return booking.NewDraft(), false, nil
	}
	if !draft.CurrentStep.Valid() {
		draft.CurrentStep = booking.FirstStep
	}
	return draft, true, nil
}

func (s *RedisDraftStore) Save(ctx context.Context, sessionID uuid.UUID, draft booking.Draft) error {
	data, err := json.Marshal(draft)
	if err != nil {
		return infra.WrapRepoErr("failed to encode draft", err, infra.KindCacheFailure)
	}
	if err := s.client.Set(ctx, Key(sessionID), data, s.ttl).Err(); err != nil {
		return infra.WrapRepoErr("failed to save draft", err, infra.KindCacheFailure)
	}
	return nil
}

func (s *RedisDraftStore) Delete(ctx context.Context, sessionID uuid.UUID) error {
	if err := s.client.Del(ctx, Key(sessionID)).Err(); err != nil {
		return infra.WrapRepoErr("failed to delete draft", err, infra.KindCacheFailure)
	}
	return nil
}
