package storage

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"storefront/storefront-svc/internal/domain"

	"github.com/redis/go-redis/v9"
)

// RedisSessionStore keeps each client's signed-in user as one JSON value
// under Prefix:<session id>.
type RedisSessionStore struct {
	Client *redis.Client
	Prefix string
}

func NewRedisSessionStore(client *redis.Client, prefix string) *RedisSessionStore {
	return &RedisSessionStore{Client: client, Prefix: prefix}
}

func (s *RedisSessionStore) SessionKey(sessionID string) string {
	return s.Prefix + ":" + sessionID
}

func (s *RedisSessionStore) Load(ctx context.Context, sessionID string) (domain.UserSession, bool, error) {
	key := s.SessionKey(sessionID)
	raw, err := s.Client.Get(ctx, key).Bytes()
	if errors.Is(err, redis.Nil) {
		return domain.UserSession{}, false, nil
	}
	if err != nil {
		return domain.UserSession{}, false, err
	}

	var session domain.UserSession
	if err := json.Unmarshal(raw, &session); err != nil {
		return domain.UserSession{}, false, fmt.Errorf("decode session %q: %w", key, err)
	}
	return session, true, nil
}

func (s *RedisSessionStore) Save(ctx context.Context, sessionID string, session domain.UserSession) error {
	payload, err := json.Marshal(session)
	if err != nil {
		return err
	}
	return s.Client.Set(ctx, s.SessionKey(sessionID), payload, 0).Err()
}

func (s *RedisSessionStore) Clear(ctx context.Context, sessionID string) error {
	return s.Client.Del(ctx, s.SessionKey(sessionID)).Err()
}
