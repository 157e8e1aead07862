package session

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/lernia/console-backend/internal/config"
	"github.com/lernia/console-backend/internal/model"
)

// Hash fields of one persisted session. Sharing a single key guarantees the
// token and profile are cleared together.
const (
	fieldToken   = "token"
	fieldProfile = "profile"
)

// RedisStore keeps sessions in Redis, one hash per session with a TTL.
type RedisStore struct {
	rdb *redis.Client
}

// NewRedisStore creates a RedisStore.
func NewRedisStore(rdb *redis.Client) *RedisStore {
	return &RedisStore{rdb: rdb}
}

// Save writes the session hash and stamps its TTL.
func (s *RedisStore) Save(ctx context.Context, sess Session, ttl time.Duration) error {
	profile, err := json.Marshal(sess.Profile)
	if err != nil {
		return fmt.Errorf("encode profile: %w", err)
	}

	key := config.SessionKey.ConsoleSessionKey(sess.ID)
	pipe := s.rdb.TxPipeline()
	pipe.HSet(ctx, key, fieldToken, sess.Token, fieldProfile, string(profile))
	pipe.Expire(ctx, key, ttl)
	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("store session: %w", err)
	}
	return nil
}

// Load reads one session hash.
func (s *RedisStore) Load(ctx context.Context, id string) (Session, error) {
	key := config.SessionKey.ConsoleSessionKey(id)
	fields, err := s.rdb.HGetAll(ctx, key).Result()
	if err != nil {
		return Session{}, fmt.Errorf("load session: %w", err)
	}
	if len(fields) == 0 {
		return Session{}, ErrNotFound
	}

	sess := Session{ID: id, Token: fields[fieldToken]}
	if raw, ok := fields[fieldProfile]; ok && raw != "" {
		var profile model.AdminProfile
		if err := json.Unmarshal([]byte(raw), &profile); err != nil {
			return Session{}, fmt.Errorf("decode profile: %w", err)
		}
		sess.Profile = profile
	}
	return sess, nil
}

// Delete removes one session hash, clearing both persisted entries at once.
func (s *RedisStore) Delete(ctx context.Context, id string) error {
	return s.rdb.Del(ctx, config.SessionKey.ConsoleSessionKey(id)).Err()
}
