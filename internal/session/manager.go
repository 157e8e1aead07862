package session

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/lernia/console-backend/internal/config"
	"github.com/lernia/console-backend/internal/model"
	"github.com/lernia/console-backend/internal/upstream"
)

// Manager errors.
var (
	ErrTokenInvalid = errors.New("invalid console token")
)

// Claims is the console-issued JWT payload. The JWT only references the
// session; the upstream token never leaves the store.
type Claims struct {
	jwt.RegisteredClaims
	AdminEmail string `json:"admin_email,omitempty"`
}

// Manager owns the console session lifecycle: login against the platform,
// token issuance, resolution on every request, and teardown (voluntary or
// forced by an upstream session-expiry signal).
type Manager struct {
	client *upstream.Client
	store  Store
	secret []byte
	ttl    time.Duration
	log    zerolog.Logger
}

// NewManager creates a Manager.
func NewManager(client *upstream.Client, store Store, cfg *config.Config, log zerolog.Logger) *Manager {
	return &Manager{
		client: client,
		store:  store,
		secret: []byte(cfg.SessionSecret),
		ttl:    cfg.SessionTTL,
		log:    log,
	}
}

// Login verifies credentials against the platform and, on success, persists
// a new session and issues its console token.
func (m *Manager) Login(ctx context.Context, email, password string) (string, model.AdminProfile, error) {
	upstreamToken, profile, err := m.client.Login(ctx, email, password)
	if err != nil {
		return "", model.AdminProfile{}, err
	}

	sess := Session{
		ID:      uuid.New().String(),
		Token:   upstreamToken,
		Profile: profile,
	}
	if err := m.store.Save(ctx, sess, m.ttl); err != nil {
		return "", model.AdminProfile{}, err
	}

	token, err := m.sign(sess)
	if err != nil {
		return "", model.AdminProfile{}, err
	}

	m.log.Info().Str("admin", profile.Email).Msg("admin logged in")
	return token, profile, nil
}

// Resolve validates a console token and loads its backing session. A valid
// token whose session is gone (logged out, lapsed, force-expired) resolves
// to ErrNotFound.
func (m *Manager) Resolve(ctx context.Context, tokenStr string) (Session, error) {
	token, err := jwt.ParseWithClaims(tokenStr, &Claims{}, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return m.secret, nil
	})
	if err != nil {
		return Session{}, fmt.Errorf("%w: %v", ErrTokenInvalid, err)
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid || claims.ID == "" {
		return Session{}, ErrTokenInvalid
	}

	return m.store.Load(ctx, claims.ID)
}

// Logout tears the session down. Idempotent.
func (m *Manager) Logout(ctx context.Context, sessionID string) error {
	return m.store.Delete(ctx, sessionID)
}

// Expire is the forced-logout path taken when the platform answers 401/403:
// both persisted entries vanish with the session, so the next request is
// blocked at the gate without reaching the platform.
func (m *Manager) Expire(ctx context.Context, sessionID string) {
	if err := m.store.Delete(ctx, sessionID); err != nil {
		m.log.Warn().Err(err).Str("session_id", sessionID).Msg("failed to expire session")
		return
	}
	m.log.Info().Str("session_id", sessionID).Msg("session expired by platform")
}

func (m *Manager) sign(sess Session) (string, error) {
	now := time.Now()
	claims := Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        sess.ID,
			Subject:   sess.Profile.ID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(m.ttl)),
		},
		AdminEmail: sess.Profile.Email,
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(m.secret)
	if err != nil {
		return "", fmt.Errorf("sign token: %w", err)
	}
	return signed, nil
}
