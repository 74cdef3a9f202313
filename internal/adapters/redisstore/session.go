package redisstore

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"tripdesk/internal/domain"
)

// SessionStore keeps the confirmedBooking record per session, TTL-bound so it
// survives page navigation but not much longer. Written once by checkout,
// read once by the confirmation screen.
type SessionStore struct {
	c   *redis.Client
	ttl time.Duration
}

func NewSessionStore(client *redis.Client, ttl time.Duration) *SessionStore {
	if ttl <= 0 {
		ttl = 30 * time.Minute
	}
	return &SessionStore{c: client, ttl: ttl}
}

func bookingKey(sessionID string) string {
	return fmt.Sprintf("session:%s:confirmedBooking", sessionID)
}

func (s *SessionStore) SaveBooking(ctx context.Context, sessionID string, b domain.ConfirmedBooking) error {
	raw, err := json.Marshal(b)
	if err != nil {
		return err
	}
	return s.c.Set(ctx, bookingKey(sessionID), raw, s.ttl).Err()
}

// LoadBooking returns ok=false when no record exists. An unparsable record is
// reported as an error so the caller can render the terminal not-found state.
func (s *SessionStore) LoadBooking(ctx context.Context, sessionID string) (domain.ConfirmedBooking, bool, error) {
	raw, err := s.c.Get(ctx, bookingKey(sessionID)).Bytes()
	if err == redis.Nil {
		return domain.ConfirmedBooking{}, false, nil
	}
	if err != nil {
		return domain.ConfirmedBooking{}, false, err
	}
	var b domain.ConfirmedBooking
	if err := json.Unmarshal(raw, &b); err != nil {
		return domain.ConfirmedBooking{}, false, fmt.Errorf("corrupt booking record: %w", err)
	}
	return b, true, nil
}

func (s *SessionStore) ClearBooking(ctx context.Context, sessionID string) error {
	return s.c.Del(ctx, bookingKey(sessionID)).Err()
}
