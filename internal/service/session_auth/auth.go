package session_auth

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

var (
	ErrNoSession = errors.New("no active session")
	ErrInternal  = errors.New("internal error")
)

type SessionCache interface {
	Get(token string) (string, error)
	Refresh(token string, ttl time.Duration) error
}

// Service resolves bearer tokens into user ids. Tokens are issued elsewhere;
// here a token is valid exactly as long as its cache entry lives.
type Service struct {
	sessionCache SessionCache
	ttl          time.Duration
}

func New(
	sessionCache SessionCache,
	ttl *time.Duration,
) *Service {
	if ttl == nil {
		ttl = func() *time.Duration {
			defaultSessionTTL := 24 * time.Hour
			return &defaultSessionTTL
		}()
	}

	return &Service{
		sessionCache: sessionCache,
		ttl:          *ttl,
	}
}

func (s *Service) Resolve(token string) (uuid.UUID, error) {
	if token == "" {
		return uuid.Nil, ErrNoSession
	}

	v, err := s.sessionCache.Get(token)
	if err != nil {
		return uuid.Nil, errors.Join(ErrInternal, err)
	}
	if v == "" {
		return uuid.Nil, ErrNoSession
	}

	userID, err := uuid.Parse(v)
	if err != nil {
		return uuid.Nil, errors.Join(ErrInternal, err)
	}

	// Sliding expiry: activity keeps the session alive.
	_ = s.sessionCache.Refresh(token, s.ttl)

	return userID, nil
}
