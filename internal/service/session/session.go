package session

import (
	"strings"
	"sync"
	"time"
)

// Session хранит bearer-токен оператора. Получение токена у провайдера
// идентификации выполняется снаружи.
type Session struct {
	now func() time.Time

	mu        sync.RWMutex
	token     string
	expiresAt time.Time
}

func New() *Session {
	return &Session{now: time.Now}
}

// Set устанавливает токен. Нулевой expiresAt означает бессрочный токен.
func (s *Session) Set(token string, expiresAt time.Time) error {
	token = strings.TrimSpace(token)
	if token == "" {
		return ErrEmptyToken
	}
	if !expiresAt.IsZero() && !expiresAt.After(s.now()) {
		return ErrTokenExpired
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.token = token
	s.expiresAt = expiresAt
	return nil
}

func (s *Session) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.token = ""
	s.expiresAt = time.Time{}
}

func (s *Session) AccessToken() (string, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.token == "" {
		return "", false
	}
	if !s.expiresAt.IsZero() && !s.expiresAt.After(s.now()) {
		return "", false
	}
	return s.token, true
}
