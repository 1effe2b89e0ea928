package store

import (
	"context"
	"sync"
	"time"

	"github.com/MKhiriev/go-hr-portal/internal/logger"
	"github.com/MKhiriev/go-hr-portal/models"
)

type sessionRepository struct {
	mu       sync.Mutex
	sessions map[string]models.RefreshSession
	logger   *logger.Logger
}

func NewSessionRepository(logger *logger.Logger) SessionRepository {
	logger.Debug().Msg("creating session repository")
	return &sessionRepository{
		sessions: make(map[string]models.RefreshSession),
		logger:   logger,
	}
}

func (r *sessionRepository) SaveSession(ctx context.Context, session models.RefreshSession) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.sessions[session.Token] = session
	return nil
}

func (r *sessionRepository) TakeSession(ctx context.Context, token string) (models.RefreshSession, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	session, ok := r.sessions[token]
	if !ok {
		return models.RefreshSession{}, ErrSessionNotFound
	}
	delete(r.sessions, token)

	return session, nil
}

func (r *sessionRepository) DeleteSession(ctx context.Context, token string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	delete(r.sessions, token)
	return nil
}

func (r *sessionRepository) DeleteExpired(ctx context.Context, now time.Time) (int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	removed := 0
	for token, session := range r.sessions {
		if session.Expired(now) {
			delete(r.sessions, token)
			removed++
		}
	}

	return removed, nil
}
