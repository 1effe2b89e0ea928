// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package workers

import (
	"context"
	"time"

	"github.com/MKhiriev/go-hr-portal/internal/logger"
)

// SessionJanitor periodically drops expired refresh sessions so the
// in-memory session store does not grow without bound.
type SessionJanitor struct {
	purger   SessionPurger
	interval time.Duration

	logger *logger.Logger
}

func NewSessionJanitor(purger SessionPurger, interval time.Duration, logger *logger.Logger) *SessionJanitor {
	return &SessionJanitor{
		purger:   purger,
		interval: interval,
		logger:   logger,
	}
}

// Run purges once per interval until ctx is cancelled. A non-positive
// interval disables the janitor.
func (j *SessionJanitor) Run(ctx context.Context) {
	if j.interval <= 0 {
		j.logger.Info().Msg("session janitor disabled")
		return
	}

	ticker := time.NewTicker(j.interval)
	defer ticker.Stop()

	j.logger.Info().Dur("interval", j.interval).Msg("session janitor started")
	for {
		select {
		case <-ctx.Done():
			j.logger.Info().Msg("session janitor stopped")
			return
		case <-ticker.C:
			j.purge(ctx)
		}
	}
}

func (j *SessionJanitor) purge(ctx context.Context) {
	n, err := j.purger.PurgeExpiredSessions(ctx)
	if err != nil {
		j.logger.Err(err).Msg("failed to purge expired sessions")
		return
	}
	if n > 0 {
		j.logger.Debug().Int("purged", n).Msg("expired sessions purged")
	}
}
