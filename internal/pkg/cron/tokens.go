package cron

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/distrohub/distro-backend-go/internal/repository/postgresql"
)

type TokenJobs struct {
	jwtRepo postgresql.JWTRepository
}

func NewTokenJobs(jwtRepo postgresql.JWTRepository) *TokenJobs {
	return &TokenJobs{jwtRepo: jwtRepo}
}

func (j *TokenJobs) RegisterJobs(scheduler *Scheduler) {
	scheduler.AddJob("purge_expired_refresh_tokens", 6*time.Hour, j.PurgeExpiredRefreshTokens)
}

// PurgeExpiredRefreshTokens removes refresh tokens whose expiry has passed.
// Revoked-but-unexpired tokens stay so revocation checks keep working.
func (j *TokenJobs) PurgeExpiredRefreshTokens(ctx context.Context) error {
	deleted, err := j.jwtRepo.DeleteExpired(ctx)
	if err != nil {
		return fmt.Errorf("failed to purge expired refresh tokens: %w", err)
	}
	if deleted > 0 {
		slog.Info("Cron: purged expired refresh tokens", "count", deleted)
	}
	return nil
}
