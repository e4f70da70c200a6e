package config

import (
	"context"
	"fmt"

	"kerjabantu-service/src/internal/delivery/http/middleware"
	"kerjabantu-service/src/internal/store"
	"kerjabantu-service/src/pkg/log"

	"github.com/robfig/cron/v3"
	"github.com/spf13/viper"
)

// NewScheduler registers the housekeeping jobs: idle session eviction and
// pruning of per-session rate limiters. The caller starts and stops it.
func NewScheduler(ctx context.Context, viper *viper.Viper, log log.Log, sessions *store.Manager, limiter *middleware.RateLimiter) (*cron.Cron, error) {
	scheduler := cron.New()
	idle := viper.GetDuration("session.idle_timeout")

	_, err := scheduler.AddFunc(viper.GetString("session.evict_schedule"), func() {
		evicted := sessions.EvictIdle(ctx, idle)
		pruned := 0
		if limiter != nil {
			pruned = limiter.Cleanup(idle)
		}
		if evicted > 0 || pruned > 0 {
			log.Info("scheduler", fmt.Sprintf("evicted %d sessions, pruned %d limiters", evicted, pruned), "EvictIdle", "")
		}
	})
	if err != nil {
		return nil, fmt.Errorf("cron.AddFunc: %w", err)
	}
	return scheduler, nil
}
