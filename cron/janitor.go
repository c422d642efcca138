package cron

import (
	"mentu/session"
	"mentu/utils"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"
)

// StartSessionJanitor runs a periodic sweep of expired entries in the
// in-memory session store. The Redis backend expires keys itself, so the
// janitor is only scheduled when the memory backend is active.
func StartSessionJanitor(store *session.MemoryStore) *cron.Cron {
	logger := utils.GetLogger()
	c := cron.New()
	if _, err := c.AddFunc("@every 5m", func() {
		if removed := store.Sweep(); removed > 0 {
			logger.Info("session janitor swept expired sessions", zap.Int("removed", removed))
		}
	}); err != nil {
		logger.Sugar().Fatalf("cron: failed to schedule session janitor: %v", err)
	}
	c.Start()
	return c
}
