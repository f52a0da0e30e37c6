package jobs

import (
	"github.com/robfig/cron/v3"
	"github.com/sirupsen/logrus"
)

const DefaultCacheCleanupSchedule = "@every 15m"

// Purger drops expired cache entries and reports how many it removed. Len
// is the number of entries left.
type Purger interface {
	PurgeCache() int
	Len() int
}

// CacheJanitor evicts expired orders from the cache on a cron schedule.
type CacheJanitor struct {
	purger   Purger
	schedule string
	cron     *cron.Cron
	log      *logrus.Entry
}

func NewCacheJanitor(p Purger, schedule string) *CacheJanitor {
	if schedule == "" {
		schedule = DefaultCacheCleanupSchedule
	}
	return &CacheJanitor{
		purger:   p,
		schedule: schedule,
		cron:     cron.New(),
		log:      logrus.WithField("component", "cache_janitor"),
	}
}

func (j *CacheJanitor) Start() error {
	if _, err := j.cron.AddFunc(j.schedule, j.Run); err != nil {
		return err
	}
	j.cron.Start()
	j.log.WithField("schedule", j.schedule).Info("cache janitor started")
	return nil
}

// Run performs one purge pass.
func (j *CacheJanitor) Run() {
	if n := j.purger.PurgeCache(); n > 0 {
		j.log.WithFields(logrus.Fields{
			"removed":   n,
			"remaining": j.purger.Len(),
		}).Info("expired orders purged from cache")
	}
}

// Stop halts scheduling and waits for a running pass to finish.
func (j *CacheJanitor) Stop() {
	<-j.cron.Stop().Done()
	j.log.Info("cache janitor stopped")
}
