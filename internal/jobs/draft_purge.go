package jobs

import (
	"fmt"

	"github.com/robfig/cron/v3"
)

// DraftPurger удаляет истекшие черновики
type DraftPurger interface {
	PurgeExpired() int
}

// DraftPurge периодически чистит хранилище черновиков в памяти
// Redis удаляет черновики по TTL сам, для него задача не запускается
type DraftPurge struct {
	cron     *cron.Cron
	schedule string
	purger   DraftPurger
	logger   Logger
}

// NewDraftPurge создает задачу очистки черновиков
func NewDraftPurge(schedule string, purger DraftPurger, logger Logger) *DraftPurge {
	return &DraftPurge{
		cron:     cron.New(),
		schedule: schedule,
		purger:   purger,
		logger:   logger,
	}
}

// Start регистрирует задачу и запускает планировщик
func (j *DraftPurge) Start() error {
	if _, err := j.cron.AddFunc(j.schedule, func() { j.Run() }); err != nil {
		return fmt.Errorf("jobs: invalid draft purge schedule %q: %w", j.schedule, err)
	}

	j.cron.Start()
	j.logger.Info("DraftPurge: scheduler started, schedule=%q", j.schedule)
	return nil
}

// Stop останавливает планировщик
func (j *DraftPurge) Stop() {
	<-j.cron.Stop().Done()
	j.logger.Info("DraftPurge: scheduler stopped")
}

// Run один проход очистки
func (j *DraftPurge) Run() int {
	n := j.purger.PurgeExpired()
	if n > 0 {
		j.logger.Info("DraftPurge: %d expired drafts removed", n)
	}
	return n
}
