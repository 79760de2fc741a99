package scheduler

import (
	"time"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"

	"github.com/vfasacco/saccoledger/internal/jobs"
)

// Scheduler wires the maintenance jobs into a cron timetable.
type Scheduler struct {
	cron   *cron.Cron
	runner *jobs.Runner
}

func New(runner *jobs.Runner, sweepSchedule string) (*Scheduler, error) {
	c := cron.New(cron.WithLocation(time.UTC))

	s := &Scheduler{
		cron:   c,
		runner: runner,
	}

	if _, err := c.AddFunc(sweepSchedule, runner.SweepLoans); err != nil {
		return nil, err
	}
	return s, nil
}

func (s *Scheduler) Start() {
	s.cron.Start()
	zap.L().Info("scheduler started", zap.Int("jobs", len(s.cron.Entries())))
}

// Stop waits for any running job to finish before returning.
func (s *Scheduler) Stop() {
	ctx := s.cron.Stop()
	<-ctx.Done()
	zap.L().Info("scheduler stopped")
}
