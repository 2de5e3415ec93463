package scheduler

import (
	"context"
	"fmt"
	"log"

	"github.com/robfig/cron/v3"

	"TrendCast/internal/app"
)

// Scheduler runs the daily pipeline on a cron schedule.
type Scheduler struct {
	Cron *cron.Cron
	App  *app.App
	Ctx  context.Context
}

// NewScheduler creates a new Scheduler.
func NewScheduler(ctx context.Context, a *app.App) *Scheduler {
	return &Scheduler{
		Cron: cron.New(cron.WithSeconds()),
		App:  a,
		Ctx:  ctx,
	}
}

// Register adds the daily fetch-and-predict task.
func (s *Scheduler) Register(dailyCron string) error {
	if _, err := s.Cron.AddFunc(dailyCron, s.dailyTask); err != nil {
		return fmt.Errorf("register daily task: %w", err)
	}
	return nil
}

// Start starts the cron scheduler.
func (s *Scheduler) Start() {
	s.Cron.Start()
	log.Println("[INFO] scheduler started")
}

// Stop stops the cron scheduler gracefully.
func (s *Scheduler) Stop() {
	s.Cron.Stop()
	log.Println("[INFO] scheduler stopped")
}

// RunNow executes the daily task immediately (manual trigger / RUN_ON_START).
func (s *Scheduler) RunNow() {
	s.dailyTask()
}

func (s *Scheduler) dailyTask() {
	log.Println("[INFO] running daily fetch-and-predict task")
	if err := s.App.RunOnce(s.Ctx); err != nil {
		log.Printf("[ERROR] daily task: %v", err)
	}
}
