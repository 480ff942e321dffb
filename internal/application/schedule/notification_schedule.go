package schedule

import (
	"fmt"
	"time"

	"github.com/go-co-op/gocron/v2"

	"weather-dashboard/pkg/log"
)

// Pruner drops notifications older than a cutoff
type Pruner interface {
	Prune(cutoff time.Time) int
}

// NotificationScheduler expires feed notifications once they outlive their time to live
type NotificationScheduler struct {
	scheduler gocron.Scheduler
	pruner    Pruner
	ttl       time.Duration
	interval  time.Duration
	now       func() time.Time
}

func NewNotificationScheduler(pruner Pruner, ttl time.Duration, interval time.Duration) (*NotificationScheduler, error) {
	scheduler, err := gocron.NewScheduler()
	if err != nil {
		return nil, fmt.Errorf("failed to create notification scheduler: %w", err)
	}

	return &NotificationScheduler{
		scheduler: scheduler,
		pruner:    pruner,
		ttl:       ttl,
		interval:  interval,
		now:       time.Now,
	}, nil
}

// InitNotificationScheduleTasks registers the prune job; a non-positive ttl keeps notifications forever
func (s *NotificationScheduler) InitNotificationScheduleTasks() error {
	if s.ttl <= 0 || s.interval <= 0 {
		log.Info("Notification expiry disabled")
		return nil
	}

	_, err := s.scheduler.NewJob(
		gocron.DurationJob(s.interval),
		gocron.NewTask(s.ExecuteScheduledTask),
		gocron.WithSingletonMode(gocron.LimitModeReschedule),
	)
	if err != nil {
		return fmt.Errorf("failed to schedule notification expiry: %w", err)
	}

	s.scheduler.Start()
	log.Infof("Notification expiry started, ttl %s every %s", s.ttl, s.interval)
	return nil
}

func (s *NotificationScheduler) ExecuteScheduledTask() {
	if dropped := s.pruner.Prune(s.now().Add(-s.ttl)); dropped > 0 {
		log.Debugf("Expired %d notifications", dropped)
	}
}

func (s *NotificationScheduler) Stop() error {
	return s.scheduler.Shutdown()
}
