package schedule

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/robfig/cron/v3"
	"go.uber.org/zap"

	"weather-dashboard/internal/domain/usecase/dashboard"
	"weather-dashboard/pkg/log"
	"weather-dashboard/pkg/msg"
)

// RefreshScheduler periodically regenerates every tracked reading
type RefreshScheduler struct {
	cron           *cron.Cron
	useCase        dashboard.UseCase
	cronExpression string
}

func NewRefreshScheduler(useCase dashboard.UseCase, cronExpression string) *RefreshScheduler {
	return &RefreshScheduler{cron: cron.New(), useCase: useCase, cronExpression: cronExpression}
}

// InitRefreshScheduleTasks starts the cron; an empty expression leaves the refresh disabled
func (s *RefreshScheduler) InitRefreshScheduleTasks() error {
	if s.cronExpression == "" {
		log.Info("Dashboard refresh scheduler disabled")
		return nil
	}

	if _, err := s.cron.AddFunc(s.cronExpression, s.ExecuteScheduledTask); err != nil {
		log.Error(msg.GetMessage("dashboard.refresh.invalid-cron", s.cronExpression, err))
		return fmt.Errorf("invalid refresh cron expression %q: %w", s.cronExpression, err)
	}

	s.cron.Start()
	log.Infof("Dashboard refresh scheduler started with cron expression: %s", s.cronExpression)
	return nil
}

// ExecuteScheduledTask refreshes the dashboard under a fresh request id
func (s *RefreshScheduler) ExecuteScheduledTask() {
	requestID := uuid.New().String()

	if err := s.useCase.RefreshAll(context.Background(), requestID); err != nil {
		log.Warn("Scheduled dashboard refresh skipped", zap.String("request_id", requestID), zap.Error(err))
	}
}

// Stop waits for a running refresh to finish
func (s *RefreshScheduler) Stop() {
	ctx := s.cron.Stop()
	<-ctx.Done()
}
