package schedule

import (
	"context"
	"sync"
	"testing"
	"time"

	"weather-dashboard/internal/domain/usecase/dashboard"
)

type countingDashboard struct {
	dashboard.UseCase
	mu         sync.Mutex
	requestIDs []string
}

func (d *countingDashboard) RefreshAll(_ context.Context, requestID string) error {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.requestIDs = append(d.requestIDs, requestID)
	return nil
}

func TestRefreshScheduler_executeUsesFreshRequestIDs(t *testing.T) {
	useCase := &countingDashboard{}
	scheduler := NewRefreshScheduler(useCase, "")

	scheduler.ExecuteScheduledTask()
	scheduler.ExecuteScheduledTask()

	if len(useCase.requestIDs) != 2 || useCase.requestIDs[0] == "" || useCase.requestIDs[0] == useCase.requestIDs[1] {
		t.Errorf("request ids = %v; want two distinct ids", useCase.requestIDs)
	}
}

func TestRefreshScheduler_init(t *testing.T) {
	tests := []struct {
		name    string
		cron    string
		wantErr bool
	}{
		{name: "disabled", cron: ""},
		{name: "every five minutes", cron: "*/5 * * * *"},
		{name: "invalid", cron: "every now and then", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			scheduler := NewRefreshScheduler(&countingDashboard{}, tt.cron)
			err := scheduler.InitRefreshScheduleTasks()
			defer scheduler.Stop()

			if (err != nil) != tt.wantErr {
				t.Errorf("InitRefreshScheduleTasks() error = %v; wantErr %v", err, tt.wantErr)
			}
		})
	}
}

type recordingPruner struct {
	mu      sync.Mutex
	cutoffs []time.Time
}

func (p *recordingPruner) Prune(cutoff time.Time) int {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.cutoffs = append(p.cutoffs, cutoff)
	return 0
}

func (p *recordingPruner) calls() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return len(p.cutoffs)
}

func TestNotificationScheduler_cutoff(t *testing.T) {
	pruner := &recordingPruner{}
	scheduler, err := NewNotificationScheduler(pruner, 30*time.Second, time.Second)
	if err != nil {
		t.Fatalf("NewNotificationScheduler() error = %v", err)
	}
	now := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	scheduler.now = func() time.Time { return now }

	scheduler.ExecuteScheduledTask()

	if len(pruner.cutoffs) != 1 || !pruner.cutoffs[0].Equal(now.Add(-30*time.Second)) {
		t.Errorf("cutoffs = %v; want %v", pruner.cutoffs, now.Add(-30*time.Second))
	}
}

func TestNotificationScheduler_runsPeriodically(t *testing.T) {
	pruner := &recordingPruner{}
	scheduler, err := NewNotificationScheduler(pruner, time.Second, 20*time.Millisecond)
	if err != nil {
		t.Fatalf("NewNotificationScheduler() error = %v", err)
	}
	if err := scheduler.InitNotificationScheduleTasks(); err != nil {
		t.Fatalf("InitNotificationScheduleTasks() error = %v", err)
	}
	defer scheduler.Stop()

	deadline := time.Now().Add(2 * time.Second)
	for pruner.calls() < 2 {
		if time.Now().After(deadline) {
			t.Fatalf("prune ran %d times; want at least 2", pruner.calls())
		}
		time.Sleep(10 * time.Millisecond)
	}
}
