package health

import (
	"context"
	"testing"

	"weather-dashboard/internal/domain/entity"
	"weather-dashboard/internal/domain/gateway/storage"
	"weather-dashboard/internal/domain/model"
	"weather-dashboard/internal/domain/usecase/dashboard"
)

type stubDashboard struct {
	dashboard.UseCase
	snapshot model.DashboardSnapshot
}

func (s stubDashboard) Snapshot() model.DashboardSnapshot {
	return s.snapshot
}

type downStorage struct {
	storage.StorageGateway
}

func (downStorage) Health(context.Context) model.ComponentHealthStatus {
	return model.ComponentHealthStatus{Status: model.StatusDown, Details: map[string]string{"message": "connection refused"}}
}

func TestCheckHealth(t *testing.T) {
	loaded := model.DashboardSnapshot{
		Loaded:   true,
		Unit:     entity.Fahrenheit,
		Readings: make([]entity.WeatherReading, 3),
	}

	tests := []struct {
		name          string
		storage       storage.StorageGateway
		snapshot      model.DashboardSnapshot
		wantStatus    model.HealthStatus
		wantDashboard model.HealthStatus
	}{
		{name: "all up", storage: storage.NewMemoryStorageGateway(), snapshot: loaded, wantStatus: model.StatusUp, wantDashboard: model.StatusUp},
		{name: "still loading", storage: storage.NewMemoryStorageGateway(), snapshot: model.DashboardSnapshot{}, wantStatus: model.StatusDown, wantDashboard: model.StatusDown},
		{name: "storage down", storage: downStorage{}, snapshot: loaded, wantStatus: model.StatusDown, wantDashboard: model.StatusUp},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			useCase := NewHealthUseCase(tt.storage, stubDashboard{snapshot: tt.snapshot})

			response := useCase.CheckHealth(context.Background())

			if response.Status != tt.wantStatus || response.Dashboard.Status != tt.wantDashboard {
				t.Errorf("status = %s, dashboard = %s; want %s, %s",
					response.Status, response.Dashboard.Status, tt.wantStatus, tt.wantDashboard)
			}
		})
	}
}

func TestCheckHealth_dashboardDetails(t *testing.T) {
	snapshot := model.DashboardSnapshot{Loaded: true, Unit: entity.Celsius, Readings: make([]entity.WeatherReading, 2)}
	useCase := NewHealthUseCase(storage.NewMemoryStorageGateway(), stubDashboard{snapshot: snapshot})

	details := useCase.CheckHealth(context.Background()).Dashboard.Details

	if details["tracked"] != "2" || details["unit"] != "celsius" {
		t.Errorf("details = %v", details)
	}
}
