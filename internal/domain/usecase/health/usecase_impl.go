package health

import (
	"context"
	"strconv"

	"weather-dashboard/internal/domain/gateway/storage"
	"weather-dashboard/internal/domain/model"
	"weather-dashboard/internal/domain/usecase/dashboard"
)

type healthUseCase struct {
	storageGateway   storage.StorageGateway
	dashboardUseCase dashboard.UseCase
}

func NewHealthUseCase(storageGateway storage.StorageGateway, dashboardUseCase dashboard.UseCase) UseCase {
	return &healthUseCase{
		storageGateway:   storageGateway,
		dashboardUseCase: dashboardUseCase,
	}
}

func (useCase *healthUseCase) CheckHealth(ctx context.Context) model.HealthResponse {
	storageHealth := useCase.storageGateway.Health(ctx)
	dashboardHealth := useCase.dashboardHealth()

	overallStatus := model.StatusUp
	if storageHealth.Status != model.StatusUp || dashboardHealth.Status != model.StatusUp {
		overallStatus = model.StatusDown
	}

	return model.HealthResponse{
		Status:    overallStatus,
		Storage:   storageHealth,
		Dashboard: dashboardHealth,
	}
}

// dashboardHealth is UP once the initial load finished
func (useCase *healthUseCase) dashboardHealth() model.ComponentHealthStatus {
	snapshot := useCase.dashboardUseCase.Snapshot()
	if !snapshot.Loaded {
		return model.ComponentHealthStatus{
			Status:  model.StatusDown,
			Details: map[string]string{"state": "loading"},
		}
	}

	return model.ComponentHealthStatus{
		Status: model.StatusUp,
		Details: map[string]string{
			"state":   "loaded",
			"tracked": strconv.Itoa(len(snapshot.Readings)),
			"unit":    string(snapshot.Unit),
		},
	}
}
