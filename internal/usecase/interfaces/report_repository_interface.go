package interfaces

import (
	"context"

	"car_maintenance/internal/domain/entities"
)

// IReportRepository abstracts remote-store persistence for Report (append-only).

type IReportRepository interface {
	ListAll(ctx context.Context) ([]entities.Report, error)
	Create(ctx context.Context, r entities.Report) (entities.Report, error)
}
