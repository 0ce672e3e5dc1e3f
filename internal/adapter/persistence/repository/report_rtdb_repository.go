package repository

import (
	"context"
	"encoding/json"
	"log"
	"time"

	"car_maintenance/internal/domain/entities"
	"car_maintenance/internal/usecase/interfaces"
)

const reportCollection = "report"

type reportItem struct {
	Email     string `json:"email"`
	Type      string `json:"type"`
	OutputURL string `json:"output_url"`
	Timestamp string `json:"timestamp"`
}

// ReportStoreRepository persists scan reports in the remote JSON store (append-only).

type ReportStoreRepository struct {
	store interfaces.IRemoteStore
}

var _ interfaces.IReportRepository = (*ReportStoreRepository)(nil)

func NewReportStoreRepository(store interfaces.IRemoteStore) *ReportStoreRepository {
	return &ReportStoreRepository{store: store}
}

func (r *ReportStoreRepository) ListAll(ctx context.Context) ([]entities.Report, error) {
	raw, err := r.store.GetAll(ctx, reportCollection)
	if err != nil {
		return nil, err
	}
	reports := make([]entities.Report, 0, len(raw))
	for key, rec := range raw {
		var it reportItem
		if err := json.Unmarshal(rec, &it); err != nil {
			log.Printf("[report][repository] skipping malformed record key=%s err=%v", key, err)
			continue
		}
		ts, _ := time.Parse(time.RFC3339Nano, it.Timestamp)
		reports = append(reports, entities.Report{
			RecordKey: key,
			Email:     it.Email,
			Type:      entities.MediaKind(it.Type),
			OutputURL: it.OutputURL,
			Timestamp: ts,
		})
	}
	return reports, nil
}

func (r *ReportStoreRepository) Create(ctx context.Context, rep entities.Report) (entities.Report, error) {
	key, err := r.store.Post(ctx, reportCollection, reportItem{
		Email:     rep.Email,
		Type:      string(rep.Type),
		OutputURL: rep.OutputURL,
		Timestamp: rep.Timestamp.UTC().Format(time.RFC3339Nano),
	})
	if err != nil {
		return entities.Report{}, err
	}
	rep.RecordKey = key
	return rep, nil
}
