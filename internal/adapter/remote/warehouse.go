package remote

import (
	"context"
	"time"

	"admanager/internal/config/configs"
	"admanager/internal/core/domain"
	"admanager/internal/core/port"
)

// DefaultRegion is reported when BIGQUERY_REGION is not set.
const DefaultRegion = "asia-northeast1"

// Warehouse checks the warehouse settings. No connection is opened; a
// configured warehouse always reports a mock success.
type Warehouse struct {
	cfg configs.BigQuery
	now func() time.Time
}

func NewWarehouse(cfg configs.BigQuery) *Warehouse {
	return &Warehouse{cfg: cfg, now: time.Now}
}

// Test returns domain.ErrWarehouseNotConfigured when the project or dataset
// id is missing. The status is filled in either way.
func (w *Warehouse) Test(_ context.Context) (*port.WarehouseStatus, error) {
	st := &port.WarehouseStatus{
		ProjectIDSet: w.cfg.ProjectID != "",
		DatasetIDSet: w.cfg.DatasetID != "",
		Region:       w.cfg.Region,
		Timestamp:    w.now().UTC(),
	}
	if st.Region == "" {
		st.Region = DefaultRegion
	}
	if !st.ProjectIDSet || !st.DatasetIDSet {
		st.Message = "warehouse environment variables are not set"
		return st, domain.ErrWarehouseNotConfigured
	}
	st.Success = true
	st.Message = "connection test succeeded (mock)"
	st.ProjectID = w.cfg.ProjectID
	st.DatasetID = w.cfg.DatasetID
	return st, nil
}
