package httpadapter

import (
	"errors"
	"log/slog"
	"net/http"

	"admanager/internal/core/domain"
)

// handleTestWarehouse reports whether the warehouse settings are present.
// A missing project or dataset id answers 500 with the status body, like
// any other failed connection test.
func (h *Handler) handleTestWarehouse(w http.ResponseWriter, r *http.Request) {
	st, err := h.svc.TestWarehouse(r.Context())
	switch {
	case err == nil:
		h.writeJSON(w, http.StatusOK, st)
	case errors.Is(err, domain.ErrWarehouseNotConfigured) && st != nil:
		h.logger.WarnContext(r.Context(), "warehouse not configured",
			slog.Bool("project_id_set", st.ProjectIDSet), slog.Bool("dataset_id_set", st.DatasetIDSet))
		h.writeJSON(w, http.StatusInternalServerError, st)
	default:
		h.fail(w, r, err)
	}
}
