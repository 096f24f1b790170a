package httpadapter

import (
	"net/http"

	"admanager/internal/core/domain"
)

type modeBody struct {
	Mode domain.Mode `json:"mode"`
}

func (h *Handler) handleGetMode(w http.ResponseWriter, r *http.Request) {
	m, err := h.svc.Mode(r.Context())
	if err != nil {
		h.fail(w, r, err)
		return
	}
	h.writeJSON(w, http.StatusOK, modeBody{Mode: m})
}

func (h *Handler) handleSetMode(w http.ResponseWriter, r *http.Request) {
	var body modeBody
	if !h.decode(w, r, &body) {
		return
	}
	if err := h.svc.SetMode(r.Context(), body.Mode); err != nil {
		h.fail(w, r, err)
		return
	}
	h.writeJSON(w, http.StatusOK, body)
}

func (h *Handler) handleExport(w http.ResponseWriter, r *http.Request) {
	snap, err := h.svc.Export(r.Context())
	if err != nil {
		h.fail(w, r, err)
		return
	}
	h.writeJSON(w, http.StatusOK, snap)
}
