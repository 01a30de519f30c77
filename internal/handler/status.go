package handler

import "net/http"

// status probes backend connectivity with the settings endpoint. A 401
// from the probe still counts as connected; it only means the endpoint
// wants auth, which is normal before login.
func (h *Handler) status(w http.ResponseWriter, r *http.Request) {
	if err := h.backend.Ping(r.Context()); err != nil {
		resp := errorResponse{Error: "Cannot reach the backend at " + h.backend.BaseURL()}
		writeJSON(w, http.StatusBadGateway, resp)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{
		"status": "connected",
		"url":    h.backend.BaseURL(),
	})
}
