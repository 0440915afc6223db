// api.go
package main

import (
	"encoding/json"
	"log"
	"net/http"
	"time"
)

func (h *Handlers) apiTallyHandler(w http.ResponseWriter, r *http.Request) {
	report, err := h.process(w, r)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, APIResponse{Success: true, Data: tallyPayload{
		ID:       report.ID,
		FileName: report.FileName,
		Rows:     report.Rows,
		Columns:  report.Columns,
		Nets:     report.Nets,
		Counts:   report.Counts,
	}})
}

func (h *Handlers) validateFileHandler(w http.ResponseWriter, r *http.Request) {
	report, err := h.process(w, r)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, APIResponse{Success: true, Data: map[string]interface{}{
		"status":  "File valid",
		"rows":    report.Rows,
		"columns": report.Columns,
	}})
}

func healthHandler(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"status":    "healthy",
		"timestamp": time.Now().Format(time.RFC3339),
		"version":   version,
	})
}

func writeError(w http.ResponseWriter, err error) {
	writeJSON(w, statusFor(err), APIResponse{
		Success:   false,
		Error:     err.Error(),
		ErrorKind: errorKind(err),
	})
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Printf("encode response: %v", err)
	}
}
