package handlers

import (
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"time"
)

// writeJSON takes a response status code and arbitrary data and writes a
// json response to the client
func writeJSON(w http.ResponseWriter, status int, data any) error {
	out, err := json.Marshal(data)
	if err != nil {
		return fmt.Errorf("failed to marshal JSON: %w", err)
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if _, err := w.Write(out); err != nil {
		return fmt.Errorf("failed to write to response: %w", err)
	}
	return nil
}

// reloadSnapshot refetches all collections after a mutation. A failed
// reload is logged once and the previous snapshot stays active; the
// mutation itself already succeeded.
func reloadSnapshot() {
	if err := snap.Reload(); err != nil {
		log.Printf("snapshot reload failed, serving previous snapshot: %v", err)
	}
}

func nowRFC3339() string {
	return time.Now().Format(time.RFC3339)
}
