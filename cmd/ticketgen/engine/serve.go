package engine

import (
	"encoding/json"
	"net/http"
	"strings"

	"laneboard/internal/tracker"
)

// Handler serves a generated snapshot at the tracker API shape so a
// local laneboard can be pointed straight at it with TRACKER_URL.
func Handler(tickets []tracker.TicketDTO, members []tracker.TeamMemberDTO) http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("/api/v1/tickets", func(w http.ResponseWriter, r *http.Request) {
		filtered := tickets
		if raw := r.URL.Query().Get("status"); raw != "" {
			wanted := make(map[string]bool)
			for _, s := range strings.Split(raw, ",") {
				wanted[strings.TrimSpace(s)] = true
			}
			filtered = nil
			for _, t := range tickets {
				if wanted[t.Status] {
					filtered = append(filtered, t)
				}
			}
		}
		writeResponse(w, tracker.TicketListResponse{Total: len(filtered), Tickets: filtered})
	})

	mux.HandleFunc("/api/v1/team-members", func(w http.ResponseWriter, r *http.Request) {
		writeResponse(w, tracker.TeamMemberListResponse{TeamMembers: members})
	})

	return mux
}

func writeResponse(w http.ResponseWriter, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(v)
}
