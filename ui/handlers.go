package ui

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/snplmntn/2-1n-exchange-gift-randomizer/app"
	"github.com/snplmntn/2-1n-exchange-gift-randomizer/domain/exchange"
)

// assignmentRow is one line of the preview index.
type assignmentRow struct {
	Index    int
	Giver    string
	Receiver string
	Email    string
	Subject  string
}

// handleIndex lists every assignment with links to its rendered views.
func (a *App) handleIndex(w http.ResponseWriter, r *http.Request) {
	rows := make([]assignmentRow, 0, len(a.preview.Notifications))
	for i, n := range a.preview.Notifications {
		rows = append(rows, assignmentRow{
			Index:    i,
			Giver:    n.Assignment.Giver.Name,
			Receiver: n.Assignment.Receiver.Name,
			Email:    n.To.Email,
			Subject:  n.Message.Subject,
		})
	}

	a.renderTemplate(w, "index.html", map[string]interface{}{
		"Count":   len(rows),
		"DrawnAt": a.preview.DrawnAt,
		"Rows":    rows,
	})
}

// handleMessageHTML serves one message body exactly as it would be mailed.
func (a *App) handleMessageHTML(w http.ResponseWriter, r *http.Request) {
	n, ok := a.messageAt(r)
	if !ok {
		http.NotFound(w, r)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	_, _ = w.Write([]byte(n.Message.HTML))
}

// handleMessageText serves the plain-text part of one message.
func (a *App) handleMessageText(w http.ResponseWriter, r *http.Request) {
	n, ok := a.messageAt(r)
	if !ok {
		http.NotFound(w, r)
		return
	}
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	_, _ = w.Write([]byte(n.Message.Text))
}

// handleAssignmentsJSON exposes the drawn pairing as JSON, for scripted
// checks against the preview.
func (a *App) handleAssignmentsJSON(w http.ResponseWriter, r *http.Request) {
	assignments := make([]exchange.Assignment, 0, len(a.preview.Notifications))
	for _, n := range a.preview.Notifications {
		assignments = append(assignments, n.Assignment)
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]interface{}{
		"drawn_at":    a.preview.DrawnAt,
		"count":       len(assignments),
		"assignments": assignments,
	})
}

// messageAt resolves the {idx} URL parameter to a notification.
func (a *App) messageAt(r *http.Request) (app.Notification, bool) {
	idx, err := strconv.Atoi(chi.URLParam(r, "idx"))
	if err != nil || idx < 0 || idx >= len(a.preview.Notifications) {
		return app.Notification{}, false
	}
	return a.preview.Notifications[idx], true
}
