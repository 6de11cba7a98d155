package ui

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/snplmntn/2-1n-exchange-gift-randomizer/app"
	"github.com/snplmntn/2-1n-exchange-gift-randomizer/domain/core"
	"github.com/snplmntn/2-1n-exchange-gift-randomizer/domain/exchange"
	"github.com/snplmntn/2-1n-exchange-gift-randomizer/domain/roster"
	"github.com/snplmntn/2-1n-exchange-gift-randomizer/ports"
)

var fixtureDrawnAt = core.NewTimestamp(time.Date(2025, time.December, 1, 12, 0, 0, 0, time.UTC))

func previewFixture(t *testing.T) *App {
	t.Helper()

	giver := roster.Participant{Name: "Lorem D. Ipsum", Email: "example1@example.com"}
	receiver := roster.Participant{Name: "Ipsum D. Lorem", Email: "example2@example.com"}

	a, err := NewApp(Config{}, Preview{
		DrawnAt: fixtureDrawnAt,
		Notifications: []app.Notification{
			{
				Assignment: exchange.Assignment{Giver: giver, Receiver: receiver},
				To:         ports.Recipient{Name: giver.Name, Email: giver.Email},
				Message: ports.Message{
					Subject: "Your Secret Santa Assignment!",
					Text:    "Hello Lorem D. Ipsum! You've been tasked to gift Ipsum D. Lorem.",
					HTML:    "<html><body><div class=\"golden-ticket-name\">Ipsum D. Lorem</div></body></html>",
				},
			},
		},
	})
	require.NoError(t, err)
	return a
}

func get(t *testing.T, a *App, path string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	rec := httptest.NewRecorder()
	a.Handler().ServeHTTP(rec, req)
	return rec
}

func TestIndexListsAssignments(t *testing.T) {
	rec := get(t, previewFixture(t), "/")

	require.Equal(t, http.StatusOK, rec.Code)
	body := rec.Body.String()
	assert.Contains(t, body, "Lorem D. Ipsum")
	assert.Contains(t, body, "Ipsum D. Lorem")
	assert.Contains(t, body, "example1@example.com")
	assert.Contains(t, body, "drawn at 2025-12-01T12:00:00Z")
	assert.Contains(t, body, `href="/messages/0/html"`)
	assert.Contains(t, body, `href="/messages/0/text"`)
}

func TestIndexWithoutAssignments(t *testing.T) {
	a, err := NewApp(Config{}, Preview{})
	require.NoError(t, err)

	rec := get(t, a, "/")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "No assignments to preview.")
}

func TestMessageHTMLServedVerbatim(t *testing.T) {
	rec := get(t, previewFixture(t), "/messages/0/html")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "text/html; charset=utf-8", rec.Header().Get("Content-Type"))
	assert.Contains(t, rec.Body.String(), `<div class="golden-ticket-name">Ipsum D. Lorem</div>`)
}

func TestMessageTextServedAsPlainText(t *testing.T) {
	rec := get(t, previewFixture(t), "/messages/0/text")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "text/plain; charset=utf-8", rec.Header().Get("Content-Type"))
	assert.Equal(t, "Hello Lorem D. Ipsum! You've been tasked to gift Ipsum D. Lorem.", rec.Body.String())
}

func TestMessageLookupRejectsBadIndexes(t *testing.T) {
	a := previewFixture(t)

	for _, path := range []string{"/messages/1/html", "/messages/-1/html", "/messages/abc/text"} {
		rec := get(t, a, path)
		assert.Equal(t, http.StatusNotFound, rec.Code, "path %s", path)
	}
}

func TestAssignmentsJSON(t *testing.T) {
	rec := get(t, previewFixture(t), "/api/assignments")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))

	var payload struct {
		DrawnAt     string `json:"drawn_at"`
		Count       int    `json:"count"`
		Assignments []struct {
			Giver struct {
				Name string `json:"name"`
			} `json:"giver"`
			Receiver struct {
				Name  string `json:"name"`
				Email string `json:"email"`
			} `json:"receiver"`
		} `json:"assignments"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &payload))

	assert.Equal(t, "2025-12-01T12:00:00Z", payload.DrawnAt)
	assert.Equal(t, 1, payload.Count)
	require.Len(t, payload.Assignments, 1)
	assert.Equal(t, "Lorem D. Ipsum", payload.Assignments[0].Giver.Name)
	assert.Equal(t, "Ipsum D. Lorem", payload.Assignments[0].Receiver.Name)
	assert.Equal(t, "example2@example.com", payload.Assignments[0].Receiver.Email)
}
