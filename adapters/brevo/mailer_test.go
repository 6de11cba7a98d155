package brevo

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/snplmntn/2-1n-exchange-gift-randomizer/internal/errors"
	"github.com/snplmntn/2-1n-exchange-gift-randomizer/ports"
)

func TestSendPostsSmtpEmail(t *testing.T) {
	var got sendSmtpEmail
	var gotPath, gotKey string

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotKey = r.Header.Get("api-key")
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		w.WriteHeader(http.StatusCreated)
		w.Write([]byte(`{"messageId":"<202612.1@smtp-relay>"}`))
	}))
	defer server.Close()

	mailer := NewMailer("xkeysib-test", "santa@club.test", "BSCS 2-1N Gift Exchange", WithBaseURL(server.URL))

	err := mailer.Send(context.Background(), ports.Recipient{Name: "Lorem D. Ipsum", Email: "lorem@example.com"}, ports.Message{
		Subject: "Your Secret Santa Assignment!",
		Text:    "Hello Lorem!",
		HTML:    "<p>Hello Lorem!</p>",
	})
	require.NoError(t, err)

	assert.Equal(t, "/smtp/email", gotPath)
	assert.Equal(t, "xkeysib-test", gotKey)
	assert.Equal(t, "santa@club.test", got.Sender.Email)
	assert.Equal(t, "BSCS 2-1N Gift Exchange", got.Sender.Name)
	require.Len(t, got.To, 1)
	assert.Equal(t, "lorem@example.com", got.To[0].Email)
	assert.Equal(t, "Your Secret Santa Assignment!", got.Subject)
	assert.Equal(t, "Hello Lorem!", got.TextContent)
	assert.Equal(t, "<p>Hello Lorem!</p>", got.HTMLContent)
}

func TestSendSurfacesAPIErrors(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		w.Write([]byte(`{"code":"unauthorized","message":"Key not found"}`))
	}))
	defer server.Close()

	mailer := NewMailer("bad-key", "santa@club.test", "Santa", WithBaseURL(server.URL))

	err := mailer.Send(context.Background(), ports.Recipient{Email: "lorem@example.com"}, ports.Message{Subject: "s", Text: "t"})
	require.Error(t, err)
	assert.Equal(t, errors.CodeDeliveryFailed, errors.GetCode(err))
	assert.Contains(t, err.Error(), "status 401")
	assert.Contains(t, err.Error(), "Key not found")
}

func TestSendHonorsContextCancellation(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		<-r.Context().Done()
	}))
	defer server.Close()

	mailer := NewMailer("key", "santa@club.test", "Santa", WithBaseURL(server.URL))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := mailer.Send(ctx, ports.Recipient{Email: "lorem@example.com"}, ports.Message{Subject: "s", Text: "t"})
	require.Error(t, err)
}
