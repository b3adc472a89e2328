package mailer

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/saiichandraa424-cpu/restaurant-reservations/internal/config"
)

func clientFor(t *testing.T, handler http.HandlerFunc) (*Client, *httptest.Server) {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	return New(&config.Config{
		MailBaseURL:   srv.URL,
		MailServiceID: "service_abc",
		MailPublicKey: "public_key_123",
	}), srv
}

func TestClientSend(t *testing.T) {
	var got sendRequest
	client, _ := clientFor(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/api/v1.0/email/send", r.URL.Path)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		w.WriteHeader(http.StatusOK)
	})

	err := client.Send(context.Background(), "template_xyz", map[string]string{
		"to_email":           "ada@example.com",
		"reservation_status": "Confirmed",
	})
	require.NoError(t, err)

	assert.Equal(t, "service_abc", got.ServiceID)
	assert.Equal(t, "template_xyz", got.TemplateID)
	assert.Equal(t, "public_key_123", got.UserID)
	assert.Equal(t, "ada@example.com", got.TemplateParams["to_email"])
	assert.Equal(t, "Confirmed", got.TemplateParams["reservation_status"])
}

func TestClientSend_NonSuccessStatus(t *testing.T) {
	client, _ := clientFor(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		_, _ = w.Write([]byte("The user_id parameter is required"))
	})

	err := client.Send(context.Background(), "template_xyz", nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "status=400")
	assert.Contains(t, err.Error(), "user_id parameter is required")
}

func TestClientSend_ConnectionError(t *testing.T) {
	client, srv := clientFor(t, func(w http.ResponseWriter, r *http.Request) {})
	srv.Close()

	err := client.Send(context.Background(), "template_xyz", nil)
	require.Error(t, err)
}
