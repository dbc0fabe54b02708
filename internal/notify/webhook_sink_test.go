package notify

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestWebhookSinkPostDelivers(t *testing.T) {
	var got webhookPayload
	var auth string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		auth = r.Header.Get("Authorization")
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	sink := NewWebhookSink(server.URL, "secret-token", server.Client())
	err := sink.Post(context.Background(), "user-1", "task-1", "Task Nearby", "Task: x is 10 meters away.")
	require.NoError(t, err)
	require.Equal(t, "Bearer secret-token", auth)
	require.Equal(t, webhookPayload{
		UserID: "user-1",
		Key:    "task-1",
		Title:  "Task Nearby",
		Body:   "Task: x is 10 meters away.",
	}, got)
}

func TestWebhookSinkPostMapsForbiddenToNoPermission(t *testing.T) {
	for _, status := range []int{http.StatusUnauthorized, http.StatusForbidden} {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(status)
		}))
		sink := NewWebhookSink(server.URL, "", server.Client())
		err := sink.Post(context.Background(), "user-1", "task-1", "t", "b")
		require.ErrorIs(t, err, ErrNoPermission)
		server.Close()
	}
}

func TestWebhookSinkPostFailsOnServerError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "nope", http.StatusInternalServerError)
	}))
	defer server.Close()

	sink := NewWebhookSink(server.URL, "", server.Client())
	err := sink.Post(context.Background(), "user-1", "task-1", "t", "b")
	require.Error(t, err)
	require.NotErrorIs(t, err, ErrNoPermission)
}
