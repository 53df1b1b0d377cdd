package mailqueue

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	deliverycontext "gatekeeper/internal/delivery/context"
	"gatekeeper/internal/domain/constants"
	"gatekeeper/internal/domain/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestLocalHTTPDispatcher_Enqueue(t *testing.T) {
	var received PubSubPushMessage
	var requestID string

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "application/json", r.Header.Get("Content-Type"))
		requestID = r.Header.Get(deliverycontext.HeaderXRequestID)
		require.NoError(t, json.NewDecoder(r.Body).Decode(&received))
		w.WriteHeader(http.StatusNoContent)
	}))
	defer server.Close()

	dispatcher := NewLocalHTTPDispatcher(server.URL, testLogger())

	ctx := deliverycontext.WithRequestID(context.Background(), "req-123")
	job := &service.EmailJob{
		Name:     constants.JobEmailVerification,
		Email:    "test@example.com",
		Username: "tester",
		Token:    "verify-token",
		Attempts: 3,
	}

	require.NoError(t, dispatcher.Enqueue(ctx, job))

	assert.Equal(t, "req-123", requestID)
	assert.Equal(t, constants.JobEmailVerification, received.Message.Attributes["job"])
	assert.NotEmpty(t, received.Message.MessageID)
	assert.NotEmpty(t, received.Message.PublishTime)

	payload, err := base64.StdEncoding.DecodeString(received.Message.Data)
	require.NoError(t, err)

	var decoded service.EmailJob
	require.NoError(t, json.Unmarshal(payload, &decoded))
	assert.Equal(t, *job, decoded)
}

func TestLocalHTTPDispatcher_EnqueueWorkerFailure(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()

	dispatcher := NewLocalHTTPDispatcher(server.URL, testLogger())

	err := dispatcher.Enqueue(context.Background(), &service.EmailJob{
		Name:  constants.JobEmailForgotPassword,
		Email: "test@example.com",
	})

	assert.ErrorContains(t, err, "non-success status: 500")
}

func TestLocalHTTPDispatcher_EnqueueUnreachableEndpoint(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	}))
	server.Close()

	dispatcher := NewLocalHTTPDispatcher(server.URL, testLogger())

	err := dispatcher.Enqueue(context.Background(), &service.EmailJob{
		Name:  constants.JobEmailVerification,
		Email: "test@example.com",
	})

	assert.Error(t, err)
}
