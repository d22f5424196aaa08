package telegram

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "speakyz-backend/internal/common/errors"
)

func newTestClient(handler http.HandlerFunc) (*Client, *httptest.Server) {
	srv := httptest.NewServer(handler)
	c := NewClient("test-token")
	c.baseURL = srv.URL
	return c, srv
}

func TestGetUpdatesDecodesResult(t *testing.T) {
	c, srv := newTestClient(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/bottest-token/getUpdates", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"ok":true,"result":[{"update_id":7,"message":{"message_id":1,"chat":{"id":42},"text":"/start","from":{"id":42,"username":"student"}}}]}`))
	})
	defer srv.Close()

	updates, err := c.GetUpdates(context.Background(), 0, 0)
	require.NoError(t, err)
	require.Len(t, updates, 1)
	assert.Equal(t, int64(7), updates[0].UpdateID)
	assert.Equal(t, "/start", updates[0].Message.Text)
}

func TestAPIErrorCarriesTelegramCode(t *testing.T) {
	c, srv := newTestClient(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"ok":false,"description":"Bad Request: chat not found","error_code":400}`))
	})
	defer srv.Close()

	err := c.SendMessage(context.Background(), SendMessageParams{ChatID: 1, Text: "hi"})
	require.Error(t, err)

	appErr, ok := apperrors.AsAppError(err)
	require.True(t, ok)
	assert.Equal(t, apperrors.ErrCodeTelegramAPI, appErr.Code)
	assert.Contains(t, appErr.Message, "chat not found")
}

func TestTransportErrorCarriesTelegramCode(t *testing.T) {
	c, srv := newTestClient(func(w http.ResponseWriter, r *http.Request) {})
	srv.Close() // соединение будет отклонено

	err := c.DeleteWebhook(context.Background(), true)
	require.Error(t, err)
	assert.Equal(t, apperrors.ErrCodeTelegramAPI, apperrors.CodeOf(err))
}
