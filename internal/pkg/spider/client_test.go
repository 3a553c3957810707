package spider

import (
	"Islet/internal/api/config"
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(baseURL, backupURL string) *Client {
	return NewClient(config.SpiderConfig{
		BaseURL:      baseURL,
		BackupURL:    backupURL,
		Token:        "test-token",
		TimeoutSec:   5,
		RetryDelayMs: 1,
	})
}

func envelopeHandler(code int, message string, data any) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(map[string]any{
			"code":    code,
			"message": message,
			"data":    data,
		})
	}
}

func TestCallSuccess(t *testing.T) {
	var gotAuth string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		envelopeHandler(200, "success", map[string]any{"user_id": "u1"})(w, r)
	}))
	defer srv.Close()

	client := newTestClient(srv.URL, "")
	data, err := client.Call(context.Background(), srv.URL+EndpointUserInfo, map[string]any{"user_id": "u1"})
	require.NoError(t, err)

	var payload map[string]any
	require.NoError(t, json.Unmarshal(data, &payload))
	assert.Equal(t, "u1", payload["user_id"])
	assert.Equal(t, "Bearer test-token", gotAuth)
}

func TestCallBusinessError(t *testing.T) {
	srv := httptest.NewServer(envelopeHandler(404, "not found", nil))
	defer srv.Close()

	client := newTestClient(srv.URL, "")
	_, err := client.Call(context.Background(), srv.URL+EndpointNoteDetail, nil)
	require.Error(t, err)

	var apiErr *Error
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, 404, apiErr.Code)
	assert.Equal(t, "接口不存在", apiErr.Message)
	assert.False(t, apiErr.Fatal())
}

func TestCallFatalCodes(t *testing.T) {
	for _, code := range []int{401, 403, 301} {
		srv := httptest.NewServer(envelopeHandler(code, "", nil))

		client := newTestClient(srv.URL, "")
		_, err := client.Call(context.Background(), srv.URL+EndpointUserInfo, nil)
		require.Error(t, err)

		var apiErr *Error
		require.ErrorAs(t, err, &apiErr)
		assert.True(t, apiErr.Fatal(), "code %d should be fatal", code)
		assert.NotEmpty(t, apiErr.Message)

		srv.Close()
	}
}

func TestCallMalformedBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("<html>gateway error</html>"))
	}))
	defer srv.Close()

	client := newTestClient(srv.URL, "")
	_, err := client.Call(context.Background(), srv.URL+EndpointUserNotes, nil)
	require.Error(t, err)

	var apiErr *Error
	assert.False(t, errors.As(err, &apiErr), "transport-level failure should not map to a business error")
}

func TestEndpoints(t *testing.T) {
	client := newTestClient("https://primary.example", "https://backup.example")
	urls := client.Endpoints(EndpointNoteComments)
	require.Len(t, urls, 2)
	assert.Equal(t, "https://primary.example"+EndpointNoteComments, urls[0])
	assert.Equal(t, "https://backup.example"+EndpointNoteComments, urls[1])

	single := newTestClient("https://primary.example", "")
	assert.Len(t, single.Endpoints(EndpointUserInfo), 1)
}
