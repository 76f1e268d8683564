package openai_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bloom/internal/config"
	"bloom/internal/domain"
	"bloom/internal/gateway"
	"bloom/internal/gateway/openai"
)

func newTestClient(serverURL, apiKey string) *openai.Client {
	cfg := &config.GatewayProviderConfig{
		Provider:     "openai",
		APIKey:       apiKey,
		DefaultModel: "gpt-4o",
		TimeoutSecs:  30,
	}
	return openai.NewClientWithEndpoint(cfg, serverURL)
}

func TestOpenAIClient_Generate_Success(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "Bearer test-key", r.Header.Get("Authorization"))

		var reqBody map[string]interface{}
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&reqBody))
		assert.Equal(t, "gpt-4o", reqBody["model"])
		messages := reqBody["messages"].([]interface{})
		require.Len(t, messages, 1)
		assert.Equal(t, "what is a budget?", messages[0].(map[string]interface{})["content"])

		_, _ = w.Write([]byte(`{"choices":[{"message":{"content":"A plan."},"finish_reason":"stop"}]}`))
	}))
	defer server.Close()

	reply, err := newTestClient(server.URL, "test-key").Generate(context.Background(), "what is a budget?")

	require.NoError(t, err)
	assert.Equal(t, "A plan.", reply)
}

func TestOpenAIClient_Generate_MissingKey(t *testing.T) {
	t.Setenv("OPENAI_API_KEY", "")

	_, err := newTestClient("http://127.0.0.1:0", "").Generate(context.Background(), "x")

	assert.ErrorIs(t, err, domain.ErrConfigurationMissing)
}

func TestOpenAIClient_Generate_RateLimited(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
	}))
	defer server.Close()

	_, err := newTestClient(server.URL, "k").Generate(context.Background(), "x")

	var rlErr *gateway.RateLimitError
	require.True(t, errors.As(err, &rlErr))
	assert.Equal(t, "openai", rlErr.Provider)
}

func TestOpenAIClient_Generate_NoChoices(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"choices":[]}`))
	}))
	defer server.Close()

	_, err := newTestClient(server.URL, "k").Generate(context.Background(), "x")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "no choices")
}
