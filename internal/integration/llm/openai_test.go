package llm

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"

	"github.com/futig/edututor/internal/config"
	"github.com/futig/edututor/internal/entity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

const completionBody = `{
	"id": "chatcmpl-1",
	"object": "chat.completion",
	"created": 1700000000,
	"model": "ibm-granite/granite-3.3-2b-instruct",
	"choices": [{
		"index": 0,
		"finish_reason": "stop",
		"message": {"role": "assistant", "content": "Gravity pulls things together."}
	}],
	"usage": {"prompt_tokens": 12, "completion_tokens": 5, "total_tokens": 17}
}`

func newOpenAITestServer(t *testing.T, calls *atomic.Int32, status int) *httptest.Server {
	t.Helper()

	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		w.Header().Set("Content-Type", "application/json")

		switch {
		case strings.HasSuffix(r.URL.Path, "/chat/completions"):
			var body map[string]any
			require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
			assert.Equal(t, "ibm-granite/granite-3.3-2b-instruct", body["model"])
			assert.EqualValues(t, 512, body["max_tokens"])

			w.WriteHeader(status)
			if status == http.StatusOK {
				w.Write([]byte(completionBody))
			} else {
				w.Write([]byte(`{"error":{"message":"overloaded","type":"server_error"}}`))
			}
		case strings.Contains(r.URL.Path, "/models/"):
			w.Write([]byte(`{"id":"ibm-granite/granite-3.3-2b-instruct","object":"model","created":1,"owned_by":"vllm"}`))
		default:
			w.WriteHeader(http.StatusNotFound)
		}
	}))
}

func TestOpenAIConnector_Complete(t *testing.T) {
	var calls atomic.Int32
	srv := newOpenAITestServer(t, &calls, http.StatusOK)
	defer srv.Close()

	conn := NewOpenAIConnector(config.LLMConfig{BaseURL: srv.URL + "/v1/", APIKey: "test"}, zap.NewNop())

	out, err := conn.Complete(context.Background(), &entity.CompletionRequest{
		Model:        "ibm-granite/granite-3.3-2b-instruct",
		Prompt:       "Explain 'Gravity' simply for a 15-year-old with real examples.",
		MaxNewTokens: 512,
	})

	require.NoError(t, err)
	assert.Equal(t, "Gravity pulls things together.", out)
	assert.Equal(t, int32(1), calls.Load())
}

func TestOpenAIConnector_CompleteFailsWithoutRetry(t *testing.T) {
	var calls atomic.Int32
	srv := newOpenAITestServer(t, &calls, http.StatusServiceUnavailable)
	defer srv.Close()

	conn := NewOpenAIConnector(config.LLMConfig{BaseURL: srv.URL + "/v1/", APIKey: "test"}, zap.NewNop())

	_, err := conn.Complete(context.Background(), &entity.CompletionRequest{
		Model:        "ibm-granite/granite-3.3-2b-instruct",
		Prompt:       "prompt",
		MaxNewTokens: 512,
	})

	require.Error(t, err)
	assert.Equal(t, int32(1), calls.Load())
}

func TestOpenAIConnector_Probe(t *testing.T) {
	var calls atomic.Int32
	srv := newOpenAITestServer(t, &calls, http.StatusOK)
	defer srv.Close()

	conn := NewOpenAIConnector(config.LLMConfig{BaseURL: srv.URL + "/v1/", APIKey: "test"}, zap.NewNop())

	assert.NoError(t, conn.Probe(context.Background(), "ibm-granite/granite-3.3-2b-instruct"))
	assert.Equal(t, config.LLMBackendOpenAI, conn.Name())
}
