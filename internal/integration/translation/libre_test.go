package translation

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/futig/edututor/internal/config"
	"github.com/futig/edututor/internal/entity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newLibreConfig(url string) config.TranslateConfig {
	return config.TranslateConfig{
		Provider:          config.TranslateProviderLibre,
		APIKey:            "key-1",
		TranslateEndpoint: "/translate",
		HTTPClientConfig: config.HTTPClientConfig{
			RequestTimeout:        5 * time.Second,
			ConnTimeout:           time.Second,
			KeepAlive:             time.Second,
			IdleConnTimeout:       time.Second,
			ResponseHeaderTimeout: time.Second,
			Url:                   url,
		},
	}
}

func TestLibreConnector_Translate(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/translate", r.URL.Path)
		assert.Equal(t, http.MethodPost, r.Method)

		var req entity.LibreTranslateRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "auto", req.Source)
		assert.Equal(t, "hi", req.Target)
		assert.Equal(t, "text", req.Format)
		assert.Equal(t, "key-1", req.APIKey)

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(entity.LibreTranslateResponse{TranslatedText: "गुरुत्वाकर्षण"})
	}))
	defer srv.Close()

	conn := NewLibreConnector(newLibreConfig(srv.URL), zap.NewNop())

	out, err := conn.Translate(context.Background(), "Gravity", "hi")
	require.NoError(t, err)
	assert.Equal(t, "गुरुत्वाकर्षण", out)
}

func TestLibreConnector_TranslateErrors(t *testing.T) {
	tests := []struct {
		name    string
		status  int
		body    string
		wantErr error
	}{
		{
			name:   "server error",
			status: http.StatusInternalServerError,
			body:   `{"error":"boom"}`,
		},
		{
			name:    "empty translation",
			status:  http.StatusOK,
			body:    `{"translatedText":""}`,
			wantErr: entity.ErrEmptyTranslation,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
				w.Write([]byte(tt.body))
			}))
			defer srv.Close()

			conn := NewLibreConnector(newLibreConfig(srv.URL), zap.NewNop())

			_, err := conn.Translate(context.Background(), "Gravity", "hi")
			require.Error(t, err)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			}
		})
	}
}

func TestMockConnector_Translate(t *testing.T) {
	out, err := NewMockConnector(zap.NewNop()).Translate(context.Background(), "text", "hi")
	require.NoError(t, err)
	assert.Equal(t, "[hi] text", out)
}
