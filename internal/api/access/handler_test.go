package access

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/futig/edututor/internal/entity"
	accessuc "github.com/futig/edututor/internal/usecase/access"
	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fixedModel struct{}

func (fixedModel) Status() entity.ModelStatus {
	return entity.ModelStatus{Model: "granite", Backend: "mock", Enabled: false}
}

func newRouter() http.Handler {
	r := chi.NewRouter()
	RegisterRoutes(r, NewHandler(accessuc.NewGate(accessuc.StaticCredentials{Username: "admin", Password: "1234"}), fixedModel{}))
	return r
}

func TestLogin(t *testing.T) {
	tests := []struct {
		name     string
		body     string
		expected entity.LoginResult
	}{
		{
			name:     "valid credentials",
			body:     `{"username":"admin","password":"1234"}`,
			expected: entity.LoginResult{Visible: true, Status: entity.MsgLoginSuccess},
		},
		{
			name:     "invalid credentials",
			body:     `{"username":"admin","password":"nope"}`,
			expected: entity.LoginResult{Visible: false, Status: entity.MsgLoginFailed},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			newRouter().ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/login", strings.NewReader(tt.body)))

			require.Equal(t, http.StatusOK, rec.Code)
			var got entity.LoginResult
			require.NoError(t, json.NewDecoder(rec.Body).Decode(&got))
			assert.Equal(t, tt.expected, got)
		})
	}
}

func TestLogin_BadBody(t *testing.T) {
	rec := httptest.NewRecorder()
	newRouter().ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/login", strings.NewReader("{")))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestListLanguages(t *testing.T) {
	rec := httptest.NewRecorder()
	newRouter().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/languages", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	var got []entity.LanguageDTO
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&got))
	assert.Equal(t, []entity.LanguageDTO{
		{Name: "English", Code: "en", Default: true},
		{Name: "Hindi", Code: "hi", Default: false},
	}, got)
}

func TestModelStatus(t *testing.T) {
	rec := httptest.NewRecorder()
	newRouter().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/model", nil))

	assert.JSONEq(t, `{"model":"granite","backend":"mock","enabled":false}`, rec.Body.String())
}
