package middleware

import (
	"net/http"

	"github.com/futig/edututor/internal/entity"
	"github.com/futig/edututor/internal/pkg/response"
	"github.com/grpc-ecosystem/go-grpc-middleware/logging/zap/ctxzap"
	"go.uber.org/zap"
)

// CredentialsChecker matches a username/password pair.
type CredentialsChecker interface {
	Check(username, password string) bool
}

// RequireLogin rejects requests whose HTTP Basic credentials do not pass the
// access gate. It mirrors the hidden state of the web page for API clients.
func RequireLogin(checker CredentialsChecker) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			username, password, ok := r.BasicAuth()
			if !ok || !checker.Check(username, password) {
				ctxzap.Extract(r.Context()).Info("request rejected by access gate", zap.Error(entity.ErrUnauthorized))
				w.Header().Set("WWW-Authenticate", `Basic realm="edututor"`)
				response.ErrorWithMessage(w, http.StatusUnauthorized, http.StatusText(http.StatusUnauthorized), entity.MsgLoginFailed)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
