package access

import (
	"context"

	"github.com/futig/edututor/internal/entity"
	"github.com/grpc-ecosystem/go-grpc-middleware/logging/zap/ctxzap"
	"go.uber.org/zap"
)

// CredentialsProvider supplies the single accepted username/password pair.
type CredentialsProvider interface {
	Credentials() (username, password string)
}

// StaticCredentials is a fixed pair, usually taken from configuration.
type StaticCredentials struct {
	Username string
	Password string
}

func (c StaticCredentials) Credentials() (string, string) {
	return c.Username, c.Password
}

// Gate toggles visibility of the main surface. It compares plain strings and
// keeps no attempt counters; it is not a security boundary.
type Gate struct {
	provider CredentialsProvider
}

func NewGate(provider CredentialsProvider) *Gate {
	return &Gate{provider: provider}
}

// Check reports whether the pair matches exactly.
func (g *Gate) Check(username, password string) bool {
	expectedUser, expectedPass := g.provider.Credentials()
	return username == expectedUser && password == expectedPass
}

func (g *Gate) Login(ctx context.Context, username, password string) entity.LoginResult {
	if !g.Check(username, password) {
		ctxzap.Info(ctx, "login rejected", zap.String("username", username))
		return entity.LoginResult{
			Visible: false,
			Status:  entity.MsgLoginFailed,
		}
	}

	ctxzap.Info(ctx, "login accepted", zap.String("username", username))
	return entity.LoginResult{
		Visible: true,
		Status:  entity.MsgLoginSuccess,
	}
}
