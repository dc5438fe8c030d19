package access

import (
	"context"

	"github.com/futig/edututor/internal/entity"
)

type Gate interface {
	Login(ctx context.Context, username, password string) entity.LoginResult
}

type ModelStatusProvider interface {
	Status() entity.ModelStatus
}
