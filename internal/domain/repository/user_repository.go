package repository

import (
	"context"

	"github.com/jcastano/estoque-api/internal/domain/entity"
)

// UserRepository define el puerto de persistencia para User.
// FindByEmail devuelve (nil, nil) si el email no existe.
type UserRepository interface {
	Create(ctx context.Context, user *entity.User) error
	FindByID(ctx context.Context, id string) (*entity.User, error)
	FindByEmail(ctx context.Context, email string) (*entity.User, error)
}
