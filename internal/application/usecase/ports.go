package usecase

import (
	"context"

	"github.com/jcastano/estoque-api/internal/domain/repository"
)

// TxRunner ejecuta una función dentro de una transacción de BD, pasando un
// repositorio atado a esa tx. Commit solo si fn devuelve nil; Rollback en
// cualquier error. Reemplaza la demarcación implícita de transacciones del
// framework por una explícita.
type TxRunner interface {
	Run(ctx context.Context, fn func(repo repository.ProductRepository) error) error
}
