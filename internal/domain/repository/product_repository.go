package repository

import (
	"context"

	"github.com/jcastano/estoque-api/internal/domain/entity"
)

// ProductRepository define el puerto de persistencia para Product (DIP).
//
// Convenciones:
//   - FindByID devuelve (nil, nil) cuando el producto no existe; la ausencia
//     no es un error de este puerto.
//   - Save es un upsert de registro completo: INSERT si ID == 0, UPDATE si no.
//     Devuelve la forma persistida (con ID asignado).
//   - SearchByName hace match de substring case-insensitive en cualquier
//     posición del nombre.
//   - DeleteByID no falla si la fila no existe; el caso de uso verifica
//     existencia antes.
type ProductRepository interface {
	FindAll(ctx context.Context) ([]*entity.Product, error)
	FindByID(ctx context.Context, id int64) (*entity.Product, error)
	// FindByIDForUpdate bloquea la fila (SELECT FOR UPDATE); solo tiene
	// sentido dentro de una transacción.
	FindByIDForUpdate(ctx context.Context, id int64) (*entity.Product, error)
	SearchByName(ctx context.Context, name string) ([]*entity.Product, error)
	Save(ctx context.Context, product *entity.Product) (*entity.Product, error)
	ExistsByID(ctx context.Context, id int64) (bool, error)
	DeleteByID(ctx context.Context, id int64) error
}
