package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jcastano/estoque-api/internal/domain"
	"github.com/jcastano/estoque-api/internal/domain/entity"
	"github.com/jcastano/estoque-api/internal/domain/repository"
)

// ProductUseCase reglas de negocio del inventario: CRUD validado, búsqueda
// por nombre y registro de ventas con decremento atómico de stock.
type ProductUseCase struct {
	repo     repository.ProductRepository
	txRunner TxRunner
}

// NewProductUseCase construye el caso de uso. repo se usa para lecturas;
// las mutaciones (Save, Delete, Sell) corren dentro de txRunner.
func NewProductUseCase(repo repository.ProductRepository, txRunner TxRunner) *ProductUseCase {
	return &ProductUseCase{repo: repo, txRunner: txRunner}
}

// List devuelve todos los productos. Delegación pura.
func (uc *ProductUseCase) List(ctx context.Context) ([]*entity.Product, error) {
	return uc.repo.FindAll(ctx)
}

// GetByID obtiene un producto por ID. (nil, nil) si no existe: la ausencia
// es un resultado normal, no un error.
func (uc *ProductUseCase) GetByID(ctx context.Context, id int64) (*entity.Product, error) {
	return uc.repo.FindByID(ctx, id)
}

// Search busca productos cuyo nombre contenga el texto (case-insensitive).
// Un criterio vacío o solo espacios devuelve la lista completa: una caja de
// búsqueda vacía debe mostrar todo, no nada.
func (uc *ProductUseCase) Search(ctx context.Context, name string) ([]*entity.Product, error) {
	if strings.TrimSpace(name) == "" {
		return uc.List(ctx)
	}
	return uc.repo.SearchByName(ctx, name)
}

// Save valida y persiste un producto (insert si ID == 0, update si no).
// La validación ocurre antes de tocar la base de datos: un producto inválido
// no genera ninguna escritura. Devuelve la forma persistida con ID asignado.
func (uc *ProductUseCase) Save(ctx context.Context, product *entity.Product) (*entity.Product, error) {
	if err := validate(product); err != nil {
		return nil, err
	}
	if product.RegisteredAt.IsZero() {
		product.RegisteredAt = time.Now()
	}
	var saved *entity.Product
	err := uc.txRunner.Run(ctx, func(repo repository.ProductRepository) error {
		var err error
		saved, err = repo.Save(ctx, product)
		return err
	})
	if err != nil {
		return nil, err
	}
	return saved, nil
}

// Delete elimina un producto por ID. Verifica existencia primero para que el
// caller nunca reciba un no-op silencioso sobre un ID inexistente.
func (uc *ProductUseCase) Delete(ctx context.Context, id int64) error {
	return uc.txRunner.Run(ctx, func(repo repository.ProductRepository) error {
		exists, err := repo.ExistsByID(ctx, id)
		if err != nil {
			return err
		}
		if !exists {
			return fmt.Errorf("%w: no existe producto con id %d", domain.ErrNotFound, id)
		}
		return repo.DeleteByID(ctx, id)
	})
}

// Sell registra una venta: busca el producto, valida stock y decrementa la
// cantidad, todo dentro de una sola transacción con la fila bloqueada
// (SELECT FOR UPDATE). Si algo falla después de la lectura, el Rollback deja
// el registro intacto. Devuelve el producto actualizado.
func (uc *ProductUseCase) Sell(ctx context.Context, id int64, quantitySold int) (*entity.Product, error) {
	if quantitySold < 0 {
		return nil, fmt.Errorf("%w: la cantidad vendida no puede ser negativa", domain.ErrInvalidInput)
	}
	var updated *entity.Product
	err := uc.txRunner.Run(ctx, func(repo repository.ProductRepository) error {
		product, err := repo.FindByIDForUpdate(ctx, id)
		if err != nil {
			return err
		}
		if product == nil {
			return fmt.Errorf("%w: producto no encontrado", domain.ErrNotFound)
		}
		if quantitySold > product.Quantity {
			return &domain.StockError{Available: product.Quantity}
		}
		product.Quantity -= quantitySold

		// Re-validar es redundante (la resta quedó >= 0 por la guarda
		// anterior), pero la venta persiste por el mismo camino validado
		// que Save.
		if err := validate(product); err != nil {
			return err
		}
		updated, err = repo.Save(ctx, product)
		return err
	})
	if err != nil {
		return nil, err
	}
	return updated, nil
}

// validate aplica los invariantes de valor del producto, en orden:
// precio >= 0 y cantidad >= 0.
func validate(product *entity.Product) error {
	if product.Price.LessThan(decimal.Zero) {
		return fmt.Errorf("%w: el precio no puede ser negativo", domain.ErrInvalidInput)
	}
	if product.Quantity < 0 {
		return fmt.Errorf("%w: la cantidad no puede ser negativa", domain.ErrInvalidInput)
	}
	return nil
}
