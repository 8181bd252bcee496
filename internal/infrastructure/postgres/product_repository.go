package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jcastano/estoque-api/internal/domain"
	"github.com/jcastano/estoque-api/internal/domain/entity"
	"github.com/jcastano/estoque-api/internal/domain/repository"
)

var _ repository.ProductRepository = (*ProductRepo)(nil)

const productColumns = `id, name, description, price, quantity, registered_at`

// ProductRepo implementación del puerto ProductRepository sobre PostgreSQL
// (usable con pool o tx).
type ProductRepo struct {
	q Querier
}

// NewProductRepository construye el adaptador de persistencia para productos.
// Pasar pool o tx (Querier).
func NewProductRepository(q Querier) *ProductRepo {
	return &ProductRepo{q: q}
}

// FindAll devuelve todos los productos en orden de inserción.
func (r *ProductRepo) FindAll(ctx context.Context) ([]*entity.Product, error) {
	query := `SELECT ` + productColumns + ` FROM products ORDER BY id`
	rows, err := r.q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list products: %w", err)
	}
	defer rows.Close()
	return scanProducts(rows)
}

// FindByID obtiene un producto por ID. (nil, nil) si no existe.
func (r *ProductRepo) FindByID(ctx context.Context, id int64) (*entity.Product, error) {
	query := `SELECT ` + productColumns + ` FROM products WHERE id = $1`
	return r.queryOne(ctx, query, id)
}

// FindByIDForUpdate obtiene un producto y bloquea la fila (SELECT FOR UPDATE).
// Solo tiene efecto dentro de una transacción.
func (r *ProductRepo) FindByIDForUpdate(ctx context.Context, id int64) (*entity.Product, error) {
	query := `SELECT ` + productColumns + ` FROM products WHERE id = $1 FOR UPDATE`
	return r.queryOne(ctx, query, id)
}

// SearchByName busca por substring del nombre, case-insensitive en cualquier
// posición (ILIKE '%texto%'). El texto se escapa antes de armar el patrón:
// "50%" o "a_c" se comparan como substring literal, no como comodines de LIKE.
func (r *ProductRepo) SearchByName(ctx context.Context, name string) ([]*entity.Product, error) {
	query := `SELECT ` + productColumns + ` FROM products WHERE name ILIKE '%' || $1 || '%' ESCAPE '\' ORDER BY id`
	rows, err := r.q.Query(ctx, query, escapeLike(name))
	if err != nil {
		return nil, fmt.Errorf("search products: %w", err)
	}
	defer rows.Close()
	return scanProducts(rows)
}

// Save hace upsert de registro completo: INSERT con ID generado por la DB si
// el producto no está persistido, UPDATE completo si ya lo está. Devuelve la
// forma persistida.
func (r *ProductRepo) Save(ctx context.Context, product *entity.Product) (*entity.Product, error) {
	if !product.Persisted() {
		query := `
			INSERT INTO products (name, description, price, quantity, registered_at)
			VALUES ($1, $2, $3, $4, $5)
			RETURNING id`
		err := r.q.QueryRow(ctx, query,
			product.Name, product.Description, product.Price, product.Quantity, product.RegisteredAt,
		).Scan(&product.ID)
		if err != nil {
			if isUniqueViolation(err) {
				return nil, domain.ErrDuplicate
			}
			return nil, fmt.Errorf("insert product: %w", err)
		}
		return product, nil
	}
	query := `
		UPDATE products SET name = $2, description = $3, price = $4, quantity = $5, registered_at = $6
		WHERE id = $1`
	if _, err := r.q.Exec(ctx, query,
		product.ID, product.Name, product.Description, product.Price, product.Quantity, product.RegisteredAt,
	); err != nil {
		return nil, fmt.Errorf("update product: %w", err)
	}
	return product, nil
}

// ExistsByID verifica si existe un producto con ese ID.
func (r *ProductRepo) ExistsByID(ctx context.Context, id int64) (bool, error) {
	var exists bool
	err := r.q.QueryRow(ctx, `SELECT EXISTS (SELECT 1 FROM products WHERE id = $1)`, id).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("exists product: %w", err)
	}
	return exists, nil
}

// DeleteByID elimina un producto por ID. No falla si la fila no existe.
func (r *ProductRepo) DeleteByID(ctx context.Context, id int64) error {
	if _, err := r.q.Exec(ctx, `DELETE FROM products WHERE id = $1`, id); err != nil {
		return fmt.Errorf("delete product: %w", err)
	}
	return nil
}

func (r *ProductRepo) queryOne(ctx context.Context, query string, id int64) (*entity.Product, error) {
	var p entity.Product
	err := r.q.QueryRow(ctx, query, id).Scan(
		&p.ID, &p.Name, &p.Description, &p.Price, &p.Quantity, &p.RegisteredAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get product: %w", err)
	}
	return &p, nil
}

func scanProducts(rows pgx.Rows) ([]*entity.Product, error) {
	var list []*entity.Product
	for rows.Next() {
		var p entity.Product
		if err := rows.Scan(&p.ID, &p.Name, &p.Description, &p.Price, &p.Quantity, &p.RegisteredAt); err != nil {
			return nil, fmt.Errorf("scan product: %w", err)
		}
		list = append(list, &p)
	}
	return list, rows.Err()
}
