package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// SaveProductRequest entrada para crear o actualizar un producto.
// En actualización el ID viene en la URL, no en el cuerpo.
type SaveProductRequest struct {
	Name        string          `json:"name" validate:"required,min=1,max=255"`
	Description string          `json:"description" validate:"max=255"`
	Price       decimal.Decimal `json:"price"`
	Quantity    int             `json:"quantity"`
}

// SellRequest entrada para registrar una venta (decremento de stock).
type SellRequest struct {
	Quantity int `json:"quantity" validate:"min=0"`
}

// ProductResponse salida de un producto.
type ProductResponse struct {
	ID           int64           `json:"id"`
	Name         string          `json:"name"`
	Description  string          `json:"description"`
	Price        decimal.Decimal `json:"price"`
	Quantity     int             `json:"quantity"`
	RegisteredAt time.Time       `json:"registered_at"`
}

// ProductListResponse lista de productos.
type ProductListResponse struct {
	Items []ProductResponse `json:"items"`
	Total int               `json:"total"`
}
