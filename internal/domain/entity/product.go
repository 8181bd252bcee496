package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Product representa un artículo del inventario.
// Price usa decimal (NUMERIC en la DB): dinero nunca en float binario.
// ID lo asigna la base de datos en el primer insert; 0 = aún no persistido.
type Product struct {
	ID           int64
	Name         string
	Description  string
	Price        decimal.Decimal
	Quantity     int
	RegisteredAt time.Time // fecha de registro; se fija una vez al crear
}

// Persisted indica si el producto ya existe en la base de datos.
func (p *Product) Persisted() bool {
	return p.ID != 0
}
