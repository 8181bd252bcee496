package postgres

import (
	"context"
	"errors"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ─────────────────────────────────────────────────────────────
// Escapado de patrones LIKE
// ─────────────────────────────────────────────────────────────

func TestEscapeLike(t *testing.T) {
	casos := []struct {
		entrada  string
		esperado string
	}{
		{"tv", "tv"},
		{"50%", `50\%`},
		{"a_c", `a\_c`},
		{`c:\tmp`, `c:\\tmp`},
		{`100%_\`, `100\%\_\\`},
		{"", ""},
	}
	for _, c := range casos {
		assert.Equal(t, c.esperado, escapeLike(c.entrada), "entrada %q", c.entrada)
	}
}

// capturaQuerier registra la última consulta y sus argumentos; Query corta la
// ejecución con un error para no tener que fabricar pgx.Rows.
type capturaQuerier struct {
	sql  string
	args []any
}

var errCaptura = errors.New("captura")

func (c *capturaQuerier) Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error) {
	c.sql, c.args = sql, args
	return pgconn.CommandTag{}, errCaptura
}

func (c *capturaQuerier) Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error) {
	c.sql, c.args = sql, args
	return nil, errCaptura
}

func (c *capturaQuerier) QueryRow(ctx context.Context, sql string, args ...any) pgx.Row {
	c.sql, c.args = sql, args
	return nil
}

func TestSearchByName_EscapaComodines(t *testing.T) {
	q := &capturaQuerier{}
	repo := NewProductRepository(q)

	_, err := repo.SearchByName(context.Background(), "50%")
	require.ErrorIs(t, err, errCaptura)

	// el patrón va con los comodines escapados y la query declara el ESCAPE
	require.Len(t, q.args, 1)
	assert.Equal(t, `50\%`, q.args[0])
	assert.Contains(t, q.sql, `ESCAPE '\'`)
}
