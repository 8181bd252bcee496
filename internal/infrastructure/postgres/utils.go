package postgres

import (
	"errors"
	"strings"

	"github.com/jackc/pgx/v5/pgconn"
)

// isUniqueViolation detecta el SQLSTATE 23505 (unique_violation) en un error
// devuelto por pgx.
func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		// el error puede venir envuelto sin exponer *PgError
		return strings.Contains(err.Error(), "23505")
	}
	return pgErr.Code == "23505"
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// escapeLike neutraliza los metacaracteres de LIKE/ILIKE (%, _ y \) para que
// el texto del usuario participe del patrón como literal.
func escapeLike(s string) string {
	return likeEscaper.Replace(s)
}
