package postgres

import (
	"errors"
	"strings"

	"github.com/jackc/pgx/v5/pgconn"
)

// isUniqueViolation verifica si un error es una violación de constraint
// único de PostgreSQL (SQLSTATE 23505), p. ej. un sku duplicado.
func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23505"
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// escapeLike escapa los metacaracteres de LIKE/ILIKE (%, _ y el propio \) para
// que el texto se compare como subcadena literal. Las sentencias que usan el
// patrón declaran ESCAPE '\'.
func escapeLike(text string) string {
	return likeEscaper.Replace(text)
}
