package postgres

import (
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jhoicas/patrimonio-api/internal/domain"
)

const (
	pgUniqueViolation     = "23505"
	pgForeignKeyViolation = "23503"
	pgCheckViolation      = "23514"
	pgNumericOutOfRange   = "22003"
	pgInvalidTextRepr     = "22P02"
)

// isUniqueViolation verifica si un error es una violación de constraint único (23505).
func isUniqueViolation(err error) bool {
	return pgErrorCode(err) == pgUniqueViolation
}

// isForeignKeyViolation verifica si un error es una violación de FK (23503).
func isForeignKeyViolation(err error) bool {
	return pgErrorCode(err) == pgForeignKeyViolation
}

func pgErrorCode(err error) string {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code
	}
	return ""
}

// mapWriteError traduce errores de escritura a errores de dominio.
func mapWriteError(op string, err error) error {
	switch pgErrorCode(err) {
	case pgUniqueViolation:
		return domain.ErrDuplicate
	case pgForeignKeyViolation:
		return domain.ErrNotFound
	case pgCheckViolation, pgNumericOutOfRange, pgInvalidTextRepr:
		return domain.ErrInvalidInput
	}
	return fmt.Errorf("%s: %w", op, err)
}

// likePattern arma un patrón ILIKE "contiene", escapando comodines del usuario.
func likePattern(s string) string {
	r := strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)
	return "%" + r.Replace(strings.TrimSpace(s)) + "%"
}

// whereBuilder acumula condiciones AND con placeholders $n.
type whereBuilder struct {
	clauses []string
	args    []any
}

// add agrega una condición; cada "?" se reemplaza por el placeholder del argumento.
func (w *whereBuilder) add(clause string, arg any) {
	w.args = append(w.args, arg)
	w.clauses = append(w.clauses, strings.ReplaceAll(clause, "?", fmt.Sprintf("$%d", len(w.args))))
}

func (w *whereBuilder) sql() string {
	if len(w.clauses) == 0 {
		return ""
	}
	return " WHERE " + strings.Join(w.clauses, " AND ")
}

// page devuelve " LIMIT $n OFFSET $m" y los argumentos finales.
func (w *whereBuilder) page(limit, offset int) (string, []any) {
	n := len(w.args)
	args := append(append([]any{}, w.args...), limit, offset)
	return fmt.Sprintf(" LIMIT $%d OFFSET $%d", n+1, n+2), args
}
