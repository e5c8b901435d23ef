package postgres

import (
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/wsbrasil/nexus-api/internal/domain"
)

// isNoRows verifica se o erro é ausência de linhas (consulta sem resultado).
func isNoRows(err error) bool {
	return errors.Is(err, pgx.ErrNoRows)
}

// classifyError traduz os códigos SQLSTATE do Postgres para os sentinelas de
// domínio. Violação de unicidade, permissão negada (RLS) e divergência de
// schema têm tratamentos distintos nas camadas de cima; o resto sobe como veio.
func classifyError(err error) error {
	if err == nil {
		return nil
	}
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		return err
	}
	switch pgErr.Code {
	case "23505": // unique_violation
		return domain.ErrDuplicate
	case "42501": // insufficient_privilege
		return domain.ErrPermissionDenied
	case "42703", "42P01": // undefined_column, undefined_table
		return domain.ErrSchemaMismatch
	}
	return err
}
