package db

import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/lib/pq"
)

// Erros sentinela da camada de armazenamento. Os handlers traduzem
// estes erros em códigos HTTP sem conhecer o driver.
var (
	ErrNotFound   = errors.New("registro não encontrado")
	ErrConflict   = errors.New("registro duplicado")
	ErrForeignKey = errors.New("violação de integridade referencial")
)

// translate converte erros do Postgres em erros sentinela. Erros que não
// correspondem a nenhum padrão conhecido passam intactos.
func translate(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, sql.ErrNoRows) {
		return ErrNotFound
	}
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		switch pqErr.Code {
		case "23505": // unique_violation
			return fmt.Errorf("%w: %s", ErrConflict, pqErr.Constraint)
		case "23503": // foreign_key_violation
			return fmt.Errorf("%w: %s", ErrForeignKey, pqErr.Constraint)
		}
	}
	return err
}
