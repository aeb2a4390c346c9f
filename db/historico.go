package db

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/jmoiron/sqlx"

	"licitacoes/models"
)

// UpsertHistorico registra a conclusão de uma etapa de forma atômica.
// A unicidade de (processo, etapa) é garantida pela constraint; a
// inserção condicional acontece em um único comando, sem janela para
// requisições concorrentes duplicarem o registro. Devolve o horário de
// conclusão e se o registro é novo; ErrNotFound se o processo não existe.
func (s *Storage) UpsertHistorico(ctx context.Context, processoID int, etapa string) (time.Time, bool, error) {
	insert := `
        INSERT INTO historico_processo (processo_id, etapa)
        VALUES ($1, $2)
        ON CONFLICT (processo_id, etapa) DO NOTHING
        RETURNING data_conclusao`
	var concluida time.Time
	err := s.db.QueryRowContext(ctx, insert, processoID, etapa).Scan(&concluida)
	if err == nil {
		return concluida, true, nil
	}
	if !errors.Is(err, sql.ErrNoRows) {
		err = translate(err)
		if errors.Is(err, ErrForeignKey) {
			// processo inexistente
			return time.Time{}, false, ErrNotFound
		}
		return time.Time{}, false, err
	}

	// Já registrada; recupera o horário original.
	query := `SELECT data_conclusao FROM historico_processo WHERE processo_id=$1 AND etapa=$2`
	err = s.db.GetContext(ctx, &concluida, query, processoID, etapa)
	if err != nil {
		return time.Time{}, false, translate(err)
	}
	return concluida, false, nil
}

// GetHistorico devolve as etapas concluídas de um processo, na ordem em
// que foram concluídas.
func (s *Storage) GetHistorico(ctx context.Context, processoID int) ([]models.HistoricoProcesso, error) {
	historico := []models.HistoricoProcesso{}
	query := `
        SELECT * FROM historico_processo
        WHERE processo_id=$1
        ORDER BY data_conclusao ASC, id ASC`
	err := s.db.SelectContext(ctx, &historico, query, processoID)
	return historico, translate(err)
}

// GetHistoricoPorProcessos devolve as etapas concluídas de vários
// processos de uma vez, para a exportação de relatórios.
func (s *Storage) GetHistoricoPorProcessos(ctx context.Context, processoIDs []int) (map[int][]models.HistoricoProcesso, error) {
	result := make(map[int][]models.HistoricoProcesso, len(processoIDs))
	if len(processoIDs) == 0 {
		return result, nil
	}
	query, args, err := sqlx.In(`
        SELECT * FROM historico_processo
        WHERE processo_id IN (?)
        ORDER BY data_conclusao ASC, id ASC`, processoIDs)
	if err != nil {
		return nil, err
	}
	historico := []models.HistoricoProcesso{}
	if err := s.db.SelectContext(ctx, &historico, s.db.Rebind(query), args...); err != nil {
		return nil, translate(err)
	}
	for _, h := range historico {
		result[h.ProcessoID] = append(result[h.ProcessoID], h)
	}
	return result, nil
}
