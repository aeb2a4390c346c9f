package db

import (
	"context"
	"time"
)

// Contagem de processos por status, para o gráfico do painel.
type StatusCount struct {
	Status string `db:"status" json:"status"`
	Count  int    `db:"count" json:"count"`
}

// Etapa concluída recentemente, com o número do processo para exibição.
type AtividadeRecente struct {
	ProcessoID     int       `db:"processo_id" json:"processoId"`
	NumeroProcesso string    `db:"numero_processo" json:"numeroProcesso"`
	Etapa          string    `db:"etapa" json:"etapa"`
	DataConclusao  time.Time `db:"data_conclusao" json:"dataConclusao"`
}

func (s *Storage) CountProcessos(ctx context.Context) (int, error) {
	var count int
	err := s.db.GetContext(ctx, &count, `SELECT COUNT(1) FROM processo`)
	return count, translate(err)
}

func (s *Storage) CountOrgaos(ctx context.Context) (int, error) {
	var count int
	err := s.db.GetContext(ctx, &count, `SELECT COUNT(1) FROM orgao`)
	return count, translate(err)
}

func (s *Storage) CountFornecedores(ctx context.Context) (int, error) {
	var count int
	err := s.db.GetContext(ctx, &count, `SELECT COUNT(1) FROM fornecedor`)
	return count, translate(err)
}

// CountProcessosPorStatus devolve a distribuição de processos por
// status, em ordem de status.
func (s *Storage) CountProcessosPorStatus(ctx context.Context) ([]StatusCount, error) {
	counts := []StatusCount{}
	query := `
        SELECT status, COUNT(1) AS count
        FROM processo
        GROUP BY status
        ORDER BY status`
	err := s.db.SelectContext(ctx, &counts, query)
	return counts, translate(err)
}

// GetAtividadesRecentes devolve as últimas etapas concluídas em
// qualquer processo.
func (s *Storage) GetAtividadesRecentes(ctx context.Context, limit int) ([]AtividadeRecente, error) {
	atividades := []AtividadeRecente{}
	query := `
        SELECT h.processo_id, p.numero_processo, h.etapa, h.data_conclusao
        FROM historico_processo h
        JOIN processo p ON p.id = h.processo_id
        ORDER BY h.data_conclusao DESC, h.id DESC
        LIMIT $1`
	err := s.db.SelectContext(ctx, &atividades, query, limit)
	return atividades, translate(err)
}
