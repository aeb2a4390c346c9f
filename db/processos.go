package db

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/jmoiron/sqlx"

	"licitacoes/models"
)

// processoCols são as colunas editáveis de processo, na ordem usada
// pelas queries nomeadas de insert/update.
var processoCols = []string{
	"numero_processo", "orgao_id", "secretaria_id", "responsavel_demanda_id",
	"objeto", "status", "modalidade", "valor_estimado",
	"justificativa", "descricao_detalhada_objeto", "vigencia_meses",
	"etp_responsavel_elaboracao_id", "etp_autoridade_competente_id",
	"etp_pca_texto", "etp_texto_estimativa_quantidades", "etp_texto_levantamento_mercado",
	"etp_estimativa_metodologia", "etp_analise_fornecedores_detalhe",
	"etp_requisitos_texto_geral", "etp_requisitos_marcas_texto", "etp_requisitos_amostra_texto",
	"etp_requisitos_tecnicos_detalhe", "etp_requisitos_capacitacao_detalhe",
	"etp_justificativa_contratacao", "etp_descricao_solucao_texto",
	"etp_solucao_proposta_detalhe", "etp_analise_alternativas_detalhe",
	"etp_justificativa_parcelamento_texto", "etp_resultados_pretendidos_texto",
	"etp_providencias_texto", "etp_contratacoes_correlatas_texto",
	"etp_alinhamento_estrategico_texto", "etp_impactos_ambientais_texto",
	"etp_gestor_contrato", "etp_fiscal_tecnico", "etp_fiscal_administrativo",
	"etp_prazo_execucao", "etp_justificativa_prazo",
	"etp_criterio_julgamento", "etp_justificativa_modalidade_criterio",
	"etp_dotacao_programa_trabalho", "etp_dotacao_natureza_despesa",
	"etp_dotacao_fonte_recursos", "etp_lista_anexos_texto",
}

func processoInsertQuery() string {
	placeholders := make([]string, len(processoCols))
	for i, c := range processoCols {
		placeholders[i] = ":" + c
	}
	return fmt.Sprintf(`
        INSERT INTO processo (%s)
        VALUES (%s)
        RETURNING id, data_abertura, created_at, updated_at`,
		strings.Join(processoCols, ", "), strings.Join(placeholders, ", "))
}

func processoUpdateQuery() string {
	sets := make([]string, len(processoCols))
	for i, c := range processoCols {
		sets[i] = c + "=:" + c
	}
	return fmt.Sprintf(`
        UPDATE processo
        SET %s, updated_at=NOW()
        WHERE id=:id`, strings.Join(sets, ", "))
}

func (s *Storage) CreateProcesso(ctx context.Context, p *models.Processo) error {
	rows, err := sqlx.NamedQueryContext(ctx, s.db, processoInsertQuery(), p)
	if err != nil {
		return translate(err)
	}
	defer rows.Close()
	if !rows.Next() {
		return translate(rows.Err())
	}
	if err := rows.Scan(&p.ID, &p.DataAbertura, &p.CreatedAt, &p.UpdatedAt); err != nil {
		return translate(err)
	}
	return translate(rows.Err())
}

func (s *Storage) GetProcesso(ctx context.Context, id int) (*models.Processo, error) {
	p := &models.Processo{}
	query := `SELECT * FROM processo WHERE id=$1`
	err := s.db.GetContext(ctx, p, query, id)
	return p, translate(err)
}

func (s *Storage) UpdateProcesso(ctx context.Context, p *models.Processo) error {
	res, err := sqlx.NamedExecContext(ctx, s.db, processoUpdateQuery(), p)
	if err != nil {
		return translate(err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return ErrNotFound
	}
	return nil
}

// UpdateProcessoStatus altera apenas o status; usado pelo checklist de
// etapas e por edições diretas de status.
func (s *Storage) UpdateProcessoStatus(ctx context.Context, id int, status string) error {
	query := `UPDATE processo SET status=$1, updated_at=NOW() WHERE id=$2`
	res, err := s.db.ExecContext(ctx, query, status, id)
	if err != nil {
		return translate(err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return ErrNotFound
	}
	return nil
}

// DeleteProcesso remove o processo; historico e documentos caem em
// cascata pela FK.
func (s *Storage) DeleteProcesso(ctx context.Context, id int) error {
	res, err := s.db.ExecContext(ctx, `DELETE FROM processo WHERE id=$1`, id)
	if err != nil {
		return translate(err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return ErrNotFound
	}
	return nil
}

// ProcessoFilter restringe listagens e relatórios. Campos nil/vazios
// não filtram.
type ProcessoFilter struct {
	OrgaoID      *int
	SecretariaID *int
	Modalidade   string
	Status       string
	DataInicio   *time.Time
	DataFim      *time.Time
}

func (s *Storage) GetProcessos(ctx context.Context, f ProcessoFilter) ([]models.Processo, error) {
	baseQuery := `SELECT * FROM processo`
	var conds []string
	var args []interface{}

	add := func(cond string, arg interface{}) {
		args = append(args, arg)
		conds = append(conds, fmt.Sprintf(cond, len(args)))
	}
	if f.OrgaoID != nil {
		add("orgao_id = $%d", *f.OrgaoID)
	}
	if f.SecretariaID != nil {
		add("secretaria_id = $%d", *f.SecretariaID)
	}
	if f.Modalidade != "" {
		add("modalidade = $%d", f.Modalidade)
	}
	if f.Status != "" {
		add("status = $%d", f.Status)
	}
	if f.DataInicio != nil {
		add("data_abertura >= $%d", *f.DataInicio)
	}
	if f.DataFim != nil {
		add("data_abertura <= $%d", *f.DataFim)
	}

	query := baseQuery
	if len(conds) > 0 {
		query += " WHERE " + strings.Join(conds, " AND ")
	}
	query += " ORDER BY data_abertura DESC, id DESC"

	processos := []models.Processo{}
	err := s.db.SelectContext(ctx, &processos, query, args...)
	return processos, translate(err)
}
