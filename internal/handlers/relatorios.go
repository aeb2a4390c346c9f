package handlers

import (
	"encoding/csv"
	"net/http"

	"licitacoes/internal/docgen"
	"licitacoes/models"
)

type processoRelatorio struct {
	models.Processo
	OrgaoNome        string   `json:"orgaoNome"`
	EtapasConcluidas []string `json:"etapasConcluidas"`
}

func (h *Handler) relatorioProcessos(r *http.Request) ([]processoRelatorio, int, error) {
	filtro, err := filtroProcessos(r)
	if err != nil {
		return nil, http.StatusBadRequest, err
	}
	processos, err := h.Store.GetProcessos(r.Context(), filtro)
	if err != nil {
		return nil, http.StatusInternalServerError, err
	}

	orgaos, err := h.Store.GetOrgaos(r.Context())
	if err != nil {
		return nil, http.StatusInternalServerError, err
	}
	nomes := make(map[int]string, len(orgaos))
	for _, o := range orgaos {
		nomes[o.ID] = o.Nome
	}

	ids := make([]int, len(processos))
	for i, p := range processos {
		ids[i] = p.ID
	}
	historico, err := h.Store.GetHistoricoPorProcessos(r.Context(), ids)
	if err != nil {
		return nil, http.StatusInternalServerError, err
	}

	relatorio := make([]processoRelatorio, 0, len(processos))
	for _, p := range processos {
		item := processoRelatorio{Processo: p, OrgaoNome: nomes[p.OrgaoID]}
		concluidas := make(map[string]bool)
		for _, hp := range historico[p.ID] {
			concluidas[hp.Etapa] = true
		}
		// Rótulos na ordem do catálogo, não na ordem de conclusão.
		for _, etapa := range models.Etapas {
			if concluidas[etapa.Key] {
				item.EtapasConcluidas = append(item.EtapasConcluidas, etapa.Label)
			}
		}
		relatorio = append(relatorio, item)
	}
	return relatorio, http.StatusOK, nil
}

// RelatorioProcessosHandler devolve os processos filtrados com o resumo
// de etapas concluídas de cada um.
func (h *Handler) RelatorioProcessosHandler(w http.ResponseWriter, r *http.Request) {
	relatorio, status, err := h.relatorioProcessos(r)
	if err != nil {
		if status == http.StatusBadRequest {
			http.Error(w, err.Error(), status)
		} else {
			http.Error(w, "Erro ao gerar relatório", status)
		}
		return
	}
	writeJSON(w, http.StatusOK, relatorio)
}

// ExportProcessosCSVHandler exporta o relatório em CSV com separador
// ";" e BOM UTF-8, para abrir direto no Excel em português.
func (h *Handler) ExportProcessosCSVHandler(w http.ResponseWriter, r *http.Request) {
	relatorio, status, err := h.relatorioProcessos(r)
	if err != nil {
		if status == http.StatusBadRequest {
			http.Error(w, err.Error(), status)
		} else {
			http.Error(w, "Erro ao gerar relatório", status)
		}
		return
	}

	w.Header().Set("Content-Type", "text/csv; charset=utf-8")
	w.Header().Set("Content-Disposition", "attachment; filename=\"relatorio_processos.csv\"")
	w.Write([]byte{0xEF, 0xBB, 0xBF})

	cw := csv.NewWriter(w)
	cw.Comma = ';'
	cw.Write([]string{"Nº Processo", "Objeto", "Órgão", "Status", "Data de Abertura", "Valor Estimado", "Etapas Concluídas (Andamento)"})
	for _, item := range relatorio {
		andamento := "Nenhuma etapa iniciada"
		if len(item.EtapasConcluidas) > 0 {
			andamento = item.EtapasConcluidas[0]
			for _, label := range item.EtapasConcluidas[1:] {
				andamento += " | " + label
			}
		}
		cw.Write([]string{
			item.NumeroProcesso,
			item.Objeto,
			item.OrgaoNome,
			models.StatusLabels[item.Status],
			item.DataAbertura.Format("02/01/2006"),
			docgen.FormatDecimalVirgula(item.ValorEstimado),
			andamento,
		})
	}
	cw.Flush()
}

type dashboardResponse struct {
	TotalProcessos       int                    `json:"totalProcessos"`
	ProcessosAtivos      int                    `json:"processosAtivos"`
	ProcessosHomologados int                    `json:"processosHomologados"`
	TotalOrgaos          int                    `json:"totalOrgaos"`
	TotalFornecedores    int                    `json:"totalFornecedores"`
	ProcessosPorStatus   map[string]int         `json:"processosPorStatus"`
	AtividadesRecentes   []atividadeRecenteJSON `json:"atividadesRecentes"`
}

type atividadeRecenteJSON struct {
	ProcessoID     int    `json:"processoId"`
	NumeroProcesso string `json:"numeroProcesso"`
	Etapa          string `json:"etapa"`
	Label          string `json:"label"`
	DataConclusao  string `json:"dataConclusao"`
}

// DashboardHandler agrega os contadores da tela inicial.
func (h *Handler) DashboardHandler(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	resp := dashboardResponse{ProcessosPorStatus: make(map[string]int)}

	var err error
	if resp.TotalProcessos, err = h.Store.CountProcessos(ctx); err != nil {
		http.Error(w, "Erro ao montar o painel", http.StatusInternalServerError)
		return
	}
	if resp.TotalOrgaos, err = h.Store.CountOrgaos(ctx); err != nil {
		http.Error(w, "Erro ao montar o painel", http.StatusInternalServerError)
		return
	}
	if resp.TotalFornecedores, err = h.Store.CountFornecedores(ctx); err != nil {
		http.Error(w, "Erro ao montar o painel", http.StatusInternalServerError)
		return
	}

	porStatus, err := h.Store.CountProcessosPorStatus(ctx)
	if err != nil {
		http.Error(w, "Erro ao montar o painel", http.StatusInternalServerError)
		return
	}
	// Todos os status aparecem, mesmo com contagem zero.
	for status := range models.StatusLabels {
		resp.ProcessosPorStatus[status] = 0
	}
	for _, sc := range porStatus {
		resp.ProcessosPorStatus[sc.Status] = sc.Count
	}
	resp.ProcessosHomologados = resp.ProcessosPorStatus[models.StatusHomologado]
	resp.ProcessosAtivos = resp.ProcessosPorStatus[models.StatusFaseInterna] +
		resp.ProcessosPorStatus[models.StatusPublicado] +
		resp.ProcessosPorStatus[models.StatusAguardandoPropostas] +
		resp.ProcessosPorStatus[models.StatusEmAnalise]

	atividades, err := h.Store.GetAtividadesRecentes(ctx, 5)
	if err != nil {
		http.Error(w, "Erro ao montar o painel", http.StatusInternalServerError)
		return
	}
	resp.AtividadesRecentes = make([]atividadeRecenteJSON, 0, len(atividades))
	for _, a := range atividades {
		resp.AtividadesRecentes = append(resp.AtividadesRecentes, atividadeRecenteJSON{
			ProcessoID:     a.ProcessoID,
			NumeroProcesso: a.NumeroProcesso,
			Etapa:          a.Etapa,
			Label:          models.EtapaLabel(a.Etapa),
			DataConclusao:  a.DataConclusao.Format("02/01/2006 15:04"),
		})
	}
	writeJSON(w, http.StatusOK, resp)
}
