package handlers_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"

	"licitacoes/db"
	"licitacoes/models"
)

func mockRelatorio() *MockStorage {
	valor := decimal.NewNullDecimal(decimal.NewFromFloat(1234.56))
	return &MockStorage{
		GetProcessosFunc: func(ctx context.Context, f db.ProcessoFilter) ([]models.Processo, error) {
			return []models.Processo{
				{
					ID:             1,
					NumeroProcesso: "001/2026",
					OrgaoID:        1,
					Objeto:         "Aquisição de material de escritório",
					Status:         models.StatusPublicado,
					Modalidade:     "PREGAO",
					DataAbertura:   time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC),
					ValorEstimado:  valor,
				},
				{
					ID:             2,
					NumeroProcesso: "002/2026",
					OrgaoID:        1,
					Objeto:         "Serviços de vigilância",
					Status:         models.StatusFaseInterna,
					Modalidade:     "PREGAO",
					DataAbertura:   time.Date(2026, 4, 2, 0, 0, 0, 0, time.UTC),
				},
			}, nil
		},
		GetHistoricoTodosFunc: func(ctx context.Context, processoIDs []int) (map[int][]models.HistoricoProcesso, error) {
			agora := time.Date(2026, 3, 15, 10, 0, 0, 0, time.UTC)
			return map[int][]models.HistoricoProcesso{
				1: {
					{ID: 1, ProcessoID: 1, Etapa: "DFD", DataConclusao: agora},
					{ID: 2, ProcessoID: 1, Etapa: "ETP", DataConclusao: agora},
				},
			}, nil
		},
	}
}

func TestRelatorioProcessosHandler(t *testing.T) {
	handler := newTestHandler(mockRelatorio())

	req := httptest.NewRequest(http.MethodGet, "/api/relatorios/processos", nil)
	w := httptest.NewRecorder()
	handler.RelatorioProcessosHandler(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var resp []struct {
		NumeroProcesso   string   `json:"numeroProcesso"`
		OrgaoNome        string   `json:"orgaoNome"`
		EtapasConcluidas []string `json:"etapasConcluidas"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp, 2)
	require.Equal(t, "Prefeitura de Teste", resp[0].OrgaoNome)
	require.Equal(t, []string{
		"Documento de formalização da demanda",
		"Estudo Técnico Preliminar (ETP)",
	}, resp[0].EtapasConcluidas)
	require.Empty(t, resp[1].EtapasConcluidas)
}

func TestExportProcessosCSV(t *testing.T) {
	handler := newTestHandler(mockRelatorio())

	req := httptest.NewRequest(http.MethodGet, "/api/relatorios/processos/export", nil)
	w := httptest.NewRecorder()
	handler.ExportProcessosCSVHandler(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	require.Contains(t, w.Header().Get("Content-Type"), "text/csv")

	body := w.Body.Bytes()
	require.True(t, strings.HasPrefix(string(body), "\xEF\xBB\xBF"), "exportação deve começar com BOM UTF-8")

	linhas := strings.Split(strings.TrimSpace(strings.TrimPrefix(string(body), "\xEF\xBB\xBF")), "\n")
	require.Len(t, linhas, 3)
	require.Equal(t, "Nº Processo;Objeto;Órgão;Status;Data de Abertura;Valor Estimado;Etapas Concluídas (Andamento)", linhas[0])
	require.Equal(t, "001/2026;Aquisição de material de escritório;Prefeitura de Teste;Publicado;10/03/2026;1234,56;Documento de formalização da demanda | Estudo Técnico Preliminar (ETP)", linhas[1])
	require.Equal(t, "002/2026;Serviços de vigilância;Prefeitura de Teste;Fase Interna;02/04/2026;0,00;Nenhuma etapa iniciada", linhas[2])
}

func TestExportProcessosCSVFiltroInvalido(t *testing.T) {
	handler := newTestHandler(&MockStorage{})

	req := httptest.NewRequest(http.MethodGet, "/api/relatorios/processos/export?status=NADA", nil)
	w := httptest.NewRecorder()
	handler.ExportProcessosCSVHandler(w, req)

	require.Equal(t, http.StatusBadRequest, w.Code)
}

func TestDashboardHandler(t *testing.T) {
	handler := newTestHandler(&MockStorage{})

	req := httptest.NewRequest(http.MethodGet, "/api/dashboard", nil)
	w := httptest.NewRecorder()
	handler.DashboardHandler(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		TotalProcessos       int            `json:"totalProcessos"`
		ProcessosAtivos      int            `json:"processosAtivos"`
		ProcessosHomologados int            `json:"processosHomologados"`
		ProcessosPorStatus   map[string]int `json:"processosPorStatus"`
		AtividadesRecentes   []struct {
			Etapa string `json:"etapa"`
			Label string `json:"label"`
		} `json:"atividadesRecentes"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Equal(t, 3, resp.TotalProcessos)
	require.Equal(t, 2, resp.ProcessosAtivos)
	require.Equal(t, 1, resp.ProcessosHomologados)
	// todos os status aparecem, mesmo zerados
	require.Len(t, resp.ProcessosPorStatus, len(models.StatusLabels))
	require.Equal(t, 2, resp.ProcessosPorStatus[models.StatusFaseInterna])
	require.Equal(t, 0, resp.ProcessosPorStatus[models.StatusCancelado])
	require.Len(t, resp.AtividadesRecentes, 1)
	require.Equal(t, "Documento de formalização da demanda", resp.AtividadesRecentes[0].Label)
}
