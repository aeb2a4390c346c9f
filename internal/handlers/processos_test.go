package handlers_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"licitacoes/db"
	"licitacoes/models"
)

func TestCreateProcessoComecaNaFaseInterna(t *testing.T) {
	mockStore := &MockStorage{}
	handler := newTestHandler(mockStore)

	// o status do corpo é ignorado na criação
	reqBody := `{
        "numeroProcesso": "015/2026",
        "orgaoId": 1,
        "objeto": "Contratação de serviços de limpeza",
        "modalidade": "PREGAO",
        "status": "HOMOLOGADO"
    }`
	req := httptest.NewRequest(http.MethodPost, "/api/processos", strings.NewReader(reqBody))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()

	handler.CreateProcessoHandler(w, req)

	require.Equal(t, http.StatusCreated, w.Code)

	var resp models.Processo
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Equal(t, models.StatusFaseInterna, resp.Status)
}

func TestCreateProcessoModalidadeInvalida(t *testing.T) {
	mockStore := &MockStorage{}
	handler := newTestHandler(mockStore)

	reqBody := `{
        "numeroProcesso": "016/2026",
        "orgaoId": 1,
        "objeto": "Compra de veículos",
        "modalidade": "TOMADA_DE_PRECOS"
    }`
	req := httptest.NewRequest(http.MethodPost, "/api/processos", strings.NewReader(reqBody))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()

	handler.CreateProcessoHandler(w, req)

	require.Equal(t, http.StatusBadRequest, w.Code)
}

func TestCreateProcessoNumeroDuplicado(t *testing.T) {
	mockStore := &MockStorage{CreateProcessoErr: db.ErrConflict}
	handler := newTestHandler(mockStore)

	reqBody := `{
        "numeroProcesso": "001/2026",
        "orgaoId": 1,
        "objeto": "Aquisição de material",
        "modalidade": "PREGAO"
    }`
	req := httptest.NewRequest(http.MethodPost, "/api/processos", strings.NewReader(reqBody))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()

	handler.CreateProcessoHandler(w, req)

	require.Equal(t, http.StatusConflict, w.Code)
}

func TestGetProcessosComFiltro(t *testing.T) {
	var captured db.ProcessoFilter
	mockStore := &MockStorage{
		GetProcessosFunc: func(ctx context.Context, f db.ProcessoFilter) ([]models.Processo, error) {
			captured = f
			return []models.Processo{}, nil
		},
	}
	handler := newTestHandler(mockStore)

	req := httptest.NewRequest(http.MethodGet, "/api/processos?orgaoId=3&status=PUBLICADO&dataInicio=2026-01-01", nil)
	w := httptest.NewRecorder()

	handler.GetProcessosHandler(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	require.NotNil(t, captured.OrgaoID)
	require.Equal(t, 3, *captured.OrgaoID)
	require.Equal(t, models.StatusPublicado, captured.Status)
	require.NotNil(t, captured.DataInicio)
	require.Equal(t, "2026-01-01", captured.DataInicio.Format("2006-01-02"))
}

func TestGetProcessosStatusInvalido(t *testing.T) {
	mockStore := &MockStorage{}
	handler := newTestHandler(mockStore)

	req := httptest.NewRequest(http.MethodGet, "/api/processos?status=QUALQUER", nil)
	w := httptest.NewRecorder()

	handler.GetProcessosHandler(w, req)

	require.Equal(t, http.StatusBadRequest, w.Code)
}

func TestGetProcessosDataInvalida(t *testing.T) {
	mockStore := &MockStorage{}
	handler := newTestHandler(mockStore)

	req := httptest.NewRequest(http.MethodGet, "/api/processos?dataInicio=01-01-2026", nil)
	w := httptest.NewRecorder()

	handler.GetProcessosHandler(w, req)

	require.Equal(t, http.StatusBadRequest, w.Code)
}
