package handlers

import (
	"errors"
	"net/http"
	"strconv"
	"strings"
	"time"

	"licitacoes/db"
	"licitacoes/models"
)

func validarProcesso(p *models.Processo) error {
	if strings.TrimSpace(p.NumeroProcesso) == "" || len(p.NumeroProcesso) > 50 {
		return errors.New("numeroProcesso é obrigatório (máx. 50)")
	}
	if p.OrgaoID <= 0 {
		return errors.New("orgaoId deve ser positivo")
	}
	if strings.TrimSpace(p.Objeto) == "" {
		return errors.New("objeto é obrigatório")
	}
	if !models.ModalidadeValida(p.Modalidade) {
		return errors.New("modalidade inválida")
	}
	if !models.StatusValido(p.Status) {
		return errors.New("status inválido")
	}
	if p.EtpCriterioJulgamento != "" && !models.CriterioJulgamentoValido(p.EtpCriterioJulgamento) {
		return errors.New("etpCriterioJulgamento inválido")
	}
	if p.VigenciaMeses != nil && *p.VigenciaMeses <= 0 {
		return errors.New("vigenciaMeses deve ser positivo")
	}
	if p.EtpPrazoExecucao != nil && *p.EtpPrazoExecucao <= 0 {
		return errors.New("etpPrazoExecucao deve ser positivo")
	}
	return nil
}

// filtroProcessos monta o filtro da listagem a partir da query string.
// Datas no formato AAAA-MM-DD.
func filtroProcessos(r *http.Request) (db.ProcessoFilter, error) {
	var f db.ProcessoFilter
	q := r.URL.Query()

	if v := q.Get("orgaoId"); v != "" {
		id, err := strconv.Atoi(v)
		if err != nil || id <= 0 {
			return f, errors.New("orgaoId inválido")
		}
		f.OrgaoID = &id
	}
	if v := q.Get("secretariaId"); v != "" {
		id, err := strconv.Atoi(v)
		if err != nil || id <= 0 {
			return f, errors.New("secretariaId inválido")
		}
		f.SecretariaID = &id
	}
	if v := q.Get("modalidade"); v != "" {
		if !models.ModalidadeValida(v) {
			return f, errors.New("modalidade inválida")
		}
		f.Modalidade = v
	}
	if v := q.Get("status"); v != "" {
		if !models.StatusValido(v) {
			return f, errors.New("status inválido")
		}
		f.Status = v
	}
	if v := q.Get("dataInicio"); v != "" {
		t, err := time.Parse("2006-01-02", v)
		if err != nil {
			return f, errors.New("dataInicio inválida (use AAAA-MM-DD)")
		}
		f.DataInicio = &t
	}
	if v := q.Get("dataFim"); v != "" {
		t, err := time.Parse("2006-01-02", v)
		if err != nil {
			return f, errors.New("dataFim inválida (use AAAA-MM-DD)")
		}
		f.DataFim = &t
	}
	return f, nil
}

func (h *Handler) GetProcessosHandler(w http.ResponseWriter, r *http.Request) {
	filtro, err := filtroProcessos(r)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	processos, err := h.Store.GetProcessos(r.Context(), filtro)
	if err != nil {
		http.Error(w, "Erro ao listar processos", http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusOK, processos)
}

func (h *Handler) CreateProcessoHandler(w http.ResponseWriter, r *http.Request) {
	var processo models.Processo
	if !decodeBody(w, r, &processo) {
		return
	}
	// Todo processo nasce na fase interna, independente do corpo.
	processo.Status = models.StatusFaseInterna
	if err := validarProcesso(&processo); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	if err := h.Store.CreateProcesso(r.Context(), &processo); err != nil {
		storageError(w, err, "Processo não encontrado")
		return
	}
	writeJSON(w, http.StatusCreated, processo)
}

func (h *Handler) GetProcessoHandler(w http.ResponseWriter, r *http.Request) {
	id := idParam(r, "processoId")
	if id == 0 {
		http.Error(w, "processoId inválido", http.StatusBadRequest)
		return
	}
	processo, err := h.Store.GetProcesso(r.Context(), id)
	if err != nil {
		storageError(w, err, "Processo não encontrado")
		return
	}
	writeJSON(w, http.StatusOK, processo)
}

func (h *Handler) UpdateProcessoHandler(w http.ResponseWriter, r *http.Request) {
	id := idParam(r, "processoId")
	if id == 0 {
		http.Error(w, "processoId inválido", http.StatusBadRequest)
		return
	}
	var processo models.Processo
	if !decodeBody(w, r, &processo) {
		return
	}
	processo.ID = id
	if err := validarProcesso(&processo); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	if err := h.Store.UpdateProcesso(r.Context(), &processo); err != nil {
		storageError(w, err, "Processo não encontrado")
		return
	}
	writeJSON(w, http.StatusOK, processo)
}

func (h *Handler) DeleteProcessoHandler(w http.ResponseWriter, r *http.Request) {
	id := idParam(r, "processoId")
	if id == 0 {
		http.Error(w, "processoId inválido", http.StatusBadRequest)
		return
	}
	if err := h.Store.DeleteProcesso(r.Context(), id); err != nil {
		storageError(w, err, "Processo não encontrado")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
