package handlers

import (
	"net/http"
	"time"

	"licitacoes/models"
)

type registrarEtapaRequest struct {
	Etapa string `json:"etapa"`
}

type registrarEtapaResponse struct {
	ProcessoID    int       `json:"processoId"`
	Etapa         string    `json:"etapa"`
	Label         string    `json:"label"`
	DataConclusao time.Time `json:"dataConclusao"`
	Registrada    bool      `json:"registrada"`
	NovoStatus    string    `json:"novoStatus,omitempty"`
}

// RegistrarEtapaHandler marca uma etapa do checklist como concluída.
// Registrar a mesma etapa de novo não cria duplicata nem altera a data
// original. A publicação do aviso e a homologação mudam o status do
// processo na primeira conclusão.
func (h *Handler) RegistrarEtapaHandler(w http.ResponseWriter, r *http.Request) {
	id := idParam(r, "processoId")
	if id == 0 {
		http.Error(w, "processoId inválido", http.StatusBadRequest)
		return
	}
	var req registrarEtapaRequest
	if !decodeBody(w, r, &req) {
		return
	}
	if !models.EtapaValida(req.Etapa) {
		http.Error(w, "Etapa desconhecida", http.StatusBadRequest)
		return
	}

	dataConclusao, registrada, err := h.Store.UpsertHistorico(r.Context(), id, req.Etapa)
	if err != nil {
		storageError(w, err, "Processo não encontrado")
		return
	}

	resp := registrarEtapaResponse{
		ProcessoID:    id,
		Etapa:         req.Etapa,
		Label:         models.EtapaLabel(req.Etapa),
		DataConclusao: dataConclusao,
		Registrada:    registrada,
	}

	if registrada {
		switch req.Etapa {
		case models.EtapaPublicacaoAviso:
			resp.NovoStatus = models.StatusPublicado
		case models.EtapaHomologacao:
			resp.NovoStatus = models.StatusHomologado
		}
		if resp.NovoStatus != "" {
			if err := h.Store.UpdateProcessoStatus(r.Context(), id, resp.NovoStatus); err != nil {
				storageError(w, err, "Processo não encontrado")
				return
			}
		}
	}

	status := http.StatusCreated
	if !registrada {
		status = http.StatusOK
	}
	writeJSON(w, status, resp)
}

type etapaAndamento struct {
	Key           string     `json:"key"`
	Label         string     `json:"label"`
	Concluida     bool       `json:"concluida"`
	DataConclusao *time.Time `json:"dataConclusao"`
}

type andamentoResponse struct {
	ProcessoID     int              `json:"processoId"`
	NumeroProcesso string           `json:"numeroProcesso"`
	Status         string           `json:"status"`
	Concluidas     int              `json:"concluidas"`
	Total          int              `json:"total"`
	FaseInterna    []etapaAndamento `json:"faseInterna"`
	FaseExterna    []etapaAndamento `json:"faseExterna"`
}

// AndamentoHandler devolve o checklist completo do processo, na ordem
// do catálogo, dividido entre fase interna e externa.
func (h *Handler) AndamentoHandler(w http.ResponseWriter, r *http.Request) {
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
	historico, err := h.Store.GetHistorico(r.Context(), id)
	if err != nil {
		http.Error(w, "Erro ao consultar andamento", http.StatusInternalServerError)
		return
	}

	concluidas := make(map[string]time.Time, len(historico))
	for _, hp := range historico {
		concluidas[hp.Etapa] = hp.DataConclusao
	}

	resp := andamentoResponse{
		ProcessoID:     processo.ID,
		NumeroProcesso: processo.NumeroProcesso,
		Status:         processo.Status,
		Concluidas:     len(concluidas),
		Total:          len(models.Etapas),
	}
	for i, etapa := range models.Etapas {
		item := etapaAndamento{Key: etapa.Key, Label: etapa.Label}
		if data, ok := concluidas[etapa.Key]; ok {
			d := data
			item.Concluida = true
			item.DataConclusao = &d
		}
		if i < models.FaseInternaLen {
			resp.FaseInterna = append(resp.FaseInterna, item)
		} else {
			resp.FaseExterna = append(resp.FaseExterna, item)
		}
	}
	writeJSON(w, http.StatusOK, resp)
}
