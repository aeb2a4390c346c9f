package handlers

import (
	"net/http"
	"path/filepath"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"

	"licitacoes/internal/docgen"
	"licitacoes/models"
)

// GerarDocumentoHandler monta um documento .docx do processo e registra
// o arquivo gerado. O registro só existe se o arquivo foi gravado.
func (h *Handler) GerarDocumentoHandler(w http.ResponseWriter, r *http.Request) {
	id := idParam(r, "processoId")
	if id == 0 {
		http.Error(w, "processoId inválido", http.StatusBadRequest)
		return
	}
	tipo := chi.URLParam(r, "tipo")
	if !docgen.TipoValido(tipo) {
		http.Error(w, "Tipo de documento desconhecido", http.StatusBadRequest)
		return
	}

	processo, err := h.Store.GetProcesso(r.Context(), id)
	if err != nil {
		storageError(w, err, "Processo não encontrado")
		return
	}
	orgao, err := h.Store.GetOrgao(r.Context(), processo.OrgaoID)
	if err != nil {
		storageError(w, err, "Órgão do processo não encontrado")
		return
	}

	ctx := &docgen.Contexto{
		Processo:  processo,
		Orgao:     orgao,
		Agora:     time.Now(),
		GeradoPor: UsernameFromContext(r.Context()),
	}
	if processo.SecretariaID != nil {
		if sec, err := h.Store.GetSecretaria(r.Context(), *processo.SecretariaID); err == nil {
			ctx.Secretaria = sec
		}
	}
	if processo.ResponsavelDemandaID != nil {
		if resp, err := h.Store.GetResponsavel(r.Context(), *processo.ResponsavelDemandaID); err == nil {
			ctx.ResponsavelDemanda = resp
		}
	}
	if processo.EtpResponsavelElaboracaoID != nil {
		if resp, err := h.Store.GetResponsavel(r.Context(), *processo.EtpResponsavelElaboracaoID); err == nil {
			ctx.Elaborador = resp
		}
	}

	arquivo, err := h.Docs.Gerar(tipo, ctx)
	if err != nil {
		http.Error(w, "Falha ao gerar o documento", http.StatusBadGateway)
		return
	}

	doc := &models.Documento{
		ProcessoID: id,
		Tipo:       tipo,
		Arquivo:    arquivo,
		GeradoPor:  ctx.GeradoPor,
	}
	if err := h.Store.CreateDocumento(r.Context(), doc); err != nil {
		storageError(w, err, "Processo não encontrado")
		return
	}
	writeJSON(w, http.StatusCreated, doc)
}

// GetDocumentosHandler lista documentos gerados; aceita ?processoId=N.
func (h *Handler) GetDocumentosHandler(w http.ResponseWriter, r *http.Request) {
	processoID := 0
	if v := r.URL.Query().Get("processoId"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n <= 0 {
			http.Error(w, "processoId inválido", http.StatusBadRequest)
			return
		}
		processoID = n
	}
	documentos, err := h.Store.GetDocumentos(r.Context(), processoID)
	if err != nil {
		http.Error(w, "Erro ao listar documentos", http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusOK, documentos)
}

// DownloadDocumentoHandler serve o arquivo .docx de um documento gerado.
func (h *Handler) DownloadDocumentoHandler(w http.ResponseWriter, r *http.Request) {
	id := idParam(r, "documentoId")
	if id == 0 {
		http.Error(w, "documentoId inválido", http.StatusBadRequest)
		return
	}
	doc, err := h.Store.GetDocumento(r.Context(), id)
	if err != nil {
		storageError(w, err, "Documento não encontrado")
		return
	}
	caminho := h.Docs.CaminhoAbsoluto(doc.Arquivo)
	w.Header().Set("Content-Type", "application/vnd.openxmlformats-officedocument.wordprocessingml.document")
	w.Header().Set("Content-Disposition", "attachment; filename=\""+filepath.Base(doc.Arquivo)+"\"")
	http.ServeFile(w, r, caminho)
}
