package handlers

import (
	"errors"
	"net/http"
	"net/mail"
	"strings"

	"licitacoes/models"
)

func validarEmail(email string) bool {
	_, err := mail.ParseAddress(email)
	return err == nil
}

// Orgaos

func validarOrgao(o *models.Orgao) error {
	if strings.TrimSpace(o.Nome) == "" || len(o.Nome) > 200 {
		return errors.New("nome é obrigatório (máx. 200)")
	}
	if strings.TrimSpace(o.CNPJ) == "" || len(o.CNPJ) > 18 {
		return errors.New("cnpj é obrigatório (máx. 18)")
	}
	if strings.TrimSpace(o.Endereco) == "" || len(o.Endereco) > 255 {
		return errors.New("endereco é obrigatório (máx. 255)")
	}
	if !validarEmail(o.Email) {
		return errors.New("email inválido")
	}
	return nil
}

func (h *Handler) GetOrgaosHandler(w http.ResponseWriter, r *http.Request) {
	orgaos, err := h.Store.GetOrgaos(r.Context())
	if err != nil {
		http.Error(w, "Erro ao listar órgãos", http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusOK, orgaos)
}

func (h *Handler) CreateOrgaoHandler(w http.ResponseWriter, r *http.Request) {
	var orgao models.Orgao
	if !decodeBody(w, r, &orgao) {
		return
	}
	if err := validarOrgao(&orgao); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	if err := h.Store.CreateOrgao(r.Context(), &orgao); err != nil {
		storageError(w, err, "Órgão não encontrado")
		return
	}
	writeJSON(w, http.StatusCreated, orgao)
}

func (h *Handler) GetOrgaoHandler(w http.ResponseWriter, r *http.Request) {
	id := idParam(r, "orgaoId")
	if id == 0 {
		http.Error(w, "orgaoId inválido", http.StatusBadRequest)
		return
	}
	orgao, err := h.Store.GetOrgao(r.Context(), id)
	if err != nil {
		storageError(w, err, "Órgão não encontrado")
		return
	}
	writeJSON(w, http.StatusOK, orgao)
}

func (h *Handler) UpdateOrgaoHandler(w http.ResponseWriter, r *http.Request) {
	id := idParam(r, "orgaoId")
	if id == 0 {
		http.Error(w, "orgaoId inválido", http.StatusBadRequest)
		return
	}
	var orgao models.Orgao
	if !decodeBody(w, r, &orgao) {
		return
	}
	orgao.ID = id
	if err := validarOrgao(&orgao); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	if err := h.Store.UpdateOrgao(r.Context(), &orgao); err != nil {
		storageError(w, err, "Órgão não encontrado")
		return
	}
	writeJSON(w, http.StatusOK, orgao)
}

func (h *Handler) DeleteOrgaoHandler(w http.ResponseWriter, r *http.Request) {
	id := idParam(r, "orgaoId")
	if id == 0 {
		http.Error(w, "orgaoId inválido", http.StatusBadRequest)
		return
	}
	if err := h.Store.DeleteOrgao(r.Context(), id); err != nil {
		storageError(w, err, "Órgão não encontrado")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// Secretarias

func validarSecretaria(sec *models.Secretaria) error {
	if sec.OrgaoID <= 0 {
		return errors.New("orgaoId deve ser positivo")
	}
	if strings.TrimSpace(sec.Nome) == "" || len(sec.Nome) > 200 {
		return errors.New("nome é obrigatório (máx. 200)")
	}
	return nil
}

func (h *Handler) GetSecretariasHandler(w http.ResponseWriter, r *http.Request) {
	secretarias, err := h.Store.GetSecretarias(r.Context())
	if err != nil {
		http.Error(w, "Erro ao listar secretarias", http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusOK, secretarias)
}

func (h *Handler) CreateSecretariaHandler(w http.ResponseWriter, r *http.Request) {
	var sec models.Secretaria
	if !decodeBody(w, r, &sec) {
		return
	}
	if err := validarSecretaria(&sec); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	if err := h.Store.CreateSecretaria(r.Context(), &sec); err != nil {
		storageError(w, err, "Secretaria não encontrada")
		return
	}
	writeJSON(w, http.StatusCreated, sec)
}

func (h *Handler) GetSecretariaHandler(w http.ResponseWriter, r *http.Request) {
	id := idParam(r, "secretariaId")
	if id == 0 {
		http.Error(w, "secretariaId inválido", http.StatusBadRequest)
		return
	}
	sec, err := h.Store.GetSecretaria(r.Context(), id)
	if err != nil {
		storageError(w, err, "Secretaria não encontrada")
		return
	}
	writeJSON(w, http.StatusOK, sec)
}

func (h *Handler) UpdateSecretariaHandler(w http.ResponseWriter, r *http.Request) {
	id := idParam(r, "secretariaId")
	if id == 0 {
		http.Error(w, "secretariaId inválido", http.StatusBadRequest)
		return
	}
	var sec models.Secretaria
	if !decodeBody(w, r, &sec) {
		return
	}
	sec.ID = id
	if err := validarSecretaria(&sec); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	if err := h.Store.UpdateSecretaria(r.Context(), &sec); err != nil {
		storageError(w, err, "Secretaria não encontrada")
		return
	}
	writeJSON(w, http.StatusOK, sec)
}

func (h *Handler) DeleteSecretariaHandler(w http.ResponseWriter, r *http.Request) {
	id := idParam(r, "secretariaId")
	if id == 0 {
		http.Error(w, "secretariaId inválido", http.StatusBadRequest)
		return
	}
	if err := h.Store.DeleteSecretaria(r.Context(), id); err != nil {
		storageError(w, err, "Secretaria não encontrada")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// Responsaveis

func validarResponsavel(resp *models.Responsavel) error {
	if strings.TrimSpace(resp.Nome) == "" || len(resp.Nome) > 200 {
		return errors.New("nome é obrigatório (máx. 200)")
	}
	if strings.TrimSpace(resp.Matricula) == "" || len(resp.Matricula) > 50 {
		return errors.New("matricula é obrigatória (máx. 50)")
	}
	if strings.TrimSpace(resp.Cargo) == "" || len(resp.Cargo) > 100 {
		return errors.New("cargo é obrigatório (máx. 100)")
	}
	return nil
}

func (h *Handler) GetResponsaveisHandler(w http.ResponseWriter, r *http.Request) {
	responsaveis, err := h.Store.GetResponsaveis(r.Context())
	if err != nil {
		http.Error(w, "Erro ao listar responsáveis", http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusOK, responsaveis)
}

func (h *Handler) CreateResponsavelHandler(w http.ResponseWriter, r *http.Request) {
	var resp models.Responsavel
	if !decodeBody(w, r, &resp) {
		return
	}
	if err := validarResponsavel(&resp); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	if err := h.Store.CreateResponsavel(r.Context(), &resp); err != nil {
		storageError(w, err, "Responsável não encontrado")
		return
	}
	writeJSON(w, http.StatusCreated, resp)
}

func (h *Handler) GetResponsavelHandler(w http.ResponseWriter, r *http.Request) {
	id := idParam(r, "responsavelId")
	if id == 0 {
		http.Error(w, "responsavelId inválido", http.StatusBadRequest)
		return
	}
	resp, err := h.Store.GetResponsavel(r.Context(), id)
	if err != nil {
		storageError(w, err, "Responsável não encontrado")
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (h *Handler) UpdateResponsavelHandler(w http.ResponseWriter, r *http.Request) {
	id := idParam(r, "responsavelId")
	if id == 0 {
		http.Error(w, "responsavelId inválido", http.StatusBadRequest)
		return
	}
	var resp models.Responsavel
	if !decodeBody(w, r, &resp) {
		return
	}
	resp.ID = id
	if err := validarResponsavel(&resp); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	if err := h.Store.UpdateResponsavel(r.Context(), &resp); err != nil {
		storageError(w, err, "Responsável não encontrado")
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (h *Handler) DeleteResponsavelHandler(w http.ResponseWriter, r *http.Request) {
	id := idParam(r, "responsavelId")
	if id == 0 {
		http.Error(w, "responsavelId inválido", http.StatusBadRequest)
		return
	}
	if err := h.Store.DeleteResponsavel(r.Context(), id); err != nil {
		storageError(w, err, "Responsável não encontrado")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// Fornecedores

func validarFornecedor(f *models.Fornecedor) error {
	if strings.TrimSpace(f.RazaoSocial) == "" || len(f.RazaoSocial) > 200 {
		return errors.New("razaoSocial é obrigatória (máx. 200)")
	}
	if strings.TrimSpace(f.CNPJ) == "" || len(f.CNPJ) > 18 {
		return errors.New("cnpj é obrigatório (máx. 18)")
	}
	if !validarEmail(f.Email) {
		return errors.New("email inválido")
	}
	return nil
}

func (h *Handler) GetFornecedoresHandler(w http.ResponseWriter, r *http.Request) {
	fornecedores, err := h.Store.GetFornecedores(r.Context())
	if err != nil {
		http.Error(w, "Erro ao listar fornecedores", http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusOK, fornecedores)
}

func (h *Handler) CreateFornecedorHandler(w http.ResponseWriter, r *http.Request) {
	var fornecedor models.Fornecedor
	if !decodeBody(w, r, &fornecedor) {
		return
	}
	if err := validarFornecedor(&fornecedor); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	if err := h.Store.CreateFornecedor(r.Context(), &fornecedor); err != nil {
		storageError(w, err, "Fornecedor não encontrado")
		return
	}
	writeJSON(w, http.StatusCreated, fornecedor)
}

func (h *Handler) GetFornecedorHandler(w http.ResponseWriter, r *http.Request) {
	id := idParam(r, "fornecedorId")
	if id == 0 {
		http.Error(w, "fornecedorId inválido", http.StatusBadRequest)
		return
	}
	fornecedor, err := h.Store.GetFornecedor(r.Context(), id)
	if err != nil {
		storageError(w, err, "Fornecedor não encontrado")
		return
	}
	writeJSON(w, http.StatusOK, fornecedor)
}

func (h *Handler) UpdateFornecedorHandler(w http.ResponseWriter, r *http.Request) {
	id := idParam(r, "fornecedorId")
	if id == 0 {
		http.Error(w, "fornecedorId inválido", http.StatusBadRequest)
		return
	}
	var fornecedor models.Fornecedor
	if !decodeBody(w, r, &fornecedor) {
		return
	}
	fornecedor.ID = id
	if err := validarFornecedor(&fornecedor); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	if err := h.Store.UpdateFornecedor(r.Context(), &fornecedor); err != nil {
		storageError(w, err, "Fornecedor não encontrado")
		return
	}
	writeJSON(w, http.StatusOK, fornecedor)
}

func (h *Handler) DeleteFornecedorHandler(w http.ResponseWriter, r *http.Request) {
	id := idParam(r, "fornecedorId")
	if id == 0 {
		http.Error(w, "fornecedorId inválido", http.StatusBadRequest)
		return
	}
	if err := h.Store.DeleteFornecedor(r.Context(), id); err != nil {
		storageError(w, err, "Fornecedor não encontrado")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
