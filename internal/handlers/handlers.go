package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"licitacoes/db"
	"licitacoes/internal/config"
	"licitacoes/internal/docgen"
)

// Handler liga as rotas HTTP ao armazenamento e ao gerador de
// documentos.
type Handler struct {
	Store StorageInterface
	Docs  *docgen.Assembler
	Cfg   config.Config
}

func NewHandler(store StorageInterface, docs *docgen.Assembler, cfg config.Config) *Handler {
	return &Handler{Store: store, Docs: docs, Cfg: cfg}
}

// PingHandler responde "ok" para verificação do servidor.
func (h *Handler) PingHandler(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
	w.Write([]byte("ok"))
}

// writeJSON serializa a resposta com o content-type correto.
func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

// storageError traduz os erros sentinela da camada de armazenamento em
// códigos HTTP, sem vazar detalhes do banco.
func storageError(w http.ResponseWriter, err error, notFoundMsg string) {
	switch {
	case errors.Is(err, db.ErrNotFound):
		http.Error(w, notFoundMsg, http.StatusNotFound)
	case errors.Is(err, db.ErrConflict):
		http.Error(w, "Registro duplicado (chave única já cadastrada)", http.StatusConflict)
	case errors.Is(err, db.ErrForeignKey):
		http.Error(w, "Registro referenciado por outros dados ou referência inexistente", http.StatusConflict)
	default:
		http.Error(w, "Erro interno", http.StatusInternalServerError)
	}
}

// idParam lê um parâmetro numérico de rota; devolve 0 se inválido.
func idParam(r *http.Request, name string) int {
	id, err := strconv.Atoi(chi.URLParam(r, name))
	if err != nil || id <= 0 {
		return 0
	}
	return id
}

// decodeBody decodifica o corpo JSON limitado a 1 MiB.
func decodeBody(w http.ResponseWriter, r *http.Request, v interface{}) bool {
	r.Body = http.MaxBytesReader(w, r.Body, 1048576)
	defer r.Body.Close()
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		http.Error(w, "JSON inválido", http.StatusBadRequest)
		return false
	}
	return true
}
