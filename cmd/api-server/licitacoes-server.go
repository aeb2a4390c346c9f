package main

import (
	"log"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"

	"licitacoes/db"
	"licitacoes/db/migrations"
	"licitacoes/internal/config"
	"licitacoes/internal/docgen"
	"licitacoes/internal/handlers"
)

func main() {
	cfg := config.FromEnv()
	if cfg.PostgresConn == "" {
		log.Fatal("POSTGRES_CONN env variable is not set")
	}
	if cfg.JWTSigningKey == "" {
		log.Fatal("JWT_SIGNING_KEY env variable is not set")
	}

	dbConn, err := sqlx.Connect("postgres", cfg.PostgresConn)
	if err != nil {
		log.Fatalf("Cannot connect to DB: %v", err)
	}
	defer dbConn.Close()

	if err := migrations.Run(dbConn.DB); err != nil {
		log.Fatalf("Cannot run migrations: %v", err)
	}

	docs, err := docgen.New(cfg.DocumentosDir)
	if err != nil {
		log.Fatalf("Cannot init document assembler: %v", err)
	}

	store := db.NewStorage(dbConn)
	h := handlers.NewHandler(store, docs, cfg)

	r := chi.NewRouter()
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)

	r.Route("/api", func(r chi.Router) {
		r.Get("/ping", h.PingHandler)
		r.Post("/auth/register", h.RegisterHandler)
		r.Post("/auth/login", h.LoginHandler)

		r.Group(func(r chi.Router) {
			r.Use(handlers.RequireAuth(cfg.JWTSigningKey))

			// órgãos
			r.Get("/orgaos", h.GetOrgaosHandler)
			r.Post("/orgaos", h.CreateOrgaoHandler)
			r.Get("/orgaos/{orgaoId}", h.GetOrgaoHandler)
			r.Put("/orgaos/{orgaoId}", h.UpdateOrgaoHandler)
			r.Delete("/orgaos/{orgaoId}", h.DeleteOrgaoHandler)
			// secretarias
			r.Get("/secretarias", h.GetSecretariasHandler)
			r.Post("/secretarias", h.CreateSecretariaHandler)
			r.Get("/secretarias/{secretariaId}", h.GetSecretariaHandler)
			r.Put("/secretarias/{secretariaId}", h.UpdateSecretariaHandler)
			r.Delete("/secretarias/{secretariaId}", h.DeleteSecretariaHandler)
			// responsáveis
			r.Get("/responsaveis", h.GetResponsaveisHandler)
			r.Post("/responsaveis", h.CreateResponsavelHandler)
			r.Get("/responsaveis/{responsavelId}", h.GetResponsavelHandler)
			r.Put("/responsaveis/{responsavelId}", h.UpdateResponsavelHandler)
			r.Delete("/responsaveis/{responsavelId}", h.DeleteResponsavelHandler)
			// fornecedores
			r.Get("/fornecedores", h.GetFornecedoresHandler)
			r.Post("/fornecedores", h.CreateFornecedorHandler)
			r.Get("/fornecedores/{fornecedorId}", h.GetFornecedorHandler)
			r.Put("/fornecedores/{fornecedorId}", h.UpdateFornecedorHandler)
			r.Delete("/fornecedores/{fornecedorId}", h.DeleteFornecedorHandler)
			// processos
			r.Get("/processos", h.GetProcessosHandler)
			r.Post("/processos", h.CreateProcessoHandler)
			r.Get("/processos/{processoId}", h.GetProcessoHandler)
			r.Put("/processos/{processoId}", h.UpdateProcessoHandler)
			r.Delete("/processos/{processoId}", h.DeleteProcessoHandler)
			// andamento
			r.Post("/processos/{processoId}/etapas", h.RegistrarEtapaHandler)
			r.Get("/processos/{processoId}/andamento", h.AndamentoHandler)
			// documentos
			r.Post("/processos/{processoId}/documentos/{tipo}", h.GerarDocumentoHandler)
			r.Get("/documentos", h.GetDocumentosHandler)
			r.Get("/documentos/{documentoId}/download", h.DownloadDocumentoHandler)
			// relatórios
			r.Get("/relatorios/processos", h.RelatorioProcessosHandler)
			r.Get("/relatorios/processos/export", h.ExportProcessosCSVHandler)
			r.Get("/dashboard", h.DashboardHandler)
		})
	})

	log.Printf("Starting server on %s", cfg.ServerAddr)
	log.Fatal(http.ListenAndServe(cfg.ServerAddr, r))
}
