package handlers

import (
	"context"
	"time"

	"licitacoes/db"
	"licitacoes/models"
)

type StorageInterface interface {
	CreateOrgao(ctx context.Context, o *models.Orgao) error
	GetOrgao(ctx context.Context, id int) (*models.Orgao, error)
	GetOrgaos(ctx context.Context) ([]models.Orgao, error)
	UpdateOrgao(ctx context.Context, o *models.Orgao) error
	DeleteOrgao(ctx context.Context, id int) error

	CreateSecretaria(ctx context.Context, sec *models.Secretaria) error
	GetSecretaria(ctx context.Context, id int) (*models.Secretaria, error)
	GetSecretarias(ctx context.Context) ([]models.Secretaria, error)
	UpdateSecretaria(ctx context.Context, sec *models.Secretaria) error
	DeleteSecretaria(ctx context.Context, id int) error

	CreateResponsavel(ctx context.Context, r *models.Responsavel) error
	GetResponsavel(ctx context.Context, id int) (*models.Responsavel, error)
	GetResponsaveis(ctx context.Context) ([]models.Responsavel, error)
	UpdateResponsavel(ctx context.Context, r *models.Responsavel) error
	DeleteResponsavel(ctx context.Context, id int) error

	CreateFornecedor(ctx context.Context, f *models.Fornecedor) error
	GetFornecedor(ctx context.Context, id int) (*models.Fornecedor, error)
	GetFornecedores(ctx context.Context) ([]models.Fornecedor, error)
	UpdateFornecedor(ctx context.Context, f *models.Fornecedor) error
	DeleteFornecedor(ctx context.Context, id int) error

	CreateProcesso(ctx context.Context, p *models.Processo) error
	GetProcesso(ctx context.Context, id int) (*models.Processo, error)
	GetProcessos(ctx context.Context, f db.ProcessoFilter) ([]models.Processo, error)
	UpdateProcesso(ctx context.Context, p *models.Processo) error
	UpdateProcessoStatus(ctx context.Context, id int, status string) error
	DeleteProcesso(ctx context.Context, id int) error

	UpsertHistorico(ctx context.Context, processoID int, etapa string) (time.Time, bool, error)
	GetHistorico(ctx context.Context, processoID int) ([]models.HistoricoProcesso, error)
	GetHistoricoPorProcessos(ctx context.Context, processoIDs []int) (map[int][]models.HistoricoProcesso, error)

	CreateDocumento(ctx context.Context, d *models.Documento) error
	GetDocumento(ctx context.Context, id int) (*models.Documento, error)
	GetDocumentos(ctx context.Context, processoID int) ([]models.Documento, error)

	CreateUsuario(ctx context.Context, u *models.Usuario) error
	GetUsuarioByUsername(ctx context.Context, username string) (*models.Usuario, error)

	CountProcessos(ctx context.Context) (int, error)
	CountOrgaos(ctx context.Context) (int, error)
	CountFornecedores(ctx context.Context) (int, error)
	CountProcessosPorStatus(ctx context.Context) ([]db.StatusCount, error)
	GetAtividadesRecentes(ctx context.Context, limit int) ([]db.AtividadeRecente, error)
}
