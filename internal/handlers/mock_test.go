package handlers_test

import (
	"context"
	"time"

	"licitacoes/db"
	"licitacoes/models"
)

// MockStorage implementa StorageInterface. Os campos *Func permitem
// sobrescrever o comportamento por teste; o padrão devolve dados fixos.
type MockStorage struct {
	CreateOrgaoErr        error
	CreateProcessoErr     error
	GetProcessoFunc       func(ctx context.Context, id int) (*models.Processo, error)
	GetProcessosFunc      func(ctx context.Context, f db.ProcessoFilter) ([]models.Processo, error)
	UpsertHistoricoFunc   func(ctx context.Context, processoID int, etapa string) (time.Time, bool, error)
	GetHistoricoFunc      func(ctx context.Context, processoID int) ([]models.HistoricoProcesso, error)
	GetHistoricoTodosFunc func(ctx context.Context, processoIDs []int) (map[int][]models.HistoricoProcesso, error)
	GetUsuarioFunc        func(ctx context.Context, username string) (*models.Usuario, error)

	StatusAtualizado []string // status gravados via UpdateProcessoStatus, em ordem
}

func (m *MockStorage) CreateOrgao(ctx context.Context, o *models.Orgao) error {
	if m.CreateOrgaoErr != nil {
		return m.CreateOrgaoErr
	}
	o.ID = 1
	return nil
}
func (m *MockStorage) GetOrgao(ctx context.Context, id int) (*models.Orgao, error) {
	return &models.Orgao{ID: id, Nome: "Prefeitura de Teste", CNPJ: "11.111.111/0001-11", Email: "contato@teste.gov.br"}, nil
}
func (m *MockStorage) GetOrgaos(ctx context.Context) ([]models.Orgao, error) {
	return []models.Orgao{{ID: 1, Nome: "Prefeitura de Teste", CNPJ: "11.111.111/0001-11"}}, nil
}
func (m *MockStorage) UpdateOrgao(ctx context.Context, o *models.Orgao) error { return nil }
func (m *MockStorage) DeleteOrgao(ctx context.Context, id int) error          { return nil }

func (m *MockStorage) CreateSecretaria(ctx context.Context, sec *models.Secretaria) error {
	sec.ID = 1
	return nil
}
func (m *MockStorage) GetSecretaria(ctx context.Context, id int) (*models.Secretaria, error) {
	return &models.Secretaria{ID: id, OrgaoID: 1, Nome: "Secretaria de Obras"}, nil
}
func (m *MockStorage) GetSecretarias(ctx context.Context) ([]models.Secretaria, error) {
	return []models.Secretaria{{ID: 1, OrgaoID: 1, Nome: "Secretaria de Obras"}}, nil
}
func (m *MockStorage) UpdateSecretaria(ctx context.Context, sec *models.Secretaria) error { return nil }
func (m *MockStorage) DeleteSecretaria(ctx context.Context, id int) error                 { return nil }

func (m *MockStorage) CreateResponsavel(ctx context.Context, r *models.Responsavel) error {
	r.ID = 1
	return nil
}
func (m *MockStorage) GetResponsavel(ctx context.Context, id int) (*models.Responsavel, error) {
	return &models.Responsavel{ID: id, Nome: "Maria da Silva", Matricula: "12345", Cargo: "Analista"}, nil
}
func (m *MockStorage) GetResponsaveis(ctx context.Context) ([]models.Responsavel, error) {
	return []models.Responsavel{{ID: 1, Nome: "Maria da Silva", Matricula: "12345", Cargo: "Analista"}}, nil
}
func (m *MockStorage) UpdateResponsavel(ctx context.Context, r *models.Responsavel) error { return nil }
func (m *MockStorage) DeleteResponsavel(ctx context.Context, id int) error                { return nil }

func (m *MockStorage) CreateFornecedor(ctx context.Context, f *models.Fornecedor) error {
	f.ID = 1
	return nil
}
func (m *MockStorage) GetFornecedor(ctx context.Context, id int) (*models.Fornecedor, error) {
	return &models.Fornecedor{ID: id, RazaoSocial: "Fornecedora Ltda", CNPJ: "22.222.222/0001-22", Email: "vendas@fornecedora.com.br"}, nil
}
func (m *MockStorage) GetFornecedores(ctx context.Context) ([]models.Fornecedor, error) {
	return []models.Fornecedor{{ID: 1, RazaoSocial: "Fornecedora Ltda", CNPJ: "22.222.222/0001-22"}}, nil
}
func (m *MockStorage) UpdateFornecedor(ctx context.Context, f *models.Fornecedor) error { return nil }
func (m *MockStorage) DeleteFornecedor(ctx context.Context, id int) error               { return nil }

func (m *MockStorage) CreateProcesso(ctx context.Context, p *models.Processo) error {
	if m.CreateProcessoErr != nil {
		return m.CreateProcessoErr
	}
	p.ID = 1
	return nil
}
func (m *MockStorage) GetProcesso(ctx context.Context, id int) (*models.Processo, error) {
	if m.GetProcessoFunc != nil {
		return m.GetProcessoFunc(ctx, id)
	}
	return &models.Processo{
		ID:             id,
		NumeroProcesso: "001/2026",
		OrgaoID:        1,
		Objeto:         "Aquisição de material de escritório",
		Status:         models.StatusFaseInterna,
		Modalidade:     "PREGAO",
		DataAbertura:   time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC),
	}, nil
}
func (m *MockStorage) GetProcessos(ctx context.Context, f db.ProcessoFilter) ([]models.Processo, error) {
	if m.GetProcessosFunc != nil {
		return m.GetProcessosFunc(ctx, f)
	}
	p, _ := m.GetProcesso(ctx, 1)
	return []models.Processo{*p}, nil
}
func (m *MockStorage) UpdateProcesso(ctx context.Context, p *models.Processo) error { return nil }
func (m *MockStorage) UpdateProcessoStatus(ctx context.Context, id int, status string) error {
	m.StatusAtualizado = append(m.StatusAtualizado, status)
	return nil
}
func (m *MockStorage) DeleteProcesso(ctx context.Context, id int) error { return nil }

func (m *MockStorage) UpsertHistorico(ctx context.Context, processoID int, etapa string) (time.Time, bool, error) {
	if m.UpsertHistoricoFunc != nil {
		return m.UpsertHistoricoFunc(ctx, processoID, etapa)
	}
	return time.Date(2026, 3, 15, 10, 0, 0, 0, time.UTC), true, nil
}
func (m *MockStorage) GetHistorico(ctx context.Context, processoID int) ([]models.HistoricoProcesso, error) {
	if m.GetHistoricoFunc != nil {
		return m.GetHistoricoFunc(ctx, processoID)
	}
	return []models.HistoricoProcesso{}, nil
}
func (m *MockStorage) GetHistoricoPorProcessos(ctx context.Context, processoIDs []int) (map[int][]models.HistoricoProcesso, error) {
	if m.GetHistoricoTodosFunc != nil {
		return m.GetHistoricoTodosFunc(ctx, processoIDs)
	}
	return map[int][]models.HistoricoProcesso{}, nil
}

func (m *MockStorage) CreateDocumento(ctx context.Context, d *models.Documento) error {
	d.ID = 1
	return nil
}
func (m *MockStorage) GetDocumento(ctx context.Context, id int) (*models.Documento, error) {
	return &models.Documento{ID: id, ProcessoID: 1, Tipo: "DFD", Arquivo: "documentos/2026/03/DFD_001-2026.docx"}, nil
}
func (m *MockStorage) GetDocumentos(ctx context.Context, processoID int) ([]models.Documento, error) {
	return []models.Documento{{ID: 1, ProcessoID: 1, Tipo: "DFD", Arquivo: "documentos/2026/03/DFD_001-2026.docx"}}, nil
}

func (m *MockStorage) CreateUsuario(ctx context.Context, u *models.Usuario) error {
	u.ID = 1
	return nil
}
func (m *MockStorage) GetUsuarioByUsername(ctx context.Context, username string) (*models.Usuario, error) {
	if m.GetUsuarioFunc != nil {
		return m.GetUsuarioFunc(ctx, username)
	}
	return nil, db.ErrNotFound
}

func (m *MockStorage) CountProcessos(ctx context.Context) (int, error)    { return 3, nil }
func (m *MockStorage) CountOrgaos(ctx context.Context) (int, error)       { return 1, nil }
func (m *MockStorage) CountFornecedores(ctx context.Context) (int, error) { return 2, nil }
func (m *MockStorage) CountProcessosPorStatus(ctx context.Context) ([]db.StatusCount, error) {
	return []db.StatusCount{{Status: models.StatusFaseInterna, Count: 2}, {Status: models.StatusHomologado, Count: 1}}, nil
}
func (m *MockStorage) GetAtividadesRecentes(ctx context.Context, limit int) ([]db.AtividadeRecente, error) {
	return []db.AtividadeRecente{{ProcessoID: 1, NumeroProcesso: "001/2026", Etapa: "DFD", DataConclusao: time.Date(2026, 3, 15, 10, 0, 0, 0, time.UTC)}}, nil
}
