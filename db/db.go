package db

import (
	"context"

	"github.com/jmoiron/sqlx"

	"licitacoes/models"
)

type Storage struct {
	db *sqlx.DB
}

func NewStorage(db *sqlx.DB) *Storage {
	return &Storage{db: db}
}

// Orgao (Órgão Público)

func (s *Storage) CreateOrgao(ctx context.Context, o *models.Orgao) error {
	query := `
        INSERT INTO orgao (nome, cnpj, endereco, telefone, email)
        VALUES ($1, $2, $3, $4, $5)
        RETURNING id, created_at, updated_at`
	err := s.db.QueryRowContext(ctx, query, o.Nome, o.CNPJ, o.Endereco, o.Telefone, o.Email).
		Scan(&o.ID, &o.CreatedAt, &o.UpdatedAt)
	return translate(err)
}

func (s *Storage) GetOrgao(ctx context.Context, id int) (*models.Orgao, error) {
	o := &models.Orgao{}
	query := `SELECT * FROM orgao WHERE id=$1`
	err := s.db.GetContext(ctx, o, query, id)
	return o, translate(err)
}

func (s *Storage) GetOrgaos(ctx context.Context) ([]models.Orgao, error) {
	orgaos := []models.Orgao{}
	query := `SELECT * FROM orgao ORDER BY nome ASC`
	err := s.db.SelectContext(ctx, &orgaos, query)
	return orgaos, translate(err)
}

func (s *Storage) UpdateOrgao(ctx context.Context, o *models.Orgao) error {
	query := `
        UPDATE orgao
        SET nome=$1, cnpj=$2, endereco=$3, telefone=$4, email=$5, updated_at=NOW()
        WHERE id=$6`
	res, err := s.db.ExecContext(ctx, query, o.Nome, o.CNPJ, o.Endereco, o.Telefone, o.Email, o.ID)
	if err != nil {
		return translate(err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *Storage) DeleteOrgao(ctx context.Context, id int) error {
	res, err := s.db.ExecContext(ctx, `DELETE FROM orgao WHERE id=$1`, id)
	if err != nil {
		return translate(err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return ErrNotFound
	}
	return nil
}

// Secretaria

func (s *Storage) CreateSecretaria(ctx context.Context, sec *models.Secretaria) error {
	query := `
        INSERT INTO secretaria (orgao_id, nome)
        VALUES ($1, $2)
        RETURNING id, created_at, updated_at`
	err := s.db.QueryRowContext(ctx, query, sec.OrgaoID, sec.Nome).
		Scan(&sec.ID, &sec.CreatedAt, &sec.UpdatedAt)
	return translate(err)
}

func (s *Storage) GetSecretaria(ctx context.Context, id int) (*models.Secretaria, error) {
	sec := &models.Secretaria{}
	query := `SELECT * FROM secretaria WHERE id=$1`
	err := s.db.GetContext(ctx, sec, query, id)
	return sec, translate(err)
}

func (s *Storage) GetSecretarias(ctx context.Context) ([]models.Secretaria, error) {
	secretarias := []models.Secretaria{}
	query := `SELECT * FROM secretaria ORDER BY nome ASC`
	err := s.db.SelectContext(ctx, &secretarias, query)
	return secretarias, translate(err)
}

func (s *Storage) UpdateSecretaria(ctx context.Context, sec *models.Secretaria) error {
	query := `
        UPDATE secretaria
        SET orgao_id=$1, nome=$2, updated_at=NOW()
        WHERE id=$3`
	res, err := s.db.ExecContext(ctx, query, sec.OrgaoID, sec.Nome, sec.ID)
	if err != nil {
		return translate(err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *Storage) DeleteSecretaria(ctx context.Context, id int) error {
	res, err := s.db.ExecContext(ctx, `DELETE FROM secretaria WHERE id=$1`, id)
	if err != nil {
		return translate(err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return ErrNotFound
	}
	return nil
}

// Responsavel

func (s *Storage) CreateResponsavel(ctx context.Context, r *models.Responsavel) error {
	query := `
        INSERT INTO responsavel (nome, matricula, cargo, secretaria_id)
        VALUES ($1, $2, $3, $4)
        RETURNING id, created_at, updated_at`
	err := s.db.QueryRowContext(ctx, query, r.Nome, r.Matricula, r.Cargo, r.SecretariaID).
		Scan(&r.ID, &r.CreatedAt, &r.UpdatedAt)
	return translate(err)
}

func (s *Storage) GetResponsavel(ctx context.Context, id int) (*models.Responsavel, error) {
	r := &models.Responsavel{}
	query := `SELECT * FROM responsavel WHERE id=$1`
	err := s.db.GetContext(ctx, r, query, id)
	return r, translate(err)
}

func (s *Storage) GetResponsaveis(ctx context.Context) ([]models.Responsavel, error) {
	responsaveis := []models.Responsavel{}
	query := `SELECT * FROM responsavel ORDER BY nome ASC`
	err := s.db.SelectContext(ctx, &responsaveis, query)
	return responsaveis, translate(err)
}

func (s *Storage) UpdateResponsavel(ctx context.Context, r *models.Responsavel) error {
	query := `
        UPDATE responsavel
        SET nome=$1, matricula=$2, cargo=$3, secretaria_id=$4, updated_at=NOW()
        WHERE id=$5`
	res, err := s.db.ExecContext(ctx, query, r.Nome, r.Matricula, r.Cargo, r.SecretariaID, r.ID)
	if err != nil {
		return translate(err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *Storage) DeleteResponsavel(ctx context.Context, id int) error {
	res, err := s.db.ExecContext(ctx, `DELETE FROM responsavel WHERE id=$1`, id)
	if err != nil {
		return translate(err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return ErrNotFound
	}
	return nil
}

// Fornecedor

func (s *Storage) CreateFornecedor(ctx context.Context, f *models.Fornecedor) error {
	query := `
        INSERT INTO fornecedor (razao_social, nome_fantasia, cnpj, telefone, email)
        VALUES ($1, $2, $3, $4, $5)
        RETURNING id, created_at, updated_at`
	err := s.db.QueryRowContext(ctx, query, f.RazaoSocial, f.NomeFantasia, f.CNPJ, f.Telefone, f.Email).
		Scan(&f.ID, &f.CreatedAt, &f.UpdatedAt)
	return translate(err)
}

func (s *Storage) GetFornecedor(ctx context.Context, id int) (*models.Fornecedor, error) {
	f := &models.Fornecedor{}
	query := `SELECT * FROM fornecedor WHERE id=$1`
	err := s.db.GetContext(ctx, f, query, id)
	return f, translate(err)
}

func (s *Storage) GetFornecedores(ctx context.Context) ([]models.Fornecedor, error) {
	fornecedores := []models.Fornecedor{}
	query := `SELECT * FROM fornecedor ORDER BY razao_social ASC`
	err := s.db.SelectContext(ctx, &fornecedores, query)
	return fornecedores, translate(err)
}

func (s *Storage) UpdateFornecedor(ctx context.Context, f *models.Fornecedor) error {
	query := `
        UPDATE fornecedor
        SET razao_social=$1, nome_fantasia=$2, cnpj=$3, telefone=$4, email=$5, updated_at=NOW()
        WHERE id=$6`
	res, err := s.db.ExecContext(ctx, query, f.RazaoSocial, f.NomeFantasia, f.CNPJ, f.Telefone, f.Email, f.ID)
	if err != nil {
		return translate(err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *Storage) DeleteFornecedor(ctx context.Context, id int) error {
	res, err := s.db.ExecContext(ctx, `DELETE FROM fornecedor WHERE id=$1`, id)
	if err != nil {
		return translate(err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return ErrNotFound
	}
	return nil
}
