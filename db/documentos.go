package db

import (
	"context"
	"errors"

	"licitacoes/models"
)

func (s *Storage) CreateDocumento(ctx context.Context, d *models.Documento) error {
	query := `
        INSERT INTO documento (processo_id, tipo, arquivo, gerado_por)
        VALUES ($1, $2, $3, $4)
        RETURNING id, data_geracao`
	err := s.db.QueryRowContext(ctx, query, d.ProcessoID, d.Tipo, d.Arquivo, d.GeradoPor).
		Scan(&d.ID, &d.DataGeracao)
	err = translate(err)
	if errors.Is(err, ErrForeignKey) {
		return ErrNotFound
	}
	return err
}

func (s *Storage) GetDocumento(ctx context.Context, id int) (*models.Documento, error) {
	d := &models.Documento{}
	query := `SELECT * FROM documento WHERE id=$1`
	err := s.db.GetContext(ctx, d, query, id)
	return d, translate(err)
}

// GetDocumentos lista os documentos gerados, mais recentes primeiro.
// processoID zero lista todos.
func (s *Storage) GetDocumentos(ctx context.Context, processoID int) ([]models.Documento, error) {
	documentos := []models.Documento{}
	if processoID > 0 {
		query := `SELECT * FROM documento WHERE processo_id=$1 ORDER BY data_geracao DESC, id DESC`
		err := s.db.SelectContext(ctx, &documentos, query, processoID)
		return documentos, translate(err)
	}
	query := `SELECT * FROM documento ORDER BY data_geracao DESC, id DESC`
	err := s.db.SelectContext(ctx, &documentos, query)
	return documentos, translate(err)
}
