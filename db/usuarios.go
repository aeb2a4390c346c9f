package db

import (
	"context"

	"licitacoes/models"
)

func (s *Storage) CreateUsuario(ctx context.Context, u *models.Usuario) error {
	query := `
        INSERT INTO usuario (username, password_hash)
        VALUES ($1, $2)
        RETURNING id, created_at`
	err := s.db.QueryRowContext(ctx, query, u.Username, u.PasswordHash).
		Scan(&u.ID, &u.CreatedAt)
	return translate(err)
}

func (s *Storage) GetUsuarioByUsername(ctx context.Context, username string) (*models.Usuario, error) {
	u := &models.Usuario{}
	query := `SELECT * FROM usuario WHERE username=$1`
	err := s.db.GetContext(ctx, u, query, username)
	return u, translate(err)
}
