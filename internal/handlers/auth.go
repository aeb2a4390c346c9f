package handlers

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"

	"licitacoes/db"
	"licitacoes/models"
)

type contextKeyUsername struct{}

// UsernameFromContext devolve o usuário autenticado da requisição ("" se
// a rota não passou pelo middleware).
func UsernameFromContext(ctx context.Context) string {
	username, _ := ctx.Value(contextKeyUsername{}).(string)
	return username
}

// RequireAuth exige um token Bearer assinado com a chave do servidor e
// coloca o username no contexto da requisição.
func RequireAuth(signingKey string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			const bearerPrefix = "Bearer "
			authHeader := r.Header.Get("Authorization")
			if !strings.HasPrefix(authHeader, bearerPrefix) {
				http.Error(w, "Não autenticado", http.StatusUnauthorized)
				return
			}
			tokenString := strings.TrimPrefix(authHeader, bearerPrefix)

			token, err := jwt.Parse(tokenString, func(t *jwt.Token) (interface{}, error) {
				if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
					return nil, jwt.ErrSignatureInvalid
				}
				return []byte(signingKey), nil
			})
			if err != nil || !token.Valid {
				http.Error(w, "Token inválido ou expirado", http.StatusUnauthorized)
				return
			}
			sub, err := token.Claims.GetSubject()
			if err != nil || sub == "" {
				http.Error(w, "Token inválido ou expirado", http.StatusUnauthorized)
				return
			}
			ctx := context.WithValue(r.Context(), contextKeyUsername{}, sub)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

type credenciais struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// RegisterHandler cria um usuário com senha bcrypt.
func (h *Handler) RegisterHandler(w http.ResponseWriter, r *http.Request) {
	var cred credenciais
	if !decodeBody(w, r, &cred) {
		return
	}
	cred.Username = strings.TrimSpace(cred.Username)
	if cred.Username == "" || len(cred.Username) > 100 {
		http.Error(w, "username é obrigatório (máx. 100)", http.StatusBadRequest)
		return
	}
	if len(cred.Password) < 8 {
		http.Error(w, "senha deve ter ao menos 8 caracteres", http.StatusBadRequest)
		return
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(cred.Password), bcrypt.DefaultCost)
	if err != nil {
		http.Error(w, "Erro interno", http.StatusInternalServerError)
		return
	}
	usuario := &models.Usuario{Username: cred.Username, PasswordHash: string(hash)}
	if err := h.Store.CreateUsuario(r.Context(), usuario); err != nil {
		storageError(w, err, "Usuário não encontrado")
		return
	}
	writeJSON(w, http.StatusCreated, usuario)
}

// LoginHandler valida a senha e emite um JWT de 24h.
func (h *Handler) LoginHandler(w http.ResponseWriter, r *http.Request) {
	var cred credenciais
	if !decodeBody(w, r, &cred) {
		return
	}

	usuario, err := h.Store.GetUsuarioByUsername(r.Context(), cred.Username)
	if err != nil {
		if errors.Is(err, db.ErrNotFound) {
			http.Error(w, "Usuário ou senha incorretos", http.StatusUnauthorized)
			return
		}
		http.Error(w, "Erro interno", http.StatusInternalServerError)
		return
	}
	if bcrypt.CompareHashAndPassword([]byte(usuario.PasswordHash), []byte(cred.Password)) != nil {
		http.Error(w, "Usuário ou senha incorretos", http.StatusUnauthorized)
		return
	}

	now := time.Now()
	claims := jwt.RegisteredClaims{
		Subject:   usuario.Username,
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(24 * time.Hour)),
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(h.Cfg.JWTSigningKey))
	if err != nil {
		http.Error(w, "Erro interno", http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"token": token})
}
