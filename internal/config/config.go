package config

import "os"

// Config reúne a configuração do processo, montada uma única vez na
// inicialização e passada explicitamente aos componentes que precisam
// dela. Nenhum componente lê variáveis de ambiente por conta própria.
type Config struct {
	ServerAddr    string
	PostgresConn  string
	DocumentosDir string
	JWTSigningKey string
}

// FromEnv monta a configuração a partir do ambiente, com padrões de
// desenvolvimento onde for seguro.
func FromEnv() Config {
	cfg := Config{
		ServerAddr:    os.Getenv("SERVER_ADDRESS"),
		PostgresConn:  os.Getenv("POSTGRES_CONN"),
		DocumentosDir: os.Getenv("DOCUMENTOS_DIR"),
		JWTSigningKey: os.Getenv("JWT_SIGNING_KEY"),
	}
	if cfg.ServerAddr == "" {
		cfg.ServerAddr = "0.0.0.0:8080"
	}
	if cfg.DocumentosDir == "" {
		cfg.DocumentosDir = "./media"
	}
	return cfg
}
