package config

import (
	"log"
	"os"

	"github.com/joho/godotenv"
)

var loaded bool

// Config lê uma variável do .env (carregado uma única vez) ou do ambiente.
func Config(key string) string {
	if !loaded {
		if err := godotenv.Load(".env"); err != nil {
			log.Println("arquivo .env não encontrado, usando variáveis do ambiente")
		}
		loaded = true
	}
	return os.Getenv(key)
}
