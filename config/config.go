package config

import (
	"os"
)

// Config хранит все конфигурации приложения
type Config struct {
	ServerPort   string
	SeedDemoData bool
}

// NewConfig создает и возвращает новый экземпляр Config
func NewConfig() *Config {
	port := os.Getenv("SERVER_PORT")
	if port == "" {
		port = "8080"
	}

	// Демонстрационный ростер включен по умолчанию: состояние живет
	// только в памяти, и пустой сервис после рестарта малоинтересен.
	seed := true
	if v := os.Getenv("SEED_DEMO_DATA"); v == "false" || v == "0" {
		seed = false
	}

	return &Config{
		ServerPort:   port,
		SeedDemoData: seed,
	}
}
