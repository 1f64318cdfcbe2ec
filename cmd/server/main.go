package main

import (
	"fmt"
	"log"
	"net/http"

	"github.com/joho/godotenv"

	"github.com/diceone/timeshifter/config"
	"github.com/diceone/timeshifter/internal/routes"
	"github.com/diceone/timeshifter/internal/schedule"
)

func main() {
	// .env не обязателен: в контейнере конфигурация приходит из окружения
	if err := godotenv.Load(); err != nil {
		log.Println("Файл .env не найден, используем переменные окружения")
	}

	cfg := config.NewConfig()

	store := schedule.NewStore(nil)
	if cfg.SeedDemoData {
		store.Seed()
	}

	router := routes.Setup(store)

	serverAddress := fmt.Sprintf(":%s", cfg.ServerPort)
	log.Printf("Server starting on %s", serverAddress)
	log.Fatal(http.ListenAndServe(serverAddress, router))
}
