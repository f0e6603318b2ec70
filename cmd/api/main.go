package main

import (
	_ "gestao_igreja/docs"
	"gestao_igreja/internal/adapter/http/routes"

	_ "github.com/joho/godotenv/autoload"
)

// @title           Gestão Igreja API
// @version         1.0
// @description     Church administration: members, finance, agenda, EBD, congregations, patrimônio, ação social and AI insights.

// @host      localhost:8080
// @BasePath  /v1

func main() {
	routes.Run()
}
