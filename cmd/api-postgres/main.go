package main

//go:generate swag init --dir ../.. --generalInfo cmd/api-postgres/main.go --output ../../docs

import (
	"os"

	"notes-api/internal/app"
	"notes-api/internal/infra/db"
)

// @title           Notes API
// @version         1.0
// @description     REST API for creating and browsing notes stored in PostgreSQL or SQLite.

// @contact.name   API Support

// @license.name  MIT
// @license.url   https://opensource.org/licenses/MIT

// @host      localhost:8080
// @BasePath  /

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description JWT bearer token. Send the header as "Bearer {token}".

func main() {
	os.Exit(app.Main(db.Postgres))
}
