// Command api-sqlite serves the notes API from a local SQLite file
// (SQLITE_PATH, default notes.db).
package main

import (
	"os"

	"notes-api/internal/app"
	"notes-api/internal/infra/db"
)

func main() {
	os.Exit(app.Main(db.SQLite))
}
