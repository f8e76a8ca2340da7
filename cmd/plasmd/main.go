package main

import (
	"context"
	"database/sql"
	"log"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"github.com/codeodor/plasm/cmd"
	"github.com/codeodor/plasm/internal/core/logger"
	"github.com/codeodor/plasm/internal/database"
	"github.com/codeodor/plasm/internal/pets"
	"github.com/codeodor/plasm/internal/repository"
	"github.com/codeodor/plasm/internal/routes"
)

func main() {
	// Load .env file, but don't overwrite system environment variables
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: No .env file found, falling back to system environment variables.")
	}

	// Subcommands (migrate, seed) short-circuit the server.
	if len(os.Args) > 1 {
		cmd.Execute(context.Background())
		return
	}

	zapLog := logger.NewLogger()
	defer zapLog.Sync()

	var db *sql.DB
	var dialect string
	var err error

	if os.Getenv("PLASMD_DEMO") == "1" {
		// Demo mode runs against an in-memory catalog, no postgres needed.
		db, err = database.NewSQLiteConnection("")
		dialect = database.DialectSQLite
	} else {
		dbURL := os.Getenv("DATABASE_URL")
		if dbURL == "" {
			zapLog.Fatal("DATABASE_URL is not set (or run with PLASMD_DEMO=1)")
		}
		db, err = database.NewPostgresConnection(dbURL)
		dialect = database.DialectPostgres
	}
	if err != nil {
		zapLog.Fatal("could not connect to the database: " + err.Error())
	}
	defer db.Close()

	repo := repository.NewRepository(db, dialect)
	petRepo := pets.NewPetRepository(repo)

	if dialect == database.DialectSQLite {
		if _, err := db.Exec(pets.DemoSchema); err != nil {
			zapLog.Fatal("could not create demo schema: " + err.Error())
		}
		if err := petRepo.Seed(pets.DemoPets()); err != nil {
			zapLog.Fatal("could not seed demo catalog: " + err.Error())
		}
		zapLog.Info("Demo mode: in-memory catalog seeded")
	}

	router := gin.Default()
	routes.RegisterRoutes(router, zapLog, pets.NewPetHandler(petRepo))

	host := os.Getenv("APP_HOST")
	if host == "" {
		host = "localhost:8080"
	}
	zapLog.Info("Starting server on " + host)
	if err := router.Run(host); err != nil {
		zapLog.Fatal(err.Error())
	}
}
