package main

import (
	"log"
	"os"
	"strings"

	"suponos_backend/internal/database"
	"suponos_backend/internal/router"
	"suponos_backend/internal/storage"
	"suponos_backend/pkg/utils"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
)

func main() {
	// Load .env if present; real deployments set the environment directly.
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment as-is")
	}

	utils.InitLogger()
	utils.InitJWT(utils.Getenv("JWT_SECRET", ""))

	dataDir := utils.Getenv("SEED_DATA_DIR", "data")
	store, err := buildStorage(dataDir)
	if err != nil {
		utils.LogError(err, "Failed to initialize storage")
		log.Fatalf("Failed to initialize storage: %v", err)
	}

	engine := gin.Default()
	engine.Use(utils.GinLogger())
	engine.Use(cors.New(corsConfig()))

	router.Setup(engine, store)

	port := utils.Getenv("PORT", "8080")
	utils.LogInfo("Server starting", map[string]interface{}{
		"port":    port,
		"backend": utils.Getenv("STORAGE_BACKEND", "memory"),
	})

	if err := engine.Run(":" + port); err != nil {
		utils.LogError(err, "Failed to start server")
		log.Fatalf("Failed to start server: %v", err)
	}
}

// buildStorage selects the storage backend from STORAGE_BACKEND: "postgres"
// connects to the configured database and runs the fixture migration,
// anything else serves from memory seeded with the same fixtures.
func buildStorage(dataDir string) (storage.Storage, error) {
	if utils.Getenv("STORAGE_BACKEND", "memory") != "postgres" {
		return storage.NewMemoryStorage(dataDir), nil
	}

	db, err := database.InitDB(
		utils.Getenv("DB_HOST", "localhost"),
		utils.Getenv("DB_PORT", "5432"),
		utils.Getenv("DB_USER", "suponos_user"),
		utils.Getenv("DB_PASSWORD", "suponos_password"),
		utils.Getenv("DB_NAME", "suponos_db"),
		utils.Getenv("DB_SSLMODE", "disable"),
		utils.Getenv("DB_SCHEMA_PATH", "db/schema.sql"),
	)
	if err != nil {
		return nil, err
	}
	utils.LogInfo("Database initialized", map[string]interface{}{"configured_from_env": true})

	return storage.NewPostgresStorage(db, storage.NewSeedLoader(dataDir)), nil
}

func corsConfig() cors.Config {
	var allowedOrigins []string
	if env := os.Getenv("CORS_ALLOWED_ORIGINS"); env != "" {
		allowedOrigins = strings.Split(env, ",")
	} else {
		allowedOrigins = []string{"http://localhost:3000", "http://localhost:5173"}
	}

	config := cors.DefaultConfig()
	config.AllowOrigins = allowedOrigins
	config.AllowMethods = []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"}
	config.AllowHeaders = []string{"Origin", "Content-Length", "Content-Type", "Authorization"}
	config.AllowCredentials = true
	return config
}
