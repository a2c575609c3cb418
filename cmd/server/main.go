package main

import (
	"strings"

	"github.com/joho/godotenv"

	"siwarga-http-service/internal/app/routes"
	"siwarga-http-service/internal/domain/models"
	"siwarga-http-service/internal/domain/services"
	"siwarga-http-service/internal/domain/services/container"
	"siwarga-http-service/internal/infrastructure/config"
	"siwarga-http-service/internal/infrastructure/database"
	"siwarga-http-service/pkg/logger"
)

// @title SiWarga HTTP Service API
// @version 1.0
// @description Neighborhood resident and household registry with vital-event reporting
// @BasePath /api
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	if err := logger.SetupLogger(); err != nil {
		panic(err)
	}

	if err := godotenv.Load(); err != nil {
		logger.Info("No .env file found, using environment variables")
	}

	cfg := config.GetConfig()

	pool, err := database.NewConnectionPool(cfg)
	if err != nil {
		logger.Error("Failed to connect to the database:", err)
		return
	}
	defer func() {
		if err := pool.Close(); err != nil {
			logger.Warning("Failed to close database pool:", err)
		}
	}()

	if err := migrate(pool, cfg); err != nil {
		logger.Error("Failed to run migrations:", err)
		return
	}

	c := container.NewServiceContainer(pool.GetDB(), cfg)
	defer c.Close()

	adminService := c.GetService("admin").(services.InterfaceAdminService)
	if err := adminService.EnsureDefaultAdmin(); err != nil {
		logger.Error("Failed to seed default registrar account:", err)
		return
	}

	r := routes.SetupRouter(c, pool)
	logger.Info("Starting server on port", cfg.ServerPort)
	if err := r.Run(":" + cfg.ServerPort); err != nil {
		logger.Error("Server exited:", err)
	}
}

// migrate applies the schema. In "drop" mode all registry tables are
// recreated from scratch.
func migrate(pool *database.ConnectionPool, cfg *config.Config) error {
	db := pool.GetDB()
	tables := []interface{}{
		&models.Resident{},
		&models.Household{},
		&models.FamilyMember{},
		&models.BirthReport{},
		&models.DeathReport{},
		&models.Admin{},
	}

	if strings.EqualFold(cfg.DBMigrationMode, "drop") {
		logger.Warning("DB_MIGRATION_MODE=drop, recreating all registry tables")
		for i := len(tables) - 1; i >= 0; i-- {
			if err := db.Migrator().DropTable(tables[i]); err != nil {
				return err
			}
		}
	}
	return db.AutoMigrate(tables...)
}
