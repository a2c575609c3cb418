package routes

import (
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"siwarga-http-service/internal/app/controllers"
	"siwarga-http-service/internal/app/middleware"
	"siwarga-http-service/internal/domain/services"
	"siwarga-http-service/internal/domain/services/container"
	"siwarga-http-service/internal/infrastructure/database"
)

// SetupRouter builds the gin engine with all registry routes
func SetupRouter(c *container.ServiceContainer, pool *database.ConnectionPool) *gin.Engine {
	r := gin.New()
	r.Use(gin.Logger(), gin.Recovery())
	r.Use(middleware.CORS())
	r.Use(middleware.RateLimiter(20, 40))

	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	jwtService := c.GetService("jwt").(services.InterfaceJWTService)

	api := r.Group("/api")
	{
		// Public routes
		api.GET("/ping", controllers.HandleHealthFunc(c, pool, "ping"))
		api.GET("/health", controllers.HandleHealthFunc(c, pool, "health"))
		api.POST("/auth/login", controllers.HandleJWTFunc(c, "login"))

		// Authenticated routes
		auth := api.Group("")
		auth.Use(middleware.Authenticate(jwtService))
		{
			residents := auth.Group("/residents")
			{
				residents.GET("", controllers.HandleResidentFunc(c, "getResidents"))
				residents.GET("/:id", controllers.HandleResidentFunc(c, "getResident"))
				residents.POST("", controllers.HandleResidentFunc(c, "createResident"))
				residents.PUT("/:id", controllers.HandleResidentFunc(c, "updateResident"))
				residents.DELETE("/:id", controllers.HandleResidentFunc(c, "deleteResident"))
			}

			households := auth.Group("/households")
			{
				households.GET("", controllers.HandleHouseholdFunc(c, "getHouseholds"))
				households.GET("/:id", controllers.HandleHouseholdFunc(c, "getHousehold"))
				households.POST("", controllers.HandleHouseholdFunc(c, "createHousehold"))
				households.PUT("/:id", controllers.HandleHouseholdFunc(c, "updateHousehold"))
				households.DELETE("/:id", controllers.HandleHouseholdFunc(c, "deleteHousehold"))
				households.GET("/:id/members", controllers.HandleHouseholdFunc(c, "getMembers"))
				households.GET("/:id/members/available", controllers.HandleHouseholdFunc(c, "getAvailableResidents"))
				households.POST("/:id/members", controllers.HandleHouseholdFunc(c, "addMember"))
				households.DELETE("/:id/members/:resident_id", controllers.HandleHouseholdFunc(c, "removeMember"))
			}

			birthReports := auth.Group("/birth-reports")
			{
				birthReports.GET("", controllers.HandleBirthReportFunc(c, "getBirthReports"))
				birthReports.GET("/:id", controllers.HandleBirthReportFunc(c, "getBirthReport"))
				birthReports.POST("", controllers.HandleBirthReportFunc(c, "createBirthReport"))
				birthReports.PUT("/:id", controllers.HandleBirthReportFunc(c, "updateBirthReport"))
				birthReports.DELETE("/:id", controllers.HandleBirthReportFunc(c, "deleteBirthReport"))
			}

			deathReports := auth.Group("/death-reports")
			{
				deathReports.GET("", controllers.HandleDeathReportFunc(c, "getDeathReports"))
				deathReports.GET("/:id", controllers.HandleDeathReportFunc(c, "getDeathReport"))
				deathReports.POST("", controllers.HandleDeathReportFunc(c, "createDeathReport"))
				deathReports.PUT("/:id", controllers.HandleDeathReportFunc(c, "updateDeathReport"))
				deathReports.DELETE("/:id", controllers.HandleDeathReportFunc(c, "deleteDeathReport"))
			}

			stats := auth.Group("/stats")
			{
				stats.GET("/dashboard", controllers.HandleStatsFunc(c, "getDashboard"))
				stats.GET("/distributions", controllers.HandleStatsFunc(c, "getDistributions"))
			}

			export := auth.Group("/export")
			{
				export.GET("/residents.xlsx", controllers.HandleExportFunc(c, "exportResidents"))
				export.GET("/households.xlsx", controllers.HandleExportFunc(c, "exportHouseholds"))
			}

			admins := auth.Group("/admins")
			{
				admins.GET("", controllers.HandleAdminFunc(c, "getAdmins"))
				admins.GET("/:id", controllers.HandleAdminFunc(c, "getAdmin"))
				admins.POST("", controllers.HandleAdminFunc(c, "createAdmin"))
				admins.PUT("/:id", controllers.HandleAdminFunc(c, "updateAdmin"))
				admins.DELETE("/:id", controllers.HandleAdminFunc(c, "deleteAdmin"))
			}
		}
	}

	return r
}
