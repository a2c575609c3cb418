package services

import (
	"testing"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"siwarga-http-service/internal/domain/models"
	"siwarga-http-service/internal/domain/validation"
	"siwarga-http-service/internal/infrastructure/config"
)

// newTestDB opens an isolated in-memory database with the full schema
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger:         gormlogger.Default.LogMode(gormlogger.Silent),
		TranslateError: true,
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.AutoMigrate(
		&models.Resident{},
		&models.Household{},
		&models.FamilyMember{},
		&models.BirthReport{},
		&models.DeathReport{},
		&models.Admin{},
	))
	return db
}

func newTestConfig() *config.Config {
	return &config.Config{
		JWTSecretKey:         "test-secret",
		DefaultAdminPassword: "admin123",
		NeighborhoodName:     "RW 08",
	}
}

func residentForm(nik, name string) validation.ResidentForm {
	return validation.ResidentForm{
		NIK:           nik,
		Name:          name,
		BirthPlace:    "Bandung",
		BirthDate:     "1990-04-12",
		Gender:        models.GenderMale,
		Address:       "Jl. Melati No. 3",
		RT:            "002",
		Religion:      "Islam",
		MaritalStatus: models.MaritalMarried,
	}
}

// seedResident inserts a living resident and returns it
func seedResident(t *testing.T, db *gorm.DB, nik, name string) *models.Resident {
	t.Helper()
	resident := models.Resident{
		NIK:           nik,
		Name:          name,
		BirthPlace:    "Bandung",
		BirthDate:     "1990-04-12",
		Gender:        models.GenderMale,
		Address:       "Jl. Melati No. 3",
		RT:            "002",
		Religion:      "Islam",
		MaritalStatus: models.MaritalMarried,
	}
	require.NoError(t, db.Create(&resident).Error)
	return &resident
}

// seedHousehold creates a household through the service so membership rows
// and counters are in place
func seedHousehold(t *testing.T, db *gorm.DB, kk string, members []validation.MemberEntry) *models.Household {
	t.Helper()
	svc := NewHouseholdService(db, newTestConfig())
	household, violations, err := svc.CreateHousehold(validation.HouseholdForm{
		KKNumber: kk,
		Address:  "Jl. Melati No. 3",
		RT:       "002",
		Members:  members,
	})
	require.NoError(t, err)
	require.Empty(t, violations)
	return household
}
