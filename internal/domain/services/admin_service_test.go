package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"siwarga-http-service/internal/domain/models"
)

func newAdminService(t *testing.T) (InterfaceAdminService, InterfaceJWTService) {
	t.Helper()
	cfg := newTestConfig()
	jwtService := NewJWTService(cfg)
	return NewAdminService(newTestDB(t), cfg, jwtService), jwtService
}

func TestEnsureDefaultAdminSeedsOnce(t *testing.T) {
	db := newTestDB(t)
	cfg := newTestConfig()
	svc := NewAdminService(db, cfg, NewJWTService(cfg))

	require.NoError(t, svc.EnsureDefaultAdmin())
	require.NoError(t, svc.EnsureDefaultAdmin())

	var count int64
	require.NoError(t, db.Model(&models.Admin{}).Count(&count).Error)
	assert.Equal(t, int64(1), count)

	var admin models.Admin
	require.NoError(t, db.First(&admin, "username = ?", "admin").Error)
	// Stored passwords are bcrypt hashes, never plain text.
	assert.NotEqual(t, cfg.DefaultAdminPassword, admin.Password)
	assert.True(t, models.CheckPasswordHash(cfg.DefaultAdminPassword, admin.Password))
}

func TestLoginIssuesParsableToken(t *testing.T) {
	svc, jwtService := newAdminService(t)
	_, err := svc.CreateAdmin(AdminForm{Username: "petugas", Password: "rahasia123", Role: "admin_rt"})
	require.NoError(t, err)

	token, admin, err := svc.Login("petugas", "rahasia123")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := jwtService.ParseToken(token)
	require.NoError(t, err)
	assert.Equal(t, admin.ID, claims.AdminID)
	assert.Equal(t, "petugas", claims.Username)
	assert.Equal(t, "admin_rt", claims.Role)
}

func TestLoginRejectsBadCredentials(t *testing.T) {
	svc, _ := newAdminService(t)
	_, err := svc.CreateAdmin(AdminForm{Username: "petugas", Password: "rahasia123"})
	require.NoError(t, err)

	_, _, err = svc.Login("petugas", "salah")
	assert.ErrorIs(t, err, ErrPasswordIncorrect)

	// Unknown users fail the same way as bad passwords.
	_, _, err = svc.Login("siapa", "rahasia123")
	assert.ErrorIs(t, err, ErrPasswordIncorrect)
}

func TestCreateAdminRejectsDuplicateUsername(t *testing.T) {
	svc, _ := newAdminService(t)
	_, err := svc.CreateAdmin(AdminForm{Username: "petugas", Password: "rahasia123"})
	require.NoError(t, err)

	_, err = svc.CreateAdmin(AdminForm{Username: "petugas", Password: "lain"})
	assert.ErrorIs(t, err, ErrAdminExists)
}

func TestParseTokenRejectsTampering(t *testing.T) {
	cfg := newTestConfig()
	jwtService := NewJWTService(cfg)

	token, err := jwtService.GenerateToken(&RegistrarIdentity{ID: "x", Username: "petugas", Role: "admin_rw"})
	require.NoError(t, err)

	_, err = jwtService.ParseToken(token + "x")
	assert.ErrorIs(t, err, ErrInvalidToken)

	otherCfg := newTestConfig()
	otherCfg.JWTSecretKey = "another-secret"
	_, err = NewJWTService(otherCfg).ParseToken(token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}
