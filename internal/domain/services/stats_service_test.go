package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"siwarga-http-service/internal/domain/models"
	"siwarga-http-service/internal/domain/validation"
)

func TestGetDashboardCounters(t *testing.T) {
	db := newTestDB(t)
	head := seedResident(t, db, "3273010101900001", "Budi Santoso")
	wife := seedResident(t, db, "3273010101900002", "Siti Aminah")
	require.NoError(t, db.Model(wife).Update("gender", models.GenderFemale).Error)
	seedHousehold(t, db, "3273012345678901", []validation.MemberEntry{
		{ResidentID: head.ID, Relation: models.RelationHead},
		{ResidentID: wife.ID, Relation: models.RelationSpouse},
	})

	vital := NewVitalEventService(db, newTestConfig(), nil)
	_, _, err := vital.RegisterDeath(validation.DeathReportForm{
		ResidentID: wife.ID,
		DeathDate:  "2024-07-15",
		DeathPlace: "Bandung",
	})
	require.NoError(t, err)

	svc := NewStatsService(db, newTestConfig(), nil)
	stats, err := svc.GetDashboard(context.Background())
	require.NoError(t, err)

	assert.Equal(t, int64(2), stats.TotalResidents)
	assert.Equal(t, int64(1), stats.AliveResidents)
	assert.Equal(t, int64(1), stats.DeceasedResidents)
	assert.Equal(t, int64(1), stats.MaleResidents)
	assert.Equal(t, int64(1), stats.FemaleResidents)
	assert.Equal(t, int64(1), stats.TotalHouseholds)
	assert.Equal(t, int64(0), stats.TotalBirthReports)
	assert.Equal(t, int64(1), stats.TotalDeathReports)
}

func TestGetDistributionsCoversLivingResidentsOnly(t *testing.T) {
	db := newTestDB(t)
	a := seedResident(t, db, "3273010101900001", "Budi Santoso")
	b := seedResident(t, db, "3273010101900002", "Siti Aminah")
	require.NoError(t, db.Model(b).Updates(map[string]interface{}{
		"rt":          "005",
		"life_status": models.LifeStatusDeceased,
	}).Error)

	svc := NewStatsService(db, newTestConfig(), nil)
	stats, err := svc.GetDistributions(context.Background())
	require.NoError(t, err)

	require.Len(t, stats.ByRT, 1)
	assert.Equal(t, a.RT, stats.ByRT[0].Label)
	assert.Equal(t, int64(1), stats.ByRT[0].Count)

	var total int64
	for _, bucket := range stats.ByAgeGroup {
		total += bucket.Count
	}
	assert.Equal(t, int64(1), total)

	require.Len(t, stats.ByReligion, 1)
	assert.Equal(t, "Islam", stats.ByReligion[0].Label)
}
