package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"siwarga-http-service/internal/domain/models"
	"siwarga-http-service/internal/domain/validation"
)

func TestCreateResidentAppliesDefaults(t *testing.T) {
	db := newTestDB(t)
	svc := NewResidentService(db, newTestConfig())

	resident, violations, err := svc.CreateResident(residentForm("3273010101900001", "Budi Santoso"))
	require.NoError(t, err)
	require.Empty(t, violations)
	require.NotNil(t, resident)

	assert.NotEmpty(t, resident.ID)
	assert.Equal(t, models.LifeStatusAlive, resident.LifeStatus)
	assert.Equal(t, models.DefaultNationality, resident.Nationality)
	assert.True(t, resident.IsAlive())
}

func TestCreateResidentValidation(t *testing.T) {
	db := newTestDB(t)
	svc := NewResidentService(db, newTestConfig())

	form := residentForm("12345", "")
	form.Gender = "laki"
	form.BirthDate = "12-04-1990"
	_, violations, err := svc.CreateResident(form)
	require.NoError(t, err)
	assert.Contains(t, violations, "nik")
	assert.Contains(t, violations, "name")
	assert.Contains(t, violations, "gender")
	assert.Contains(t, violations, "birth_date")

	var count int64
	require.NoError(t, db.Model(&models.Resident{}).Count(&count).Error)
	assert.Zero(t, count)
}

func TestCreateResidentRejectsDuplicateNIK(t *testing.T) {
	db := newTestDB(t)
	seedResident(t, db, "3273010101900001", "Budi Santoso")
	svc := NewResidentService(db, newTestConfig())

	created, violations, err := svc.CreateResident(residentForm("3273010101900001", "Budi Kloning"))
	require.NoError(t, err)
	assert.Nil(t, created)
	assert.Contains(t, violations, "nik")

	var count int64
	require.NoError(t, db.Model(&models.Resident{}).Count(&count).Error)
	assert.EqualValues(t, 1, count)
}

func TestGetResidentsFilters(t *testing.T) {
	db := newTestDB(t)
	a := seedResident(t, db, "3273010101900001", "Budi Santoso")
	b := seedResident(t, db, "3273010101900002", "Siti Aminah")
	require.NoError(t, db.Model(b).Updates(map[string]interface{}{
		"gender": models.GenderFemale,
		"rt":     "005",
	}).Error)
	require.NoError(t, db.Model(a).Update("life_status", models.LifeStatusDeceased).Error)

	svc := NewResidentService(db, newTestConfig())
	pq := &models.PaginationQuery{PageNum: 1, PageSize: 10}

	residents, result, err := svc.GetResidents(ResidentFilter{RT: "005"}, pq)
	require.NoError(t, err)
	assert.Equal(t, 1, result.Total)
	require.Len(t, residents, 1)
	assert.Equal(t, b.ID, residents[0].ID)

	residents, _, err = svc.GetResidents(ResidentFilter{LifeStatus: models.LifeStatusDeceased}, pq)
	require.NoError(t, err)
	require.Len(t, residents, 1)
	assert.Equal(t, a.ID, residents[0].ID)

	residents, _, err = svc.GetResidents(ResidentFilter{Search: "Siti"}, pq)
	require.NoError(t, err)
	require.Len(t, residents, 1)
	assert.Equal(t, b.ID, residents[0].ID)

	residents, _, err = svc.GetResidents(ResidentFilter{Search: "327301010190"}, pq)
	require.NoError(t, err)
	assert.Len(t, residents, 2)
}

func TestUpdateResidentChecksNIKAgainstOthers(t *testing.T) {
	db := newTestDB(t)
	seedResident(t, db, "3273010101900001", "Budi Santoso")
	b := seedResident(t, db, "3273010101900002", "Siti Aminah")
	svc := NewResidentService(db, newTestConfig())

	// Keeping your own NIK is fine.
	form := residentForm("3273010101900002", "Siti Aminah Baru")
	updated, violations, err := svc.UpdateResident(b.ID, form)
	require.NoError(t, err)
	require.Empty(t, violations)
	assert.Equal(t, "Siti Aminah Baru", updated.Name)

	// Taking another resident's NIK is not.
	form.NIK = "3273010101900001"
	_, violations, err = svc.UpdateResident(b.ID, form)
	require.NoError(t, err)
	assert.Contains(t, violations, "nik")
}

func TestDeleteResidentBlocksHeadOfHousehold(t *testing.T) {
	db := newTestDB(t)
	head := seedResident(t, db, "3273010101900001", "Budi Santoso")
	seedHousehold(t, db, "3273012345678901", []validation.MemberEntry{
		{ResidentID: head.ID, Relation: models.RelationHead},
	})

	svc := NewResidentService(db, newTestConfig())
	assert.ErrorIs(t, svc.DeleteResident(head.ID), ErrResidentIsHead)
}

func TestDeleteResidentDetachesMemberships(t *testing.T) {
	db := newTestDB(t)
	head := seedResident(t, db, "3273010101900001", "Budi Santoso")
	wife := seedResident(t, db, "3273010101900002", "Siti Aminah")
	household := seedHousehold(t, db, "3273012345678901", []validation.MemberEntry{
		{ResidentID: head.ID, Relation: models.RelationHead},
		{ResidentID: wife.ID, Relation: models.RelationSpouse},
	})

	svc := NewResidentService(db, newTestConfig())
	require.NoError(t, svc.DeleteResident(wife.ID))

	var stored models.Household
	require.NoError(t, db.First(&stored, "id = ?", household.ID).Error)
	assert.Equal(t, 1, stored.MemberCount)

	var memberships int64
	require.NoError(t, db.Model(&models.FamilyMember{}).
		Where("resident_id = ?", wife.ID).Count(&memberships).Error)
	assert.Zero(t, memberships)

	assert.ErrorIs(t, svc.DeleteResident(wife.ID), ErrResidentNotFound)
}
