package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"siwarga-http-service/internal/domain/models"
	"siwarga-http-service/internal/domain/validation"
)

func birthForm() validation.BirthReportForm {
	return validation.BirthReportForm{
		BabyName:   "Dewi Santoso",
		Gender:     models.GenderFemale,
		BirthDate:  "2024-06-01",
		BirthPlace: "Bandung",
		FatherName: "Budi Santoso",
		MotherName: "Siti Aminah",
	}
}

func TestRegisterBirthStandalone(t *testing.T) {
	db := newTestDB(t)
	svc := NewVitalEventService(db, newTestConfig(), nil)

	result, violations, err := svc.RegisterBirth(birthForm())
	require.NoError(t, err)
	require.Empty(t, violations)
	require.NotNil(t, result.Report)

	assert.Empty(t, result.Warnings)
	assert.Nil(t, result.Resident)
	assert.Nil(t, result.Membership)

	var residents int64
	require.NoError(t, db.Model(&models.Resident{}).Count(&residents).Error)
	assert.Zero(t, residents)
}

func TestRegisterBirthWithHouseholdEnrollment(t *testing.T) {
	db := newTestDB(t)
	head := seedResident(t, db, "3273010101900001", "Budi Santoso")
	household := seedHousehold(t, db, "3273012345678901", []validation.MemberEntry{
		{ResidentID: head.ID, Relation: models.RelationHead},
	})

	svc := NewVitalEventService(db, newTestConfig(), nil)
	form := birthForm()
	form.BabyNIK = "3273010106240001"
	form.HouseholdID = household.ID
	form.Relation = models.RelationChild
	form.RegisterResident = true

	result, violations, err := svc.RegisterBirth(form)
	require.NoError(t, err)
	require.Empty(t, violations)
	require.NotNil(t, result.Resident)
	require.NotNil(t, result.Membership)
	assert.Empty(t, result.Warnings)

	// The baby inherits the household address and the head's religion.
	assert.Equal(t, household.Address, result.Resident.Address)
	assert.Equal(t, household.RT, result.Resident.RT)
	assert.Equal(t, head.Religion, result.Resident.Religion)
	assert.Equal(t, models.MaritalSingle, result.Resident.MaritalStatus)
	assert.Equal(t, models.RelationChild, result.Membership.Relation)

	// The membership row exists but the counter stays with the household
	// workflow.
	var memberships int64
	require.NoError(t, db.Model(&models.FamilyMember{}).
		Where("household_id = ?", household.ID).Count(&memberships).Error)
	assert.Equal(t, int64(2), memberships)
	var stored models.Household
	require.NoError(t, db.First(&stored, "id = ?", household.ID).Error)
	assert.Equal(t, 1, stored.MemberCount)

	report, err := svc.GetBirthReportByID(result.Report.ID)
	require.NoError(t, err)
	assert.Equal(t, result.Resident.ID, report.ResidentID)
}

func TestRegisterBirthPartialFailureOnDuplicateNIK(t *testing.T) {
	db := newTestDB(t)
	head := seedResident(t, db, "3273010101900001", "Budi Santoso")
	household := seedHousehold(t, db, "3273012345678901", []validation.MemberEntry{
		{ResidentID: head.ID, Relation: models.RelationHead},
	})

	svc := NewVitalEventService(db, newTestConfig(), nil)
	form := birthForm()
	form.BabyNIK = head.NIK
	form.HouseholdID = household.ID
	form.Relation = models.RelationChild
	form.RegisterResident = true

	result, violations, err := svc.RegisterBirth(form)
	require.NoError(t, err)
	require.Empty(t, violations)

	// The report survives, the enrollment steps do not.
	assert.NotEmpty(t, result.Warnings)
	assert.Nil(t, result.Resident)
	assert.Nil(t, result.Membership)

	var reports int64
	require.NoError(t, db.Model(&models.BirthReport{}).Count(&reports).Error)
	assert.Equal(t, int64(1), reports)

	var stored models.Household
	require.NoError(t, db.First(&stored, "id = ?", household.ID).Error)
	assert.Equal(t, 1, stored.MemberCount)
}

func TestRegisterBirthValidation(t *testing.T) {
	db := newTestDB(t)
	svc := NewVitalEventService(db, newTestConfig(), nil)

	form := birthForm()
	form.HouseholdID = "some-household"
	form.Relation = models.RelationHead
	_, violations, err := svc.RegisterBirth(form)
	require.NoError(t, err)
	assert.Contains(t, violations, "relation")

	form = birthForm()
	form.RegisterResident = true
	_, violations, err = svc.RegisterBirth(form)
	require.NoError(t, err)
	assert.Contains(t, violations, "household_id")
	assert.Contains(t, violations, "baby_nik")
}

func TestGetBirthReportsNewestFirst(t *testing.T) {
	db := newTestDB(t)
	svc := NewVitalEventService(db, newTestConfig(), nil)

	older, _, err := svc.RegisterBirth(birthForm())
	require.NoError(t, err)
	form := birthForm()
	form.BabyName = "Agus Santoso"
	newer, _, err := svc.RegisterBirth(form)
	require.NoError(t, err)

	base := time.Date(2024, 6, 1, 8, 0, 0, 0, time.UTC)
	require.NoError(t, db.Model(&models.BirthReport{}).Where("id = ?", older.Report.ID).
		Update("created_at", base).Error)
	require.NoError(t, db.Model(&models.BirthReport{}).Where("id = ?", newer.Report.ID).
		Update("created_at", base.Add(time.Hour)).Error)

	reports, result, err := svc.GetBirthReports(&models.PaginationQuery{PageNum: 1, PageSize: 10})
	require.NoError(t, err)
	assert.Equal(t, 2, result.Total)
	require.Len(t, reports, 2)
	assert.Equal(t, newer.Report.ID, reports[0].ID)
	assert.Equal(t, older.Report.ID, reports[1].ID)

	// The desc flag keeps the same newest-first ordering.
	reports, _, err = svc.GetBirthReports(&models.PaginationQuery{PageNum: 1, PageSize: 10, Desc: true})
	require.NoError(t, err)
	require.Len(t, reports, 2)
	assert.Equal(t, newer.Report.ID, reports[0].ID)
}

func TestGetDeathReportsNewestFirst(t *testing.T) {
	db := newTestDB(t)
	svc := NewVitalEventService(db, newTestConfig(), nil)

	older, _, err := svc.RegisterDeath(validation.DeathReportForm{
		Name: "Pak Harun", DeathDate: "2024-07-15", DeathPlace: "Bandung",
	})
	require.NoError(t, err)
	newer, _, err := svc.RegisterDeath(validation.DeathReportForm{
		Name: "Bu Ratna", DeathDate: "2024-07-16", DeathPlace: "Bandung",
	})
	require.NoError(t, err)

	base := time.Date(2024, 7, 15, 8, 0, 0, 0, time.UTC)
	require.NoError(t, db.Model(&models.DeathReport{}).Where("id = ?", older.Report.ID).
		Update("created_at", base).Error)
	require.NoError(t, db.Model(&models.DeathReport{}).Where("id = ?", newer.Report.ID).
		Update("created_at", base.Add(time.Hour)).Error)

	reports, _, err := svc.GetDeathReports(&models.PaginationQuery{PageNum: 1, PageSize: 10, Desc: true})
	require.NoError(t, err)
	require.Len(t, reports, 2)
	assert.Equal(t, newer.Report.ID, reports[0].ID)
	assert.Equal(t, older.Report.ID, reports[1].ID)
}

func TestRegisterDeathMarksResidentDeceased(t *testing.T) {
	db := newTestDB(t)
	resident := seedResident(t, db, "3273010101900001", "Budi Santoso")

	svc := NewVitalEventService(db, newTestConfig(), nil)
	form := validation.DeathReportForm{
		ResidentID: resident.ID,
		DeathDate:  "2024-07-15",
		DeathPlace: "Bandung",
		Cause:      "Sakit",
		Name:       "ignored",
	}
	result, violations, err := svc.RegisterDeath(form)
	require.NoError(t, err)
	require.Empty(t, violations)
	require.NotNil(t, result.Resident)
	assert.Empty(t, result.Warnings)

	// The report snapshots the resident's identity.
	assert.Equal(t, resident.Name, result.Report.Name)
	assert.Equal(t, resident.NIK, result.Report.NIK)

	var stored models.Resident
	require.NoError(t, db.First(&stored, "id = ?", resident.ID).Error)
	assert.Equal(t, models.LifeStatusDeceased, stored.LifeStatus)
	assert.Equal(t, "2024-07-15", stored.DeathDate)
	assert.False(t, stored.IsAlive())

	// Deceased is terminal.
	_, _, err = svc.RegisterDeath(form)
	assert.ErrorIs(t, err, ErrResidentDeceased)
}

func TestRegisterDeathKeepsMemberCount(t *testing.T) {
	db := newTestDB(t)
	head := seedResident(t, db, "3273010101900001", "Budi Santoso")
	wife := seedResident(t, db, "3273010101900002", "Siti Aminah")
	household := seedHousehold(t, db, "3273012345678901", []validation.MemberEntry{
		{ResidentID: head.ID, Relation: models.RelationHead},
		{ResidentID: wife.ID, Relation: models.RelationSpouse},
	})

	svc := NewVitalEventService(db, newTestConfig(), nil)
	_, violations, err := svc.RegisterDeath(validation.DeathReportForm{
		ResidentID: wife.ID,
		DeathDate:  "2024-07-15",
		DeathPlace: "Bandung",
	})
	require.NoError(t, err)
	require.Empty(t, violations)

	// The membership row stays and the counter is untouched.
	var stored models.Household
	require.NoError(t, db.First(&stored, "id = ?", household.ID).Error)
	assert.Equal(t, 2, stored.MemberCount)
}

func TestRegisterDeathUnlinked(t *testing.T) {
	db := newTestDB(t)
	svc := NewVitalEventService(db, newTestConfig(), nil)

	result, violations, err := svc.RegisterDeath(validation.DeathReportForm{
		Name:       "Pak Harun",
		DeathDate:  "2024-07-15",
		DeathPlace: "Bandung",
	})
	require.NoError(t, err)
	require.Empty(t, violations)
	assert.Nil(t, result.Resident)
	assert.Equal(t, "Pak Harun", result.Report.Name)
}

func TestDeleteDeathReportKeepsLifeStatus(t *testing.T) {
	db := newTestDB(t)
	resident := seedResident(t, db, "3273010101900001", "Budi Santoso")

	svc := NewVitalEventService(db, newTestConfig(), nil)
	result, _, err := svc.RegisterDeath(validation.DeathReportForm{
		ResidentID: resident.ID,
		DeathDate:  "2024-07-15",
		DeathPlace: "Bandung",
	})
	require.NoError(t, err)

	require.NoError(t, svc.DeleteDeathReport(result.Report.ID))
	assert.ErrorIs(t, svc.DeleteDeathReport(result.Report.ID), ErrReportNotFound)

	var stored models.Resident
	require.NoError(t, db.First(&stored, "id = ?", resident.ID).Error)
	assert.Equal(t, models.LifeStatusDeceased, stored.LifeStatus)
}

func TestBirthReportUpdateAndDelete(t *testing.T) {
	db := newTestDB(t)
	svc := NewVitalEventService(db, newTestConfig(), nil)

	result, _, err := svc.RegisterBirth(birthForm())
	require.NoError(t, err)

	form := birthForm()
	form.BabyName = "Dewi Lestari"
	updated, violations, err := svc.UpdateBirthReport(result.Report.ID, form)
	require.NoError(t, err)
	require.Empty(t, violations)
	assert.Equal(t, "Dewi Lestari", updated.BabyName)

	require.NoError(t, svc.DeleteBirthReport(result.Report.ID))
	_, err = svc.GetBirthReportByID(result.Report.ID)
	assert.ErrorIs(t, err, ErrReportNotFound)
}
