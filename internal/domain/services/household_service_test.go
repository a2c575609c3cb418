package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"siwarga-http-service/internal/domain/models"
	"siwarga-http-service/internal/domain/validation"
)

func TestCreateHouseholdPersistsMemberList(t *testing.T) {
	db := newTestDB(t)
	head := seedResident(t, db, "3273010101900001", "Budi Santoso")
	wife := seedResident(t, db, "3273010101900002", "Siti Aminah")
	child := seedResident(t, db, "3273010101900003", "Agus Santoso")

	svc := NewHouseholdService(db, newTestConfig())
	household, violations, err := svc.CreateHousehold(validation.HouseholdForm{
		KKNumber: "3273012345678901",
		Address:  "Jl. Melati No. 3",
		RT:       "002",
		Members: []validation.MemberEntry{
			{ResidentID: head.ID, Relation: models.RelationHead},
			{ResidentID: wife.ID, Relation: models.RelationSpouse},
			{ResidentID: child.ID, Relation: models.RelationChild},
		},
	})
	require.NoError(t, err)
	require.Empty(t, violations)
	require.NotNil(t, household)

	assert.Equal(t, head.ID, household.HeadID)
	assert.Equal(t, 3, household.MemberCount)
	assert.Equal(t, models.DefaultRW, household.RW)
	assert.Len(t, household.Members, 3)
	require.NotNil(t, household.Head)
	assert.Equal(t, "Budi Santoso", household.Head.Name)
}

func TestCreateHouseholdRequiresExactlyOneHead(t *testing.T) {
	db := newTestDB(t)
	a := seedResident(t, db, "3273010101900001", "Budi Santoso")
	b := seedResident(t, db, "3273010101900002", "Siti Aminah")
	svc := NewHouseholdService(db, newTestConfig())

	form := validation.HouseholdForm{
		KKNumber: "3273012345678901",
		Address:  "Jl. Melati No. 3",
		RT:       "002",
		Members: []validation.MemberEntry{
			{ResidentID: a.ID, Relation: models.RelationHead},
			{ResidentID: b.ID, Relation: models.RelationHead},
		},
	}
	_, violations, err := svc.CreateHousehold(form)
	require.NoError(t, err)
	assert.Contains(t, violations, "members")

	form.Members = []validation.MemberEntry{
		{ResidentID: a.ID, Relation: models.RelationChild},
	}
	_, violations, err = svc.CreateHousehold(form)
	require.NoError(t, err)
	assert.Contains(t, violations, "members")
}

func TestCreateHouseholdRejectsDuplicateKKNumber(t *testing.T) {
	db := newTestDB(t)
	head := seedResident(t, db, "3273010101900001", "Budi Santoso")
	seedHousehold(t, db, "3273012345678901", []validation.MemberEntry{
		{ResidentID: head.ID, Relation: models.RelationHead},
	})

	other := seedResident(t, db, "3273010101900002", "Siti Aminah")
	svc := NewHouseholdService(db, newTestConfig())
	created, violations, err := svc.CreateHousehold(validation.HouseholdForm{
		KKNumber: "3273012345678901",
		Address:  "Jl. Mawar No. 8",
		RT:       "003",
		Members: []validation.MemberEntry{
			{ResidentID: other.ID, Relation: models.RelationHead},
		},
	})
	require.NoError(t, err)
	assert.Nil(t, created)
	assert.Contains(t, violations, "kk_number")

	// Updating a household to another household's KK number is rejected the
	// same way.
	second := seedHousehold(t, db, "3273019999999999", []validation.MemberEntry{
		{ResidentID: other.ID, Relation: models.RelationHead},
	})
	_, violations, err = svc.UpdateHousehold(second.ID, validation.HouseholdForm{
		KKNumber: "3273012345678901",
		Address:  second.Address,
		RT:       second.RT,
		Members: []validation.MemberEntry{
			{ResidentID: other.ID, Relation: models.RelationHead},
		},
	})
	require.NoError(t, err)
	assert.Contains(t, violations, "kk_number")
}

func TestCreateHouseholdCompensatesOnMemberInsertFailure(t *testing.T) {
	db := newTestDB(t)
	head := seedResident(t, db, "3273010101900001", "Budi Santoso")
	svc := NewHouseholdService(db, newTestConfig())

	// The same resident listed twice passes list validation but violates
	// the unique membership index on insert.
	_, violations, err := svc.CreateHousehold(validation.HouseholdForm{
		KKNumber: "3273012345678901",
		Address:  "Jl. Melati No. 3",
		RT:       "002",
		Members: []validation.MemberEntry{
			{ResidentID: head.ID, Relation: models.RelationHead},
			{ResidentID: head.ID, Relation: models.RelationChild},
		},
	})
	require.Error(t, err)
	require.Empty(t, violations)

	var households, members int64
	require.NoError(t, db.Model(&models.Household{}).Count(&households).Error)
	require.NoError(t, db.Model(&models.FamilyMember{}).Count(&members).Error)
	assert.Zero(t, households)
	assert.Zero(t, members)
}

func TestUpdateHouseholdReconcilesMemberList(t *testing.T) {
	db := newTestDB(t)
	head := seedResident(t, db, "3273010101900001", "Budi Santoso")
	wife := seedResident(t, db, "3273010101900002", "Siti Aminah")
	child := seedResident(t, db, "3273010101900003", "Agus Santoso")
	household := seedHousehold(t, db, "3273012345678901", []validation.MemberEntry{
		{ResidentID: head.ID, Relation: models.RelationHead},
		{ResidentID: wife.ID, Relation: models.RelationSpouse},
	})

	svc := NewHouseholdService(db, newTestConfig())
	form := validation.HouseholdForm{
		KKNumber: "3273012345678901",
		Address:  "Jl. Melati No. 3",
		RT:       "002",
		Members: []validation.MemberEntry{
			{ResidentID: head.ID, Relation: models.RelationHead},
			{ResidentID: child.ID, Relation: models.RelationChild},
		},
	}
	updated, violations, err := svc.UpdateHousehold(household.ID, form)
	require.NoError(t, err)
	require.Empty(t, violations)
	assert.Equal(t, 2, updated.MemberCount)

	ids := make(map[string]string, len(updated.Members))
	for _, m := range updated.Members {
		ids[m.ResidentID] = m.Relation
	}
	assert.NotContains(t, ids, wife.ID)
	assert.Equal(t, models.RelationChild, ids[child.ID])

	// Re-submitting the same list is a no-op.
	again, violations, err := svc.UpdateHousehold(household.ID, form)
	require.NoError(t, err)
	require.Empty(t, violations)
	assert.Equal(t, 2, again.MemberCount)
	assert.Len(t, again.Members, 2)
}

func TestAddMemberIncrementsCount(t *testing.T) {
	db := newTestDB(t)
	head := seedResident(t, db, "3273010101900001", "Budi Santoso")
	wife := seedResident(t, db, "3273010101900002", "Siti Aminah")
	household := seedHousehold(t, db, "3273012345678901", []validation.MemberEntry{
		{ResidentID: head.ID, Relation: models.RelationHead},
	})

	svc := NewHouseholdService(db, newTestConfig())
	member, err := svc.AddMember(household.ID, validation.MemberEntry{
		ResidentID: wife.ID,
		Relation:   models.RelationSpouse,
	})
	require.NoError(t, err)
	require.NotNil(t, member.Resident)
	assert.Equal(t, "Siti Aminah", member.Resident.Name)

	stored, err := svc.GetHouseholdByID(household.ID)
	require.NoError(t, err)
	assert.Equal(t, 2, stored.MemberCount)

	_, err = svc.AddMember(household.ID, validation.MemberEntry{
		ResidentID: wife.ID,
		Relation:   models.RelationSpouse,
	})
	assert.ErrorIs(t, err, ErrMemberExists)
}

func TestAddMemberRejectsSecondHead(t *testing.T) {
	db := newTestDB(t)
	head := seedResident(t, db, "3273010101900001", "Budi Santoso")
	other := seedResident(t, db, "3273010101900002", "Siti Aminah")
	household := seedHousehold(t, db, "3273012345678901", []validation.MemberEntry{
		{ResidentID: head.ID, Relation: models.RelationHead},
	})

	svc := NewHouseholdService(db, newTestConfig())
	_, err := svc.AddMember(household.ID, validation.MemberEntry{
		ResidentID: other.ID,
		Relation:   models.RelationHead,
	})
	assert.ErrorIs(t, err, ErrHeadConflict)
}

func TestRemoveMemberBlocksHead(t *testing.T) {
	db := newTestDB(t)
	head := seedResident(t, db, "3273010101900001", "Budi Santoso")
	wife := seedResident(t, db, "3273010101900002", "Siti Aminah")
	household := seedHousehold(t, db, "3273012345678901", []validation.MemberEntry{
		{ResidentID: head.ID, Relation: models.RelationHead},
		{ResidentID: wife.ID, Relation: models.RelationSpouse},
	})

	svc := NewHouseholdService(db, newTestConfig())
	assert.ErrorIs(t, svc.RemoveMember(household.ID, head.ID), ErrHeadRemoval)

	require.NoError(t, svc.RemoveMember(household.ID, wife.ID))
	stored, err := svc.GetHouseholdByID(household.ID)
	require.NoError(t, err)
	assert.Equal(t, 1, stored.MemberCount)

	assert.ErrorIs(t, svc.RemoveMember(household.ID, wife.ID), ErrMemberNotFound)
}

func TestGetAvailableResidentsExcludesMembersAndDeceased(t *testing.T) {
	db := newTestDB(t)
	head := seedResident(t, db, "3273010101900001", "Budi Santoso")
	free := seedResident(t, db, "3273010101900002", "Siti Aminah")
	gone := seedResident(t, db, "3273010101900003", "Agus Santoso")
	require.NoError(t, db.Model(gone).Update("life_status", models.LifeStatusDeceased).Error)

	household := seedHousehold(t, db, "3273012345678901", []validation.MemberEntry{
		{ResidentID: head.ID, Relation: models.RelationHead},
	})

	svc := NewHouseholdService(db, newTestConfig())
	available, err := svc.GetAvailableResidents(household.ID)
	require.NoError(t, err)
	require.Len(t, available, 1)
	assert.Equal(t, free.ID, available[0].ID)
}

func TestDeleteHouseholdKeepsResidents(t *testing.T) {
	db := newTestDB(t)
	head := seedResident(t, db, "3273010101900001", "Budi Santoso")
	wife := seedResident(t, db, "3273010101900002", "Siti Aminah")
	household := seedHousehold(t, db, "3273012345678901", []validation.MemberEntry{
		{ResidentID: head.ID, Relation: models.RelationHead},
		{ResidentID: wife.ID, Relation: models.RelationSpouse},
	})

	svc := NewHouseholdService(db, newTestConfig())
	require.NoError(t, svc.DeleteHousehold(household.ID))

	var members, residents int64
	require.NoError(t, db.Model(&models.FamilyMember{}).Count(&members).Error)
	require.NoError(t, db.Model(&models.Resident{}).Count(&residents).Error)
	assert.Zero(t, members)
	assert.Equal(t, int64(2), residents)

	_, err := svc.GetHouseholdByID(household.ID)
	assert.ErrorIs(t, err, ErrHouseholdNotFound)
}
