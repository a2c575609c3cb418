package validation

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"siwarga-http-service/internal/domain/models"
)

func TestIsNIK(t *testing.T) {
	cases := []struct {
		nik  string
		want bool
	}{
		{"3273010101900001", true},
		{"327301010190000", false},
		{"32730101019000011", false},
		{"32730101019000ab", false},
		{"", false},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, IsNIK(tc.nik), tc.nik)
	}
}

func validResidentForm() ResidentForm {
	return ResidentForm{
		NIK:           "3273010101900001",
		Name:          "Budi Santoso",
		BirthPlace:    "Bandung",
		BirthDate:     "1990-04-12",
		Gender:        models.GenderMale,
		Address:       "Jl. Melati No. 3",
		RT:            "002",
		Religion:      "Islam",
		MaritalStatus: models.MaritalMarried,
	}
}

func TestValidateResident(t *testing.T) {
	assert.True(t, ValidateResident(validResidentForm()).Ok())

	form := validResidentForm()
	form.Religion = "Jedi"
	form.MaritalStatus = "Jomblo"
	form.BirthDate = "1990-02-31"
	v := ValidateResident(form)
	assert.Contains(t, v, "religion")
	assert.Contains(t, v, "marital_status")
	assert.Contains(t, v, "birth_date")

	// Education is optional but closed when present.
	form = validResidentForm()
	form.Education = "Akademi Sihir"
	assert.Contains(t, ValidateResident(form), "education")
	form.Education = "Sarjana (S1)"
	assert.True(t, ValidateResident(form).Ok())
}

func TestValidateHouseholdHeadRule(t *testing.T) {
	base := HouseholdForm{
		KKNumber: "3273012345678901",
		Address:  "Jl. Melati No. 3",
		RT:       "002",
	}

	form := base
	form.Members = []MemberEntry{
		{ResidentID: "a", Relation: models.RelationHead},
		{ResidentID: "b", Relation: models.RelationSpouse},
	}
	assert.True(t, ValidateHousehold(form).Ok())

	form.Members = nil
	assert.Contains(t, ValidateHousehold(form), "members")

	form.Members = []MemberEntry{
		{ResidentID: "a", Relation: models.RelationSpouse},
	}
	assert.Contains(t, ValidateHousehold(form), "members")

	form.Members = []MemberEntry{
		{ResidentID: "a", Relation: models.RelationHead},
		{ResidentID: "b", Relation: models.RelationHead},
	}
	assert.Contains(t, ValidateHousehold(form), "members")

	form.Members = []MemberEntry{
		{ResidentID: "a", Relation: "Tetangga"},
	}
	assert.Contains(t, ValidateHousehold(form), "members")
}

func TestValidateBirthReportRelation(t *testing.T) {
	form := BirthReportForm{
		BabyName:   "Dewi",
		Gender:     models.GenderFemale,
		BirthDate:  "2024-06-01",
		BirthPlace: "Bandung",
		FatherName: "Budi",
		MotherName: "Siti",
	}
	assert.True(t, ValidateBirthReport(form).Ok())

	// A household link demands a relation, and never the head relation.
	form.HouseholdID = "h1"
	assert.Contains(t, ValidateBirthReport(form), "relation")
	form.Relation = models.RelationHead
	assert.Contains(t, ValidateBirthReport(form), "relation")
	form.Relation = models.RelationChild
	assert.True(t, ValidateBirthReport(form).Ok())

	form.BabyNIK = "123"
	assert.Contains(t, ValidateBirthReport(form), "baby_nik")
}

func TestValidateDeathReportIdentity(t *testing.T) {
	form := DeathReportForm{
		DeathDate:  "2024-07-15",
		DeathPlace: "Bandung",
	}
	// Unlinked reports need a name.
	assert.Contains(t, ValidateDeathReport(form), "name")

	form.ResidentID = "r1"
	assert.True(t, ValidateDeathReport(form).Ok())

	form.ResidentID = ""
	form.Name = "Pak Harun"
	form.DeathDate = "kemarin"
	assert.Contains(t, ValidateDeathReport(form), "death_date")
}
