// Package validation implements the pure, field-keyed form validation used by
// the registry workflows. Validators never touch the database: list-level
// rules such as the one-head rule are checked against the submitted array
// only.
package validation

import (
	"time"

	"siwarga-http-service/internal/domain/models"
)

// Violations maps a field name to a human-readable violation message. An
// empty map means the form passed validation.
type Violations map[string]string

// Ok reports whether validation produced no violations
func (v Violations) Ok() bool {
	return len(v) == 0
}

// ResidentForm is the submitted shape for creating or editing a resident
type ResidentForm struct {
	NIK           string `json:"nik"`
	Name          string `json:"name"`
	BirthPlace    string `json:"birth_place"`
	BirthDate     string `json:"birth_date"`
	Gender        string `json:"gender"`
	Address       string `json:"address"`
	RT            string `json:"rt"`
	RW            string `json:"rw"`
	Religion      string `json:"religion"`
	MaritalStatus string `json:"marital_status"`
	Occupation    string `json:"occupation"`
	Education     string `json:"education"`
	Nationality   string `json:"nationality"`
}

// MemberEntry is one row of a submitted household member list
type MemberEntry struct {
	ResidentID string `json:"resident_id"`
	Relation   string `json:"relation"`
}

// HouseholdForm is the submitted shape for creating or editing a household
// together with its full member list
type HouseholdForm struct {
	KKNumber string        `json:"kk_number"`
	Address  string        `json:"address"`
	RT       string        `json:"rt"`
	RW       string        `json:"rw"`
	Members  []MemberEntry `json:"members"`
}

// BirthReportForm is the submitted shape for a birth registration
type BirthReportForm struct {
	BabyName   string `json:"baby_name"`
	BabyNIK    string `json:"baby_nik"`
	Gender     string `json:"gender"`
	BirthDate  string `json:"birth_date"`
	BirthPlace string `json:"birth_place"`
	FatherName string `json:"father_name"`
	MotherName string `json:"mother_name"`
	Notes      string `json:"notes"`

	// Optional auto-registration target
	HouseholdID      string `json:"household_id"`
	Relation         string `json:"relation"`
	RegisterResident bool   `json:"register_resident"`
}

// DeathReportForm is the submitted shape for a death registration
type DeathReportForm struct {
	ResidentID string `json:"resident_id"`
	Name       string `json:"name"`
	NIK        string `json:"nik"`
	DeathDate  string `json:"death_date"`
	DeathPlace string `json:"death_place"`
	Cause      string `json:"cause"`
	Notes      string `json:"notes"`
}

// IsNIK reports whether s is a valid 16-digit national identity number
func IsNIK(s string) bool {
	if len(s) != 16 {
		return false
	}
	for _, c := range s {
		if c < '0' || c > '9' {
			return false
		}
	}
	return true
}

func isDate(s string) bool {
	_, err := time.Parse("2006-01-02", s)
	return err == nil
}

func inOptions(value string, options []string) bool {
	for _, o := range options {
		if o == value {
			return true
		}
	}
	return false
}

// ValidateResident validates a resident form
func ValidateResident(form ResidentForm) Violations {
	v := Violations{}
	if !IsNIK(form.NIK) {
		v["nik"] = "NIK must be exactly 16 digits"
	}
	if form.Name == "" {
		v["name"] = "name is required"
	}
	if form.BirthPlace == "" {
		v["birth_place"] = "birth place is required"
	}
	if !isDate(form.BirthDate) {
		v["birth_date"] = "birth date must be a valid date (YYYY-MM-DD)"
	}
	if !inOptions(form.Gender, models.GenderOptions) {
		v["gender"] = "gender must be one of the registered options"
	}
	if form.Address == "" {
		v["address"] = "address is required"
	}
	if form.RT == "" {
		v["rt"] = "RT is required"
	}
	if !inOptions(form.Religion, models.ReligionOptions) {
		v["religion"] = "religion must be one of the registered options"
	}
	if !inOptions(form.MaritalStatus, models.MaritalStatusOptions) {
		v["marital_status"] = "marital status must be one of the registered options"
	}
	if form.Education != "" && !inOptions(form.Education, models.EducationOptions) {
		v["education"] = "education must be one of the registered options"
	}
	return v
}

// ValidateHousehold validates a household form, including the one-head rule
// over the submitted member list
func ValidateHousehold(form HouseholdForm) Violations {
	v := Violations{}
	if !IsNIK(form.KKNumber) {
		v["kk_number"] = "KK number must be exactly 16 digits"
	}
	if form.Address == "" {
		v["address"] = "address is required"
	}
	if form.RT == "" {
		v["rt"] = "RT is required"
	}
	if len(form.Members) == 0 {
		v["members"] = "at least one member (the head of household) is required"
		return v
	}

	heads := 0
	for _, m := range form.Members {
		if m.ResidentID == "" {
			v["members"] = "every member entry must reference a resident"
		}
		if !inOptions(m.Relation, models.RelationOptions) {
			v["members"] = "every member entry must carry a registered relation"
		}
		if m.Relation == models.RelationHead {
			heads++
		}
	}
	if heads != 1 {
		v["members"] = "the member list must contain exactly one head of household"
	}
	return v
}

// ValidateBirthReport validates a birth registration form
func ValidateBirthReport(form BirthReportForm) Violations {
	v := Violations{}
	if form.BabyName == "" {
		v["baby_name"] = "baby name is required"
	}
	if form.BabyNIK != "" && !IsNIK(form.BabyNIK) {
		v["baby_nik"] = "NIK must be exactly 16 digits"
	}
	if !inOptions(form.Gender, models.GenderOptions) {
		v["gender"] = "gender must be one of the registered options"
	}
	if !isDate(form.BirthDate) {
		v["birth_date"] = "birth date must be a valid date (YYYY-MM-DD)"
	}
	if form.BirthPlace == "" {
		v["birth_place"] = "birth place is required"
	}
	if form.FatherName == "" {
		v["father_name"] = "father's name is required"
	}
	if form.MotherName == "" {
		v["mother_name"] = "mother's name is required"
	}
	if form.HouseholdID != "" {
		if !inOptions(form.Relation, models.RelationOptions) {
			v["relation"] = "relation must be one of the registered options"
		} else if form.Relation == models.RelationHead {
			v["relation"] = "a newborn cannot be registered as head of household"
		}
	}
	return v
}

// ValidateDeathReport validates a death registration form. The decedent's
// identity fields are required only for unlinked reports, linked reports
// snapshot them from the resident record.
func ValidateDeathReport(form DeathReportForm) Violations {
	v := Violations{}
	if form.ResidentID == "" && form.Name == "" {
		v["name"] = "decedent name is required"
	}
	if form.NIK != "" && !IsNIK(form.NIK) {
		v["nik"] = "NIK must be exactly 16 digits"
	}
	if !isDate(form.DeathDate) {
		v["death_date"] = "death date must be a valid date (YYYY-MM-DD)"
	}
	if form.DeathPlace == "" {
		v["death_place"] = "death place is required"
	}
	return v
}
