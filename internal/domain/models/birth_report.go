package models

// BirthReport represents a birth registration (laporan kelahiran)
type BirthReport struct {
	BaseModel
	BabyName   string `gorm:"type:varchar(100);not null" json:"baby_name"`
	BabyNIK    string `gorm:"type:char(16)" json:"baby_nik,omitempty"`
	Gender     string `gorm:"type:varchar(20);not null" json:"gender"`
	BirthDate  string `gorm:"type:varchar(10);not null" json:"birth_date"`
	BirthPlace string `gorm:"type:varchar(100);not null" json:"birth_place"`
	FatherName string `gorm:"type:varchar(100);not null" json:"father_name"`
	MotherName string `gorm:"type:varchar(100);not null" json:"mother_name"`
	Notes      string `gorm:"type:varchar(500)" json:"notes,omitempty"`

	// Auto-registration linkage, set when the birth workflow also registered
	// the baby as a resident and, optionally, as a household member.
	HouseholdID string `gorm:"type:char(36)" json:"household_id,omitempty"`
	Relation    string `gorm:"type:varchar(30)" json:"relation,omitempty"`
	ResidentID  string `gorm:"type:char(36)" json:"resident_id,omitempty"`
}
