package models

import "gorm.io/gorm"

// Resident represents a registered citizen (warga)
type Resident struct {
	BaseModel
	NIK           string `gorm:"type:char(16);uniqueIndex;not null" json:"nik"`
	Name          string `gorm:"type:varchar(100);not null" json:"name"`
	BirthPlace    string `gorm:"type:varchar(100);not null" json:"birth_place"`
	BirthDate     string `gorm:"type:varchar(10);not null" json:"birth_date"` // YYYY-MM-DD
	Gender        string `gorm:"type:varchar(20);not null" json:"gender"`
	Address       string `gorm:"type:varchar(200);not null" json:"address"`
	RT            string `gorm:"type:varchar(3);not null" json:"rt"` // zone code, e.g. "001"
	RW            string `gorm:"type:varchar(3);not null;default:'008'" json:"rw"`
	Religion      string `gorm:"type:varchar(20);not null" json:"religion"`
	MaritalStatus string `gorm:"type:varchar(20);not null" json:"marital_status"`
	Occupation    string `gorm:"type:varchar(100)" json:"occupation,omitempty"`
	Education     string `gorm:"type:varchar(50)" json:"education,omitempty"`
	Nationality   string `gorm:"type:varchar(50);not null;default:'Indonesia'" json:"nationality"`
	LifeStatus    string `gorm:"type:varchar(20);not null;default:'Hidup'" json:"life_status"`
	DeathDate     string `gorm:"type:varchar(10)" json:"death_date,omitempty"` // set iff deceased

	// Relations
	Memberships []FamilyMember `gorm:"foreignKey:ResidentID" json:"memberships,omitempty"`
}

// BeforeCreate applies registry defaults before a resident row is inserted
func (r *Resident) BeforeCreate(tx *gorm.DB) error {
	if err := r.BaseModel.BeforeCreate(tx); err != nil {
		return err
	}
	if r.Nationality == "" {
		r.Nationality = DefaultNationality
	}
	if r.LifeStatus == "" {
		r.LifeStatus = LifeStatusAlive
	}
	return nil
}

// IsAlive reports whether the resident is recorded as living
func (r *Resident) IsAlive() bool {
	return r.LifeStatus == LifeStatusAlive
}
