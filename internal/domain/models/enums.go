package models

// Gender values (jenis kelamin)
const (
	GenderMale   = "Laki-laki"
	GenderFemale = "Perempuan"
)

// Life status values (status kehidupan)
const (
	LifeStatusAlive    = "Hidup"
	LifeStatusDeceased = "Meninggal"
)

// Family relation values (hubungan keluarga)
const (
	RelationHead   = "Kepala Keluarga"
	RelationSpouse = "Istri"
	RelationChild  = "Anak"
)

// Marital status values (status perkawinan)
const (
	MaritalSingle   = "Belum Kawin"
	MaritalMarried  = "Kawin"
	MaritalDivorced = "Cerai Hidup"
	MaritalWidowed  = "Cerai Mati"
)

// DefaultNationality is applied when a resident's nationality is omitted.
const DefaultNationality = "Indonesia"

// DefaultRW is the neighborhood-wide RW code applied when omitted.
const DefaultRW = "008"

// GenderOptions is the closed option set for jenis kelamin
var GenderOptions = []string{GenderMale, GenderFemale}

// ReligionOptions is the closed option set for agama
var ReligionOptions = []string{"Islam", "Kristen", "Katolik", "Hindu", "Buddha", "Konghucu"}

// MaritalStatusOptions is the closed option set for status perkawinan
var MaritalStatusOptions = []string{MaritalSingle, MaritalMarried, MaritalDivorced, MaritalWidowed}

// RelationOptions is the closed option set for hubungan keluarga
var RelationOptions = []string{RelationHead, RelationSpouse, RelationChild}

// LifeStatusOptions is the closed option set for status kehidupan
var LifeStatusOptions = []string{LifeStatusAlive, LifeStatusDeceased}

// EducationOptions is the closed option set for pendidikan
var EducationOptions = []string{
	"Tidak/Belum Sekolah",
	"SD",
	"SLTP/SMP",
	"SLTA/SMA",
	"Diploma",
	"Sarjana (S1)",
	"Magister (S2)",
	"Doktor (S3)",
}
