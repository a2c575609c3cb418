package services

import (
	"fmt"
	"strconv"

	"github.com/xuri/excelize/v2"
	"gorm.io/gorm"

	"siwarga-http-service/internal/domain/models"
	"siwarga-http-service/internal/infrastructure/config"
	"siwarga-http-service/pkg/logger"
)

type InterfaceExportService interface {
	// 1. Build the resident register workbook
	ExportResidents() (*excelize.File, error)
	// 2. Build the household register workbook with a membership sheet
	ExportHouseholds() (*excelize.File, error)
}

type ExportService struct {
	DB     *gorm.DB
	Config *config.Config
}

func NewExportService(db *gorm.DB, c *config.Config) InterfaceExportService {
	return &ExportService{DB: db, Config: c}
}

// orDash substitutes a dash for empty optional fields so printed registers
// have no blank cells.
func orDash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}

func (s *ExportService) ExportResidents() (*excelize.File, error) {
	var residents []models.Resident
	if err := s.DB.Order("name").Find(&residents).Error; err != nil {
		return nil, fmt.Errorf("failed to list residents for export: %w", err)
	}

	f := excelize.NewFile()
	sheet := "Data Warga"
	f.SetSheetName("Sheet1", sheet)

	headers := []string{
		"No", "NIK", "Nama", "Tempat Lahir", "Tanggal Lahir", "Jenis Kelamin",
		"Alamat", "RT", "RW", "Agama", "Status Perkawinan", "Pekerjaan",
		"Pendidikan", "Kewarganegaraan", "Status", "Tanggal Meninggal",
	}
	if err := writeHeaderRow(f, sheet, headers, s.Config.NeighborhoodName+" - Data Warga"); err != nil {
		return nil, err
	}

	for i, r := range residents {
		row := []interface{}{
			i + 1, r.NIK, r.Name, r.BirthPlace, r.BirthDate, r.Gender,
			r.Address, r.RT, r.RW, r.Religion, r.MaritalStatus,
			orDash(r.Occupation), orDash(r.Education), r.Nationality,
			r.LifeStatus, orDash(r.DeathDate),
		}
		cell, _ := excelize.CoordinatesToCellName(1, i+3)
		if err := f.SetSheetRow(sheet, cell, &row); err != nil {
			return nil, fmt.Errorf("failed to write resident row: %w", err)
		}
	}

	logger.Info("Exported", strconv.Itoa(len(residents)), "residents to workbook")
	return f, nil
}

func (s *ExportService) ExportHouseholds() (*excelize.File, error) {
	var households []models.Household
	if err := s.DB.Preload("Head").Preload("Members.Resident").
		Order("kk_number").Find(&households).Error; err != nil {
		return nil, fmt.Errorf("failed to list households for export: %w", err)
	}

	// One sheet per family card, named by its KK number.
	f := excelize.NewFile()
	for i, h := range households {
		sheet := h.KKNumber
		if len(sheet) > 31 {
			sheet = sheet[:31] // sheet name limit
		}
		if i == 0 {
			f.SetSheetName("Sheet1", sheet)
		} else if _, err := f.NewSheet(sheet); err != nil {
			return nil, fmt.Errorf("failed to create sheet for KK %s: %w", h.KKNumber, err)
		}
		if err := writeHouseholdSheet(f, sheet, h); err != nil {
			return nil, err
		}
	}
	if len(households) == 0 {
		f.SetSheetName("Sheet1", "Data KK")
	}

	logger.Info("Exported", strconv.Itoa(len(households)), "households to workbook")
	return f, nil
}

// writeHouseholdSheet writes one family card: the KARTU KELUARGA info block
// followed by the member table.
func writeHouseholdSheet(f *excelize.File, sheet string, h models.Household) error {
	headName := "-"
	if h.Head != nil {
		headName = h.Head.Name
	}

	rows := [][]interface{}{
		{"KARTU KELUARGA"},
		{},
		{"No. KK", h.KKNumber},
		{"Kepala Keluarga", headName},
		{"Alamat", h.Address},
		{"RT/RW", h.RT + "/" + h.RW},
		{},
		{"DAFTAR ANGGOTA KELUARGA"},
		{"No", "Nama", "NIK", "Jenis Kelamin", "Tanggal Lahir", "Hubungan", "Pekerjaan", "Pendidikan"},
	}
	for _, m := range h.Members {
		name, nik, gender, birthDate, occupation, education := "-", "-", "-", "-", "-", "-"
		if m.Resident != nil {
			name = m.Resident.Name
			nik = m.Resident.NIK
			gender = m.Resident.Gender
			birthDate = m.Resident.BirthDate
			occupation = orDash(m.Resident.Occupation)
			education = orDash(m.Resident.Education)
		}
		rows = append(rows, []interface{}{
			len(rows) - 8, name, nik, gender, birthDate, m.Relation, occupation, education,
		})
	}

	for i := range rows {
		cell, _ := excelize.CoordinatesToCellName(1, i+1)
		if err := f.SetSheetRow(sheet, cell, &rows[i]); err != nil {
			return fmt.Errorf("failed to write family card row: %w", err)
		}
	}

	widths := []struct {
		col   string
		width float64
	}{
		{"A", 5}, {"B", 25}, {"C", 18}, {"D", 15},
		{"E", 15}, {"F", 20}, {"G", 20}, {"H", 15},
	}
	for _, w := range widths {
		if err := f.SetColWidth(sheet, w.col, w.col, w.width); err != nil {
			return fmt.Errorf("failed to set column width: %w", err)
		}
	}
	return nil
}

// writeHeaderRow writes the sheet title in row 1 and the column headers in
// row 2.
func writeHeaderRow(f *excelize.File, sheet string, headers []string, title string) error {
	if err := f.SetCellValue(sheet, "A1", title); err != nil {
		return fmt.Errorf("failed to write sheet title: %w", err)
	}
	cells := make([]interface{}, len(headers))
	for i, h := range headers {
		cells[i] = h
	}
	if err := f.SetSheetRow(sheet, "A2", &cells); err != nil {
		return fmt.Errorf("failed to write header row: %w", err)
	}
	return nil
}
