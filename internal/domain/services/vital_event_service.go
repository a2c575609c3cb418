package services

import (
	"errors"
	"fmt"

	"gorm.io/gorm"

	"siwarga-http-service/internal/domain/models"
	"siwarga-http-service/internal/domain/validation"
	"siwarga-http-service/internal/infrastructure/config"
	"siwarga-http-service/pkg/logger"
)

var (
	ErrReportNotFound   = errors.New("report not found")
	ErrResidentDeceased = errors.New("resident is already registered as deceased")
)

// BirthRegistrationResult carries the outcome of a birth registration,
// including the follow-up steps that could not be completed. The report
// itself is always persisted before any follow-up runs.
type BirthRegistrationResult struct {
	Report     *models.BirthReport  `json:"report"`
	Resident   *models.Resident     `json:"resident,omitempty"`
	Membership *models.FamilyMember `json:"membership,omitempty"`
	Warnings   []string             `json:"warnings,omitempty"`
}

// DeathRegistrationResult carries the outcome of a death registration
type DeathRegistrationResult struct {
	Report   *models.DeathReport `json:"report"`
	Resident *models.Resident    `json:"resident,omitempty"`
	Warnings []string            `json:"warnings,omitempty"`
}

type InterfaceVitalEventService interface {
	// 1. Register a birth, optionally registering the baby as a resident and
	//    household member
	RegisterBirth(form validation.BirthReportForm) (*BirthRegistrationResult, validation.Violations, error)
	// 2. List birth reports with pagination
	GetBirthReports(pq *models.PaginationQuery) ([]models.BirthReport, models.PaginationResult, error)
	// 3. Get one birth report
	GetBirthReportByID(id string) (*models.BirthReport, error)
	// 4. Update the civil record fields of a birth report
	UpdateBirthReport(id string, form validation.BirthReportForm) (*models.BirthReport, validation.Violations, error)
	// 5. Delete a birth report, leaving any registered resident intact
	DeleteBirthReport(id string) error
	// 6. Register a death, marking the linked resident as deceased
	RegisterDeath(form validation.DeathReportForm) (*DeathRegistrationResult, validation.Violations, error)
	// 7. List death reports with pagination
	GetDeathReports(pq *models.PaginationQuery) ([]models.DeathReport, models.PaginationResult, error)
	// 8. Get one death report
	GetDeathReportByID(id string) (*models.DeathReport, error)
	// 9. Update the civil record fields of a death report
	UpdateDeathReport(id string, form validation.DeathReportForm) (*models.DeathReport, validation.Violations, error)
	// 10. Delete a death report, leaving the resident's life status unchanged
	DeleteDeathReport(id string) error
}

type VitalEventService struct {
	DB       *gorm.DB
	Config   *config.Config
	Announce InterfaceAnnounceService
}

func NewVitalEventService(db *gorm.DB, c *config.Config, announce InterfaceAnnounceService) InterfaceVitalEventService {
	return &VitalEventService{DB: db, Config: c, Announce: announce}
}

func (s *VitalEventService) RegisterBirth(form validation.BirthReportForm) (*BirthRegistrationResult, validation.Violations, error) {
	v := validation.ValidateBirthReport(form)
	if form.RegisterResident && form.HouseholdID == "" {
		v["household_id"] = "registering the newborn as a resident requires a household"
	}
	if form.RegisterResident && form.BabyNIK == "" {
		v["baby_nik"] = "registering the newborn as a resident requires a NIK"
	}
	if !v.Ok() {
		return nil, v, nil
	}

	var household *models.Household
	if form.HouseholdID != "" {
		var h models.Household
		err := s.DB.Preload("Head").First(&h, "id = ?", form.HouseholdID).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil, ErrHouseholdNotFound
		}
		if err != nil {
			return nil, nil, fmt.Errorf("failed to get household: %w", err)
		}
		household = &h
	}

	report := models.BirthReport{
		BabyName:    form.BabyName,
		BabyNIK:     form.BabyNIK,
		Gender:      form.Gender,
		BirthDate:   form.BirthDate,
		BirthPlace:  form.BirthPlace,
		FatherName:  form.FatherName,
		MotherName:  form.MotherName,
		Notes:       form.Notes,
		HouseholdID: form.HouseholdID,
		Relation:    form.Relation,
	}
	if err := s.DB.Create(&report).Error; err != nil {
		return nil, nil, fmt.Errorf("failed to create birth report: %w", err)
	}

	result := &BirthRegistrationResult{Report: &report}

	// Follow-up steps are best effort. The report stands on its own and
	// every skipped step is surfaced as a warning.
	if form.RegisterResident && household != nil {
		religion := models.ReligionOptions[0]
		if household.Head != nil {
			religion = household.Head.Religion
		}
		resident := models.Resident{
			NIK:           form.BabyNIK,
			Name:          form.BabyName,
			BirthPlace:    form.BirthPlace,
			BirthDate:     form.BirthDate,
			Gender:        form.Gender,
			Address:       household.Address,
			RT:            household.RT,
			RW:            household.RW,
			Religion:      religion,
			MaritalStatus: models.MaritalSingle,
		}
		if err := s.DB.Create(&resident).Error; err != nil {
			logger.Warning("Birth report", report.ID, "saved but resident registration failed:", err)
			result.Warnings = append(result.Warnings,
				"the report was saved but the baby could not be registered as a resident: a resident with this NIK may already exist")
		} else {
			result.Resident = &resident
			if err := s.DB.Model(&report).Update("resident_id", resident.ID).Error; err != nil {
				logger.Error("Failed to link birth report", report.ID, "to resident:", err)
			}

			// Member count stays with the household workflow; this path
			// only records the membership row.
			member := models.FamilyMember{
				HouseholdID: household.ID,
				ResidentID:  resident.ID,
				Relation:    form.Relation,
			}
			if err := s.DB.Create(&member).Error; err != nil {
				logger.Warning("Birth report", report.ID, "saved but membership registration failed:", err)
				result.Warnings = append(result.Warnings,
					"the baby was registered as a resident but could not be added to the household")
			} else {
				result.Membership = &member
			}
		}
	}

	if s.Announce != nil {
		s.Announce.AnnounceBirth(report.ID, report.BabyName, report.BirthDate)
	}
	return result, nil, nil
}

func (s *VitalEventService) GetBirthReports(pq *models.PaginationQuery) ([]models.BirthReport, models.PaginationResult, error) {
	pq.Normalize()
	var total int64
	if err := s.DB.Model(&models.BirthReport{}).Count(&total).Error; err != nil {
		return nil, models.PaginationResult{}, fmt.Errorf("failed to count birth reports: %w", err)
	}
	var reports []models.BirthReport
	if err := s.DB.Order("created_at DESC").Offset(pq.Offset()).Limit(pq.PageSize).
		Find(&reports).Error; err != nil {
		return nil, models.PaginationResult{}, fmt.Errorf("failed to list birth reports: %w", err)
	}
	return reports, models.NewPaginationResult(int(total), pq.PageNum, pq.PageSize), nil
}

func (s *VitalEventService) GetBirthReportByID(id string) (*models.BirthReport, error) {
	var report models.BirthReport
	err := s.DB.First(&report, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrReportNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get birth report: %w", err)
	}
	return &report, nil
}

func (s *VitalEventService) UpdateBirthReport(id string, form validation.BirthReportForm) (*models.BirthReport, validation.Violations, error) {
	if v := validation.ValidateBirthReport(form); !v.Ok() {
		return nil, v, nil
	}
	report, err := s.GetBirthReportByID(id)
	if err != nil {
		return nil, nil, err
	}
	updates := map[string]interface{}{
		"baby_name":   form.BabyName,
		"baby_nik":    form.BabyNIK,
		"gender":      form.Gender,
		"birth_date":  form.BirthDate,
		"birth_place": form.BirthPlace,
		"father_name": form.FatherName,
		"mother_name": form.MotherName,
		"notes":       form.Notes,
	}
	if err := s.DB.Model(report).Updates(updates).Error; err != nil {
		return nil, nil, fmt.Errorf("failed to update birth report: %w", err)
	}
	return report, nil, nil
}

func (s *VitalEventService) DeleteBirthReport(id string) error {
	if _, err := s.GetBirthReportByID(id); err != nil {
		return err
	}
	if err := s.DB.Delete(&models.BirthReport{}, "id = ?", id).Error; err != nil {
		return fmt.Errorf("failed to delete birth report: %w", err)
	}
	return nil
}

func (s *VitalEventService) RegisterDeath(form validation.DeathReportForm) (*DeathRegistrationResult, validation.Violations, error) {
	if v := validation.ValidateDeathReport(form); !v.Ok() {
		return nil, v, nil
	}

	var resident *models.Resident
	if form.ResidentID != "" {
		var r models.Resident
		err := s.DB.First(&r, "id = ?", form.ResidentID).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil, ErrResidentNotFound
		}
		if err != nil {
			return nil, nil, fmt.Errorf("failed to get resident: %w", err)
		}
		if !r.IsAlive() {
			return nil, nil, ErrResidentDeceased
		}
		resident = &r
	}

	report := models.DeathReport{
		ResidentID: form.ResidentID,
		Name:       form.Name,
		NIK:        form.NIK,
		DeathDate:  form.DeathDate,
		DeathPlace: form.DeathPlace,
		Cause:      form.Cause,
		Notes:      form.Notes,
	}
	if resident != nil {
		// Snapshot the civil identity so the record survives later edits.
		report.Name = resident.Name
		report.NIK = resident.NIK
	}
	if err := s.DB.Create(&report).Error; err != nil {
		return nil, nil, fmt.Errorf("failed to create death report: %w", err)
	}

	result := &DeathRegistrationResult{Report: &report}
	if resident != nil {
		updates := map[string]interface{}{
			"life_status": models.LifeStatusDeceased,
			"death_date":  form.DeathDate,
		}
		if err := s.DB.Model(resident).Updates(updates).Error; err != nil {
			logger.Warning("Death report", report.ID, "saved but resident status update failed:", err)
			result.Warnings = append(result.Warnings,
				"the report was saved but the resident's life status could not be updated")
		} else {
			result.Resident = resident
		}
	}

	if s.Announce != nil {
		s.Announce.AnnounceDeath(report.ID, report.Name, report.DeathDate)
	}
	return result, nil, nil
}

func (s *VitalEventService) GetDeathReports(pq *models.PaginationQuery) ([]models.DeathReport, models.PaginationResult, error) {
	pq.Normalize()
	var total int64
	if err := s.DB.Model(&models.DeathReport{}).Count(&total).Error; err != nil {
		return nil, models.PaginationResult{}, fmt.Errorf("failed to count death reports: %w", err)
	}
	var reports []models.DeathReport
	if err := s.DB.Order("created_at DESC").Offset(pq.Offset()).Limit(pq.PageSize).
		Find(&reports).Error; err != nil {
		return nil, models.PaginationResult{}, fmt.Errorf("failed to list death reports: %w", err)
	}
	return reports, models.NewPaginationResult(int(total), pq.PageNum, pq.PageSize), nil
}

func (s *VitalEventService) GetDeathReportByID(id string) (*models.DeathReport, error) {
	var report models.DeathReport
	err := s.DB.First(&report, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrReportNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get death report: %w", err)
	}
	return &report, nil
}

func (s *VitalEventService) UpdateDeathReport(id string, form validation.DeathReportForm) (*models.DeathReport, validation.Violations, error) {
	if v := validation.ValidateDeathReport(form); !v.Ok() {
		return nil, v, nil
	}
	report, err := s.GetDeathReportByID(id)
	if err != nil {
		return nil, nil, err
	}
	updates := map[string]interface{}{
		"death_date":  form.DeathDate,
		"death_place": form.DeathPlace,
		"cause":       form.Cause,
		"notes":       form.Notes,
	}
	if report.ResidentID == "" {
		// Unlinked records carry their own identity fields.
		updates["name"] = form.Name
		updates["nik"] = form.NIK
	}
	if err := s.DB.Model(report).Updates(updates).Error; err != nil {
		return nil, nil, fmt.Errorf("failed to update death report: %w", err)
	}
	return report, nil, nil
}

func (s *VitalEventService) DeleteDeathReport(id string) error {
	if _, err := s.GetDeathReportByID(id); err != nil {
		return err
	}
	if err := s.DB.Delete(&models.DeathReport{}, "id = ?", id).Error; err != nil {
		return fmt.Errorf("failed to delete death report: %w", err)
	}
	return nil
}
