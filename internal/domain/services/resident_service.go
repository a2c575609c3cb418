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
	ErrResidentNotFound = errors.New("resident not found")
	ErrResidentIsHead   = errors.New("resident is registered as a head of household")
)

// duplicateNIK is the field-keyed shape of a NIK uniqueness conflict
func duplicateNIK() validation.Violations {
	return validation.Violations{"nik": "a resident with this NIK is already registered"}
}

// ResidentFilter narrows resident listings
type ResidentFilter struct {
	RT         string `form:"rt"`
	Gender     string `form:"gender"`
	LifeStatus string `form:"life_status"`
	Search     string `form:"search"`
}

type InterfaceResidentService interface {
	// 1. Create a resident after validation and NIK uniqueness check
	CreateResident(form validation.ResidentForm) (*models.Resident, validation.Violations, error)
	// 2. List residents with filters and pagination
	GetResidents(filter ResidentFilter, pq *models.PaginationQuery) ([]models.Resident, models.PaginationResult, error)
	// 3. Get one resident with household memberships
	GetResidentByID(id string) (*models.Resident, error)
	// 4. Update a resident's civil record fields
	UpdateResident(id string, form validation.ResidentForm) (*models.Resident, validation.Violations, error)
	// 5. Delete a resident and detach memberships, keeping counts consistent
	DeleteResident(id string) error
	// 6. List living residents, used by membership pickers
	GetAliveResidents() ([]models.Resident, error)
}

type ResidentService struct {
	DB     *gorm.DB
	Config *config.Config
}

func NewResidentService(db *gorm.DB, c *config.Config) InterfaceResidentService {
	return &ResidentService{DB: db, Config: c}
}

func (s *ResidentService) CreateResident(form validation.ResidentForm) (*models.Resident, validation.Violations, error) {
	if v := validation.ValidateResident(form); !v.Ok() {
		return nil, v, nil
	}

	var count int64
	if err := s.DB.Model(&models.Resident{}).Where("nik = ?", form.NIK).Count(&count).Error; err != nil {
		return nil, nil, fmt.Errorf("failed to check NIK uniqueness: %w", err)
	}
	if count > 0 {
		return nil, duplicateNIK(), nil
	}

	resident := models.Resident{
		NIK:           form.NIK,
		Name:          form.Name,
		BirthPlace:    form.BirthPlace,
		BirthDate:     form.BirthDate,
		Gender:        form.Gender,
		Address:       form.Address,
		RT:            form.RT,
		RW:            form.RW,
		Religion:      form.Religion,
		MaritalStatus: form.MaritalStatus,
		Occupation:    form.Occupation,
		Education:     form.Education,
		Nationality:   form.Nationality,
	}
	if err := s.DB.Create(&resident).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, duplicateNIK(), nil
		}
		return nil, nil, fmt.Errorf("failed to create resident: %w", err)
	}
	return &resident, nil, nil
}

func (s *ResidentService) GetResidents(filter ResidentFilter, pq *models.PaginationQuery) ([]models.Resident, models.PaginationResult, error) {
	pq.Normalize()
	query := s.DB.Model(&models.Resident{})
	if filter.RT != "" {
		query = query.Where("rt = ?", filter.RT)
	}
	if filter.Gender != "" {
		query = query.Where("gender = ?", filter.Gender)
	}
	if filter.LifeStatus != "" {
		query = query.Where("life_status = ?", filter.LifeStatus)
	}
	if filter.Search != "" {
		pattern := "%" + filter.Search + "%"
		query = query.Where("name LIKE ? OR nik LIKE ?", pattern, pattern)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, models.PaginationResult{}, fmt.Errorf("failed to count residents: %w", err)
	}

	order := "name"
	if pq.Desc {
		order = "name DESC"
	}
	var residents []models.Resident
	if err := query.Order(order).
		Offset(pq.Offset()).Limit(pq.PageSize).
		Find(&residents).Error; err != nil {
		return nil, models.PaginationResult{}, fmt.Errorf("failed to list residents: %w", err)
	}
	return residents, models.NewPaginationResult(int(total), pq.PageNum, pq.PageSize), nil
}

func (s *ResidentService) GetResidentByID(id string) (*models.Resident, error) {
	var resident models.Resident
	err := s.DB.Preload("Memberships").First(&resident, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrResidentNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get resident: %w", err)
	}
	return &resident, nil
}

func (s *ResidentService) UpdateResident(id string, form validation.ResidentForm) (*models.Resident, validation.Violations, error) {
	if v := validation.ValidateResident(form); !v.Ok() {
		return nil, v, nil
	}

	var resident models.Resident
	err := s.DB.First(&resident, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil, ErrResidentNotFound
	}
	if err != nil {
		return nil, nil, fmt.Errorf("failed to get resident: %w", err)
	}

	var count int64
	if err := s.DB.Model(&models.Resident{}).
		Where("nik = ? AND id <> ?", form.NIK, id).
		Count(&count).Error; err != nil {
		return nil, nil, fmt.Errorf("failed to check NIK uniqueness: %w", err)
	}
	if count > 0 {
		return nil, duplicateNIK(), nil
	}

	updates := map[string]interface{}{
		"nik":            form.NIK,
		"name":           form.Name,
		"birth_place":    form.BirthPlace,
		"birth_date":     form.BirthDate,
		"gender":         form.Gender,
		"address":        form.Address,
		"rt":             form.RT,
		"religion":       form.Religion,
		"marital_status": form.MaritalStatus,
		"occupation":     form.Occupation,
		"education":      form.Education,
	}
	if form.RW != "" {
		updates["rw"] = form.RW
	}
	if form.Nationality != "" {
		updates["nationality"] = form.Nationality
	}
	if err := s.DB.Model(&resident).Updates(updates).Error; err != nil {
		return nil, nil, fmt.Errorf("failed to update resident: %w", err)
	}
	return &resident, nil, nil
}

func (s *ResidentService) DeleteResident(id string) error {
	var resident models.Resident
	err := s.DB.First(&resident, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrResidentNotFound
	}
	if err != nil {
		return fmt.Errorf("failed to get resident: %w", err)
	}

	var headCount int64
	if err := s.DB.Model(&models.Household{}).Where("head_id = ?", id).Count(&headCount).Error; err != nil {
		return fmt.Errorf("failed to check head references: %w", err)
	}
	if headCount > 0 {
		return ErrResidentIsHead
	}

	// Detach memberships first so household counts stay consistent.
	var memberships []models.FamilyMember
	if err := s.DB.Where("resident_id = ?", id).Find(&memberships).Error; err != nil {
		return fmt.Errorf("failed to list memberships: %w", err)
	}
	for _, m := range memberships {
		if err := s.DB.Delete(&models.FamilyMember{}, "id = ?", m.ID).Error; err != nil {
			return fmt.Errorf("failed to detach membership: %w", err)
		}
		if err := adjustMemberCount(s.DB, m.HouseholdID, -1); err != nil {
			logger.Error("Failed to adjust member count for household", m.HouseholdID, ":", err)
		}
	}

	if err := s.DB.Delete(&models.Resident{}, "id = ?", id).Error; err != nil {
		return fmt.Errorf("failed to delete resident: %w", err)
	}
	return nil
}

func (s *ResidentService) GetAliveResidents() ([]models.Resident, error) {
	var residents []models.Resident
	if err := s.DB.Where("life_status = ?", models.LifeStatusAlive).
		Order("name").Find(&residents).Error; err != nil {
		return nil, fmt.Errorf("failed to list living residents: %w", err)
	}
	return residents, nil
}

// adjustMemberCount re-reads the household and writes the adjusted member
// count, floored at zero. Shared by the membership workflows.
func adjustMemberCount(db *gorm.DB, householdID string, delta int) error {
	var household models.Household
	if err := db.First(&household, "id = ?", householdID).Error; err != nil {
		return err
	}
	count := household.MemberCount + delta
	if count < 0 {
		count = 0
	}
	return db.Model(&household).Update("member_count", count).Error
}
