package services

import (
	"errors"
	"fmt"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"siwarga-http-service/internal/domain/models"
	"siwarga-http-service/internal/domain/validation"
	"siwarga-http-service/internal/infrastructure/config"
	"siwarga-http-service/pkg/logger"
)

var (
	ErrHouseholdNotFound = errors.New("household not found")
	ErrHeadConflict      = errors.New("household already has a head of household")
	ErrMemberExists      = errors.New("resident is already a member of this household")
	ErrMemberNotFound    = errors.New("resident is not a member of this household")
	ErrHeadRemoval       = errors.New("the head of household cannot be removed from the member list")
)

// HouseholdFilter narrows household listings
type HouseholdFilter struct {
	RT     string `form:"rt"`
	Search string `form:"search"`
}

// duplicateKKNumber is the field-keyed shape of a KK number uniqueness conflict
func duplicateKKNumber() validation.Violations {
	return validation.Violations{"kk_number": "a household with this KK number is already registered"}
}

type InterfaceHouseholdService interface {
	// 1. Create a household and its initial member list, with a compensating
	//    delete when the member batch insert fails
	CreateHousehold(form validation.HouseholdForm) (*models.Household, validation.Violations, error)
	// 2. List households with filters and pagination
	GetHouseholds(filter HouseholdFilter, pq *models.PaginationQuery) ([]models.Household, models.PaginationResult, error)
	// 3. Get one household with head and member list
	GetHouseholdByID(id string) (*models.Household, error)
	// 4. Update a household and reconcile its member list with the submitted one
	UpdateHousehold(id string, form validation.HouseholdForm) (*models.Household, validation.Violations, error)
	// 5. Delete a household and its membership rows, keeping residents intact
	DeleteHousehold(id string) error
	// 6. List the members of a household
	GetMembers(householdID string) ([]models.FamilyMember, error)
	// 7. List living residents not yet attached to any household
	GetAvailableResidents(householdID string) ([]models.Resident, error)
	// 8. Add a single member to an existing household
	AddMember(householdID string, entry validation.MemberEntry) (*models.FamilyMember, error)
	// 9. Remove a single member from a household
	RemoveMember(householdID, residentID string) error
}

type HouseholdService struct {
	DB     *gorm.DB
	Config *config.Config
}

func NewHouseholdService(db *gorm.DB, c *config.Config) InterfaceHouseholdService {
	return &HouseholdService{DB: db, Config: c}
}

func (s *HouseholdService) CreateHousehold(form validation.HouseholdForm) (*models.Household, validation.Violations, error) {
	if v := validation.ValidateHousehold(form); !v.Ok() {
		return nil, v, nil
	}

	var count int64
	if err := s.DB.Model(&models.Household{}).Where("kk_number = ?", form.KKNumber).Count(&count).Error; err != nil {
		return nil, nil, fmt.Errorf("failed to check KK number uniqueness: %w", err)
	}
	if count > 0 {
		return nil, duplicateKKNumber(), nil
	}

	headID := ""
	for _, m := range form.Members {
		if m.Relation == models.RelationHead {
			headID = m.ResidentID
		}
	}
	var referenced int64
	ids := make([]string, 0, len(form.Members))
	for _, m := range form.Members {
		ids = append(ids, m.ResidentID)
	}
	if err := s.DB.Model(&models.Resident{}).Where("id IN ?", ids).Count(&referenced).Error; err != nil {
		return nil, nil, fmt.Errorf("failed to resolve member residents: %w", err)
	}
	if int(referenced) != len(uniqueStrings(ids)) {
		return nil, validation.Violations{"members": "every member entry must reference a registered resident"}, nil
	}

	rw := form.RW
	if rw == "" {
		rw = models.DefaultRW
	}
	household := models.Household{
		KKNumber:    form.KKNumber,
		Address:     form.Address,
		RT:          form.RT,
		RW:          rw,
		HeadID:      headID,
		MemberCount: len(form.Members),
	}
	if err := s.DB.Create(&household).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, duplicateKKNumber(), nil
		}
		return nil, nil, fmt.Errorf("failed to create household: %w", err)
	}

	members := make([]models.FamilyMember, 0, len(form.Members))
	for _, m := range form.Members {
		members = append(members, models.FamilyMember{
			HouseholdID: household.ID,
			ResidentID:  m.ResidentID,
			Relation:    m.Relation,
		})
	}
	if err := s.DB.Create(&members).Error; err != nil {
		// Compensate so no household row survives without its member list.
		if delErr := s.DB.Delete(&models.FamilyMember{}, "household_id = ?", household.ID).Error; delErr != nil {
			logger.Error("Failed to clean up members of household", household.ID, ":", delErr)
		}
		if delErr := s.DB.Delete(&models.Household{}, "id = ?", household.ID).Error; delErr != nil {
			logger.Error("Failed to roll back household", household.ID, ":", delErr)
		}
		return nil, nil, fmt.Errorf("failed to register household members: %w", err)
	}

	created, err := s.getHousehold(household.ID)
	return created, nil, err
}

func (s *HouseholdService) GetHouseholds(filter HouseholdFilter, pq *models.PaginationQuery) ([]models.Household, models.PaginationResult, error) {
	pq.Normalize()
	query := s.DB.Model(&models.Household{})
	if filter.RT != "" {
		query = query.Where("rt = ?", filter.RT)
	}
	if filter.Search != "" {
		pattern := "%" + filter.Search + "%"
		query = query.Where("kk_number LIKE ? OR address LIKE ?", pattern, pattern)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, models.PaginationResult{}, fmt.Errorf("failed to count households: %w", err)
	}

	order := "kk_number"
	if pq.Desc {
		order = "kk_number DESC"
	}
	var households []models.Household
	if err := query.Preload("Head").Order(order).
		Offset(pq.Offset()).Limit(pq.PageSize).
		Find(&households).Error; err != nil {
		return nil, models.PaginationResult{}, fmt.Errorf("failed to list households: %w", err)
	}
	return households, models.NewPaginationResult(int(total), pq.PageNum, pq.PageSize), nil
}

func (s *HouseholdService) GetHouseholdByID(id string) (*models.Household, error) {
	return s.getHousehold(id)
}

func (s *HouseholdService) getHousehold(id string) (*models.Household, error) {
	var household models.Household
	err := s.DB.Preload("Head").Preload("Members.Resident").
		First(&household, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrHouseholdNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get household: %w", err)
	}
	return &household, nil
}

func (s *HouseholdService) UpdateHousehold(id string, form validation.HouseholdForm) (*models.Household, validation.Violations, error) {
	if v := validation.ValidateHousehold(form); !v.Ok() {
		return nil, v, nil
	}

	household, err := s.getHousehold(id)
	if err != nil {
		return nil, nil, err
	}

	var count int64
	if err := s.DB.Model(&models.Household{}).
		Where("kk_number = ? AND id <> ?", form.KKNumber, id).
		Count(&count).Error; err != nil {
		return nil, nil, fmt.Errorf("failed to check KK number uniqueness: %w", err)
	}
	if count > 0 {
		return nil, duplicateKKNumber(), nil
	}

	headID := ""
	submitted := make([]string, 0, len(form.Members))
	for _, m := range form.Members {
		submitted = append(submitted, m.ResidentID)
		if m.Relation == models.RelationHead {
			headID = m.ResidentID
		}
	}

	updates := map[string]interface{}{
		"kk_number":    form.KKNumber,
		"address":      form.Address,
		"rt":           form.RT,
		"head_id":      headID,
		"member_count": len(form.Members),
	}
	if form.RW != "" {
		updates["rw"] = form.RW
	}
	if err := s.DB.Model(household).Updates(updates).Error; err != nil {
		return nil, nil, fmt.Errorf("failed to update household: %w", err)
	}

	// Reconcile stored memberships with the submitted list: drop rows that
	// are no longer listed, then upsert the listed ones on the
	// (household, resident) pair so re-submitting is idempotent.
	if err := s.DB.Where("household_id = ? AND resident_id NOT IN ?", id, submitted).
		Delete(&models.FamilyMember{}).Error; err != nil {
		return nil, nil, fmt.Errorf("failed to drop removed members: %w", err)
	}
	members := make([]models.FamilyMember, 0, len(form.Members))
	for _, m := range form.Members {
		members = append(members, models.FamilyMember{
			HouseholdID: id,
			ResidentID:  m.ResidentID,
			Relation:    m.Relation,
		})
	}
	if err := s.DB.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "household_id"}, {Name: "resident_id"}},
		DoUpdates: clause.AssignmentColumns([]string{"relation"}),
	}).Create(&members).Error; err != nil {
		return nil, nil, fmt.Errorf("failed to reconcile household members: %w", err)
	}

	updated, err := s.getHousehold(id)
	return updated, nil, err
}

func (s *HouseholdService) DeleteHousehold(id string) error {
	if _, err := s.getHousehold(id); err != nil {
		return err
	}
	if err := s.DB.Delete(&models.FamilyMember{}, "household_id = ?", id).Error; err != nil {
		return fmt.Errorf("failed to delete household members: %w", err)
	}
	if err := s.DB.Delete(&models.Household{}, "id = ?", id).Error; err != nil {
		return fmt.Errorf("failed to delete household: %w", err)
	}
	return nil
}

func (s *HouseholdService) GetMembers(householdID string) ([]models.FamilyMember, error) {
	if _, err := s.getHousehold(householdID); err != nil {
		return nil, err
	}
	var members []models.FamilyMember
	if err := s.DB.Preload("Resident").
		Where("household_id = ?", householdID).
		Order("created_at").Find(&members).Error; err != nil {
		return nil, fmt.Errorf("failed to list household members: %w", err)
	}
	return members, nil
}

func (s *HouseholdService) GetAvailableResidents(householdID string) ([]models.Resident, error) {
	if _, err := s.getHousehold(householdID); err != nil {
		return nil, err
	}
	var residents []models.Resident
	err := s.DB.Where("life_status = ?", models.LifeStatusAlive).
		Where("id NOT IN (?)", s.DB.Model(&models.FamilyMember{}).Select("resident_id")).
		Order("name").Find(&residents).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list available residents: %w", err)
	}
	return residents, nil
}

func (s *HouseholdService) AddMember(householdID string, entry validation.MemberEntry) (*models.FamilyMember, error) {
	if _, err := s.getHousehold(householdID); err != nil {
		return nil, err
	}
	if entry.Relation == models.RelationHead {
		return nil, ErrHeadConflict
	}
	valid := false
	for _, r := range models.RelationOptions {
		if entry.Relation == r {
			valid = true
		}
	}
	if !valid {
		return nil, fmt.Errorf("unknown relation %q", entry.Relation)
	}

	var resident models.Resident
	err := s.DB.First(&resident, "id = ?", entry.ResidentID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrResidentNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get resident: %w", err)
	}

	var count int64
	if err := s.DB.Model(&models.FamilyMember{}).
		Where("household_id = ? AND resident_id = ?", householdID, entry.ResidentID).
		Count(&count).Error; err != nil {
		return nil, fmt.Errorf("failed to check existing membership: %w", err)
	}
	if count > 0 {
		return nil, ErrMemberExists
	}

	member := models.FamilyMember{
		HouseholdID: householdID,
		ResidentID:  entry.ResidentID,
		Relation:    entry.Relation,
	}
	if err := s.DB.Create(&member).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrMemberExists
		}
		return nil, fmt.Errorf("failed to add household member: %w", err)
	}
	if err := adjustMemberCount(s.DB, householdID, 1); err != nil {
		logger.Error("Failed to adjust member count for household", householdID, ":", err)
	}
	member.Resident = &resident
	return &member, nil
}

func (s *HouseholdService) RemoveMember(householdID, residentID string) error {
	if _, err := s.getHousehold(householdID); err != nil {
		return err
	}
	var member models.FamilyMember
	err := s.DB.Where("household_id = ? AND resident_id = ?", householdID, residentID).
		First(&member).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrMemberNotFound
	}
	if err != nil {
		return fmt.Errorf("failed to get membership: %w", err)
	}
	if member.Relation == models.RelationHead {
		return ErrHeadRemoval
	}
	if err := s.DB.Delete(&models.FamilyMember{}, "id = ?", member.ID).Error; err != nil {
		return fmt.Errorf("failed to remove household member: %w", err)
	}
	if err := adjustMemberCount(s.DB, householdID, -1); err != nil {
		logger.Error("Failed to adjust member count for household", householdID, ":", err)
	}
	return nil
}

func uniqueStrings(in []string) []string {
	seen := make(map[string]struct{}, len(in))
	out := make([]string, 0, len(in))
	for _, s := range in {
		if _, ok := seen[s]; ok {
			continue
		}
		seen[s] = struct{}{}
		out = append(out, s)
	}
	return out
}
