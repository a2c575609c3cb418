package services

import (
	"errors"
	"fmt"

	"gorm.io/gorm"

	"siwarga-http-service/internal/domain/models"
	"siwarga-http-service/internal/infrastructure/config"
	"siwarga-http-service/pkg/logger"
)

var (
	ErrAdminNotFound     = errors.New("registrar account not found")
	ErrAdminExists       = errors.New("a registrar account with this username already exists")
	ErrPasswordIncorrect = errors.New("username or password is incorrect")
)

// AdminForm is the submitted shape for creating or editing a registrar account
type AdminForm struct {
	Username string `json:"username"`
	Password string `json:"password"`
	Email    string `json:"email"`
	Phone    string `json:"phone"`
	Role     string `json:"role"`
}

type InterfaceAdminService interface {
	// 1. Verify credentials and issue a token
	Login(username, password string) (string, *models.Admin, error)
	// 2. Create a registrar account
	CreateAdmin(form AdminForm) (*models.Admin, error)
	// 3. List registrar accounts
	GetAdmins(pq *models.PaginationQuery) ([]models.Admin, models.PaginationResult, error)
	// 4. Get one registrar account
	GetAdminByID(id string) (*models.Admin, error)
	// 5. Update a registrar account
	UpdateAdmin(id string, form AdminForm) (*models.Admin, error)
	// 6. Delete a registrar account
	DeleteAdmin(id string) error
	// 7. Seed the default account on first boot
	EnsureDefaultAdmin() error
}

type AdminService struct {
	DB     *gorm.DB
	Config *config.Config
	JWT    InterfaceJWTService
}

func NewAdminService(db *gorm.DB, c *config.Config, jwtService InterfaceJWTService) InterfaceAdminService {
	return &AdminService{DB: db, Config: c, JWT: jwtService}
}

func (s *AdminService) Login(username, password string) (string, *models.Admin, error) {
	var admin models.Admin
	err := s.DB.First(&admin, "username = ?", username).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return "", nil, ErrPasswordIncorrect
	}
	if err != nil {
		return "", nil, fmt.Errorf("failed to get registrar account: %w", err)
	}
	if !models.CheckPasswordHash(password, admin.Password) {
		return "", nil, ErrPasswordIncorrect
	}

	token, err := s.JWT.GenerateToken(&RegistrarIdentity{
		ID:       admin.ID,
		Username: admin.Username,
		Role:     admin.Role,
	})
	if err != nil {
		return "", nil, fmt.Errorf("failed to sign token: %w", err)
	}
	return token, &admin, nil
}

func (s *AdminService) CreateAdmin(form AdminForm) (*models.Admin, error) {
	if form.Username == "" || form.Password == "" {
		return nil, errors.New("username and password are required")
	}
	var count int64
	if err := s.DB.Model(&models.Admin{}).Where("username = ?", form.Username).Count(&count).Error; err != nil {
		return nil, fmt.Errorf("failed to check username uniqueness: %w", err)
	}
	if count > 0 {
		return nil, ErrAdminExists
	}

	admin := models.Admin{
		Username: form.Username,
		Password: form.Password,
		Email:    form.Email,
		Phone:    form.Phone,
		Role:     form.Role,
	}
	if err := s.DB.Create(&admin).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrAdminExists
		}
		return nil, fmt.Errorf("failed to create registrar account: %w", err)
	}
	return &admin, nil
}

func (s *AdminService) GetAdmins(pq *models.PaginationQuery) ([]models.Admin, models.PaginationResult, error) {
	pq.Normalize()
	var total int64
	if err := s.DB.Model(&models.Admin{}).Count(&total).Error; err != nil {
		return nil, models.PaginationResult{}, fmt.Errorf("failed to count registrar accounts: %w", err)
	}
	var admins []models.Admin
	if err := s.DB.Order("username").Offset(pq.Offset()).Limit(pq.PageSize).
		Find(&admins).Error; err != nil {
		return nil, models.PaginationResult{}, fmt.Errorf("failed to list registrar accounts: %w", err)
	}
	return admins, models.NewPaginationResult(int(total), pq.PageNum, pq.PageSize), nil
}

func (s *AdminService) GetAdminByID(id string) (*models.Admin, error) {
	var admin models.Admin
	err := s.DB.First(&admin, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrAdminNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get registrar account: %w", err)
	}
	return &admin, nil
}

func (s *AdminService) UpdateAdmin(id string, form AdminForm) (*models.Admin, error) {
	admin, err := s.GetAdminByID(id)
	if err != nil {
		return nil, err
	}

	if form.Username != "" && form.Username != admin.Username {
		var count int64
		if err := s.DB.Model(&models.Admin{}).
			Where("username = ? AND id <> ?", form.Username, id).
			Count(&count).Error; err != nil {
			return nil, fmt.Errorf("failed to check username uniqueness: %w", err)
		}
		if count > 0 {
			return nil, ErrAdminExists
		}
		admin.Username = form.Username
	}
	if form.Password != "" {
		admin.Password = form.Password
	}
	if form.Email != "" {
		admin.Email = form.Email
	}
	if form.Phone != "" {
		admin.Phone = form.Phone
	}
	if form.Role != "" {
		admin.Role = form.Role
	}
	if err := s.DB.Save(admin).Error; err != nil {
		return nil, fmt.Errorf("failed to update registrar account: %w", err)
	}
	return admin, nil
}

func (s *AdminService) DeleteAdmin(id string) error {
	if _, err := s.GetAdminByID(id); err != nil {
		return err
	}
	if err := s.DB.Delete(&models.Admin{}, "id = ?", id).Error; err != nil {
		return fmt.Errorf("failed to delete registrar account: %w", err)
	}
	return nil
}

func (s *AdminService) EnsureDefaultAdmin() error {
	var count int64
	if err := s.DB.Model(&models.Admin{}).Count(&count).Error; err != nil {
		return fmt.Errorf("failed to count registrar accounts: %w", err)
	}
	if count > 0 {
		return nil
	}
	admin := models.Admin{
		Username: "admin",
		Password: s.Config.DefaultAdminPassword,
		Role:     "admin_rw",
	}
	if err := s.DB.Create(&admin).Error; err != nil {
		return fmt.Errorf("failed to seed default registrar account: %w", err)
	}
	logger.Info("Seeded default registrar account 'admin'")
	return nil
}
