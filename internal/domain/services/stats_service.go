package services

import (
	"context"
	"fmt"
	"time"

	"gorm.io/gorm"

	"siwarga-http-service/internal/domain/models"
	"siwarga-http-service/internal/infrastructure/config"
	"siwarga-http-service/pkg/logger"
)

const (
	cacheKeyDashboard     = "siwarga:stats:dashboard"
	cacheKeyDistributions = "siwarga:stats:distributions"

	statsCacheTTL = 5 * time.Minute
)

// DashboardStats holds the headline counters shown on the registry dashboard
type DashboardStats struct {
	TotalResidents    int64 `json:"total_residents"`
	AliveResidents    int64 `json:"alive_residents"`
	DeceasedResidents int64 `json:"deceased_residents"`
	MaleResidents     int64 `json:"male_residents"`
	FemaleResidents   int64 `json:"female_residents"`
	TotalHouseholds   int64 `json:"total_households"`
	TotalBirthReports int64 `json:"total_birth_reports"`
	TotalDeathReports int64 `json:"total_death_reports"`
}

// DistributionBucket is one labelled slice of a distribution
type DistributionBucket struct {
	Label string `json:"label"`
	Count int64  `json:"count"`
}

// DistributionStats holds the demographic breakdowns of living residents
type DistributionStats struct {
	ByRT            []DistributionBucket `json:"by_rt"`
	ByReligion      []DistributionBucket `json:"by_religion"`
	ByAgeGroup      []DistributionBucket `json:"by_age_group"`
	ByMaritalStatus []DistributionBucket `json:"by_marital_status"`
}

type InterfaceStatsService interface {
	// 1. Headline dashboard counters, cached
	GetDashboard(ctx context.Context) (*DashboardStats, error)
	// 2. Demographic distributions of living residents, cached
	GetDistributions(ctx context.Context) (*DistributionStats, error)
	// 3. Drop the cached aggregates after a write
	InvalidateCache(ctx context.Context)
}

type StatsService struct {
	DB     *gorm.DB
	Config *config.Config
	Cache  InterfaceRedisService
}

func NewStatsService(db *gorm.DB, c *config.Config, cache InterfaceRedisService) InterfaceStatsService {
	return &StatsService{DB: db, Config: c, Cache: cache}
}

func (s *StatsService) GetDashboard(ctx context.Context) (*DashboardStats, error) {
	if s.Cache != nil {
		var cached DashboardStats
		if err := s.Cache.GetJSON(ctx, cacheKeyDashboard, &cached); err == nil {
			return &cached, nil
		}
	}

	stats := DashboardStats{}
	counts := []struct {
		dest  *int64
		query *gorm.DB
	}{
		{&stats.TotalResidents, s.DB.Model(&models.Resident{})},
		{&stats.AliveResidents, s.DB.Model(&models.Resident{}).Where("life_status = ?", models.LifeStatusAlive)},
		{&stats.DeceasedResidents, s.DB.Model(&models.Resident{}).Where("life_status = ?", models.LifeStatusDeceased)},
		{&stats.MaleResidents, s.DB.Model(&models.Resident{}).Where("gender = ?", models.GenderMale)},
		{&stats.FemaleResidents, s.DB.Model(&models.Resident{}).Where("gender = ?", models.GenderFemale)},
		{&stats.TotalHouseholds, s.DB.Model(&models.Household{})},
		{&stats.TotalBirthReports, s.DB.Model(&models.BirthReport{})},
		{&stats.TotalDeathReports, s.DB.Model(&models.DeathReport{})},
	}
	for _, c := range counts {
		if err := c.query.Count(c.dest).Error; err != nil {
			return nil, fmt.Errorf("failed to compute dashboard counters: %w", err)
		}
	}

	if s.Cache != nil {
		if err := s.Cache.SetJSON(ctx, cacheKeyDashboard, &stats, statsCacheTTL); err != nil {
			logger.Warning("Failed to cache dashboard stats:", err)
		}
	}
	return &stats, nil
}

func (s *StatsService) GetDistributions(ctx context.Context) (*DistributionStats, error) {
	if s.Cache != nil {
		var cached DistributionStats
		if err := s.Cache.GetJSON(ctx, cacheKeyDistributions, &cached); err == nil {
			return &cached, nil
		}
	}

	byRT, err := s.groupAlive("rt")
	if err != nil {
		return nil, err
	}
	byReligion, err := s.groupAlive("religion")
	if err != nil {
		return nil, err
	}
	byMarital, err := s.groupAlive("marital_status")
	if err != nil {
		return nil, err
	}
	byAge, err := s.ageGroups()
	if err != nil {
		return nil, err
	}

	stats := &DistributionStats{
		ByRT:            byRT,
		ByReligion:      byReligion,
		ByAgeGroup:      byAge,
		ByMaritalStatus: byMarital,
	}
	if s.Cache != nil {
		if err := s.Cache.SetJSON(ctx, cacheKeyDistributions, stats, statsCacheTTL); err != nil {
			logger.Warning("Failed to cache distribution stats:", err)
		}
	}
	return stats, nil
}

func (s *StatsService) InvalidateCache(ctx context.Context) {
	if s.Cache == nil {
		return
	}
	if err := s.Cache.Invalidate(ctx, cacheKeyDashboard, cacheKeyDistributions); err != nil {
		logger.Warning("Failed to invalidate stats cache:", err)
	}
}

func (s *StatsService) groupAlive(column string) ([]DistributionBucket, error) {
	var buckets []DistributionBucket
	err := s.DB.Model(&models.Resident{}).
		Select(column+" AS label, COUNT(*) AS count").
		Where("life_status = ?", models.LifeStatusAlive).
		Group(column).Order(column).
		Scan(&buckets).Error
	if err != nil {
		return nil, fmt.Errorf("failed to compute %s distribution: %w", column, err)
	}
	return buckets, nil
}

// ageGroups buckets living residents by age computed from the stored birth
// date. Rows with unparseable dates are skipped.
func (s *StatsService) ageGroups() ([]DistributionBucket, error) {
	var rows []struct{ BirthDate string }
	err := s.DB.Model(&models.Resident{}).
		Select("birth_date").
		Where("life_status = ?", models.LifeStatusAlive).
		Scan(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("failed to read birth dates: %w", err)
	}

	labels := []string{"0-5", "6-17", "18-30", "31-45", "46-60", "60+"}
	counts := make(map[string]int64, len(labels))
	now := time.Now()
	for _, r := range rows {
		born, err := time.Parse("2006-01-02", r.BirthDate)
		if err != nil {
			continue
		}
		age := now.Year() - born.Year()
		if now.YearDay() < born.YearDay() {
			age--
		}
		switch {
		case age <= 5:
			counts["0-5"]++
		case age <= 17:
			counts["6-17"]++
		case age <= 30:
			counts["18-30"]++
		case age <= 45:
			counts["31-45"]++
		case age <= 60:
			counts["46-60"]++
		default:
			counts["60+"]++
		}
	}

	buckets := make([]DistributionBucket, 0, len(labels))
	for _, label := range labels {
		buckets = append(buckets, DistributionBucket{Label: label, Count: counts[label]})
	}
	return buckets, nil
}
