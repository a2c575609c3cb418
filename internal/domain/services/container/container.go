// Package container wires the service layer together and hands single
// shared instances to the controllers.
package container

import (
	"sync"

	"gorm.io/gorm"

	"siwarga-http-service/internal/domain/services"
	"siwarga-http-service/internal/infrastructure/config"
	"siwarga-http-service/pkg/logger"
)

// ServiceContainer holds the shared service instances keyed by name
type ServiceContainer struct {
	DB       *gorm.DB
	Config   *config.Config
	services map[string]interface{}
	mu       sync.RWMutex
}

// NewServiceContainer builds every service and registers it by name
func NewServiceContainer(db *gorm.DB, cfg *config.Config) *ServiceContainer {
	c := &ServiceContainer{
		DB:       db,
		Config:   cfg,
		services: make(map[string]interface{}),
	}

	jwtService := services.NewJWTService(cfg)
	redisService := services.NewRedisService(cfg)
	announceService := services.NewAnnounceService(cfg)
	if err := announceService.Connect(); err != nil {
		logger.Warning("Announcement broker unavailable:", err)
	}

	c.register("jwt", jwtService)
	c.register("redis", redisService)
	c.register("announce", announceService)
	c.register("admin", services.NewAdminService(db, cfg, jwtService))
	c.register("resident", services.NewResidentService(db, cfg))
	c.register("household", services.NewHouseholdService(db, cfg))
	c.register("vital_event", services.NewVitalEventService(db, cfg, announceService))
	c.register("stats", services.NewStatsService(db, cfg, redisService))
	c.register("export", services.NewExportService(db, cfg))

	return c
}

func (c *ServiceContainer) register(name string, service interface{}) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.services[name] = service
}

// GetService returns the registered service instance for a name, or nil
func (c *ServiceContainer) GetService(name string) interface{} {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.services[name]
}

// Close releases the external connections held by the container
func (c *ServiceContainer) Close() {
	if announce, ok := c.GetService("announce").(services.InterfaceAnnounceService); ok {
		announce.Disconnect()
	}
	if cache, ok := c.GetService("redis").(services.InterfaceRedisService); ok {
		if err := cache.Close(); err != nil {
			logger.Warning("Failed to close Redis client:", err)
		}
	}
}
