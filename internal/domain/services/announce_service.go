package services

import (
	"encoding/json"
	"fmt"
	"time"

	mqtt "github.com/eclipse/paho.mqtt.golang"

	"siwarga-http-service/internal/infrastructure/config"
	"siwarga-http-service/pkg/logger"
)

const (
	topicBirthAnnouncements = "siwarga/events/birth"
	topicDeathAnnouncements = "siwarga/events/death"

	announcePublishTimeout = 5 * time.Second
)

// VitalEventAnnouncement is the payload published to the neighborhood
// broker when a vital event is registered.
type VitalEventAnnouncement struct {
	Event        string `json:"event"`
	Name         string `json:"name"`
	Date         string `json:"date"`
	Neighborhood string `json:"neighborhood"`
	ReportID     string `json:"report_id"`
	Timestamp    int64  `json:"timestamp"`
}

type InterfaceAnnounceService interface {
	// 1. Connect to the announcement broker
	Connect() error
	// 2. Publish a birth announcement
	AnnounceBirth(reportID, babyName, birthDate string)
	// 3. Publish a death announcement
	AnnounceDeath(reportID, name, deathDate string)
	// 4. Disconnect from the broker
	Disconnect()
}

// AnnounceService publishes vital-event announcements over MQTT. When no
// broker URL is configured every publish is a no-op.
type AnnounceService struct {
	Config *config.Config
	client mqtt.Client
}

func NewAnnounceService(c *config.Config) InterfaceAnnounceService {
	return &AnnounceService{Config: c}
}

func (s *AnnounceService) Connect() error {
	if s.Config.MQTTBrokerURL == "" {
		logger.Info("MQTT broker URL not configured, vital-event announcements disabled")
		return nil
	}

	opts := mqtt.NewClientOptions().
		AddBroker(s.Config.MQTTBrokerURL).
		SetClientID(s.Config.MQTTClientID).
		SetAutoReconnect(true).
		SetConnectRetry(true).
		SetConnectRetryInterval(10 * time.Second).
		SetOnConnectHandler(func(mqtt.Client) {
			logger.Info("Connected to MQTT broker", s.Config.MQTTBrokerURL)
		}).
		SetConnectionLostHandler(func(_ mqtt.Client, err error) {
			logger.Warning("MQTT connection lost:", err)
		})

	s.client = mqtt.NewClient(opts)
	token := s.client.Connect()
	if !token.WaitTimeout(announcePublishTimeout) {
		return fmt.Errorf("timed out connecting to MQTT broker %s", s.Config.MQTTBrokerURL)
	}
	return token.Error()
}

func (s *AnnounceService) AnnounceBirth(reportID, babyName, birthDate string) {
	s.publish(topicBirthAnnouncements, VitalEventAnnouncement{
		Event:        "birth",
		Name:         babyName,
		Date:         birthDate,
		Neighborhood: s.Config.NeighborhoodName,
		ReportID:     reportID,
		Timestamp:    time.Now().Unix(),
	})
}

func (s *AnnounceService) AnnounceDeath(reportID, name, deathDate string) {
	s.publish(topicDeathAnnouncements, VitalEventAnnouncement{
		Event:        "death",
		Name:         name,
		Date:         deathDate,
		Neighborhood: s.Config.NeighborhoodName,
		ReportID:     reportID,
		Timestamp:    time.Now().Unix(),
	})
}

func (s *AnnounceService) publish(topic string, announcement VitalEventAnnouncement) {
	if s.client == nil || !s.client.IsConnected() {
		return
	}
	payload, err := json.Marshal(announcement)
	if err != nil {
		logger.Error("Failed to marshal announcement:", err)
		return
	}
	token := s.client.Publish(topic, 1, false, payload)
	if !token.WaitTimeout(announcePublishTimeout) {
		logger.Warning("Timed out publishing announcement to", topic)
		return
	}
	if err := token.Error(); err != nil {
		logger.Error("Failed to publish announcement to", topic, ":", err)
	}
}

func (s *AnnounceService) Disconnect() {
	if s.client != nil && s.client.IsConnected() {
		s.client.Disconnect(250)
	}
}
