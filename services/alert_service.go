// services/alert_service.go
package services

import (
	"os"
	"strings"
	"time"

	"carwash-backend/i18n"
	"carwash-backend/models"
	"carwash-backend/utils"

	"github.com/google/uuid"
	"github.com/robfig/cron/v3"
	"github.com/sirupsen/logrus"
	"github.com/twilio/twilio-go"
	twilioApi "github.com/twilio/twilio-go/rest/api/v2010"
	"gorm.io/gorm"
)

// AlertService watches inventory lifespans and messages owners when an
// item goes critical.
type AlertService struct {
	db     *gorm.DB
	client *twilio.RestClient
	log    *logrus.Entry
}

func NewAlertService(db *gorm.DB) *AlertService {
	accountSid := os.Getenv("TWILIO_ACCOUNT_SID")
	authToken := os.Getenv("TWILIO_AUTH_TOKEN")

	return &AlertService{
		db: db,
		client: twilio.NewRestClientWithParams(twilio.ClientParams{
			Username: accountSid,
			Password: authToken,
		}),
		log: logrus.WithField("component", "alerts"),
	}
}

// StartScheduler runs the sweep every day at 9 AM.
func (s *AlertService) StartScheduler() {
	c := cron.New()

	if _, err := c.AddFunc("0 9 * * *", s.SendDailyAlerts); err != nil {
		s.log.WithError(err).Error("Failed to schedule daily alerts")
		return
	}

	c.Start()
	s.log.Info("Alert scheduler started")
}

func (s *AlertService) SendDailyAlerts() {
	s.log.Info("Starting daily inventory alert sweep")

	var owners []models.User
	if err := s.db.Find(&owners, "is_active = ?", true).Error; err != nil {
		s.log.WithError(err).Error("Failed to fetch owners")
		return
	}

	for _, owner := range owners {
		s.ProcessOwnerAlerts(owner)
	}

	s.log.Info("Daily inventory alert sweep completed")
}

func (s *AlertService) ProcessOwnerAlerts(owner models.User) {
	if owner.Phone == "" {
		return
	}

	var items []models.InventoryItem
	if err := s.db.Where("user_id = ?", owner.ID).Find(&items).Error; err != nil {
		s.log.WithError(err).WithField("user", owner.ID).Error("Failed to fetch inventory")
		return
	}

	now := time.Now()
	for _, item := range items {
		remaining := item.RemainingLifespan(now)
		if remaining == nil || models.LifespanBand(*remaining) != models.LifespanCritical {
			continue
		}
		if s.alreadyAlertedToday(owner.ID, item.ID, now) {
			continue
		}
		s.sendAlert(owner, item)
	}
}

// alreadyAlertedToday keeps the sweep idempotent across restarts.
func (s *AlertService) alreadyAlertedToday(userID uuid.UUID, itemID int64, now time.Time) bool {
	var count int64
	s.db.Model(&models.AlertLog{}).
		Where("user_id = ? AND inventory_item_id = ? AND sent_at >= ?",
			userID, itemID, utils.BeginningOfDay(now)).
		Count(&count)
	return count > 0
}

func (s *AlertService) sendAlert(owner models.User, item models.InventoryItem) {
	lang := i18n.Language(owner.Language)
	message := strings.ReplaceAll(i18n.T(lang, i18n.KeyInventoryLifespanAlert), "[ItemName]", item.Name)

	// WhatsApp for E.164 numbers, plain SMS otherwise.
	channel := "sms"
	to := owner.Phone
	if strings.HasPrefix(owner.Phone, "+") {
		to = "whatsapp:" + owner.Phone
		channel = "whatsapp"
	}

	params := &twilioApi.CreateMessageParams{}
	params.SetTo(to)
	params.SetBody(message)

	if channel == "whatsapp" {
		params.SetFrom("whatsapp:" + os.Getenv("TWILIO_WHATSAPP_NUMBER"))
	} else {
		params.SetFrom(os.Getenv("TWILIO_PHONE_NUMBER"))
	}

	resp, err := s.client.Api.CreateMessage(params)
	status := "sent"
	errorMsg := ""

	if err != nil {
		s.log.WithError(err).WithField("to", owner.Phone).Error("Failed to send alert")
		status = "failed"
		errorMsg = err.Error()
	} else if resp.Sid != nil {
		s.log.WithFields(logrus.Fields{"to": owner.Phone, "sid": *resp.Sid}).Info("Alert sent")
	} else {
		s.log.WithField("to", owner.Phone).Info("Alert sent, no SID returned")
	}

	alertLog := models.AlertLog{
		UserID:          owner.ID,
		InventoryItemID: item.ID,
		Message:         message,
		Status:          status,
		ErrorMessage:    errorMsg,
		Channel:         channel,
		SentAt:          time.Now(),
	}

	if err := s.db.Create(&alertLog).Error; err != nil {
		s.log.WithError(err).WithField("item", item.ID).Error("Failed to log alert")
	}
}
