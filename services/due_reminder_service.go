package services

import (
	"fmt"
	"log"
	"os"
	"strings"
	"time"

	"tailorshop-backend/models"
	"tailorshop-backend/utils"

	"github.com/robfig/cron/v3"
	"github.com/twilio/twilio-go"
	twilioApi "github.com/twilio/twilio-go/rest/api/v2010"
	"gorm.io/gorm"
)

// DueReminderService messages customers whose orders are due the next day.
type DueReminderService struct {
	db     *gorm.DB
	client *twilio.RestClient
}

func NewDueReminderService(db *gorm.DB) *DueReminderService {
	accountSid := os.Getenv("TWILIO_ACCOUNT_SID")
	authToken := os.Getenv("TWILIO_AUTH_TOKEN")

	return &DueReminderService{
		db: db,
		client: twilio.NewRestClientWithParams(twilio.ClientParams{
			Username: accountSid,
			Password: authToken,
		}),
	}
}

// StartScheduler runs the due-date check every day at 9 AM.
func (s *DueReminderService) StartScheduler() {
	c := cron.New()

	c.AddFunc("0 9 * * *", s.SendDueReminders)

	c.Start()
	log.Println("Due-date reminder scheduler started")
}

// SendDueReminders finds unfinished orders due tomorrow and messages each
// order's customer once. Orders already reminded today are skipped.
func (s *DueReminderService) SendDueReminders() {
	log.Println("Starting due-date reminder processing...")

	tomorrow := utils.BeginningOfDay(time.Now()).AddDate(0, 0, 1)

	var orders []models.Order
	if err := s.db.
		Where("due_date >= ? AND due_date < ? AND LOWER(status) NOT IN ('completed', 'delivered')",
			tomorrow, tomorrow.AddDate(0, 0, 1)).
		Find(&orders).Error; err != nil {
		log.Printf("Failed to fetch due orders: %v", err)
		return
	}

	for _, order := range orders {
		s.remindOrder(order)
	}

	log.Println("Due-date reminder processing completed")
}

func (s *DueReminderService) remindOrder(order models.Order) {
	// One reminder per order per day
	today := utils.BeginningOfDay(time.Now())
	var alreadySent int64
	s.db.Model(&models.ReminderLog{}).
		Where("order_id = ? AND sent_at >= ? AND status = 'sent'", order.ID, today).
		Count(&alreadySent)
	if alreadySent > 0 {
		return
	}

	var bill models.Bill
	if err := s.db.First(&bill, order.BillID).Error; err != nil {
		log.Printf("Order %d: no bill found, skipping reminder: %v", order.ID, err)
		return
	}
	if bill.MobileNumber == "" {
		log.Printf("Order %d: bill %d has no mobile number, skipping reminder", order.ID, bill.ID)
		return
	}

	message := fmt.Sprintf("Hello %s, your %s (bill %s) will be ready for pickup tomorrow, %s.",
		bill.CustomerName, order.GarmentType, order.BillNumber,
		order.DueDate.Format("02 Jan 2006"))

	// WhatsApp when the number is in E.164 format, SMS otherwise
	channel := "sms"
	to := bill.MobileNumber
	if strings.HasPrefix(bill.MobileNumber, "+") {
		to = "whatsapp:" + bill.MobileNumber
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
		log.Printf("Failed to send reminder for order %d to %s: %v", order.ID, bill.MobileNumber, err)
		status = "failed"
		errorMsg = err.Error()
	} else if resp.Sid != nil {
		log.Printf("Reminder sent for order %d to %s, SID: %s", order.ID, bill.MobileNumber, *resp.Sid)
	} else {
		log.Printf("Reminder sent for order %d to %s, but no SID returned", order.ID, bill.MobileNumber)
	}

	reminderLog := models.ReminderLog{
		OrderID:      order.ID,
		MobileNumber: bill.MobileNumber,
		Message:      message,
		Status:       status,
		ErrorMessage: errorMsg,
		Channel:      channel,
		SentAt:       time.Now(),
	}

	if err := s.db.Create(&reminderLog).Error; err != nil {
		log.Printf("Failed to log reminder for order %d: %v", order.ID, err)
	}
}
