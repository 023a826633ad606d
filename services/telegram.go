package services

import (
	"fmt"
	"log"
	"os"
	"strings"
	"time"

	"dental-forms-backend/models"

	"github.com/gofiber/fiber/v2"
)

// Notifier is the outbound chat-bot channel. Implementations must be
// best-effort: failures are logged and never propagated to the caller.
type Notifier interface {
	NotifyContactCreated(f *models.ContactForm)
	NotifyApplicationCreated(f *models.ApplicationForm)
	NotifyStatusChanged(formType, id, clientName, oldStatus, newStatus string)
}

// NoopNotifier is used when bot credentials are not configured.
type NoopNotifier struct{}

func (NoopNotifier) NotifyContactCreated(*models.ContactForm) {
	log.Println("telegram bot not configured, skipping notification")
}

func (NoopNotifier) NotifyApplicationCreated(*models.ApplicationForm) {
	log.Println("telegram bot not configured, skipping notification")
}

func (NoopNotifier) NotifyStatusChanged(string, string, string, string, string) {
	log.Println("telegram bot not configured, skipping notification")
}

// TelegramNotifier sends Markdown summaries through the Bot API.
type TelegramNotifier struct {
	token   string
	chatID  string
	apiBase string
}

// NewNotifierFromEnv returns a TelegramNotifier when TELEGRAM_BOT_TOKEN and
// TELEGRAM_CHAT_ID are both set, otherwise a NoopNotifier.
func NewNotifierFromEnv() Notifier {
	token := os.Getenv("TELEGRAM_BOT_TOKEN")
	chatID := os.Getenv("TELEGRAM_CHAT_ID")
	if token == "" || chatID == "" {
		return NoopNotifier{}
	}
	return &TelegramNotifier{
		token:   token,
		chatID:  chatID,
		apiBase: "https://api.telegram.org",
	}
}

// NewTelegramNotifier builds a notifier against a specific API base URL.
func NewTelegramNotifier(token, chatID, apiBase string) *TelegramNotifier {
	return &TelegramNotifier{token: token, chatID: chatID, apiBase: apiBase}
}

func (n *TelegramNotifier) send(text string) {
	agent := fiber.Post(fmt.Sprintf("%s/bot%s/sendMessage", n.apiBase, n.token))
	agent.JSON(fiber.Map{
		"chat_id":    n.chatID,
		"text":       text,
		"parse_mode": "Markdown",
	})
	code, _, errs := agent.Bytes()
	if len(errs) > 0 {
		log.Printf("telegram send failed: %v", errs[0])
		return
	}
	if code >= 300 {
		log.Printf("telegram send failed: status %d", code)
		return
	}
	log.Println("telegram notification sent")
}

func (n *TelegramNotifier) NotifyContactCreated(f *models.ContactForm) {
	var b strings.Builder
	b.WriteString("🔔 *New contact inquiry*\n\n")
	fmt.Fprintf(&b, "👤 *Name:* %s\n", f.FullName())
	fmt.Fprintf(&b, "📧 *Email:* %s\n", f.Email)
	fmt.Fprintf(&b, "📱 *Phone:* %s\n", f.Phone)
	fmt.Fprintf(&b, "💼 *Position:* %s\n", f.Position)
	location := f.City
	if f.Province != "" {
		location += ", " + f.Province
	}
	if f.Country != "" {
		location += ", " + f.Country
	}
	fmt.Fprintf(&b, "🌍 *Location:* %s\n", location)
	if f.Message != "" {
		fmt.Fprintf(&b, "\n💬 *Message:*\n%s\n", f.Message)
	}
	if f.ContactDays != "" {
		fmt.Fprintf(&b, "\n📅 *Contact days:* %s\n", f.ContactDays)
	}
	fmt.Fprintf(&b, "\n🆔 *Form ID:* `%s`\n", f.Id)
	fmt.Fprintf(&b, "⏰ *Time:* %s", f.CreatedAt.Format(time.RFC1123))
	n.send(b.String())
}

func (n *TelegramNotifier) NotifyApplicationCreated(f *models.ApplicationForm) {
	var b strings.Builder
	b.WriteString("📝 *New job application*\n\n")
	fmt.Fprintf(&b, "👤 *Name:* %s\n", f.FullName())
	fmt.Fprintf(&b, "📧 *Email:* %s\n", f.Email)
	fmt.Fprintf(&b, "📱 *Phone:* %s\n", f.Phone)
	fmt.Fprintf(&b, "💼 *Position:* %s\n", f.ApplicationPosition)
	if f.ContactHours != "" {
		fmt.Fprintf(&b, "\n🕐 *Contact hours:* %s\n", f.ContactHours)
	}
	if f.Message != "" {
		fmt.Fprintf(&b, "\n💬 *Message:*\n%s\n", f.Message)
	}
	if cv := f.Cv(); cv != nil {
		fmt.Fprintf(&b, "\n📎 *CV attached:* %s\n", cv.OriginalName)
	} else {
		b.WriteString("\n❌ *No CV attached*\n")
	}
	fmt.Fprintf(&b, "\n🆔 *Form ID:* `%s`\n", f.Id)
	fmt.Fprintf(&b, "⏰ *Time:* %s", f.CreatedAt.Format(time.RFC1123))
	n.send(b.String())
}

func (n *TelegramNotifier) NotifyStatusChanged(formType, id, clientName, oldStatus, newStatus string) {
	label := "Contact inquiry"
	if formType == "application" {
		label = "Job application"
	}
	var b strings.Builder
	b.WriteString("🔄 *Status update*\n\n")
	fmt.Fprintf(&b, "📋 *Type:* %s\n", label)
	fmt.Fprintf(&b, "🆔 *ID:* `%s`\n", id)
	fmt.Fprintf(&b, "👤 *Client:* %s\n", clientName)
	fmt.Fprintf(&b, "\n📊 *Status changed:*\n   was: %s\n   now: *%s*\n", oldStatus, newStatus)
	fmt.Fprintf(&b, "\n⏰ *Time:* %s", time.Now().Format(time.RFC1123))
	n.send(b.String())
}
