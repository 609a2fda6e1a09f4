package email

import (
	"bytes"
	"fmt"
	"html/template"
	"log/slog"
	"net/smtp"
	"strings"
	"time"

	"github.com/cmlabs-hris/hr-dashboard-go/internal/config"
)

const maxRetries = 3

var reminderTemplate = template.Must(template.New("maintenance_reminder.html").Parse(`<!DOCTYPE html>
<html>
<body style="font-family: Arial, sans-serif; color: #1f2937;">
  <h2>Asset maintenance due ({{.Date}})</h2>
  {{if .Overdue}}
  <h3 style="color: #b91c1c;">Overdue</h3>
  <ul>{{range .Overdue}}<li>{{.}}</li>{{end}}</ul>
  {{end}}
  {{if .Upcoming}}
  <h3>Due within {{.WindowDays}} days</h3>
  <ul>{{range .Upcoming}}<li>{{.}}</li>{{end}}</ul>
  {{end}}
</body>
</html>
`))

// ReminderService mails the maintenance digest to facilities staff.
type ReminderService interface {
	SendMaintenanceReminder(day string, windowDays int, upcoming, overdue []string) error
}

type emailServiceImpl struct {
	cfg  config.SMTPConfig
	send func(addr string, a smtp.Auth, from string, to []string, msg []byte) error
}

// NewEmailService creates a new email service instance
func NewEmailService(cfg config.SMTPConfig) ReminderService {
	return &emailServiceImpl{cfg: cfg, send: smtp.SendMail}
}

type reminderEmailData struct {
	Date       string
	WindowDays int
	Upcoming   []string
	Overdue    []string
}

// SendMaintenanceReminder renders the digest and sends it to every recipient
func (s *emailServiceImpl) SendMaintenanceReminder(day string, windowDays int, upcoming, overdue []string) error {
	if len(s.cfg.Recipients) == 0 {
		return nil
	}

	var body bytes.Buffer
	data := reminderEmailData{Date: day, WindowDays: windowDays, Upcoming: upcoming, Overdue: overdue}
	if err := reminderTemplate.Execute(&body, data); err != nil {
		return fmt.Errorf("failed to execute template: %w", err)
	}

	subject := fmt.Sprintf("Maintenance due: %d overdue, %d upcoming", len(overdue), len(upcoming))
	return s.sendHTML(s.cfg.Recipients, subject, body.String())
}

func (s *emailServiceImpl) sendHTML(to []string, subject, htmlBody string) error {
	// Skip sending if SMTP is not configured
	if s.cfg.Host == "" {
		slog.Warn("SMTP not configured, skipping email send", "to", to, "subject", subject)
		return nil
	}

	from := s.cfg.From

	headers := fmt.Sprintf("From: %s <%s>\r\n", s.cfg.FromName, from)
	headers += fmt.Sprintf("To: %s\r\n", strings.Join(to, ", "))
	headers += fmt.Sprintf("Subject: %s\r\n", subject)
	headers += "MIME-Version: 1.0\r\n"
	headers += "Content-Type: text/html; charset=\"UTF-8\"\r\n"
	headers += "\r\n"

	message := []byte(headers + htmlBody)

	var auth smtp.Auth
	if s.cfg.Username != "" {
		auth = smtp.PlainAuth("", s.cfg.Username, s.cfg.Password, s.cfg.Host)
	}
	addr := fmt.Sprintf("%s:%d", s.cfg.Host, s.cfg.Port)

	var lastErr error
	for attempt := 1; attempt <= maxRetries; attempt++ {
		err := s.send(addr, auth, from, to, message)
		if err == nil {
			slog.Info("Email sent successfully", "to", to, "subject", subject, "attempt", attempt)
			return nil
		}

		lastErr = err
		slog.Error("Failed to send email",
			"to", to,
			"subject", subject,
			"attempt", attempt,
			"max_retries", maxRetries,
			"error", err,
		)

		// Wait before retrying (exponential backoff: 1s, 2s, 4s)
		if attempt < maxRetries {
			time.Sleep(s.backoff(attempt))
		}
	}

	return fmt.Errorf("failed to send email after %d attempts: %w", maxRetries, lastErr)
}

func (s *emailServiceImpl) backoff(attempt int) time.Duration {
	base := s.cfg.RetryBackoff
	if base <= 0 {
		base = time.Second
	}
	return time.Duration(1<<(attempt-1)) * base
}
