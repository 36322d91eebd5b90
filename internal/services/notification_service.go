package services

import (
	"fmt"
	"html"
	"time"

	"github.com/sendgrid/rest"
	"github.com/sendgrid/sendgrid-go"
	"github.com/sendgrid/sendgrid-go/helpers/mail"

	"github.com/fleetcover/quote-service/internal/config"
	"github.com/fleetcover/quote-service/internal/models"
	"github.com/fleetcover/quote-service/internal/schema"
)

// EmailSender is the slice of sendgrid.Client the dispatcher needs; tests
// substitute their own.
type EmailSender interface {
	Send(email *mail.SGMailV3) (*rest.Response, error)
}

// NotificationService composes and sends the staff notice plus the customer
// confirmation for each successful submission. Callers treat dispatch as
// fire-and-forget: failures are logged upstream and never affect the
// originating request or the persisted record.
type NotificationService interface {
	DispatchQuoteNotifications(q *models.TransportQuote) error
	DispatchContactNotification(m *models.ContactMessage) error
	DispatchServiceRequestNotification(sr *models.ServiceRequest) error
}

type notificationService struct {
	cfg    *config.Config
	sender EmailSender
}

func NewNotificationService(cfg *config.Config) NotificationService {
	return &notificationService{
		cfg:    cfg,
		sender: sendgrid.NewSendClient(cfg.SendgridAPIKey),
	}
}

// NewNotificationServiceWithSender injects a custom sender (tests).
func NewNotificationServiceWithSender(cfg *config.Config, sender EmailSender) NotificationService {
	return &notificationService{cfg: cfg, sender: sender}
}

func (s *notificationService) DispatchQuoteNotifications(q *models.TransportQuote) error {
	label := schema.Label(q.QuoteType)

	if err := s.sendQuoteStaffNotice(q, label); err != nil {
		return err
	}
	return s.sendQuoteConfirmation(q, label)
}

func (s *notificationService) sendQuoteStaffNotice(q *models.TransportQuote, label string) error {
	from := mail.NewEmail(s.cfg.OrganizationName+" Quote-Bot", s.cfg.FromEmail)
	to := mail.NewEmail(s.cfg.OrganizationName+" Team", s.cfg.NotifyEmail)

	subject := fmt.Sprintf("[Quote][%s] %s — %s", q.ReferenceNumber, q.BusinessName, label)
	plainTextContent := fmt.Sprintf(
		"New %s quote request.\n\nReference: %s\nBusiness: %s\nContact: %s\nEmail: %s\nPhone: %s\nState: %s",
		label, q.ReferenceNumber, q.BusinessName, q.ContactName, q.Email, q.Phone, q.State,
	)
	htmlContent := fmt.Sprintf(
		quoteStaffNoticeEmailHTML,
		html.EscapeString(label),
		html.EscapeString(q.ReferenceNumber),
		html.EscapeString(q.BusinessName),
		html.EscapeString(q.ContactName),
		html.EscapeString(q.Email),
		html.EscapeString(q.Phone),
		html.EscapeString(q.State),
		time.Now().UTC().Format(time.RFC1123Z),
	)

	msg := mail.NewSingleEmail(from, subject, to, plainTextContent, htmlContent)
	_, err := s.sender.Send(msg)
	return err
}

func (s *notificationService) sendQuoteConfirmation(q *models.TransportQuote, label string) error {
	from := mail.NewEmail(s.cfg.OrganizationName, s.cfg.FromEmail)
	to := mail.NewEmail(q.ContactName, q.Email)

	subject := fmt.Sprintf("Your %s quote request — %s", label, q.ReferenceNumber)
	plainTextContent := fmt.Sprintf(
		"Thanks for requesting a %s quote. Your reference number is %s. A specialist will be in touch shortly.\n\n— %s",
		label, q.ReferenceNumber, s.cfg.OrganizationName,
	)
	htmlContent := fmt.Sprintf(
		quoteConfirmationEmailHTML,
		html.EscapeString(label),
		html.EscapeString(q.ReferenceNumber),
		time.Now().Year(),
	)

	msg := mail.NewSingleEmail(from, subject, to, plainTextContent, htmlContent)
	_, err := s.sender.Send(msg)
	return err
}

func (s *notificationService) DispatchContactNotification(m *models.ContactMessage) error {
	from := mail.NewEmail(s.cfg.OrganizationName+" Contact-Bot", s.cfg.FromEmail)
	to := mail.NewEmail(s.cfg.OrganizationName+" Team", s.cfg.NotifyEmail)

	subject := fmt.Sprintf("[Contact] %s", m.Name)
	plainTextContent := fmt.Sprintf(
		"New contact message.\n\nName: %s\nEmail: %s\nPhone: %s\nSubject: %s\n\n%s",
		m.Name, m.Email, m.Phone, m.Subject, m.Message,
	)
	items := fmt.Sprintf(
		"<li><strong>Name:</strong> %s</li><li><strong>Email:</strong> %s</li><li><strong>Phone:</strong> %s</li><li><strong>Subject:</strong> %s</li><li><strong>Message:</strong> %s</li>",
		html.EscapeString(m.Name), html.EscapeString(m.Email), html.EscapeString(m.Phone),
		html.EscapeString(m.Subject), html.EscapeString(m.Message),
	)
	htmlContent := fmt.Sprintf(
		inquiryStaffNoticeEmailHTML,
		"New Contact Message", items, time.Now().UTC().Format(time.RFC1123Z),
	)

	msg := mail.NewSingleEmail(from, subject, to, plainTextContent, htmlContent)
	_, err := s.sender.Send(msg)
	return err
}

func (s *notificationService) DispatchServiceRequestNotification(sr *models.ServiceRequest) error {
	from := mail.NewEmail(s.cfg.OrganizationName+" Service-Bot", s.cfg.FromEmail)
	to := mail.NewEmail(s.cfg.OrganizationName+" Team", s.cfg.NotifyEmail)

	subject := fmt.Sprintf("[Service][%s] %s — policy %s", sr.RequestType, sr.Name, sr.PolicyNumber)
	plainTextContent := fmt.Sprintf(
		"New policy service request.\n\nType: %s\nName: %s\nEmail: %s\nPhone: %s\nPolicy: %s\n\n%s",
		sr.RequestType, sr.Name, sr.Email, sr.Phone, sr.PolicyNumber, sr.Details,
	)
	items := fmt.Sprintf(
		"<li><strong>Type:</strong> %s</li><li><strong>Name:</strong> %s</li><li><strong>Email:</strong> %s</li><li><strong>Phone:</strong> %s</li><li><strong>Policy:</strong> %s</li><li><strong>Details:</strong> %s</li>",
		html.EscapeString(string(sr.RequestType)), html.EscapeString(sr.Name),
		html.EscapeString(sr.Email), html.EscapeString(sr.Phone),
		html.EscapeString(sr.PolicyNumber), html.EscapeString(sr.Details),
	)
	htmlContent := fmt.Sprintf(
		inquiryStaffNoticeEmailHTML,
		"New Policy Service Request", items, time.Now().UTC().Format(time.RFC1123Z),
	)

	msg := mail.NewSingleEmail(from, subject, to, plainTextContent, htmlContent)
	_, err := s.sender.Send(msg)
	return err
}
