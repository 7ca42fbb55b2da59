package mailer

import (
	"context"
	"fmt"

	"github.com/wneessen/go-mail"

	"github.com/m04kA/SC-AppointmentService/internal/domain"
)

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// Config настройки SMTP и адресов рассылки
type Config struct {
	Enabled    bool
	Host       string
	Port       int
	Username   string
	Password   string
	From       string
	AdminEmail string
}

const (
	customerSubject = "Appointment Confirmation - Stylish Cuts"
	adminSubject    = "New Appointment Booking"
)

const customerBody = `Dear %s,

Thank you for booking an appointment with Stylish Cuts Barbershop!

Appointment Details:
Service: %s
Date: %s
Time: %s

Location: 123 Main Street, City, State 12345

If you need to reschedule or cancel your appointment, please contact us at:
Phone: (555) 123-4567
Email: info@stylishcuts.com

We look forward to seeing you!

Best regards,
Stylish Cuts Team
`

const adminBody = `New Appointment Booking:

Client: %s
Email: %s
Service: %s
Date: %s
Time: %s
Reference: %s
`

// Mailer отправляет письма-подтверждения клиенту и уведомления администратору.
// При Enabled=false все отправки превращаются в no-op - удобно для
// локальной разработки без SMTP.
type Mailer struct {
	client *mail.Client
	cfg    Config
	log    Logger
}

// New создает почтовый клиент. SMTP-соединение устанавливается лениво,
// при первой отправке.
func New(cfg Config, log Logger) (*Mailer, error) {
	if !cfg.Enabled {
		return &Mailer{cfg: cfg, log: log}, nil
	}

	client, err := mail.NewClient(cfg.Host,
		mail.WithPort(cfg.Port),
		mail.WithSMTPAuth(mail.SMTPAuthPlain),
		mail.WithUsername(cfg.Username),
		mail.WithPassword(cfg.Password),
		mail.WithTLSPolicy(mail.TLSMandatory),
	)
	if err != nil {
		return nil, fmt.Errorf("mailer: failed to create smtp client: %w", err)
	}

	return &Mailer{client: client, cfg: cfg, log: log}, nil
}

// SendConfirmation отправляет подтверждение клиенту и уведомление
// администратору одним SMTP-соединением
func (m *Mailer) SendConfirmation(ctx context.Context, appt *domain.Appointment) error {
	if !m.cfg.Enabled {
		m.log.Info("mailer: disabled, skipping confirmation for reference=%s", appt.Reference)
		return nil
	}

	dateStr := appt.StartTime.Format("January 2, 2006")
	timeStr := appt.StartTime.Format("3:04 PM")

	customerMsg := mail.NewMsg()
	if err := customerMsg.From(m.cfg.From); err != nil {
		return fmt.Errorf("mailer: invalid from address: %w", err)
	}
	if err := customerMsg.To(appt.ClientEmail); err != nil {
		return fmt.Errorf("mailer: invalid client address: %w", err)
	}
	customerMsg.Subject(customerSubject)
	customerMsg.SetBodyString(mail.TypeTextPlain,
		fmt.Sprintf(customerBody, appt.ClientName, appt.ServiceName, dateStr, timeStr))

	adminMsg := mail.NewMsg()
	if err := adminMsg.From(m.cfg.From); err != nil {
		return fmt.Errorf("mailer: invalid from address: %w", err)
	}
	if err := adminMsg.To(m.cfg.AdminEmail); err != nil {
		return fmt.Errorf("mailer: invalid admin address: %w", err)
	}
	adminMsg.Subject(adminSubject)
	adminMsg.SetBodyString(mail.TypeTextPlain,
		fmt.Sprintf(adminBody, appt.ClientName, appt.ClientEmail, appt.ServiceName, dateStr, timeStr, appt.Reference))

	if err := m.client.DialAndSendWithContext(ctx, customerMsg, adminMsg); err != nil {
		return fmt.Errorf("mailer: failed to send confirmation: %w", err)
	}

	m.log.Info("mailer: confirmation sent for reference=%s to %s", appt.Reference, appt.ClientEmail)
	return nil
}
