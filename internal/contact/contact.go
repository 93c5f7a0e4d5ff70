// Package contact delivers messages from the public contact form.
package contact

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/smtp"
	"strings"

	"github.com/go-playground/validator/v10"
)

// ErrNotConfigured is returned by SMTPMailer when credentials are missing.
var ErrNotConfigured = errors.New("SMTP credentials not configured")

// Message is one contact form submission.
type Message struct {
	Name    string `form:"name" json:"name" validate:"required,min=1,max=100"`
	Email   string `form:"email" json:"email" validate:"required,email,max=255"`
	Subject string `form:"subject" json:"subject" validate:"required,min=1,max=200"`
	Message string `form:"message" json:"message" validate:"required,min=10,max=1000"`
}

// Normalize trims surrounding whitespace from every field.
func (m Message) Normalize() Message {
	return Message{
		Name:    strings.TrimSpace(m.Name),
		Email:   strings.TrimSpace(m.Email),
		Subject: strings.TrimSpace(m.Subject),
		Message: strings.TrimSpace(m.Message),
	}
}

// ValidationError lists the fields that failed validation, keyed by form
// field name.
type ValidationError struct {
	Fields map[string]string
}

func (e *ValidationError) Error() string {
	parts := make([]string, 0, len(e.Fields))
	for field, msg := range e.Fields {
		parts = append(parts, field+": "+msg)
	}
	return "invalid contact message: " + strings.Join(parts, "; ")
}

// Mailer sends a validated message to one recipient.
type Mailer interface {
	Send(ctx context.Context, to string, msg Message) error
}

// Service validates submissions and hands them to a Mailer.
type Service struct {
	mailer    Mailer
	validate  *validator.Validate
	recipient func() string
	logger    *slog.Logger
}

// NewService returns a service that delivers to whatever recipient returns at
// send time, so edits to the contact section take effect without a restart.
func NewService(mailer Mailer, recipient func() string, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{
		mailer:    mailer,
		validate:  validator.New(validator.WithRequiredStructEnabled()),
		recipient: recipient,
		logger:    logger,
	}
}

// Validate normalizes msg and checks it against the form rules.
func (s *Service) Validate(msg Message) (Message, error) {
	msg = msg.Normalize()
	if err := s.validate.Struct(msg); err != nil {
		var verrs validator.ValidationErrors
		if !errors.As(err, &verrs) {
			return msg, err
		}
		fields := make(map[string]string, len(verrs))
		for _, fe := range verrs {
			fields[strings.ToLower(fe.Field())] = describe(fe)
		}
		return msg, &ValidationError{Fields: fields}
	}
	return msg, nil
}

func describe(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "email":
		return "must be a valid email address"
	case "min":
		return fmt.Sprintf("must be at least %s characters", fe.Param())
	case "max":
		return fmt.Sprintf("must be at most %s characters", fe.Param())
	}
	return "is invalid"
}

// Send validates msg and delivers it.
func (s *Service) Send(ctx context.Context, msg Message) error {
	msg, err := s.Validate(msg)
	if err != nil {
		return err
	}

	to := strings.TrimSpace(s.recipient())
	if to == "" {
		return fmt.Errorf("no contact recipient configured")
	}

	if err := s.mailer.Send(ctx, to, msg); err != nil {
		s.logger.Error("sending contact message failed", "error", err)
		return fmt.Errorf("send contact message: %w", err)
	}
	s.logger.Info("contact message sent", "from", msg.Email)
	return nil
}

// SMTPConfig holds the outgoing mail settings.
type SMTPConfig struct {
	Host     string
	Port     string
	Username string
	Password string
}

// Configured reports whether credentials are present.
func (c SMTPConfig) Configured() bool {
	return c.Username != "" && c.Password != ""
}

// SMTPMailer sends through an authenticated SMTP relay.
type SMTPMailer struct {
	cfg SMTPConfig
	// send is smtp.SendMail, replaced in tests.
	send func(addr string, a smtp.Auth, from string, to []string, msg []byte) error
}

func NewSMTPMailer(cfg SMTPConfig) *SMTPMailer {
	return &SMTPMailer{cfg: cfg, send: smtp.SendMail}
}

func (m *SMTPMailer) Send(ctx context.Context, to string, msg Message) error {
	if !m.cfg.Configured() {
		return ErrNotConfigured
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	auth := smtp.PlainAuth("", m.cfg.Username, m.cfg.Password, m.cfg.Host)
	addr := m.cfg.Host + ":" + m.cfg.Port
	return m.send(addr, auth, m.cfg.Username, []string{to}, compose(m.cfg.Username, to, msg))
}

func compose(from, to string, msg Message) []byte {
	subject := fmt.Sprintf("Portfolio Contact: %s", headerSafe(msg.Subject))
	body := fmt.Sprintf(`
New contact form submission from your portfolio:

Name: %s
Email: %s
Subject: %s
Message:
%s

---
Sent from your portfolio contact form
`, msg.Name, msg.Email, msg.Subject, msg.Message)

	return []byte("To: " + to + "\r\n" +
		"Subject: " + subject + "\r\n" +
		"From: " + from + "\r\n" +
		"Reply-To: " + headerSafe(msg.Email) + "\r\n" +
		"\r\n" +
		body + "\r\n")
}

// headerSafe strips line breaks so form input cannot inject headers.
func headerSafe(s string) string {
	return strings.NewReplacer("\r", " ", "\n", " ").Replace(s)
}

// LogMailer logs messages instead of sending them. It is used when SMTP is
// not configured.
type LogMailer struct {
	Logger *slog.Logger
}

func (m LogMailer) Send(_ context.Context, to string, msg Message) error {
	logger := m.Logger
	if logger == nil {
		logger = slog.Default()
	}
	logger.Warn("SMTP not configured, contact message logged only",
		"to", to,
		"name", msg.Name,
		"email", msg.Email,
		"subject", msg.Subject,
	)
	return nil
}

var (
	_ Mailer = (*SMTPMailer)(nil)
	_ Mailer = LogMailer{}
)
