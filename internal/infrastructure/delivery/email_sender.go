// Package delivery implements the outbound document delivery channels.
package delivery

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"github.com/rs/zerolog"
	gomail "gopkg.in/gomail.v2"
)

var ErrEmailNotConfigured = errors.New("missing SMTP_USERNAME or SMTP_PASSWORD")

// EmailMessage is one outgoing email with PDF attachments.
type EmailMessage struct {
	To          string
	ToName      string
	Subject     string
	Body        string
	Attachments []string
}

// EmailSender abstracts the email transport so the gateway can be exercised
// without a live SMTP server.
type EmailSender interface {
	Send(ctx context.Context, msg EmailMessage) error
}

// SMTPSender sends email through a configured SMTP relay.
type SMTPSender struct {
	host        string
	port        int
	ssl         bool
	username    string
	password    string
	senderName  string
	senderEmail string
	log         zerolog.Logger
}

var _ EmailSender = (*SMTPSender)(nil)

// NewSMTPSenderFromEnv builds the sender from SMTP_* environment variables.
// Missing credentials return ErrEmailNotConfigured so the caller can degrade
// the channel instead of failing startup.
func NewSMTPSenderFromEnv(log zerolog.Logger) (*SMTPSender, error) {
	username := getenvDefault("SMTP_USERNAME", "")
	password := getenvDefault("SMTP_PASSWORD", "")
	if username == "" || password == "" {
		return nil, ErrEmailNotConfigured
	}

	port, err := strconv.Atoi(getenvDefault("SMTP_PORT", "587"))
	if err != nil {
		return nil, fmt.Errorf("invalid SMTP_PORT: %w", err)
	}

	return &SMTPSender{
		host:        getenvDefault("SMTP_SERVER", "smtp.gmail.com"),
		port:        port,
		ssl:         getenvDefault("SMTP_USE_SSL", "false") == "true",
		username:    username,
		password:    password,
		senderName:  getenvDefault("SENDER_NAME", "위플"),
		senderEmail: getenvDefault("SENDER_EMAIL", ""),
		log:         log,
	}, nil
}

// Send delivers one message. gomail performs the dial synchronously; the
// context is part of the EmailSender contract but SMTP has no cancellation.
func (s *SMTPSender) Send(_ context.Context, msg EmailMessage) error {
	from := s.senderEmail
	if from == "" {
		from = s.username
	}

	m := gomail.NewMessage()
	m.SetAddressHeader("From", from, s.senderName)
	m.SetHeader("To", msg.To)
	m.SetHeader("Subject", msg.Subject)

	body := msg.Body
	if body == "" {
		body = defaultEmailBody(msg.ToName)
	}
	m.SetBody("text/plain", body)

	for _, path := range msg.Attachments {
		m.Attach(path)
	}

	d := gomail.NewDialer(s.host, s.port, s.username, s.password)
	d.SSL = s.ssl
	if err := d.DialAndSend(m); err != nil {
		s.log.Error().Err(err).Str("to", msg.To).Msg("email send failed")
		return err
	}
	s.log.Info().Str("to", msg.To).Int("attachments", len(msg.Attachments)).Msg("email sent")
	return nil
}

func defaultEmailBody(toName string) string {
	if toName == "" {
		toName = "고객"
	}
	return fmt.Sprintf(`안녕하세요, %s님.

요청하신 문서를 첨부파일로 보내드립니다.
확인 부탁드리며, 문의사항이 있으시면 연락 주세요.

감사합니다.
(주)위즈더플래닝 드림`, toName)
}
