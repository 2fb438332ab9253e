package mail

import (
	"context"
	"fmt"
	"io"

	"gopkg.in/gomail.v2"

	"chase-cover/internal/domain/entity"
	"chase-cover/internal/domain/port"
)

// Settings параметры SMTP сервера и отправителя.
type Settings struct {
	Host     string
	Port     int
	Username string
	Password string
}

// SMTPMailer отправляет письма через SMTP с STARTTLS.
type SMTPMailer struct {
	settings Settings
	send     func(m *gomail.Message) error
}

// NewSMTPMailer создаёт почтовый клиент. Соединение открывается на каждое письмо.
func NewSMTPMailer(settings Settings) *SMTPMailer {
	m := &SMTPMailer{settings: settings}
	m.send = func(msg *gomail.Message) error {
		d := gomail.NewDialer(settings.Host, settings.Port, settings.Username, settings.Password)
		return d.DialAndSend(msg)
	}
	return m
}

// Send доставляет письмо с вложениями.
func (m *SMTPMailer) Send(ctx context.Context, mail *entity.Mail) error {
	if m.settings.Username == "" || m.settings.Password == "" {
		return entity.ErrMailNotConfigured
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	msg := m.compose(mail)
	if err := m.send(msg); err != nil {
		return fmt.Errorf("smtp %s:%d: %w", m.settings.Host, m.settings.Port, err)
	}
	return nil
}

func (m *SMTPMailer) compose(mail *entity.Mail) *gomail.Message {
	msg := gomail.NewMessage()
	msg.SetHeader("From", m.settings.Username)
	msg.SetHeader("To", mail.To)
	msg.SetHeader("Subject", mail.Subject)
	msg.SetBody("text/plain", mail.Body)

	for _, a := range mail.Attachments {
		data := a.Data
		settings := []gomail.FileSetting{
			gomail.SetCopyFunc(func(w io.Writer) error {
				_, err := w.Write(data)
				return err
			}),
		}
		if a.ContentType != "" {
			settings = append(settings, gomail.SetHeader(map[string][]string{
				"Content-Type": {a.ContentType},
			}))
		}
		msg.Attach(a.Name, settings...)
	}
	return msg
}

// Проверка реализации интерфейса
var _ port.Mailer = (*SMTPMailer)(nil)
