package mail

import (
	"fmt"
	"io"

	"gopkg.in/mail.v2"
)

type Sender interface {
	SendMail(to []string, subject, htmlBody, textBody string, attachments []Attachment) error
}

type Attachment struct {
	Name    string
	Content []byte
}

// Dialer abstracts mail.Dialer so tests can capture the outgoing message.
type Dialer interface {
	DialAndSend(m ...*mail.Message) error
}

type sender struct {
	email  string
	dialer Dialer
}

func (s *sender) SendMail(to []string, subject, htmlBody, textBody string, attachments []Attachment) error {
	m := mail.NewMessage()
	m.SetHeader("From", s.email)
	m.SetHeader("To", to...)
	m.SetHeader("Subject", subject)

	if textBody != "" {
		m.SetBody("text/plain", textBody)
	}
	if htmlBody != "" {
		if textBody != "" {
			m.AddAlternative("text/html", htmlBody)
		} else {
			m.SetBody("text/html", htmlBody)
		}
	}
	for _, attachment := range attachments {
		if attachment.Name == "" || attachment.Content == nil {
			continue
		}
		content := attachment.Content
		m.Attach(attachment.Name, mail.SetCopyFunc(func(w io.Writer) error {
			_, err := w.Write(content)
			return err
		}))
	}

	if err := s.dialer.DialAndSend(m); err != nil {
		return fmt.Errorf("Sender.SendMail: %w", err)
	}
	return nil
}

func NewMailSender(email, password, host string, port int) Sender {
	return &sender{
		email:  email,
		dialer: mail.NewDialer(host, port, email, password),
	}
}
