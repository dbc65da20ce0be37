package mail

import (
	"bytes"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"gopkg.in/mail.v2"
)

type mockDialer struct {
	SentMessage *mail.Message
	ShouldError bool
}

func (d *mockDialer) DialAndSend(m ...*mail.Message) error {
	if d.ShouldError {
		return errors.New("dial error")
	}
	if len(m) > 0 {
		d.SentMessage = m[0]
	}
	return nil
}

func TestSendMail(t *testing.T) {
	t.Run("sends an email successfully", func(t *testing.T) {
		mock := &mockDialer{}
		s := &sender{
			email:  "from@example.com",
			dialer: mock,
		}

		to := []string{"to@example.com"}
		attachments := []Attachment{
			{Name: "report.txt", Content: []byte("attached content")},
		}
		err := s.SendMail(to, "Test Subject", "<h1>Hello</h1>", "Hello", attachments)
		assert.NoError(t, err)
		assert.NotNil(t, mock.SentMessage)
		assert.Equal(t, s.email, mock.SentMessage.GetHeader("From")[0])
		assert.Equal(t, to[0], mock.SentMessage.GetHeader("To")[0])
		assert.Equal(t, "Test Subject", mock.SentMessage.GetHeader("Subject")[0])

		var body bytes.Buffer
		_, err = mock.SentMessage.WriteTo(&body)
		assert.NoError(t, err)
		assert.Contains(t, body.String(), "Content-Type: text/html")
		assert.Contains(t, body.String(), "<h1>Hello</h1>")
		assert.Contains(t, body.String(), "Content-Disposition: attachment; filename=\"report.txt\"")
	})

	t.Run("skips attachments without name or content", func(t *testing.T) {
		mock := &mockDialer{}
		s := &sender{
			email:  "from@example.com",
			dialer: mock,
		}
		err := s.SendMail([]string{"to@example.com"}, "Subject", "", "Body", []Attachment{{Name: "", Content: nil}})
		assert.NoError(t, err)

		var body bytes.Buffer
		_, err = mock.SentMessage.WriteTo(&body)
		assert.NoError(t, err)
		assert.NotContains(t, body.String(), "Content-Disposition: attachment")
	})

	t.Run("returns an error when dialer fails", func(t *testing.T) {
		mock := &mockDialer{ShouldError: true}
		s := &sender{
			email:  "from@example.com",
			dialer: mock,
		}
		err := s.SendMail([]string{"to@example.com"}, "Subject", "Body", "", nil)
		assert.Error(t, err)
	})
}
