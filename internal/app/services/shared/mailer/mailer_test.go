package mailer

import (
	"appointment-skill/internal/app/drivers/mailer"
	"appointment-skill/internal/pkg/dto/requests"
	"context"
	"encoding/base64"
	"errors"
	"io"
	"mime"
	"mime/multipart"
	"net/mail"
	"net/smtp"
	"strings"
	"testing"

	"github.com/goccy/go-json"
	"github.com/rabbitmq/amqp091-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

const inviteContent = "BEGIN:VCALENDAR\r\nVERSION:2.0\r\nEND:VCALENDAR\r\n"

func newEmailPayload() *requests.EmailPayload {
	return &requests.EmailPayload{
		Subject: "New appointment with Jane Doe",
		From:    "clinic@example.com",
		To:      []string{"owner@example.com", "jane@example.com"},
		Text:    "Jane Doe booked an appointment. Phone: +15551234567",
		Attachments: []requests.EmailAttachment{
			{
				FileName:    "appointment.ics",
				ContentType: "text/calendar",
				Content:     base64.StdEncoding.EncodeToString([]byte(inviteContent)),
				Disposition: "attachment",
			},
		},
	}
}

func TestBuildMIMEMessage(t *testing.T) {
	raw, err := BuildMIMEMessage(newEmailPayload())
	require.NoError(t, err)

	msg, err := mail.ReadMessage(strings.NewReader(string(raw)))
	require.NoError(t, err)
	assert.Equal(t, "clinic@example.com", msg.Header.Get("From"))
	assert.Equal(t, "owner@example.com, jane@example.com", msg.Header.Get("To"))
	assert.Equal(t, "New appointment with Jane Doe", msg.Header.Get("Subject"))

	mediaType, params, err := mime.ParseMediaType(msg.Header.Get("Content-Type"))
	require.NoError(t, err)
	assert.Equal(t, "multipart/mixed", mediaType)

	reader := multipart.NewReader(msg.Body, params["boundary"])

	textPart, err := reader.NextPart()
	require.NoError(t, err)
	text, err := io.ReadAll(textPart)
	require.NoError(t, err)
	assert.Equal(t, "Jane Doe booked an appointment. Phone: +15551234567", string(text))

	attachmentPart, err := reader.NextPart()
	require.NoError(t, err)
	assert.Equal(t, "appointment.ics", attachmentPart.FileName())
	assert.Equal(t, "text/calendar", attachmentPart.Header.Get("Content-Type"))
	encoded, err := io.ReadAll(attachmentPart)
	require.NoError(t, err)
	decoded, err := base64.StdEncoding.DecodeString(strings.ReplaceAll(string(encoded), "\r\n", ""))
	require.NoError(t, err)
	assert.Equal(t, inviteContent, string(decoded))
}

func TestSMTPMailerServiceSendEmail(t *testing.T) {
	var gotAddr, gotFrom string
	var gotTo []string
	client := &mailer.SMTPClient{
		Host: "smtp.example.com",
		Port: 2525,
		SendMail: func(addr string, a smtp.Auth, from string, to []string, msg []byte) error {
			gotAddr, gotFrom, gotTo = addr, from, to
			return nil
		},
	}
	service := NewSMTPMailerService(client, zap.NewNop())

	err := service.SendEmail(context.Background(), newEmailPayload())

	require.NoError(t, err)
	assert.Equal(t, "smtp.example.com:2525", gotAddr)
	assert.Equal(t, "clinic@example.com", gotFrom)
	assert.Equal(t, []string{"owner@example.com", "jane@example.com"}, gotTo)
}

func TestSMTPMailerServiceSendEmailError(t *testing.T) {
	client := &mailer.SMTPClient{
		Host: "smtp.example.com",
		Port: 2525,
		SendMail: func(addr string, a smtp.Auth, from string, to []string, msg []byte) error {
			return errors.New("connection refused")
		},
	}
	service := NewSMTPMailerService(client, zap.NewNop())

	err := service.SendEmail(context.Background(), newEmailPayload())

	assert.Error(t, err)
}

type mockPublisher struct {
	mock.Mock
}

func (m *mockPublisher) PublishWithContext(ctx context.Context, exchange, key string, mandatory, immediate bool, msg amqp091.Publishing) error {
	args := m.Called(ctx, exchange, key, mandatory, immediate, msg)
	return args.Error(0)
}

func TestQueueMailerServiceSendEmail(t *testing.T) {
	publisher := new(mockPublisher)
	publisher.On("PublishWithContext", mock.Anything, "", "appointment-mailer", false, false, mock.MatchedBy(func(msg amqp091.Publishing) bool {
		var payload requests.EmailPayload
		if err := json.Unmarshal(msg.Body, &payload); err != nil {
			return false
		}
		return msg.DeliveryMode == amqp091.Persistent &&
			payload.Subject == "New appointment with Jane Doe" &&
			len(payload.Attachments) == 1
	})).Return(nil)
	service := NewQueueMailerServiceWithPublisher(publisher, "appointment-mailer", zap.NewNop())

	err := service.SendEmail(context.Background(), newEmailPayload())

	require.NoError(t, err)
	publisher.AssertExpectations(t)
}

func TestQueueMailerServiceSendEmailError(t *testing.T) {
	publisher := new(mockPublisher)
	publisher.On("PublishWithContext", mock.Anything, "", "appointment-mailer", false, false, mock.Anything).Return(errors.New("channel closed"))
	service := NewQueueMailerServiceWithPublisher(publisher, "appointment-mailer", zap.NewNop())

	err := service.SendEmail(context.Background(), newEmailPayload())

	assert.Error(t, err)
}
