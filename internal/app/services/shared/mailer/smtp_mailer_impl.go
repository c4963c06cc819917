package mailer

import (
	"appointment-skill/internal/app/contracts"
	"appointment-skill/internal/app/drivers/mailer"
	"appointment-skill/internal/pkg/constvars"
	"appointment-skill/internal/pkg/dto/requests"
	"appointment-skill/internal/pkg/exceptions"
	"appointment-skill/internal/pkg/utils"
	"bytes"
	"context"
	"fmt"
	"mime"
	"mime/multipart"
	"net/textproto"
	"strings"

	"go.uber.org/zap"
)

type smtpMailerService struct {
	Client *mailer.SMTPClient
	Log    *zap.Logger
}

func NewSMTPMailerService(client *mailer.SMTPClient, logger *zap.Logger) contracts.MailerService {
	return &smtpMailerService{
		Client: client,
		Log:    logger,
	}
}

func (s *smtpMailerService) SendEmail(ctx context.Context, request *requests.EmailPayload) error {
	requestID := utils.GetRequestID(ctx)
	s.Log.Info("smtpMailerService.SendEmail called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Strings(constvars.LoggingRecipientsKey, request.To),
	)

	msg, err := BuildMIMEMessage(request)
	if err != nil {
		s.Log.Error("smtpMailerService.SendEmail error building message",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return exceptions.ErrSMTPSendEmail(err, s.Client.Host)
	}

	err = s.Client.SendMail(s.Client.Address(), s.Client.Auth, request.From, request.To, msg)
	if err != nil {
		s.Log.Error("smtpMailerService.SendEmail error sending mail",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return exceptions.ErrSMTPSendEmail(err, s.Client.Host)
	}

	s.Log.Info("smtpMailerService.SendEmail succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Strings(constvars.LoggingRecipientsKey, request.To),
	)
	return nil
}

// BuildMIMEMessage renders a multipart/mixed message with a plain text body
// followed by the base64 attachments of request.
func BuildMIMEMessage(request *requests.EmailPayload) ([]byte, error) {
	var body bytes.Buffer
	writer := multipart.NewWriter(&body)

	textPart, err := writer.CreatePart(textproto.MIMEHeader{
		constvars.HeaderContentType: {constvars.MIMETextPlainCharsetUTF8},
	})
	if err != nil {
		return nil, err
	}
	_, err = textPart.Write([]byte(request.Text))
	if err != nil {
		return nil, err
	}

	for _, attachment := range request.Attachments {
		part, err := writer.CreatePart(textproto.MIMEHeader{
			constvars.HeaderContentType:        {attachment.ContentType},
			constvars.HeaderContentTransfer:    {constvars.EmailTransferBase64},
			constvars.HeaderContentDisposition: {fmt.Sprintf(constvars.EmailAttachmentFormat, attachment.FileName)},
		})
		if err != nil {
			return nil, err
		}
		_, err = part.Write([]byte(wrapLines(attachment.Content, constvars.EmailAttachmentLineWidth)))
		if err != nil {
			return nil, err
		}
	}

	err = writer.Close()
	if err != nil {
		return nil, err
	}

	var msg bytes.Buffer
	fmt.Fprintf(&msg, constvars.EmailHeaderFormat, "From", request.From)
	fmt.Fprintf(&msg, constvars.EmailHeaderFormat, "To", strings.Join(request.To, constvars.EmailAddressSeparator))
	fmt.Fprintf(&msg, constvars.EmailHeaderFormat, "Subject", mime.QEncoding.Encode("utf-8", request.Subject))
	fmt.Fprintf(&msg, constvars.EmailHeaderFormat, constvars.HeaderMIMEVersion, constvars.EmailMIMEVersion)
	fmt.Fprintf(&msg, constvars.EmailHeaderFormat, constvars.HeaderContentType,
		mime.FormatMediaType(constvars.MIMEMultipartMixed, map[string]string{"boundary": writer.Boundary()}))
	msg.WriteString("\r\n")
	msg.Write(body.Bytes())
	return msg.Bytes(), nil
}

func wrapLines(value string, width int) string {
	var builder strings.Builder
	for len(value) > width {
		builder.WriteString(value[:width])
		builder.WriteString("\r\n")
		value = value[width:]
	}
	builder.WriteString(value)
	return builder.String()
}
