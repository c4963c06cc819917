package appointments

import (
	"appointment-skill/internal/app/config"
	"appointment-skill/internal/app/contracts"
	"appointment-skill/internal/app/models"
	"appointment-skill/internal/pkg/constvars"
	"appointment-skill/internal/pkg/dto/requests"
	"appointment-skill/internal/pkg/exceptions"
	"appointment-skill/internal/pkg/utils"
	"context"
	"encoding/base64"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type appointmentUsecase struct {
	StorageService    contracts.StorageService
	MailerService     contracts.MailerService
	BookingRepository contracts.BookingRepository
	InternalConfig    *config.InternalConfig
	Log               *zap.Logger
	Now               func() time.Time
}

func NewAppointmentUsecase(
	storageService contracts.StorageService,
	mailerService contracts.MailerService,
	bookingRepository contracts.BookingRepository,
	internalConfig *config.InternalConfig,
	logger *zap.Logger,
) contracts.AppointmentUsecase {
	return &appointmentUsecase{
		StorageService:    storageService,
		MailerService:     mailerService,
		BookingRepository: bookingRepository,
		InternalConfig:    internalConfig,
		Log:               logger,
		Now:               time.Now,
	}
}

func (uc *appointmentUsecase) BookAppointment(ctx context.Context, request *requests.BookAppointment) (*models.CalendarInvite, error) {
	requestID := utils.GetRequestID(ctx)
	uc.Log.Info("appointmentUsecase.BookAppointment called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Time(constvars.LoggingStartKey, request.Appointment.Start),
		zap.Time(constvars.LoggingEndKey, request.Appointment.End),
	)

	now := uc.Now()
	appointment := request.Appointment
	organizer := inviteParticipant{
		Name:  uc.InternalConfig.Appointment.FromName,
		Email: uc.InternalConfig.Appointment.FromEmail,
	}
	attendee := inviteParticipant{
		Name:  appointment.RequesterName,
		Email: appointment.RequesterEmail,
	}

	content, err := buildInvite(uuid.NewString(), appointment, organizer, attendee, now)
	if err != nil {
		uc.Log.Error("appointmentUsecase.BookAppointment error building invite",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, exceptions.ErrBuildInvite(err)
	}

	invite := &models.CalendarInvite{
		StorageKey:  utils.GenerateAppointmentStorageKey(appointment.AppointmentDate, appointment.Title, now),
		FileName:    constvars.AppointmentInviteFileName,
		ContentType: constvars.MIMETextCalendar,
		Content:     content,
	}

	bucket := uc.InternalConfig.Appointment.StorageBucket
	err = uc.StorageService.PutObject(ctx, bucket, invite.StorageKey, invite.Content, constvars.MIMETextCalendarCharsetUTF8)
	if err != nil {
		uc.Log.Error("appointmentUsecase.BookAppointment error storing invite",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingStorageKey, invite.StorageKey),
			zap.Error(err),
		)
		return nil, err
	}

	recipients := uc.recipients(appointment.RequesterEmail)
	if uc.InternalConfig.Appointment.SendEmail {
		emailPayload := &requests.EmailPayload{
			Subject: request.EmailSubject,
			From:    uc.InternalConfig.Appointment.FromEmail,
			To:      recipients,
			Text:    request.EmailText,
			Attachments: []requests.EmailAttachment{
				{
					FileName:    invite.FileName,
					ContentType: invite.ContentType,
					Content:     base64.StdEncoding.EncodeToString(invite.Content),
					Disposition: "attachment",
				},
			},
		}
		err = uc.MailerService.SendEmail(ctx, emailPayload)
		if err != nil {
			uc.Log.Error("appointmentUsecase.BookAppointment error sending email",
				zap.String(constvars.LoggingRequestIDKey, requestID),
				zap.Strings(constvars.LoggingRecipientsKey, recipients),
				zap.Error(err),
			)
			return nil, err
		}
		invite.EmailSent = true
	}

	record := &models.BookingRecord{
		ID:             uuid.NewString(),
		RequestID:      request.RequestID,
		SessionID:      request.SessionID,
		UserID:         request.UserID,
		StorageKey:     invite.StorageKey,
		Start:          appointment.Start.UTC(),
		End:            appointment.End.UTC(),
		Timezone:       appointment.Timezone,
		Title:          appointment.Title,
		RequesterName:  appointment.RequesterName,
		RequesterEmail: appointment.RequesterEmail,
		Recipients:     recipients,
		EmailSent:      invite.EmailSent,
	}
	err = uc.BookingRepository.Insert(ctx, record)
	if err != nil {
		uc.Log.Error("appointmentUsecase.BookAppointment error inserting booking record",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}

	uc.Log.Info("appointmentUsecase.BookAppointment succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingStorageKey, invite.StorageKey),
		zap.String(constvars.LoggingBookingIDKey, record.ID),
		zap.Bool(constvars.LoggingEmailSentKey, invite.EmailSent),
	)
	return invite, nil
}

// recipients puts the owner first and drops an empty or repeated requester address.
func (uc *appointmentUsecase) recipients(requesterEmail string) []string {
	notifyEmail := uc.InternalConfig.Appointment.NotifyEmail
	recipients := []string{notifyEmail}
	requesterEmail = strings.TrimSpace(requesterEmail)
	if requesterEmail != "" && !strings.EqualFold(requesterEmail, notifyEmail) {
		recipients = append(recipients, requesterEmail)
	}
	return recipients
}
