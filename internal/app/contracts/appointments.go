package contracts

import (
	"appointment-skill/internal/app/models"
	"appointment-skill/internal/pkg/dto/requests"
	"context"
)

type AppointmentUsecase interface {
	BookAppointment(ctx context.Context, request *requests.BookAppointment) (*models.CalendarInvite, error)
}
