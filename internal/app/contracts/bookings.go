package contracts

import (
	"appointment-skill/internal/app/models"
	"context"
)

// BookingRepository stores write-once booking records.
type BookingRepository interface {
	Insert(ctx context.Context, record *models.BookingRecord) error
}
