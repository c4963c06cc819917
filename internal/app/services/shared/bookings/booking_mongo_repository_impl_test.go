package bookings

import (
	"appointment-skill/internal/app/models"
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/mongo/integration/mtest"
	"go.uber.org/zap"
)

func newBookingRecord() *models.BookingRecord {
	start := time.Date(2024, 6, 17, 15, 0, 0, 0, time.UTC)
	return &models.BookingRecord{
		ID:             "b0d4c2d8-6f1c-4a51-9a0e-5f0c6f0f3a11",
		RequestID:      "amzn1.echo-api.request.1",
		StorageKey:     "appointments/2024-06-17/appointment-with-jane-doe-1718636400000.ics",
		Start:          start,
		End:            start.Add(30 * time.Minute),
		Timezone:       "America/New_York",
		Title:          "Appointment with Jane Doe",
		RequesterName:  "Jane Doe",
		RequesterEmail: "jane@example.com",
		Recipients:     []string{"owner@example.com", "jane@example.com"},
		EmailSent:      true,
	}
}

func TestBookingMongoRepositoryInsert(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))

	mt.Run("inserted", func(mt *mtest.T) {
		mt.AddMockResponses(mtest.CreateSuccessResponse())
		repo := NewBookingMongoRepositoryWithCollection(mt.Coll, zap.NewNop())
		record := newBookingRecord()

		err := repo.Insert(context.Background(), record)

		require.NoError(t, err)
		assert.False(t, record.CreatedAt.IsZero())
		started := mt.GetStartedEvent()
		require.NotNil(t, started)
		assert.Equal(t, "insert", started.CommandName)
	})

	mt.Run("duplicate key", func(mt *mtest.T) {
		mt.AddMockResponses(mtest.CreateWriteErrorsResponse(mtest.WriteError{
			Index:   0,
			Code:    11000,
			Message: "duplicate key error",
		}))
		repo := NewBookingMongoRepositoryWithCollection(mt.Coll, zap.NewNop())

		err := repo.Insert(context.Background(), newBookingRecord())

		assert.Error(t, err)
	})
}
