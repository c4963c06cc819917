package bookings

import (
	"appointment-skill/internal/app/contracts"
	"appointment-skill/internal/app/models"
	"appointment-skill/internal/pkg/constvars"
	"appointment-skill/internal/pkg/exceptions"
	"appointment-skill/internal/pkg/utils"
	"context"

	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

type BookingMongoRepository struct {
	Collection *mongo.Collection
	Log        *zap.Logger
}

func NewBookingMongoRepository(db *mongo.Client, dbName string, logger *zap.Logger) contracts.BookingRepository {
	return NewBookingMongoRepositoryWithCollection(db.Database(dbName).Collection(constvars.BookingsCollection), logger)
}

func NewBookingMongoRepositoryWithCollection(collection *mongo.Collection, logger *zap.Logger) contracts.BookingRepository {
	return &BookingMongoRepository{
		Collection: collection,
		Log:        logger,
	}
}

func (repo *BookingMongoRepository) Insert(ctx context.Context, record *models.BookingRecord) error {
	requestID := utils.GetRequestID(ctx)
	repo.Log.Info("BookingMongoRepository.Insert called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingBookingIDKey, record.ID),
	)

	if record.CreatedAt.IsZero() {
		record.SetCreatedAt()
	}

	_, err := repo.Collection.InsertOne(ctx, record)
	if err != nil {
		repo.Log.Error("BookingMongoRepository.Insert error",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return exceptions.ErrMongoDBInsertDocument(err, constvars.BookingsCollection)
	}

	repo.Log.Info("BookingMongoRepository.Insert succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingBookingIDKey, record.ID),
	)
	return nil
}
