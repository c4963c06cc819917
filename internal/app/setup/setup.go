// Package setup assembles the skill from configuration for both entrypoints.
package setup

import (
	"context"
	"fmt"
	"time"

	"appointment-skill/internal/app/config"
	"appointment-skill/internal/app/contracts"
	"appointment-skill/internal/app/delivery/http/controllers"
	"appointment-skill/internal/app/delivery/http/middlewares"
	"appointment-skill/internal/app/delivery/http/routers"
	"appointment-skill/internal/app/drivers/database"
	"appointment-skill/internal/app/drivers/logger"
	mailerDriver "appointment-skill/internal/app/drivers/mailer"
	"appointment-skill/internal/app/drivers/messaging"
	"appointment-skill/internal/app/drivers/storage"
	"appointment-skill/internal/app/services/core/appointments"
	"appointment-skill/internal/app/services/core/availability"
	"appointment-skill/internal/app/services/core/skill"
	"appointment-skill/internal/app/services/shared/bookings"
	"appointment-skill/internal/app/services/shared/calendar"
	"appointment-skill/internal/app/services/shared/localization"
	"appointment-skill/internal/app/services/shared/locker"
	"appointment-skill/internal/app/services/shared/mailer"
	"appointment-skill/internal/app/services/shared/profile"
	"appointment-skill/internal/app/services/shared/ratelimiter"
	"appointment-skill/internal/app/services/shared/redis"
	sharedStorage "appointment-skill/internal/app/services/shared/storage"
	"appointment-skill/internal/pkg/constvars"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// NewBootstrap reads the configuration and connects every backing service.
// On failure the services connected so far are closed again.
func NewBootstrap(ctx context.Context) (*config.Bootstrap, error) {
	driverConfig := config.NewDriverConfig()
	internalConfig := config.NewInternalConfig()

	log, err := logger.NewZapLogger(driverConfig, internalConfig)
	if err != nil {
		return nil, fmt.Errorf("initialize logger: %w", err)
	}

	bootstrap := &config.Bootstrap{
		Logger:         log,
		InternalConfig: internalConfig,
		DriverConfig:   driverConfig,
	}

	bootstrap.MongoDB, err = database.NewMongoDB(ctx, driverConfig, log)
	if err != nil {
		return nil, abort(ctx, bootstrap, err)
	}

	bootstrap.Redis, err = database.NewRedisClient(ctx, driverConfig, log)
	if err != nil {
		return nil, abort(ctx, bootstrap, err)
	}

	bootstrap.Minio, err = storage.NewMinio(ctx, driverConfig, internalConfig.Appointment.StorageBucket, log)
	if err != nil {
		return nil, abort(ctx, bootstrap, err)
	}

	if internalConfig.Mailer.Driver == constvars.MailerDriverRabbitMQ {
		bootstrap.RabbitMQ, err = messaging.NewRabbitMQ(driverConfig, log)
		if err != nil {
			return nil, abort(ctx, bootstrap, err)
		}
	}

	return bootstrap, nil
}

func abort(ctx context.Context, bootstrap *config.Bootstrap, err error) error {
	bootstrap.Logger.Error("setup.NewBootstrap failed", zap.Error(err))
	_ = bootstrap.Shutdown(ctx)
	return err
}

// NewSkillUsecase wires the dialog dispatcher on top of a connected bootstrap.
func NewSkillUsecase(ctx context.Context, bootstrap *config.Bootstrap) (contracts.SkillUsecase, error) {
	internalConfig := bootstrap.InternalConfig
	log := bootstrap.Logger

	// Mail
	mailerService, err := newMailerService(bootstrap)
	if err != nil {
		return nil, err
	}

	// Free/busy
	var freeBusyProvider contracts.FreeBusyProvider
	if internalConfig.Calendar.CheckFreeBusy {
		freeBusyProvider, err = calendar.NewFreeBusyProvider(ctx, internalConfig, bootstrap.DriverConfig, log)
		if err != nil {
			return nil, err
		}
	}
	availabilityUsecase := availability.NewAvailabilityUsecase(freeBusyProvider, internalConfig, log)

	// Appointments
	storageService := sharedStorage.NewMinioStorage(bootstrap.Minio, log)
	bookingRepository := bookings.NewBookingMongoRepository(bootstrap.MongoDB, internalConfig.MongoDB.DBName, log)
	appointmentUsecase := appointments.NewAppointmentUsecase(storageService, mailerService, bookingRepository, internalConfig, log)

	// Booking lock
	redisRepository := redis.NewRedisRepository(bootstrap.Redis)
	lockService := locker.NewLockService(redisRepository, log)
	resourceLimiter := ratelimiter.NewResourceLimiter(redisRepository, log)

	// Localization
	localizationService, err := localization.NewLocalizationService(internalConfig.Skill.DefaultLocale, log)
	if err != nil {
		return nil, fmt.Errorf("initialize localization: %w", err)
	}

	// Profile API
	profileTimeout := time.Duration(internalConfig.Skill.ProfileRequestTimeoutInSeconds) * time.Second
	profileClientFactory := profile.NewProfileClientFactory(profileTimeout, log)

	return skill.NewSkillUsecase(
		internalConfig,
		profileClientFactory,
		localizationService,
		availabilityUsecase,
		appointmentUsecase,
		lockService,
		resourceLimiter,
		log,
	), nil
}

func newMailerService(bootstrap *config.Bootstrap) (contracts.MailerService, error) {
	switch bootstrap.InternalConfig.Mailer.Driver {
	case constvars.MailerDriverRabbitMQ:
		return mailer.NewQueueMailerService(bootstrap.RabbitMQ, bootstrap.InternalConfig.Mailer.RabbitMQMailerQueue, bootstrap.Logger)
	case constvars.MailerDriverSMTP, "":
		smtpClient := mailerDriver.NewSMTPClient(bootstrap.DriverConfig, bootstrap.Logger)
		return mailer.NewSMTPMailerService(smtpClient, bootstrap.Logger), nil
	default:
		return nil, fmt.Errorf("unknown mailer driver %q", bootstrap.InternalConfig.Mailer.Driver)
	}
}

// NewRouter mounts the HTTP delivery layer on bootstrap.Router.
func NewRouter(bootstrap *config.Bootstrap, skillUsecase contracts.SkillUsecase) *chi.Mux {
	if bootstrap.Router == nil {
		bootstrap.Router = chi.NewRouter()
	}

	httpMiddlewares := middlewares.NewMiddlewares(bootstrap.Logger, bootstrap.InternalConfig)
	skillController := controllers.NewSkillController(bootstrap.Logger, bootstrap.InternalConfig, skillUsecase)

	routers.SetupRoutes(bootstrap.Router, bootstrap.InternalConfig, httpMiddlewares, skillController)
	return bootstrap.Router
}
