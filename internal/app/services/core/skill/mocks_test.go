package skill

import (
	"appointment-skill/internal/app/contracts"
	"appointment-skill/internal/app/models"
	"appointment-skill/internal/pkg/dto/requests"
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/stretchr/testify/mock"
)

type mockProfileClient struct {
	mock.Mock
}

func (m *mockProfileClient) GetSystemTimeZone(ctx context.Context, deviceID string) (string, error) {
	args := m.Called(ctx, deviceID)
	return args.String(0), args.Error(1)
}

func (m *mockProfileClient) GetProfileName(ctx context.Context) (string, error) {
	args := m.Called(ctx)
	return args.String(0), args.Error(1)
}

func (m *mockProfileClient) GetProfileEmail(ctx context.Context) (string, error) {
	args := m.Called(ctx)
	return args.String(0), args.Error(1)
}

func (m *mockProfileClient) GetProfileMobileNumber(ctx context.Context) (*models.MobileNumber, error) {
	args := m.Called(ctx)
	mobileNumber, _ := args.Get(0).(*models.MobileNumber)
	return mobileNumber, args.Error(1)
}

type stubProfileClientFactory struct {
	client         contracts.ProfileClient
	apiEndpoint    string
	apiAccessToken string
}

func (f *stubProfileClientFactory) NewProfileClient(apiEndpoint, apiAccessToken string) contracts.ProfileClient {
	f.apiEndpoint = apiEndpoint
	f.apiAccessToken = apiAccessToken
	return f.client
}

type mockAvailabilityUsecase struct {
	mock.Mock
}

func (m *mockAvailabilityUsecase) IsSlotAvailable(ctx context.Context, start, end time.Time, timezone string) (bool, error) {
	args := m.Called(ctx, start, end, timezone)
	return args.Bool(0), args.Error(1)
}

type mockAppointmentUsecase struct {
	mock.Mock
}

func (m *mockAppointmentUsecase) BookAppointment(ctx context.Context, request *requests.BookAppointment) (*models.CalendarInvite, error) {
	args := m.Called(ctx, request)
	invite, _ := args.Get(0).(*models.CalendarInvite)
	return invite, args.Error(1)
}

type mockLockerService struct {
	mock.Mock
}

func (m *mockLockerService) TryLock(ctx context.Context, key string, expiration time.Duration) (bool, string, error) {
	args := m.Called(ctx, key, expiration)
	return args.Bool(0), args.String(1), args.Error(2)
}

func (m *mockLockerService) Unlock(ctx context.Context, key, lockValue string) error {
	args := m.Called(ctx, key, lockValue)
	return args.Error(0)
}

type mockResourceLimiter struct {
	mock.Mock
}

func (m *mockResourceLimiter) ApplyResourceLimiter(ctx context.Context, limit *models.ResourceLimit) (*models.ResourceLimitDecision, error) {
	args := m.Called(ctx, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.ResourceLimitDecision), args.Error(1)
}

// stubLocalizer renders KEY|arg|arg so tests can assert on keys and arguments.
type stubLocalizer struct {
	locale string
}

func (l *stubLocalizer) Locale() string {
	return l.locale
}

func (l *stubLocalizer) T(key string, args ...interface{}) string {
	parts := []string{key}
	for _, arg := range args {
		parts = append(parts, fmt.Sprint(arg))
	}
	return strings.Join(parts, "|")
}

type stubLocalizationService struct{}

func (s *stubLocalizationService) Localizer(locale string) contracts.Localizer {
	return &stubLocalizer{locale: locale}
}
