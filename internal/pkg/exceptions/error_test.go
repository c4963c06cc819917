package exceptions

import (
	"appointment-skill/internal/pkg/constvars"
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBuildNewCustomError(t *testing.T) {
	t.Run("wraps a plain error", func(t *testing.T) {
		err := ErrSendHTTPRequest(context.DeadlineExceeded)

		assert.Equal(t, constvars.StatusBadGateway, err.StatusCode)
		assert.True(t, errors.Is(err, context.DeadlineExceeded))
		assert.Len(t, err.Locations, 1)
		assert.Contains(t, err.DevMessage, context.DeadlineExceeded.Error())
	})

	t.Run("keeps inner locations", func(t *testing.T) {
		inner := ErrProfilePermissionDenied("Profile.name")
		outer := ErrSendHTTPRequest(inner)

		assert.Len(t, outer.Locations, 2)
		assert.Equal(t, constvars.StatusForbidden, StatusCodeOf(inner))
		assert.Equal(t, constvars.StatusBadGateway, StatusCodeOf(outer))

		var found *CustomError
		assert.True(t, errors.As(outer.Unwrap(), &found))
		assert.Equal(t, constvars.StatusForbidden, found.StatusCode)
	})

	t.Run("status of a plain error", func(t *testing.T) {
		assert.Equal(t, constvars.StatusInternalServerError, StatusCodeOf(errors.New("boom")))
	})
}
