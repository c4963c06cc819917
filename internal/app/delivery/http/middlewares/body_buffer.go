package middlewares

import (
	"bytes"
	"errors"
	"io"
	"net/http"

	"appointment-skill/internal/pkg/exceptions"
	"appointment-skill/internal/pkg/utils"
)

// BodyBuffer enforces the configured body size limit, then replaces the
// request body with an in-memory reader so it can be consumed again.
func (m *Middlewares) BodyBuffer(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		limit := int64(m.InternalConfig.App.RequestBodyLimitInMegabyte) << 20
		bodyBytes, err := io.ReadAll(http.MaxBytesReader(w, r.Body, limit))
		if err != nil {
			var maxBytesErr *http.MaxBytesError
			if errors.As(err, &maxBytesErr) {
				utils.BuildErrorResponse(m.Log, w, exceptions.ErrRequestBodyTooLarge(err, limit))
				return
			}
			utils.BuildErrorResponse(m.Log, w, exceptions.ErrReadBody(err))
			return
		}

		r.Body = io.NopCloser(bytes.NewReader(bodyBytes))
		r.ContentLength = int64(len(bodyBytes))
		next.ServeHTTP(w, r)
	})
}
