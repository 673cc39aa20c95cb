package providerutils

import (
	"net/http"

	"github.com/ijalalfrz/travel-planner-service/internal/pkg/exception"
)

var ErrProviderInternalError = exception.ApplicationError{
	StatusCode: http.StatusInternalServerError,
	Message:    "provider internal error or temporary unavailable",
}

var ErrRetryExceeded = exception.ApplicationError{
	StatusCode: http.StatusBadGateway,
	Message:    "retry exceeded",
}

var ErrProviderRateLimitExceeded = exception.ApplicationError{
	StatusCode: http.StatusTooManyRequests,
	Message:    "provider rate limit exceeded",
}

// ErrFetchFailure is returned when provider data could not be retrieved:
// transport error, non-2xx status, provider-reported error or a response
// whose top-level shape cannot be decoded.
var ErrFetchFailure = exception.ApplicationError{
	StatusCode: http.StatusBadGateway,
	Message:    "failed to fetch data from provider",
}

// FetchFailure wraps cause as ErrFetchFailure.
func FetchFailure(cause error) error {
	return exception.Wrap(ErrFetchFailure, cause)
}
