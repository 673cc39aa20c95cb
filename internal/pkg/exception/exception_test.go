package exception

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

var errSentinel = ApplicationError{
	StatusCode: http.StatusBadGateway,
	Message:    "failed to fetch",
}

func TestApplicationError_Is(t *testing.T) {
	cause := errors.New("connection refused")

	isRequest := func(err error, target error, want bool) func(t *testing.T) {
		return func(t *testing.T) {
			assert.Equal(t, want, errors.Is(err, target))
		}
	}

	t.Run("bare_sentinel", isRequest(errSentinel, errSentinel, true))
	t.Run("wrapped_matches_bare", isRequest(Wrap(errSentinel, cause), errSentinel, true))
	t.Run("wrapped_in_fmt", isRequest(fmt.Errorf("search: %w", Wrap(errSentinel, cause)), errSentinel, true))
	t.Run("cause_reachable", isRequest(Wrap(errSentinel, cause), cause, true))
	t.Run("other_message", isRequest(ApplicationError{Message: "other"}, errSentinel, false))
	t.Run("different_cause", isRequest(Wrap(errSentinel, cause), Wrap(errSentinel, errors.New("x")), false))
}

func TestApplicationError_Error(t *testing.T) {
	assert.Equal(t, "failed to fetch", errSentinel.Error())
	assert.Equal(t, "failed to fetch: boom", Wrap(errSentinel, errors.New("boom")).Error())
	assert.Equal(t, http.StatusBadGateway, Wrap(errSentinel, nil).ErrorCode())
}
