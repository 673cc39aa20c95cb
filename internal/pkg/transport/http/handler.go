package http

import (
	"context"
	"errors"
	"net/http"

	"github.com/go-chi/render"
	"github.com/go-kit/kit/endpoint"
	kithttp "github.com/go-kit/kit/transport/http"
	"github.com/ijalalfrz/travel-planner-service/internal/pkg/exception"
)

var ErrInvalidRequestBody = exception.ApplicationError{
	StatusCode: http.StatusBadRequest,
	Message:    "invalid request body",
}

// Binder is a request DTO that render.Bind can decode and validate.
type Binder[T any] interface {
	*T
	render.Binder
}

// MakeHandlerFunc serves one go-kit endpoint over HTTP with the shared
// error encoder.
func MakeHandlerFunc(
	e endpoint.Endpoint,
	dec kithttp.DecodeRequestFunc,
	enc kithttp.EncodeResponseFunc,
) http.HandlerFunc {
	return kithttp.NewServer(e, dec, enc,
		kithttp.ServerErrorEncoder(ErrorResponse),
	).ServeHTTP
}

// DecodeRequest binds the JSON body into a new T and validates it.
// Decoding failures become ErrInvalidRequestBody, validation failures keep
// their own status.
func DecodeRequest[T any, PT Binder[T]](_ context.Context, r *http.Request) (interface{}, error) {
	req := PT(new(T))

	if err := render.Bind(r, req); err != nil {
		var appErr exception.ApplicationError
		if errors.As(err, &appErr) {
			return nil, err
		}

		return nil, exception.Wrap(ErrInvalidRequestBody, err)
	}

	return req, nil
}
