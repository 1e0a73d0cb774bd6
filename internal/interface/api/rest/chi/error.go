package rest

import (
	"errors"
	"net/http"

	"github.com/KretovDmitry/canang-orders/internal/application/errs"
	"github.com/KretovDmitry/canang-orders/internal/interface/api/rest/header"
	"github.com/KretovDmitry/canang-orders/pkg/logger"
)

const notFoundMessage = "Data tidak ditemukan"

// failure attaches the message a user sees when err is unexpected.
type failure struct {
	err     error
	message string
}

func (f *failure) Error() string { return f.err.Error() }

func (f *failure) Unwrap() error { return f.err }

func fail(message string, err error) error {
	return &failure{err: err, message: message}
}

// writeError maps err to the status code and writes a plain text body.
// Pending HX-Trigger is dropped, the page must not refresh on failure.
func writeError(w http.ResponseWriter, r *http.Request, logger logger.Logger, controller string, err error) {
	code := http.StatusInternalServerError
	message := http.StatusText(code)

	var f *failure
	if errors.As(err, &f) {
		message = f.message
	}

	switch {
	// Status Bad Request (400).
	case errors.Is(err, errs.ErrInvalidRequest):
		code = http.StatusBadRequest
		if f != nil {
			message = f.err.Error()
		} else {
			message = err.Error()
		}

	// Status Not Found (404).
	case errors.Is(err, errs.ErrNotFound):
		code = http.StatusNotFound
		message = notFoundMessage

	// Status Conflict (409).
	case errors.Is(err, errs.ErrDataConflict):
		code = http.StatusConflict
	}

	if code >= http.StatusInternalServerError {
		logger.With(r.Context()).Errorf("%s controller [%d]: %s", controller, code, err)
	} else {
		logger.With(r.Context()).Debugf("%s controller [%d]: %s", controller, code, err)
	}

	w.Header().Del("HX-Trigger")
	header.SetText(w)
	w.WriteHeader(code)
	_, _ = w.Write([]byte(message))
}
