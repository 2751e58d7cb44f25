package chatwire

import (
	"errors"
	"log/slog"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/chatwire/chatwire-go/transport"
)

// dispatcher turns a facade call into exactly one outbound request, or
// fails the call before any network activity when a required field is
// absent.
type dispatcher struct {
	transport transport.Transport
	validate  *validator.Validate
	logger    *slog.Logger
}

func newDispatcher(t transport.Transport, logger *slog.Logger) *dispatcher {
	return &dispatcher{
		transport: t,
		validate:  newValidator(),
		logger:    logger,
	}
}

// newValidator builds the validator backing pre-send payload checks.
// Reported field names are the json wire names, so validation errors
// read "title is required" rather than "Title is required".
func newValidator() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name, _, _ := strings.Cut(fld.Tag.Get("json"), ",")
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// send validates payload and forwards it under event. Struct fields
// are checked in declaration order and only the first missing one is
// reported; a failed check returns an already-failed call with zero
// sends. A valid payload is forwarded once and the transport's call
// returned unmodified.
func (d *dispatcher) send(event string, payload any) *transport.Call {
	if err := d.validate.Struct(payload); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) && len(verrs) > 0 {
			field := verrs[0].Field()
			d.logger.Debug("rejecting request", "event", event, "missing", field)
			return transport.FailedCall(event, &MissingFieldError{Field: field})
		}
		return transport.FailedCall(event, err)
	}

	d.logger.Debug("dispatching request", "event", event)
	return d.transport.Send(event, payload)
}
