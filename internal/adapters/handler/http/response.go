package http

import (
	"bytes"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"reflect"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/vncsmyrnk/careerguide/internal/core/domain"
	"github.com/vncsmyrnk/careerguide/internal/core/ports"
	"github.com/vncsmyrnk/careerguide/internal/logger"
	"go.uber.org/zap"
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	// optionalString fields validate as the string they carry; absent and null are empty.
	v.RegisterCustomTypeFunc(func(field reflect.Value) any {
		if o, ok := field.Interface().(optionalString); ok && o.value != nil {
			return *o.value
		}
		return ""
	}, optionalString{})
	return v
}

// optionalString tells a field missing from a JSON body apart from an explicit null.
type optionalString struct {
	set   bool
	value *string
}

func (o *optionalString) UnmarshalJSON(data []byte) error {
	o.set = true
	if bytes.Equal(data, []byte("null")) {
		o.value = nil
		return nil
	}
	var value string
	if err := json.Unmarshal(data, &value); err != nil {
		return err
	}
	o.value = &value
	return nil
}

func (o optionalString) patch() domain.Patch[string] {
	return domain.Patch[string]{Set: o.set, Value: o.value}
}

// httpError is a failure detected by the transport layer itself, such as a malformed body.
type httpError struct {
	status int
	detail string
}

func (e *httpError) Error() string {
	return e.detail
}

func badRequest(detail string) error {
	return &httpError{status: http.StatusBadRequest, detail: detail}
}

var errNotAuthenticated = &httpError{status: http.StatusUnauthorized, detail: "not authenticated"}

type errorResponse struct {
	Detail string `json:"detail"`
}

type okResponse struct {
	OK bool `json:"ok"`
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		zap.L().Warn("failed to encode response", zap.Error(err))
	}
}

func statusFor(err error) int {
	var httpErr *httpError
	switch {
	case errors.As(err, &httpErr):
		return httpErr.status
	case errors.Is(err, domain.ErrInvalidCredentials),
		errors.Is(err, domain.ErrInvalidToken),
		errors.Is(err, domain.ErrTokenExpired),
		errors.Is(err, domain.ErrInactiveAccount):
		return http.StatusUnauthorized
	case errors.Is(err, domain.ErrDuplicateEmail),
		errors.Is(err, domain.ErrProfileAlreadyExists),
		errors.Is(err, domain.ErrPasswordTooLong),
		errors.Is(err, domain.ErrInvalidMessageType):
		return http.StatusBadRequest
	case errors.Is(err, domain.ErrNotFound),
		errors.Is(err, domain.ErrProfileMissing):
		return http.StatusNotFound
	case errors.Is(err, domain.ErrGenerationFailed):
		return http.StatusInternalServerError
	default:
		return 0
	}
}

func respondError(w http.ResponseWriter, r *http.Request, err error) {
	status := statusFor(err)
	detail := err.Error()

	if status == 0 {
		logger.FromContext(r.Context()).Error("request failed", zap.Error(err))
		status = http.StatusInternalServerError
		detail = domain.ErrInternal.Error()
	}

	if status == http.StatusUnauthorized {
		w.Header().Set("WWW-Authenticate", "Bearer")
	}

	writeJSON(w, status, errorResponse{Detail: detail})
}

// decodeJSON decodes and validates a request body. An empty body is accepted
// when optional is set and leaves dst untouched.
func decodeJSON(r *http.Request, dst any, optional bool) error {
	err := json.NewDecoder(r.Body).Decode(dst)
	switch {
	case errors.Is(err, io.EOF) && optional:
	case err != nil:
		return badRequest("invalid request body")
	}

	if err := validate.Struct(dst); err != nil {
		return badRequest(validationDetail(err))
	}
	return nil
}

func validationDetail(err error) string {
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) && len(verrs) > 0 {
		fe := verrs[0]
		return "invalid value for " + fe.Field() + ": failed " + fe.Tag() + " validation"
	}
	return "invalid request"
}

func uuidParam(r *http.Request, name string) (uuid.UUID, error) {
	id, err := uuid.Parse(chi.URLParam(r, name))
	if err != nil {
		return uuid.Nil, badRequest("invalid " + name)
	}
	return id, nil
}

type pageQuery struct {
	Offset int `validate:"gte=0"`
	Limit  int `validate:"gte=1,lte=100"`
}

func parsePage(r *http.Request) (ports.Page, error) {
	q := pageQuery{Offset: 0, Limit: ports.DefaultLimit}

	if raw := r.URL.Query().Get("offset"); raw != "" {
		v, err := strconv.Atoi(raw)
		if err != nil {
			return ports.Page{}, badRequest("offset must be an integer")
		}
		q.Offset = v
	}
	if raw := r.URL.Query().Get("limit"); raw != "" {
		v, err := strconv.Atoi(raw)
		if err != nil {
			return ports.Page{}, badRequest("limit must be an integer")
		}
		q.Limit = v
	}

	if err := validate.Struct(q); err != nil {
		return ports.Page{}, badRequest(validationDetail(err))
	}
	return ports.Page{Offset: q.Offset, Limit: q.Limit}, nil
}
