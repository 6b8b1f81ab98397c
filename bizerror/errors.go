package bizerror

import (
	"errors"
	"fmt"
	"net/http"
	"strings"
)

var (
	ErrUnauthenticated    = errors.New("common.unauthenticated")
	ErrForbidden          = errors.New("security.forbidden")
	ErrNotFound           = errors.New("common.record_not_found")
	ErrInvalidCredentials = errors.New("auth.invalid_credentials")

	// ErrMalformedResponse marks a backend response that is neither valid
	// JSON nor one of the known literal markers.
	ErrMalformedResponse = errors.New("backend.malformed_response")

	// ErrNetwork marks a transport failure. Never retried; the caller
	// re-initiates explicitly.
	ErrNetwork = errors.New("backend.network_failure")

	ErrExport = errors.New("document.export_failed")

	// ErrUpload means the document was generated but the remote push
	// failed. Non-fatal: the local file stays valid.
	ErrUpload = errors.New("document.upload_failed")

	ErrPermissionDenied = errors.New("platform.permission_denied")

	ErrSignatureRequired = errors.New("signature.required")

	// ErrSubmissionInFlight guards the single-run submission pipeline.
	ErrSubmissionInFlight = errors.New("submission.already_in_flight")
)

type BizError interface {
	Respond() *BizErrorDetail
}

type BizErrorDetail struct {
	Status  int
	Code    string
	Message string

	Data  interface{}
	Cause error
}

type ErrBadParam struct {
	Cause error
}

func (e *ErrBadParam) Unwrap() error {
	return e.Cause
}
func (e *ErrBadParam) Error() string {
	if e.Cause != nil {
		return e.Cause.Error()
	}
	return "common.bad_param"
}
func (e *ErrBadParam) Respond() *BizErrorDetail {
	message := "common.bad_param"
	if e.Cause != nil {
		message = e.Cause.Error()
	}
	return &BizErrorDetail{Status: http.StatusBadRequest, Code: "common.bad_param", Message: message, Data: nil}
}

// FieldError is a single local validation failure. Field errors are
// recovered by re-prompting the user and are never sent to the server.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

type ErrValidation struct {
	Fields []FieldError
}

func (e *ErrValidation) Error() string {
	parts := make([]string, 0, len(e.Fields))
	for _, f := range e.Fields {
		parts = append(parts, f.Field+": "+f.Message)
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

func (e *ErrValidation) Respond() *BizErrorDetail {
	return &BizErrorDetail{Status: http.StatusBadRequest, Code: "common.validation_failed",
		Message: e.Error(), Data: e.Fields}
}

// WrapNetwork attaches the transport cause while staying matchable with
// errors.Is(err, ErrNetwork).
func WrapNetwork(cause error) error {
	return fmt.Errorf("%w: %v", ErrNetwork, cause)
}

func WrapMalformedResponse(sample string) error {
	const limit = 120
	if len(sample) > limit {
		sample = sample[:limit] + "..."
	}
	return fmt.Errorf("%w: %q", ErrMalformedResponse, sample)
}

func WrapExport(cause error) error {
	return fmt.Errorf("%w: %v", ErrExport, cause)
}

func WrapUpload(cause error) error {
	return fmt.Errorf("%w: %v", ErrUpload, cause)
}
