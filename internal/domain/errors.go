package domain

import "errors"

// ErrorKind classifies request failures
type ErrorKind int

const (
	KindUnknown ErrorKind = iota
	KindConfiguration
	KindValidation
	KindUpstream
	KindLocation
)

func (k ErrorKind) String() string {
	switch k {
	case KindConfiguration:
		return "ConfigurationError"
	case KindValidation:
		return "ValidationError"
	case KindUpstream:
		return "UpstreamError"
	case KindLocation:
		return "LocationError"
	default:
		return "UnknownError"
	}
}

// Error is a request failure that is terminal for that request
type Error struct {
	Kind    ErrorKind
	Message string // client-facing summary
	Detail  string // optional client-facing detail
	Err     error  // cause, never rendered
}

func (e *Error) Error() string {
	msg := e.Kind.String() + ": " + e.Message
	if e.Detail != "" {
		msg += " (" + e.Detail + ")"
	}
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

func (e *Error) Unwrap() error {
	return e.Err
}

// NewConfigurationError reports a missing server credential
func NewConfigurationError(message string) *Error {
	return &Error{Kind: KindConfiguration, Message: message, Err: ErrMissingAPIKey}
}

// NewValidationError reports an unsupported request parameter
func NewValidationError(message, detail string) *Error {
	return &Error{Kind: KindValidation, Message: message, Detail: detail}
}

// NewUpstreamError reports a failed upstream fetch
func NewUpstreamError(message string, cause error) *Error {
	return &Error{Kind: KindUpstream, Message: message, Err: cause}
}

// NewUpstreamErrorWithDetail is NewUpstreamError with the cause exposed as detail
func NewUpstreamErrorWithDetail(message string, cause error) *Error {
	e := NewUpstreamError(message, cause)
	if cause != nil {
		e.Detail = cause.Error()
	}
	return e
}

// NewLocationError reports a geolocation fallback
func NewLocationError(message string) *Error {
	return &Error{Kind: KindLocation, Message: message}
}

// KindOf returns the kind of the first *Error in err's chain
func KindOf(err error) ErrorKind {
	var de *Error
	if errors.As(err, &de) {
		return de.Kind
	}
	return KindUnknown
}

// AsError returns the first *Error in err's chain, or nil
func AsError(err error) *Error {
	var de *Error
	if errors.As(err, &de) {
		return de
	}
	return nil
}

// ErrMissingAPIKey is the cause of every configuration error
var ErrMissingAPIKey = errors.New("upstream API key is not configured")
