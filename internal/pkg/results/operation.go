package results

import "github.com/rs/zerolog"

// Status represents the outcome of an operation.
type Status int

const (
	StatusPending Status = iota
	StatusSuccess
	StatusFailure
)

func (s Status) String() string {
	switch s {
	case StatusSuccess:
		return "success"
	case StatusFailure:
		return "failure"
	default:
		return "pending"
	}
}

// Level grades how severe an error entry is.
type Level string

const (
	LevelCritical  Level = "CRITICAL"
	LevelImportant Level = "IMPORTANT"
	LevelMinor     Level = "MINOR"
)

// ErrorEntry is a single catalogued failure attached to an operation.
type ErrorEntry struct {
	Code    Code   `json:"code"`
	Message string `json:"message"`
	Level   Level  `json:"level"`
}

// Operation carries the status and error list of a single service call.
// Each call produces its own value; callers inspect it instead of
// recovering panics or unwrapping sentinel errors.
type Operation struct {
	Status Status       `json:"status"`
	Errors []ErrorEntry `json:"errors,omitempty"`

	logger zerolog.Logger
}

// New returns a pending operation that logs through lgr.
func New(lgr zerolog.Logger) Operation {
	return Operation{Status: StatusPending, logger: lgr}
}

// Success is shorthand for a completed operation with no errors.
func Success(lgr zerolog.Logger) Operation {
	return Operation{Status: StatusSuccess, logger: lgr}
}

// IsSuccess reports whether the operation completed without errors.
func (o Operation) IsSuccess() bool {
	return o.Status == StatusSuccess && len(o.Errors) == 0
}

// IsFailure reports whether the operation failed or collected any errors.
func (o Operation) IsFailure() bool {
	return o.Status == StatusFailure || len(o.Errors) > 0
}

// WithStatus sets the status.
func (o Operation) WithStatus(status Status) Operation {
	o.Status = status
	return o
}

// WithError appends an error entry using the code's default message at
// the Important level.
func (o Operation) WithError(code Code) Operation {
	return o.WithErrorMessage(code, Message(code), LevelImportant)
}

// WithErrorMessage appends an error entry. A Critical entry forces the
// status to Failure.
func (o Operation) WithErrorMessage(code Code, message string, level Level) Operation {
	o.Errors = append(o.Errors, ErrorEntry{Code: code, Message: message, Level: level})

	if level == LevelCritical {
		o.Status = StatusFailure
		o.logger.Error().Str("code", string(code)).Str("message", message).Msg("critical operation error")
	} else {
		o.logger.Warn().Str("code", string(code)).Str("message", message).Msg("operation error")
	}
	return o
}

// WithException records an unexpected error as a Critical general entry.
func (o Operation) WithException(err error) Operation {
	if err == nil {
		return o
	}
	return o.WithErrorMessage(CodeGeneralError, err.Error(), LevelCritical)
}

// FirstCode returns the code of the first error entry, or the zero Code.
func (o Operation) FirstCode() Code {
	if len(o.Errors) == 0 {
		return ""
	}
	return o.Errors[0].Code
}

// HasCode reports whether any entry carries the given code.
func (o Operation) HasCode(code Code) bool {
	for _, e := range o.Errors {
		if e.Code == code {
			return true
		}
	}
	return false
}
